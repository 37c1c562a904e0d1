package supplier

import (
	"context"
	"io"
	"net/http"

	"github.com/moznion/go-optional"
	"go.uber.org/zap"

	"github.com/rxtech-lab/tickfeed/pkg/errors"
)

// HTTPSupplier is the production DataSupplier. It performs a plain GET per
// file and normalizes 404 and empty bodies to None.
type HTTPSupplier struct {
	client *http.Client
	logger *zap.Logger
}

// NewHTTPSupplier creates an HTTPSupplier. A nil client falls back to
// http.DefaultClient, a nil logger disables logging.
func NewHTTPSupplier(client *http.Client, logger *zap.Logger) *HTTPSupplier {
	if client == nil {
		client = http.DefaultClient
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &HTTPSupplier{
		client: client,
		logger: logger,
	}
}

// Fetch implements DataSupplier.
func (s *HTTPSupplier) Fetch(ctx context.Context, url string) (optional.Option[[]byte], error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return optional.None[[]byte](), errors.Wrapf(errors.KindNetwork, err, "build request for %s", url)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return optional.None[[]byte](), errors.Wrapf(errors.KindNetwork, err, "fetch %s", url)
	}
	defer resp.Body.Close()

	// A 404 means no events happened during the requested hour.
	if resp.StatusCode == http.StatusNotFound {
		s.logger.Debug("no data published", zap.String("url", url))

		return optional.None[[]byte](), nil
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return optional.None[[]byte](), errors.Newf(errors.KindNetwork, "fetch %s: unexpected status %s", url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return optional.None[[]byte](), errors.Wrapf(errors.KindNetwork, err, "read body of %s", url)
	}

	if len(body) == 0 {
		return optional.None[[]byte](), nil
	}

	s.logger.Debug("fetched file", zap.String("url", url), zap.Int("bytes", len(body)))

	return optional.Some(body), nil
}

// Verify HTTPSupplier implements the DataSupplier interface.
var _ DataSupplier = (*HTTPSupplier)(nil)
