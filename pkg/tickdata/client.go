// Package tickdata retrieves and decodes historical market tick data
// published by Dukascopy as one compressed bi5 file per instrument-hour.
//
// The client turns an (instrument, start, end) request into a lazy,
// ordered sequence of decoded ticks. Exactly one hour file is fetched,
// decompressed and parsed at a time; pulling the next item from the
// sequence is what triggers the next network call.
package tickdata

import (
	"context"
	"iter"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/rxtech-lab/tickfeed/pkg/errors"
	"github.com/rxtech-lab/tickfeed/pkg/tickdata/bi5"
	"github.com/rxtech-lab/tickfeed/pkg/tickdata/supplier"
)

// DefaultBaseURL is the vendor's public datafeed root.
const DefaultBaseURL = "https://datafeed.dukascopy.com/datafeed"

// ClientConfig holds the configuration for the tick data client.
type ClientConfig struct {
	// BaseURL overrides the vendor datafeed root. Empty means DefaultBaseURL.
	BaseURL string `validate:"omitempty,url"`
	// Supplier overrides how vendor files are fetched. Nil means a plain
	// HTTPS GET through supplier.NewHTTPSupplier.
	Supplier supplier.DataSupplier
	// Logger receives per-hour debug and failure events. Nil disables logging.
	Logger *zap.Logger
}

// DownloadParams holds the parameters for a tick download request.
//
// Start and End are a half-open UTC range [Start, End) and must both be
// aligned to a full hour; the vendor publishes one file per hour.
type DownloadParams struct {
	// Instrument is the vendor's instrument code, e.g. "EURGBP". To find a
	// code, open https://www.dukascopy.com/swiss/english/marketwatch/historical/
	// with the browser's network tab open and look at the path segment after
	// "datafeed" in any request it makes.
	Instrument string    `validate:"required"`
	Start      time.Time `validate:"required"`
	End        time.Time `validate:"required,gtfield=Start"`
}

// Client downloads and decodes tick data hour by hour.
type Client struct {
	baseURL  string
	supplier supplier.DataSupplier
	logger   *zap.Logger
	validate *validator.Validate
}

// NewClient creates a new tick data client with the given configuration.
func NewClient(config ClientConfig) (*Client, error) {
	validate := validator.New()
	if err := validate.Struct(config); err != nil {
		return nil, errors.Wrap(errors.KindValidation, "invalid client configuration", err)
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	dataSupplier := config.Supplier
	if dataSupplier == nil {
		dataSupplier = supplier.NewHTTPSupplier(nil, logger)
	}

	return &Client{
		baseURL:  baseURL,
		supplier: dataSupplier,
		logger:   logger,
		validate: validate,
	}, nil
}

// DownloadTicks returns the lazy sequence of ticks for the given request.
//
// Parameter violations are reported immediately, before any fetch. The
// returned sequence yields, hour by hour in order, either that hour's ticks
// in file order or a single error item standing in for the hour; a failed
// hour never stops later hours. An hour with no published file contributes
// nothing. Stopping iteration or cancelling ctx stops further fetches.
func (c *Client) DownloadTicks(ctx context.Context, params DownloadParams) (iter.Seq2[Tick, error], error) {
	if err := c.validateParams(params); err != nil {
		return nil, err
	}

	start := params.Start.UTC()
	end := params.End.UTC()

	return func(yield func(Tick, error) bool) {
		for hour := range hourRange(start, end) {
			select {
			case <-ctx.Done():
				return
			default:
			}

			if !c.downloadHour(ctx, params.Instrument, hour, yield) {
				return
			}
		}
	}, nil
}

// downloadHour runs one fetch-decompress-parse cycle and yields its
// outcome. It reports false once the consumer stops pulling.
func (c *Client) downloadHour(ctx context.Context, instrument string, hour time.Time, yield func(Tick, error) bool) bool {
	url := tickURL(c.baseURL, instrument, hour)
	c.logger.Debug("fetching hour file", zap.String("url", url), zap.Time("hour", hour))

	data, err := c.supplier.Fetch(ctx, url)
	if err != nil {
		c.logger.Warn("fetch failed", zap.String("url", url), zap.Error(err))

		return yield(Tick{}, err)
	}

	buf, err := bi5.Decompress(data)
	if err != nil {
		c.logger.Warn("decode failed", zap.String("url", url), zap.Error(err))

		return yield(Tick{}, err)
	}

	for _, tick := range parseTicks(hour, buf) {
		if !yield(tick, nil) {
			return false
		}
	}

	return true
}

// validateParams rejects contract violations before any network activity.
func (c *Client) validateParams(params DownloadParams) error {
	if err := c.validate.Struct(params); err != nil {
		return errors.Wrap(errors.KindValidation, "invalid download parameters", err)
	}

	if !params.Start.Equal(params.Start.Truncate(time.Hour)) {
		return errors.Newf(errors.KindValidation, "start must be aligned to a full hour, got %s",
			params.Start.UTC().Format(time.RFC3339Nano))
	}

	if !params.End.Equal(params.End.Truncate(time.Hour)) {
		return errors.Newf(errors.KindValidation, "end must be aligned to a full hour, got %s",
			params.End.UTC().Format(time.RFC3339Nano))
	}

	return nil
}
