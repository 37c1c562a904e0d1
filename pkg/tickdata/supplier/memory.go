package supplier

import (
	"context"
	"os"
	"path"
	"path/filepath"

	"github.com/moznion/go-optional"

	"github.com/rxtech-lab/tickfeed/pkg/errors"
)

// InMemorySupplier serves the same payload for every URL. Useful for
// single-hour tests and examples.
type InMemorySupplier struct {
	// Data is returned verbatim by every Fetch call.
	Data optional.Option[[]byte]
}

// Fetch implements DataSupplier.
func (s InMemorySupplier) Fetch(_ context.Context, _ string) (optional.Option[[]byte], error) {
	return s.Data, nil
}

// FixtureSupplier serves vendor files from a local directory, keyed by the
// final path segment of the URL (e.g. "13h_ticks.bi5"). A missing file
// means no data was published for that hour.
type FixtureSupplier struct {
	// Dir is the directory holding the fixture files.
	Dir string
}

// Fetch implements DataSupplier.
func (s FixtureSupplier) Fetch(_ context.Context, url string) (optional.Option[[]byte], error) {
	data, err := os.ReadFile(filepath.Join(s.Dir, path.Base(url)))
	if err != nil {
		if os.IsNotExist(err) {
			return optional.None[[]byte](), nil
		}

		return optional.None[[]byte](), errors.Wrapf(errors.KindNetwork, err, "read fixture for %s", url)
	}

	if len(data) == 0 {
		return optional.None[[]byte](), nil
	}

	return optional.Some(data), nil
}

var (
	_ DataSupplier = InMemorySupplier{}
	_ DataSupplier = FixtureSupplier{}
)
