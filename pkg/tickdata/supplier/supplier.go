// Package supplier defines the data supplier capability the tick pipeline
// depends on, together with the production HTTP implementation and
// in-memory/fixture variants for tests and offline use.
package supplier

import (
	"context"

	"github.com/moznion/go-optional"
)

// DataSupplier fetches one vendor file by URL.
//
// The contract has exactly three outcomes:
//   - Some(bytes): the file exists and has content
//   - None: no data was published for the requested hour (an HTTP 404 or an
//     empty body); this is a legitimate outcome, not an error
//   - error: the transport failed; always carries errors.KindNetwork with
//     the underlying cause
type DataSupplier interface {
	Fetch(ctx context.Context, url string) (optional.Option[[]byte], error)
}
