package tickdata

import (
	"fmt"
	"time"
)

// Tick is a single price-quote observation for an instrument.
type Tick struct {
	// Time is seconds since the Unix epoch, UTC.
	Time int64 `json:"time"`
	// Ask is the ask price.
	Ask float64 `json:"ask"`
	// Bid is the bid price.
	Bid float64 `json:"bid"`
	// AskVolume is the volume available at the ask price.
	AskVolume float64 `json:"askVolume"`
	// BidVolume is the volume available at the bid price.
	BidVolume float64 `json:"bidVolume"`
}

// String implements fmt.Stringer.
func (t Tick) String() string {
	return fmt.Sprintf("%s\task=%g bid=%g askVolume=%g bidVolume=%g",
		time.Unix(t.Time, 0).UTC().Format(time.RFC3339), t.Ask, t.Bid, t.AskVolume, t.BidVolume)
}
