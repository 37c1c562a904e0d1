package tickdata

import (
	"fmt"
	"time"
)

// tickURL maps an instrument-hour to the vendor's file path scheme. The
// month segment is zero-indexed: January is 00. Instrument codes are used
// verbatim; callers must supply vendor-valid codes.
func tickURL(baseURL, instrument string, hour time.Time) string {
	hour = hour.UTC()

	return fmt.Sprintf("%s/%s/%04d/%02d/%02d/%02dh_ticks.bi5",
		baseURL, instrument, hour.Year(), int(hour.Month())-1, hour.Day(), hour.Hour())
}
