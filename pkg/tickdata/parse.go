package tickdata

import (
	"time"

	"github.com/rxtech-lab/tickfeed/pkg/tickdata/bi5"
)

// parseTicks materializes one hour's decompressed record buffer into ticks,
// preserving record order. It never fails: only well-formed records are
// decoded and a trailing partial record is dropped.
func parseTicks(hour time.Time, buf []byte) []Tick {
	records := bi5.DecodeRecords(buf)
	ticks := make([]Tick, len(records))
	hourUnix := hour.UTC().Unix()

	for i, record := range records {
		ticks[i] = tickFromRecord(hourUnix, record)
	}

	return ticks
}

// tickFromRecord converts one wire record into a Tick. The record's offset
// field is added to the hour's epoch seconds as-is, without unit
// conversion; this matches the vendor reference output.
func tickFromRecord(hourUnix int64, record bi5.Record) Tick {
	return Tick{
		Time:      hourUnix + int64(record.TimeOffset),
		Ask:       float64(record.Ask) / 100_000,
		Bid:       float64(record.Bid) / 100_000,
		AskVolume: float64(record.AskVolume),
		BidVolume: float64(record.BidVolume),
	}
}
