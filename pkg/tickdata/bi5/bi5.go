// Package bi5 decodes the vendor's bi5 tick file format: an LZMA-alone
// compressed stream whose decompressed body is a flat concatenation of
// fixed-size 20-byte big-endian records, one record per tick.
package bi5

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"

	"github.com/moznion/go-optional"
	"github.com/ulikunitz/xz/lzma"

	"github.com/rxtech-lab/tickfeed/pkg/errors"
)

// RecordSize is the wire size of a single tick record in bytes.
const RecordSize = 20

// Record is one decoded wire record.
//
// TimeOffset is the raw value of the record's first field. Prices are
// 5-decimal fixed point (divide by 100000 to get the quote), volumes are
// IEEE-754 single precision.
type Record struct {
	TimeOffset uint32
	Ask        uint32
	Bid        uint32
	AskVolume  float32
	BidVolume  float32
}

// Decompress decodes a raw bi5 payload into the flat record buffer.
//
// An absent payload means no file was published for the requested hour and
// decompresses to an empty buffer. A present but corrupt payload fails with
// an errors.KindDecode error carrying the decoder's cause.
func Decompress(data optional.Option[[]byte]) ([]byte, error) {
	if data.IsNone() {
		return nil, nil
	}

	reader, err := lzma.NewReader(bytes.NewReader(data.Unwrap()))
	if err != nil {
		return nil, errors.Wrap(errors.KindDecode, "invalid lzma header", err)
	}

	buf, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(errors.KindDecode, "corrupt lzma stream", err)
	}

	return buf, nil
}

// DecodeRecords splits buf into consecutive RecordSize-byte records.
// A trailing partial record is dropped, not an error.
func DecodeRecords(buf []byte) []Record {
	records := make([]Record, 0, len(buf)/RecordSize)

	for len(buf) >= RecordSize {
		records = append(records, Record{
			TimeOffset: binary.BigEndian.Uint32(buf[0:4]),
			Ask:        binary.BigEndian.Uint32(buf[4:8]),
			Bid:        binary.BigEndian.Uint32(buf[8:12]),
			AskVolume:  math.Float32frombits(binary.BigEndian.Uint32(buf[12:16])),
			BidVolume:  math.Float32frombits(binary.BigEndian.Uint32(buf[16:20])),
		})
		buf = buf[RecordSize:]
	}

	return records
}
