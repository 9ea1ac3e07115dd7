package report

import (
	"errors"
	"io"

	"github.com/npillmayer/otcheck/check"
	"github.com/vmihailenco/msgpack/v5"
)

// Record is the structured form of a diagnostic.
// Range and value fields are set for metric diagnostics only.
type Record struct {
	Source  string `msgpack:"source"`
	Level   string `msgpack:"level"`
	Kind    string `msgpack:"kind"`
	Table   string `msgpack:"table,omitempty"`
	Field   string `msgpack:"field,omitempty"`
	Lower   int32  `msgpack:"lower,omitempty"`
	Upper   int32  `msgpack:"upper,omitempty"`
	Actual  int32  `msgpack:"actual,omitempty"`
	Message string `msgpack:"message"`
}

// Kinds of records.
const (
	KindMissingTable     = "missing-table"
	KindMetricOutOfRange = "metric-out-of-range"
)

// NewRecord converts a diagnostic into a record.
func NewRecord(source string, d check.Diagnostic) Record {
	rec := Record{Source: source, Level: d.Level.String()}
	if d.Message != nil {
		rec.Message = d.Message.Error()
	}
	switch msg := d.Message.(type) {
	case check.MissingTable:
		rec.Kind = KindMissingTable
		rec.Table = msg.Name
	case check.MetricOutOfRange:
		rec.Kind = KindMetricOutOfRange
		rec.Table = msg.Table
		rec.Field = msg.Field
		rec.Lower = msg.Expected.Lower
		rec.Upper = msg.Expected.Upper
		rec.Actual = msg.Actual
	}
	return rec
}

// MsgpackSink writes a stream of msgpack-encoded records.
type MsgpackSink struct {
	enc *msgpack.Encoder
}

// NewMsgpackSink creates a sink writing to w.
func NewMsgpackSink(w io.Writer) *MsgpackSink {
	return &MsgpackSink{enc: msgpack.NewEncoder(w)}
}

// Report implements Sink.
func (s *MsgpackSink) Report(source string, d check.Diagnostic) error {
	return s.enc.Encode(NewRecord(source, d))
}

// ReadRecords decodes all records from a msgpack stream, as written by MsgpackSink.
func ReadRecords(r io.Reader) ([]Record, error) {
	dec := msgpack.NewDecoder(r)
	var records []Record
	for {
		var rec Record
		if err := dec.Decode(&rec); err != nil {
			if errors.Is(err, io.EOF) {
				return records, nil
			}
			return records, err
		}
		records = append(records, rec)
	}
}
