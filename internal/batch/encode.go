package batch

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/zephyrtronium/strcalc"
	"github.com/zephyrtronium/strcalc/internal/display"
)

// Write encodes records in the named format: text, json, or msgpack.
func Write(w io.Writer, format string, recs []Record, decimals int) error {
	switch format {
	case "text":
		return WriteText(w, recs, decimals)
	case "json":
		return WriteJSON(w, recs)
	case "msgpack":
		return WriteMsgpack(w, recs)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteText writes one aligned row per record: line, input, and either the
// formatted value or the error message.
func WriteText(w io.Writer, recs []Record, decimals int) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, r := range recs {
		result := ""
		if r.OK {
			result = display.FormatValue(r.Value, decimals)
		} else {
			kind, _ := strcalc.ParseKind(r.Kind)
			result = "error: " + display.Message(kind)
		}
		if _, err := fmt.Fprintf(tw, "%d\t%s\t%s\n", r.Line, r.Input, result); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// WriteJSON writes one JSON object per record per line.
func WriteJSON(w io.Writer, recs []Record) error {
	enc := json.NewEncoder(w)
	for _, r := range recs {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}

// WriteMsgpack writes the records as a stream of msgpack maps.
func WriteMsgpack(w io.Writer, recs []Record) error {
	enc := msgpack.NewEncoder(w)
	for _, r := range recs {
		if err := enc.Encode(&r); err != nil {
			return err
		}
	}
	return nil
}

// ReadMsgpack reads a stream written by WriteMsgpack.
func ReadMsgpack(r io.Reader) ([]Record, error) {
	dec := msgpack.NewDecoder(r)
	var recs []Record
	for {
		var rec Record
		if err := dec.Decode(&rec); err != nil {
			if errors.Is(err, io.EOF) {
				return recs, nil
			}
			return nil, err
		}
		recs = append(recs, rec)
	}
}
