package surface

import (
	"encoding/json"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/wifescope/wifescope/pkg/analysis"
	"github.com/wifescope/wifescope/pkg/skillset"
)

// JSONRenderer marshals results to indented JSON.
type JSONRenderer struct{}

func (r *JSONRenderer) RenderReport(w io.Writer, report *analysis.Report) error {
	return encodeJSON(w, report)
}

func (r *JSONRenderer) RenderRating(w io.Writer, rating *Rating) error {
	return encodeJSON(w, rating)
}

func (r *JSONRenderer) RenderTimeline(w io.Writer, timeline *skillset.Timeline[string]) error {
	return encodeJSON(w, timeline)
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// MsgpackRenderer marshals results to msgpack, reusing the JSON field names.
// Skillset vectors are encoded as plain arrays in storage order.
type MsgpackRenderer struct{}

func (r *MsgpackRenderer) RenderReport(w io.Writer, report *analysis.Report) error {
	return encodeMsgpack(w, report)
}

func (r *MsgpackRenderer) RenderRating(w io.Writer, rating *Rating) error {
	return encodeMsgpack(w, rating)
}

func (r *MsgpackRenderer) RenderTimeline(w io.Writer, timeline *skillset.Timeline[string]) error {
	return encodeMsgpack(w, timeline)
}

func encodeMsgpack(w io.Writer, v any) error {
	enc := msgpack.NewEncoder(w)
	enc.SetCustomStructTag("json")
	return enc.Encode(v)
}

// DecodeMsgpack is the counterpart of MsgpackRenderer, used to read score
// histories stored as msgpack.
func DecodeMsgpack(r io.Reader, v any) error {
	dec := msgpack.NewDecoder(r)
	dec.SetCustomStructTag("json")
	return dec.Decode(v)
}
