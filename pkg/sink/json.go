package sink

import (
	"encoding/json"

	"github.com/matzehuels/symbolmod/pkg/modifier"
	"github.com/matzehuels/symbolmod/pkg/symbol"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	sym    *symbol.Context
	opts   *modifier.Options
	indent bool
}

// WithJSONContext records the symbol context the result was computed from.
func WithJSONContext(sym symbol.Context) JSONOption {
	return func(r *jsonRenderer) { r.sym = &sym }
}

// WithJSONOptions records the modifier options the result was computed from.
func WithJSONOptions(opts modifier.Options) JSONOption {
	return func(r *jsonRenderer) { r.opts = &opts }
}

// WithJSONIndent pretty-prints the output.
func WithJSONIndent() JSONOption { return func(r *jsonRenderer) { r.indent = true } }

type jsonOutput struct {
	modifier.Result
	Context *symbol.Context   `json:"context,omitempty"`
	Options *modifier.Options `json:"options,omitempty"`
}

// RenderJSON encodes the result as JSON. Primitives carry a "type" tag of
// "path", "text" or "group".
func RenderJSON(res modifier.Result, opts ...JSONOption) ([]byte, error) {
	var r jsonRenderer
	for _, opt := range opts {
		opt(&r)
	}
	out := jsonOutput{Result: res, Context: r.sym, Options: r.opts}
	if r.indent {
		return json.MarshalIndent(out, "", "  ")
	}
	return json.Marshal(out)
}
