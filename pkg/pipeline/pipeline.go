// Package pipeline runs the modifier computation and renders its outputs.
//
// It is the single entry point shared by the CLI and the HTTP server: it
// validates a [Request], builds the symbol context from the configured style,
// interprets the raw options, computes the modifiers and renders the requested
// formats, caching rendered artifacts.
//
//	runner := pipeline.NewRunner(cache, nil, logger, config.Default())
//	result, err := runner.Execute(ctx, pipeline.Request{
//	    Affiliation: "Hostile",
//	    Base:        &pipeline.DefaultBase,
//	    Options:     map[string]any{"reinforced": "(+)", "stack": 2},
//	    Formats:     []string{"svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Invalid options do not fail a request. They are dropped and reported in
// [Result.Diagnostics].
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/symbolmod/pkg/errors"
	"github.com/matzehuels/symbolmod/pkg/geom"
	"github.com/matzehuels/symbolmod/pkg/modifier"
	"github.com/matzehuels/symbolmod/pkg/symbol"
)

// DefaultBase is the bbox of a milsymbol ground frame for a friendly unit.
var DefaultBase = geom.New(25, 50, 175, 150)

const (
	// DefaultPadding is added around the result bbox in SVG output.
	DefaultPadding = 3.0

	// DefaultFormat is rendered when no formats are requested.
	DefaultFormat = FormatSVG
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
}

// Request describes one symbol and the modifiers to draw around it.
type Request struct {
	Affiliation string `json:"affiliation"`
	Dimension   string `json:"dimension,omitempty"`

	// Base is the bbox of the already drawn base geometry. Nil means the
	// symbol has no base geometry, which yields empty layers.
	Base *geom.BBox `json:"base,omitempty"`
	// BBox is the overall bbox accumulated so far. Defaults to Base.
	BBox *geom.BBox `json:"bbox,omitempty"`

	// Options holds the raw modifier options, as decoded from JSON or flags.
	Options map[string]any `json:"options,omitempty"`

	Formats []string `json:"formats,omitempty"`
	Padding *float64 `json:"padding,omitempty"`
	// Refresh bypasses the artifact cache.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`

	affiliation symbol.Affiliation
	dimension   symbol.Dimension
	validated   bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	Symbol    symbol.Context
	Options   modifier.Options
	Modifiers modifier.Result

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Diagnostics joins the errors for options that were dropped.
	Diagnostics error

	Stats    Stats
	CacheHit bool
}

// Stats contains pipeline execution timings.
type Stats struct {
	ComputeTime time.Duration
	RenderTime  time.Duration
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks the request and applies defaults.
// It is idempotent.
func (r *Request) ValidateAndSetDefaults() error {
	if r.validated {
		return nil
	}

	a, err := symbol.ParseAffiliation(r.Affiliation)
	if err != nil {
		return err
	}
	d, err := symbol.ParseDimension(r.Dimension)
	if err != nil {
		return err
	}
	r.affiliation, r.dimension = a, d

	if r.Base != nil && (r.Base.Width() < 0 || r.Base.Height() < 0) {
		return errors.New(errors.ErrCodeInvalidInput, "base bbox is inverted: %s", r.Base)
	}
	if r.BBox == nil && r.Base != nil {
		b := *r.Base
		r.BBox = &b
	}

	if len(r.Formats) == 0 {
		r.Formats = []string{DefaultFormat}
	}
	if err := ValidateFormats(r.Formats); err != nil {
		return err
	}
	if r.Padding == nil {
		p := DefaultPadding
		r.Padding = &p
	} else if *r.Padding < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "padding must be non-negative, got %g", *r.Padding)
	}

	if r.Logger == nil {
		r.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	r.validated = true
	return nil
}

// Metadata returns the symbol metadata described by a validated request.
func (r *Request) Metadata() symbol.Metadata {
	meta := symbol.Metadata{Affiliation: r.affiliation, Dimension: r.dimension}
	if r.Base != nil {
		meta.BaseGeometry = symbol.BaseGeometry{Present: true, BBox: *r.Base}
	}
	return meta
}
