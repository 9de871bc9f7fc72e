// Package pkg provides the libraries behind symbolmod, which draws unit
// modifiers around military symbols.
//
// # Overview
//
// A military symbol is drawn in stages. Some renderer produces the base
// geometry (the frame and its icon); symbolmod then adds the side modifiers
// a unit can carry:
//
//   - the reinforced/reduced marker "(+)", "(-)", "(±)" or custom text,
//     right of the frame at the top
//   - the "!" signature marker, right of the frame at the bottom
//   - the special headquarters label, centered in the frame
//
// and grows the symbol bbox to fit them. An optional outline halo is drawn
// behind everything.
//
// # Architecture
//
//	raw options ──► [modifier.Interpret] ──► [modifier.Options]
//	                                               │
//	[symbol.Context] ─────────────────────► [modifier.Compute]
//	                                               │
//	                                      [modifier.Result] ──► [sink] SVG/JSON
//
// [pipeline] wires these together with [config], [cache] and [observability]
// and is shared by the CLI and [server].
//
// # Quick Start
//
//	ctx := config.Default().Symbol(symbol.Metadata{
//	    BaseGeometry: symbol.BaseGeometry{Present: true, BBox: geom.New(25, 50, 175, 150)},
//	    Affiliation:  symbol.Hostile,
//	})
//	opts, _ := modifier.Interpret(map[string]any{"reinforced": "(+)", "signature": "!"})
//	res := modifier.Compute(ctx, opts)
//	svg := sink.RenderSVG(res, sink.WithBase(sink.Frame(ctx)))
//
// # Main Packages
//
//   - [geom]: bbox type and partial-bound merging
//   - [glyph]: path templates for the reinforced/reduced markers
//   - [draw]: draw primitives and outline halos
//   - [symbol]: affiliations, colors and the symbol context
//   - [modifier]: option interpretation and modifier computation
//   - [sink]: SVG and JSON output
//   - [config]: TOML configuration
//   - [cache]: file and Redis artifact caches
//   - [pipeline]: request validation, caching and rendering
//   - [server]: HTTP API
//   - [errors]: coded errors
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/symbolmod/pkg/geom
// [glyph]: https://pkg.go.dev/github.com/matzehuels/symbolmod/pkg/glyph
// [draw]: https://pkg.go.dev/github.com/matzehuels/symbolmod/pkg/draw
// [symbol]: https://pkg.go.dev/github.com/matzehuels/symbolmod/pkg/symbol
// [symbol.Context]: https://pkg.go.dev/github.com/matzehuels/symbolmod/pkg/symbol#Context
// [modifier]: https://pkg.go.dev/github.com/matzehuels/symbolmod/pkg/modifier
// [modifier.Interpret]: https://pkg.go.dev/github.com/matzehuels/symbolmod/pkg/modifier#Interpret
// [modifier.Options]: https://pkg.go.dev/github.com/matzehuels/symbolmod/pkg/modifier#Options
// [modifier.Compute]: https://pkg.go.dev/github.com/matzehuels/symbolmod/pkg/modifier#Compute
// [modifier.Result]: https://pkg.go.dev/github.com/matzehuels/symbolmod/pkg/modifier#Result
// [sink]: https://pkg.go.dev/github.com/matzehuels/symbolmod/pkg/sink
// [config]: https://pkg.go.dev/github.com/matzehuels/symbolmod/pkg/config
// [cache]: https://pkg.go.dev/github.com/matzehuels/symbolmod/pkg/cache
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/symbolmod/pkg/pipeline
// [observability]: https://pkg.go.dev/github.com/matzehuels/symbolmod/pkg/observability
// [server]: https://pkg.go.dev/github.com/matzehuels/symbolmod/pkg/server
// [errors]: https://pkg.go.dev/github.com/matzehuels/symbolmod/pkg/errors
package pkg
