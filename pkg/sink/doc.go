// Package sink provides output format renderers for modifier results.
//
// # Overview
//
// A "sink" transforms a computed [modifier.Result] into a final output format:
//
//   - SVG: a standalone document or an embeddable fragment
//   - JSON: the layers and bbox for external renderers
//
// # SVG Output
//
// [RenderSVG] draws the background layer, the base icon passed with
// [WithBase], then the foreground layer, inside a viewBox equal to the
// result bbox:
//
//	svg := sink.RenderSVG(res,
//	    sink.WithBase(sink.Frame(ctx)),
//	    sink.WithPadding(5),
//	)
//
// [Frame] builds a rectangular placeholder from the base bbox for previews.
//
// # JSON Output
//
// [RenderJSON] keeps the background/foreground/bbox structure:
//
//	data, err := sink.RenderJSON(res, sink.WithJSONOptions(opts))
//
// [modifier.Result]: github.com/matzehuels/symbolmod/pkg/modifier.Result
package sink
