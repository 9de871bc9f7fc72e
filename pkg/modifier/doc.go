// Package modifier computes the strength, signature and special headquarters
// decorations drawn around a tactical symbol.
//
// # Overview
//
// Three independent modifiers are supported:
//
//   - Reinforced/reduced indicator: "(+)", "(-)" or "(±)" drawn from a
//     predefined glyph to the upper right of the frame, or any other text
//     drawn literally at the same spot.
//   - Signature marker: a bold "!" to the lower right of the frame, marking a
//     dummy or feint unit.
//   - Special headquarters label: short bold text centered on the icon, sized
//     by its length.
//
// Each one is drawn only when its option is set. Side modifiers shift right
// by [StackOffset] when several symbols are echeloned together, and grow the
// symbol bbox to fit. With an outline width configured, a halo of all
// foreground primitives is placed in the background layer.
//
// # Usage
//
//	opts, err := modifier.Interpret(map[string]any{
//	    "reinforced": "(+)",
//	    "signature":  "!",
//	    "stack":      2,
//	})
//	if err != nil {
//	    // err lists the options that were skipped; opts holds the rest
//	}
//	res := modifier.Compute(ctx, opts)
//	// draw res.Background, the base icon, then res.Foreground
//
// Compute is a pure function of its arguments and can be called from many
// goroutines at once.
package modifier
