package modifier

import (
	"encoding/json"

	"github.com/matzehuels/symbolmod/pkg/glyph"
)

// ReinforcementKind enumerates the forms the reinforced/reduced indicator takes.
type ReinforcementKind int

const (
	NoReinforcement ReinforcementKind = iota
	Reinforced                        // "(+)"
	Reduced                           // "(-)"
	ReinforcedReduced                 // "(±)"
	CustomReinforcement               // any other text, drawn literally
)

// Literal tokens that select a predefined glyph.
const (
	TokenPlus      = "(+)"
	TokenMinus     = "(-)"
	TokenPlusMinus = "(±)"
)

// Reinforcement is the decoded value of the reinforced option.
// The zero value is NoReinforcement.
type Reinforcement struct {
	kind ReinforcementKind
	text string
}

// Plus, Minus and PlusMinus return the glyph-backed indicators.
func Plus() Reinforcement      { return Reinforcement{kind: Reinforced, text: TokenPlus} }
func Minus() Reinforcement     { return Reinforcement{kind: Reduced, text: TokenMinus} }
func PlusMinus() Reinforcement { return Reinforcement{kind: ReinforcedReduced, text: TokenPlusMinus} }

// CustomText returns an indicator drawn as the literal text s.
// An empty s yields NoReinforcement.
func CustomText(s string) Reinforcement {
	if s == "" {
		return Reinforcement{}
	}
	return Reinforcement{kind: CustomReinforcement, text: s}
}

// ParseReinforcement decodes the option value. The three literal tokens map to
// their glyphs, the empty string to NoReinforcement and anything else to CustomText.
func ParseReinforcement(s string) Reinforcement {
	switch s {
	case "":
		return Reinforcement{}
	case TokenPlus:
		return Plus()
	case TokenMinus:
		return Minus()
	case TokenPlusMinus:
		return PlusMinus()
	default:
		return CustomText(s)
	}
}

func (r Reinforcement) Kind() ReinforcementKind { return r.kind }

// IsZero reports whether no indicator is requested.
func (r Reinforcement) IsZero() bool { return r.kind == NoReinforcement }

// String returns the option value r was decoded from.
func (r Reinforcement) String() string { return r.text }

// Glyph returns the template key for glyph-backed kinds.
func (r Reinforcement) Glyph() (glyph.Key, bool) {
	switch r.kind {
	case Reinforced:
		return glyph.Plus, true
	case Reduced:
		return glyph.Minus, true
	case ReinforcedReduced:
		return glyph.PlusMinus, true
	case NoReinforcement, CustomReinforcement:
		return "", false
	}
	return "", false
}

// MarshalJSON encodes r as its option string.
func (r Reinforcement) MarshalJSON() ([]byte, error) { return json.Marshal(r.text) }

// UnmarshalJSON decodes an option string with ParseReinforcement.
func (r *Reinforcement) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*r = ParseReinforcement(s)
	return nil
}
