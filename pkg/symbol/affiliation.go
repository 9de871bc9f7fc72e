package symbol

import (
	"strconv"
	"strings"

	"github.com/matzehuels/symbolmod/pkg/errors"
)

// Affiliation is the standard identity class of a symbol. It drives color selection.
type Affiliation int

const (
	Friend Affiliation = iota
	Hostile
	Neutral
	Unknown
	Civilian
	Suspect

	numAffiliations
)

var affiliationNames = [numAffiliations]string{
	Friend:   "Friend",
	Hostile:  "Hostile",
	Neutral:  "Neutral",
	Unknown:  "Unknown",
	Civilian: "Civilian",
	Suspect:  "Suspect",
}

func (a Affiliation) String() string {
	if !a.Valid() {
		return "Affiliation(" + strconv.Itoa(int(a)) + ")"
	}
	return affiliationNames[a]
}

// Valid reports whether a is one of the declared affiliations.
func (a Affiliation) Valid() bool { return a >= 0 && a < numAffiliations }

// Affiliations returns every affiliation in declaration order.
func Affiliations() []Affiliation {
	out := make([]Affiliation, numAffiliations)
	for i := range out {
		out[i] = Affiliation(i)
	}
	return out
}

// ParseAffiliation matches name case-insensitively against the affiliation names.
func ParseAffiliation(name string) (Affiliation, error) {
	for i, n := range affiliationNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Affiliation(i), nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidAffiliation, "unknown affiliation: %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (a Affiliation) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidAffiliation, "unknown affiliation: %d", int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Affiliation) UnmarshalText(b []byte) error {
	v, err := ParseAffiliation(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Dimension is the battle dimension a symbol operates in.
type Dimension int

const (
	Ground Dimension = iota
	Air
	Sea
	Subsurface
	Space

	numDimensions
)

var dimensionNames = [numDimensions]string{
	Ground:     "Ground",
	Air:        "Air",
	Sea:        "Sea",
	Subsurface: "Subsurface",
	Space:      "Space",
}

func (d Dimension) String() string {
	if d < 0 || d >= numDimensions {
		return "Dimension(" + strconv.Itoa(int(d)) + ")"
	}
	return dimensionNames[d]
}

// ParseDimension matches name case-insensitively against the dimension names.
// The empty string yields Ground.
func ParseDimension(name string) (Dimension, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Ground, nil
	}
	for i, n := range dimensionNames {
		if strings.EqualFold(n, name) {
			return Dimension(i), nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidDimension, "unknown dimension: %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (d Dimension) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Dimension) UnmarshalText(b []byte) error {
	v, err := ParseDimension(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
