package modifier

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/symbolmod/pkg/errors"
	"github.com/matzehuels/symbolmod/pkg/glyph"
)

func TestParseReinforcement(t *testing.T) {
	tests := []struct {
		in   string
		kind ReinforcementKind
		key  glyph.Key
	}{
		{"", NoReinforcement, ""},
		{"(+)", Reinforced, glyph.Plus},
		{"(-)", Reduced, glyph.Minus},
		{"(±)", ReinforcedReduced, glyph.PlusMinus},
		{"+", CustomReinforcement, ""},
		{"(+/-)", CustomReinforcement, ""},
	}
	for _, tt := range tests {
		r := ParseReinforcement(tt.in)
		assert.Equal(t, tt.kind, r.Kind(), "kind of %q", tt.in)
		assert.Equal(t, tt.in, r.String())
		key, ok := r.Glyph()
		assert.Equal(t, tt.key, key)
		assert.Equal(t, tt.key != "", ok)
	}
}

func TestReinforcementJSON(t *testing.T) {
	var opts Options
	require.NoError(t, json.Unmarshal([]byte(`{"reinforced":"(-)","signature":"!","stack":2}`), &opts))
	assert.Equal(t, Reduced, opts.Reinforced.Kind())
	assert.Equal(t, "!", opts.Signature)
	assert.Equal(t, 2, opts.Stack)

	data, err := json.Marshal(opts)
	require.NoError(t, err)
	assert.JSONEq(t, `{"reinforced":"(-)","signature":"!","stack":2}`, string(data))
}

func TestInterpret(t *testing.T) {
	opts, err := Interpret(map[string]any{
		"reinforced":         "(±)",
		"signature":          "!",
		"specialheadquarter": "HQ",
		"stack":              float64(2),
		"size":               35, // belongs to another renderer
	})
	require.NoError(t, err)
	assert.Equal(t, Options{
		Reinforced:          PlusMinus(),
		Signature:           "!",
		SpecialHeadquarters: "HQ",
		Stack:               2,
	}, opts)
}

func TestInterpretStackTypes(t *testing.T) {
	for _, v := range []any{2, int64(2), int32(2), uint(2), 2.0} {
		opts, err := Interpret(map[string]any{"stack": v})
		require.NoError(t, err, "%T", v)
		assert.Equal(t, 2, opts.Stack, "%T", v)
	}
}

func TestInterpretSkipsInvalidOptions(t *testing.T) {
	opts, err := Interpret(map[string]any{
		"reinforced":         42,
		"signature":          "?",
		"specialheadquarter": []string{"HQ"},
		"stack":              1.5,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidOption))
	assert.Len(t, errors.Diagnostics(err), 4)
	assert.Equal(t, Options{}, opts)
}

func TestInterpretKeepsValidOptionsBesideInvalidOnes(t *testing.T) {
	opts, err := Interpret(map[string]any{
		"reinforced":         "(+)",
		"specialheadquarter": 7,
		"stack":              -1,
		"signature":          nil,
	})
	require.Error(t, err)
	assert.Len(t, errors.Diagnostics(err), 2)
	assert.Equal(t, Options{Reinforced: Plus()}, opts)
}

func TestInterpretRejectsControlCharacters(t *testing.T) {
	_, err := Interpret(map[string]any{"specialheadquarter": "H\x07Q"})
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidOption))
}

func TestInterpretAcceptsLongLabels(t *testing.T) {
	hq := strings.Repeat("A", 65)
	custom := strings.Repeat("é", 40)
	opts, err := Interpret(map[string]any{"specialheadquarter": hq, "reinforced": custom})
	require.NoError(t, err)
	assert.Equal(t, hq, opts.SpecialHeadquarters)
	assert.Equal(t, CustomText(custom), opts.Reinforced)

	res := Compute(testContext(), opts)
	require.Len(t, res.Foreground, 2)
	assert.Equal(t, 24.0, HeadquartersFontSize(hq))
}

func TestInterpretStackOutOfRange(t *testing.T) {
	for _, v := range []any{1e30, -1e30, int64(1) << 40, uint(1) << 40} {
		opts, err := Interpret(map[string]any{"stack": v})
		require.Error(t, err, "%T %v", v, v)
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidOption))
		assert.Contains(t, err.Error(), "stack out of range")
		assert.Zero(t, opts.Stack)
	}
}

func TestOptionsMapRoundTrip(t *testing.T) {
	in := Options{Reinforced: CustomText("+1"), Signature: "!", SpecialHeadquarters: "TOC", Stack: 3}
	out, err := Interpret(in.Map())
	require.NoError(t, err)
	assert.Equal(t, in, out)
	assert.Empty(t, Options{}.Map())
}

func TestOptionsValidate(t *testing.T) {
	assert.NoError(t, Options{Reinforced: Plus(), Signature: "!", Stack: 1}.Validate())

	err := Options{Signature: "x", Stack: -2}.Validate()
	require.Error(t, err)
	assert.Len(t, errors.Diagnostics(err), 2)
}
