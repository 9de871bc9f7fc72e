package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/symbolmod/pkg/errors"
	"github.com/matzehuels/symbolmod/pkg/geom"
	"github.com/matzehuels/symbolmod/pkg/symbol"
)

func TestDefault(t *testing.T) {
	c := Default()

	assert.Equal(t, "Arial", c.Style.FontFamily)
	assert.Equal(t, 40.0, c.Style.InfoSize)
	assert.Equal(t, 4.0, c.Style.StrokeWidth)
	assert.Zero(t, c.Style.OutlineWidth)
	assert.Equal(t, DefaultOutlineColor, c.Style.OutlineColor.Resolve(symbol.Friend))
	assert.True(t, c.Style.InfoColor.IsZero())

	for _, a := range symbol.Affiliations() {
		frame, ok := c.Colors.FrameColor.Get(a)
		assert.True(t, ok, a.String())
		assert.Equal(t, "black", frame)
		_, ok = c.Colors.FillColor.Get(a)
		assert.True(t, ok, a.String())
	}
	assert.Equal(t, 24*time.Hour, c.Cache.TTL)
	assert.Equal(t, ":8080", c.Server.Addr)
}

func TestParseOverlay(t *testing.T) {
	c, err := Parse(`
[style]
info_size = 30
outline_width = 2
info_color = { hostile = "red", Friend = "#00f" }

[colors.frame]
Hostile = "rgb(200, 0, 0)"

[cache]
ttl = "1h"
redis = "localhost:6379"
`)
	require.NoError(t, err)

	assert.Equal(t, 30.0, c.Style.InfoSize)
	assert.Equal(t, 2.0, c.Style.OutlineWidth)
	assert.Equal(t, "Arial", c.Style.FontFamily, "unset keys keep defaults")

	require.True(t, c.Style.InfoColor.IsMapped())
	assert.Equal(t, "red", c.Style.InfoColor.Resolve(symbol.Hostile))
	assert.Equal(t, "#00f", c.Style.InfoColor.Resolve(symbol.Friend))

	frame, ok := c.Colors.FrameColor.Get(symbol.Hostile)
	assert.True(t, ok)
	assert.Equal(t, "rgb(200, 0, 0)", frame)
	_, ok = c.Colors.FrameColor.Get(symbol.Friend)
	assert.False(t, ok, "a frame table replaces the default table")

	_, ok = c.Colors.FillColor.Get(symbol.Friend)
	assert.True(t, ok, "omitted tables keep defaults")

	assert.Equal(t, time.Hour, c.Cache.TTL)
	assert.Equal(t, "localhost:6379", c.Cache.Redis)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"syntax", `[style`},
		{"unknown key", "[style]\nfont = \"x\""},
		{"unknown affiliation", "[colors.fill]\nPending = \"red\""},
		{"bad color", "[colors.icon]\nFriend = \"not a color!\""},
		{"bad info size", "[style]\ninfo_size = 0"},
		{"negative width", "[style]\noutline_width = -1"},
		{"bad ttl", "[cache]\nttl = \"soon\""},
		{"bad color value", "[style]\noutline_color = 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.doc)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig), "code = %s", errors.GetCode(err))
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.toml"))
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))

	path := filepath.Join(dir, "symbolmod.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server]\naddr = \":9090\"\n"), 0o644))
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", c.Server.Addr)
}

func TestEncodeRoundTrip(t *testing.T) {
	c, err := Parse("[style]\noutline_color = { Friend = \"white\" }\n")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, c.Encode(&buf))

	back, err := Parse(buf.String())
	require.NoError(t, err, buf.String())
	assert.Equal(t, c.Style, back.Style)
	assert.Equal(t, c.Colors, back.Colors)
}

func TestSymbol(t *testing.T) {
	base := geom.New(25, 50, 175, 150)
	ctx := Default().Symbol(symbol.Metadata{
		BaseGeometry: symbol.BaseGeometry{Present: true, BBox: base},
		Affiliation:  symbol.Neutral,
	})
	assert.Equal(t, base, ctx.BBox)
	frame, ok := ctx.FrameColor()
	assert.True(t, ok)
	assert.Equal(t, "black", frame)
}
