// Package config loads the symbolmod configuration file.
//
// The file is TOML. Every key is optional; missing keys keep the defaults
// returned by [Default], which match the stock milsymbol style:
//
//	[style]
//	fontfamily    = "Arial"
//	info_size     = 40
//	stroke_width  = 4
//	outline_width = 0
//	outline_color = "rgb(239, 239, 239)"
//	info_color    = { Hostile = "red" }   # a string or a per-affiliation table
//
//	[colors.frame]
//	Friend = "black"
//
//	[cache]
//	dir   = "~/.cache/symbolmod"
//	ttl   = "24h"
//	redis = "localhost:6379"
//
//	[server]
//	addr = ":8080"
package config

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/symbolmod/pkg/errors"
	"github.com/matzehuels/symbolmod/pkg/symbol"
)

// File mirrors the TOML document.
type File struct {
	Style  StyleFile  `toml:"style"`
	Colors ColorsFile `toml:"colors"`
	Cache  CacheFile  `toml:"cache"`
	Server ServerFile `toml:"server"`
}

type StyleFile struct {
	FontFamily   string     `toml:"fontfamily"`
	InfoSize     float64    `toml:"info_size"`
	OutlineWidth float64    `toml:"outline_width"`
	StrokeWidth  float64    `toml:"stroke_width"`
	OutlineColor ColorValue `toml:"outline_color"`
	InfoColor    ColorValue `toml:"info_color"`
}

type ColorsFile struct {
	Frame map[string]string `toml:"frame"`
	Icon  map[string]string `toml:"icon"`
	Fill  map[string]string `toml:"fill"`
}

type CacheFile struct {
	Dir      string `toml:"dir"`
	TTL      string `toml:"ttl"`
	Redis    string `toml:"redis"`
	Disabled bool   `toml:"disabled"`
}

type ServerFile struct {
	Addr string `toml:"addr"`
}

// ColorValue is a style color written either as a string or as a table keyed
// by affiliation name.
type ColorValue struct {
	Single string
	Mapped map[string]string
}

// UnmarshalTOML implements toml.Unmarshaler.
func (c *ColorValue) UnmarshalTOML(v any) error {
	switch x := v.(type) {
	case string:
		*c = ColorValue{Single: x}
	case map[string]any:
		m := make(map[string]string, len(x))
		for k, raw := range x {
			s, ok := raw.(string)
			if !ok {
				return fmt.Errorf("color for %q must be a string, got %T", k, raw)
			}
			m[k] = s
		}
		*c = ColorValue{Mapped: m}
	default:
		return fmt.Errorf("color must be a string or a table, got %T", v)
	}
	return nil
}

// MarshalTOML implements toml.Marshaler.
func (c ColorValue) MarshalTOML() ([]byte, error) {
	if c.Mapped == nil {
		return []byte(fmt.Sprintf("%q", c.Single)), nil
	}
	keys := make([]string, 0, len(c.Mapped))
	for k := range c.Mapped {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s = %q", k, c.Mapped[k]))
	}
	return []byte("{ " + strings.Join(parts, ", ") + " }"), nil
}

// Config is a validated configuration.
type Config struct {
	Style  symbol.Style
	Colors symbol.Colors
	Cache  Cache
	Server Server

	file File
}

type Cache struct {
	Dir      string
	TTL      time.Duration
	Redis    string
	Disabled bool
}

type Server struct {
	Addr string
}

// Default values.
const (
	DefaultFontFamily   = "Arial"
	DefaultInfoSize     = 40.0
	DefaultStrokeWidth  = 4.0
	DefaultOutlineColor = "rgb(239, 239, 239)"
	DefaultCacheTTL     = 24 * time.Hour
	DefaultAddr         = ":8080"
)

// DefaultFile returns the configuration document used when no file is given.
func DefaultFile() File {
	uniform := func(c string) map[string]string {
		m := make(map[string]string)
		for _, a := range symbol.Affiliations() {
			m[a.String()] = c
		}
		return m
	}
	return File{
		Style: StyleFile{
			FontFamily:   DefaultFontFamily,
			InfoSize:     DefaultInfoSize,
			StrokeWidth:  DefaultStrokeWidth,
			OutlineColor: ColorValue{Single: DefaultOutlineColor},
		},
		Colors: ColorsFile{
			Frame: uniform("black"),
			Icon:  uniform("black"),
			Fill: map[string]string{
				"Friend":   "rgb(128, 224, 255)",
				"Hostile":  "rgb(255, 128, 128)",
				"Neutral":  "rgb(170, 255, 170)",
				"Unknown":  "rgb(255, 255, 128)",
				"Civilian": "rgb(255, 161, 255)",
				"Suspect":  "rgb(255, 229, 153)",
			},
		},
		Cache:  CacheFile{TTL: DefaultCacheTTL.String()},
		Server: ServerFile{Addr: DefaultAddr},
	}
}

// Default returns the resolved default configuration.
func Default() Config {
	c, err := Resolve(DefaultFile())
	if err != nil {
		panic(err) // defaults are static
	}
	return c
}

// Load reads and validates the TOML file at path on top of the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	return Parse(string(data))
}

// Parse decodes a TOML document on top of the defaults. Unknown keys are an error.
// Color tables in the document replace the default table as a whole.
func Parse(doc string) (Config, error) {
	f := DefaultFile()
	f.Colors = ColorsFile{}
	md, err := toml.Decode(doc, &f)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	var unknown []string
	for _, k := range md.Undecoded() {
		if isColorTableKey(k) {
			continue
		}
		unknown = append(unknown, k.String())
	}
	if len(unknown) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(unknown, ", "))
	}

	def := DefaultFile()
	if f.Colors.Frame == nil {
		f.Colors.Frame = def.Colors.Frame
	}
	if f.Colors.Icon == nil {
		f.Colors.Icon = def.Colors.Icon
	}
	if f.Colors.Fill == nil {
		f.Colors.Fill = def.Colors.Fill
	}
	return Resolve(f)
}

// isColorTableKey reports whether k lies inside a style color table, which
// ColorValue decodes itself.
func isColorTableKey(k toml.Key) bool {
	return len(k) > 2 && k[0] == "style" && (k[1] == "outline_color" || k[1] == "info_color")
}

// Resolve validates f and converts it to a Config.
func Resolve(f File) (Config, error) {
	c := Config{file: f}

	var err error
	if c.Colors.FrameColor, err = palette("colors.frame", f.Colors.Frame); err != nil {
		return Config{}, err
	}
	if c.Colors.IconColor, err = palette("colors.icon", f.Colors.Icon); err != nil {
		return Config{}, err
	}
	if c.Colors.FillColor, err = palette("colors.fill", f.Colors.Fill); err != nil {
		return Config{}, err
	}

	if f.Style.InfoSize <= 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "style.info_size must be positive, got %g", f.Style.InfoSize)
	}
	if f.Style.OutlineWidth < 0 || f.Style.StrokeWidth < 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "style widths must not be negative")
	}
	c.Style = symbol.Style{
		FontFamily:   f.Style.FontFamily,
		InfoSize:     f.Style.InfoSize,
		OutlineWidth: f.Style.OutlineWidth,
		StrokeWidth:  f.Style.StrokeWidth,
	}
	if c.Style.OutlineColor, err = color("style.outline_color", f.Style.OutlineColor); err != nil {
		return Config{}, err
	}
	if c.Style.InfoColor, err = color("style.info_color", f.Style.InfoColor); err != nil {
		return Config{}, err
	}

	c.Cache = Cache{Dir: f.Cache.Dir, Redis: f.Cache.Redis, Disabled: f.Cache.Disabled, TTL: DefaultCacheTTL}
	if f.Cache.TTL != "" {
		if c.Cache.TTL, err = time.ParseDuration(f.Cache.TTL); err != nil {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "cache.ttl")
		}
	}
	c.Server = Server{Addr: f.Server.Addr}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	return c, nil
}

func palette(key string, m map[string]string) (symbol.Palette, error) {
	var p symbol.Palette
	for name, c := range m {
		a, err := symbol.ParseAffiliation(name)
		if err != nil {
			return p, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", key)
		}
		if err := errors.ValidateColor(c); err != nil {
			return p, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s.%s", key, name)
		}
		p = p.With(a, c)
	}
	return p, nil
}

func color(key string, v ColorValue) (symbol.Color, error) {
	if v.Mapped == nil {
		if err := errors.ValidateColor(v.Single); err != nil {
			return symbol.Color{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", key)
		}
		return symbol.SingleColor(v.Single), nil
	}
	p, err := palette(key, v.Mapped)
	if err != nil {
		return symbol.Color{}, err
	}
	return symbol.MappedColor(p), nil
}

// File returns the document c was resolved from.
func (c Config) File() File { return c.file }

// Encode writes c as a TOML document.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c.file)
}

// Symbol assembles a symbol context from c and the per-symbol metadata.
// The overall bbox starts as the base geometry's bbox.
func (c Config) Symbol(meta symbol.Metadata) symbol.Context {
	return symbol.Context{
		Metadata: meta,
		BBox:     meta.BaseGeometry.BBox,
		Colors:   c.Colors,
		Style:    c.Style,
	}
}
