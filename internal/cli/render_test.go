package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/symbolmod/pkg/errors"
	"github.com/matzehuels/symbolmod/pkg/geom"
	"github.com/matzehuels/symbolmod/pkg/observability"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "json", []string{"json"}},
		{"multiple formats", "svg, json", []string{"svg", "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRenderOptsRequest(t *testing.T) {
	opts := renderOpts{
		affiliation: "hostile",
		base:        "0,0,100,100",
		bbox:        "0,-10,100,100",
		reinforced:  "(±)",
		signature:   true,
		hq:          "TOC",
		stack:       -1,
	}
	req, err := opts.request()
	if err != nil {
		t.Fatal(err)
	}
	if req.Base == nil || *req.Base != geom.New(0, 0, 100, 100) {
		t.Errorf("Base = %v", req.Base)
	}
	if req.BBox == nil || req.BBox.Y1 != -10 {
		t.Errorf("BBox = %v", req.BBox)
	}
	want := map[string]any{"reinforced": "(±)", "signature": "!", "specialheadquarter": "TOC", "stack": -1}
	for k, v := range want {
		if req.Options[k] != v {
			t.Errorf("Options[%q] = %v, want %v", k, req.Options[k], v)
		}
	}

	none, err := renderOpts{base: "none"}.request()
	if err != nil {
		t.Fatal(err)
	}
	if none.Base != nil || len(none.Options) != 0 {
		t.Errorf("base=none request = %+v", none)
	}

	if _, err := (renderOpts{base: "1,2"}).request(); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("bad --base error = %v", err)
	}
}

func TestOutputPaths(t *testing.T) {
	single := outputPaths("out/unit.svg", []string{"svg"})
	if single["svg"] != "out/unit.svg" {
		t.Errorf("single = %v", single)
	}
	multi := outputPaths("out/unit.svg", []string{"svg", "json"})
	if multi["svg"] != "out/unit.svg" || multi["json"] != "out/unit.json" {
		t.Errorf("multi = %v", multi)
	}
}

// setupCLI isolates the XDG directories and captures output.
func setupCLI(t *testing.T) (*CLI, *bytes.Buffer) {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", filepath.Join(t.TempDir(), "cache"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(t.TempDir(), "config"))

	var doc bytes.Buffer
	oldUI, oldDoc := uiOut, docOut
	uiOut, docOut = io.Discard, &doc
	t.Cleanup(func() {
		uiOut, docOut = oldUI, oldDoc
		observability.Reset()
	})
	return New(io.Discard, LogInfo), &doc
}

func TestRenderCommandFiles(t *testing.T) {
	c, _ := setupCLI(t)
	out := filepath.Join(t.TempDir(), "nested", "unit")

	err := c.Execute(context.Background(), []string{
		"render", "-a", "hostile", "-r", "(+)", "--signature", "--hq", "FWD HQ", "--stack", "2",
		"-f", "svg,json", "-o", out,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	svg, err := os.ReadFile(out + ".svg")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(svg), "<svg") || !strings.Contains(string(svg), ">FWD HQ</text>") {
		t.Errorf("unexpected svg:\n%s", svg)
	}
	js, err := os.ReadFile(out + ".json")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(js), `"stack": 2`) {
		t.Errorf("json should record the options:\n%s", js)
	}
}

func TestRenderCommandStdout(t *testing.T) {
	c, doc := setupCLI(t)

	if err := c.Execute(context.Background(), []string{"render", "-r", "(-)", "-f", "json", "--no-cache"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(doc.String(), `"foreground"`) {
		t.Errorf("stdout = %s", doc.String())
	}

	err := c.Execute(context.Background(), []string{"render", "-f", "svg,json"})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("multiple formats without --output: %v", err)
	}
}

func TestRenderCommandConfig(t *testing.T) {
	c, doc := setupCLI(t)
	path := filepath.Join(t.TempDir(), "symbolmod.toml")
	os.WriteFile(path, []byte("[style]\noutline_width = 3\noutline_color = \"white\"\n"), 0644)

	err := c.Execute(context.Background(), []string{"--config", path, "render", "-r", "(+)", "--no-cache"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(doc.String(), `stroke="white" stroke-width="10"`) {
		t.Errorf("outline halo missing from svg:\n%s", doc.String())
	}
}

func TestRenderCommandBadConfig(t *testing.T) {
	c, _ := setupCLI(t)
	path := filepath.Join(t.TempDir(), "bad.toml")
	os.WriteFile(path, []byte("[style]\nunknown = 1\n"), 0644)

	err := c.Execute(context.Background(), []string{"--config", path, "render"})
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("err = %v, want INVALID_CONFIG", err)
	}
}

func TestCacheCommands(t *testing.T) {
	c, doc := setupCLI(t)
	ctx := context.Background()

	if err := c.Execute(ctx, []string{"render", "-r", "(+)", "-o", filepath.Join(t.TempDir(), "a.svg")}); err != nil {
		t.Fatal(err)
	}
	if err := c.Execute(ctx, []string{"cache", "path"}); err != nil {
		t.Fatal(err)
	}
	dir := strings.TrimSpace(doc.String())
	if !strings.HasSuffix(dir, appName) {
		t.Errorf("cache path = %q", dir)
	}
	entries, _ := filepath.Glob(filepath.Join(dir, "*", "*.json"))
	if len(entries) != 1 {
		t.Errorf("cache entries = %d, want 1", len(entries))
	}

	if err := c.Execute(ctx, []string{"cache", "clear"}); err != nil {
		t.Fatal(err)
	}
	entries, _ = filepath.Glob(filepath.Join(dir, "*", "*.json"))
	if len(entries) != 0 {
		t.Errorf("cache entries after clear = %d", len(entries))
	}
}

func TestConfigShow(t *testing.T) {
	c, doc := setupCLI(t)
	if err := c.Execute(context.Background(), []string{"config", "show"}); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"[style]", `fontfamily = "Arial"`, "[colors.frame]"} {
		if !strings.Contains(doc.String(), want) {
			t.Errorf("config show missing %q:\n%s", want, doc.String())
		}
	}
}
