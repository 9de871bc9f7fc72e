package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/symbolmod/pkg/errors"
	"github.com/matzehuels/symbolmod/pkg/geom"
	"github.com/matzehuels/symbolmod/pkg/modifier"
	"github.com/matzehuels/symbolmod/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string  // output file (single format) or base path (multiple)
	affiliation string  // standard identity
	dimension   string  // battle dimension
	base        string  // base geometry bbox "x1,y1,x2,y2", or "none"
	bbox        string  // overall bbox so far; defaults to base
	formats     string  // comma-separated output formats
	padding     float64 // viewBox padding around the result bbox
	noCache     bool    // disable the artifact cache
	refresh     bool    // re-render even when cached

	reinforced string // "(+)", "(-)", "(±)" or free text
	signature  bool   // draw the "!" signature marker
	hq         string // special headquarters label
	stack      int    // echelon stack count
}

func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		affiliation: "Friend",
		base:        formatBBox(pipeline.DefaultBase),
		padding:     pipeline.DefaultPadding,
	}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Compute modifiers for one symbol and write SVG or JSON",
		Example: `  symbolmod render --reinforced "(+)" --signature -o unit.svg
  symbolmod render -a hostile --hq "FWD HQ" --stack 2 -f svg,json -o unit
  symbolmod render --reinforced "(±)" -f json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple); stdout if empty")
	cmd.Flags().StringVarP(&opts.affiliation, "affiliation", "a", opts.affiliation, "affiliation: friend, hostile, neutral, unknown, civilian, suspect")
	cmd.Flags().StringVarP(&opts.dimension, "dimension", "d", "", "dimension: ground (default), air, sea, subsurface, space")
	cmd.Flags().StringVar(&opts.base, "base", opts.base, `base geometry bbox "x1,y1,x2,y2", or "none"`)
	cmd.Flags().StringVar(&opts.bbox, "bbox", "", "overall symbol bbox before modifiers (default: base)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), json (comma-separated)")
	cmd.Flags().Float64Var(&opts.padding, "padding", opts.padding, "viewBox padding around the symbol")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when cached")

	cmd.Flags().StringVarP(&opts.reinforced, "reinforced", "r", "", `reinforced/reduced marker: "(+)", "(-)", "(±)" or custom text`)
	cmd.Flags().BoolVarP(&opts.signature, "signature", "s", false, `draw the "!" signature marker`)
	cmd.Flags().StringVar(&opts.hq, "hq", "", "special headquarters label")
	cmd.Flags().IntVar(&opts.stack, "stack", 0, "number of symbols stacked behind this one")

	return cmd
}

// request converts the flags into a pipeline request. Only flags that were
// set become options.
func (o renderOpts) request() (pipeline.Request, error) {
	req := pipeline.Request{
		Affiliation: o.affiliation,
		Dimension:   o.dimension,
		Formats:     parseFormats(o.formats),
		Padding:     &o.padding,
		Refresh:     o.refresh,
		Options:     make(map[string]any),
	}
	if o.base != "none" {
		b, err := geom.Parse(o.base)
		if err != nil {
			return req, errors.Wrap(errors.ErrCodeInvalidInput, err, "--base")
		}
		req.Base = &b
	}
	if o.bbox != "" {
		b, err := geom.Parse(o.bbox)
		if err != nil {
			return req, errors.Wrap(errors.ErrCodeInvalidInput, err, "--bbox")
		}
		req.BBox = &b
	}

	if o.reinforced != "" {
		req.Options[modifier.KeyReinforced] = o.reinforced
	}
	if o.signature {
		req.Options[modifier.KeySignature] = modifier.SignatureDummy
	}
	if o.hq != "" {
		req.Options[modifier.KeySpecialHeadquarters] = o.hq
	}
	if o.stack != 0 {
		req.Options[modifier.KeyStack] = o.stack
	}
	return req, nil
}

func (c *CLI) runRender(ctx context.Context, opts renderOpts) error {
	logger := loggerFromContext(ctx)

	req, err := opts.request()
	if err != nil {
		return err
	}
	req.Logger = logger

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	res, err := runner.Execute(ctx, req)
	if err != nil {
		return err
	}
	prog.done("Rendered " + strings.Join(req.Formats, ", "))

	for _, d := range errors.Diagnostics(res.Diagnostics) {
		printWarning("ignored %s", errors.UserMessage(d))
	}

	if opts.output == "" {
		if len(req.Formats) > 1 {
			return errors.New(errors.ErrCodeInvalidInput, "--output is required for multiple formats")
		}
		_, err := docOut.Write(res.Artifacts[req.Formats[0]])
		return err
	}

	paths := outputPaths(opts.output, req.Formats)
	for _, format := range req.Formats {
		if err := writeFile(paths[format], res.Artifacts[format]); err != nil {
			return err
		}
	}

	printSuccess("Rendered %s modifiers", res.Symbol.Metadata.Affiliation)
	printStats(len(res.Modifiers.Foreground), res.Modifiers.BBox.String(), res.CacheHit)
	for _, format := range req.Formats {
		printFile(paths[format])
	}
	return nil
}

// outputPaths maps formats to files. A single format writes to output as
// given; several formats share output as a base path with the format as
// extension.
func outputPaths(output string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 {
		paths[formats[0]] = output
		return paths
	}
	base := strings.TrimSuffix(output, filepath.Ext(output))
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func formatBBox(b geom.BBox) string {
	return fmt.Sprintf("%g,%g,%g,%g", b.X1, b.Y1, b.X2, b.Y2)
}
