package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/symbolmod/pkg/cache"
	"github.com/matzehuels/symbolmod/pkg/config"
	"github.com/matzehuels/symbolmod/pkg/modifier"
	"github.com/matzehuels/symbolmod/pkg/observability"
)

const keyTypeArtifact = "artifact"

// Runner encapsulates pipeline execution with caching.
//
// The Runner holds no per-request state, so one Runner can serve concurrent
// requests.
type Runner struct {
	Cache    cache.Cache
	Keyer    cache.Keyer
	Logger   *log.Logger
	Config   config.Config
	Computer modifier.Computer

	styleHash string
}

// NewRunner creates a runner. A nil cache disables caching and a nil keyer
// uses cache.DefaultKeyer.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger, cfg config.Config) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:     c,
		Keyer:     keyer,
		Logger:    logger,
		Config:    cfg,
		styleHash: styleHash(cfg),
	}
}

// Execute computes the modifiers for req and renders the requested formats.
// Only an invalid request fails; dropped options end up in Result.Diagnostics.
func (r *Runner) Execute(ctx context.Context, req Request) (*Result, error) {
	if req.Logger == nil {
		req.Logger = r.Logger
	}
	if err := req.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := req.Logger

	sym := r.Config.Symbol(req.Metadata())
	if req.BBox != nil {
		sym.BBox = *req.BBox
	}
	opts, diags := modifier.Interpret(req.Options)

	result := &Result{Symbol: sym, Options: opts, Diagnostics: diags}

	hooks := observability.Render()
	hooks.OnComputeStart(ctx, sym.Metadata.Affiliation.String(), opts.String())
	start := time.Now()
	result.Modifiers = r.Computer.Compute(sym, opts)
	result.Stats.ComputeTime = time.Since(start)
	hooks.OnComputeComplete(ctx, sym.Metadata.Affiliation.String(), len(result.Modifiers.Foreground), result.Stats.ComputeTime, diags)

	if diags != nil {
		logger.Warn("ignored invalid options", "err", diags)
	}
	logger.Debug("computed modifiers",
		"affiliation", sym.Metadata.Affiliation,
		"options", opts,
		"background", len(result.Modifiers.Background),
		"foreground", len(result.Modifiers.Foreground),
		"bbox", result.Modifiers.BBox)

	hooks.OnRenderStart(ctx, req.Formats)
	start = time.Now()
	artifacts, hit, err := r.RenderWithCacheInfo(ctx, result, req)
	result.Stats.RenderTime = time.Since(start)
	hooks.OnRenderComplete(ctx, req.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.CacheHit = hit

	logger.Debug("rendered outputs", "formats", req.Formats, "cached", hit, "duration", result.Stats.RenderTime)
	return result, nil
}

// RenderWithCacheInfo renders every requested format, serving them from the
// cache when all are present. Cache failures are reported to the hooks and
// otherwise ignored.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, result *Result, req Request) (map[string][]byte, bool, error) {
	if err := req.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	hooks := observability.Cache()
	keys := make(map[string]string, len(req.Formats))
	for _, format := range req.Formats {
		keys[format] = r.Keyer.SymbolKey(r.keyOpts(req, result, format))
	}

	if !req.Refresh {
		artifacts := make(map[string][]byte, len(req.Formats))
		for _, format := range req.Formats {
			data, hit, err := r.Cache.Get(ctx, keys[format])
			if err != nil {
				hooks.OnCacheError(ctx, keyTypeArtifact, err)
				break
			}
			if !hit {
				break
			}
			artifacts[format] = data
		}
		if len(artifacts) == len(req.Formats) {
			hooks.OnCacheHit(ctx, keyTypeArtifact)
			return artifacts, true, nil
		}
		hooks.OnCacheMiss(ctx, keyTypeArtifact)
	}

	rendered, err := Render(result, req.Formats, *req.Padding)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		if err := r.Cache.Set(ctx, keys[format], data, r.Config.Cache.TTL); err != nil {
			hooks.OnCacheError(ctx, keyTypeArtifact, err)
			continue
		}
		hooks.OnCacheSet(ctx, keyTypeArtifact, len(data))
	}
	return rendered, false, nil
}

func (r *Runner) keyOpts(req Request, result *Result, format string) cache.SymbolKeyOpts {
	meta := result.Symbol.Metadata
	b, o := meta.BaseGeometry.BBox, result.Symbol.BBox
	return cache.SymbolKeyOpts{
		Affiliation: meta.Affiliation.String(),
		Dimension:   meta.Dimension.String(),
		HasBase:     meta.BaseGeometry.Present,
		BaseBBox:    [4]float64{b.X1, b.Y1, b.X2, b.Y2},
		BBox:        [4]float64{o.X1, o.Y1, o.X2, o.Y2},
		Options:     result.Options.Map(),
		Formats:     []string{format, fmt.Sprint(*req.Padding)},
		StyleHash:   r.styleHash,
	}
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
