package pipeline

import (
	"bytes"

	"github.com/matzehuels/symbolmod/pkg/cache"
	"github.com/matzehuels/symbolmod/pkg/config"
	"github.com/matzehuels/symbolmod/pkg/sink"
)

// Render generates output artifacts in the requested formats.
func Render(result *Result, formats []string, padding float64) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(formats))
	for _, format := range formats {
		switch format {
		case FormatSVG:
			artifacts[format] = sink.RenderSVG(result.Modifiers,
				sink.WithBase(sink.Frame(result.Symbol)),
				sink.WithPadding(padding))
		case FormatJSON:
			data, err := sink.RenderJSON(result.Modifiers,
				sink.WithJSONOptions(result.Options),
				sink.WithJSONIndent())
			if err != nil {
				return nil, err
			}
			artifacts[format] = data
		default:
			return nil, ValidateFormat(format)
		}
	}
	return artifacts, nil
}

// styleHash fingerprints the configured style so that cached artifacts are
// not served after the configuration changes.
func styleHash(cfg config.Config) string {
	var buf bytes.Buffer
	if err := cfg.Encode(&buf); err != nil {
		return ""
	}
	return cache.Hash(buf.Bytes())
}
