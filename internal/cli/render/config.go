package render

import (
	"io"

	"github.com/trebuchet-org/netcfg/internal/config"
	"github.com/trebuchet-org/netcfg/internal/usecase"
)

// ConfigRenderer renders the resolved configuration document
type ConfigRenderer struct {
	out    io.Writer
	format config.Format
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer, format config.Format) *ConfigRenderer {
	return &ConfigRenderer{
		out:    out,
		format: format,
	}
}

// Render writes the configuration in the selected format
func (r *ConfigRenderer) Render(result *usecase.ShowConfigResult) error {
	return config.Encode(r.out, result.Config, r.format, config.EncodeOptions{
		RevealSecrets: result.RevealSecrets,
	})
}

var _ Renderer[*usecase.ShowConfigResult] = (*ConfigRenderer)(nil)
