package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/netcfg/internal/domain/config"
	"github.com/trebuchet-org/netcfg/internal/usecase"
)

// CheckRenderer renders validation results
type CheckRenderer struct {
	out io.Writer
}

// NewCheckRenderer creates a new check renderer
func NewCheckRenderer(out io.Writer) *CheckRenderer {
	return &CheckRenderer{
		out: out,
	}
}

// Render prints one line per problem, or a success line
func (r *CheckRenderer) Render(result *usecase.CheckConfigResult) error {
	if result.Policy == config.MissingEnvPropagate {
		fmt.Fprintln(r.out, FormatWarning("missing environment values are propagated (--allow-missing-env)"))
	}

	if result.Valid() {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Configuration is valid (%d networks)", len(result.Networks))))
		return nil
	}

	for _, problem := range result.Problems {
		fmt.Fprintln(r.out, FormatError(problem.Error()))
	}
	return nil
}

var _ Renderer[*usecase.CheckConfigResult] = (*CheckRenderer)(nil)
