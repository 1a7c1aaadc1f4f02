package render

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/params"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"
	"github.com/trebuchet-org/netcfg/internal/usecase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out io.Writer
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer) *NetworksRenderer {
	return &NetworksRenderer{
		out: out,
	}
}

// Render renders the list of networks as a table
func (r *NetworksRenderer) Render(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateHeader = true
	t.AppendHeader(table.Row{"Network", "Kind", "Endpoint", "Signers", "Gas", "Gas Price"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})

	title := cases.Title(language.English)
	for _, network := range result.Networks {
		name := network.Name
		if network.Default {
			name += " *"
		}

		if network.Error != nil {
			t.AppendRow(table.Row{name, "", "", color.New(color.FgRed).Sprintf("❌ %v", network.Error), "", ""})
			continue
		}

		info := network.Info
		row := table.Row{name, title.String(string(info.Kind)), "-", "-", "-", "-"}
		if remote := info.Profile.Remote; remote != nil {
			row[2] = EndpointHost(remote.URL)
			row[3] = strings.Join(lo.Map(info.Signers, func(a common.Address, _ int) string {
				return a.Hex()
			}), ", ")
			row[4] = fmt.Sprintf("%d", remote.Gas)
			row[5] = FormatGasPrice(remote.GasPrice)
		} else if local := info.Profile.Local; local != nil && local.AllowUnlimitedContractSize {
			row[2] = "in-memory (unlimited contract size)"
		}
		t.AppendRow(row)
	}

	t.Render()
	return nil
}

// EndpointHost returns scheme and host of an RPC URL, dropping any path or
// query where providers embed API keys.
func EndpointHost(rawURL string) string {
	if rawURL == "" {
		return color.New(color.FgYellow).Sprint("(not set)")
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return color.New(color.FgYellow).Sprint("(invalid)")
	}
	host := u.Scheme + "://" + u.Host
	if (u.Path != "" && u.Path != "/") || u.RawQuery != "" {
		host += "/…"
	}
	return host
}

// FormatGasPrice renders a wei amount, switching to gwei when it divides evenly
func FormatGasPrice(wei uint64) string {
	if wei != 0 && wei%params.GWei == 0 {
		return fmt.Sprintf("%d gwei", wei/params.GWei)
	}
	return fmt.Sprintf("%d wei", wei)
}

var _ Renderer[*usecase.ListNetworksResult] = (*NetworksRenderer)(nil)
