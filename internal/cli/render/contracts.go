package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/phoswap/phodeploy/internal/domain"
	"github.com/phoswap/phodeploy/internal/usecase"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --output
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// ContractsRenderer renders registry entries
type ContractsRenderer struct {
	out    io.Writer
	format string
}

// NewContractsRenderer creates a new contracts renderer
func NewContractsRenderer(out io.Writer, format string) (*ContractsRenderer, error) {
	switch format {
	case "", OutputTable:
		format = OutputTable
	case OutputJSON, OutputYAML:
	default:
		return nil, fmt.Errorf("invalid output format %q (valid: table, json, yaml)", format)
	}
	return &ContractsRenderer{out: out, format: format}, nil
}

// Render renders the registry listing
func (r *ContractsRenderer) Render(result *usecase.ContractListResult) error {
	switch r.format {
	case OutputJSON:
		return r.renderJSON(result)
	case OutputYAML:
		return r.renderYAML(result)
	}

	for i, network := range result.Networks {
		if i > 0 {
			fmt.Fprintln(r.out)
		}
		fmt.Fprintln(r.out, color.New(color.FgMagenta, color.Bold).Sprint(network.Network))

		if len(network.Contracts) == 0 {
			fmt.Fprintln(r.out, color.New(color.Faint).Sprint("  no contracts recorded"))
			continue
		}
		fmt.Fprintln(r.out, renderEntries(network.Contracts))
	}
	return nil
}

// RenderEntry renders a single registry entry
func (r *ContractsRenderer) RenderEntry(network string, entry *domain.ContractEntry) error {
	switch r.format {
	case OutputJSON:
		return json.NewEncoder(r.out).Encode(entry)
	case OutputYAML:
		return yaml.NewEncoder(r.out).Encode(entry)
	}
	fmt.Fprintln(r.out, entry.Address)
	return nil
}

// renderJSON emits {"network": {"name": "address"}}, the registry file layout
func (r *ContractsRenderer) renderJSON(result *usecase.ContractListResult) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(toNested(result))
}

func (r *ContractsRenderer) renderYAML(result *usecase.ContractListResult) error {
	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(toNested(result))
}

func toNested(result *usecase.ContractListResult) map[string]map[string]string {
	nested := make(map[string]map[string]string, len(result.Networks))
	for _, network := range result.Networks {
		entries := make(map[string]string, len(network.Contracts))
		for _, c := range network.Contracts {
			entries[c.Name] = c.Address
		}
		nested[network.Network] = entries
	}
	return nested
}

func renderEntries(entries []domain.ContractEntry) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateHeader = false
	t.Style().Box = table.BoxStyle{
		PaddingLeft:  "  ",
		PaddingRight: "   ",
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft},
	})

	for _, e := range entries {
		t.AppendRow(table.Row{
			color.New(color.FgWhite, color.Bold).Sprint(e.Name),
			FormatAddress(e.Address),
		})
	}
	return t.Render()
}

var _ Renderer[*usecase.ContractListResult] = (*ContractsRenderer)(nil)
