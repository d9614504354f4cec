package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/phoswap/phodeploy/internal/usecase"
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

// RenderNetworksList renders the list of networks
func (r *NetworksRenderer) RenderNetworksList(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured in phodeploy.toml [networks]")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)

	for _, network := range result.Networks {
		marker := "  "
		if network.Name == result.Current {
			marker = color.New(color.FgGreen).Sprint("* ")
		}

		contracts := color.New(color.Faint).Sprintf("(%d contracts)", network.Contracts)
		if network.Error != nil {
			fmt.Fprintf(r.out, "%s❌ %s - Error: %v %s\n", marker, network.Name, network.Error, contracts)
		} else {
			fmt.Fprintf(r.out, "%s✅ %s - Chain ID: %d %s\n", marker, network.Name, network.ChainID, contracts)
		}
	}

	return nil
}
