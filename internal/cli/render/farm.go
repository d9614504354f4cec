package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/phoswap/phodeploy/internal/domain"
	"github.com/phoswap/phodeploy/internal/usecase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FarmRenderer renders farm deployment and upgrade results
type FarmRenderer struct {
	out io.Writer
}

// NewFarmRenderer creates a new farm renderer
func NewFarmRenderer(out io.Writer) *FarmRenderer {
	return &FarmRenderer{out: out}
}

// RenderDeploy renders the result of a farm deployment
func (r *FarmRenderer) RenderDeploy(result *usecase.DeployFarmResult) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Deployed %s on %s", domain.FarmArtifactName, result.Network)))
	fmt.Fprintln(r.out)

	r.field("pho", result.Pho)
	r.field("dev", result.Dev)
	r.field("pho per block", result.Farm.PhoPerBlock)
	r.field("start block", result.Farm.StartBlock)
	fmt.Fprintln(r.out)
	r.renderDeployment(result.Deployment)
	return nil
}

// RenderUpgrade renders the result of a farm upgrade
func (r *FarmRenderer) RenderUpgrade(result *usecase.UpgradeFarmResult) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Upgraded %s on %s", domain.FarmArtifactName, result.Network)))
	fmt.Fprintln(r.out)
	r.renderDeployment(result.Deployment)
	return nil
}

func (r *FarmRenderer) renderDeployment(d *domain.ProxyDeployment) {
	r.field("proxy", FormatAddress(d.Proxy.Hex()))
	r.field("implementation", d.Implementation.Hex())
	r.field("proxy admin", d.Admin.Hex())
	for i, hash := range d.TxHashes {
		label := ""
		if i == 0 {
			label = "transactions"
		}
		r.field(label, color.New(color.Faint).Sprint(hash.Hex()))
	}
}

func (r *FarmRenderer) field(label, value string) {
	if label != "" {
		label = cases.Title(language.English).String(label) + ":"
	}
	fmt.Fprintf(r.out, "  %-16s %s\n", label, value)
}
