package cli

import (
	"fmt"

	"github.com/phoswap/phodeploy/internal/cli/render"
	"github.com/phoswap/phodeploy/internal/domain"
	"github.com/phoswap/phodeploy/internal/usecase"
	"github.com/spf13/cobra"
)

// NewDeployCmd creates the deploy command group
func NewDeployCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy contracts behind upgradeable proxies",
	}
	cmd.AddCommand(newDeployFarmCmd())
	return cmd
}

func newDeployFarmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "farm",
		Short: "Deploy PhoSwapFarming behind a transparent proxy",
		Long: `Deploy PhoSwapFarming behind a transparent proxy and record the proxy
address as "farm" in the registry.

The pho token and dev address are read from the registry entries "pho" and
"dev" of the selected network. The farm is initialized with
initialize(pho, dev, phoPerBlock, startBlock).`,
		Example: `  # Deploy on mainnet with the configured parameters
  phodeploy deploy farm --network mainnet

  # Override the emission schedule
  phodeploy deploy farm -n bsc --pho-per-block 20000000000000000000 --start-block 12000000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			network := app.Config.NetworkName

			result, err := app.DeployFarm.Execute(cmd.Context(), usecase.DeployFarmParams{
				Network: network,
				Farm:    app.Config.Farm,
			})
			if err != nil {
				return withHint(err)
			}

			return render.NewFarmRenderer(cmd.OutOrStdout()).RenderDeploy(result)
		},
	}

	cmd.Flags().String("pho-per-block", "", fmt.Sprintf("PHO minted per block, in wei (default %s)", domain.DefaultPhoPerBlock))
	cmd.Flags().String("start-block", "", fmt.Sprintf("Block at which PHO mining starts (default %s)", domain.DefaultStartBlock))

	return cmd
}
