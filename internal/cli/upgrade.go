package cli

import (
	"github.com/phoswap/phodeploy/internal/cli/render"
	"github.com/phoswap/phodeploy/internal/usecase"
	"github.com/spf13/cobra"
)

// NewUpgradeCmd creates the upgrade command group
func NewUpgradeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Upgrade proxied contracts to a new implementation",
	}
	cmd.AddCommand(newUpgradeFarmCmd())
	return cmd
}

func newUpgradeFarmCmd() *cobra.Command {
	var skipCodeCheck bool

	cmd := &cobra.Command{
		Use:   "farm",
		Short: "Upgrade the farm proxy to the current PhoSwapFarming build",
		Long: `Deploy the current PhoSwapFarming artifact and point the proxy recorded as
"farm" at it. The proxy address in the registry does not change.`,
		Example: `  phodeploy upgrade farm --network mainnet`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			network := app.Config.NetworkName

			result, err := app.UpgradeFarm.Execute(cmd.Context(), usecase.UpgradeFarmParams{
				Network:       network,
				SkipCodeCheck: skipCodeCheck,
			})
			if err != nil {
				return withHint(err)
			}

			return render.NewFarmRenderer(cmd.OutOrStdout()).RenderUpgrade(result)
		},
	}

	cmd.Flags().BoolVar(&skipCodeCheck, "skip-code-check", false, "Do not check that the proxy has code before upgrading")

	return cmd
}
