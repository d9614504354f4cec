package cli

import (
	"github.com/phoswap/phodeploy/internal/cli/render"
	"github.com/phoswap/phodeploy/internal/usecase"
	"github.com/spf13/cobra"
)

// NewContractsCmd creates the contracts command group
func NewContractsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "contracts",
		Aliases: []string{"registry"},
		Short:   "Inspect and edit the contract registry",
		Long: `The registry maps logical contract names (pho, dev, farm, ...) to addresses,
separately for every network. It is stored in deployments/contracts.json.`,
	}

	cmd.AddCommand(newContractsListCmd())
	cmd.AddCommand(newContractsGetCmd())
	cmd.AddCommand(newContractsSetCmd())

	return cmd
}

func newContractsListCmd() *cobra.Command {
	var (
		all    bool
		output string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List registry entries of the selected network",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			renderer, err := render.NewContractsRenderer(cmd.OutOrStdout(), output)
			if err != nil {
				return err
			}

			result, err := app.ListContracts.Execute(cmd.Context(), usecase.ListContractsParams{
				Network: app.Config.NetworkName,
				All:     all,
			})
			if err != nil {
				return err
			}

			return renderer.Render(result)
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "List every network in the registry")
	cmd.Flags().StringVarP(&output, "output", "o", render.OutputTable, "Output format: table, json or yaml")

	return cmd
}

func newContractsGetCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "get <name>",
		Short: "Print the address recorded for a contract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			renderer, err := render.NewContractsRenderer(cmd.OutOrStdout(), output)
			if err != nil {
				return err
			}

			entry, err := app.ShowContract.Execute(cmd.Context(), app.Config.NetworkName, args[0])
			if err != nil {
				return withHint(err)
			}

			return renderer.RenderEntry(app.Config.NetworkName, entry)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", render.OutputTable, "Output format: table, json or yaml")

	return cmd
}

func newContractsSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <name> <address>",
		Short: "Record an address in the registry",
		Long: `Record name -> address for the selected network, replacing any previous
entry. Use this to register the pho token and dev address before deploying,
or to reconcile a deployment whose registry write failed.`,
		Example: `  phodeploy contracts set pho 0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed -n mainnet`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.SetContract.Execute(cmd.Context(), app.Config.NetworkName, args[0], args[1])
			if err != nil {
				return err
			}

			if result.Previous != "" && result.Previous != result.Entry.Address {
				cmd.PrintErrln(render.FormatWarning("replaced " + result.Previous))
			}
			return nil
		},
	}
}
