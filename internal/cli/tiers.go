package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gedankenexperimenter/musicburst/internal/output"
)

func NewTiersCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "tiers <eaf_file>...",
		Short: "List the tier inventory of EAF files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(os.Stdout)

			inventories, failures := deps.App.ListTiers.Execute(args)
			for _, inv := range inventories {
				formatter.TierListHeader(inv.Name)
				if len(inv.Tiers) == 0 {
					formatter.Info("no tiers")
					continue
				}
				for _, tier := range inv.Tiers {
					formatter.TierListItem(tier.ID, tier.Annotations)
				}
			}

			if len(failures) > 0 {
				errFormatter := output.NewFormatter(os.Stderr)
				for _, err := range failures {
					errFormatter.Error(err.Error())
				}
				return fmt.Errorf("%d files could not be read", len(failures))
			}
			return nil
		},
	}
}
