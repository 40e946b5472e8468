package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/canvas-classifier/internal/api/client"
	domain "github.com/donaldgifford/canvas-classifier/pkg/types"
)

func overridesCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "overrides",
		Short: "Manage manual overrides",
		Long: "Manage the stored manual overrides that pin a label to a supplier\n" +
			"item code. These commands need a running server with a database.",
	}

	root.AddCommand(
		overridesListCmd(),
		overridesGetCmd(),
		overridesSetCmd(),
		overridesDeleteCmd(),
		overridesRefreshCmd(),
	)

	return root
}

func overridesListCmd() *cobra.Command {
	var params apiclient.ListOverridesParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored overrides",
		Example: `  canvas-classifier overrides list
  canvas-classifier overrides list --prefix A- --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := newClient().ListOverrides(cmd.Context(), params)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), list)
			}
			if len(list.Overrides) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No overrides found.")
				return nil
			}
			return printOverrideTable(cmd.OutOrStdout(), list)
		},
	}

	cmd.Flags().StringVar(&params.ItemCodePrefix, "prefix", "", "item code prefix")
	cmd.Flags().StringVar(&params.Label, "label", "", "exact label")
	cmd.Flags().IntVar(&params.Limit, "limit", 0, "page size (server default 50)")
	cmd.Flags().IntVar(&params.Offset, "offset", 0, "page offset")
	cmd.Flags().StringVar(&params.OrderBy, "order-by", "", "sort field (item_code, updated_at)")
	return cmd
}

func overridesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <item-code>",
		Short:   "Show one override",
		Example: `  canvas-classifier overrides get A-100`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := newClient().GetOverride(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), o)
			}
			return printOverrideDetail(cmd.OutOrStdout(), o)
		},
	}
}

func overridesSetCmd() *cobra.Command {
	var label, code string

	cmd := &cobra.Command{
		Use:   "set <item-code>",
		Short: "Create or replace an override",
		Example: `  canvas-classifier overrides set A-100 --label 판넬 --code 10F
  canvas-classifier overrides set A-200 --code 3F`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			saved, err := newClient().SetOverride(cmd.Context(), &domain.ManualOverride{
				ItemCode: args[0],
				Label:    label,
				Code:     code,
			})
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), saved)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Override for %s saved.\n", saved.ItemCode)
			return nil
		},
	}

	cmd.Flags().StringVar(&label, "label", "", "base type label (catalog default when empty)")
	cmd.Flags().StringVar(&code, "code", "", "size code appended to the label")
	return cmd
}

func overridesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <item-code>",
		Short:   "Delete an override",
		Example: `  canvas-classifier overrides delete A-100`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newClient().DeleteOverride(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Override for %s deleted.\n", args[0])
			return nil
		},
	}
}

func overridesRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Reload the server's override snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := newClient().RefreshOverrides(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Overrides refreshed.")
			return nil
		},
	}
}
