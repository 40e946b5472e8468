package cmd

import (
	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/canvas-classifier/internal/api/client"
)

func catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Summarize the reference catalog",
		Example: `  canvas-classifier catalog
  canvas-classifier catalog --config config.yaml --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := catalogSummary(cmd)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), s)
			}
			return printCatalogSummary(cmd.OutOrStdout(), s)
		},
	}
}

func catalogSummary(cmd *cobra.Command) (*apiclient.CatalogSummary, error) {
	if remote() {
		return newClient().Catalog(cmd.Context())
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}

	labels := make([]string, len(cat.TypeRules))
	for i := range cat.TypeRules {
		labels[i] = cat.TypeRules[i].Label
	}
	return &apiclient.CatalogSummary{
		Sizes:              len(cat.Sizes),
		TypeLabels:         labels,
		ThicknessRules:     len(cat.ThicknessRules),
		SizeTolerance:      cat.SizeTolerance,
		ThicknessTolerance: cat.ThicknessTolerance,
		DefaultTypeLabel:   cat.DefaultTypeLabel,
		StaticOverrides:    len(cat.Overrides),
		ActiveOverrides:    len(cat.Overrides),
	}, nil
}
