package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/canvas-classifier/pkg/classify"
	"github.com/donaldgifford/canvas-classifier/pkg/logger"
)

func classifyCmd() *cobra.Command {
	var itemCode string

	cmd := &cobra.Command{
		Use:   "classify <description>",
		Short: "Classify a product description",
		Long: "Classify prints the label for one product description. Words are\n" +
			"joined with spaces, so quoting is optional.",
		Example: `  canvas-classifier classify "Birch Panel 22.7x15.8 CANVAS"
  canvas-classifier classify --item-code A-100 canvas 53x45.5
  canvas-classifier classify --server http://localhost:8080 --output json canvas dia 30`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")

			res, err := classifyText(cmd.Context(), itemCode, text)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), res)
			}
			return printResult(cmd.OutOrStdout(), text, res)
		},
	}

	cmd.Flags().StringVar(&itemCode, "item-code", "", "supplier item code, checked for manual overrides")
	return cmd
}

func classifyText(ctx context.Context, itemCode, text string) (*classify.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if remote() {
		return newClient().Classify(ctx, itemCode, text)
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	a, err := newApp(ctx, cfg, logger.Discard())
	if err != nil {
		return nil, err
	}
	defer a.Close()

	res := a.engine.Classify(itemCode, text)
	return &res, nil
}
