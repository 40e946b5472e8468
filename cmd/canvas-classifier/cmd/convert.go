package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/canvas-classifier/internal/api/client"
	"github.com/donaldgifford/canvas-classifier/internal/workbook"
	"github.com/donaldgifford/canvas-classifier/pkg/logger"
)

func convertCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "convert <workbook.xlsx>",
		Short: "Classify every sheet of a workbook",
		Long: "Convert writes a result workbook with a _result and a _summary sheet\n" +
			"for every input sheet. The output defaults to the input name with the\n" +
			"configured suffix, next to the input file.",
		Example: `  canvas-classifier convert order.xlsx
  canvas-classifier convert order.xlsx -o labelled.xlsx
  canvas-classifier convert --server http://localhost:8080 order.xlsx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := args[0]
			data, err := os.ReadFile(in) //nolint:gosec // path from CLI argument
			if err != nil {
				return fmt.Errorf("reading workbook: %w", err)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			result, name, err := convertWorkbook(ctx, in, data)
			if err != nil {
				return err
			}

			if outPath == "" {
				outPath = filepath.Join(filepath.Dir(in), name)
			}
			if err := os.WriteFile(outPath, result, 0o644); err != nil { //nolint:gosec // output is a user document
				return fmt.Errorf("writing result: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Wrote", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file path")
	return cmd
}

// convertWorkbook classifies data locally or on the server and returns
// the result bytes with the suggested file name.
func convertWorkbook(ctx context.Context, in string, data []byte) ([]byte, string, error) {
	if remote() {
		res, err := newClient().Convert(ctx, filepath.Base(in), bytes.NewReader(data))
		if err != nil {
			var apiErr *apiclient.APIError
			if errors.As(err, &apiErr) && apiErr.Sheet != "" {
				return nil, "", fmt.Errorf("server rejected sheet %q: %w", apiErr.Sheet, err)
			}
			return nil, "", err
		}
		name := res.Filename
		if name == "" {
			name = workbook.DownloadName(in, workbook.DefaultDownloadSuffix)
		}
		return res.Data, filepath.Base(name), nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, "", err
	}
	a, err := newApp(ctx, cfg, logger.Discard())
	if err != nil {
		return nil, "", err
	}
	defer a.Close()

	var out bytes.Buffer
	if _, err := a.engine.Convert(ctx, bytes.NewReader(data), &out); err != nil {
		return nil, "", err
	}
	return out.Bytes(), workbook.DownloadName(in, cfg.Upload.ResultSuffix), nil
}
