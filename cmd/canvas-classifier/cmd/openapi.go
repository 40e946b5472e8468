package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/canvas-classifier/internal/api/handlers"
	"github.com/donaldgifford/canvas-classifier/internal/engine"
	"github.com/donaldgifford/canvas-classifier/pkg/catalog"
	"github.com/donaldgifford/canvas-classifier/pkg/classify"
)

func openapiCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "openapi",
		Short: "Print the OpenAPI document of the HTTP API",
		Example: `  canvas-classifier openapi > openapi.yaml
  canvas-classifier openapi --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := OpenAPISpec(format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "document format (yaml, json)")
	return cmd
}

// OpenAPISpec renders the API document a server with a database would
// serve at /openapi.json, in yaml or json.
func OpenAPISpec(format string) ([]byte, error) {
	cat, err := catalog.Default()
	if err != nil {
		return nil, err
	}
	eng := engine.NewEngine(classify.New(cat))

	api := humaecho.New(echo.New(), apiConfig())
	registerAPI(api, eng)
	handlers.RegisterOverrideRoutes(api, handlers.NewOverridesHandler(nil, eng))

	switch format {
	case "yaml":
		return api.OpenAPI().YAML()
	case "json":
		data, err := json.MarshalIndent(api.OpenAPI(), "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown format %q (want yaml or json)", format)
	}
}
