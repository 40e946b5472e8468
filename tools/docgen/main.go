// Package main generates CLI reference documentation from the
// canvas-classifier command tree, plus the OpenAPI document of the server.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra/doc"

	"github.com/donaldgifford/canvas-classifier/cmd/canvas-classifier/cmd"
)

func main() {
	output := flag.String("output", "docs/cli", "output directory for generated markdown")
	openapi := flag.String("openapi", "docs/api/openapi.yaml", "path of the generated OpenAPI document; empty skips it")
	flag.Parse()

	if err := os.MkdirAll(*output, 0o750); err != nil {
		log.Fatalf("creating output directory: %v", err)
	}

	root := cmd.Root()
	root.DisableAutoGenTag = true

	if err := doc.GenMarkdownTree(root, *output); err != nil {
		log.Fatalf("generating docs: %v", err)
	}
	fmt.Printf("CLI docs generated in %s/\n", *output)

	if *openapi == "" {
		return
	}
	spec, err := cmd.OpenAPISpec("yaml")
	if err != nil {
		log.Fatalf("rendering OpenAPI document: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(*openapi), 0o750); err != nil {
		log.Fatalf("creating OpenAPI directory: %v", err)
	}
	if err := os.WriteFile(*openapi, spec, 0o600); err != nil {
		log.Fatalf("writing OpenAPI document: %v", err)
	}
	fmt.Printf("OpenAPI document written to %s\n", *openapi)
}
