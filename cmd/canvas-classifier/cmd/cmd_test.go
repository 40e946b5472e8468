package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/donaldgifford/canvas-classifier/internal/api/client"
	"github.com/donaldgifford/canvas-classifier/pkg/classify"
	domain "github.com/donaldgifford/canvas-classifier/pkg/types"
)

// execute runs the root command with args. Commands share global flag
// state, so callers must not run in parallel.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "canvas-classifier dev\n", out)
}

func TestClassifyCommand_Local(t *testing.T) {
	out, err := execute(t, "classify", "canvas", "53x45.5cm", "4.0x1.8cm")
	require.NoError(t, err)
	assert.Contains(t, out, "정왁구(주황) 10F")
	assert.Contains(t, out, "Code:")
	assert.Contains(t, out, "10F")
}

func TestConvertCommand_Local(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "order.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"ITEM NO", "DESCRIPTION", "QTY"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"A-1", "canvas triangle 45", "2"}))
	require.NoError(t, f.SaveAs(in))
	require.NoError(t, f.Close())

	out, err := execute(t, "convert", in)
	require.NoError(t, err)

	want := filepath.Join(dir, "order_분류결과.xlsx")
	assert.Contains(t, out, want)

	res, err := excelize.OpenFile(want)
	require.NoError(t, err)
	defer res.Close()

	label, err := res.GetCellValue("Sheet1_result", "A2")
	require.NoError(t, err)
	assert.Equal(t, "삼각형 45", label)
}

func TestConvertCommand_MissingFile(t *testing.T) {
	_, err := execute(t, "convert", filepath.Join(t.TempDir(), "missing.xlsx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading workbook")
}

func TestPrintResult(t *testing.T) {
	t.Parallel()

	n := 10
	var buf bytes.Buffer
	require.NoError(t, printResult(&buf, "canvas 53x45.5", &classify.Result{
		Label:      "일반(파랑) 10F",
		InDomain:   true,
		BaseType:   "일반(파랑)",
		Shape:      classify.ShapeRect,
		Size:       &domain.Dimension{Width: 53, Height: 45.5},
		Code:       "10F",
		SizeNumber: &n,
	}))

	out := buf.String()
	assert.Contains(t, out, "Label:")
	assert.Contains(t, out, "일반(파랑) 10F")
	assert.Contains(t, out, "53x45.5")
	assert.NotContains(t, out, "Override:")

	buf.Reset()
	require.NoError(t, printResult(&buf, "paper bag", &classify.Result{}))
	assert.Contains(t, buf.String(), "Label:")
	assert.NotContains(t, buf.String(), "Type:")
}

func TestPrintOverrideTable(t *testing.T) {
	t.Parallel()

	ts := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	var buf bytes.Buffer
	require.NoError(t, printOverrideTable(&buf, &client.OverrideList{
		Overrides: []domain.ManualOverride{
			{ItemCode: "A-100", Label: "판넬", Code: "10F", UpdatedAt: &ts},
			{ItemCode: "A-200", Code: "3F"},
		},
		Total: 5,
		Limit: 2,
	}))

	out := buf.String()
	assert.Contains(t, out, "ITEM CODE")
	assert.Contains(t, out, "2026-03-01 09:30:00")
	assert.Contains(t, out, "Showing 1-2 of 5")
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "short", in: "A-100", max: 10, want: "A-100"},
		{name: "ascii", in: "ABCDEFGHIJ", max: 6, want: "ABC..."},
		{name: "multibyte", in: "캔버스보드캔버스보드", max: 6, want: "캔버스..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, truncate(tt.in, tt.max))
		})
	}
}

func TestLoadConfig_Default(t *testing.T) {
	cfgFile = ""
	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)

	cfgFile = filepath.Join(t.TempDir(), "missing.yaml")
	t.Cleanup(func() { cfgFile = "" })
	_, err = loadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}

func TestMigrateCommand_NoDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: info\n"), 0o644))

	_, err := execute(t, "migrate", "--config", path)
	t.Cleanup(func() { cfgFile = "" })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no database configured")
}

func TestOpenAPISpec(t *testing.T) {
	t.Parallel()

	yamlDoc, err := OpenAPISpec("yaml")
	require.NoError(t, err)
	assert.Contains(t, string(yamlDoc), "canvas-classifier API")
	assert.Contains(t, string(yamlDoc), "/api/v1/classify:")
	assert.Contains(t, string(yamlDoc), "/api/v1/overrides/{item_code}:")

	jsonDoc, err := OpenAPISpec("json")
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(jsonDoc, &doc))
	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, paths, "/api/v1/catalog")
	assert.Contains(t, paths, "/api/v1/classify/batch")

	_, err = OpenAPISpec("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "xml"`)
}

func TestOpenAPICommand(t *testing.T) {
	out, err := execute(t, "openapi")
	require.NoError(t, err)
	assert.Contains(t, out, "openapi: 3.1.0")
}
