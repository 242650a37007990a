package sheet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/fluidcss"
)

const typographySheet = `
rules:
  - selector: h1
    property: font-size
    breakpoints:
      - [0, 10]
      - [100, 50]
  - selector: .card
    property: padding
    breakpoints:
      - {viewport: 0, value: 10}
      - "50:30"
      - [100, 50]
  - selector: p
    property: margin
    breakpoints:
      - [100, 10]
      - [50, 30]
`

const layoutSheet = `
media = ""

[[rules]]
selector = "h2"
property = "width"
breakpoints = [[0, 10], [50, 30], [100, 50]]

[[rules]]
property = "height"
breakpoints = [[0, 10], [100, 50]]
`

func setupSheets(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "typography.yaml"), typographySheet)
	writeFile(t, filepath.Join(dir, "layout", "layout.toml"), layoutSheet)
	writeFile(t, filepath.Join(dir, "drafts", "ignored.yaml"), typographySheet)
	writeFile(t, filepath.Join(dir, "broken.yaml"), "rules:\n  - selector: a\n    breakpoints:\n      - [true, 1]\n")
	writeFile(t, filepath.Join(dir, ".gitignore"), "drafts/\n")
	return dir
}

func TestBuild(t *testing.T) {
	dir := setupSheets(t)
	outDir := filepath.Join(dir, "out")

	result, err := Build(BuildConfig{
		SourceDir: dir,
		Includes:  []string{"**/*.yaml", "**/*.toml"},
		OutputDir: outDir,
		MediaType: "screen",
		Verify:    true,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.FilesScanned) // broken.yaml, typography.yaml, layout.toml
	assert.Equal(t, 1, result.FilesSkipped)
	assert.Equal(t, 3, result.RulesGenerated)
	assert.Empty(t, result.Diagnostics)

	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "broken.yaml")

	require.Len(t, result.Issues, 2)
	byCode := map[string]Issue{}
	for _, issue := range result.Issues {
		byCode[issue.Code] = issue
	}

	unordered := byCode[fluidcss.ReasonUnordered.Code()]
	assert.Equal(t, 3, unordered.Rule)
	assert.Equal(t, "p", unordered.Selector)
	assert.Equal(t, 1, unordered.Index)
	assert.Contains(t, unordered.File, "typography.yaml")

	missing := byCode[IssueMissingSelector]
	assert.Equal(t, 2, missing.Rule)
	assert.Equal(t, "height", missing.Property)

	assert.Equal(t, filepath.Join(outDir, DefaultOutputFile), result.OutputPath)
	data, err := os.ReadFile(result.OutputPath)
	require.NoError(t, err)
	css := string(data)

	assert.Equal(t, result.CSS, css)
	assert.Contains(t, css, Banner)
	assert.Contains(t, css, "h1 {\n  font-size: clamp(10px, 10px + 40vw, 50px);\n}")
	assert.Contains(t, css, "@media screen and (min-width: 50px) {\n  .card {\n    padding: min(50px, 10px + 40vw);\n  }\n}")
	// The TOML sheet clears the media type.
	assert.Contains(t, css, "@media (min-width: 50px) {\n  h2 {\n    width: min(50px, 10px + 40vw);\n  }\n}")
	assert.NotContains(t, css, "Interpolates")
	assert.NotContains(t, css, "ignored.yaml")
}

func TestBuild_DryRunWithComments(t *testing.T) {
	dir := setupSheets(t)
	outDir := filepath.Join(dir, "out")

	result, err := Build(BuildConfig{
		SourceDir:  dir,
		Includes:   []string{"typography.yaml"},
		OutputDir:  outDir,
		OutputFile: "custom.css",
		Comments:   true,
		DryRun:     true,
	})
	require.NoError(t, err)

	assert.Empty(t, result.OutputPath)
	assert.NoDirExists(t, outDir)
	assert.Contains(t, result.CSS, "/* Interpolates font-size from 10px to 50px")
	assert.Contains(t, result.CSS, "/* source: "+filepath.Join(dir, "typography.yaml")+" */")
}

func TestBuild_DeduplicatesIncludes(t *testing.T) {
	dir := setupSheets(t)

	result, err := Build(BuildConfig{
		SourceDir: dir,
		Includes:  []string{"typography.yaml", "*.yaml", "typography.yaml"},
		DryRun:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.FilesScanned) // typography.yaml, broken.yaml
}

func TestBuild_BadPattern(t *testing.T) {
	_, err := Build(BuildConfig{SourceDir: t.TempDir(), Includes: []string{"[unclosed"}, DryRun: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scan failed")
}
