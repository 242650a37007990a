package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/fluidcss/internal/sheet"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".fluidcss.yaml")
	configContent := `
verbose: true
media: print

generate:
  output-format: json
  no-comment: true

build:
  source: custom/sheets
  output-dir: custom/output
  comments: true
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("verbose"))
	assert.Equal(t, "print", k.String("media"))
	assert.Equal(t, "json", k.String("generate.output-format"))
	assert.True(t, k.Bool("generate.no-comment"))
	assert.Equal(t, "custom/sheets", k.String("build.source"))
	assert.Equal(t, "custom/output", k.String("build.output-dir"))
	assert.True(t, k.Bool("build.comments"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent config, should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.fluidcss.yaml"))

	config := buildBuildConfig(nil)
	assert.Equal(t, "styles/fluid", config.SourceDir)
	assert.Equal(t, "styles", config.OutputDir)
	assert.Equal(t, "screen", config.MediaType)
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".fluidcss.yaml")
	configContent := `
build:
  source: from-file
  verify: true
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	// Set env vars that should override config file
	t.Setenv("FLUIDCSS_BUILD_SOURCE", "from-env")
	t.Setenv("FLUIDCSS_BUILD_VERIFY", "false")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "from-env", k.String("build.source"))
	assert.False(t, k.Bool("build.verify"))
}

func TestBuildBuildConfig_Defaults(t *testing.T) {
	resetKoanf()

	config := buildBuildConfig(nil)
	assert.Equal(t, "styles/fluid", config.SourceDir)
	assert.Equal(t, "styles", config.OutputDir)
	assert.Equal(t, sheet.DefaultOutputFile, config.OutputFile)
	assert.Equal(t, "screen", config.MediaType)
	assert.False(t, config.Comments)
	assert.True(t, config.Verify)
	assert.False(t, config.DryRun)
	assert.Equal(t, []string{"**/*.yaml", "**/*.yml", "**/*.toml"}, config.Includes)
}

func TestBuildBuildConfig_FromConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".fluidcss.yaml")
	configContent := `
media: none
build:
  source: design/fluid
  output-dir: public/css
  output-file: type.css
  verify: false
  include:
    - "type/*.toml"
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	config := buildBuildConfig(nil)
	assert.Equal(t, "design/fluid", config.SourceDir)
	assert.Equal(t, "public/css", config.OutputDir)
	assert.Equal(t, "type.css", config.OutputFile)
	assert.Empty(t, config.MediaType)
	assert.False(t, config.Verify)
	assert.Equal(t, []string{"type/*.toml"}, config.Includes)
}

func TestBuildGenerateOptions(t *testing.T) {
	resetKoanf()

	opts := buildGenerateOptions()
	assert.Equal(t, "screen", opts.MediaType)
	assert.False(t, opts.OmitComment)

	k = koanf.New(".")
	require.NoError(t, k.Set("media", "NONE"))
	require.NoError(t, k.Set("generate.no-comment", true))

	opts = buildGenerateOptions()
	assert.Empty(t, opts.MediaType)
	assert.True(t, opts.OmitComment)
}

func TestLoadConfig_FlagsOverrideFileButDefaultsDoNot(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ".fluidcss.yaml")
	configContent := `
build:
  source: from-file
  output-file: from-file.css
  verify: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	root := newRootCmd()
	require.NoError(t, root.ParseFlags([]string{"--config", configPath, "--source", "from-flag"}))
	require.NoError(t, loadConfig(root))

	config := buildBuildConfig(nil)
	assert.Equal(t, "from-flag", config.SourceDir)
	// Unset flags keep their hands off the file's values.
	assert.Equal(t, "from-file.css", config.OutputFile)
	assert.False(t, config.Verify)
}

func TestGetStringWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.Equal(t, "default", getStringWithFallback("flag-key", "config.key", "default"))

	require.NoError(t, k.Set("config.key", "from-config"))
	assert.Equal(t, "from-config", getStringWithFallback("flag-key", "config.key", "default"))

	require.NoError(t, k.Set("flag-key", "from-flag"))
	assert.Equal(t, "from-flag", getStringWithFallback("flag-key", "config.key", "default"))
}

func TestGetBoolWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.False(t, getBoolWithFallback("flag-key", "config.key", false))
	assert.True(t, getBoolWithFallback("flag-key", "config.key", true))

	require.NoError(t, k.Set("config.key", false))
	assert.False(t, getBoolWithFallback("flag-key", "config.key", true))
}
