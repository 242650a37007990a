package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/fluidcss"
	"github.com/yacobolo/fluidcss/internal/sheet"
)

var k = koanf.New(".")

// defaultIncludes are the sheet patterns built when none are configured.
var defaultIncludes = []string{"**/*.yaml", "**/*.yml", "**/*.toml"}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Each invocation starts from a clean slate.
	k = koanf.New(".")

	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".fluidcss.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence). Only flags the user set are loaded,
	// so flag defaults never shadow the config file.
	flags := cmd.Flags()
	provider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	attachLogger(cmd,
		getBoolWithFallback("verbose", "verbose", false),
		getBoolWithFallback("quiet", "quiet", false))

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (FLUIDCSS_* prefix)
	if err := k.Load(env.Provider("FLUIDCSS_", ".", func(s string) string {
		// FLUIDCSS_BUILD_SOURCE -> build.source
		// FLUIDCSS_MEDIA -> media
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "FLUIDCSS_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// mediaType resolves the media type for generated queries. "none" selects
// bare "@media (min-width: ...)" queries.
func mediaType() string {
	media := getStringWithFallback("media", "media", "screen")
	if strings.EqualFold(media, "none") {
		return ""
	}
	return media
}

// buildGenerateOptions constructs generator options from koanf state.
func buildGenerateOptions() fluidcss.Options {
	return fluidcss.Options{
		MediaType:   mediaType(),
		OmitComment: getBoolWithFallback("no-comment", "generate.no-comment", false),
	}
}

// buildBuildConfig constructs the sheet builder's config from koanf state.
func buildBuildConfig(logger *log.Logger) sheet.BuildConfig {
	config := sheet.BuildConfig{
		SourceDir:  getStringWithFallback("source", "build.source", "styles/fluid"),
		OutputDir:  getStringWithFallback("output-dir", "build.output-dir", "styles"),
		OutputFile: getStringWithFallback("output-file", "build.output-file", sheet.DefaultOutputFile),
		MediaType:  mediaType(),
		Comments:   getBoolWithFallback("comments", "build.comments", false),
		Verify:     getBoolWithFallback("verify", "build.verify", true),
		DryRun:     getBoolWithFallback("dry-run", "build.dry-run", false),
		Logger:     logger,
	}

	// Handle includes: check flag key first, then config key
	if includes := k.Strings("include"); len(includes) > 0 {
		config.Includes = includes
	} else if includes := k.Strings("build.include"); len(includes) > 0 {
		config.Includes = includes
	} else {
		config.Includes = defaultIncludes
	}

	return config
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}
