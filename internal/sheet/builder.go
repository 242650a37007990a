package sheet

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/yacobolo/fluidcss"
	"golang.org/x/sync/errgroup"
)

// DefaultOutputFile is written when BuildConfig.OutputFile is empty.
const DefaultOutputFile = "fluid.gen.css"

// Build is the main entry point
func Build(config BuildConfig) (*BuildResult, error) {
	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	result := &BuildResult{}

	// 1. Discover sheet files
	files, skipped, err := scanSheetFiles(config.SourceDir, config.Includes)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	result.FilesScanned = len(files)
	result.FilesSkipped = skipped
	logger.Debug("discovered sheets", "dir", config.SourceDir, "files", len(files), "ignored", skipped)

	// 2. Load sheets concurrently; slots keep the scan order
	sheets := make([]*Sheet, len(files))
	loadErrs := make([]error, len(files))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range files {
		i, path := i, path // per-iteration copies (go directive < 1.22)
		g.Go(func() error {
			logger.Debug("loading sheet", "path", path)
			sheets[i], loadErrs[i] = LoadSheet(path)
			return nil
		})
	}
	_ = g.Wait() // Load failures are warnings, recorded per slot

	// 3. Generate every rule of every sheet
	sections := make([]section, 0, len(files))
	for i, path := range files {
		if loadErrs[i] != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Failed to load %s: %v", path, loadErrs[i]))
			continue
		}

		sections = append(sections, buildSheet(sheets[i], config, result, logger))
	}

	result.CSS = renderStylesheet(sections)

	// 4. Write the combined stylesheet
	if config.DryRun {
		return result, nil
	}

	name := config.OutputFile
	if name == "" {
		name = DefaultOutputFile
	}
	outputPath := filepath.Join(config.OutputDir, name)

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(outputPath, []byte(result.CSS), 0644); err != nil {
		return nil, fmt.Errorf("write failed: %w", err)
	}
	result.OutputPath = outputPath
	logger.Info("wrote stylesheet", "path", outputPath, "rules", result.RulesGenerated)

	return result, nil
}

// buildSheet generates the rules of one sheet, recording failures on result.
func buildSheet(sheet *Sheet, config BuildConfig, result *BuildResult, logger *log.Logger) section {
	opts := fluidcss.Options{
		MediaType:   config.MediaType,
		OmitComment: !config.Comments,
	}
	if sheet.Media != nil {
		opts.MediaType = *sheet.Media
	}

	sec := section{path: sheet.Path}
	for i, rule := range sheet.Rules {
		issue := Issue{
			File:     sheet.Path,
			Rule:     i + 1,
			Selector: rule.Selector,
			Property: rule.Property,
			Index:    -1,
		}

		if rule.Selector == "" {
			issue.Code = IssueMissingSelector
			issue.Text = "rule has no selector"
			result.Issues = append(result.Issues, issue)
			continue
		}

		if ClassifyProperty(rule.Property) == KindNonLength {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s:rule %d: %s does not accept lengths", sheet.Path, i+1, rule.Property))
		}

		gen, err := fluidcss.GenerateWithOptions(rule.Property, rule.Breakpoints, opts)
		if err != nil {
			var failure *fluidcss.GenerationFailure
			if !errors.As(err, &failure) {
				// Generate only fails with validation errors.
				issue.Code = "internal"
				issue.Text = err.Error()
				result.Issues = append(result.Issues, issue)
				continue
			}
			issue.Code = failure.Reason.Code()
			issue.Text = failure.Error()
			issue.Index = failure.Index
			result.Issues = append(result.Issues, issue)
			logger.Debug("rule skipped", "file", sheet.Path, "rule", i+1, "reason", failure.Reason.Code())
			continue
		}

		block := RenderRule(rule.Selector, gen)
		if config.Verify {
			for _, d := range Verify(block) {
				d.File = fmt.Sprintf("%s (rule %d)", sheet.Path, i+1)
				result.Diagnostics = append(result.Diagnostics, d)
			}
		}

		sec.blocks = append(sec.blocks, block)
		result.RulesGenerated++
	}

	return sec
}
