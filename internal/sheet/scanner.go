package sheet

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// loadGitIgnore compiles sourceDir/.gitignore.
// A missing .gitignore is not an error.
func loadGitIgnore(sourceDir string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(sourceDir, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}

// scanSheetFiles finds sheet files matching includes under sourceDir.
// It returns the files in match order and how many matches were gitignored.
func scanSheetFiles(sourceDir string, includes []string) ([]string, int, error) {
	gi := loadGitIgnore(sourceDir)

	var files []string
	seen := make(map[string]bool)
	skipped := 0

	for _, pattern := range includes {
		// Use doublestar for ** glob support
		matches, err := doublestar.FilepathGlob(filepath.Join(sourceDir, pattern))
		if err != nil {
			return nil, 0, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}

			if gi != nil {
				if rel, err := filepath.Rel(sourceDir, match); err == nil && gi.MatchesPath(filepath.ToSlash(rel)) {
					skipped++
					continue
				}
			}

			files = append(files, match)
		}
	}

	return files, skipped, nil
}
