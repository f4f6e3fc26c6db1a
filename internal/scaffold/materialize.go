package scaffold

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/nullslate/nullslate/internal/debug"
)

// ProjectNamePlaceholder is the reserved token substituted with the project
// name in every retained template file.
const ProjectNamePlaceholder = "{{project_name}}"

// templateDescriptorFile is the template's own metadata file. It describes
// the template to the CLI and is never copied into the output.
const templateDescriptorFile = "template.json"

// Materialize copies the template tree rooted at templateRoot into
// outputRoot, omitting every path matched by skips and substituting the
// project name placeholder in retained file contents.
//
// outputRoot must not already exist; violating this fails fast with a
// DestinationExists error before anything is written. The walk order is
// lexical by relative path, so output is reproducible across runs of the
// same template. On failure the partially written output is left in place.
func Materialize(templateRoot, outputRoot, projectName string, skips SkipSet) error {
	if _, err := os.Stat(outputRoot); err == nil {
		return NewDestinationExistsError(outputRoot)
	}

	debug.Debug("[scaffold] Materializing template: src=%s dst=%s project=%s skips=%d",
		templateRoot, outputRoot, projectName, len(skips))

	if err := os.MkdirAll(outputRoot, 0755); err != nil {
		return NewWriteFailedError(outputRoot, err)
	}

	return copyTree(templateRoot, outputRoot, projectName, skips, []string{templateDescriptorFile})
}

// copyTree walks src in lexical order and copies every entry not excluded by
// skips or extraSkips into dst. File contents that are valid UTF-8 have the
// project name placeholder substituted; anything else is copied byte-for-byte.
func copyTree(src, dst, projectName string, skips SkipSet, extraSkips []string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return NewSourceUnreadableError(path, walkErr)
		}
		if path == src {
			return nil
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return NewSourceUnreadableError(path, err)
		}
		relSlash := filepath.ToSlash(rel)

		if skips.Matches(relSlash) || matchesPrefix(relSlash, extraSkips) {
			debug.Debug("[scaffold] Skipping: %s", relSlash)
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		target := filepath.Join(dst, rel)

		if d.IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return NewWriteFailedError(target, err)
			}
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return NewSourceUnreadableError(path, err)
		}

		// Substitution is textual; non-UTF-8 content passes through untouched.
		if utf8.Valid(content) {
			content = bytes.ReplaceAll(content, []byte(ProjectNamePlaceholder), []byte(projectName))
		}

		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return NewWriteFailedError(target, err)
		}
		if err := os.WriteFile(target, content, 0644); err != nil {
			return NewWriteFailedError(target, err)
		}
		return nil
	})
}

// matchesPrefix reports whether relPath equals or is nested under any of the
// given slash-separated prefixes.
func matchesPrefix(relPath string, prefixes []string) bool {
	for _, p := range prefixes {
		if relPath == p || strings.HasPrefix(relPath, p+"/") {
			return true
		}
	}
	return false
}
