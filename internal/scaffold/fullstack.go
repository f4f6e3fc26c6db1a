package scaffold

import (
	"os"
	"path/filepath"

	"github.com/nullslate/nullslate/internal/debug"
)

// fullstackSubdir holds the backend overlay inside a fullstack template.
const fullstackSubdir = "fullstack"

// webSubdir is where the frontend lands in a fullstack project.
const webSubdir = "web"

// scaffoldFullstack materializes a fullstack project: the frontend tree is
// copied to web/ with the app-variant skip rules applied, then the
// fullstack/ overlay is copied over the output root. The frontend manifest
// is rewritten and, when auth is selected, the env file is written under
// web/ where the frontend reads it.
func scaffoldFullstack(templateRoot, outputRoot, projectName string, features Features) error {
	if _, err := os.Stat(outputRoot); err == nil {
		return NewDestinationExistsError(outputRoot)
	}

	// The backend owns persistence; the frontend never keeps the database
	// feature regardless of what was requested.
	features.Database = false

	debug.Debug("[scaffold] Fullstack scaffold: src=%s dst=%s", templateRoot, outputRoot)

	webPath := filepath.Join(outputRoot, webSubdir)
	if err := os.MkdirAll(webPath, 0755); err != nil {
		return NewWriteFailedError(webPath, err)
	}

	skips := ResolveSkips(VariantFullstack, features)
	if err := copyTree(templateRoot, webPath, projectName, skips,
		[]string{fullstackSubdir, templateDescriptorFile}); err != nil {
		return err
	}

	if err := RewriteManifest(filepath.Join(webPath, ManifestFileName), VariantFullstack, features); err != nil {
		return err
	}

	if !features.Auth {
		if err := CleanupLayoutForNoAuth(webPath); err != nil {
			return err
		}
	}

	overlaySrc := filepath.Join(templateRoot, fullstackSubdir)
	if info, err := os.Stat(overlaySrc); err == nil && info.IsDir() {
		if err := copyTree(overlaySrc, outputRoot, projectName, NewSkipSet(),
			[]string{templateDescriptorFile}); err != nil {
			return err
		}
	}

	if features.Auth {
		if err := NewEnvGenerator().WriteEnvFile(webPath, features); err != nil {
			return err
		}
	}

	return nil
}
