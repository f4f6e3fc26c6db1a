// Package scaffold is the template materialization engine: it takes a staged
// template tree plus a feature selection and produces a customized project
// directory, deciding which files to keep, which manifest entries to strip,
// and how to substitute the project name.
//
// The engine is single-threaded and synchronous; each stage runs to
// completion before the next begins. It reads only from the template root
// and writes only under the output root. Fetching templates, prompting,
// git, and package-manager invocation belong to the calling layers.
package scaffold

import (
	"path/filepath"

	"github.com/nullslate/nullslate/internal/debug"
)

// CreateProject materializes a customized project from a staged template
// tree. It resolves the skip set for the variant and feature selection,
// copies the retained tree with placeholder substitution, rewrites the
// dependency manifest, and for auth-enabled app projects generates the
// environment file.
//
// outputRoot must not already exist. Errors are terminal: on failure the
// partially written output directory is left in place for inspection, with
// one documented exception — a manifest rewrite failure leaves a complete
// tree whose manifest needs manual editing.
func CreateProject(templateRoot, outputRoot, projectName string, variant Variant, features Features) error {
	debug.Debug("[scaffold] Creating project: name=%s variant=%s", projectName, variant)

	if variant == VariantFullstack {
		return scaffoldFullstack(templateRoot, outputRoot, projectName, features)
	}

	skips := ResolveSkips(variant, features)
	if err := Materialize(templateRoot, outputRoot, projectName, skips); err != nil {
		return err
	}

	if err := RewriteManifest(filepath.Join(outputRoot, ManifestFileName), variant, features); err != nil {
		return err
	}

	if variant == VariantApp {
		if !features.Auth {
			if err := CleanupLayoutForNoAuth(outputRoot); err != nil {
				return err
			}
		}
		if features.Auth {
			if err := NewEnvGenerator().WriteEnvFile(outputRoot, features); err != nil {
				return err
			}
		}
	}

	return nil
}
