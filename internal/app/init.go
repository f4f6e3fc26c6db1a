// Package app contains the workflow layer between the CLI and the scaffold
// engine: input validation, template staging, and post-processing.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/nullslate/nullslate/internal/debug"
	"github.com/nullslate/nullslate/internal/scaffold"
	"github.com/nullslate/nullslate/internal/template"
)

// projectNamePattern accepts lowercase letters, digits, and interior hyphens.
var projectNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*[a-z0-9]$|^[a-z0-9]$`)

// ValidateProjectName checks that name is usable as a project name.
func ValidateProjectName(name string) error {
	if name == "" {
		return NewValidationError("project name cannot be empty", nil)
	}
	if !projectNamePattern.MatchString(name) {
		return NewValidationError(
			fmt.Sprintf("invalid project name %q: use lowercase letters, numbers, and hyphens only", name), nil)
	}
	return nil
}

// InitOptions contains options for project initialization.
type InitOptions struct {
	// Name is the validated project name.
	Name string
	// OutputDir is the destination directory. Defaults to ./<name>.
	OutputDir string
	// Variant selects the project kind.
	Variant scaffold.Variant
	// Features is the selected feature set.
	Features scaffold.Features
	// TemplateURL is the template source (git URL or local directory).
	TemplateURL string
	// SkipGit disables repository initialization.
	SkipGit bool
	// SkipInstall disables dependency installation.
	SkipInstall bool
}

// InitResult contains the results of project initialization.
type InitResult struct {
	// OutputDir is the created project directory.
	OutputDir string
	// Warnings holds non-fatal post-processing failures.
	Warnings []string
}

// Init runs the complete initialization workflow: validate, fetch the
// template into a temporary staging directory, materialize the project, and
// post-process. Engine failures abort; post-processing failures (git,
// install) are collected as warnings because the project tree is already
// complete and usable.
func Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	if err := ValidateProjectName(opts.Name); err != nil {
		return nil, err
	}

	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = opts.Name
	}
	if _, err := os.Stat(outputDir); err == nil {
		return nil, NewValidationError(fmt.Sprintf("directory %q already exists", outputDir), nil)
	}

	stagingDir, cleanup, err := FetchTemplate(ctx, opts.TemplateURL)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	if err := scaffold.CreateProject(stagingDir, outputDir, opts.Name, opts.Variant, opts.Features); err != nil {
		return nil, NewScaffoldError("failed to scaffold project", err)
	}

	result := &InitResult{OutputDir: outputDir}

	if !opts.SkipGit {
		if err := InitGit(outputDir); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("git initialization failed: %v", err))
		}
	}

	if !opts.SkipInstall {
		installDir := outputDir
		if opts.Variant == scaffold.VariantFullstack {
			installDir = filepath.Join(outputDir, "web")
		}
		if err := InstallDeps(ctx, installDir); err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("dependency install failed: %v (run it manually with: cd %s && bun install)", err, installDir))
		}
	}

	return result, nil
}

// FetchTemplate stages the template at url into a fresh temporary directory.
// The returned cleanup removes the staging directory.
func FetchTemplate(ctx context.Context, url string) (string, func(), error) {
	stagingDir, err := os.MkdirTemp("", "nullslate-template-*")
	if err != nil {
		return "", nil, NewTemplateFetchError("failed to create staging directory", err)
	}
	cleanup := func() {
		if err := os.RemoveAll(stagingDir); err != nil {
			debug.Debug("[app] Failed to remove staging dir %s: %v", stagingDir, err)
		}
	}

	if err := template.Fetch(ctx, url, stagingDir); err != nil {
		cleanup()
		return "", nil, NewTemplateFetchError("failed to fetch template", err)
	}
	return stagingDir, cleanup, nil
}
