// Package template stages template trees for the scaffold engine. Remote
// sources are shallow-cloned with go-git; local directories are copied
// directly so fixtures and on-disk templates work without a network.
package template

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"

	"github.com/nullslate/nullslate/internal/debug"
)

// templateSubdir is preferred as the template root when a fetched repository
// contains one; template authors keep repo-level docs outside of it.
const templateSubdir = "template"

// cloneSubdir is the transient clone location inside the staging directory.
const cloneSubdir = "_clone"

// Fetch stages the template at url into stagingDir. stagingDir must exist
// and be empty; after a successful return it holds the template tree with
// the .git directory stripped.
//
// A url naming an existing local directory is staged by copying. Anything
// else is treated as a git URL and shallow-cloned (depth 1). If the fetched
// tree contains a template/ subdirectory, that subdirectory becomes the
// staged content.
func Fetch(ctx context.Context, url, stagingDir string) error {
	debug.Debug("[template] Fetching template: url=%s staging=%s", url, stagingDir)

	if info, err := os.Stat(url); err == nil && info.IsDir() {
		return stageLocal(url, stagingDir)
	}

	cloneDir := filepath.Join(stagingDir, cloneSubdir)
	_, err := git.PlainCloneContext(ctx, cloneDir, false, &git.CloneOptions{
		URL:   url,
		Depth: 1,
	})
	if err != nil {
		return NewCloneError(url, err)
	}

	source := cloneDir
	if info, err := os.Stat(filepath.Join(cloneDir, templateSubdir)); err == nil && info.IsDir() {
		debug.Debug("[template] Using %s/ subdirectory as template root", templateSubdir)
		source = filepath.Join(cloneDir, templateSubdir)
	}

	// Move the tree into the staging root; the clone dir (and with it the
	// .git metadata) is discarded.
	entries, err := os.ReadDir(source)
	if err != nil {
		return NewStageError(url, err)
	}
	for _, entry := range entries {
		if entry.Name() == ".git" {
			continue
		}
		if err := os.Rename(filepath.Join(source, entry.Name()), filepath.Join(stagingDir, entry.Name())); err != nil {
			return NewStageError(url, err)
		}
	}
	if err := os.RemoveAll(cloneDir); err != nil {
		return NewStageError(url, err)
	}

	return nil
}

// stageLocal copies a local template directory into stagingDir, honoring the
// same template/ subdirectory preference as remote fetches.
func stageLocal(dir, stagingDir string) error {
	source := dir
	if info, err := os.Stat(filepath.Join(dir, templateSubdir)); err == nil && info.IsDir() {
		debug.Debug("[template] Using %s/ subdirectory as template root", templateSubdir)
		source = filepath.Join(dir, templateSubdir)
	}

	err := filepath.WalkDir(source, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if path == source {
			return nil
		}
		rel, err := filepath.Rel(source, path)
		if err != nil {
			return err
		}
		if d.IsDir() && d.Name() == ".git" {
			return fs.SkipDir
		}

		target := filepath.Join(stagingDir, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return err
		}
		return os.WriteFile(target, data, 0644)
	})
	if err != nil {
		return NewStageError(dir, err)
	}
	return nil
}
