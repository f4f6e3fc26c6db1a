package app

import (
	"context"
	"os/exec"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/nullslate/nullslate/internal/debug"
)

// InitGit initializes a git repository in dir and records the scaffolded
// tree as an initial commit.
func InitGit(dir string) error {
	debug.Debug("[app] Initializing git repository in %s", dir)

	repo, err := git.PlainInit(dir, false)
	if err != nil {
		return NewPostProcessError("failed to init repository", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return NewPostProcessError("failed to open worktree", err)
	}

	if err := worktree.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return NewPostProcessError("failed to stage files", err)
	}

	// Commit with an explicit signature so a missing user-level git config
	// does not fail the scaffold.
	_, err = worktree.Commit("Initial commit from nullslate", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "nullslate",
			Email: "scaffold@nullslate.dev",
			When:  time.Now(),
		},
	})
	if err != nil {
		return NewPostProcessError("failed to create initial commit", err)
	}

	return nil
}

// InstallDeps installs project dependencies with bun in dir.
func InstallDeps(ctx context.Context, dir string) error {
	debug.Debug("[app] Installing dependencies in %s", dir)

	cmd := exec.CommandContext(ctx, "bun", "install")
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		debug.Debug("[app] bun install output: %s", out)
		return NewPostProcessError("bun install failed", err)
	}
	return nil
}
