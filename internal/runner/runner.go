// Package runner detects the kind of project the user is inside and runs its
// dev and build commands.
package runner

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/nullslate/nullslate/internal/debug"
)

// Kind identifies the detected project type.
type Kind int

const (
	// KindFullstack is a scaffolded fullstack project (nullslate.toml marker).
	KindFullstack Kind = iota
	// KindFrontend is a plain frontend project (package.json marker).
	KindFrontend
	// KindRust is a Rust project (Cargo.toml marker).
	KindRust
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindFullstack:
		return "fullstack"
	case KindFrontend:
		return "frontend"
	case KindRust:
		return "rust"
	default:
		return "unknown"
	}
}

// Marker files checked in priority order while walking up from the start
// directory. The fullstack marker wins when several are present.
var markers = []struct {
	file string
	kind Kind
}{
	{"nullslate.toml", KindFullstack},
	{"package.json", KindFrontend},
	{"Cargo.toml", KindRust},
}

// DetectProject walks up from start looking for a project marker file.
// Returns the project root and its kind, or an error when no marker is
// found before the filesystem root.
func DetectProject(start string) (string, Kind, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", 0, fmt.Errorf("failed to resolve start directory: %w", err)
	}

	for {
		for _, m := range markers {
			if _, err := os.Stat(filepath.Join(dir, m.file)); err == nil {
				debug.Debug("[runner] Detected %s project at %s (marker: %s)", m.kind, dir, m.file)
				return dir, m.kind, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", 0, fmt.Errorf("no project root found (looked for nullslate.toml, package.json, or Cargo.toml)")
		}
		dir = parent
	}
}

// Dev runs the dev command appropriate for the project kind.
func Dev(ctx context.Context, root string, kind Kind) error {
	switch kind {
	case KindFullstack:
		return run(ctx, root, "cargo", "xtask", "dev")
	case KindFrontend:
		return run(ctx, root, "bun", "dev")
	case KindRust:
		return run(ctx, root, "cargo", "run")
	default:
		return fmt.Errorf("unsupported project kind: %v", kind)
	}
}

// Build runs the release build for the project kind. A fullstack project
// builds the backend first, then the frontend under web/ when present.
func Build(ctx context.Context, root string, kind Kind) error {
	switch kind {
	case KindFullstack:
		if err := run(ctx, root, "cargo", "build", "--release"); err != nil {
			return err
		}
		webDir := filepath.Join(root, "web")
		if info, err := os.Stat(webDir); err == nil && info.IsDir() {
			return run(ctx, webDir, "bun", "run", "build")
		}
		return nil
	case KindFrontend:
		return run(ctx, root, "bun", "run", "build")
	case KindRust:
		return run(ctx, root, "cargo", "build", "--release")
	default:
		return fmt.Errorf("unsupported project kind: %v", kind)
	}
}

// run executes program in dir with stdio passed through.
func run(ctx context.Context, dir, program string, args ...string) error {
	debug.Debug("[runner] Running: %s %v (dir: %s)", program, args, dir)

	cmd := exec.CommandContext(ctx, program, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", program, err)
	}
	return nil
}
