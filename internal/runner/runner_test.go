package runner

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte{}, 0644); err != nil {
		t.Fatalf("failed to create %s: %v", name, err)
	}
}

func TestDetectProject(t *testing.T) {
	tests := []struct {
		name    string
		markers []string
		want    Kind
	}{
		{
			name:    "fullstack project",
			markers: []string{"nullslate.toml"},
			want:    KindFullstack,
		},
		{
			name:    "frontend project",
			markers: []string{"package.json"},
			want:    KindFrontend,
		},
		{
			name:    "rust project",
			markers: []string{"Cargo.toml"},
			want:    KindRust,
		},
		{
			name:    "fullstack takes priority",
			markers: []string{"nullslate.toml", "package.json", "Cargo.toml"},
			want:    KindFullstack,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, m := range tt.markers {
				touch(t, dir, m)
			}

			root, kind, err := DetectProject(dir)
			if err != nil {
				t.Fatalf("DetectProject failed: %v", err)
			}
			if root != dir {
				t.Errorf("root = %q, want %q", root, dir)
			}
			if kind != tt.want {
				t.Errorf("kind = %v, want %v", kind, tt.want)
			}
		})
	}
}

func TestDetectProjectWalksUp(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "package.json")

	sub := filepath.Join(dir, "src", "components")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatalf("failed to create subdirectory: %v", err)
	}

	root, kind, err := DetectProject(sub)
	if err != nil {
		t.Fatalf("DetectProject failed: %v", err)
	}
	if root != dir {
		t.Errorf("root = %q, want %q", root, dir)
	}
	if kind != KindFrontend {
		t.Errorf("kind = %v, want KindFrontend", kind)
	}
}

func TestDetectProjectNoMarker(t *testing.T) {
	// A bare temp dir has no marker anywhere up to the filesystem root,
	// unless the environment happens to nest it under a project. t.TempDir
	// lives under the system temp dir, which is safe.
	_, _, err := DetectProject(t.TempDir())
	if err == nil {
		t.Error("expected error for directory without project markers")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindFullstack, "fullstack"},
		{KindFrontend, "frontend"},
		{KindRust, "rust"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
