package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/nullslate/nullslate/internal/scaffold"
)

func TestValidateProjectName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple name", input: "my-app", wantErr: false},
		{name: "single character", input: "x", wantErr: false},
		{name: "digits and hyphens", input: "app-2-go", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "uppercase", input: "MyApp", wantErr: true},
		{name: "leading hyphen", input: "-app", wantErr: true},
		{name: "trailing hyphen", input: "app-", wantErr: true},
		{name: "spaces", input: "my app", wantErr: true},
		{name: "underscore", input: "my_app", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProjectName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateProjectName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

// newLocalTemplate builds a minimal app template usable as a local source.
func newLocalTemplate(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"template.json": `{"name": "app"}`,
		"package.json": `{
  "name": "{{project_name}}",
  "dependencies": {
    "@auth/core": "^0.34.0",
    "react": "^18.3.0"
  }
}`,
		"src/main.tsx":    "export {}\n",
		"src/lib/auth.ts": "auth\n",
	}
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create directory for %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", rel, err)
		}
	}
	return root
}

func TestInitWorkflow(t *testing.T) {
	templateRoot := newLocalTemplate(t)
	workDir := t.TempDir()

	result, err := Init(context.Background(), InitOptions{
		Name:        "my-app",
		OutputDir:   filepath.Join(workDir, "my-app"),
		Variant:     scaffold.VariantApp,
		Features:    scaffold.Features{Auth: true},
		TemplateURL: templateRoot,
		SkipGit:     true,
		SkipInstall: true,
	})
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}

	for _, p := range []string{"package.json", "src/main.tsx", "src/lib/auth.ts", ".env"} {
		if _, err := os.Stat(filepath.Join(result.OutputDir, filepath.FromSlash(p))); err != nil {
			t.Errorf("output missing %s: %v", p, err)
		}
	}
	if _, err := os.Stat(filepath.Join(result.OutputDir, "template.json")); !os.IsNotExist(err) {
		t.Error("template.json should not be in the output")
	}
}

func TestInitExistingDestination(t *testing.T) {
	templateRoot := newLocalTemplate(t)
	outputDir := t.TempDir() // already exists

	_, err := Init(context.Background(), InitOptions{
		Name:        "my-app",
		OutputDir:   outputDir,
		Variant:     scaffold.VariantApp,
		Features:    scaffold.Features{},
		TemplateURL: templateRoot,
		SkipGit:     true,
		SkipInstall: true,
	})
	if err == nil {
		t.Fatal("expected error for existing destination")
	}

	appErr, ok := err.(*AppError)
	if !ok {
		t.Fatalf("expected *AppError, got %T", err)
	}
	if appErr.Type != ValidationFailed {
		t.Errorf("error type = %v, want ValidationFailed", appErr.Type)
	}
}

func TestInitInvalidName(t *testing.T) {
	_, err := Init(context.Background(), InitOptions{
		Name:        "Bad Name",
		Variant:     scaffold.VariantApp,
		TemplateURL: "ignored",
		SkipGit:     true,
		SkipInstall: true,
	})
	if err == nil {
		t.Fatal("expected error for invalid project name")
	}
}

func TestInitGitCreatesRepository(t *testing.T) {
	templateRoot := newLocalTemplate(t)
	workDir := t.TempDir()
	outputDir := filepath.Join(workDir, "my-app")

	result, err := Init(context.Background(), InitOptions{
		Name:        "my-app",
		OutputDir:   outputDir,
		Variant:     scaffold.VariantApp,
		Features:    scaffold.Features{Auth: true},
		TemplateURL: templateRoot,
		SkipGit:     false,
		SkipInstall: true,
	})
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("git init produced warnings: %v", result.Warnings)
	}

	if _, err := os.Stat(filepath.Join(outputDir, ".git")); err != nil {
		t.Errorf("expected .git directory: %v", err)
	}
}
