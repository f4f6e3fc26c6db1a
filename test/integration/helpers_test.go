package integration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// fixtureTemplate returns the absolute path to a fixture template directory.
func fixtureTemplate(t *testing.T, name string) string {
	t.Helper()
	path, err := filepath.Abs(filepath.Join("../fixtures/templates", name))
	if err != nil {
		t.Fatalf("failed to resolve fixture path: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("fixture %s not found: %v", name, err)
	}
	return path
}

// mustExist fails the test when any of the relative paths is missing under root.
func mustExist(t *testing.T, root string, relPaths ...string) {
	t.Helper()
	for _, rel := range relPaths {
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel))); err != nil {
			t.Errorf("expected %s in output: %v", rel, err)
		}
	}
}

// mustNotExist fails the test when any of the relative paths exists under root.
func mustNotExist(t *testing.T, root string, relPaths ...string) {
	t.Helper()
	for _, rel := range relPaths {
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel))); !os.IsNotExist(err) {
			t.Errorf("did not expect %s in output", rel)
		}
	}
}

// readManifestSection reads one section of the output package.json.
func readManifestSection(t *testing.T, root, section string) map[string]interface{} {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		t.Fatalf("failed to read package.json: %v", err)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("package.json is not valid JSON: %v", err)
	}
	sec, _ := doc[section].(map[string]interface{})
	return sec
}

func readFile(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("failed to read %s: %v", rel, err)
	}
	return string(data)
}
