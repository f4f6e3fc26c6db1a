package scaffold

import (
	"strings"
	"testing"
)

const layoutWithAuth = `import { Outlet } from "@tanstack/react-router"
import { SessionProvider } from "@/components/session-provider"

export function RootLayout() {
  return (
    <html>
      <body>
        <SessionProvider>
        <Outlet />
        </SessionProvider>
      </body>
    </html>
  )
}
`

func TestCleanupLayoutForNoAuth(t *testing.T) {
	outputRoot := t.TempDir()
	writeTemplate(t, outputRoot, rootLayoutPath, layoutWithAuth)

	if err := CleanupLayoutForNoAuth(outputRoot); err != nil {
		t.Fatalf("CleanupLayoutForNoAuth failed: %v", err)
	}

	got := readOutput(t, outputRoot, rootLayoutPath)

	if strings.Contains(got, "SessionProvider") {
		t.Errorf("layout still references SessionProvider:\n%s", got)
	}
	// The wrapped content must survive.
	if !strings.Contains(got, "<Outlet />") {
		t.Errorf("layout lost wrapped content:\n%s", got)
	}
	if !strings.Contains(got, `import { Outlet } from "@tanstack/react-router"`) {
		t.Errorf("layout lost unrelated import:\n%s", got)
	}
}

func TestCleanupLayoutMissingFile(t *testing.T) {
	// Templates without a root layout are fine.
	if err := CleanupLayoutForNoAuth(t.TempDir()); err != nil {
		t.Errorf("expected nil for missing layout, got %v", err)
	}
}

func TestCleanupLayoutWithoutProvider(t *testing.T) {
	plain := "export function RootLayout() {\n  return null\n}\n"
	outputRoot := t.TempDir()
	writeTemplate(t, outputRoot, rootLayoutPath, plain)

	if err := CleanupLayoutForNoAuth(outputRoot); err != nil {
		t.Fatalf("CleanupLayoutForNoAuth failed: %v", err)
	}
	if got := readOutput(t, outputRoot, rootLayoutPath); got != plain {
		t.Errorf("layout without provider should be unchanged, got:\n%s", got)
	}
}
