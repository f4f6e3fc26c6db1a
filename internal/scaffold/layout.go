package scaffold

import (
	"os"
	"path/filepath"
	"strings"
)

// rootLayoutPath is the app layout that wraps routes in the session provider.
const rootLayoutPath = "src/routes/__root.tsx"

// Lines removed from the root layout when auth is not selected. The wrapper
// lines carry the template's exact indentation.
const (
	sessionProviderImport  = "import { SessionProvider } from \"@/components/session-provider\"\n"
	sessionProviderOpening = "        <SessionProvider>\n"
	sessionProviderClosing = "        </SessionProvider>\n"
)

// CleanupLayoutForNoAuth strips the session provider import and wrapper from
// the root layout, preserving the wrapped content. A template without a root
// layout is not an error.
func CleanupLayoutForNoAuth(outputRoot string) error {
	layoutPath := filepath.Join(outputRoot, filepath.FromSlash(rootLayoutPath))

	content, err := os.ReadFile(layoutPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return NewSourceUnreadableError(layoutPath, err)
	}

	cleaned := string(content)
	cleaned = strings.ReplaceAll(cleaned, sessionProviderImport, "")
	cleaned = strings.ReplaceAll(cleaned, sessionProviderOpening, "")
	cleaned = strings.ReplaceAll(cleaned, sessionProviderClosing, "")

	if err := os.WriteFile(layoutPath, []byte(cleaned), 0644); err != nil {
		return NewWriteFailedError(layoutPath, err)
	}
	return nil
}
