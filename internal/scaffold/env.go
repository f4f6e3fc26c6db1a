package scaffold

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// EnvFileName is the generated environment file, relative to the output root.
const EnvFileName = ".env"

// secretLen is the number of random bytes per generated secret. Hex-encoded
// this yields a 64-character lowercase string.
const secretLen = 32

// EnvGenerator writes the generated environment file for auth-enabled
// projects. The random source is injectable so tests can supply a
// deterministic reader and assert exact formatting.
type EnvGenerator struct {
	rand io.Reader
}

// NewEnvGenerator creates a generator backed by crypto/rand.
func NewEnvGenerator() *EnvGenerator {
	return &EnvGenerator{rand: rand.Reader}
}

// NewEnvGeneratorWithSource creates a generator reading random bytes from r.
func NewEnvGeneratorWithSource(r io.Reader) *EnvGenerator {
	return &EnvGenerator{rand: r}
}

// GenerateSecret returns a freshly generated secret: 32 random bytes,
// hex-encoded to a 64-character lowercase string.
func (g *EnvGenerator) GenerateSecret() (string, error) {
	buf := make([]byte, secretLen)
	if _, err := io.ReadFull(g.rand, buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// WriteEnvFile writes the environment file under outputRoot. The auth secret
// is generated fresh; the OAuth client lines are fixed placeholders for the
// user to fill in. An existing file at that path is overwritten: template
// authors must not rely on pre-seeding it.
//
// The secret exists only as written bytes in the output file; it is never
// logged or persisted elsewhere.
func (g *EnvGenerator) WriteEnvFile(outputRoot string, features Features) error {
	secret, err := g.GenerateSecret()
	if err != nil {
		return NewWriteFailedError(filepath.Join(outputRoot, EnvFileName), err)
	}

	content := "# Auth (GitHub OAuth)\n" +
		"AUTH_SECRET=" + secret + "\n" +
		"AUTH_GITHUB_ID=\n" +
		"AUTH_GITHUB_SECRET=\n"

	if features.Database {
		content += "\n# Database\n" +
			"DATABASE_URL=postgres://localhost:5432/app\n"
	}

	envPath := filepath.Join(outputRoot, EnvFileName)
	if err := os.WriteFile(envPath, []byte(content), 0644); err != nil {
		return NewWriteFailedError(envPath, err)
	}
	return nil
}
