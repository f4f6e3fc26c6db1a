package cli

import (
	"fmt"

	"github.com/nullslate/nullslate/internal/scaffold"
)

// Common flag names and descriptions
const (
	// Flag names
	FlagDocs      = "docs"
	FlagNoAuth    = "no-auth"
	FlagDB        = "db"
	FlagLib       = "lib"
	FlagFullstack = "fullstack"
	FlagLang      = "lang"
	FlagReact     = "react"
	FlagCss       = "css"
	FlagTesting   = "testing"
	FlagPath      = "path"
	FlagTemplate  = "template"
	FlagNoGit     = "no-git"
	FlagNoInstall = "no-install"
	FlagYes       = "yes"
	FlagNoColor   = "no-color"
	FlagQuiet     = "quiet"
	FlagDebug     = "debug"

	// Flag descriptions
	DescDocs      = "Include MDX documentation system"
	DescNoAuth    = "Skip authentication setup"
	DescDB        = "Database type: postgres or none"
	DescLib       = "Scaffold a library project"
	DescFullstack = "Scaffold a fullstack project"
	DescLang      = "Library language: typescript or javascript"
	DescReact     = "Include React components"
	DescCss       = "Include styles"
	DescTesting   = "Include test tooling"
	DescPath      = "Output directory (default: ./<project-name>)"
	DescTemplate  = "Custom template repository URL or local path"
	DescNoGit     = "Skip git initialization"
	DescNoInstall = "Skip dependency install"
	DescYes       = "Accept all defaults without prompting"
	DescNoColor   = "Disable colored output"
	DescQuiet     = "Suppress non-error output"
	DescDebug     = "Enable debug logging"
)

// Default template repositories per variant.
const (
	defaultAppTemplate       = "https://github.com/nullslate/app-template.git"
	defaultLibTemplate       = "https://github.com/nullslate/lib-template.git"
	defaultFullstackTemplate = "https://github.com/nullslate/fullstack-template.git"
)

// defaultTemplateURL returns the template repository for a variant.
func defaultTemplateURL(variant scaffold.Variant) string {
	switch variant {
	case scaffold.VariantLib:
		return defaultLibTemplate
	case scaffold.VariantFullstack:
		return defaultFullstackTemplate
	default:
		return defaultAppTemplate
	}
}

// parseLanguage converts a --lang flag value to a Language.
func parseLanguage(lang string) (scaffold.Language, error) {
	switch lang {
	case "typescript", "ts", "":
		return scaffold.LangTypeScript, nil
	case "javascript", "js":
		return scaffold.LangJavaScript, nil
	default:
		return 0, fmt.Errorf("invalid language %q: use typescript or javascript", lang)
	}
}

// parseDatabase converts a --db flag value to the database feature flag.
func parseDatabase(db string) (bool, error) {
	switch db {
	case "none", "":
		return false, nil
	case "postgres":
		return true, nil
	default:
		return false, fmt.Errorf("invalid database %q: use postgres or none", db)
	}
}
