package scaffold

// Variant identifies the kind of project being scaffolded.
// It determines which template source applies and which feature
// axis of Features is meaningful.
type Variant int

const (
	// VariantApp scaffolds a standalone web application.
	VariantApp Variant = iota
	// VariantLib scaffolds a reusable library package.
	VariantLib
	// VariantFullstack scaffolds a frontend under web/ with a backend overlay
	// copied to the project root.
	VariantFullstack
)

// String returns the string representation of the variant.
func (v Variant) String() string {
	switch v {
	case VariantApp:
		return "app"
	case VariantLib:
		return "lib"
	case VariantFullstack:
		return "fullstack"
	default:
		return "unknown"
	}
}

// Language selects the implementation language for library projects.
type Language int

const (
	// LangTypeScript is the default library language.
	LangTypeScript Language = iota
	// LangJavaScript strips TypeScript-only files and dependencies.
	LangJavaScript
)

// String returns the string representation of the language.
func (l Language) String() string {
	if l == LangJavaScript {
		return "javascript"
	}
	return "typescript"
}

// Features holds the optional capabilities selected for a project.
// It is constructed once per run (from flags or prompts) and never
// mutated afterwards.
//
// Auth, Docs and Database apply to the app and fullstack variants.
// Language, React, Css and Testing apply to the lib variant.
type Features struct {
	// Auth enables authentication routes, config, and env generation.
	Auth bool
	// Docs enables the MDX documentation system.
	Docs bool
	// Database enables the database client and schema files.
	Database bool

	// Language is the library implementation language.
	Language Language
	// React keeps the component subtree and react dependencies.
	React bool
	// Css keeps the styles subtree and styling dependencies.
	Css bool
	// Testing keeps the test config, tests subtree, and test tooling.
	Testing bool
}
