package scaffold

import "strings"

// SkipSet is a set of slash-separated relative path prefixes excluded from
// materialization. A path matches when it equals a prefix or is nested under
// one. Entries that do not exist in a given template tree are simply never
// matched; templates may evolve independently of the CLI.
type SkipSet map[string]struct{}

// NewSkipSet creates a SkipSet from the given path prefixes.
func NewSkipSet(prefixes ...string) SkipSet {
	s := make(SkipSet, len(prefixes))
	for _, p := range prefixes {
		s[p] = struct{}{}
	}
	return s
}

// Add inserts a path prefix into the set.
func (s SkipSet) Add(prefix string) {
	s[prefix] = struct{}{}
}

// Matches reports whether relPath equals or is nested under any prefix in
// the set. relPath must be slash-separated and relative to the template root.
func (s SkipSet) Matches(relPath string) bool {
	for prefix := range s {
		if relPath == prefix || strings.HasPrefix(relPath, prefix+"/") {
			return true
		}
	}
	return false
}

// skipRule gates a group of template paths behind a feature selection.
// When selected returns false, the paths are excluded from the output.
type skipRule struct {
	selected func(Features) bool
	paths    []string
}

// appSkipRules lists the feature-gated paths of the app template.
var appSkipRules = []skipRule{
	{
		selected: func(f Features) bool { return f.Docs },
		paths: []string{
			"src/routes/docs",
			"content/docs",
			"src/lib/docs.ts",
			"src/lib/docs.test.ts",
			"src/lib/mdx-components.tsx",
			"src/components/docs-sidebar.tsx",
			"src/components/copyable-pre.tsx",
		},
	},
	{
		selected: func(f Features) bool { return f.Auth },
		paths: []string{
			"src/lib/auth.ts",
			"api/auth",
			"src/components/session-provider.tsx",
		},
	},
	{
		selected: func(f Features) bool { return f.Database },
		paths: []string{
			"src/lib/db.ts",
		},
	},
}

// libSkipRules lists the feature-gated paths of the lib template.
var libSkipRules = []skipRule{
	{
		selected: func(f Features) bool { return f.Language == LangTypeScript },
		paths: []string{
			"tsconfig.json",
		},
	},
	{
		selected: func(f Features) bool { return f.React },
		paths: []string{
			"src/components",
		},
	},
	{
		selected: func(f Features) bool { return f.Css },
		paths: []string{
			"src/styles",
		},
	},
	{
		selected: func(f Features) bool { return f.Testing },
		paths: []string{
			"vitest.config.ts",
			"src/__tests__",
		},
	},
}

// ResolveSkips computes the set of path prefixes to exclude for the given
// variant and feature selection. It is a pure function: no I/O, no failure
// mode, and identical inputs always yield identical sets.
//
// The fullstack variant shares the app template rules; its database files
// are always excluded because the backend owns persistence.
func ResolveSkips(variant Variant, features Features) SkipSet {
	rules := appSkipRules
	if variant == VariantLib {
		rules = libSkipRules
	}
	if variant == VariantFullstack {
		features.Database = false
	}

	skips := NewSkipSet()
	for _, rule := range rules {
		if rule.selected(features) {
			continue
		}
		for _, p := range rule.paths {
			skips.Add(p)
		}
	}
	return skips
}
