package scaffold

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/nullslate/nullslate/internal/debug"
)

// ManifestFileName is the dependency manifest rewritten after materialization.
const ManifestFileName = "package.json"

// removalRule strips manifest entries when its feature is not selected.
// Keys are grouped by the manifest section they live in. Removal is purely
// subtractive and tolerant: a key the template never defined is a no-op.
type removalRule struct {
	selected func(Features) bool
	sections map[string][]string
}

// appRemovalRules lists the feature-gated manifest entries of the app template.
var appRemovalRules = []removalRule{
	{
		selected: func(f Features) bool { return f.Docs },
		sections: map[string][]string{
			"dependencies":    {"@mdx-js/react", "gray-matter"},
			"devDependencies": {"@mdx-js/rollup", "remark-frontmatter", "remark-mdx-frontmatter"},
		},
	},
	{
		selected: func(f Features) bool { return f.Auth },
		sections: map[string][]string{
			"dependencies": {"@auth/core"},
		},
	},
	{
		selected: func(f Features) bool { return f.Database },
		sections: map[string][]string{
			"dependencies":    {"pg"},
			"devDependencies": {"@types/pg"},
		},
	},
}

// libRemovalRules lists the feature-gated manifest entries of the lib template.
var libRemovalRules = []removalRule{
	{
		selected: func(f Features) bool { return f.Testing },
		sections: map[string][]string{
			"devDependencies": {"vitest", "@vitest/coverage-v8"},
			"scripts":         {"test"},
		},
	},
	{
		selected: func(f Features) bool { return f.Css },
		sections: map[string][]string{
			"devDependencies": {"postcss", "autoprefixer"},
		},
	},
	{
		selected: func(f Features) bool { return f.React },
		sections: map[string][]string{
			"peerDependencies": {"react", "react-dom"},
			"devDependencies":  {"@types/react", "@types/react-dom"},
		},
	},
	{
		selected: func(f Features) bool { return f.Language == LangTypeScript },
		sections: map[string][]string{
			"devDependencies": {"typescript"},
		},
	},
}

// RewriteManifest loads the manifest at manifestPath, removes the dependency
// and script entries gated behind unselected features, and writes it back
// pretty-printed with the key order it was loaded with. It never adds or
// renames keys; every entry that survives no matching rule is preserved.
func RewriteManifest(manifestPath string, variant Variant, features Features) error {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return NewSourceUnreadableError(manifestPath, err)
	}

	doc, err := parseOrderedObject(data)
	if err != nil {
		return NewMalformedManifestError(manifestPath, err)
	}

	rules := appRemovalRules
	switch variant {
	case VariantLib:
		rules = libRemovalRules
	case VariantFullstack:
		// The backend owns persistence; the frontend manifest never keeps
		// database entries.
		features.Database = false
	}

	for _, rule := range rules {
		if rule.selected(features) {
			continue
		}
		for section, keys := range rule.sections {
			if err := removeSectionKeys(doc, section, keys); err != nil {
				return NewMalformedManifestError(manifestPath, err)
			}
		}
	}

	out := doc.marshalPretty()
	if err := os.WriteFile(manifestPath, out, 0644); err != nil {
		return NewWriteFailedError(manifestPath, err)
	}
	return nil
}

// removeSectionKeys deletes keys from a named object section of the manifest.
// An absent section, or a section that is not an object, is a no-op.
func removeSectionKeys(doc *orderedObject, section string, keys []string) error {
	raw, ok := doc.get(section)
	if !ok {
		return nil
	}
	sec, err := parseOrderedObject(raw)
	if err != nil {
		// Mirrors the tolerance for absent keys: a non-object section has
		// nothing to remove.
		return nil
	}
	for _, key := range keys {
		if sec.remove(key) {
			debug.Debug("[scaffold] Manifest: removed %s.%s", section, key)
		}
	}
	doc.set(section, sec.marshalCompact())
	return nil
}

// orderedObject is a JSON object that preserves member order across a
// load/rewrite cycle, which encoding/json maps do not.
type orderedObject struct {
	keys   []string
	values map[string]json.RawMessage
}

// parseOrderedObject decodes data as a single JSON object, recording key order.
func parseOrderedObject(data []byte) (*orderedObject, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected JSON object, got %v", tok)
	}

	obj := &orderedObject{values: make(map[string]json.RawMessage)}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		obj.set(key, raw)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing data after JSON object")
	}
	return obj, nil
}

// get returns the raw value for key.
func (o *orderedObject) get(key string) (json.RawMessage, bool) {
	raw, ok := o.values[key]
	return raw, ok
}

// set stores a value, appending the key if it is new.
func (o *orderedObject) set(key string, raw json.RawMessage) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = raw
}

// remove deletes a key, reporting whether it was present.
func (o *orderedObject) remove(key string) bool {
	if _, exists := o.values[key]; !exists {
		return false
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
	return true
}

// marshalCompact serializes the object without insignificant whitespace.
func (o *orderedObject) marshalCompact() json.RawMessage {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, _ := json.Marshal(key)
		buf.Write(keyJSON)
		buf.WriteByte(':')
		_ = json.Compact(&buf, o.values[key])
	}
	buf.WriteByte('}')
	return buf.Bytes()
}

// marshalPretty serializes the object with two-space indentation, keys in
// loaded order.
func (o *orderedObject) marshalPretty() []byte {
	if len(o.keys) == 0 {
		return []byte("{}")
	}
	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, key := range o.keys {
		buf.WriteString("  ")
		keyJSON, _ := json.Marshal(key)
		buf.Write(keyJSON)
		buf.WriteString(": ")
		_ = json.Indent(&buf, o.values[key], "  ", "  ")
		if i < len(o.keys)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteByte('}')
	return buf.Bytes()
}
