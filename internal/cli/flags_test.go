package cli

import (
	"testing"

	"github.com/nullslate/nullslate/internal/scaffold"
)

func TestDefaultTemplateURL(t *testing.T) {
	tests := []struct {
		name    string
		variant scaffold.Variant
		want    string
	}{
		{name: "app", variant: scaffold.VariantApp, want: defaultAppTemplate},
		{name: "lib", variant: scaffold.VariantLib, want: defaultLibTemplate},
		{name: "fullstack", variant: scaffold.VariantFullstack, want: defaultFullstackTemplate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := defaultTemplateURL(tt.variant); got != tt.want {
				t.Errorf("defaultTemplateURL(%v) = %q, want %q", tt.variant, got, tt.want)
			}
		})
	}
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    scaffold.Language
		wantErr bool
	}{
		{name: "typescript", input: "typescript", want: scaffold.LangTypeScript},
		{name: "ts shorthand", input: "ts", want: scaffold.LangTypeScript},
		{name: "empty defaults to typescript", input: "", want: scaffold.LangTypeScript},
		{name: "javascript", input: "javascript", want: scaffold.LangJavaScript},
		{name: "js shorthand", input: "js", want: scaffold.LangJavaScript},
		{name: "invalid", input: "rust", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLanguage(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseLanguage(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("parseLanguage(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDatabase(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    bool
		wantErr bool
	}{
		{name: "none", input: "none", want: false},
		{name: "empty", input: "", want: false},
		{name: "postgres", input: "postgres", want: true},
		{name: "invalid", input: "mysql", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDatabase(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseDatabase(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("parseDatabase(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
