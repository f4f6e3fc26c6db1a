package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"github.com/nullslate/nullslate/internal/app"
	"github.com/nullslate/nullslate/internal/scaffold"
)

// promptProjectName interactively asks for a project name, rejecting names
// the app layer would refuse.
func promptProjectName() (string, error) {
	var name string
	prompt := &survey.Input{
		Message: "Project name",
		Help:    "Use lowercase letters, numbers, and hyphens only",
	}

	validator := func(val interface{}) error {
		str, ok := val.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", val)
		}
		return app.ValidateProjectName(str)
	}

	if err := survey.AskOne(prompt, &name, survey.WithValidator(validator)); err != nil {
		return "", err
	}
	return name, nil
}

// Variant labels shown in the select prompt.
const (
	variantLabelApp       = "Application"
	variantLabelLib       = "Library"
	variantLabelFullstack = "Fullstack"
)

// promptVariant asks which kind of project to scaffold.
func promptVariant() (scaffold.Variant, error) {
	var choice string
	prompt := &survey.Select{
		Message: "Project type",
		Options: []string{variantLabelApp, variantLabelLib, variantLabelFullstack},
		Default: variantLabelApp,
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return 0, err
	}

	switch choice {
	case variantLabelLib:
		return scaffold.VariantLib, nil
	case variantLabelFullstack:
		return scaffold.VariantFullstack, nil
	default:
		return scaffold.VariantApp, nil
	}
}

// App feature labels shown in the multi-select prompt.
const (
	featureLabelAuth = "Authentication (GitHub OAuth)"
	featureLabelDocs = "Documentation (MDX)"
	featureLabelDB   = "Database (PostgreSQL)"
)

// promptAppFeatures asks which app features to include. Authentication is
// preselected.
func promptAppFeatures() (scaffold.Features, error) {
	var selected []string
	prompt := &survey.MultiSelect{
		Message: "Select features",
		Options: []string{featureLabelAuth, featureLabelDocs, featureLabelDB},
		Default: []string{featureLabelAuth},
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return scaffold.Features{}, err
	}

	var features scaffold.Features
	for _, s := range selected {
		switch s {
		case featureLabelAuth:
			features.Auth = true
		case featureLabelDocs:
			features.Docs = true
		case featureLabelDB:
			features.Database = true
		}
	}
	return features, nil
}

// Lib feature labels shown in the multi-select prompt.
const (
	libFeatureLabelReact   = "React components"
	libFeatureLabelCss     = "CSS / styles"
	libFeatureLabelTesting = "Testing (vitest)"
)

// promptLibFeatures asks for the library language and optional features.
func promptLibFeatures() (scaffold.Features, error) {
	var langChoice string
	langPrompt := &survey.Select{
		Message: "Language",
		Options: []string{"TypeScript", "JavaScript"},
		Default: "TypeScript",
	}
	if err := survey.AskOne(langPrompt, &langChoice); err != nil {
		return scaffold.Features{}, err
	}

	features := scaffold.Features{Language: scaffold.LangTypeScript}
	if langChoice == "JavaScript" {
		features.Language = scaffold.LangJavaScript
	}

	var selected []string
	prompt := &survey.MultiSelect{
		Message: "Select features",
		Options: []string{libFeatureLabelReact, libFeatureLabelCss, libFeatureLabelTesting},
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return scaffold.Features{}, err
	}

	for _, s := range selected {
		switch s {
		case libFeatureLabelReact:
			features.React = true
		case libFeatureLabelCss:
			features.Css = true
		case libFeatureLabelTesting:
			features.Testing = true
		}
	}
	return features, nil
}
