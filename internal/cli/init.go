package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nullslate/nullslate/internal/app"
	"github.com/nullslate/nullslate/internal/scaffold"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init [name]",
	Short: "Scaffold a new project",
	Long: `Scaffold a new project from a template repository.

Without --yes, the project type and features are selected interactively.
With --yes, everything is taken from flags and the name argument is required.

Examples:
  nullslate init
  nullslate init my-app --yes
  nullslate init my-app --yes --docs --db postgres
  nullslate init my-lib --yes --lib --lang javascript --react
  nullslate init my-app --yes --no-auth --no-git --no-install`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

// Init command flags
var (
	initYes       bool
	initDocs      bool
	initNoAuth    bool
	initDB        string
	initLib       bool
	initFullstack bool
	initLang      string
	initReact     bool
	initCss       bool
	initTesting   bool
	initPath      string
	initTemplate  string
	initNoGit     bool
	initNoInstall bool
)

func init() {
	// Flags for init
	initCmd.Flags().BoolVarP(&initYes, FlagYes, "y", false, DescYes)
	initCmd.Flags().BoolVar(&initDocs, FlagDocs, false, DescDocs)
	initCmd.Flags().BoolVar(&initNoAuth, FlagNoAuth, false, DescNoAuth)
	initCmd.Flags().StringVar(&initDB, FlagDB, "none", DescDB)
	initCmd.Flags().BoolVar(&initLib, FlagLib, false, DescLib)
	initCmd.Flags().BoolVar(&initFullstack, FlagFullstack, false, DescFullstack)
	initCmd.Flags().StringVar(&initLang, FlagLang, "typescript", DescLang)
	initCmd.Flags().BoolVar(&initReact, FlagReact, false, DescReact)
	initCmd.Flags().BoolVar(&initCss, FlagCss, false, DescCss)
	initCmd.Flags().BoolVar(&initTesting, FlagTesting, false, DescTesting)
	initCmd.Flags().StringVar(&initPath, FlagPath, "", DescPath)
	initCmd.Flags().StringVar(&initTemplate, FlagTemplate, "", DescTemplate)
	initCmd.Flags().BoolVar(&initNoGit, FlagNoGit, false, DescNoGit)
	initCmd.Flags().BoolVar(&initNoInstall, FlagNoInstall, false, DescNoInstall)
}

func runInit(cmd *cobra.Command, args []string) error {
	// Resolve project name
	var projectName string
	if len(args) == 1 {
		projectName = args[0]
	} else {
		if initYes {
			err := fmt.Errorf("project name is required when using --%s", FlagYes)
			printErrorMsg(err.Error())
			return err
		}
		name, err := promptProjectName()
		if err != nil {
			return err
		}
		projectName = name
	}
	if err := app.ValidateProjectName(projectName); err != nil {
		printErrorMsg(err.Error())
		return err
	}

	outputDir := initPath
	if outputDir == "" {
		outputDir = projectName
	}

	// Resolve project variant
	var variant scaffold.Variant
	if initYes {
		switch {
		case initFullstack:
			variant = scaffold.VariantFullstack
		case initLib:
			variant = scaffold.VariantLib
		default:
			variant = scaffold.VariantApp
		}
	} else {
		v, err := promptVariant()
		if err != nil {
			return err
		}
		variant = v
	}

	templateURL := initTemplate
	if templateURL == "" {
		templateURL = defaultTemplateURL(variant)
	}

	// Fetch template
	spinner := startSpinner("Fetching template...")
	stagingDir, cleanupStaging, err := app.FetchTemplate(cmd.Context(), templateURL)
	if err != nil {
		stopSpinnerFail(spinner, fmt.Sprintf("Failed to fetch template: %v", err))
		return err
	}
	defer cleanupStaging()
	stopSpinnerSuccess(spinner, "Template fetched")

	// Resolve feature selection
	features, err := resolveFeatures(variant)
	if err != nil {
		return err
	}

	// Materialize the project
	spinner = startSpinner("Processing files...")
	if err := scaffold.CreateProject(stagingDir, outputDir, projectName, variant, features); err != nil {
		stopSpinnerFail(spinner, fmt.Sprintf("Failed to process files: %v", err))
		return err
	}
	stopSpinnerSuccess(spinner, "Files processed")

	// Post-processing
	if !initNoGit {
		spinner = startSpinner("Initializing git...")
		if err := app.InitGit(outputDir); err != nil {
			stopSpinnerFail(spinner, fmt.Sprintf("Git initialization failed: %v", err))
		} else {
			stopSpinnerSuccess(spinner, "Git initialized")
		}
	}

	if !initNoInstall {
		installDir := outputDir
		if variant == scaffold.VariantFullstack {
			installDir = filepath.Join(outputDir, "web")
		}
		spinner = startSpinner("Installing dependencies...")
		if err := app.InstallDeps(cmd.Context(), installDir); err != nil {
			stopSpinnerFail(spinner, fmt.Sprintf("Dependency install failed: %v", err))
			printWarning(fmt.Sprintf("Run it manually with: cd %s && bun install", installDir))
		} else {
			stopSpinnerSuccess(spinner, "Dependencies installed")
		}
	}

	printOutro(projectName, outputDir, variant)
	return nil
}

// resolveFeatures builds the feature selection from flags (--yes) or prompts.
func resolveFeatures(variant scaffold.Variant) (scaffold.Features, error) {
	if initYes {
		if variant == scaffold.VariantLib {
			lang, err := parseLanguage(initLang)
			if err != nil {
				return scaffold.Features{}, err
			}
			return scaffold.Features{
				Language: lang,
				React:    initReact,
				Css:      initCss,
				Testing:  initTesting,
			}, nil
		}

		database, err := parseDatabase(initDB)
		if err != nil {
			return scaffold.Features{}, err
		}
		return scaffold.Features{
			Auth:     !initNoAuth,
			Docs:     initDocs,
			Database: database,
		}, nil
	}

	if variant == scaffold.VariantLib {
		return promptLibFeatures()
	}
	return promptAppFeatures()
}

// printOutro prints the success message and next steps.
func printOutro(projectName, outputDir string, variant scaffold.Variant) {
	printSuccess(fmt.Sprintf("Created %s at %s", projectName, outputDir))
	printInfo("")
	printInfo("Next steps:")
	printInfo(fmt.Sprintf("  cd %s", outputDir))
	if initNoInstall {
		printInfo("  bun install")
	}
	switch variant {
	case scaffold.VariantLib:
		printInfo("  bun run build")
	case scaffold.VariantFullstack:
		printInfo("  nullslate dev")
	default:
		printInfo("  bun dev")
	}
}
