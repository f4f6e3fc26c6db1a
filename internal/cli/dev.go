package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nullslate/nullslate/internal/runner"
)

// devCmd represents the dev command
var devCmd = &cobra.Command{
	Use:   "dev",
	Short: "Run the current project's dev server",
	Long: `Detect the project surrounding the current directory and run its
dev command: "cargo xtask dev" for fullstack projects, "bun dev" for
frontend projects, "cargo run" for Rust projects.`,
	Args: cobra.NoArgs,
	RunE: runDev,
}

func runDev(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	root, kind, err := runner.DetectProject(cwd)
	if err != nil {
		printErrorMsg(err.Error())
		return err
	}

	return runner.Dev(cmd.Context(), root, kind)
}
