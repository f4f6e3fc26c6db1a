package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nullslate/nullslate/internal/runner"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the current project for release",
	Long: `Detect the project surrounding the current directory and run its
release build. Fullstack projects build the backend first, then the
frontend under web/.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	root, kind, err := runner.DetectProject(cwd)
	if err != nil {
		printErrorMsg(err.Error())
		return err
	}

	return runner.Build(cmd.Context(), root, kind)
}
