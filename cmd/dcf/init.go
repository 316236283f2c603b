package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nvandessel/droidconf/internal/config"
	"github.com/nvandessel/droidconf/internal/print"
	"github.com/nvandessel/droidconf/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create a .droidconf.yaml file",
	Long: `Create a .droidconf.yaml file in dir (default: current directory).

Values are imported from build.gradle.kts or build.gradle when one is found
(app/, the project root, android/ or android/app/), or from --from-gradle.
On a terminal every value can be reviewed in a form before the file is written.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}
		fromGradle, _ := cmd.Flags().GetString("from-gradle")
		force, _ := cmd.Flags().GetBool("force")

		path, err := config.InitConfig(dir, config.InitOptions{
			FromGradle:  fromGradle,
			Force:       force,
			Interactive: ui.IsInteractive(),
			In:          cmd.InOrStdin(),
			Out:         cmd.OutOrStdout(),
		})
		if err != nil {
			return err
		}
		if path == "" {
			return nil
		}

		log.Info("settings file written", zap.String("path", path))
		print.New(cmd.OutOrStdout()).Info("Run 'dcf validate' to check it, or 'dcf doctor' for advice")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().String("from-gradle", "", "Import values from this build.gradle(.kts) file")
	initCmd.Flags().BoolP("force", "f", false, "Overwrite an existing .droidconf.yaml")
}
