package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nvandessel/droidconf/internal/doctor"
	"github.com/nvandessel/droidconf/internal/ui"
)

var errUnhealthy = errors.New("settings checks reported errors")

var doctorCmd = &cobra.Command{
	Use:   "doctor [path]",
	Short: "Check settings against Android conventions",
	Long: `Load the settings and run advisory checks that the loader does not enforce,
such as targetApiLevel above compileApiLevel or an outdated desugaring library.
Exits with status 1 when a check reports an error.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, path, err := loadSettings(newLoader(false), args)
		if err != nil {
			return err
		}

		verbose, _ := cmd.Flags().GetBool("verbose")
		out := cmd.OutOrStdout()

		var result *doctor.CheckResult
		err = ui.RunSpinner(out, "Checking settings", func() error {
			result = doctor.RunChecks(s, doctor.CheckOptions{
				ProgressFunc: func(current, total int, msg string) {
					log.Debug(msg, zap.Int("current", current), zap.Int("total", total))
				},
			})
			return nil
		})
		if err != nil {
			return err
		}

		log.Info("settings checked", zap.String("path", path), zap.String("summary", result.QuickReport()))

		fmt.Fprintf(out, "File: %s\n\n", path)
		fmt.Fprint(out, result.Report())
		if verbose {
			fmt.Fprintln(out)
			fmt.Fprint(out, result.FixReport())
			fmt.Fprintln(out)
		}

		if !result.IsHealthy() {
			return errUnhealthy
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolP("verbose", "v", false, "Also list every suggested fix at the end")
}
