package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nvandessel/droidconf/internal/config"
	"github.com/nvandessel/droidconf/internal/print"
)

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a .droidconf.yaml file",
	Long: `Validate the structure and value ranges of a .droidconf.yaml file.

Failures are reported with their category: malformed document, invalid range
or missing dependency. With --strict, targetApiLevel and minApiLevel must not
exceed compileApiLevel.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		strict, _ := cmd.Flags().GetBool("strict")
		p := print.New(cmd.OutOrStdout())

		s, path, err := loadSettings(newLoader(strict), args)
		if err != nil {
			var verrs config.ValidationErrors
			if !errors.As(err, &verrs) {
				return err
			}
			log.Info("validation failed", zap.String("path", path), zap.Int("errors", len(verrs)))
			for _, e := range verrs {
				if e.Field != "" {
					p.Error("[%v] %s: %s", e.Kind, e.Field, e.Message)
				} else {
					p.Error("[%v] %s", e.Kind, e.Message)
				}
			}
			return fmt.Errorf("%s is not valid: %v", path, verrs.Kinds())
		}

		p.Success("%s is valid", path)
		p.KeyValue("applicationId", s.ApplicationID)
		p.KeyValue("version", fmt.Sprintf("%s (%d)", s.VersionName, s.VersionCode))
		p.KeyValue("api levels", fmt.Sprintf("min %d, target %d, compile %d", s.MinAPILevel, s.TargetAPILevel, s.CompileAPILevel))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().Bool("strict", false, "Also require target and min API levels not above compileApiLevel")
}
