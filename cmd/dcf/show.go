package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nvandessel/droidconf/internal/config"
)

var showCmd = &cobra.Command{
	Use:   "show [path]",
	Short: "Display resolved settings",
	Long: `Display the settings a build would use, after codenames and language level
aliases are resolved.

With --format yaml (default) the output is itself a valid .droidconf.yaml document.
With --format gradle it is the matching android block for build.gradle.kts.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		if format != "yaml" && format != "gradle" {
			return fmt.Errorf("unknown format %q (use yaml or gradle)", format)
		}

		s, path, err := loadSettings(newLoader(false), args)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if format == "gradle" {
			fmt.Fprintf(out, "// Resolved from %s\n", path)
			return config.ExportGradle(out, s)
		}
		fmt.Fprintf(out, "# Resolved from %s\n", path)

		doc := s.Document()
		data, err := yaml.Marshal(&doc)
		if err != nil {
			return fmt.Errorf("failed to marshal settings: %w", err)
		}
		_, err = out.Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().String("format", "yaml", "Output format (yaml, gradle)")
}
