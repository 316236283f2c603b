package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nvandessel/droidconf/internal/config"
	"github.com/nvandessel/droidconf/internal/print"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List accepted API level codenames and language levels",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		p := print.New(cmd.OutOrStdout())

		p.Section("API level codenames")
		for _, name := range config.Codenames() {
			level, _ := config.ParseAPILevel(name)
			p.KeyValue(name, level)
		}

		p.Section("Language levels")
		var names []string
		for _, l := range config.SupportedLanguageLevels() {
			names = append(names, string(l))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", strings.Join(names, ", "))
	},
}

func init() {
	rootCmd.AddCommand(levelsCmd)
}
