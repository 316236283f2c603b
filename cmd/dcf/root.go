package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/nvandessel/droidconf/internal/config"
	"github.com/nvandessel/droidconf/internal/logger"
	"github.com/nvandessel/droidconf/internal/ui"
	"github.com/nvandessel/droidconf/internal/version"
)

var (
	// Version information (set during build)
	Version   = "dev"
	BuildTime = "unknown"
	GoVersion = "unknown"
)

// settings holds CLI options resolved from flags and DCF_* environment variables.
var settings = viper.New()

// log is replaced in PersistentPreRunE once the level and format are known.
var log = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:   "dcf",
	Short: "droidconf - declarative Android build settings",
	Long: `droidconf keeps the Android build settings of an app in one .droidconf.yaml file.

It provides:
  - Validation of API levels, versioning and language levels
  - A resolved view of the settings a build will use
  - Advisory checks for common Android conventions
  - Import of an existing build.gradle(.kts) into a new settings file

Every command looks for .droidconf.yaml in ., android/ and app/ unless a path is given.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if settings.GetBool("non-interactive") {
			ui.SetNonInteractive(true)
		}
		l, err := logger.New(settings.GetString("log-level"), settings.GetString("log-format"))
		if err != nil {
			return err
		}
		log = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version information",
	Long:  "Display droidconf version, build time, and Go version",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()
		out := cmd.OutOrStdout()
		if version.IsRelease() {
			fmt.Fprintf(out, "droidconf %s\n", info.Version)
		} else {
			fmt.Fprintf(out, "droidconf %s (development build)\n", info.Version)
		}
		fmt.Fprintf(out, "Built:      %s\n", info.BuildTime)
		fmt.Fprintf(out, "Go version: %s\n", info.GoVersion)
	},
}

func init() {
	version.SetInfo(version.Info{Version: Version, BuildTime: BuildTime, GoVersion: GoVersion})

	flags := rootCmd.PersistentFlags()
	flags.String("log-level", "warn", "Log level (debug, info, warn, error)")
	flags.String("log-format", "console", "Log format (console, json)")
	flags.Bool("non-interactive", false, "Never prompt, even on a terminal")

	settings.SetEnvPrefix("DCF")
	settings.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	settings.AutomaticEnv()
	for _, name := range []string{"log-level", "log-format", "non-interactive"} {
		_ = settings.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.AddCommand(versionCmd)
}

// newLoader returns a settings loader that logs through the CLI logger.
func newLoader(strict bool) config.ConfigLoader {
	return config.NewConfigLoader(config.WithLogger(log), config.WithStrictLevels(strict))
}

// loadSettings loads the document at args[0], or the discovered one, and returns its path.
func loadSettings(l config.ConfigLoader, args []string) (config.BuildSettings, string, error) {
	var path string
	if len(args) > 0 {
		resolved, err := config.ResolvePath(args[0])
		if err != nil {
			return config.BuildSettings{}, args[0], fmt.Errorf("path does not exist: %w", err)
		}
		path = resolved
	} else {
		found, err := l.Discover()
		if err != nil {
			return config.BuildSettings{}, "", err
		}
		path = found
	}

	log.Debug("loading settings", zap.String("path", path))
	s, err := l.Load(path)
	return s, path, err
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
