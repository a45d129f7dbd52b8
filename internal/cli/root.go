package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gedankenexperimenter/musicburst/config"
	"github.com/gedankenexperimenter/musicburst/internal/app"
	"github.com/gedankenexperimenter/musicburst/internal/logger"
	"github.com/gedankenexperimenter/musicburst/internal/profile"
	"github.com/gedankenexperimenter/musicburst/internal/version"
)

type Dependencies struct {
	App    *app.App
	Config *config.Config

	// Flag values, bound as persistent flags on the root command.
	Output      string
	Delimiter   string
	ProfilePath string
	Verbosity   int
}

func NewRootCmd(deps *Dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "musicburst [flags] <eaf_file>...",
		Short: "Generate summary of MusicBurst tier data in EAF file(s)",
		Long: "Extract timing statistics from the MusicBurst and Source tiers of\n" +
			"ELAN Annotation Format (EAF) files and write one CSV row per file.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := deps.Config.LogLevel
			if deps.Verbosity > 0 {
				level = logger.FromVerbosity(deps.Verbosity)
			}
			deps.App = app.New(logger.New(level))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return fmt.Errorf("at least one EAF file is required")
			}
			return runReport(deps, args)
		},
	}

	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(version.Full() + "\n")

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&deps.Output, "output", "o", deps.Config.Output, "Write output to <csv_file>")
	flags.StringVarP(&deps.Delimiter, "delimiter", "d", deps.Config.Delimiter, "CSV field separator (comma, tab or ascii)")
	flags.StringVarP(&deps.ProfilePath, "profile", "p", deps.Config.Profile, "Tier profile (YAML); default is the built-in MusicBurst/Source profile")
	flags.CountVarP(&deps.Verbosity, "verbose", "v", "Increase log verbosity (-v info, -vv debug)")

	rootCmd.AddCommand(NewTiersCmd(deps))
	rootCmd.AddCommand(NewWatchCmd(deps))
	rootCmd.AddCommand(NewDoctorCmd(deps))

	return rootCmd
}

// loadProfile returns the configured profile, or the built-in default when
// no path is set.
func loadProfile(path string) (*profile.Profile, error) {
	if path == "" {
		return profile.Default(), nil
	}
	return profile.Load(path)
}
