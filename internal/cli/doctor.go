package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gedankenexperimenter/musicburst/internal/output"
	"github.com/gedankenexperimenter/musicburst/internal/report"
)

func NewDoctorCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := output.NewFormatter(os.Stdout)
			ok := true

			if _, err := report.DelimiterRune(deps.Delimiter); err != nil {
				f.SetupCheck("Delimiter", false, err.Error())
				ok = false
			} else {
				f.SetupCheck("Delimiter", true, deps.Delimiter)
			}

			if deps.ProfilePath == "" {
				f.SetupCheck("Tier profile", true, "built-in (MusicBurst + Source)")
			} else if _, err := loadProfile(deps.ProfilePath); err != nil {
				f.SetupCheck("Tier profile", false, err.Error())
				ok = false
			} else {
				f.SetupCheck("Tier profile", true, deps.ProfilePath)
			}

			outDir := filepath.Dir(deps.Output)
			if info, err := os.Stat(outDir); err != nil || !info.IsDir() {
				f.SetupCheck("Output directory", false, outDir+" does not exist")
				ok = false
			} else {
				f.SetupCheck("Output", true, deps.Output)
			}

			if ok {
				f.Success("\nConfiguration looks good.")
			} else {
				f.Warning("\nSome checks failed.")
			}
			return nil
		},
	}
}
