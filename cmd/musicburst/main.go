package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/gedankenexperimenter/musicburst/config"
	"github.com/gedankenexperimenter/musicburst/internal/cli"
	"github.com/gedankenexperimenter/musicburst/internal/output"
)

func main() {
	if err := run(); err != nil {
		formatter := output.NewFormatter(os.Stderr)
		formatter.Error(err.Error())
		os.Exit(1)
	}
}

func run() error {
	// Optional; local overrides for MUSICBURST_* variables.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	deps := &cli.Dependencies{
		Config: cfg,
	}

	return cli.NewRootCmd(deps).Execute()
}
