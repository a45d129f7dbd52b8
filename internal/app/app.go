package app

import (
	"go.uber.org/zap"

	"github.com/gedankenexperimenter/musicburst/internal/domain/summary/usecases"
)

type App struct {
	GenerateReport *usecases.GenerateReport
	ListTiers      *usecases.ListTiers
	Logger         *zap.SugaredLogger
}

// New wires the use cases around one shared logger.
func New(log *zap.SugaredLogger) *App {
	return &App{
		GenerateReport: &usecases.GenerateReport{Logger: log},
		ListTiers:      &usecases.ListTiers{Logger: log},
		Logger:         log,
	}
}
