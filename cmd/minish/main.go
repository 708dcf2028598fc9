package main

import (
	"fmt"
	"os"

	"github.com/AntonioJCosta/minish/internal/adapters/commandanalysis"
	"github.com/AntonioJCosta/minish/internal/adapters/oscommand"
	"github.com/AntonioJCosta/minish/internal/adapters/sigdisposition"
	"github.com/AntonioJCosta/minish/internal/adapters/yamlconfig"
	"github.com/AntonioJCosta/minish/internal/core/ports"
	"github.com/AntonioJCosta/minish/internal/core/services/dispatch"
	"github.com/AntonioJCosta/minish/internal/handlers/cli"
	"github.com/AntonioJCosta/minish/internal/handlers/ui"
	"github.com/AntonioJCosta/minish/internal/logging"
	"github.com/AntonioJCosta/minish/internal/repositories/history"
)

// Version is set at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	reporter := ui.NewReporter(os.Stderr)

	configPath, err := yamlconfig.DefaultPath()
	if err != nil {
		reporter.Report(err)
		return 1
	}
	settingsProvider, err := yamlconfig.NewYAMLProvider(configPath)
	if err != nil {
		reporter.Report(err)
		return 1
	}
	cfg, err := settingsProvider.Load()
	if err != nil {
		reporter.Report(err)
		return 1
	}

	ui.SetColorEnabled(!cfg.NoColor)
	logger := logging.New(cfg.LogLevel, os.Stderr)
	logger.Debug("settings loaded", "path", settingsProvider.Path())

	signals := sigdisposition.NewConfigurator(logging.WithComponent(logger, "signals"))
	if err := signals.Configure(); err != nil {
		reporter.Report(err)
		return 1
	}
	defer signals.Restore()

	classifier := commandanalysis.NewTokenClassifier()
	dispatcher := dispatch.NewService(
		classifier,
		oscommand.NewOSProcessLauncher(signals, logging.WithComponent(logger, "launcher")),
		oscommand.NewOSDescriptorOpener(),
		reporter,
		ports.DefaultStreams(),
		logging.WithComponent(logger, "dispatch"),
	)

	var historyRepo ports.HistoryProvider
	if cfg.History.Enabled {
		historyRepo, err = history.NewHistoryProvider(history.NewDefaultHistoryFileFinder(cfg.History.Path))
		if err != nil {
			// The provider still works without a file; recording is skipped.
			logger.Warn("history unavailable", "error", err)
		}
	}

	rootCmd := cli.NewRootCommand(Version, cli.Shell{
		Dispatcher: dispatcher,
		Classifier: classifier,
		Reporter:   reporter,
		History:    historyRepo,
		Settings:   cfg,
		Logger:     logging.WithComponent(logger, "repl"),
	})

	if err := rootCmd.Execute(); err != nil {
		if !cli.IsReported(err) {
			fmt.Fprintf(os.Stderr, "%s %v\n", ui.ErrorColor("Error:"), err)
		}
		return 1
	}
	return 0
}
