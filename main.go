// pattern: Imperative Shell
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"rustm/internal/cli"
	"rustm/internal/config"
	"rustm/internal/instance"
	"rustm/internal/logging"
	"rustm/internal/project"
	"rustm/internal/run"
	"rustm/internal/tui"
	"rustm/internal/vcs"
)

var version = "dev"

func main() {
	// Stop parsing flags after the first non-flag arg (the subcommand),
	// so that --help after a subcommand is handled by the subcommand.
	flag.CommandLine.SetInterspersed(false)

	configDir := flag.StringP("config-dir", "c", "", "config directory (default: ~/.config/rustm)")

	flag.Usage = func() {
		app := cli.BuildApp(version, *configDir)
		app.PrintHelp(os.Stderr)
		flag.PrintDefaults()
	}

	flag.Parse()

	app := cli.BuildApp(version, *configDir)
	if app.Execute(flag.Args()) {
		runTUI(*configDir)
	}
}

// runTUI launches the interactive TUI.
func runTUI(configDir string) {
	cfg, reason, err := config.LoadFrom(config.Path(configDir))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Fix or delete the configuration file, then restart.")
		os.Exit(1)
	}

	dataDir := config.DataDir(configDir)

	fl, err := instance.Lock(dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer instance.Unlock(fl)

	logManager, err := logging.NewManager(logging.Config{
		FilePath: filepath.Join(dataDir, "rustm.log"),
		Level:    cfg.LogLevel,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logManager.Close() }()

	appLogger := logManager.For("app")
	appLogger.Info("application starting", "version", version)

	runner := run.NewExecRunner()
	inspector := vcs.NewGitInspector(runner, logManager.For("vcs"))

	model := tui.NewModel(cfg, reason, tui.Deps{
		ConfigDir: configDir,
		Logs:      logManager,
		Runner:    runner,
		Inspector: inspector,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Forward log entries into the TUI log panel.
	go func() {
		for entry := range logManager.Entries() {
			p.Send(tui.LogEntryMsg{Entry: entry})
		}
	}()

	// Watch the projects root so the list refreshes on external changes.
	// Setup mode has no valid root yet; the watcher only runs with one.
	if reason == config.SetupNotNeeded {
		watcher, err := project.NewWatcher(cfg.ProjectsDirectory, logManager.For("watch"))
		if err != nil {
			appLogger.Warn("root watcher unavailable", "error", err)
		} else {
			defer func() { _ = watcher.Close() }()
			go watcher.Start(ctx, func() {
				p.Send(tui.RootChangedMsg{})
			})
		}
	}

	if _, err := p.Run(); err != nil {
		appLogger.Error("application exited with error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}

	appLogger.Info("application stopped")
}
