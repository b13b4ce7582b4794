// pattern: Imperative Shell
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	flag "github.com/spf13/pflag"

	"rustm/internal/config"
	"rustm/internal/editor"
	"rustm/internal/logging"
	"rustm/internal/project"
	"rustm/internal/run"
	"rustm/internal/vcs"
)

const commandTimeout = 60 * time.Second

// BuildApp creates and configures the CLI application with all commands.
func BuildApp(version string, configDir string) *App {
	app := NewApp(version)

	app.AddCommand(&Command{
		Name:    "list",
		Summary: "Print discovered projects with status markers",
		Usage:   "Usage: rustm list",
		Run: func(args []string) error {
			return runListCommand(configDir)
		},
	})

	app.AddCommand(&Command{
		Name:    "new",
		Summary: "Create a new project without the TUI",
		Usage:   "Usage: rustm new <name> [--lib] [--edition N] [--open]",
		Run: func(args []string) error {
			return runNewCommand(configDir, args)
		},
	})

	app.AddCommand(&Command{
		Name:    "config",
		Summary: "Print the configuration file path",
		Usage:   "Usage: rustm config",
		Run: func(args []string) error {
			fmt.Println(config.Path(configDir))
			return nil
		},
	})

	app.AddCommand(&Command{
		Name:    "version",
		Summary: "Print version and exit",
		Usage:   "Usage: rustm version",
		Run: func(args []string) error {
			fmt.Println(version)
			return nil
		},
	})

	return app
}

// loadReadyConfig loads the configuration and fails if setup has not been
// completed; headless commands cannot run the setup flow.
func loadReadyConfig(configDir string) (config.Config, error) {
	cfg, reason, err := config.LoadFrom(config.Path(configDir))
	if err != nil {
		return cfg, err
	}
	if reason != config.SetupNotNeeded {
		return cfg, errors.New("configuration incomplete; run rustm without arguments to complete setup")
	}
	return cfg, nil
}

// newLogProvider opens the shared log file. Falls back to discarding logs
// if the file cannot be opened; headless commands still work.
func newLogProvider(configDir, level string) (logging.Provider, func()) {
	manager, err := logging.NewManager(logging.Config{
		FilePath: filepath.Join(config.DataDir(configDir), "rustm.log"),
		Level:    level,
	})
	if err != nil {
		return logging.NopProvider{}, func() {}
	}
	return manager, func() { _ = manager.Close() }
}

// runListCommand scans the projects directory and prints one line per
// project: status marker, name, path.
func runListCommand(configDir string) error {
	cfg, err := loadReadyConfig(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	logs, closeLogs := newLogProvider(configDir, cfg.LogLevel)
	defer closeLogs()

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	runner := run.NewExecRunner()
	inspector := vcs.NewGitInspector(runner, logs.For("vcs"))
	scanner := project.NewScanner(inspector, logs.For("scan"))

	projects, err := scanner.Scan(ctx, cfg.ProjectsDirectory)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	for _, p := range projects {
		fmt.Printf("%-1s %-24s %s\n", p.Status.Marker(), p.Name, p.Path)
	}
	return nil
}

// runNewCommand creates a project headlessly.
func runNewCommand(configDir string, args []string) error {
	flags := flag.NewFlagSet("new", flag.ExitOnError)
	lib := flags.Bool("lib", false, "create a library instead of a binary")
	edition := flags.String("edition", string(project.DefaultEdition), "Rust edition")
	open := flags.Bool("open", false, "open the project in the configured editor")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if flags.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "error: exactly one project name is required")
		os.Exit(1)
	}

	cfg, err := loadReadyConfig(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	ed, err := project.ParseEdition(*edition)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	req := project.NewCreateRequest(flags.Arg(0))
	req.Edition = ed
	if *lib {
		req.Kind = project.KindLibrary
	}

	logs, closeLogs := newLogProvider(configDir, cfg.LogLevel)
	defer closeLogs()

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	runner := run.NewExecRunner()
	inspector := vcs.NewGitInspector(runner, logs.For("vcs"))
	creator := project.NewCreator(cfg.ProjectsDirectory, inspector, runner, logs.For("create"))

	created, err := creator.Create(ctx, req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Created %s project at %s\n", req.Kind, created.Path)

	if *open {
		launcher := editor.NewLauncher(logs.For("editor"))
		if err := launcher.Launch(created.Path, cfg.EditorCmd); err != nil {
			// Creation already succeeded; the launch failure is a warning.
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}
	return nil
}
