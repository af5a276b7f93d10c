// Package main provides the edmv command. It lists the current directory,
// opens the list in an editor and renames every path whose line was changed.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Cyclone1070/edmv/internal/apply"
	"github.com/Cyclone1070/edmv/internal/config"
	"github.com/Cyclone1070/edmv/internal/orchestrator"
	"github.com/Cyclone1070/edmv/internal/service/executor"
	osfs "github.com/Cyclone1070/edmv/internal/service/fs"
	"github.com/Cyclone1070/edmv/internal/service/ignore"
	"github.com/Cyclone1070/edmv/internal/service/path"
	"github.com/Cyclone1070/edmv/internal/session"
	"github.com/Cyclone1070/edmv/internal/ui"
	uiservices "github.com/Cyclone1070/edmv/internal/ui/services"
	"github.com/Cyclone1070/edmv/internal/walk"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// version is set with -ldflags "-X main.version=...".
var version = "dev"

// Dependencies holds the components required to run the application.
type Dependencies struct {
	Config *config.Config
	Logger *slog.Logger
	Stdin  *os.File
	Stdout *os.File
	Stderr *os.File
}

func newRootCmd(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "edmv",
		Short: "Rename files by editing their names in a text editor.",
		Long: `Rename files by editing their names in a text editor.

edmv lists every file and directory below the current directory, skipping
hidden and ignored entries, and opens the list in your editor. Change any
line, save, return to the terminal and press Enter: each path is renamed to
whatever its line now says. Blank and unchanged lines are left alone.`,
		Args:          cobra.NoArgs,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
			root, err := path.CanonicaliseRoot(cwd)
			if err != nil {
				return err
			}
			return createOrchestrator(deps, root).Run(cmd.Context(), root)
		},
	}
}

func createOrchestrator(deps Dependencies, root string) *orchestrator.Orchestrator {
	cfg := deps.Config
	logger := deps.Logger
	fs := osfs.NewOSFileSystem()

	matcher := ignore.NewMatcher(root, fs, ignore.Options{
		IgnoreFiles: cfg.Walk.IgnoreFiles,
		Parents:     cfg.Walk.Parents,
		GitExclude:  cfg.Walk.GitExclude,
		GitGlobal:   cfg.Walk.GitGlobal,
		OnReadError: func(err error) {
			logger.Warn("skipping unreadable ignore file", "error", err)
		},
	})
	walker := walk.New(fs, matcher, cfg.Walk, logger.With("component", "walk"))

	opener := session.NewOpener(executor.NewOSCommandExecutor(executor.DefaultMaxOutputBytes), session.OpenerOptions{
		Command:     cfg.Editor.Command,
		Attach:      cfg.Editor.Attach,
		Stdio:       executor.Stdio{Stdin: deps.Stdin, Stdout: deps.Stdout, Stderr: deps.Stderr},
		Diagnostics: deps.Stderr,
	}, logger.With("component", "opener"))

	var gate session.Gate
	if !opener.Attached() {
		gate = createGate(deps)
	}
	editor := session.New(session.NewScratch(fs, ""), opener, gate, logger.With("component", "session"))

	applier := apply.New(fs, root, cfg.Apply, logger.With("component", "apply"))

	return orchestrator.New(walker, editor, applier, createReporter(deps), cfg.Walk.ChannelBuffer, logger)
}

// createGate uses the Bubble Tea prompt on a terminal and a plain line read otherwise.
func createGate(deps Dependencies) session.Gate {
	if !isTerminal(deps.Stdin) {
		return session.NewLineGate(deps.Stdin, deps.Stdout)
	}
	spinnerFactory := func() spinner.Model {
		return spinner.New(spinner.WithSpinner(spinner.Dot))
	}
	return ui.NewConfirmGate(deps.Stdin, deps.Stdout, spinnerFactory)
}

func createReporter(deps Dependencies) *ui.Reporter {
	format := ui.FormatPlain
	if isTerminal(deps.Stdout) {
		format = ui.FormatStyled
		if deps.Config.UI.MarkdownReport {
			format = ui.FormatMarkdown
		}
	}
	return ui.NewReporter(deps.Stdout, format, &uiservices.GlamourRenderer{}, deps.Config.UI.WordWrap)
}

func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	level, err := cfg.Log.SlogLevel()
	if err != nil {
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func main() {
	// Load configuration (from defaults + ~/.config/edmv/config.json + EDMV_* env)
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration.\n")
		cfg = config.DefaultConfig()
	}

	deps := Dependencies{
		Config: cfg,
		Logger: newLogger(cfg, os.Stderr),
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = newRootCmd(deps).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
