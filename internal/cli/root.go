// Package cli wires the dsakit command tree: one subcommand per engine, each
// running an interactive or scripted session over stdin.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dsakit/internal/config"
	"github.com/katalvlaran/dsakit/internal/logging"
	"github.com/katalvlaran/dsakit/internal/prompt"
	"github.com/katalvlaran/dsakit/internal/render"
	"github.com/katalvlaran/dsakit/internal/session"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	cfg         *config.Config
	log         *logging.Logger
	render      *render.Renderer
	prompt      *prompt.Prompter
	interactive bool

	// flags
	debug   bool
	logFile string
	noInput bool

	// overridable for tests
	loadConfig func() (*config.Config, error)
	isTTY      func() bool
}

// NewRootCmd creates the root cobra command.
func NewRootCmd(version, commit, date string) *cobra.Command {
	return newRootCmd(&app{loadConfig: config.Load, isTTY: IsTTY}, version, commit, date)
}

func newRootCmd(a *app, version, commit, date string) *cobra.Command {
	if a.log == nil {
		a.log = logging.Discard()
	}
	rootCmd := &cobra.Command{
		Use:   "dsakit",
		Short: "Interactive data structure and algorithm workbench",
		Long: `dsakit drives five classic data structures from the terminal:
a fixed-shape binary tree, a binary search tree, a FIFO parking queue,
a LIFO parking stack and the Tower of Hanoi.

Each engine runs as a session reading commands from stdin, so it can be used
interactively or fed a script:

  dsakit bst --min 1 --max 50
  printf 'arrive abc def\ndepart abc\nshow\n' | dsakit queue --capacity 3`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.log.Close()
		},
	}

	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "log debug output (also DSAKIT_DEBUG)")
	rootCmd.PersistentFlags().StringVar(&a.logFile, "log-file", "", "also write logs to this rotating file (also DSAKIT_LOG_FILE)")
	rootCmd.PersistentFlags().BoolVar(&a.noInput, "no-input", false, "never prompt; use configured defaults")

	rootCmd.AddCommand(newTreeCmd(a))
	rootCmd.AddCommand(newBSTCmd(a))
	rootCmd.AddCommand(newGarageCmd(a, "queue"))
	rootCmd.AddCommand(newGarageCmd(a, "stack"))
	rootCmd.AddCommand(newHanoiCmd(a))
	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	return rootCmd
}

// setup loads configuration and builds the logger and renderer.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	if a.debug {
		cfg.Debug = true
	}
	if a.logFile != "" {
		cfg.LogFile = a.logFile
	}
	a.cfg = cfg

	log, err := logging.New(cmd.ErrOrStderr(), logging.Options{Debug: cfg.Debug, File: cfg.LogFile})
	if err != nil {
		return err
	}
	a.log = log
	a.render = render.New(lipgloss.NewRenderer(cmd.OutOrStdout()))
	a.prompt = prompt.New()
	a.interactive = !a.noInput && a.isTTY()
	a.log.Debug("setup", "command", cmd.CommandPath(), "interactive", a.interactive, "log_file", cfg.LogFile)

	return nil
}

// runSession runs s over the command's stdin until EOF, quit, or interrupt.
func (a *app) runSession(cmd *cobra.Command, s *session.Session, banner string) error {
	s.SetInteractive(a.interactive)
	if a.interactive {
		s.Println(a.render.Title(banner))
		s.Println(a.render.Muted("type help for commands, quit to leave"))
	}
	err := s.Run(cmd.Context())
	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}

// newSession builds a session on the command's streams.
func (a *app) newSession(cmd *cobra.Command, name string) *session.Session {
	s := session.New(name, cmd.InOrStdin(), cmd.OutOrStdout(), a.log.Logger)
	s.SetRenderer(a.render)

	return s
}

// IsTTY reports whether stdin and stdout are both terminals.
func IsTTY() bool {
	return isTerminal(os.Stdin.Fd()) && isTerminal(os.Stdout.Fd())
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func newVersionCmd(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printVersion(cmd.OutOrStdout(), version, commit, date)
		},
	}
}

func printVersion(w io.Writer, version, commit, date string) {
	_, _ = fmt.Fprintf(w, "dsakit %s (commit %s, built %s)\n", version, commit, date)
}
