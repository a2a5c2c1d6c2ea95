// Package session runs line-oriented command sessions against one engine
// instance. Lines are split shell-style, dispatched to registered commands,
// and failures are reported without ending the session.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/katalvlaran/dsakit/internal/render"
)

var (
	// ErrQuit ends Run without error when returned by a command.
	ErrQuit = errors.New("session: quit")

	// ErrUsage indicates malformed command arguments.
	ErrUsage = errors.New("usage")
)

// Command is one session verb.
type Command struct {
	Name    string
	Aliases []string
	Usage   string // argument synopsis, e.g. "<plate>..."
	Help    string
	Run     func(args []string) error
}

// Session reads commands from in and writes results to out.
type Session struct {
	name        string
	in          io.Reader
	out         io.Writer
	log         *slog.Logger
	render      *render.Renderer
	interactive bool

	commands map[string]*Command
	order    []*Command
}

// New returns a session named name (used as the prompt) with the built-in
// help and quit commands registered.
func New(name string, in io.Reader, out io.Writer, log *slog.Logger) *Session {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := &Session{
		name:     name,
		in:       in,
		out:      out,
		log:      log.With("session", name),
		commands: make(map[string]*Command),
	}
	s.Register(
		Command{Name: "help", Aliases: []string{"?"}, Help: "list commands", Run: s.help},
		Command{Name: "quit", Aliases: []string{"exit", "q"}, Help: "end the session", Run: func([]string) error { return ErrQuit }},
	)

	return s
}

// SetInteractive turns the prompt on or off.
func (s *Session) SetInteractive(on bool) { s.interactive = on }

// SetRenderer styles error lines with r.
func (s *Session) SetRenderer(r *render.Renderer) { s.render = r }

// Out returns the session output.
func (s *Session) Out() io.Writer { return s.out }

// Log returns the session logger.
func (s *Session) Log() *slog.Logger { return s.log }

// Register adds commands. A later command replaces an earlier one with the
// same name or alias.
func (s *Session) Register(cmds ...Command) {
	for i := range cmds {
		c := &cmds[i]
		if old, ok := s.commands[c.Name]; ok {
			s.order = slices.DeleteFunc(s.order, func(o *Command) bool { return o == old })
		}
		s.order = append(s.order, c)
		s.commands[c.Name] = c
		for _, a := range c.Aliases {
			s.commands[a] = c
		}
	}
}

// Printf writes formatted output.
func (s *Session) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

// Println writes a line of output.
func (s *Session) Println(args ...any) {
	_, _ = fmt.Fprintln(s.out, args...)
}

// Exec runs a single command line.
func (s *Session) Exec(line string) error {
	words, err := shellquote.Split(line)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if len(words) == 0 {
		return nil
	}
	name := strings.ToLower(words[0])
	c, ok := s.commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q, try help", words[0])
	}

	return c.Run(words[1:])
}

// Run reads lines until EOF, quit, or ctx is done. Command errors are printed
// and logged at debug level; only read errors and cancellation are returned.
// Cancellation interrupts a pending read.
func (s *Session) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	lines, readErr := s.readLines(done)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.interactive {
			s.Printf("%s> ", s.name)
		}

		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("failed to read command: %w", err)
				}
				return nil
			}
			line = strings.TrimSpace(l)
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		err := s.Exec(line)
		switch {
		case errors.Is(err, ErrQuit):
			return nil
		case err != nil:
			s.log.Debug("command failed", "line", line, "err", err)
			s.Println(s.errorLine(err))
		}
	}
}

// readLines scans s.in on its own goroutine so a blocked read never holds up
// cancellation. The goroutine stops sending once done is closed; readErr
// receives the scan error before lines is closed.
func (s *Session) readLines(done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		readErr <- scanner.Err()
	}()

	return lines, readErr
}

func (s *Session) errorLine(err error) string {
	if s.render != nil {
		return s.render.Error(err)
	}
	return "error: " + err.Error()
}

func (s *Session) help([]string) error {
	for _, c := range s.order {
		synopsis := c.Name
		if c.Usage != "" {
			synopsis += " " + c.Usage
		}
		s.Printf("  %-24s %s\n", synopsis, c.Help)
	}

	return nil
}

// usage builds an ErrUsage for command c.
func usage(c, synopsis string) error {
	return fmt.Errorf("%w: %s %s", ErrUsage, c, synopsis)
}
