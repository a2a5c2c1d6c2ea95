package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dsakit/hanoi"
	"github.com/katalvlaran/dsakit/internal/render"
	"github.com/katalvlaran/dsakit/internal/session"
	"github.com/katalvlaran/dsakit/internal/tui"
)

// hanoiFlags holds the flags shared by the hanoi subcommands.
type hanoiFlags struct {
	discs int
	delay time.Duration
}

func (f *hanoiFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.discs, "discs", "n", 0, "number of discs")
	cmd.Flags().DurationVar(&f.delay, "delay", 0, "pause between auto-solve moves (e.g. 400ms)")
}

// apply overlays the flags on the configuration, prompts for the disc count
// when needed, and validates the result.
func (f *hanoiFlags) apply(a *app, cmd *cobra.Command) error {
	c := &a.cfg.Hanoi
	if cmd.Flags().Changed("discs") {
		c.Discs = f.discs
	}
	if cmd.Flags().Changed("delay") {
		c.DelayMS = int(f.delay / time.Millisecond)
	}
	if err := a.ask(cmd, func() error { return a.prompt.Discs(&c.Discs) }, "discs"); err != nil {
		return err
	}

	return c.Validate()
}

func newHanoiCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hanoi",
		Short: "Play or watch the Tower of Hanoi",
		Long: `Move every disc from peg A to peg C, one at a time, never placing a larger
disc on a smaller one. Play it yourself or watch the optimal solution.`,
	}

	cmd.AddCommand(newHanoiPlayCmd(a))
	cmd.AddCommand(newHanoiSolveCmd(a))

	return cmd
}

func newHanoiPlayCmd(a *app) *cobra.Command {
	var f hanoiFlags

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the puzzle",
		Long: `On a terminal, opens the full-screen game: pick a source and a target peg
with 1/2/3 (or a/b/c), or press s on the menu to watch the computer solve it.

Without a terminal, reads move commands from stdin instead.

Examples:
  dsakit hanoi play --discs 4
  printf 'move a c\nsolve\nshow\n' | dsakit hanoi play -n 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := f.apply(a, cmd); err != nil {
				return err
			}
			c := a.cfg.Hanoi

			if a.interactive {
				err := tui.RunHanoi(cmd.Context(), c.Discs, c.Delay(), a.render, a.log.Logger)
				if errors.Is(err, context.Canceled) {
					return nil
				}
				return err
			}

			g, err := hanoi.New(c.Discs)
			if err != nil {
				return err
			}
			s := a.newSession(cmd, "hanoi")
			session.Hanoi(s, g, a.render)
			return a.runSession(cmd, s, fmt.Sprintf("TOWER OF HANOI: %d discs", c.Discs))
		},
	}
	f.register(cmd)

	return cmd
}

func newHanoiSolveCmd(a *app) *cobra.Command {
	var (
		f     hanoiFlags
		quiet bool
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Print the optimal solution move by move",
		Long: `Solves the puzzle from the starting position, printing each move with the
configured delay between moves. Interrupting stops the solve where it is.

Examples:
  dsakit hanoi solve --discs 5 --delay 200ms
  dsakit hanoi solve -n 3 --delay 0 --quiet`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := f.apply(a, cmd); err != nil {
				return err
			}
			c := a.cfg.Hanoi

			g, err := hanoi.New(c.Discs)
			if err != nil {
				return err
			}
			solver, err := hanoi.NewSolver(g)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, a.render.Title(fmt.Sprintf("Goal: move %d discs to peg C", c.Discs)))
			if !quiet {
				_, _ = fmt.Fprintln(out, a.render.Pegs(g, render.NoSelection))
			}

			ctx := cmd.Context()
			err = solver.Run(ctx, func(m hanoi.Move) error {
				_, _ = fmt.Fprintln(out, a.render.Move(g.Moves(), m))
				if !quiet {
					_, _ = fmt.Fprintln(out, a.render.Pegs(g, render.NoSelection))
				}
				return sleep(ctx, c.Delay())
			})
			switch {
			case errors.Is(err, context.Canceled):
				_, _ = fmt.Fprintln(out, a.render.Muted(fmt.Sprintf("Stopped after %d of %d moves.", g.Moves(), (1<<c.Discs)-1)))
				a.log.Debug("solve interrupted", "moves", g.Moves())
				return nil
			case err != nil:
				return err
			}

			_, _ = fmt.Fprintf(out, "The computer has finished in %d moves.\n", g.Moves())
			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print moves only, without drawing the pegs")

	return cmd
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
