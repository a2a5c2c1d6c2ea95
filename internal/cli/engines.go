package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dsakit/bst"
	"github.com/katalvlaran/dsakit/fixedtree"
	"github.com/katalvlaran/dsakit/garage"
	"github.com/katalvlaran/dsakit/internal/config"
	"github.com/katalvlaran/dsakit/internal/session"
)

// ask runs fn to prompt for setup values when the session is interactive and
// none of flags were given on the command line.
func (a *app) ask(cmd *cobra.Command, fn func() error, flags ...string) error {
	if !a.interactive {
		return nil
	}
	for _, name := range flags {
		if cmd.Flags().Changed(name) {
			return nil
		}
	}

	return fn()
}

func newTreeCmd(a *app) *cobra.Command {
	var levels, lo, hi int

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Fill a fixed-shape binary tree",
		Long: `Starts a session on a complete binary tree of fixed depth whose slots are
filled by index or by ordered insertion.

Examples:
  dsakit tree --levels 3 --min 1 --max 99
  printf 'set 0 0 50\nset 1 0 25\ninorder\n' | dsakit tree`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := &a.cfg.Tree
			if cmd.Flags().Changed("levels") {
				c.Levels = levels
			}
			if cmd.Flags().Changed("min") {
				c.Min = lo
			}
			if cmd.Flags().Changed("max") {
				c.Max = hi
			}
			if err := a.ask(cmd, func() error { return a.prompt.Tree(c) }, "levels", "min", "max"); err != nil {
				return err
			}
			if err := c.Validate(); err != nil {
				return err
			}

			t, err := fixedtree.New(c.Levels, c.Min, c.Max)
			if err != nil {
				return err
			}
			a.log.Debug("tree ready", "levels", c.Levels, "min", c.Min, "max", c.Max)

			s := a.newSession(cmd, "tree")
			session.Tree(s, t, a.render)
			return a.runSession(cmd, s, fmt.Sprintf("FIXED TREE: %d levels, values %d..%d", c.Levels, c.Min, c.Max))
		},
	}

	cmd.Flags().IntVar(&levels, "levels", 0, "tree depth")
	cmd.Flags().IntVar(&lo, "min", 0, "smallest accepted value")
	cmd.Flags().IntVar(&hi, "max", 0, "largest accepted value")

	return cmd
}

func newBSTCmd(a *app) *cobra.Command {
	var lo, hi int

	cmd := &cobra.Command{
		Use:   "bst",
		Short: "Build a binary search tree",
		Long: `Starts a session on an unbalanced binary search tree restricted to a value
range. Values can be inserted, deleted, searched or generated at random.

Examples:
  dsakit bst --min 1 --max 50
  printf 'insert 8 3 10\ndelete 3\nshow\n' | dsakit bst`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := &a.cfg.BST
			if cmd.Flags().Changed("min") {
				r.Min = lo
			}
			if cmd.Flags().Changed("max") {
				r.Max = hi
			}
			if err := a.ask(cmd, func() error { return a.prompt.Range("bst", r) }, "min", "max"); err != nil {
				return err
			}
			if err := r.Validate("bst"); err != nil {
				return err
			}

			t, err := bst.New(bst.WithBounds(r.Min, r.Max))
			if err != nil {
				return err
			}
			a.log.Debug("bst ready", "min", r.Min, "max", r.Max)

			s := a.newSession(cmd, "bst")
			session.BST(s, t, a.render)
			return a.runSession(cmd, s, fmt.Sprintf("BINARY SEARCH TREE: values %d..%d", r.Min, r.Max))
		},
	}

	cmd.Flags().IntVar(&lo, "min", 0, "smallest accepted value")
	cmd.Flags().IntVar(&hi, "max", 0, "largest accepted value")

	return cmd
}

// newGarageCmd builds the queue or stack command; use names the discipline.
func newGarageCmd(a *app, use string) *cobra.Command {
	var capacity int

	short, entry := "Park cars in a single-lane queue garage", "enter at the back and leave from the front"
	if use == "stack" {
		short, entry = "Park cars in a dead-end stack garage", "enter and leave through the same end"
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long: fmt.Sprintf(`Starts a session on a bounded %s garage. Cars %s;
departing a car blocked by others moves them out and back in.

Examples:
  dsakit %s --capacity 5
  printf 'arrive abc def ghi\ndepart def\nshow\n' | dsakit %s`, use, entry, use, use),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := &a.cfg.Capacity
			if cmd.Flags().Changed("capacity") {
				*c = capacity
			}
			if err := a.ask(cmd, func() error { return a.prompt.Capacity(c) }, "capacity"); err != nil {
				return err
			}
			if err := config.ValidateCapacity(*c); err != nil {
				return err
			}

			var (
				g   garage.Garage
				err error
			)
			if use == "stack" {
				g, err = garage.NewStack(*c)
			} else {
				g, err = garage.NewQueue(*c)
			}
			if err != nil {
				return err
			}
			a.log.Debug("garage ready", "discipline", g.Discipline(), "capacity", *c)

			s := a.newSession(cmd, use)
			session.Garage(s, g, a.render)
			return a.runSession(cmd, s, fmt.Sprintf("%s GARAGE: %d spaces", strings.ToUpper(use), *c))
		},
	}

	cmd.Flags().IntVar(&capacity, "capacity", 0, "number of parking spaces")

	return cmd
}
