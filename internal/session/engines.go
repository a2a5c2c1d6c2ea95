package session

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Pallinder/go-randomdata"

	"github.com/katalvlaran/dsakit/bst"
	"github.com/katalvlaran/dsakit/fixedtree"
	"github.com/katalvlaran/dsakit/garage"
	"github.com/katalvlaran/dsakit/hanoi"
	"github.com/katalvlaran/dsakit/internal/render"
	"github.com/katalvlaran/dsakit/traversal"
)

// MaxRandom bounds the count accepted by the bst random command.
const MaxRandom = 1000

// Tree registers the fixed-shape tree commands.
func Tree(s *Session, t *fixedtree.Tree, r *render.Renderer) {
	slot := func(c, synopsis string, args []string) (*fixedtree.Node, []int, error) {
		if len(args) != len(strings.Fields(synopsis)) {
			return nil, nil, usage(c, synopsis)
		}
		nums, err := parseInts(args)
		if err != nil {
			return nil, nil, err
		}
		n, err := t.At(nums[0], nums[1])
		return n, nums, err
	}

	s.Register(
		Command{Name: "set", Usage: "<depth> <index> <value>", Help: "put a value in a slot", Run: func(args []string) error {
			n, nums, err := slot("set", "<depth> <index> <value>", args)
			if err != nil {
				return err
			}
			if err := t.SetValue(n, nums[2]); err != nil {
				return err
			}
			s.log.Debug("set", "depth", nums[0], "index", nums[1], "value", nums[2])
			s.Printf("slot (%d,%d) = %d\n", nums[0], nums[1], nums[2])
			return nil
		}},
		Command{Name: "clear", Usage: "<depth> <index>", Help: "empty a slot", Run: func(args []string) error {
			n, nums, err := slot("clear", "<depth> <index>", args)
			if err != nil {
				return err
			}
			t.ClearValue(n)
			s.log.Debug("clear", "depth", nums[0], "index", nums[1])
			s.Printf("slot (%d,%d) cleared\n", nums[0], nums[1])
			return nil
		}},
		Command{Name: "insert", Aliases: []string{"add"}, Usage: "<value>...", Help: "place values by BST rules inside the fixed shape", Run: func(args []string) error {
			return eachInt("insert", args, func(v int) error {
				n, err := t.InsertBST(v)
				if err != nil {
					return err
				}
				d, i := n.Position()
				s.log.Debug("insert", "value", v, "depth", d, "index", i)
				s.Printf("%d placed at (%d,%d)\n", v, d, i)
				return nil
			})
		}},
		Command{Name: "reset", Help: "empty every slot", Run: func([]string) error {
			t.Reset()
			s.log.Debug("reset")
			return nil
		}},
		Command{Name: "show", Help: "draw the tree", Run: func([]string) error {
			s.Println(r.FixedTree(t))
			return nil
		}},
	)
	registerTraversals(s, r, t.Traverse)
}

// BST registers the binary search tree commands.
func BST(s *Session, t *bst.Tree, r *render.Renderer) {
	s.Register(
		Command{Name: "insert", Aliases: []string{"add"}, Usage: "<value>...", Help: "insert values", Run: func(args []string) error {
			return eachInt("insert", args, func(v int) error {
				if err := t.Insert(v); err != nil {
					return err
				}
				s.log.Debug("insert", "value", v, "size", t.Len())
				s.Printf("inserted %d\n", v)
				return nil
			})
		}},
		Command{Name: "delete", Aliases: []string{"del", "rm"}, Usage: "<value>...", Help: "delete values", Run: func(args []string) error {
			return eachInt("delete", args, func(v int) error {
				if err := t.Delete(v); err != nil {
					return err
				}
				s.log.Debug("delete", "value", v, "size", t.Len())
				s.Printf("deleted %d\n", v)
				return nil
			})
		}},
		Command{Name: "find", Usage: "<value>", Help: "search and count comparisons", Run: func(args []string) error {
			if len(args) != 1 {
				return usage("find", "<value>")
			}
			v, err := parseInt(args[0])
			if err != nil {
				return err
			}
			if n, steps := t.Find(v); n != nil {
				s.Printf("found %d after %d comparisons\n", v, steps)
				return nil
			}
			return fmt.Errorf("%w: %d", bst.ErrNotFound, v)
		}},
		Command{Name: "min", Help: "smallest value", Run: func([]string) error {
			v, err := t.Min()
			if err != nil {
				return err
			}
			s.Println(v)
			return nil
		}},
		Command{Name: "max", Help: "largest value", Run: func([]string) error {
			v, err := t.Max()
			if err != nil {
				return err
			}
			s.Println(v)
			return nil
		}},
		Command{Name: "random", Usage: "<count>", Help: "insert random values within the bounds", Run: func(args []string) error {
			if len(args) != 1 {
				return usage("random", "<count>")
			}
			count, err := parseInt(args[0])
			if err != nil {
				return err
			}
			if count < 0 || count > MaxRandom {
				return fmt.Errorf("%w: random count must be within [0, %d]", ErrUsage, MaxRandom)
			}
			lo, hi, ok := t.Bounds()
			if !ok {
				lo, hi = 0, 99
			}
			// a range smaller than count cannot supply that many distinct values
			if span := hi - lo; span >= 0 && span < count {
				count = span + 1
			}
			added := make([]int, 0, count)
			for tries := 0; len(added) < count && tries < 10*MaxRandom; tries++ {
				v := randomInt(lo, hi)
				if err := t.Insert(v); errors.Is(err, bst.ErrDuplicate) {
					continue
				} else if err != nil {
					return err
				}
				added = append(added, v)
			}
			s.log.Debug("random", "requested", count, "added", added)
			s.Printf("inserted %s\n", r.Values(added))
			return nil
		}},
		Command{Name: "reset", Help: "remove every node", Run: func([]string) error {
			t.Reset()
			s.log.Debug("reset")
			return nil
		}},
		Command{Name: "show", Help: "draw the tree", Run: func([]string) error {
			s.Println(r.BST(t))
			return nil
		}},
	)
	registerTraversals(s, r, t.Traverse)
}

// Garage registers the parking commands for a queue or a stack.
func Garage(s *Session, g garage.Garage, r *render.Renderer) {
	s.Register(
		Command{Name: "arrive", Aliases: []string{"park"}, Usage: "<plate>...", Help: "park cars", Run: func(args []string) error {
			if len(args) == 0 {
				return usage("arrive", "<plate>...")
			}
			var errs []error
			for _, p := range args {
				if err := g.Arrive(p); err != nil {
					errs = append(errs, err)
					continue
				}
				s.log.Debug("arrive", "plate", garage.Normalize(p), "parked", g.Len())
				s.Printf("%s parked\n", garage.Normalize(p))
			}
			return errors.Join(errs...)
		}},
		Command{Name: "depart", Aliases: []string{"leave"}, Usage: "<plate>", Help: "let a car out, moving blockers aside", Run: func(args []string) error {
			if len(args) != 1 {
				return usage("depart", "<plate>")
			}
			d, err := g.Depart(args[0])
			if err != nil {
				return err
			}
			s.log.Debug("depart", "plate", d.Plate, "relocated", d.Relocated, "moves", d.Moves)
			s.Println(r.Departure(d))
			return nil
		}},
		Command{Name: "fill", Usage: "<count>", Help: "park random cars", Run: func(args []string) error {
			if len(args) != 1 {
				return usage("fill", "<count>")
			}
			n, err := parseInt(args[0])
			if err != nil {
				return err
			}
			parked, err := garage.Fill(g, n)
			if len(parked) > 0 {
				s.log.Debug("fill", "plates", parked)
				s.Printf("parked %d: %v\n", len(parked), parked)
			}
			return err
		}},
		Command{Name: "peek", Help: "car that leaves next", Run: func([]string) error {
			p, ok := g.Peek()
			if !ok {
				return fmt.Errorf("%w: garage is empty", garage.ErrNotFound)
			}
			s.Println(p)
			return nil
		}},
		Command{Name: "reset", Help: "empty the garage and zero the counters", Run: func([]string) error {
			g.Reset()
			s.log.Debug("reset")
			return nil
		}},
		Command{Name: "stats", Help: "occupancy and counters", Run: func([]string) error {
			s.Println(r.Stats(g))
			return nil
		}},
		Command{Name: "show", Help: "draw the garage", Run: func([]string) error {
			s.Println(r.Garage(g))
			return nil
		}},
	)
}

// Hanoi registers line-mode puzzle commands, used when no terminal UI is
// available.
func Hanoi(s *Session, g *hanoi.Game, r *render.Renderer) {
	s.Register(
		Command{Name: "move", Aliases: []string{"mv"}, Usage: "<from> <to>", Help: "move a disc, pegs A/B/C or 1/2/3", Run: func(args []string) error {
			if len(args) != 2 {
				return usage("move", "<from> <to>")
			}
			from, err := hanoi.ParsePeg(args[0])
			if err != nil {
				return err
			}
			to, err := hanoi.ParsePeg(args[1])
			if err != nil {
				return err
			}
			won, err := g.Apply(from, to)
			if err != nil {
				return err
			}
			s.log.Debug("move", "from", from, "to", to, "moves", g.Moves())
			if won {
				s.Printf("solved in %d moves (minimum %d)\n", g.Moves(), (1<<g.Discs())-1)
			}
			return nil
		}},
		Command{Name: "solve", Help: "finish the puzzle from the current position", Run: func([]string) error {
			solver, err := hanoi.NewSolver(g)
			if err != nil {
				return err
			}
			defer solver.Stop()
			for {
				m, ok, err := solver.Next()
				if err != nil {
					return err
				}
				if !ok {
					break
				}
				s.Println(r.Move(g.Moves(), m))
			}
			s.log.Debug("solve", "moves", g.Moves())
			return nil
		}},
		Command{Name: "reset", Help: "restack every disc on A", Run: func([]string) error {
			g.Reset()
			s.log.Debug("reset")
			return nil
		}},
		Command{Name: "show", Help: "draw the pegs", Run: func([]string) error {
			s.Println(r.Pegs(g, render.NoSelection))
			s.Printf("moves: %d\n", g.Moves())
			return nil
		}},
	)
}

func registerTraversals(s *Session, r *render.Renderer, traverse func(traversal.Order) []int) {
	for _, o := range traversal.Orders() {
		s.Register(Command{Name: o.String(), Help: o.String() + " traversal", Run: func([]string) error {
			s.Println(r.Values(traverse(o)))
			return nil
		}})
	}
	s.Register(Command{Name: "traverse", Usage: "[order]", Help: "one or all traversals", Run: func(args []string) error {
		orders := traversal.Orders()
		if len(args) > 0 {
			o, err := traversal.ParseOrder(args[0])
			if err != nil {
				return err
			}
			orders = []traversal.Order{o}
		}
		for _, o := range orders {
			s.Printf("%-9s %s\n", o, r.Values(traverse(o)))
		}
		return nil
	}})
}

// randomInt returns a value in [lo, hi] for any lo <= hi.
func randomInt(lo, hi int) int {
	switch span := hi - lo; {
	case span < 0:
		// wider than an int; draw from the 32-bit window around zero
		return randomdata.Number(math.MinInt32, math.MaxInt32)
	case span == math.MaxInt:
		return lo + randomdata.Number(0, span)
	default:
		return lo + randomdata.Number(0, span+1)
	}
}

// eachInt applies fn to every argument, continuing past failures.
func eachInt(c string, args []string, fn func(int) error) error {
	if len(args) == 0 {
		return usage(c, "<value>...")
	}
	nums, err := parseInts(args)
	if err != nil {
		return err
	}
	var errs []error
	for _, v := range nums {
		if err := fn(v); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrUsage, s)
	}
	return v, nil
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		v, err := parseInt(a)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
