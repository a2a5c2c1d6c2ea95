// Package render draws engine state as terminal text with lipgloss. It only
// reads engine state; nothing here mutates it.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/katalvlaran/dsakit/bst"
	"github.com/katalvlaran/dsakit/fixedtree"
	"github.com/katalvlaran/dsakit/garage"
	"github.com/katalvlaran/dsakit/hanoi"
)

// Placeholder marks an empty tree slot or a missing child.
const Placeholder = "·"

// NoSelection is passed to Pegs when no peg is picked up.
const NoSelection = hanoi.Peg(hanoi.NumPegs)

// Renderer holds the styles, all created from one lipgloss renderer so the
// color profile follows the output they are written to.
type Renderer struct {
	title    lipgloss.Style
	value    lipgloss.Style
	muted    lipgloss.Style
	plate    lipgloss.Style
	selected lipgloss.Style
	errStyle lipgloss.Style
	disc     lipgloss.Style
}

// New returns a Renderer whose styles come from r (lipgloss.DefaultRenderer
// when nil).
func New(r *lipgloss.Renderer) *Renderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	return &Renderer{
		title:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("5")),
		value:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		muted:    r.NewStyle().Foreground(lipgloss.Color("241")),
		plate:    r.NewStyle().Foreground(lipgloss.Color("3")),
		selected: r.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		errStyle: r.NewStyle().Foreground(lipgloss.Color("1")),
		disc:     r.NewStyle().Foreground(lipgloss.Color("4")),
	}
}

// Title renders a heading.
func (r *Renderer) Title(s string) string { return r.title.Render(s) }

// Muted renders secondary text such as hints.
func (r *Renderer) Muted(s string) string { return r.muted.Render(s) }

// Error renders an error line.
func (r *Renderer) Error(err error) string { return r.errStyle.Render("error: " + err.Error()) }

// Values renders a traversal result as "[1 2 3]", or "(empty)".
func (r *Renderer) Values(vs []int) string {
	if len(vs) == 0 {
		return r.muted.Render("(empty)")
	}
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = r.value.Render(strconv.Itoa(v))
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// FixedTree renders t row by row; every slot is shown as index:value so the
// (depth, index) address used by set and clear is visible.
//
//	0 │ 0:5
//	1 │ 0:3  1:·
func (r *Renderer) FixedTree(t *fixedtree.Tree) string {
	rows := t.Levels()
	if len(rows) == 0 {
		return r.muted.Render("(no slots)")
	}

	var b strings.Builder
	for d, row := range rows {
		cells := make([]string, len(row))
		for i, n := range row {
			cells[i] = r.muted.Render(strconv.Itoa(i)+":") + r.slot(n)
		}
		fmt.Fprintf(&b, "%s %s\n", r.muted.Render(strconv.Itoa(d)+" │"), strings.Join(cells, "  "))
	}
	lo, hi := t.Bounds()
	b.WriteString(r.muted.Render(fmt.Sprintf("%d/%d slots filled, range [%d, %d]", t.Len(), t.Slots(), lo, hi)))

	return b.String()
}

func (r *Renderer) slot(n *fixedtree.Node) string {
	if v, ok := n.Value(); ok {
		return r.value.Render(strconv.Itoa(v))
	}

	return r.muted.Render(Placeholder)
}

// BST renders t as an indented tree, left child listed before right. A
// missing child is drawn as Placeholder when its sibling exists.
func (r *Renderer) BST(t *bst.Tree) string {
	root := t.Root()
	if root == nil {
		return r.muted.Render("(empty)")
	}

	out := r.bstNode(root).
		RootStyle(r.value).
		ItemStyle(r.value).
		EnumeratorStyle(r.muted.PaddingRight(1)).
		String()

	return out + "\n" + r.muted.Render(fmt.Sprintf("%d nodes, height %d", t.Len(), t.Height()))
}

func (r *Renderer) bstNode(n *bst.Node) *tree.Tree {
	node := tree.Root(strconv.Itoa(n.Value))
	left, right := n.Left(), n.Right()
	if left == nil && right == nil {
		return node
	}
	for _, c := range []*bst.Node{left, right} {
		if c == nil {
			node.Child(Placeholder)
			continue
		}
		if c.Left() == nil && c.Right() == nil {
			node.Child(strconv.Itoa(c.Value))
			continue
		}
		node.Child(r.bstNode(c))
	}

	return node
}

// Garage renders the parked plates. A queue is drawn left to right from exit
// to entrance; a stack is drawn top down.
func (r *Renderer) Garage(g garage.Garage) string {
	items := g.Items()
	plates := make([]string, len(items))
	for i, p := range items {
		plates[i] = r.plate.Render(p)
	}

	var b strings.Builder
	switch g.Discipline() {
	case garage.LIFO:
		b.WriteString(r.muted.Render("top ┐") + "\n")
		for _, p := range plates {
			b.WriteString(r.muted.Render("    │ ") + p + "\n")
		}
		b.WriteString(r.muted.Render("    ┴ closed end") + "\n")
	default:
		b.WriteString(r.muted.Render("exit ◀ "))
		b.WriteString(strings.Join(plates, r.muted.Render(" │ ")))
		b.WriteString(r.muted.Render(" ◀ entrance") + "\n")
	}
	b.WriteString(r.Stats(g))

	return b.String()
}

// Stats renders occupancy and the two counters.
func (r *Renderer) Stats(g garage.Garage) string {
	return r.muted.Render(fmt.Sprintf("%d/%d parked, %d arrivals, %d departures",
		g.Len(), g.Cap(), g.Arrivals(), g.Departures()))
}

// Departure summarizes a departure and the cars moved out of the way.
func (r *Renderer) Departure(d garage.Departure) string {
	if len(d.Relocated) == 0 {
		return fmt.Sprintf("%s departed (%d moves)", r.plate.Render(d.Plate), d.Moves)
	}

	return fmt.Sprintf("%s departed after moving %s (%d moves)",
		r.plate.Render(d.Plate), strings.Join(d.Relocated, ", "), d.Moves)
}

// Pegs draws the three pegs with their discs, bottom row last. selected, when
// valid, is marked under its label.
//
//	   │       │       │
//	  ███      │       │
//	 █████     │       │
//	───────────────────────
//	   A       B       C
func (r *Renderer) Pegs(g *hanoi.Game, selected hanoi.Peg) string {
	pegs := g.Pegs()
	n := g.Discs()
	width := 2*n + 1
	height := n + 1

	var b strings.Builder
	for row := height - 1; row >= 0; row-- {
		cells := make([]string, hanoi.NumPegs)
		for p, stack := range pegs {
			cell := "│"
			if row < len(stack) {
				cell = r.disc.Render(strings.Repeat("█", 2*stack[row]-1))
			}
			cells[p] = lipgloss.PlaceHorizontal(width, lipgloss.Center, cell)
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, " "), " ") + "\n")
	}
	b.WriteString(r.muted.Render(strings.Repeat("─", hanoi.NumPegs*width+hanoi.NumPegs-1)) + "\n")

	labels := make([]string, hanoi.NumPegs)
	for p := hanoi.A; p < hanoi.NumPegs; p++ {
		label := p.String()
		if p == selected {
			label = r.selected.Render("[" + label + "]")
		}
		labels[p] = lipgloss.PlaceHorizontal(width, lipgloss.Center, label)
	}
	b.WriteString(strings.TrimRight(strings.Join(labels, " "), " "))

	return b.String()
}

// Move renders one solver or player move with the running count.
func (r *Renderer) Move(count int, m hanoi.Move) string {
	return fmt.Sprintf("%s %s", r.muted.Render(fmt.Sprintf("%4d.", count)), m)
}
