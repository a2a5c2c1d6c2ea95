package session_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsakit/bst"
	"github.com/katalvlaran/dsakit/fixedtree"
	"github.com/katalvlaran/dsakit/garage"
	"github.com/katalvlaran/dsakit/hanoi"
	"github.com/katalvlaran/dsakit/internal/logging"
	"github.com/katalvlaran/dsakit/internal/render"
	"github.com/katalvlaran/dsakit/internal/session"
	"github.com/katalvlaran/dsakit/traversal"
)

func plain() *render.Renderer {
	return render.New(lipgloss.NewRenderer(io.Discard, termenv.WithProfile(termenv.Ascii)))
}

// run feeds script to a session built by attach and returns its output and
// the console log.
func run(t *testing.T, script string, attach func(*session.Session)) (string, string) {
	t.Helper()
	var out, logs bytes.Buffer
	log, err := logging.New(&logs, logging.Options{})
	require.NoError(t, err)

	s := session.New("test", strings.NewReader(script), &out, log.Logger)
	attach(s)
	require.NoError(t, s.Run(context.Background()))

	return out.String(), logs.String()
}

func TestSession_Builtins(t *testing.T) {
	out, logs := run(t, "help\n\n# comment\nbogus\nquit\nhelp\n", func(*session.Session) {})

	assert.Contains(t, out, "help")
	assert.Contains(t, out, "end the session")
	assert.Contains(t, out, `error: unknown command "bogus", try help`)
	assert.Equal(t, 1, strings.Count(out, "end the session"), "nothing runs after quit")
	assert.Empty(t, logs, "a failure is reported once, on the session output")
}

func TestSession_PromptAndQuoting(t *testing.T) {
	var out bytes.Buffer
	s := session.New("dsakit", strings.NewReader(`echo "a b" c`+"\n"), &out, nil)
	s.SetInteractive(true)
	var got []string
	s.Register(session.Command{Name: "echo", Run: func(args []string) error {
		got = args
		return nil
	}})
	require.NoError(t, s.Run(context.Background()))

	assert.Equal(t, []string{"a b", "c"}, got)
	assert.Equal(t, "dsakit> dsakit> ", out.String())

	err := s.Exec(`echo "unterminated`)
	assert.ErrorIs(t, err, session.ErrUsage)
}

func TestSession_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := session.New("x", strings.NewReader("help\n"), io.Discard, nil)
	assert.ErrorIs(t, s.Run(ctx), context.Canceled)
}

func TestSession_CancelWhileReading(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	s := session.New("x", pr, io.Discard, nil)
	errc := make(chan error, 1)
	go func() { errc <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-errc:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

func TestSession_FailureLoggedAtDebug(t *testing.T) {
	var out, logs bytes.Buffer
	log, err := logging.New(&logs, logging.Options{Debug: true})
	require.NoError(t, err)

	s := session.New("test", strings.NewReader("bogus\n"), &out, log.Logger)
	s.SetRenderer(plain())
	require.NoError(t, s.Run(context.Background()))

	assert.Equal(t, "error: unknown command \"bogus\", try help\n", out.String())
	assert.Contains(t, logs.String(), "command failed session=test line=bogus")
	assert.NotContains(t, logs.String(), "warning:")
}

func TestSession_Tree(t *testing.T) {
	tr, err := fixedtree.New(2, 1, 10)
	require.NoError(t, err)

	script := strings.Join([]string{
		"insert 5 3 8",
		"insert 9",  // no slot under 8
		"insert 3",  // duplicate
		"insert 42", // range
		"set 1 1 7", // overwrite 8
		"set 5 0 1", // bad position
		"clear 1 0",
		"inorder",
		"traverse",
		"show",
	}, "\n")
	out, _ := run(t, script, func(s *session.Session) { session.Tree(s, tr, plain()) })

	assert.Contains(t, out, "5 placed at (0,0)")
	assert.Contains(t, out, "8 placed at (1,1)")
	assert.Contains(t, out, "error: fixedtree: no space")
	assert.Contains(t, out, "error: fixedtree: duplicate value")
	assert.Contains(t, out, "error: fixedtree: value out of range")
	assert.Contains(t, out, "slot (1,1) = 7")
	assert.Contains(t, out, "slot (1,0) cleared")
	assert.Contains(t, out, "[5 7]\n")
	assert.Contains(t, out, "preorder  [5 7]")
	assert.Contains(t, out, "postorder [7 5]")
	assert.Contains(t, out, "2/3 slots filled")
	assert.Equal(t, []int{5, 7}, tr.Traverse(traversal.InOrder))
}

func TestSession_BST(t *testing.T) {
	tr, err := bst.New(bst.WithBounds(1, 20))
	require.NoError(t, err)

	script := strings.Join([]string{
		"insert 10 5 15 5",
		"delete 10 99",
		"find 15",
		"min",
		"max",
		"insert x",
		"random 3",
	}, "\n")
	out, _ := run(t, script, func(s *session.Session) { session.BST(s, tr, plain()) })

	assert.Contains(t, out, "inserted 15")
	assert.Contains(t, out, "error: bst: duplicate value")
	assert.Contains(t, out, "deleted 10")
	assert.Contains(t, out, "error: bst: not found")
	assert.Contains(t, out, "found 15 after")
	assert.Contains(t, out, "5\n15\n")
	assert.Contains(t, out, `error: usage: "x" is not an integer`)
	assert.False(t, tr.Contains(10))
	assert.GreaterOrEqual(t, tr.Len(), 2)
	for _, v := range tr.Traverse(traversal.InOrder) {
		assert.True(t, v >= 1 && v <= 20, "random values honor bounds: %d", v)
	}
}

func TestSession_Queue(t *testing.T) {
	q, err := garage.NewQueue(3)
	require.NoError(t, err)

	script := "arrive abc def ghi jkl\ndepart def\ndepart zzz\npeek\nstats\nshow\n"
	out, logs := run(t, script, func(s *session.Session) { session.Garage(s, q, plain()) })

	assert.Contains(t, out, "ABC parked\nDEF parked\nGHI parked\n")
	assert.Contains(t, out, "error: garage: capacity exceeded")
	assert.Contains(t, out, "DEF departed after moving ABC (3 moves)")
	assert.Contains(t, out, "error: garage: plate not found")
	assert.Contains(t, out, "ABC\n")
	assert.Contains(t, out, "exit ◀ ABC │ GHI ◀ entrance")
	assert.Contains(t, out, "2/3 parked, 3 arrivals, 1 departures")
	assert.NotContains(t, logs, "command failed")
}

func TestSession_HugeCounts(t *testing.T) {
	q, err := garage.NewQueue(3)
	require.NoError(t, err)
	qs := session.New("queue", strings.NewReader(""), io.Discard, nil)
	session.Garage(qs, q, plain())

	require.NotPanics(t, func() { err = qs.Exec("fill 9223372036854775807") })
	assert.ErrorIs(t, err, garage.ErrCapacity)
	assert.True(t, q.Full())

	tr, err := bst.New(bst.WithBounds(1, 5))
	require.NoError(t, err)
	var out bytes.Buffer
	bs := session.New("bst", strings.NewReader(""), &out, nil)
	session.BST(bs, tr, plain())

	require.NotPanics(t, func() { err = bs.Exec("random 9223372036854775807") })
	assert.ErrorIs(t, err, session.ErrUsage)
	assert.Zero(t, tr.Len())

	// more values than the bounds hold: every value once, no error
	require.NoError(t, bs.Exec("random 8"))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, tr.Traverse(traversal.InOrder))
}

func TestSession_RandomWideBounds(t *testing.T) {
	tr, err := bst.New(bst.WithBounds(math.MinInt, math.MaxInt))
	require.NoError(t, err)
	s := session.New("bst", strings.NewReader(""), io.Discard, nil)
	session.BST(s, tr, plain())

	require.NotPanics(t, func() { err = s.Exec("random 20") })
	require.NoError(t, err)
	assert.Equal(t, 20, tr.Len())
}

func TestSession_StackFillReset(t *testing.T) {
	s, err := garage.NewStack(2)
	require.NoError(t, err)

	out, _ := run(t, "fill 5\nreset\nstats\n", func(sess *session.Session) { session.Garage(sess, s, plain()) })

	assert.Contains(t, out, "parked 2:")
	assert.Contains(t, out, "error: garage: capacity exceeded")
	assert.Contains(t, out, "0/2 parked, 0 arrivals, 0 departures")
}

func TestSession_Hanoi(t *testing.T) {
	g, err := hanoi.New(2)
	require.NoError(t, err)

	out, _ := run(t, "move a c\nmove a c\nmove 1 2\nsolve\nshow\n", func(s *session.Session) { session.Hanoi(s, g, plain()) })

	assert.Contains(t, out, "error: hanoi: illegal move: A -> C")
	// two manual moves, then the shortest continuation
	assert.Contains(t, out, "   3. disc 1: C -> A\n   4. disc 2: B -> C\n   5. disc 1: A -> C\n")
	assert.Contains(t, out, "moves: 5")
	assert.True(t, g.Solved())
	assert.False(t, g.Solving())
}

func TestSession_ErrorsPassThrough(t *testing.T) {
	tr, err := bst.New()
	require.NoError(t, err)
	s := session.New("bst", strings.NewReader(""), io.Discard, nil)
	session.BST(s, tr, plain())

	err = s.Exec("min")
	assert.True(t, errors.Is(err, bst.ErrNotFound))
	assert.ErrorIs(t, s.Exec("find"), session.ErrUsage)
}
