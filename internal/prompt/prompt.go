// Package prompt collects missing setup parameters interactively with survey.
// Callers only use it on a terminal; otherwise configured defaults apply.
package prompt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/katalvlaran/dsakit/internal/config"
)

// ErrCanceled reports an interrupted prompt.
var ErrCanceled = errors.New("prompt: canceled")

// Prompter asks setup questions. The zero value uses the process terminal.
type Prompter struct {
	opts []survey.AskOpt
}

// New returns a Prompter passing opts (e.g. survey.WithStdio) to every
// question.
func New(opts ...survey.AskOpt) *Prompter {
	return &Prompter{opts: opts}
}

// Int asks for an integer, offering def and re-asking until check accepts
// the answer.
func (p *Prompter) Int(message string, def int, check func(int) error) (int, error) {
	var answer string
	q := &survey.Input{Message: message, Default: strconv.Itoa(def)}
	opts := append([]survey.AskOpt{survey.WithValidator(IntValidator(check))}, p.opts...)
	if err := survey.AskOne(q, &answer, opts...); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return 0, ErrCanceled
		}
		return 0, fmt.Errorf("prompt %q: %w", message, err)
	}

	return strconv.Atoi(strings.TrimSpace(answer))
}

// Range asks for an inclusive range; the maximum must exceed the minimum.
func (p *Prompter) Range(name string, r *config.Range) error {
	lo, err := p.Int(fmt.Sprintf("Minimum %s value", name), r.Min, nil)
	if err != nil {
		return err
	}
	hi, err := p.Int(fmt.Sprintf("Maximum %s value", name), max(r.Max, lo+1), func(v int) error {
		return config.Range{Min: lo, Max: v}.Validate(name)
	})
	if err != nil {
		return err
	}
	r.Min, r.Max = lo, hi

	return nil
}

// Tree asks for the fixed tree depth and value range.
func (p *Prompter) Tree(c *config.TreeConfig) error {
	levels, err := p.Int(fmt.Sprintf("Tree levels (1-%d)", config.MaxTreeLevels), c.Levels, Between(1, config.MaxTreeLevels))
	if err != nil {
		return err
	}
	c.Levels = levels

	return p.Range("tree", &c.Range)
}

// Capacity asks for a garage capacity.
func (p *Prompter) Capacity(c *int) error {
	v, err := p.Int("Garage capacity", *c, Between(1, 1<<16))
	if err != nil {
		return err
	}
	*c = v

	return nil
}

// Discs asks for the Hanoi disc count.
func (p *Prompter) Discs(n *int) error {
	v, err := p.Int(fmt.Sprintf("Number of discs (1-%d)", config.MaxDiscs), *n, Between(1, config.MaxDiscs))
	if err != nil {
		return err
	}
	*n = v

	return nil
}

// Between returns a check accepting lo <= v <= hi.
func Between(lo, hi int) func(int) error {
	return func(v int) error {
		if v < lo || v > hi {
			return fmt.Errorf("enter a number from %d to %d", lo, hi)
		}
		return nil
	}
}

// IntValidator adapts check to a survey validator that first requires an
// integer answer. A nil check accepts any integer.
func IntValidator(check func(int) error) survey.Validator {
	return func(ans interface{}) error {
		s, ok := ans.(string)
		if !ok {
			return fmt.Errorf("expected text, got %T", ans)
		}
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("%q is not a whole number", s)
		}
		if check != nil {
			return check(v)
		}
		return nil
	}
}
