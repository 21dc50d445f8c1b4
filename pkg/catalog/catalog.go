// Package catalog indexes the katas by name so they can be run from
// command-line arguments.
//
// Each [Entry] adapts a list of string arguments to one kata's typed input
// and formats its result as a string. The katas themselves know nothing
// about the catalog; it is purely a consumer.
//
// # Usage
//
//	c := catalog.New(catalog.DefaultOptions())
//	out, err := c.Run(ctx, "escape-html", []string{"<b>hi</b>"})
//	// out == "&lt;b&gt;hi&lt;/b&gt;"
//
// Run fires the observability kata hooks around every call.
package catalog

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/kata/pkg/errors"
	"github.com/matzehuels/kata/pkg/observability"
	"github.com/matzehuels/kata/pkg/seq"
)

// Kind groups entries by the shape of their transformation.
type Kind string

const (
	KindText     Kind = "text"
	KindTally    Kind = "tally"
	KindSequence Kind = "sequence"
	KindClassify Kind = "classify"
)

// Kinds lists every kind in display order.
var Kinds = []Kind{KindText, KindTally, KindSequence, KindClassify}

// Entry describes one runnable kata.
type Entry struct {
	Name    string
	Kind    Kind
	Summary string
	Usage   string // argument synopsis, e.g. "<n>"
	MinArgs int
	MaxArgs int // 0 means no upper bound
	Fn      func(args []string) (string, error)
}

// Options are the tunable parameters some katas take.
type Options struct {
	GroupWidth int  // width for the "group" kata
	Pad        rune // pad for the "group" kata
	DeleteCap  int  // occurrence cap for the "delete-nth" kata
}

// DefaultOptions returns width 2, pad '_' and cap 1.
func DefaultOptions() Options {
	return Options{GroupWidth: 2, Pad: seq.DefaultPad, DeleteCap: 1}
}

// Validate checks option ranges.
func (o Options) Validate() error {
	if err := errors.ValidateWidth(o.GroupWidth); err != nil {
		return err
	}
	if err := errors.ValidatePad(string(o.Pad)); err != nil {
		return err
	}
	return errors.ValidateCap(o.DeleteCap)
}

// Catalog is an immutable set of entries. It is safe for concurrent use.
type Catalog struct {
	entries map[string]Entry
	names   []string
}

// New builds the catalog of every kata.
func New(opts Options) *Catalog {
	c := &Catalog{entries: make(map[string]Entry)}
	for _, e := range entries(opts) {
		c.entries[e.Name] = e
		c.names = append(c.names, e.Name)
	}
	slices.Sort(c.names)
	return c
}

// All returns every entry sorted by name.
func (c *Catalog) All() []Entry {
	out := make([]Entry, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, c.entries[name])
	}
	return out
}

// ByKind returns the entries of one kind sorted by name.
func (c *Catalog) ByKind(kind Kind) []Entry {
	var out []Entry
	for _, e := range c.All() {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Lookup finds an entry by name.
func (c *Catalog) Lookup(name string) (Entry, error) {
	e, ok := c.entries[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Entry{}, errors.New(errors.ErrCodeNotFound, "unknown kata %q", name)
	}
	return e, nil
}

// Run looks up name, checks the argument count and runs the kata.
func (c *Catalog) Run(ctx context.Context, name string, args []string) (string, error) {
	e, err := c.Lookup(name)
	if err != nil {
		return "", err
	}
	if len(args) < e.MinArgs {
		return "", errors.Invalid("%s needs at least %d argument(s), got %d (usage: %s %s)",
			e.Name, e.MinArgs, len(args), e.Name, e.Usage)
	}
	if e.MaxArgs > 0 && len(args) > e.MaxArgs {
		return "", errors.Invalid("%s takes at most %d argument(s), got %d (usage: %s %s)",
			e.Name, e.MaxArgs, len(args), e.Name, e.Usage)
	}

	hooks := observability.Kata()
	hooks.OnRunStart(ctx, e.Name)
	start := time.Now()
	out, err := e.Fn(args)
	hooks.OnRunComplete(ctx, e.Name, time.Since(start), err)
	return out, err
}
