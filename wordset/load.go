package wordset

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/guiguan/caster"
	"github.com/npillmayer/avl"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
)

// ErrNotRegularFile is flagged by Load for directories, devices, etc.
var ErrNotRegularFile = errors.New("wordset: file is not a regular file")

// subscriberCapacity is the buffer size of every subscription to the word
// broadcast.
const subscriberCapacity = 256

// Event is broadcast for every word found, and once at the end of the input.
type Event struct {
	Word  string // the word, empty for the final event
	Count int    // number of words found so far, including duplicates
	Done  bool   // true for the final event
	Err   error  // read error, only set for the final event
}

// Options control word extraction. A nil *Options selects the defaults.
type Options struct {
	FoldCase  bool        // map words to lower case
	MinLength int         // drop words with fewer runes
	Observer  func(Event) // called for every event, from a separate goroutine
}

func (opts *Options) normalized() *Options {
	if opts == nil {
		return &Options{MinLength: 1}
	}
	o := *opts
	if o.MinLength < 1 {
		o.MinLength = 1
	}
	return &o
}

// Load reads a text file and returns the set of its words.
// Files named *.html or *.htm are parsed as HTML, see FromHTML.
func Load(name string, opts *Options) (*avl.Tree[string], error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegularFile, name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	defer file.Close()
	tracer().Infof("loading words from %s (%d bytes)", name, fi.Size())
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
		return FromHTML(file, opts)
	}
	return FromReader(file, opts)
}

// FromReader returns the set of words of a UTF-8 text.
func FromReader(r io.Reader, opts *Options) (*avl.Tree[string], error) {
	opts = opts.normalized()
	tree, err := avl.New(avl.Config[string]{
		Compare: strings.Compare,
		Name:    "wordset",
	})
	if err != nil {
		return nil, err
	}
	ctx := context.Background()
	cast := caster.New(ctx) // we will broadcast words as they are found
	defer cast.Close()
	sub, ok := cast.Sub(ctx, subscriberCapacity)
	if !ok {
		return nil, errors.New("wordset: cannot subscribe to word broadcast")
	}
	var wg sync.WaitGroup
	if opts.Observer != nil {
		if events, ok := cast.Sub(ctx, subscriberCapacity); ok {
			wg.Add(1)
			go observe(events, opts.Observer, &wg)
		}
	}
	go produce(r, opts, cast)
	var loadErr error
	for m := range sub {
		ev := m.(Event)
		if ev.Done {
			loadErr = ev.Err
			tracer().Debugf("wordset: %d words, %d distinct", ev.Count, tree.Len())
			break
		}
		tree.Insert(ev.Word)
	}
	wg.Wait()
	if loadErr != nil {
		return tree, fmt.Errorf("wordset: reading input: %w", loadErr)
	}
	return tree, nil
}

func observe(events <-chan interface{}, observer func(Event), wg *sync.WaitGroup) {
	defer wg.Done()
	for m := range events {
		ev := m.(Event)
		observer(ev)
		if ev.Done {
			return
		}
	}
}

// produce segments the input and publishes every word. The last message
// published is always an Event with Done set.
func produce(r io.Reader, opts *Options, cast *caster.Caster) {
	er := &errReader{r: r}
	segmenter := segment.NewSegmenter(uax14.NewLineWrap())
	segmenter.Init(bufio.NewReader(er))
	count := 0
	for segmenter.Next() {
		for _, w := range words(string(segmenter.Bytes()), opts) {
			count++
			cast.Pub(Event{Word: w, Count: count})
		}
	}
	cast.Pub(Event{Count: count, Done: true, Err: er.err})
}

// words splits a line-break segment into words, stripping punctuation and
// symbols at both ends.
func words(seg string, opts *Options) []string {
	var ws []string
	for _, f := range strings.Fields(seg) {
		w := strings.TrimFunc(f, func(r rune) bool {
			return unicode.IsPunct(r) || unicode.IsSymbol(r)
		})
		if utf8.RuneCountInString(w) < opts.MinLength {
			continue
		}
		if opts.FoldCase {
			w = strings.ToLower(w)
		}
		ws = append(ws, w)
	}
	return ws
}

// errReader remembers the first read error other than io.EOF.
type errReader struct {
	r   io.Reader
	err error
}

func (er *errReader) Read(p []byte) (int, error) {
	n, err := er.r.Read(p)
	if err != nil && err != io.EOF && er.err == nil {
		er.err = err
	}
	return n, err
}
