/*
Package scenario runs scripted sequences of tree operations, read from YAML
files, and compares the outcome to expectations.

A scenario file looks like this:

	scenarios:
	  - name: rotate right-left
	    insert: [10, 30, 65, 50, 90, 40]
	    expect: [10, 30, 40, 50, 65, 90]
	    height: 2
	  - name: remove root
	    insert: [20, 10, 42, 12, 15]
	    remove: [20]
	    expect: [10, 12, 15, 42]

Elements are integers. Inserts are applied first, then removals. Fields
`expect` and `height` are optional; `unbalanced: true` runs the scenario
against a plain binary search tree.
*/
package scenario

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/npillmayer/avl"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer writes to trace with key 'avl'
func tracer() tracing.Trace {
	return tracing.Select("avl")
}

// ErrMismatch is reported for a scenario whose outcome differs from its
// expectations.
var ErrMismatch = errors.New("scenario: outcome does not match expectation")

// File is the content of a scenario file.
type File struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario is a sequence of operations on an initially empty tree.
type Scenario struct {
	Name       string `yaml:"name"`
	Insert     []int  `yaml:"insert"`
	Remove     []int  `yaml:"remove,omitempty"`
	Expect     []int  `yaml:"expect,omitempty"`
	Height     *int   `yaml:"height,omitempty"`
	Unbalanced bool   `yaml:"unbalanced,omitempty"`
}

// Result is the outcome of running a scenario.
type Result struct {
	Name   string
	Values []int // in-order traversal after all operations
	Height int
	Err    error // nil if the scenario passed
}

// Passed reports whether the scenario met its expectations.
func (r Result) Passed() bool {
	return r.Err == nil
}

// Parse reads scenarios from YAML input.
func Parse(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("scenario: cannot parse: %w", err)
	}
	for i, s := range f.Scenarios {
		if s.Name == "" {
			f.Scenarios[i].Name = fmt.Sprintf("#%d", i+1)
		}
	}
	return &f, nil
}

// Load reads a scenario file.
func Load(name string) (*File, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Parse(file)
}

// Run executes all scenarios of f in order.
func (f *File) Run() []Result {
	results := make([]Result, 0, len(f.Scenarios))
	for _, s := range f.Scenarios {
		results = append(results, s.Run())
	}
	return results
}

// Tree builds the tree described by the operations of s.
func (s Scenario) Tree() (*avl.Tree[int], error) {
	tree, err := avl.New(avl.Config[int]{
		Compare:    cmp.Compare[int],
		Unbalanced: s.Unbalanced,
		Name:       s.Name,
	})
	if err != nil {
		return nil, err
	}
	for _, x := range s.Insert {
		tree.Insert(x)
	}
	for _, x := range s.Remove {
		tree.Remove(x)
	}
	return tree, nil
}

// Run executes the scenario and checks the tree's invariants, its content
// and its height.
func (s Scenario) Run() Result {
	result := Result{Name: s.Name, Height: -1}
	tree, err := s.Tree()
	if err != nil {
		result.Err = err
		return result
	}
	result.Values = tree.Values()
	result.Height = tree.Height()
	if err := tree.Check(); err != nil {
		result.Err = err
	} else if s.Expect != nil && !slices.Equal(result.Values, s.Expect) {
		result.Err = fmt.Errorf("%w: values %v, expected %v", ErrMismatch, result.Values, s.Expect)
	} else if s.Height != nil && result.Height != *s.Height {
		result.Err = fmt.Errorf("%w: height %d, expected %d", ErrMismatch, result.Height, *s.Height)
	}
	if result.Err != nil {
		tracer().Infof("scenario %s failed: %v", s.Name, result.Err)
	} else {
		tracer().Debugf("scenario %s passed", s.Name)
	}
	return result
}
