// Package selector provides in-process example selectors for few-shot
// prompts. Selectors that need external infrastructure (vector stores,
// embeddings) live outside this module and plug in through
// [fewshot.ExampleSelector].
package selector

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rickchristie/fewshot"
)

// DefaultMaxLength is the length budget used when none is configured.
const DefaultMaxLength = 2048

// LengthFunc measures the length of a rendered text. The default counts
// whitespace-separated words.
type LengthFunc func(text string) int

// WordCount is the default [LengthFunc].
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// LengthBased selects the leading examples whose rendered forms fit within a
// length budget, leaving room for the caller's input text. Candidate order is
// preserved: examples are admitted first-to-last until the budget runs out.
//
//	sel, err := selector.NewLengthBased(examplePrompt, examples).
//	    WithMaxLength(1000)
//
// LengthBased is not safe for concurrent use with AddExample; configure it
// fully before sharing.
type LengthBased struct {
	examplePrompt fewshot.StringTemplate
	examples      []fewshot.Example
	lengths       []int
	maxLength     int
	lengthFunc    LengthFunc
}

// NewLengthBased creates a selector that renders each candidate example with
// examplePrompt to measure it. Every candidate is rendered eagerly, so a
// record missing a key the template requires fails here rather than at
// selection time.
func NewLengthBased(examplePrompt fewshot.StringTemplate, examples []fewshot.Example) (*LengthBased, error) {
	s := &LengthBased{
		examplePrompt: examplePrompt,
		maxLength:     DefaultMaxLength,
		lengthFunc:    WordCount,
	}
	for _, example := range examples {
		if err := s.AddExample(example); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// WithMaxLength sets the total length budget shared by the input text and the
// selected examples.
func (s *LengthBased) WithMaxLength(maxLength int) *LengthBased {
	s.maxLength = maxLength
	return s
}

// WithLengthFunc replaces the length measure and re-measures the candidates
// already added.
func (s *LengthBased) WithLengthFunc(fn LengthFunc) *LengthBased {
	s.lengthFunc = fn
	for i := range s.examples {
		rendered, err := s.render(s.examples[i])
		if err != nil {
			// Candidates were rendered successfully on add; a template that
			// fails now would have failed then.
			continue
		}
		s.lengths[i] = fn(rendered)
	}
	return s
}

// AddExample appends a candidate example and records its rendered length.
func (s *LengthBased) AddExample(example fewshot.Example) error {
	rendered, err := s.render(example)
	if err != nil {
		return err
	}
	s.examples = append(s.examples, example)
	s.lengths = append(s.lengths, s.lengthFunc(rendered))
	return nil
}

// SelectExamples returns the longest prefix of the candidate list that fits
// within the budget after subtracting the length of the input values.
func (s *LengthBased) SelectExamples(values map[string]any) ([]fewshot.Example, error) {
	remaining := s.maxLength - s.lengthFunc(joinValues(values))

	var selected []fewshot.Example
	for i, example := range s.examples {
		remaining -= s.lengths[i]
		if remaining < 0 {
			break
		}
		selected = append(selected, example)
	}
	return selected, nil
}

func (s *LengthBased) render(example fewshot.Example) (string, error) {
	keys := s.examplePrompt.GetInputVariables()
	projected := make(map[string]any, len(keys))
	for _, key := range keys {
		value, ok := example[key]
		if !ok {
			return "", fmt.Errorf("%w: candidate has no key %q", fewshot.ErrMissingExampleKey, key)
		}
		projected[key] = value
	}
	return s.examplePrompt.Format(projected)
}

// joinValues flattens the input values into one text in a deterministic key
// order so the measured input length is stable across calls.
func joinValues(values map[string]any) string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		if text, ok := values[key].(string); ok {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

// Compile-time check that LengthBased implements fewshot.ExampleSelector.
var _ fewshot.ExampleSelector = (*LengthBased)(nil)
