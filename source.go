package fewshot

// exampleSource holds the two mutually exclusive ways to obtain examples:
// a static list or a pluggable selector. Both prompt types embed it.
//
// A non-nil empty slice is a valid static source - it is distinct from "not
// provided" and composes a prompt with no demonstrations.
type exampleSource struct {
	examples []Example
	selector ExampleSelector
}

// newExampleSource validates the exactly-one-of contract at construction.
func newExampleSource(examples []Example, selector ExampleSelector) (exampleSource, error) {
	if examples != nil && selector != nil {
		return exampleSource{}, ErrExamplesAndSelector
	}
	if examples == nil && selector == nil {
		return exampleSource{}, ErrNoExampleSource
	}
	return exampleSource{examples: examples, selector: selector}, nil
}

// GetExamples resolves the example set for the given input values.
//
// A static list is returned verbatim and the inputs are ignored. With a
// selector, the inputs are passed through unchanged and the selector's result
// (and any error) is returned unmodified. The result is recomputed on every
// call - never cached - since a selector may be input-dependent.
func (s exampleSource) GetExamples(values map[string]any) ([]Example, error) {
	switch {
	case s.examples != nil:
		return s.examples, nil
	case s.selector != nil:
		return s.selector.SelectExamples(values)
	default:
		// Unreachable after construction; kept as a guard for zero values.
		return nil, ErrNoExampleSource
	}
}
