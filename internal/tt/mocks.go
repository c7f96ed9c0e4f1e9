package tt

import (
	"github.com/rickchristie/fewshot"
)

// -----------------------------------------------------------------------------
// MockSelector - implements fewshot.ExampleSelector
// -----------------------------------------------------------------------------

// MockSelector is a configurable mock that implements fewshot.ExampleSelector.
// Responses are consumed in order; once the queue is exhausted the last
// configured response repeats, so idempotence tests can call it freely.
type MockSelector struct {
	results   [][]fewshot.Example
	errs      []error
	callCount int

	// CapturedInputs stores the values passed to each SelectExamples call.
	// Populated automatically on every call.
	CapturedInputs []map[string]any
}

// NewMockSelector creates a new MockSelector with no queued responses.
// An unconfigured selector returns an empty example list.
func NewMockSelector() *MockSelector {
	return &MockSelector{}
}

// AddResult queues an example list to return.
func (m *MockSelector) AddResult(examples ...fewshot.Example) *MockSelector {
	m.results = append(m.results, examples)
	m.errs = append(m.errs, nil)
	return m
}

// AddError queues an error for the next call.
func (m *MockSelector) AddError(err error) *MockSelector {
	m.results = append(m.results, nil)
	m.errs = append(m.errs, err)
	return m
}

// CallCount returns the number of times SelectExamples has been called.
func (m *MockSelector) CallCount() int {
	return m.callCount
}

// SelectExamples implements fewshot.ExampleSelector.
func (m *MockSelector) SelectExamples(values map[string]any) ([]fewshot.Example, error) {
	idx := m.callCount
	m.callCount++

	// Capture inputs for test verification
	m.CapturedInputs = append(m.CapturedInputs, values)

	if len(m.results) == 0 {
		return []fewshot.Example{}, nil
	}
	if idx >= len(m.results) {
		idx = len(m.results) - 1
	}
	if m.errs[idx] != nil {
		return nil, m.errs[idx]
	}
	return m.results[idx], nil
}

// Compile-time check that MockSelector implements fewshot.ExampleSelector.
var _ fewshot.ExampleSelector = (*MockSelector)(nil)
