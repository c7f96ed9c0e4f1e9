package fewshot

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSelector struct {
	examples []Example
	err      error
	inputs   []map[string]any
}

func (s *stubSelector) SelectExamples(values map[string]any) ([]Example, error) {
	s.inputs = append(s.inputs, values)
	if s.err != nil {
		return nil, s.err
	}
	return s.examples, nil
}

func TestNewExampleSource_ExactlyOneOf(t *testing.T) {
	tests := []struct {
		name        string
		examples    []Example
		selector    ExampleSelector
		expectedErr error
	}{
		{
			name:     "static list",
			examples: []Example{{"word": "happy"}},
		},
		{
			name:     "empty static list is still a list",
			examples: []Example{},
		},
		{
			name:     "selector",
			selector: &stubSelector{},
		},
		{
			name:        "both set",
			examples:    []Example{{"word": "happy"}},
			selector:    &stubSelector{},
			expectedErr: ErrExamplesAndSelector,
		},
		{
			name:        "neither set",
			expectedErr: ErrNoExampleSource,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newExampleSource(tt.examples, tt.selector)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestExampleSource_StaticIgnoresInputs(t *testing.T) {
	examples := []Example{
		{"word": "happy", "antonym": "sad"},
		{"word": "tall", "antonym": "short"},
	}
	source, err := newExampleSource(examples, nil)
	require.NoError(t, err)

	first, err := source.GetExamples(map[string]any{"adjective": "big"})
	require.NoError(t, err)
	second, err := source.GetExamples(map[string]any{"adjective": "small"})
	require.NoError(t, err)

	assert.Equal(t, examples, first)
	assert.Equal(t, examples, second)
}

func TestExampleSource_EmptyStaticList(t *testing.T) {
	source, err := newExampleSource([]Example{}, nil)
	require.NoError(t, err)

	examples, err := source.GetExamples(map[string]any{"adjective": "big"})
	require.NoError(t, err)
	assert.Empty(t, examples)
	assert.NotNil(t, examples)
}

func TestExampleSource_SelectorPassThrough(t *testing.T) {
	expected := []Example{{"word": "tall", "antonym": "short"}}
	sel := &stubSelector{examples: expected}
	source, err := newExampleSource(nil, sel)
	require.NoError(t, err)

	inputs := map[string]any{"adjective": "big", "extra": 42}
	examples, err := source.GetExamples(inputs)
	require.NoError(t, err)

	assert.Equal(t, expected, examples)
	require.Len(t, sel.inputs, 1)
	assert.Equal(t, inputs, sel.inputs[0])
}

func TestExampleSource_SelectorErrorPropagatedUnchanged(t *testing.T) {
	boom := errors.New("vector store unavailable")
	source, err := newExampleSource(nil, &stubSelector{err: boom})
	require.NoError(t, err)

	_, err = source.GetExamples(map[string]any{})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, boom, err, "delegate errors must not be wrapped")
}

func TestExampleSource_ZeroValueGuard(t *testing.T) {
	var source exampleSource
	_, err := source.GetExamples(map[string]any{})
	assert.ErrorIs(t, err, ErrNoExampleSource)
}

func TestExampleSource_NoCachingAcrossCalls(t *testing.T) {
	sel := &stubSelector{examples: []Example{{"word": "happy"}}}
	source, err := newExampleSource(nil, sel)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := source.GetExamples(map[string]any{"n": i})
		require.NoError(t, err)
	}
	assert.Len(t, sel.inputs, 3)
}
