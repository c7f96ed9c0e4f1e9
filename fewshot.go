package fewshot

import (
	"fmt"

	"github.com/tmc/langchaingo/llms"
)

// Example is a single demonstration record: a mapping from variable name to
// value. Examples are schema-free beyond the keys the example prompt expects;
// extra keys are ignored during formatting, missing required keys fail.
type Example map[string]any

// ExampleSelector chooses which examples to include for a given input.
// Implementations decide the selection policy (similarity ranking, length
// budgets, rotation, ...). The returned order is preserved verbatim in the
// composed prompt, so selectors that reorder examples do so intentionally.
//
// Selectors must be safe for concurrent use if the prompts that hold them are
// formatted concurrently. Errors returned by SelectExamples are propagated to
// the caller unchanged - no wrapping, no retry.
type ExampleSelector interface {
	// SelectExamples returns the examples to use for the given input values.
	SelectExamples(values map[string]any) ([]Example, error)
}

// StringTemplate renders a single string from named values. It is the
// capability used to format one example in a [StringPrompt].
//
// langchaingo's prompts.PromptTemplate satisfies this interface, so it can be
// used directly as an example prompt:
//
//	examplePrompt := prompts.PromptTemplate{
//	    Template:       "Input: {input}\nOutput: {output}",
//	    InputVariables: []string{"input", "output"},
//	    TemplateFormat: prompts.TemplateFormatFString,
//	}
type StringTemplate interface {
	// GetInputVariables returns the variable names the template requires.
	// These define the exact key subset projected out of each example.
	GetInputVariables() []string

	// Format renders the template with the given values.
	Format(values map[string]any) (string, error)
}

// MessageTemplate expands named values into one or more chat messages. It is
// the capability used both to format one example in a [ChatPrompt] and as the
// expandable variant of a prefix/suffix [MessageEntry].
//
// This is the same shape as langchaingo's prompts.MessageFormatter, so chat
// message templates like prompts.NewHumanMessagePromptTemplate and
// prompts.NewChatPromptTemplate plug in directly.
type MessageTemplate interface {
	// GetInputVariables returns the variable names the template requires.
	GetInputVariables() []string

	// FormatMessages expands the template into an ordered message sequence.
	FormatMessages(values map[string]any) ([]llms.ChatMessage, error)
}

// projectExample extracts exactly the given keys from an example. Extra keys
// in the record are dropped; a missing key fails with ErrMissingExampleKey
// naming both the example position and the key.
func projectExample(example Example, keys []string, position int) (map[string]any, error) {
	projected := make(map[string]any, len(keys))
	for _, key := range keys {
		value, ok := example[key]
		if !ok {
			return nil, fmt.Errorf("%w: example %d has no key %q", ErrMissingExampleKey, position, key)
		}
		projected[key] = value
	}
	return projected, nil
}
