package fewshot

import "errors"

// Configuration errors, raised at construction time.
var (
	ErrNoExampleSource           = errors.New("one of Examples and ExampleSelector must be provided")
	ErrExamplesAndSelector       = errors.New("only one of Examples and ExampleSelector may be provided")
	ErrNilExamplePrompt          = errors.New("ExamplePrompt must be provided")
	ErrUnsupportedTemplateFormat = errors.New("unsupported template format")
	ErrEmptyMessageEntry         = errors.New("message entry has neither a literal message nor a template")
)

// Serialization errors.
var (
	ErrSelectorNotSerializable      = errors.New("prompts configured with an example selector cannot be serialized")
	ErrExamplePromptNotSerializable = errors.New("example prompt is not a serializable template")
	ErrInvalidPromptConfig          = errors.New("invalid prompt configuration")
	ErrUnsupportedFileExtension     = errors.New("unsupported prompt file extension")
)

// ErrMissingExampleKey is returned when an example record lacks a key the
// example prompt's input variables require.
var ErrMissingExampleKey = errors.New("example is missing a key required by the example prompt")
