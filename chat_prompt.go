package fewshot

import (
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/prompts"
)

// MessageEntry is one element of a [ChatPrompt] prefix or suffix: either a
// literal message emitted unchanged, or a message template expanded with the
// current input values. Use [LiteralMessage] or [TemplateMessage] to build
// entries; the zero value is invalid and rejected at construction.
type MessageEntry struct {
	message  llms.ChatMessage
	template MessageTemplate
}

// LiteralMessage wraps a message that is passed through as-is.
func LiteralMessage(message llms.ChatMessage) MessageEntry {
	return MessageEntry{message: message}
}

// TemplateMessage wraps a template that expands into messages given the
// current input values.
func TemplateMessage(template MessageTemplate) MessageEntry {
	return MessageEntry{template: template}
}

// expand resolves the entry into its message sequence.
func (e MessageEntry) expand(values map[string]any) ([]llms.ChatMessage, error) {
	switch {
	case e.template != nil:
		return e.template.FormatMessages(values)
	case e.message != nil:
		return []llms.ChatMessage{e.message}, nil
	default:
		return nil, ErrEmptyMessageEntry
	}
}

func (e MessageEntry) isZero() bool {
	return e.message == nil && e.template == nil
}

// ChatPromptConfig configures a [ChatPrompt]. Exactly one of Examples and
// ExampleSelector must be set.
type ChatPromptConfig struct {
	// InputVariables are the placeholder names the caller is expected to
	// supply to FormatMessages.
	InputVariables []string

	// Examples is a fixed list of demonstrations. Mutually exclusive with
	// ExampleSelector.
	Examples []Example

	// ExampleSelector chooses demonstrations per input. Mutually exclusive
	// with Examples.
	ExampleSelector ExampleSelector

	// ExamplePrompt expands one example record into one or more messages,
	// e.g. a human/assistant pair.
	ExamplePrompt MessageTemplate

	// Prefix entries are emitted before the examples.
	Prefix []MessageEntry

	// Suffix entries are emitted after the examples.
	Suffix []MessageEntry
}

// ChatPrompt composes an ordered list of chat messages from prefix entries,
// per-example message expansions, and suffix entries. Like [StringPrompt] it
// is immutable after construction and safe for concurrent use when its
// selector is.
//
// The produced structure supports conversations with intermediate
// demonstrations:
//
//	System: You are a helpful AI Assistant
//	Human: What is 2+2?
//	AI: 4
//	Human: What is 4+4?
type ChatPrompt struct {
	exampleSource

	inputVariables []string
	examplePrompt  MessageTemplate
	prefix         []MessageEntry
	suffix         []MessageEntry
}

// NewChatPrompt validates the configuration and constructs an immutable
// ChatPrompt. Zero-valued prefix or suffix entries and a missing example
// prompt are configuration errors reported here.
func NewChatPrompt(cfg ChatPromptConfig) (*ChatPrompt, error) {
	source, err := newExampleSource(cfg.Examples, cfg.ExampleSelector)
	if err != nil {
		return nil, err
	}
	if cfg.ExamplePrompt == nil {
		return nil, ErrNilExamplePrompt
	}
	for _, entry := range cfg.Prefix {
		if entry.isZero() {
			return nil, ErrEmptyMessageEntry
		}
	}
	for _, entry := range cfg.Suffix {
		if entry.isZero() {
			return nil, ErrEmptyMessageEntry
		}
	}

	return &ChatPrompt{
		exampleSource:  source,
		inputVariables: append([]string(nil), cfg.InputVariables...),
		examplePrompt:  cfg.ExamplePrompt,
		prefix:         append([]MessageEntry(nil), cfg.Prefix...),
		suffix:         append([]MessageEntry(nil), cfg.Suffix...),
	}, nil
}

// FormatMessages composes the ordered message list for the given inputs:
// expanded prefix entries, then the example prompt's expansion of each
// resolved example (projected onto the example prompt's input variables),
// then expanded suffix entries.
//
// Prefix and suffix templates receive the caller's values verbatim - no
// partial-variable merge happens at this layer; sub-templates resolve their
// own variables. Example order and the internal per-example message order are
// both preserved, so a two-message human/assistant pair stays adjacent.
func (p *ChatPrompt) FormatMessages(values map[string]any) ([]llms.ChatMessage, error) {
	examples, err := p.GetExamples(values)
	if err != nil {
		return nil, err
	}

	var messages []llms.ChatMessage

	for _, entry := range p.prefix {
		expanded, err := entry.expand(values)
		if err != nil {
			return nil, err
		}
		messages = append(messages, expanded...)
	}

	exampleVars := p.examplePrompt.GetInputVariables()
	for i, example := range examples {
		projected, err := projectExample(example, exampleVars, i)
		if err != nil {
			return nil, err
		}
		expanded, err := p.examplePrompt.FormatMessages(projected)
		if err != nil {
			return nil, err
		}
		messages = append(messages, expanded...)
	}

	for _, entry := range p.suffix {
		expanded, err := entry.expand(values)
		if err != nil {
			return nil, err
		}
		messages = append(messages, expanded...)
	}

	return messages, nil
}

// Format composes the messages and renders them as a single role-prefixed,
// newline-joined transcript ("Human: ...", "AI: ..."). This is a pure
// projection of FormatMessages - useful for string-completion models and
// debugging.
func (p *ChatPrompt) Format(values map[string]any) (string, error) {
	messages, err := p.FormatMessages(values)
	if err != nil {
		return "", err
	}
	return llms.GetBufferString(messages, "Human", "AI")
}

// FormatPrompt composes the messages and wraps them as a langchaingo prompt
// value.
func (p *ChatPrompt) FormatPrompt(values map[string]any) (llms.PromptValue, error) {
	messages, err := p.FormatMessages(values)
	if err != nil {
		return nil, err
	}
	return prompts.ChatPromptValue(messages), nil
}

// GetInputVariables returns the placeholder names the prompt expects from
// the caller.
func (p *ChatPrompt) GetInputVariables() []string {
	return append([]string(nil), p.inputVariables...)
}

// Compile-time check that ChatPrompt satisfies the message template
// capability, so chat prompts can nest inside other message templates.
var _ MessageTemplate = (*ChatPrompt)(nil)
