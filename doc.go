// Package fewshot composes few-shot prompts: inputs to a language model
// assembled from a prefix, a set of demonstration examples, and a suffix.
//
// Two sibling composers share one example-acquisition mechanism. Both hold
// either a fixed list of [Example] records or a pluggable [ExampleSelector],
// never both, and resolve the example set fresh on every format call.
//
// # StringPrompt
//
// [StringPrompt] produces a single formatted string. Each example is rendered
// through an example template, the pieces are joined with a separator, and a
// top-level substitution engine fills the remaining placeholders:
//
//	prompt, err := fewshot.NewStringPrompt(fewshot.StringPromptConfig{
//	    InputVariables: []string{"adjective"},
//	    Examples: []fewshot.Example{
//	        {"word": "happy", "antonym": "sad"},
//	        {"word": "tall", "antonym": "short"},
//	    },
//	    ExamplePrompt: prompts.PromptTemplate{
//	        Template:       "Word: {word}\nAntonym: {antonym}",
//	        InputVariables: []string{"word", "antonym"},
//	        TemplateFormat: prompts.TemplateFormatFString,
//	    },
//	    Prefix: "Give the antonym of every input.",
//	    Suffix: "Word: {adjective}\nAntonym:",
//	})
//	if err != nil {
//	    // configuration errors surface here, not at format time
//	}
//	text, err := prompt.Format(map[string]any{"adjective": "big"})
//
// # ChatPrompt
//
// [ChatPrompt] produces an ordered list of chat messages. Prefix and suffix
// entries are each either a literal message or a template that expands into
// messages, and every example is expanded through a message template:
//
//	examplePrompt := prompts.NewChatPromptTemplate([]prompts.MessageFormatter{
//	    prompts.NewHumanMessagePromptTemplate("{{.input}}", []string{"input"}),
//	    prompts.NewAIMessagePromptTemplate("{{.output}}", []string{"output"}),
//	})
//
//	prompt, err := fewshot.NewChatPrompt(fewshot.ChatPromptConfig{
//	    InputVariables: []string{"input"},
//	    Examples: []fewshot.Example{
//	        {"input": "2+2", "output": "4"},
//	    },
//	    ExamplePrompt: examplePrompt,
//	    Prefix: []fewshot.MessageEntry{
//	        fewshot.LiteralMessage(llms.SystemChatMessage{Content: "You are a helpful AI Assistant"}),
//	    },
//	    Suffix: []fewshot.MessageEntry{
//	        fewshot.TemplateMessage(prompts.NewHumanMessagePromptTemplate("{{.input}}", []string{"input"})),
//	    },
//	})
//	messages, err := prompt.FormatMessages(map[string]any{"input": "What is 4+4?"})
//
// # Example selection
//
// A static example list is returned verbatim on every call, independent of
// the inputs. An [ExampleSelector] receives the inputs and decides; the
// selector subpackage ships a length-budgeted implementation, and
// similarity-based selectors can be plugged in from outside. Selector errors
// propagate to the caller unchanged.
//
// # Template formats
//
// The prefix, suffix, and assembled prompt are rendered by a substitution
// engine chosen by name: [FormatFString], [FormatJinja2], or
// [FormatGoTemplate]. Unknown names are rejected at construction time.
//
// # Serialization
//
// Prompts with a static example list can be dumped to a mapping and saved as
// JSON or YAML; [LoadStringPrompt] restores them, validating the file against
// a schema first. Prompts holding a dynamic selector refuse to serialize.
//
// # Concurrency
//
// Composers are immutable after construction and keep no per-call state, so
// concurrent Format/FormatMessages calls on one instance need no locking -
// provided the configured selector is itself safe for concurrent use.
package fewshot
