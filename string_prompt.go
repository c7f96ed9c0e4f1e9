package fewshot

import (
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/prompts"
)

// PromptTypeFewShot tags serialized few-shot prompt configurations.
const PromptTypeFewShot = "few_shot"

// StringPromptConfig configures a [StringPrompt]. Exactly one of Examples and
// ExampleSelector must be set; a non-nil empty Examples slice is valid.
type StringPromptConfig struct {
	// InputVariables are the placeholder names the caller is expected to
	// supply to Format.
	InputVariables []string

	// Examples is a fixed list of demonstrations, used verbatim on every
	// Format call. Mutually exclusive with ExampleSelector.
	Examples []Example

	// ExampleSelector chooses demonstrations per input. Mutually exclusive
	// with Examples.
	ExampleSelector ExampleSelector

	// ExamplePrompt renders one example record into text.
	ExamplePrompt StringTemplate

	// Prefix is a template string placed before the examples. Optional; an
	// empty prefix contributes no separator.
	Prefix string

	// Suffix is a template string placed after the examples.
	Suffix string

	// ExampleSeparator joins the prefix, examples, and suffix.
	// Defaults to [DefaultExampleSeparator].
	ExampleSeparator string

	// TemplateFormat selects the substitution engine for Prefix, Suffix, and
	// the assembled prompt. Defaults to [FormatFString]. Unknown names are
	// rejected here, at construction.
	TemplateFormat TemplateFormat

	// ValidateTemplate checks once, at construction, that Prefix+Suffix is
	// consistent with InputVariables plus the PartialVariables names.
	ValidateTemplate bool

	// PartialVariables are pre-bound values merged into the caller's values
	// at format time. Caller-supplied values win on key collision.
	PartialVariables map[string]any
}

// StringPrompt composes a single formatted prompt string from a prefix, a set
// of rendered examples, and a suffix. It is immutable after construction;
// concurrent Format calls on one instance are safe provided the configured
// selector is.
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
type StringPrompt struct {
	exampleSource

	inputVariables   []string
	examplePrompt    StringTemplate
	prefix           string
	suffix           string
	exampleSeparator string
	templateFormat   TemplateFormat
	partialVariables map[string]any
	render           renderFunc
}

// NewStringPrompt validates the configuration and constructs an immutable
// StringPrompt. Configuration errors (both or neither example source set, an
// unknown template format, a missing example prompt, or a failed template
// consistency check) are reported here, before any Format call.
func NewStringPrompt(cfg StringPromptConfig) (*StringPrompt, error) {
	source, err := newExampleSource(cfg.Examples, cfg.ExampleSelector)
	if err != nil {
		return nil, err
	}
	if cfg.ExamplePrompt == nil {
		return nil, ErrNilExamplePrompt
	}

	format := cfg.TemplateFormat
	if format == "" {
		format = FormatFString
	}
	render, err := lookupRenderer(format)
	if err != nil {
		return nil, err
	}

	separator := cfg.ExampleSeparator
	if separator == "" {
		separator = DefaultExampleSeparator
	}

	if cfg.ValidateTemplate {
		declared := make([]string, 0, len(cfg.InputVariables)+len(cfg.PartialVariables))
		declared = append(declared, cfg.InputVariables...)
		for name := range cfg.PartialVariables {
			declared = append(declared, name)
		}
		if err := checkValidTemplate(cfg.Prefix+cfg.Suffix, format, declared); err != nil {
			return nil, err
		}
	}

	partials := make(map[string]any, len(cfg.PartialVariables))
	for name, value := range cfg.PartialVariables {
		partials[name] = value
	}

	return &StringPrompt{
		exampleSource:    source,
		inputVariables:   append([]string(nil), cfg.InputVariables...),
		examplePrompt:    cfg.ExamplePrompt,
		prefix:           cfg.Prefix,
		suffix:           cfg.Suffix,
		exampleSeparator: separator,
		templateFormat:   format,
		partialVariables: partials,
		render:           render,
	}, nil
}

// Format composes the prompt for the given input values:
//
//  1. Partial variables are merged in. On key collision the caller-supplied
//     value wins over the partial value.
//  2. The example set is resolved from the static list or the selector.
//  3. Each example is projected onto the example prompt's input variables
//     (extra keys dropped, missing keys fail) and rendered. Example order is
//     preserved exactly as returned.
//  4. Prefix, rendered examples, and suffix are joined with the example
//     separator; empty pieces are dropped and contribute no separator.
//  5. The joined template is rendered with the merged values. An unresolved
//     placeholder fails with an error naming the missing variable.
func (p *StringPrompt) Format(values map[string]any) (string, error) {
	merged := p.mergePartialValues(values)

	examples, err := p.GetExamples(merged)
	if err != nil {
		return "", err
	}

	exampleVars := p.examplePrompt.GetInputVariables()
	exampleStrings := make([]string, 0, len(examples))
	for i, example := range examples {
		projected, err := projectExample(example, exampleVars, i)
		if err != nil {
			return "", err
		}
		rendered, err := p.examplePrompt.Format(projected)
		if err != nil {
			return "", err
		}
		exampleStrings = append(exampleStrings, rendered)
	}

	pieces := make([]string, 0, len(exampleStrings)+2)
	pieces = append(pieces, p.prefix)
	pieces = append(pieces, exampleStrings...)
	pieces = append(pieces, p.suffix)

	nonEmpty := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		if piece != "" {
			nonEmpty = append(nonEmpty, piece)
		}
	}

	return p.render(strings.Join(nonEmpty, p.exampleSeparator), merged)
}

// FormatPrompt formats the prompt and wraps it as a langchaingo prompt value,
// allowing a StringPrompt to be used wherever llms.PromptValue is consumed.
func (p *StringPrompt) FormatPrompt(values map[string]any) (llms.PromptValue, error) {
	formatted, err := p.Format(values)
	if err != nil {
		return nil, err
	}
	return prompts.StringPromptValue(formatted), nil
}

// GetInputVariables returns the placeholder names the prompt expects from
// the caller.
func (p *StringPrompt) GetInputVariables() []string {
	return append([]string(nil), p.inputVariables...)
}

// mergePartialValues merges the pre-bound partial variables with the caller's
// values. Caller values take precedence on key collision.
func (p *StringPrompt) mergePartialValues(values map[string]any) map[string]any {
	merged := make(map[string]any, len(p.partialVariables)+len(values))
	for name, value := range p.partialVariables {
		merged[name] = value
	}
	for name, value := range values {
		merged[name] = value
	}
	return merged
}

// Compile-time check that StringPrompt satisfies its own template capability.
var _ StringTemplate = (*StringPrompt)(nil)
