package fewshot

import (
	"fmt"

	"github.com/tmc/langchaingo/prompts"
)

// TemplateFormat selects the placeholder-substitution engine used for the
// prefix, suffix, and assembled prompt. It aliases langchaingo's format type
// so existing template values can be passed through unchanged.
type TemplateFormat = prompts.TemplateFormat

// Recognized template formats. Unknown format names are rejected when the
// prompt is constructed, never at format time.
const (
	// FormatFString substitutes Python-style {placeholder} markers.
	FormatFString TemplateFormat = prompts.TemplateFormatFString

	// FormatJinja2 substitutes Jinja2 {{ placeholder }} expressions.
	FormatJinja2 TemplateFormat = prompts.TemplateFormatJinja2

	// FormatGoTemplate substitutes text/template {{.Placeholder}} actions.
	FormatGoTemplate TemplateFormat = prompts.TemplateFormatGoTemplate
)

// DefaultExampleSeparator joins the prefix, examples, and suffix when no
// separator is configured.
const DefaultExampleSeparator = "\n\n"

// renderFunc renders a template string with the given values. A failed
// substitution returns an error naming the missing variable.
type renderFunc func(template string, values map[string]any) (string, error)

// renderers is the closed registry of recognized format names. Each entry
// delegates to langchaingo's rendering engine for that format.
var renderers = map[TemplateFormat]renderFunc{
	FormatFString:    renderWith(FormatFString),
	FormatJinja2:     renderWith(FormatJinja2),
	FormatGoTemplate: renderWith(FormatGoTemplate),
}

func renderWith(format TemplateFormat) renderFunc {
	return func(template string, values map[string]any) (string, error) {
		return prompts.RenderTemplate(template, format, values)
	}
}

// lookupRenderer resolves a format name against the registry.
func lookupRenderer(format TemplateFormat) (renderFunc, error) {
	render, ok := renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedTemplateFormat, string(format))
	}
	return render, nil
}

// checkValidTemplate verifies that the template renders successfully given
// exactly the declared variables. Used once at construction time when
// template validation is enabled.
func checkValidTemplate(template string, format TemplateFormat, inputVariables []string) error {
	return prompts.CheckValidTemplate(template, format, inputVariables)
}
