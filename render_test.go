package fewshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupRenderer(t *testing.T) {
	tests := []struct {
		name        string
		format      TemplateFormat
		expectedErr error
	}{
		{name: "f-string", format: FormatFString},
		{name: "jinja2", format: FormatJinja2},
		{name: "go-template", format: FormatGoTemplate},
		{name: "unknown", format: TemplateFormat("mustache"), expectedErr: ErrUnsupportedTemplateFormat},
		{name: "empty", format: TemplateFormat(""), expectedErr: ErrUnsupportedTemplateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			render, err := lookupRenderer(tt.format)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, render)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, render)
		})
	}
}

func TestLookupRenderer_UnknownErrorNamesFormat(t *testing.T) {
	_, err := lookupRenderer(TemplateFormat("mustache"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mustache")
}

func TestRenderFString(t *testing.T) {
	render, err := lookupRenderer(FormatFString)
	require.NoError(t, err)

	out, err := render("Word: {word}", map[string]any{"word": "happy"})
	require.NoError(t, err)
	assert.Equal(t, "Word: happy", out)
}

func TestRenderGoTemplate(t *testing.T) {
	render, err := lookupRenderer(FormatGoTemplate)
	require.NoError(t, err)

	out, err := render("Word: {{.word}}", map[string]any{"word": "happy"})
	require.NoError(t, err)
	assert.Equal(t, "Word: happy", out)
}

func TestRenderFString_MissingVariable(t *testing.T) {
	render, err := lookupRenderer(FormatFString)
	require.NoError(t, err)

	_, err = render("Word: {word}", map[string]any{})
	assert.Error(t, err)
}
