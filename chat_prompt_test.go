package fewshot_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/prompts"

	"github.com/rickchristie/fewshot"
	"github.com/rickchristie/fewshot/internal/tt"
)

func mathExamplePrompt() prompts.ChatPromptTemplate {
	return prompts.NewChatPromptTemplate([]prompts.MessageFormatter{
		prompts.NewHumanMessagePromptTemplate("{{.input}}", []string{"input"}),
		prompts.NewAIMessagePromptTemplate("{{.output}}", []string{"output"}),
	})
}

func mathConfig() fewshot.ChatPromptConfig {
	return fewshot.ChatPromptConfig{
		InputVariables: []string{"input"},
		Examples: []fewshot.Example{
			{"input": "2+2", "output": "4"},
		},
		ExamplePrompt: mathExamplePrompt(),
		Prefix: []fewshot.MessageEntry{
			fewshot.LiteralMessage(llms.SystemChatMessage{
				Content: "You are a helpful AI Assistant",
			}),
		},
		Suffix: []fewshot.MessageEntry{
			fewshot.TemplateMessage(
				prompts.NewHumanMessagePromptTemplate("{{.input}}", []string{"input"})),
		},
	}
}

func TestNewChatPrompt_Configuration(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(cfg *fewshot.ChatPromptConfig)
		expectedErr error
	}{
		{
			name:   "valid static",
			mutate: func(cfg *fewshot.ChatPromptConfig) {},
		},
		{
			name: "valid selector",
			mutate: func(cfg *fewshot.ChatPromptConfig) {
				cfg.Examples = nil
				cfg.ExampleSelector = tt.NewMockSelector()
			},
		},
		{
			name: "both examples and selector",
			mutate: func(cfg *fewshot.ChatPromptConfig) {
				cfg.ExampleSelector = tt.NewMockSelector()
			},
			expectedErr: fewshot.ErrExamplesAndSelector,
		},
		{
			name: "neither examples nor selector",
			mutate: func(cfg *fewshot.ChatPromptConfig) {
				cfg.Examples = nil
			},
			expectedErr: fewshot.ErrNoExampleSource,
		},
		{
			name: "missing example prompt",
			mutate: func(cfg *fewshot.ChatPromptConfig) {
				cfg.ExamplePrompt = nil
			},
			expectedErr: fewshot.ErrNilExamplePrompt,
		},
		{
			name: "zero-valued prefix entry",
			mutate: func(cfg *fewshot.ChatPromptConfig) {
				cfg.Prefix = append(cfg.Prefix, fewshot.MessageEntry{})
			},
			expectedErr: fewshot.ErrEmptyMessageEntry,
		},
		{
			name: "zero-valued suffix entry",
			mutate: func(cfg *fewshot.ChatPromptConfig) {
				cfg.Suffix = append(cfg.Suffix, fewshot.MessageEntry{})
			},
			expectedErr: fewshot.ErrEmptyMessageEntry,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := mathConfig()
			tc.mutate(&cfg)
			prompt, err := fewshot.NewChatPrompt(cfg)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, prompt)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, prompt)
		})
	}
}

func TestChatPrompt_FormatMessages(t *testing.T) {
	prompt, err := fewshot.NewChatPrompt(mathConfig())
	require.NoError(t, err)

	messages, err := prompt.FormatMessages(map[string]any{"input": "What is 4+4?"})
	require.NoError(t, err)

	// Prefix literal, then the human/AI example pair adjacent and in order,
	// then the expanded suffix.
	require.Len(t, messages, 4)

	assert.Equal(t, llms.ChatMessageTypeSystem, messages[0].GetType())
	assert.Equal(t, "You are a helpful AI Assistant", messages[0].GetContent())

	assert.Equal(t, llms.ChatMessageTypeHuman, messages[1].GetType())
	assert.Equal(t, "2+2", messages[1].GetContent())

	assert.Equal(t, llms.ChatMessageTypeAI, messages[2].GetType())
	assert.Equal(t, "4", messages[2].GetContent())

	assert.Equal(t, llms.ChatMessageTypeHuman, messages[3].GetType())
	assert.Equal(t, "What is 4+4?", messages[3].GetContent())
}

func TestChatPrompt_ExampleOrderPreserved(t *testing.T) {
	cfg := mathConfig()
	cfg.Examples = []fewshot.Example{
		{"input": "2+2", "output": "4"},
		{"input": "2+3", "output": "5"},
		{"input": "3+3", "output": "6"},
	}
	prompt, err := fewshot.NewChatPrompt(cfg)
	require.NoError(t, err)

	messages, err := prompt.FormatMessages(map[string]any{"input": "What is 4+4?"})
	require.NoError(t, err)

	// 1 prefix + 3 pairs + 1 suffix
	require.Len(t, messages, 8)
	assert.Equal(t, "2+2", messages[1].GetContent())
	assert.Equal(t, "4", messages[2].GetContent())
	assert.Equal(t, "2+3", messages[3].GetContent())
	assert.Equal(t, "5", messages[4].GetContent())
	assert.Equal(t, "3+3", messages[5].GetContent())
	assert.Equal(t, "6", messages[6].GetContent())
}

func TestChatPrompt_EmptyPrefixAndSuffix(t *testing.T) {
	cfg := mathConfig()
	cfg.Prefix = nil
	cfg.Suffix = nil
	prompt, err := fewshot.NewChatPrompt(cfg)
	require.NoError(t, err)

	messages, err := prompt.FormatMessages(map[string]any{"input": "ignored"})
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "2+2", messages[0].GetContent())
	assert.Equal(t, "4", messages[1].GetContent())
}

func TestChatPrompt_ExtraExampleKeysIgnored(t *testing.T) {
	lean, err := fewshot.NewChatPrompt(mathConfig())
	require.NoError(t, err)

	cfg := mathConfig()
	cfg.Examples = []fewshot.Example{
		{"input": "2+2", "output": "4", "difficulty": "trivial"},
	}
	bloated, err := fewshot.NewChatPrompt(cfg)
	require.NoError(t, err)

	values := map[string]any{"input": "What is 4+4?"}
	leanMessages, err := lean.FormatMessages(values)
	require.NoError(t, err)
	bloatedMessages, err := bloated.FormatMessages(values)
	require.NoError(t, err)

	assert.Equal(t, leanMessages, bloatedMessages)
}

func TestChatPrompt_MissingExampleKey(t *testing.T) {
	cfg := mathConfig()
	cfg.Examples = []fewshot.Example{{"input": "2+2"}}
	prompt, err := fewshot.NewChatPrompt(cfg)
	require.NoError(t, err)

	_, err = prompt.FormatMessages(map[string]any{"input": "What is 4+4?"})
	assert.ErrorIs(t, err, fewshot.ErrMissingExampleKey)
}

func TestChatPrompt_SelectorReceivesRawInputs(t *testing.T) {
	sel := tt.NewMockSelector().AddResult(
		fewshot.Example{"input": "2+3", "output": "5"},
	)
	cfg := mathConfig()
	cfg.Examples = nil
	cfg.ExampleSelector = sel

	prompt, err := fewshot.NewChatPrompt(cfg)
	require.NoError(t, err)

	inputs := map[string]any{"input": "What is 4+4?"}
	messages, err := prompt.FormatMessages(inputs)
	require.NoError(t, err)

	require.Len(t, sel.CapturedInputs, 1)
	assert.Equal(t, inputs, sel.CapturedInputs[0])

	require.Len(t, messages, 4)
	assert.Equal(t, "2+3", messages[1].GetContent())
	assert.Equal(t, "5", messages[2].GetContent())
}

func TestChatPrompt_SelectorErrorPropagatedUnchanged(t *testing.T) {
	boom := errors.New("selector offline")
	cfg := mathConfig()
	cfg.Examples = nil
	cfg.ExampleSelector = tt.NewMockSelector().AddError(boom)

	prompt, err := fewshot.NewChatPrompt(cfg)
	require.NoError(t, err)

	_, err = prompt.FormatMessages(map[string]any{"input": "What is 4+4?"})
	assert.Equal(t, boom, err)
}

func TestChatPrompt_Format(t *testing.T) {
	prompt, err := fewshot.NewChatPrompt(mathConfig())
	require.NoError(t, err)

	transcript, err := prompt.Format(map[string]any{"input": "What is 4+4?"})
	require.NoError(t, err)

	// Role-prefixed, newline-joined rendition of the same messages.
	assert.Contains(t, transcript, "Human: 2+2")
	assert.Contains(t, transcript, "AI: 4")
	assert.Contains(t, transcript, "Human: What is 4+4?")
	assert.Less(t,
		strings.Index(transcript, "Human: 2+2"),
		strings.Index(transcript, "AI: 4"))
	assert.Less(t,
		strings.Index(transcript, "AI: 4"),
		strings.Index(transcript, "Human: What is 4+4?"))
}

func TestChatPrompt_NestsAsMessageTemplate(t *testing.T) {
	inner, err := fewshot.NewChatPrompt(mathConfig())
	require.NoError(t, err)

	// A ChatPrompt is itself a MessageTemplate, so it can expand inside
	// another prompt's prefix.
	outer, err := fewshot.NewChatPrompt(fewshot.ChatPromptConfig{
		InputVariables: []string{"input"},
		Examples:       []fewshot.Example{},
		ExamplePrompt:  mathExamplePrompt(),
		Prefix: []fewshot.MessageEntry{
			fewshot.TemplateMessage(inner),
		},
	})
	require.NoError(t, err)

	messages, err := outer.FormatMessages(map[string]any{"input": "What is 4+4?"})
	require.NoError(t, err)
	require.Len(t, messages, 4)
	assert.Equal(t, "What is 4+4?", messages[3].GetContent())
}

func TestChatPrompt_GetInputVariables(t *testing.T) {
	prompt, err := fewshot.NewChatPrompt(mathConfig())
	require.NoError(t, err)
	assert.Equal(t, []string{"input"}, prompt.GetInputVariables())
}
