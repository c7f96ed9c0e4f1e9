// Package main provides an interactive CLI for exercising the few-shot
// composers by hand: pick a demo, type inputs, and inspect the composed
// prompt. Everything runs in-process; no API key is required.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/prompts"

	"github.com/rickchristie/fewshot"
	"github.com/rickchristie/fewshot/selector"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr,
			"%sError: %v%s\n",
			colorRed, err, colorReset)
		os.Exit(1)
	}
}

type menuItem struct {
	name        string
	description string
	run         func(rl *readline.Instance) error
}

func run() error {
	rl, err := readline.New(
		colorCyan +
			"Enter selection (or 'q' to quit): " +
			colorReset)
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	menuItems := []menuItem{
		{
			name:        "Antonyms (string prompt)",
			description: "Static examples joined into one prompt string",
			run:         runAntonyms,
		},
		{
			name:        "Arithmetic (chat prompt)",
			description: "Human/AI example pairs spliced into a message list",
			run:         runArithmetic,
		},
		{
			name:        "Length budget (selector)",
			description: "Length-based selector trimming examples to fit",
			run:         runLengthBudget,
		},
	}

	for {
		fmt.Printf("\n%s%sFew-shot composer playground%s\n\n",
			colorBold, colorGreen, colorReset)
		for i, item := range menuItems {
			fmt.Printf("  %s%d.%s %s\n     %s%s%s\n",
				colorYellow, i+1, colorReset, item.name,
				colorDim, item.description, colorReset)
		}
		fmt.Println()

		line, err := rl.Readline()
		if err != nil {
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "q" || line == "quit" {
			return nil
		}

		var choice int
		if _, err := fmt.Sscanf(line, "%d", &choice); err != nil ||
			choice < 1 || choice > len(menuItems) {
			fmt.Printf("%sInvalid selection%s\n", colorRed, colorReset)
			continue
		}

		if err := menuItems[choice-1].run(rl); err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			return err
		}
	}
}

func antonymExamplePrompt() prompts.PromptTemplate {
	return prompts.PromptTemplate{
		Template:       "Word: {word}\nAntonym: {antonym}",
		InputVariables: []string{"word", "antonym"},
		TemplateFormat: prompts.TemplateFormatFString,
	}
}

func antonymExamples() []fewshot.Example {
	return []fewshot.Example{
		{"word": "happy", "antonym": "sad"},
		{"word": "tall", "antonym": "short"},
		{"word": "energetic", "antonym": "lethargic"},
		{"word": "sunny", "antonym": "gloomy"},
	}
}

func runAntonyms(rl *readline.Instance) error {
	prompt, err := fewshot.NewStringPrompt(fewshot.StringPromptConfig{
		InputVariables: []string{"adjective"},
		Examples:       antonymExamples(),
		ExamplePrompt:  antonymExamplePrompt(),
		Prefix:         "Give the antonym of every input.",
		Suffix:         "Word: {adjective}\nAntonym:",
	})
	if err != nil {
		return err
	}

	return inputLoop(rl, "word", func(input string) error {
		text, err := prompt.Format(map[string]any{"adjective": input})
		if err != nil {
			return err
		}
		printPrompt(text)
		return nil
	})
}

func runArithmetic(rl *readline.Instance) error {
	examplePrompt := prompts.NewChatPromptTemplate([]prompts.MessageFormatter{
		prompts.NewHumanMessagePromptTemplate("{{.input}}", []string{"input"}),
		prompts.NewAIMessagePromptTemplate("{{.output}}", []string{"output"}),
	})

	prompt, err := fewshot.NewChatPrompt(fewshot.ChatPromptConfig{
		InputVariables: []string{"input"},
		Examples: []fewshot.Example{
			{"input": "2+2", "output": "4"},
			{"input": "2+3", "output": "5"},
		},
		ExamplePrompt: examplePrompt,
		Prefix: []fewshot.MessageEntry{
			fewshot.LiteralMessage(llms.SystemChatMessage{
				Content: "You are a wondrous wizard of math.",
			}),
		},
		Suffix: []fewshot.MessageEntry{
			fewshot.TemplateMessage(
				prompts.NewHumanMessagePromptTemplate("{{.input}}", []string{"input"})),
		},
	})
	if err != nil {
		return err
	}

	return inputLoop(rl, "question", func(input string) error {
		messages, err := prompt.FormatMessages(map[string]any{"input": input})
		if err != nil {
			return err
		}
		fmt.Println()
		for _, msg := range messages {
			fmt.Printf("  %s%-7s%s %s\n",
				colorYellow, string(msg.GetType())+":", colorReset,
				msg.GetContent())
		}
		return nil
	})
}

func runLengthBudget(rl *readline.Instance) error {
	sel, err := selector.NewLengthBased(antonymExamplePrompt(), antonymExamples())
	if err != nil {
		return err
	}
	sel.WithMaxLength(25)

	prompt, err := fewshot.NewStringPrompt(fewshot.StringPromptConfig{
		InputVariables:  []string{"adjective"},
		ExampleSelector: sel,
		ExamplePrompt:   antonymExamplePrompt(),
		Prefix:          "Give the antonym of every input.",
		Suffix:          "Word: {adjective}\nAntonym:",
	})
	if err != nil {
		return err
	}

	fmt.Printf("%sLonger inputs leave room for fewer examples.%s\n",
		colorDim, colorReset)
	return inputLoop(rl, "word (try a long phrase)", func(input string) error {
		text, err := prompt.Format(map[string]any{"adjective": input})
		if err != nil {
			return err
		}
		printPrompt(text)
		return nil
	})
}

// inputLoop reads inputs until the user types 'q' or interrupts, rendering
// each one through the given compose function.
func inputLoop(rl *readline.Instance, label string, compose func(input string) error) error {
	prevPrompt := rl.Config.Prompt
	rl.SetPrompt(colorCyan + "Enter " + label +
		" (or 'q' to go back): " + colorReset)
	defer rl.SetPrompt(prevPrompt)

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				return nil
			}
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "q" {
			return nil
		}
		if err := compose(line); err != nil {
			fmt.Printf("%sCompose error: %v%s\n",
				colorRed, err, colorReset)
		}
	}
}

func printPrompt(text string) {
	fmt.Printf("\n%s--- composed prompt "+
		"---------------------------------%s\n%s\n"+
		"%s----------------------------------"+
		"-------------------%s\n",
		colorGreen, colorReset, text, colorGreen, colorReset)
}
