package fewshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/tmc/langchaingo/prompts"
	"gopkg.in/yaml.v3"
)

// Dump serializes the prompt configuration to a mapping tagged with
// `"_type": "few_shot"`. Only prompts with a static example list can be
// dumped; a configured example selector fails with
// [ErrSelectorNotSerializable] since dynamic selection policies cannot be
// persisted.
//
// The example prompt must be a langchaingo prompts.PromptTemplate (value or
// pointer); other StringTemplate implementations fail with
// [ErrExamplePromptNotSerializable].
func (p *StringPrompt) Dump() (map[string]any, error) {
	if p.selector != nil {
		return nil, ErrSelectorNotSerializable
	}

	examplePrompt, err := dumpExamplePrompt(p.examplePrompt)
	if err != nil {
		return nil, err
	}

	examples := make([]any, len(p.examples))
	for i, example := range p.examples {
		record := make(map[string]any, len(example))
		for key, value := range example {
			record[key] = value
		}
		examples[i] = record
	}

	dump := map[string]any{
		"_type":             PromptTypeFewShot,
		"input_variables":   append([]string(nil), p.inputVariables...),
		"examples":          examples,
		"example_prompt":    examplePrompt,
		"prefix":            p.prefix,
		"suffix":            p.suffix,
		"example_separator": p.exampleSeparator,
		"template_format":   string(p.templateFormat),
	}
	if len(p.partialVariables) > 0 {
		partials := make(map[string]any, len(p.partialVariables))
		for name, value := range p.partialVariables {
			partials[name] = value
		}
		dump["partial_variables"] = partials
	}
	return dump, nil
}

// Save writes the prompt configuration to a file. The encoding follows the
// extension: ".json" or ".yaml"/".yml". Prompts with an example selector
// cannot be saved, matching Dump.
func (p *StringPrompt) Save(path string) error {
	dump, err := p.Dump()
	if err != nil {
		return err
	}

	var data []byte
	switch ext := filepath.Ext(path); ext {
	case ".json":
		data, err = json.MarshalIndent(dump, "", "  ")
	case ".yaml", ".yml":
		data, err = yaml.Marshal(dump)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFileExtension, ext)
	}
	if err != nil {
		return fmt.Errorf("failed to encode prompt: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// LoadStringPrompt reads a prompt configuration from a JSON or YAML file
// (selected by extension) and constructs the equivalent static StringPrompt.
func LoadStringPrompt(path string) (*StringPrompt, error) {
	var unmarshal func([]byte, any) error
	switch ext := filepath.Ext(path); ext {
	case ".json":
		unmarshal = json.Unmarshal
	case ".yaml", ".yml":
		unmarshal = yaml.Unmarshal
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFileExtension, ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := make(map[string]any)
	if err := unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPromptConfig, err)
	}

	return LoadStringPromptFromMap(config)
}

// LoadStringPromptFromMap constructs a StringPrompt from a configuration
// mapping, typically one produced by Dump. The mapping is validated against
// a JSON Schema of the file format before construction, so malformed files
// fail with a schema error rather than a panic or a silent zero value.
// Construction re-runs all the usual configuration checks.
func LoadStringPromptFromMap(m map[string]any) (*StringPrompt, error) {
	// Normalize to plain JSON types first: callers hand us maps produced by
	// Dump ([]string, []Example) as well as maps decoded from YAML or JSON,
	// and the schema validator only understands JSON-decoded values.
	config, err := normalizeConfig(m)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPromptConfig, err)
	}
	if err := promptFileSchema.Validate(config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPromptConfig, err)
	}

	examplePromptConfig := config["example_prompt"].(map[string]any)
	examplePrompt := prompts.PromptTemplate{
		Template:       examplePromptConfig["template"].(string),
		InputVariables: toStringSlice(examplePromptConfig["input_variables"]),
		TemplateFormat: toTemplateFormat(examplePromptConfig["template_format"]),
	}

	rawExamples := config["examples"].([]any)
	examples := make([]Example, len(rawExamples))
	for i, raw := range rawExamples {
		record := raw.(map[string]any)
		example := make(Example, len(record))
		for key, value := range record {
			example[key] = value
		}
		examples[i] = example
	}

	cfg := StringPromptConfig{
		InputVariables: toStringSlice(config["input_variables"]),
		Examples:       examples,
		ExamplePrompt:  examplePrompt,
		TemplateFormat: toTemplateFormat(config["template_format"]),
	}
	if prefix, ok := config["prefix"].(string); ok {
		cfg.Prefix = prefix
	}
	if suffix, ok := config["suffix"].(string); ok {
		cfg.Suffix = suffix
	}
	if separator, ok := config["example_separator"].(string); ok {
		cfg.ExampleSeparator = separator
	}
	if partials, ok := config["partial_variables"].(map[string]any); ok {
		cfg.PartialVariables = partials
	}

	return NewStringPrompt(cfg)
}

func normalizeConfig(m map[string]any) (map[string]any, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	normalized := make(map[string]any)
	if err := json.Unmarshal(data, &normalized); err != nil {
		return nil, err
	}
	return normalized, nil
}

func dumpExamplePrompt(template StringTemplate) (map[string]any, error) {
	var prompt prompts.PromptTemplate
	switch t := template.(type) {
	case prompts.PromptTemplate:
		prompt = t
	case *prompts.PromptTemplate:
		prompt = *t
	default:
		return nil, fmt.Errorf("%w: %T", ErrExamplePromptNotSerializable, template)
	}

	format := prompt.TemplateFormat
	if format == "" {
		format = FormatFString
	}
	return map[string]any{
		"_type":           "prompt",
		"template":        prompt.Template,
		"input_variables": append([]string(nil), prompt.InputVariables...),
		"template_format": string(format),
	}, nil
}

func toStringSlice(value any) []string {
	switch v := value.(type) {
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]string, len(v))
		for i, item := range v {
			out[i], _ = item.(string)
		}
		return out
	default:
		return nil
	}
}

func toTemplateFormat(value any) TemplateFormat {
	if s, ok := value.(string); ok && s != "" {
		return TemplateFormat(s)
	}
	return FormatFString
}

// promptFileSchema validates loaded configuration mappings before any type
// assertions run. Compiled once at package init.
var promptFileSchema = mustCompileSchema(map[string]any{
	"type":     "object",
	"required": []any{"_type", "input_variables", "examples", "example_prompt", "suffix"},
	"properties": map[string]any{
		"_type": map[string]any{"const": PromptTypeFewShot},
		"input_variables": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"examples": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "object"},
		},
		"example_prompt": map[string]any{
			"type":     "object",
			"required": []any{"template", "input_variables"},
			"properties": map[string]any{
				"_type":    map[string]any{"const": "prompt"},
				"template": map[string]any{"type": "string"},
				"input_variables": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
				"template_format": map[string]any{"type": "string"},
			},
		},
		"prefix":            map[string]any{"type": "string"},
		"suffix":            map[string]any{"type": "string"},
		"example_separator": map[string]any{"type": "string"},
		"template_format":   map[string]any{"type": "string"},
		"partial_variables": map[string]any{"type": "object"},
	},
	"additionalProperties": false,
})

// mustCompileSchema compiles a raw schema map into a validator. Panics on
// error; only used for schemas defined at init time.
func mustCompileSchema(raw map[string]any) *jsonschema.Schema {
	schemaJSON, err := json.Marshal(raw)
	if err != nil {
		panic(fmt.Sprintf("failed to marshal prompt file schema: %v", err))
	}
	schemaData, err := jsonschema.UnmarshalJSON(strings.NewReader(string(schemaJSON)))
	if err != nil {
		panic(fmt.Sprintf("failed to parse prompt file schema: %v", err))
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("prompt.json", schemaData); err != nil {
		panic(fmt.Sprintf("failed to add prompt file schema resource: %v", err))
	}
	compiled, err := c.Compile("prompt.json")
	if err != nil {
		panic(fmt.Sprintf("failed to compile prompt file schema: %v", err))
	}
	return compiled
}
