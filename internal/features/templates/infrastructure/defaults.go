package infrastructure

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"prompt-optimizer/backend/internal/features/templates/domain"
)

// DefaultTemplates is the template table written by bootstrap, in file order.
func DefaultTemplates() []domain.TemplateEntry {
	return []domain.TemplateEntry{
		{ModelKey: "default", Prefix: "", Suffix: "\n\nPlease provide a comprehensive response."},
		{ModelKey: "chatgpt", Prefix: "", Suffix: "\n\nAnswer using the information provided without making up facts."},
		{ModelKey: "claude", Prefix: "", Suffix: "\n\nThink through the problem carefully before answering, and say so when you are unsure."},
		{ModelKey: "gemini", Prefix: "", Suffix: "\n\nGround your answer in verifiable facts and cite sources where possible."},
		{ModelKey: "llama", Prefix: "", Suffix: "\n\nKeep the answer focused and avoid unnecessary repetition."},
		{ModelKey: "mistral", Prefix: "", Suffix: "\n\nRespond directly and precisely."},
		{ModelKey: "gemma", Prefix: "", Suffix: "\n\nGive a clear, well-organised answer."},
		{ModelKey: "thai", Prefix: "", Suffix: "\n\nPlease answer in Thai unless asked otherwise."},
	}
}

// DefaultBestPractices is the best-practice table written by bootstrap, in file order.
func DefaultBestPractices() []domain.BestPracticeEntry {
	return []domain.BestPracticeEntry{
		{
			ModelKey:         "default",
			DetailedFormat:   "Please format your response with headings, bullet points, and examples where appropriate.",
			StepInstructions: "Please break down your response into clear, sequential steps.",
			ConciseFormat:    "Please provide a concise answer in 3-5 sentences.",
			Constraints:      "Limit your response to the most essential information based on expert knowledge.",
			ExampleFormat:    "Include at least one practical example to illustrate your point.",
			OutputFormat:     "Present your answer in a clear, structured format with distinct sections.",
			OptimizationHint: "Use logical reasoning and provide evidence for your statements.",
		},
		{
			ModelKey:         "chatgpt",
			DetailedFormat:   "Format your answer with ##Headings, *bullet points*, and numerical lists. Include code examples if relevant.",
			StepInstructions: "Break down your response into numbered steps (1, 2, 3, etc.) with clear instructions at each step.",
			ConciseFormat:    "Answer briefly and directly in 2-3 sentences maximum.",
			Constraints:      "Stick to verified information and indicate clearly if something is your opinion or speculation.",
			ExampleFormat:    "Provide one concrete example with 'Example:' as a header.",
			OutputFormat:     "Structure your response with clear sections separated by headers.",
			OptimizationHint: "You excel at detailed explanations with examples, so include those where possible.",
		},
		{
			ModelKey:         "claude",
			DetailedFormat:   "Organise your answer into clearly labelled sections and use lists where they help readability.",
			StepInstructions: "Work through the task one step at a time and label each step.",
			ConciseFormat:    "Answer in a short paragraph without preamble.",
			Constraints:      "Only use the information given, and flag any assumptions explicitly.",
			ExampleFormat:    "Show a worked example inside <example> tags.",
			OutputFormat:     "Wrap the final answer in <answer> tags.",
			OptimizationHint: "You follow detailed instructions well, so spell out the expected structure.",
		},
		{
			ModelKey:         "gemini",
			DetailedFormat:   "Use headings and bullet points, and include a short summary at the end.",
			StepInstructions: "List the steps in order and explain the purpose of each.",
			ConciseFormat:    "Reply in no more than three sentences.",
			Constraints:      "Avoid speculation and keep to well-established facts.",
			ExampleFormat:    "Add one realistic example after the explanation.",
			OutputFormat:     "Return the answer as a structured list followed by a summary.",
			OptimizationHint: "You handle multi-part questions well, so break the request into explicit parts.",
		},
		{
			ModelKey:         "llama",
			DetailedFormat:   "Give a thorough answer with short paragraphs and bullet points.",
			StepInstructions: "Answer as a numbered list of steps.",
			ConciseFormat:    "Keep the answer under 80 words.",
			Constraints:      "Do not invent facts; say when you do not know.",
			ExampleFormat:    "Include a simple example.",
			OutputFormat:     "Use plain text with clear paragraph breaks.",
			OptimizationHint: "Short, direct instructions work best for this model.",
		},
		{
			ModelKey:         "mistral",
			DetailedFormat:   "Provide a complete answer using headings and lists.",
			StepInstructions: "Number each step and keep steps short.",
			ConciseFormat:    "Answer in one or two sentences.",
			Constraints:      "Stay on topic and avoid filler.",
			ExampleFormat:    "Provide an example prefixed with 'Example:'.",
			OutputFormat:     "Use markdown formatting for the answer.",
			OptimizationHint: "State the task first and the constraints second.",
		},
		{
			ModelKey:         "gemma",
			DetailedFormat:   "Write a detailed answer with headings, lists and examples.",
			StepInstructions: "Explain the solution step by step.",
			ConciseFormat:    "Provide a brief answer in a few sentences.",
			Constraints:      "Keep to the scope of the question.",
			ExampleFormat:    "Give at least one example.",
			OutputFormat:     "Present the result in clearly separated sections.",
			OptimizationHint: "Clear role and task statements improve instruction following.",
		},
		{
			ModelKey:         "thai",
			DetailedFormat:   "Please format your response with headings, bullet points, and examples where appropriate.",
			StepInstructions: "Please break down your response into clear, sequential steps.",
			ConciseFormat:    "Please provide a concise answer in 3-5 sentences.",
			Constraints:      "Answer in Thai and keep technical terms in English where needed.",
			ExampleFormat:    "Include a practical example relevant to a Thai audience.",
			OutputFormat:     "Present your answer in a clear, structured format with distinct sections.",
			OptimizationHint: "State the expected answer language explicitly.",
		},
	}
}

// WriteTables writes both tables into dataDir. Existing files are kept unless overwrite is set.
// It returns the paths it actually wrote.
func WriteTables(dataDir string, templates []domain.TemplateEntry, practices []domain.BestPracticeEntry, overwrite bool) ([]string, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}

	templatesDoc, err := encodeTable(len(templates), func(i int) (string, any) {
		t := templates[i]
		return t.ModelKey, map[string]string{"prefix": t.Prefix, "suffix": t.Suffix}
	})
	if err != nil {
		return nil, err
	}
	practicesDoc, err := encodeTable(len(practices), func(i int) (string, any) {
		p := practices[i]
		return p.ModelKey, practiceRecord(p)
	})
	if err != nil {
		return nil, err
	}

	var written []string
	for _, f := range []struct {
		name string
		data []byte
	}{
		{TemplatesFile, templatesDoc},
		{PracticesFile, practicesDoc},
	} {
		path := filepath.Join(dataDir, f.name)
		if !overwrite {
			if _, err := os.Stat(path); err == nil {
				continue
			}
		}
		if err := os.WriteFile(path, f.data, 0644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// encodeTable renders an ordered JSON object; encoding/json would sort map keys.
func encodeTable(n int, entry func(i int) (string, any)) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i := 0; i < n; i++ {
		key, value := entry(i)
		k, err := json.Marshal(domain.NormalizeModelKey(key))
		if err != nil {
			return nil, err
		}
		v, err := json.MarshalIndent(value, "  ", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal entry %q: %w", key, err)
		}
		buf.WriteString("  ")
		buf.Write(k)
		buf.WriteString(": ")
		buf.Write(v)
		if i < n-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

// practiceRecord drops the model key, which is the object key in the file.
func practiceRecord(p domain.BestPracticeEntry) map[string]string {
	return map[string]string{
		"detailed_format":   p.DetailedFormat,
		"step_instructions": p.StepInstructions,
		"concise_format":    p.ConciseFormat,
		"constraints":       p.Constraints,
		"example_format":    p.ExampleFormat,
		"output_format":     p.OutputFormat,
		"optimization_hint": p.OptimizationHint,
	}
}
