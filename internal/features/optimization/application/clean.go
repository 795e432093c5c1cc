package application

import "prompt-optimizer/backend/internal/textproc"

// Clean collapses whitespace, drops spaces before punctuation and makes sure the prompt
// ends in terminal punctuation. Clean(Clean(x)) == Clean(x).
func Clean(prompt string) string {
	cleaned := textproc.RemoveSpaceBefore(textproc.CollapseWhitespace(prompt), ",.!?;:")
	if !textproc.EndsWithAny(cleaned, ".!?") {
		cleaned += "."
	}
	return cleaned
}
