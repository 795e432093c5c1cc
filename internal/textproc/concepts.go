package textproc

import (
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"
)

// Concepts are the key phrases and actions found in a prompt.
type Concepts struct {
	NounPhrases []string `json:"noun_phrases"`
	Verbs       []string `json:"verbs"`
}

// ExtractConcepts tags text and returns its noun-phrase chunks and verbs in base form.
func ExtractConcepts(text string) (Concepts, error) {
	var c Concepts
	if strings.TrimSpace(text) == "" {
		return c, nil
	}

	doc, err := prose.NewDocument(text, prose.WithExtraction(false), prose.WithSegmentation(false))
	if err != nil {
		return c, fmt.Errorf("failed to tag text: %w", err)
	}

	var chunk []string
	chunkHasNoun := false
	flush := func() {
		if chunkHasNoun && len(chunk) > 0 {
			c.NounPhrases = append(c.NounPhrases, strings.Join(chunk, " "))
		}
		chunk = chunk[:0]
		chunkHasNoun = false
	}

	for _, tok := range doc.Tokens() {
		switch {
		case strings.HasPrefix(tok.Tag, "NN"):
			chunk = append(chunk, tok.Text)
			chunkHasNoun = true
		case isNounModifier(tok.Tag):
			// a modifier after a noun starts a new chunk
			if chunkHasNoun {
				flush()
			}
			chunk = append(chunk, tok.Text)
		default:
			flush()
		}

		if strings.HasPrefix(tok.Tag, "VB") {
			c.Verbs = append(c.Verbs, BaseForm(tok.Text))
		}
	}
	flush()

	return c, nil
}

func isNounModifier(tag string) bool {
	switch tag {
	case "DT", "PRP$", "CD", "JJ", "JJR", "JJS":
		return true
	}
	return false
}

// BaseForm reduces an inflected English verb to an approximate base form.
func BaseForm(word string) string {
	w := strings.ToLower(word)
	switch {
	case len(w) > 4 && strings.HasSuffix(w, "ies"):
		return w[:len(w)-3] + "y"
	case len(w) > 4 && strings.HasSuffix(w, "ied"):
		return w[:len(w)-3] + "y"
	case len(w) > 5 && strings.HasSuffix(w, "ing"):
		return undouble(w[:len(w)-3])
	case len(w) > 4 && strings.HasSuffix(w, "ed"):
		return undouble(w[:len(w)-2])
	case len(w) > 4 && (strings.HasSuffix(w, "shes") || strings.HasSuffix(w, "ches") ||
		strings.HasSuffix(w, "sses") || strings.HasSuffix(w, "xes")):
		return w[:len(w)-2]
	case len(w) > 3 && strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss") &&
		!strings.HasSuffix(w, "us") && !strings.HasSuffix(w, "is"):
		return w[:len(w)-1]
	}
	return w
}

// undouble turns "runn" into "run"; l, s and z doubles are kept ("spell", "pass", "buzz").
func undouble(stem string) string {
	n := len(stem)
	if n >= 3 && stem[n-1] == stem[n-2] && !strings.ContainsRune("aeioulsz", rune(stem[n-1])) {
		return stem[:n-1]
	}
	return stem
}
