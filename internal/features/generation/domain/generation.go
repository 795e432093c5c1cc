package domain

import "strings"

// Style selects which best-practice hint is appended to the goal.
type Style string

const (
	StyleDetailed   Style = "detailed"
	StyleStepByStep Style = "step-by-step"
	StyleConcise    Style = "concise"
)

// Styles lists the recognised styles.
var Styles = []Style{StyleDetailed, StyleStepByStep, StyleConcise}

// Format is an optional section of an assembled prompt.
type Format string

const (
	FormatPersona     Format = "persona"
	FormatConstraints Format = "constraints"
	FormatExamples    Format = "examples"
	// FormatStandard is accepted and adds nothing.
	FormatStandard Format = "standard"
)

// Formats lists the recognised format flags.
var Formats = []Format{FormatPersona, FormatConstraints, FormatExamples, FormatStandard}

// FormatSet is an unordered set of format flags.
type FormatSet map[Format]struct{}

// NewFormatSet builds a set from flags.
func NewFormatSet(flags ...Format) FormatSet {
	s := make(FormatSet, len(flags))
	for _, f := range flags {
		s[f] = struct{}{}
	}
	return s
}

// Has reports whether f is in the set.
func (s FormatSet) Has(f Format) bool {
	_, ok := s[f]
	return ok
}

// ParseFormats normalises raw flags into a set. Unrecognised flags are returned separately.
func ParseFormats(raw []string) (FormatSet, []string) {
	set := make(FormatSet, len(raw))
	var unknown []string
	for _, r := range raw {
		f := Format(strings.ToLower(strings.TrimSpace(r)))
		switch f {
		case FormatPersona, FormatConstraints, FormatExamples, FormatStandard:
			set[f] = struct{}{}
		case "":
		default:
			unknown = append(unknown, r)
		}
	}
	return set, unknown
}

// GenerationRequest asks for a new prompt built from a goal.
type GenerationRequest struct {
	Goal        string   `json:"goal" form:"goal"`
	TargetModel string   `json:"target_model" form:"target_model"`
	Context     string   `json:"context,omitempty" form:"context"`
	Style       string   `json:"style,omitempty" form:"style"`
	Formats     []string `json:"formats,omitempty" form:"formats"`
}
