package normalize

import "strings"

// punctuation is the ASCII punctuation set. Characters in it are deleted
// outright during normalization, not replaced with spaces, so words joined
// by punctuation without surrounding whitespace merge ("don't" -> "dont").
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Trace records every intermediate step of question preprocessing.
// Each field is a deterministic function of the previous one. The trace is
// diagnostic output only; the text sent to the model is always the original
// question, never Processed.
type Trace struct {
	Original           string   `json:"original"`
	Lowercased         string   `json:"lowercased"`
	PunctuationRemoved string   `json:"punctuation_removed"`
	Tokens             []string `json:"tokens"`
	Processed          string   `json:"processed"`
}

// Normalize runs the preprocessing pipeline in order: lowercase, strip
// ASCII punctuation, split on whitespace runs, rejoin with single spaces.
func Normalize(question string) Trace {
	lowered := strings.ToLower(question)
	stripped := strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return -1
		}
		return r
	}, lowered)
	tokens := strings.Fields(stripped)
	return Trace{
		Original:           question,
		Lowercased:         lowered,
		PunctuationRemoved: stripped,
		Tokens:             tokens,
		Processed:          strings.Join(tokens, " "),
	}
}
