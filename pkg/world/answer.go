package world

import (
	"strconv"
	"strings"
)

// AnswerKind discriminates the two forms a player answer can take.
type AnswerKind int

const (
	// AnswerIndex is a 0-based option index.
	AnswerIndex AnswerKind = iota
	// AnswerText is free text, used for text-input solutions.
	AnswerText
)

// Answer is a player answer resolved to its typed form before any
// checking logic sees it.
type Answer struct {
	Kind  AnswerKind
	Index int
	Text  string
}

// ResolveAnswer converts raw player input into a typed Answer against
// the given option list. With options present, numeric input is read
// as a 1-based option number and other input is matched against the
// option text; ok is false when neither resolves. With no options the
// input is taken as free text and always resolves.
func ResolveAnswer(raw string, options []string) (Answer, bool) {
	raw = strings.TrimSpace(raw)

	if len(options) == 0 {
		return Answer{Kind: AnswerText, Text: raw}, true
	}

	if n, err := strconv.Atoi(raw); err == nil {
		idx := n - 1
		if idx < 0 || idx >= len(options) {
			return Answer{}, false
		}
		return Answer{Kind: AnswerIndex, Index: idx}, true
	}

	for i, opt := range options {
		if strings.EqualFold(opt, raw) {
			return Answer{Kind: AnswerIndex, Index: i}, true
		}
	}
	return Answer{}, false
}
