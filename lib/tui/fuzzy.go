// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"slices"
	"unicode"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// FuzzyResult is the outcome of matching a pattern against one text.
// Score is zero when the text does not match. Positions are the rune
// indexes of the matched characters in ascending order, for
// highlighting.
type FuzzyResult struct {
	Score     int
	Positions []int
}

// Matched reports whether the text matched.
func (result FuzzyResult) Matched() bool {
	return result.Score > 0
}

// FuzzyMatch scores text against pattern with fzf's v2 algorithm.
// Matching is case-insensitive. The text goes to fzf unchanged and fzf
// folds it rune by rune, so positions index []rune(text). An empty
// pattern yields a zero result. slab may be nil; passing one
// reused across calls avoids per-call allocation.
func FuzzyMatch(text string, pattern []rune, slab *util.Slab) FuzzyResult {
	if len(pattern) == 0 {
		return FuzzyResult{}
	}

	lowered := make([]rune, len(pattern))
	for index, char := range pattern {
		lowered[index] = unicode.ToLower(char)
	}
	chars := util.ToChars([]byte(text))

	result, positions := algo.FuzzyMatchV2(false, true, true, &chars, lowered, true, slab)
	if result.Start < 0 || result.Score <= 0 {
		return FuzzyResult{}
	}

	var matched []int
	if positions != nil {
		matched = slices.Clone(*positions)
		slices.Sort(matched)
	}
	return FuzzyResult{Score: result.Score, Positions: matched}
}
