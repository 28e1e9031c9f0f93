// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"testing"

	"github.com/junegunn/fzf/src/util"
)

func TestFuzzyMatchSubstring(t *testing.T) {
	result := FuzzyMatch("Acme Holdings", []rune("hold"), nil)
	if !result.Matched() {
		t.Fatalf("expected match, got score=%d", result.Score)
	}
	want := []int{5, 6, 7, 8}
	if len(result.Positions) != len(want) {
		t.Fatalf("positions = %v, want %v", result.Positions, want)
	}
	for index := range want {
		if result.Positions[index] != want[index] {
			t.Errorf("positions = %v, want %v", result.Positions, want)
			break
		}
	}
}

func TestFuzzyMatchNonContiguous(t *testing.T) {
	result := FuzzyMatch("Northwind Traders", []rune("ntr"), nil)
	if !result.Matched() {
		t.Fatal("expected non-contiguous match")
	}
	for index := 1; index < len(result.Positions); index++ {
		if result.Positions[index] <= result.Positions[index-1] {
			t.Errorf("positions not ascending: %v", result.Positions)
		}
	}
}

func TestFuzzyMatchCaseInsensitive(t *testing.T) {
	if !FuzzyMatch("GLOBEX", []rune("glo"), nil).Matched() {
		t.Error("lowercase pattern should match uppercase text")
	}
	if !FuzzyMatch("globex", []rune("GLO"), nil).Matched() {
		t.Error("uppercase pattern should match lowercase text")
	}
}

func TestFuzzyMatchNoMatch(t *testing.T) {
	result := FuzzyMatch("Acme", []rune("xyz"), nil)
	if result.Matched() || len(result.Positions) != 0 {
		t.Errorf("expected no match, got %+v", result)
	}
}

func TestFuzzyMatchEmptyPattern(t *testing.T) {
	if FuzzyMatch("anything", nil, nil).Score != 0 {
		t.Error("empty pattern should score zero")
	}
}

func TestFuzzyMatchReusedSlab(t *testing.T) {
	slab := util.MakeSlab(100*1024, 2048)
	for _, text := range []string{"Acme", "Initech", "Umbrella"} {
		FuzzyMatch(text, []rune("e"), slab)
	}
	if !FuzzyMatch("Initech", []rune("tch"), slab).Matched() {
		t.Error("match with reused slab failed")
	}
}

func TestFuzzyMatchPositionsIndexOriginalRunes(t *testing.T) {
	// strings.ToLower turns "İ" into two runes; positions must still
	// line up with the unfolded name.
	name := "İstanbul Ltd"
	result := FuzzyMatch(name, []rune("LTD"), nil)
	if !result.Matched() {
		t.Fatal("expected match")
	}
	runes := []rune(name)
	var highlighted []rune
	for _, position := range result.Positions {
		highlighted = append(highlighted, runes[position])
	}
	if string(highlighted) != "Ltd" {
		t.Errorf("positions %v highlight %q, want %q", result.Positions, string(highlighted), "Ltd")
	}
}
