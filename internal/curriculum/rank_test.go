package curriculum

import (
	"errors"
	"testing"
)

func ladder() []BeltRequirement {
	return []BeltRequirement{
		{BeltOrder: 1, BeltRank: "White", Color: "#FFFFFF", TextColor: "#000000"},
		{BeltOrder: 2, BeltRank: "Gold White", Color: "#FFD700", TextColor: "#000000"},
		{BeltOrder: 3, BeltRank: "Gold", Color: "#FFC107", TextColor: "#000000"},
		{BeltOrder: 4, BeltRank: "Green", Color: "#4CAF50", TextColor: "#FFFFFF"},
		{BeltOrder: 5, BeltRank: "1st Black", Color: "#000000", TextColor: "#FFFFFF"},
	}
}

func TestResolveColor(t *testing.T) {
	cur := ladder()
	if got := ResolveColor("White", cur); got != "#FFFFFF" {
		t.Fatalf("ResolveColor(White) = %q", got)
	}
	if got := ResolveColor("white", cur); got != "#FFFFFF" {
		t.Fatalf("lookup should be case-insensitive, got %q", got)
	}
	if got := ResolveColor("Nonexistent", cur); got != DefaultColor {
		t.Fatalf("unknown rank should resolve to default, got %q", got)
	}
	if got := ResolveColor("", cur); got != DefaultColor {
		t.Fatalf("blank rank should resolve to default, got %q", got)
	}
	if got := ResolveTextColor("Nonexistent", cur); got != DefaultTextColor {
		t.Fatalf("unknown rank text color should default, got %q", got)
	}
}

func TestNextBeltRank_WalksLadderOnce(t *testing.T) {
	cur := ladder()
	// start at the bottom and follow successors: every rank should be
	// visited exactly once before the ceiling fixed point
	seen := map[string]bool{}
	rank := "White"
	for i := 0; i < len(cur); i++ {
		if seen[rank] {
			t.Fatalf("rank %q visited twice", rank)
		}
		seen[rank] = true
		next, err := NextBeltRank(rank, cur)
		if err != nil {
			t.Fatalf("NextBeltRank(%q): %v", rank, err)
		}
		rank = next
	}
	if len(seen) != len(cur) {
		t.Fatalf("visited %d ranks, want %d", len(seen), len(cur))
	}
	if rank != "1st Black" {
		t.Fatalf("walk should end at the highest rank, got %q", rank)
	}
}

func TestNextBeltRank_CeilingFixedPoint(t *testing.T) {
	next, err := NextBeltRank("1st Black", ladder())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next != "1st Black" {
		t.Fatalf("highest rank should return itself, got %q", next)
	}
}

func TestNextBeltRank_Scenario(t *testing.T) {
	cur := []BeltRequirement{
		{BeltOrder: 1, BeltRank: "White"},
		{BeltOrder: 2, BeltRank: "Gold White"},
		{BeltOrder: 3, BeltRank: "Gold"},
	}
	if next, _ := NextBeltRank("White", cur); next != "Gold White" {
		t.Fatalf("NextBeltRank(White) = %q, want Gold White", next)
	}
	if next, _ := NextBeltRank("Gold", cur); next != "Gold" {
		t.Fatalf("NextBeltRank(Gold) = %q, want Gold", next)
	}
}

func TestNextBeltRank_UnknownFallsBackToHighest(t *testing.T) {
	// unknown ranks resolve to the top of the ladder: when unsure, never
	// under-promote
	next, err := NextBeltRank("Purple", ladder())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next != "1st Black" {
		t.Fatalf("unknown rank should fall back to highest, got %q", next)
	}
}

func TestNextBeltRank_UnsortedInput(t *testing.T) {
	cur := []BeltRequirement{
		{BeltOrder: 3, BeltRank: "Gold"},
		{BeltOrder: 1, BeltRank: "White"},
		{BeltOrder: 2, BeltRank: "Gold White"},
	}
	if next, _ := NextBeltRank("white", cur); next != "Gold White" {
		t.Fatalf("sequencing must sort by beltOrder first, got %q", next)
	}
}

func TestNextBeltRank_EmptyCurriculum(t *testing.T) {
	_, err := NextBeltRank("White", nil)
	if !errors.Is(err, ErrInvalidCurriculum) {
		t.Fatalf("want ErrInvalidCurriculum, got %v", err)
	}
}
