package assessment

import (
	"testing"

	"github.com/Nerotas/ToughNoseKarate-sub001/internal/curriculum"
)

func TestIsRelevant_Basic(t *testing.T) {
	target := &curriculum.BeltRequirement{
		BeltRank: "Gold",
		Kicks:    []string{"Front Kick"},
		Blocks:   []string{},
	}
	if !IsRelevant("front_kick", target) {
		t.Fatalf("front_kick should be relevant when kicks contains Front Kick")
	}
	if IsRelevant("high_block", target) {
		t.Fatalf("high_block should be irrelevant with an empty blocks list")
	}
	if IsRelevant("front_kick", nil) {
		t.Fatalf("nil target must make every field irrelevant")
	}
	if IsRelevant("no_such_field", target) {
		t.Fatalf("unknown field names are never relevant")
	}
}

func TestIsRelevant_CaseInsensitive(t *testing.T) {
	target := &curriculum.BeltRequirement{Kicks: []string{"FRONT KICK"}}
	if !IsRelevant("front_kick", target) {
		t.Fatalf("matching must be case-insensitive")
	}
}

func TestIsRelevant_BidirectionalSubstring(t *testing.T) {
	// curriculum entry longer than the synonym
	longer := &curriculum.BeltRequirement{Kicks: []string{"Front Kick (rear leg)"}}
	if !IsRelevant("front_kick", longer) {
		t.Fatalf("synonym contained in entry should match")
	}
	// synonym longer than the curriculum entry
	shorter := &curriculum.BeltRequirement{Stances: []string{"front"}}
	if !IsRelevant("stance_front", shorter) {
		t.Fatalf("entry contained in synonym should match")
	}
}

func TestIsRelevant_SelfDefenseUnion(t *testing.T) {
	// one-step fields must match against the union of selfDefense and
	// oneSteps, not either list alone
	onlyOneSteps := &curriculum.BeltRequirement{OneSteps: []string{"One Step #1"}}
	if !IsRelevant("one_steps", onlyOneSteps) {
		t.Fatalf("one_steps should match an entry in the oneSteps list")
	}
	onlySelfDefense := &curriculum.BeltRequirement{SelfDefense: []string{"Self Defense Escape"}}
	if !IsRelevant("self_defense", onlySelfDefense) {
		t.Fatalf("self_defense should match an entry in the selfDefense list")
	}
	crossed := &curriculum.BeltRequirement{SelfDefense: []string{"One Step Counter"}}
	if !IsRelevant("one_steps", crossed) {
		t.Fatalf("one_steps should also match entries in the selfDefense list")
	}
}

func TestIsRelevant_AcceptedFalsePositive(t *testing.T) {
	// the substring policy can light up a field from an incidental phrase;
	// this is a known precision trade-off, pinned here so it is not
	// "fixed" by accident
	target := &curriculum.BeltRequirement{Forms: []string{"Made Up Form Counter Drill"}}
	if !IsRelevant("made_up_form", target) {
		t.Fatalf("incidental substring matches are accepted behaviour")
	}
}

func TestIsRelevant_PunctuationNormalized(t *testing.T) {
	target := &curriculum.BeltRequirement{SelfDefense: []string{"Self-Defense"}}
	if !IsRelevant("self_defense", target) {
		t.Fatalf("hyphenated entries should still match")
	}
}

func TestRelevantFields_Deterministic(t *testing.T) {
	target := &curriculum.BeltRequirement{
		Kicks:  []string{"Front Kick", "Side Kick"},
		Blocks: []string{"High Block"},
	}
	a := RelevantFields(target)
	b := RelevantFields(target)
	if len(a) != len(ScoreFields) {
		t.Fatalf("every registry field must get a flag, got %d", len(a))
	}
	for name, v := range a {
		if b[name] != v {
			t.Fatalf("flag for %s unstable across calls", name)
		}
	}
	if !a["front_kick"] || !a["side_kick"] || !a["high_block"] {
		t.Fatalf("expected kick/block flags set: %v", a)
	}
	if a["low_block"] || a["form"] {
		t.Fatalf("unrequired techniques must stay false: %v", a)
	}
}
