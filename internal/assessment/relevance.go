package assessment

import (
	"strings"
	"unicode"

	"github.com/Nerotas/ToughNoseKarate-sub001/internal/curriculum"
)

// IsRelevant reports whether a score field applies to the target belt: true
// when any synonym for the field matches any entry in the target's list for
// the field's category. Matching is bidirectional substring containment over
// normalized text, which tolerates partial phrasing ("Front Kick" vs "front
// kick (rear leg)") at the cost of the occasional incidental match. A nil
// target, an unknown field, or an empty category list all yield false; the
// function never errors.
func IsRelevant(field string, target *curriculum.BeltRequirement) bool {
	if target == nil {
		return false
	}
	f, ok := FieldByName(field)
	if !ok {
		return false
	}
	entries := categoryEntries(f.Category, target)
	if len(entries) == 0 {
		return false
	}
	for _, syn := range f.Synonyms {
		ns := normalize(syn)
		if ns == "" {
			continue
		}
		for _, e := range entries {
			ne := normalize(e)
			if ne == "" {
				continue
			}
			if strings.Contains(ne, ns) || strings.Contains(ns, ne) {
				return true
			}
		}
	}
	return false
}

// RelevantFields evaluates every registry field against target and returns
// the per-field display flags.
func RelevantFields(target *curriculum.BeltRequirement) map[string]bool {
	out := make(map[string]bool, len(ScoreFields))
	for _, f := range ScoreFields {
		out[f.Name] = IsRelevant(f.Name, target)
	}
	return out
}

func categoryEntries(c Category, target *curriculum.BeltRequirement) []string {
	switch c {
	case CategoryForms:
		return target.Forms
	case CategoryStances:
		return target.Stances
	case CategoryBlocks:
		return target.Blocks
	case CategoryPunches:
		return target.Punches
	case CategoryKicks:
		return target.Kicks
	case CategorySelfDefense:
		// merged category: one-step fields match either list
		out := make([]string, 0, len(target.SelfDefense)+len(target.OneSteps))
		out = append(out, target.SelfDefense...)
		out = append(out, target.OneSteps...)
		return out
	}
	return nil
}

// normalize casefolds and trims punctuation/extra spaces so variants such as
// "Self-Defense" and "self defense" compare equal.
func normalize(s string) string {
	out := make([]rune, 0, len(s))
	space := false
	for _, r := range []rune(s) {
		switch {
		case unicode.IsSpace(r) || r == '-':
			space = true
		case unicode.IsPunct(r):
			// skip
		default:
			if space && len(out) > 0 {
				out = append(out, ' ')
			}
			space = false
			out = append(out, unicode.ToLower(r))
		}
	}
	return string(out)
}
