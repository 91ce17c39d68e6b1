package curriculum

import (
	"errors"
	"sort"
	"strings"
)

// Defaults returned by the colour resolvers when a rank has no curriculum
// entry. Lookups degrade to these instead of failing: they back display
// decisions only.
const (
	DefaultColor     = "#757575"
	DefaultTextColor = "#FFFFFF"
)

// ErrInvalidCurriculum is returned by NextBeltRank when the curriculum
// snapshot is empty and sequencing is impossible.
var ErrInvalidCurriculum = errors.New("curriculum: empty or invalid curriculum")

func find(rank string, curriculum []BeltRequirement) *BeltRequirement {
	if strings.TrimSpace(rank) == "" {
		return nil
	}
	for i := range curriculum {
		if strings.EqualFold(curriculum[i].BeltRank, rank) {
			return &curriculum[i]
		}
	}
	return nil
}

// Find returns the curriculum entry whose BeltRank matches rank
// case-insensitively, or nil when there is none.
func Find(rank string, curriculum []BeltRequirement) *BeltRequirement {
	return find(rank, curriculum)
}

// ResolveColor returns the belt colour for rank, or DefaultColor when the
// rank is blank or has no curriculum entry.
func ResolveColor(rank string, curriculum []BeltRequirement) string {
	if r := find(rank, curriculum); r != nil {
		return r.Color
	}
	return DefaultColor
}

// ResolveTextColor returns the text colour for rank, or DefaultTextColor
// when the rank is blank or has no curriculum entry.
func ResolveTextColor(rank string, curriculum []BeltRequirement) string {
	if r := find(rank, curriculum); r != nil {
		return r.TextColor
	}
	return DefaultTextColor
}

// NextBeltRank returns the rank that follows current in curriculum order.
// The highest rank is a fixed point: asking for its successor returns it
// unchanged and callers must treat that as "no promotion possible". A rank
// with no curriculum entry resolves to the highest rank — a deliberate
// don't-under-promote fallback kept for compatibility with existing data.
func NextBeltRank(current string, curriculum []BeltRequirement) (string, error) {
	if len(curriculum) == 0 {
		return "", ErrInvalidCurriculum
	}
	sorted := make([]BeltRequirement, len(curriculum))
	copy(sorted, curriculum)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].BeltOrder < sorted[j].BeltOrder })

	for i := range sorted {
		if strings.EqualFold(sorted[i].BeltRank, current) {
			if i == len(sorted)-1 {
				return sorted[i].BeltRank, nil
			}
			return sorted[i+1].BeltRank, nil
		}
	}
	return sorted[len(sorted)-1].BeltRank, nil
}
