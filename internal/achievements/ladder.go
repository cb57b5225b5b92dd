package achievements

import (
	"fmt"
	"sort"
	"strings"
)

const (
	LadderFull      = "full"
	LadderCondensed = "condensed"
)

var namedLadders = map[string][]int{
	LadderFull:      {3, 7, 30, 365, 730, 1095, 1461, 1826},
	LadderCondensed: {3, 7, 30},
}

// Ladder is an ascending list of streak day counts, each one worth a badge.
type Ladder []int

// NewLadder picks the named ladder, custom thresholds win when given.
func NewLadder(name string, custom []int) (Ladder, error) {
	if len(custom) > 0 {
		ladder := make(Ladder, 0, len(custom))
		seen := make(map[int]bool, len(custom))
		for _, days := range custom {
			if days <= 0 {
				return nil, fmt.Errorf("invalid streak threshold: %d", days)
			}
			if seen[days] {
				continue
			}
			seen[days] = true
			ladder = append(ladder, days)
		}
		sort.Ints(ladder)
		return ladder, nil
	}

	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = LadderFull
	}
	thresholds, ok := namedLadders[key]
	if !ok {
		return nil, fmt.Errorf("unknown achievement ladder: %s", name)
	}
	return append(Ladder(nil), thresholds...), nil
}

// Eligible returns the codes of all thresholds reached by streak.
func (l Ladder) Eligible(streak int) []string {
	var codes []string
	for _, days := range l {
		if streak >= days {
			codes = append(codes, Code(days))
		}
	}
	return codes
}

func Code(days int) string {
	return fmt.Sprintf("streak_%d", days)
}

// CatalogEntry is one achievements row, sorted by its threshold.
type CatalogEntry struct {
	Code      string
	Title     string
	Icon      string
	SortOrder int
}

var knownBadges = map[int]struct{ title, icon string }{
	3:    {"3 Day Streak", "flame"},
	7:    {"One Week Strong", "calendar-week"},
	30:   {"Monthly Grinder", "calendar-month"},
	365:  {"One Year Streak", "trophy"},
	730:  {"Two Year Streak", "trophy-2"},
	1095: {"Three Year Streak", "trophy-3"},
	1461: {"Four Year Streak", "trophy-4"},
	1826: {"Five Year Streak", "crown"},
}

// Catalog describes the achievement row every threshold needs to be awardable.
func (l Ladder) Catalog() []CatalogEntry {
	entries := make([]CatalogEntry, 0, len(l))
	for _, days := range l {
		entry := CatalogEntry{
			Code:      Code(days),
			Title:     fmt.Sprintf("%d Day Streak", days),
			Icon:      "flame",
			SortOrder: days,
		}
		if badge, ok := knownBadges[days]; ok {
			entry.Title = badge.title
			entry.Icon = badge.icon
		}
		entries = append(entries, entry)
	}
	return entries
}
