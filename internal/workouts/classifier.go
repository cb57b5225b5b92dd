package workouts

import (
	"fmt"
	"strings"
	"time"
)

const (
	VariantMuscle = "muscle"
	VariantPPL    = "ppl"
)

// Flags holds one entry per vocabulary category, set or not.
type Flags map[string]bool

// Names returns the set categories in vocabulary order.
func (f Flags) Names(vocabulary []string) []string {
	names := make([]string, 0, len(vocabulary))
	for _, category := range vocabulary {
		if f[category] {
			names = append(names, category)
		}
	}
	return names
}

type Definition struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Categories []string `json:"categories"`
}

type variant struct {
	vocabulary  []string
	cycleLength int
	workouts    []Definition
}

var variants = map[string]variant{
	VariantMuscle: {
		vocabulary:  []string{"back", "chest", "arms", "legs", "glutes", "abs", "cardio"},
		cycleLength: 8,
		workouts: []Definition{
			{ID: 1, Name: "Back & Biceps", Categories: []string{"back", "arms"}},
			{ID: 2, Name: "Chest & Triceps", Categories: []string{"chest", "arms"}},
			{ID: 3, Name: "Legs & Glutes", Categories: []string{"legs", "glutes"}},
			{ID: 4, Name: "Core & Cardio", Categories: []string{"abs", "cardio"}},
			{ID: 5, Name: "Upper Body", Categories: []string{"back", "chest", "arms"}},
			{ID: 6, Name: "Lower Body & Core", Categories: []string{"legs", "glutes", "abs"}},
			{ID: 7, Name: "Cardio", Categories: []string{"cardio"}},
			{ID: 8, Name: "Full Body", Categories: []string{"back", "chest", "arms", "legs", "glutes", "abs"}},
		},
	},
	VariantPPL: {
		vocabulary:  []string{"push", "pull", "legs", "rest"},
		cycleLength: 7,
		workouts: []Definition{
			{ID: 1, Name: "Push", Categories: []string{"push"}},
			{ID: 2, Name: "Pull", Categories: []string{"pull"}},
			{ID: 3, Name: "Legs", Categories: []string{"legs"}},
			{ID: 4, Name: "Rest Day", Categories: []string{"rest"}},
		},
	},
}

// Classifier maps workout identifiers to category flags of one variant.
type Classifier struct {
	variant string
	v       variant
	byID    map[int]Definition
}

func NewClassifier(variantName string) (*Classifier, error) {
	name := strings.ToLower(strings.TrimSpace(variantName))
	if name == "" {
		name = VariantMuscle
	}
	v, ok := variants[name]
	if !ok {
		return nil, fmt.Errorf("unknown workout variant: %s", variantName)
	}

	byID := make(map[int]Definition, len(v.workouts))
	for _, d := range v.workouts {
		byID[d.ID] = d
	}
	return &Classifier{
		variant: name,
		v:       v,
		byID:    byID,
	}, nil
}

func (c *Classifier) Variant() string {
	return c.variant
}

func (c *Classifier) Vocabulary() []string {
	return append([]string(nil), c.v.vocabulary...)
}

// DefaultCycleLength is the progress path cycle length matching the variant.
func (c *Classifier) DefaultCycleLength() int {
	return c.v.cycleLength
}

func (c *Classifier) Workouts() []Definition {
	return append([]Definition(nil), c.v.workouts...)
}

// Classify never fails, unknown ids yield all flags unset.
func (c *Classifier) Classify(workoutID int) Flags {
	flags := make(Flags, len(c.v.vocabulary))
	for _, category := range c.v.vocabulary {
		flags[category] = false
	}
	if d, ok := c.byID[workoutID]; ok {
		for _, category := range d.Categories {
			flags[category] = true
		}
	}
	return flags
}

// NominalDate encodes the calendar day of t as MMDDYY, e.g. 101426 for Oct 14 2026.
func NominalDate(t time.Time) int {
	return int(t.Month())*10000 + t.Day()*100 + t.Year()%100
}
