// Package suggest ranks catalog exercises for a user: filter by available
// equipment, adjust the calorie rate for body weight and fitness level,
// sort by the adjusted rate.
package suggest

import (
	"sort"

	"github.com/claude/fitlog/internal/catalog"
	"github.com/claude/fitlog/internal/models"
)

// Suggestion is one ranked catalog entry. CaloriesPerMinute is the raw
// catalog rate; AdjustedCaloriesPerMinute folds in the user's weight and
// fitness level.
type Suggestion struct {
	Name                      string   `json:"name"`
	MuscleGroup               string   `json:"muscle_group"`
	DurationMin               int      `json:"duration_min"`
	CaloriesPerMinute         float64  `json:"calories_per_minute"`
	AdjustedCaloriesPerMinute float64  `json:"adjusted_calories_per_minute"`
	Intensity                 string   `json:"intensity,omitempty"`
	EquipmentNeeded           []string `json:"equipment_needed,omitempty"`
}

// Suggest looks up the muscle group in the catalog and returns ranked
// suggestions, highest adjusted calorie rate first. An unknown group
// yields an empty result. availableEquipment nil means no equipment
// constraint; a non-nil list excludes entries needing anything not in it
// (entries needing no equipment always pass). Ties keep catalog order.
func Suggest(cat *catalog.Catalog, muscleGroup string, weightKg float64, level models.FitnessLevel, availableEquipment []string) []Suggestion {
	entries := cat.Group(muscleGroup)
	if len(entries) == 0 {
		return nil
	}
	groupName, _ := cat.GroupName(muscleGroup)

	var available map[string]bool
	if availableEquipment != nil {
		available = models.NormalizeKeys(availableEquipment)
	}

	multiplier := level.Multiplier()
	out := make([]Suggestion, 0, len(entries))
	for _, e := range entries {
		if available != nil && !equipmentSatisfied(e.EquipmentNeeded, available) {
			continue
		}
		out = append(out, Suggestion{
			Name:                      e.Name,
			MuscleGroup:               groupName,
			DurationMin:               e.DurationMin,
			CaloriesPerMinute:         e.CaloriesPerMinute,
			AdjustedCaloriesPerMinute: e.CaloriesPerMinute * (weightKg / models.ReferenceWeightKg) * multiplier,
			Intensity:                 e.Intensity,
			EquipmentNeeded:           e.EquipmentNeeded,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AdjustedCaloriesPerMinute > out[j].AdjustedCaloriesPerMinute
	})
	return out
}

func equipmentSatisfied(needed []string, available map[string]bool) bool {
	for _, item := range needed {
		if !available[models.NormalizeKey(item)] {
			return false
		}
	}
	return true
}
