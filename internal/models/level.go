package models

import "fmt"

// FitnessLevel classifies a user's training experience.
type FitnessLevel string

const (
	LevelBeginner     FitnessLevel = "beginner"
	LevelIntermediate FitnessLevel = "intermediate"
	LevelAdvanced     FitnessLevel = "advanced"
)

var levelMultipliers = map[FitnessLevel]float64{
	LevelBeginner:     0.8,
	LevelIntermediate: 1.0,
	LevelAdvanced:     1.2,
}

// ParseFitnessLevel maps a raw string to a FitnessLevel. Matching is
// case-insensitive; unknown values are rejected.
func ParseFitnessLevel(raw string) (FitnessLevel, error) {
	l := FitnessLevel(NormalizeKey(raw))
	if _, ok := levelMultipliers[l]; !ok {
		return "", fmt.Errorf("unknown fitness level %q", raw)
	}
	return l, nil
}

// Multiplier returns the difficulty multiplier used when adjusting
// suggested calorie rates. Unrecognized levels fall back to 1.0 so
// suggestion output stays usable with a missing or free-form level.
func (l FitnessLevel) Multiplier() float64 {
	if m, ok := levelMultipliers[l]; ok {
		return m
	}
	return 1.0
}
