package models

import (
	"errors"
	"fmt"
)

// ReferenceWeightKg is the baseline body weight the calorie model scales
// against. It is a fixed reference constant, not a configuration knob.
const ReferenceWeightKg = 70.0

// Intensity classifies how hard an exercise is performed.
type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

var intensityFactors = map[Intensity]float64{
	IntensityLow:    0.8,
	IntensityMedium: 1.0,
	IntensityHigh:   1.2,
}

// ParseIntensity maps a raw string to an Intensity. Matching is
// case-insensitive; unknown values are rejected.
func ParseIntensity(raw string) (Intensity, error) {
	i := Intensity(NormalizeKey(raw))
	if _, ok := intensityFactors[i]; !ok {
		return "", fmt.Errorf("unknown intensity %q", raw)
	}
	return i, nil
}

// Factor returns the calorie multiplier for this intensity.
func (i Intensity) Factor() float64 {
	return intensityFactors[i]
}

var (
	ErrEmptyName       = errors.New("exercise name must not be empty")
	ErrNonPositiveDur  = errors.New("duration must be positive")
	ErrNonPositiveCals = errors.New("calories per minute must be positive")
)

// Exercise is an immutable description of one movement together with the
// inputs to its calorie-burn formula. Construct via NewExercise; a failed
// construction never yields a partially valid value.
type Exercise struct {
	name        string
	muscleGroup string
	durationMin int
	calPerMin   float64
	intensity   Intensity
	equipment   []string
}

// NewExercise validates its parameters and returns an Exercise.
// Duration and calories per minute must be positive and the intensity
// must be one of low/medium/high.
func NewExercise(name, muscleGroup string, durationMin int, calPerMin float64, intensity Intensity, equipment []string) (Exercise, error) {
	if name == "" {
		return Exercise{}, ErrEmptyName
	}
	if durationMin <= 0 {
		return Exercise{}, fmt.Errorf("%w: got %d", ErrNonPositiveDur, durationMin)
	}
	if calPerMin <= 0 {
		return Exercise{}, fmt.Errorf("%w: got %g", ErrNonPositiveCals, calPerMin)
	}
	if _, ok := intensityFactors[intensity]; !ok {
		return Exercise{}, fmt.Errorf("unknown intensity %q", intensity)
	}
	eq := make([]string, len(equipment))
	copy(eq, equipment)
	return Exercise{
		name:        name,
		muscleGroup: muscleGroup,
		durationMin: durationMin,
		calPerMin:   calPerMin,
		intensity:   intensity,
		equipment:   eq,
	}, nil
}

func (e Exercise) Name() string         { return e.name }
func (e Exercise) MuscleGroup() string  { return e.muscleGroup }
func (e Exercise) DurationMin() int     { return e.durationMin }
func (e Exercise) CalPerMin() float64   { return e.calPerMin }
func (e Exercise) Intensity() Intensity { return e.intensity }

// Equipment returns a copy of the required equipment list.
func (e Exercise) Equipment() []string {
	eq := make([]string, len(e.equipment))
	copy(eq, e.equipment)
	return eq
}

// CaloriesBurned computes the calories burned performing this exercise by
// someone of the given body weight. heartRate is an optional observed
// sample in bpm; nil means no sample, which leaves the heart-rate factor
// at 1.0. The result is deterministic and the call has no side effects.
func (e Exercise) CaloriesBurned(weightKg float64, heartRate *float64) float64 {
	base := float64(e.durationMin) * e.calPerMin * (weightKg / ReferenceWeightKg)
	return base * e.intensity.Factor() * heartRateFactor(heartRate)
}

// heartRateFactor is a step function over the observed heart rate.
func heartRateFactor(hr *float64) float64 {
	if hr == nil {
		return 1.0
	}
	switch {
	case *hr > 160:
		return 1.3
	case *hr > 140:
		return 1.2
	case *hr > 120:
		return 1.1
	default:
		return 1.0
	}
}
