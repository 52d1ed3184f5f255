package models

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
)

// ErrWorkoutSealed is returned when adding an exercise to a workout that
// has already been attached to a user's history.
var ErrWorkoutSealed = errors.New("workout is sealed: already attached to a user")

// Workout is an ordered sequence of exercises performed together. Totals
// are maintained incrementally; AddExercise is the single update path and
// Summary is a pure read of the aggregated state.
type Workout struct {
	id           uuid.UUID
	date         time.Time
	notes        string
	exercises    []Exercise
	totalDurMin  int
	totalCals    float64
	heartRateLog []float64
	sealed       bool
}

// NewWorkout creates an empty workout stamped with the current time.
func NewWorkout(notes string) *Workout {
	return &Workout{
		id:    uuid.New(),
		date:  time.Now(),
		notes: notes,
	}
}

func (w *Workout) ID() uuid.UUID     { return w.id }
func (w *Workout) Date() time.Time   { return w.date }
func (w *Workout) Notes() string     { return w.notes }
func (w *Workout) ExerciseCount() int { return len(w.exercises) }

// Exercises returns a copy of the exercise list in performance order.
func (w *Workout) Exercises() []Exercise {
	out := make([]Exercise, len(w.exercises))
	copy(out, w.exercises)
	return out
}

// HeartRateLog returns a copy of the observed heart-rate samples.
func (w *Workout) HeartRateLog() []float64 {
	out := make([]float64, len(w.heartRateLog))
	copy(out, w.heartRateLog)
	return out
}

// AddExercise appends the exercise, folds its duration and calorie burn
// (for the given body weight and optional heart-rate sample) into the
// running totals, and records the sample when one was supplied. Fails
// with ErrWorkoutSealed once the workout belongs to a user.
func (w *Workout) AddExercise(ex Exercise, weightKg float64, heartRate *float64) error {
	if w.sealed {
		return ErrWorkoutSealed
	}
	w.exercises = append(w.exercises, ex)
	w.totalDurMin += ex.DurationMin()
	w.totalCals += ex.CaloriesBurned(weightKg, heartRate)
	if heartRate != nil {
		w.heartRateLog = append(w.heartRateLog, *heartRate)
	}
	return nil
}

// Seal marks the workout read-only. Called when it is attached to a user.
func (w *Workout) Seal() { w.sealed = true }

// Sealed reports whether the workout can still be appended to.
func (w *Workout) Sealed() bool { return w.sealed }

// WorkoutSummary is a snapshot of a workout's aggregated state.
// AverageHeartRate is nil when no samples were recorded.
type WorkoutSummary struct {
	Date             time.Time `json:"date"`
	TotalDurationMin int       `json:"total_duration_min"`
	TotalCalories    float64   `json:"total_calories"`
	ExerciseCount    int       `json:"exercise_count"`
	MuscleGroups     []string  `json:"muscle_groups"`
	EquipmentUsed    []string  `json:"equipment_used"`
	AverageHeartRate *float64  `json:"average_heart_rate,omitempty"`
	Notes            string    `json:"notes,omitempty"`
}

// Summary reads the aggregated state without recomputing it. The muscle
// group and equipment sets are deduplicated by normalized key; sorting
// only makes the output deterministic, the order carries no meaning.
func (w *Workout) Summary() WorkoutSummary {
	groups := distinct(func(ex Exercise) []string { return []string{ex.MuscleGroup()} }, w.exercises)
	equipment := distinct(Exercise.Equipment, w.exercises)

	var avgHR *float64
	if n := len(w.heartRateLog); n > 0 {
		var sum float64
		for _, hr := range w.heartRateLog {
			sum += hr
		}
		mean := sum / float64(n)
		avgHR = &mean
	}

	return WorkoutSummary{
		Date:             w.date,
		TotalDurationMin: w.totalDurMin,
		TotalCalories:    w.totalCals,
		ExerciseCount:    len(w.exercises),
		MuscleGroups:     groups,
		EquipmentUsed:    equipment,
		AverageHeartRate: avgHR,
		Notes:            w.notes,
	}
}

// distinct collects values across exercises, deduplicated by normalized
// key. The first-seen display form wins.
func distinct(get func(Exercise) []string, exercises []Exercise) []string {
	seen := make(map[string]bool)
	var out []string
	for _, ex := range exercises {
		for _, v := range get(ex) {
			key := NormalizeKey(v)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}
