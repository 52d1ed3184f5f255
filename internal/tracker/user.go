package tracker

import (
	"errors"
	"fmt"
	"time"

	"github.com/claude/fitlog/internal/models"
)

var (
	ErrEmptyUserName     = errors.New("user name must not be empty")
	ErrNonPositiveWeight = errors.New("weight must be positive")
)

// ProgressEntry snapshots one completed workout's own totals. Entries are
// per-workout, not running totals; lifetime aggregates derive on read
// from the workout list instead.
type ProgressEntry struct {
	Date        time.Time `json:"date"`
	Calories    float64   `json:"calories"`
	DurationMin int       `json:"duration_min"`
}

// User is an identity with accumulated workout history, goals, and
// progress. Created through Store.GetOrCreate and alive for the process.
type User struct {
	name     string
	weightKg float64
	heightCm *float64
	age      *int
	level    models.FitnessLevel

	workouts []*models.Workout
	goals    map[GoalMetric]*Goal
	progress []ProgressEntry

	store *Store
}

func newUser(name string, weightKg float64, level models.FitnessLevel, store *Store) (*User, error) {
	if models.NormalizeKey(name) == "" {
		return nil, ErrEmptyUserName
	}
	if weightKg <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrNonPositiveWeight, weightKg)
	}
	return &User{
		name:     name,
		weightKg: weightKg,
		level:    level,
		goals:    make(map[GoalMetric]*Goal),
		store:    store,
	}, nil
}

func (u *User) Name() string                      { return u.name }
func (u *User) WeightKg() float64                 { return u.weightKg }
func (u *User) FitnessLevel() models.FitnessLevel { return u.level }

// SetProfile fills in the optional height/age fields.
func (u *User) SetProfile(heightCm *float64, age *int) {
	u.heightCm = heightCm
	u.age = age
}

func (u *User) HeightCm() *float64 { return u.heightCm }
func (u *User) Age() *int          { return u.age }

// AddWorkout attaches a completed workout to the user's history. The
// workout is sealed against further mutation, a progress snapshot of its
// own totals is recorded, and every goal is re-evaluated.
func (u *User) AddWorkout(w *models.Workout) {
	w.Seal()
	u.workouts = append(u.workouts, w)

	s := w.Summary()
	u.progress = append(u.progress, ProgressEntry{
		Date:        s.Date,
		Calories:    s.TotalCalories,
		DurationMin: s.TotalDurationMin,
	})

	u.evaluateGoals()
}

// Workouts returns the workout history in logging order.
func (u *User) Workouts() []*models.Workout {
	out := make([]*models.Workout, len(u.workouts))
	copy(out, u.workouts)
	return out
}

// ProgressHistory returns the per-workout progress snapshots.
func (u *User) ProgressHistory() []ProgressEntry {
	out := make([]ProgressEntry, len(u.progress))
	copy(out, u.progress)
	return out
}

// TotalCalories derives the lifetime calorie total from the workout list.
func (u *User) TotalCalories() float64 {
	var sum float64
	for _, w := range u.workouts {
		sum += w.Summary().TotalCalories
	}
	return sum
}

// TotalDurationMin derives the lifetime training minutes.
func (u *User) TotalDurationMin() int {
	var sum int
	for _, w := range u.workouts {
		sum += w.Summary().TotalDurationMin
	}
	return sum
}

// WorkoutCount returns the number of logged workouts.
func (u *User) WorkoutCount() int { return len(u.workouts) }
