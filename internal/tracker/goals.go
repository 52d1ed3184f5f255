package tracker

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// GoalMetric names the quantity a goal targets.
type GoalMetric string

const (
	GoalCalories GoalMetric = "calories" // lifetime calories burned
	GoalWorkouts GoalMetric = "workouts" // number of logged workouts
	GoalMinutes  GoalMetric = "minutes"  // lifetime training minutes
)

// GoalStatus tags the goal lifecycle. The active -> achieved transition
// happens exactly once; an achieved goal never re-fires its notification.
type GoalStatus string

const (
	GoalStatusActive   GoalStatus = "active"
	GoalStatusAchieved GoalStatus = "achieved"
)

var (
	ErrUnknownGoalMetric = errors.New("unknown goal metric")

	// ErrGoalTargetEqualsStart rejects goals whose target equals the
	// metric's current value: the progress ratio would divide by zero and
	// the goal would be trivially achieved the moment it is set.
	ErrGoalTargetEqualsStart = errors.New("goal target equals current value")
)

// ParseGoalMetric maps a raw string to a GoalMetric.
func ParseGoalMetric(raw string) (GoalMetric, error) {
	switch GoalMetric(raw) {
	case GoalCalories:
		return GoalCalories, nil
	case GoalWorkouts:
		return GoalWorkouts, nil
	case GoalMinutes:
		return GoalMinutes, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownGoalMetric, raw)
}

// Goal is a numeric target for one metric. Start is the metric's value
// when the goal was created; the progress ratio is
// (current - Start) / (Target - Start).
type Goal struct {
	Metric     GoalMetric `json:"metric"`
	Target     float64    `json:"target"`
	Start      float64    `json:"start"`
	StartDate  time.Time  `json:"start_date"`
	Deadline   time.Time  `json:"deadline"`
	Status     GoalStatus `json:"status"`
	AchievedAt *time.Time `json:"achieved_at,omitempty"`
}

// Ratio returns the progress ratio toward the goal for the given current
// metric value. Target != Start is guaranteed at creation.
func (g Goal) Ratio(current float64) float64 {
	return (current - g.Start) / (g.Target - g.Start)
}

// SetGoal creates or replaces the goal for a metric. The metric's current
// value becomes the goal's start value. A target equal to that value is
// rejected with ErrGoalTargetEqualsStart.
func (u *User) SetGoal(metric GoalMetric, target float64, deadline time.Time) (Goal, error) {
	if _, err := ParseGoalMetric(string(metric)); err != nil {
		return Goal{}, err
	}
	start := u.currentValue(metric)
	if target == start {
		return Goal{}, fmt.Errorf("%w: %s is already %g", ErrGoalTargetEqualsStart, metric, start)
	}

	g := &Goal{
		Metric:    metric,
		Target:    target,
		Start:     start,
		StartDate: time.Now(),
		Deadline:  deadline,
		Status:    GoalStatusActive,
	}
	u.goals[metric] = g
	u.store.log.Info("goal set",
		"user", u.name, "metric", string(metric), "target", target, "start", start,
		"deadline", deadline.Format("2006-01-02"))
	return *g, nil
}

// currentValue recomputes the metric from the entire workout history.
// Full recomputation over a single session's history is cheap and leaves
// exactly one source of truth: the workout list.
func (u *User) currentValue(metric GoalMetric) float64 {
	switch metric {
	case GoalCalories:
		return u.TotalCalories()
	case GoalWorkouts:
		return float64(len(u.workouts))
	case GoalMinutes:
		return float64(u.TotalDurationMin())
	}
	return 0
}

// evaluateGoals checks every active goal against freshly recomputed
// metric values and fires the achievement signal on the one transition.
func (u *User) evaluateGoals() {
	for _, g := range u.goals {
		if g.Status != GoalStatusActive {
			continue
		}
		current := u.currentValue(g.Metric)
		if g.Ratio(current) < 1 {
			continue
		}
		now := time.Now()
		g.Status = GoalStatusAchieved
		g.AchievedAt = &now
		u.store.log.Info("goal achieved",
			"user", u.name, "metric", string(g.Metric), "target", g.Target, "current", current)
		if u.store.Notify != nil {
			u.store.Notify(u.name, *g)
		}
	}
}

// GoalProgress is a goal together with its freshly computed current value
// and progress ratio.
type GoalProgress struct {
	Goal
	Current float64 `json:"current"`
	Ratio   float64 `json:"ratio"`
}

// GoalProgressReport recomputes every goal's current value and ratio.
// Output is sorted by metric name for stable listings.
func (u *User) GoalProgressReport() []GoalProgress {
	out := make([]GoalProgress, 0, len(u.goals))
	for _, g := range u.goals {
		current := u.currentValue(g.Metric)
		out = append(out, GoalProgress{
			Goal:    *g,
			Current: current,
			Ratio:   g.Ratio(current),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Metric < out[j].Metric })
	return out
}

// Goal returns the goal for a metric, if one is set.
func (u *User) Goal(metric GoalMetric) (Goal, bool) {
	g, ok := u.goals[metric]
	if !ok {
		return Goal{}, false
	}
	return *g, true
}
