package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/claude/fitlog/internal/catalog"
	"github.com/claude/fitlog/internal/models"
	"github.com/claude/fitlog/internal/suggest"
	"github.com/claude/fitlog/internal/tracker"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolSuggestExercises = mcp.NewTool("suggest_exercises",
	mcp.WithDescription("Suggest catalog exercises for a muscle group, ranked by calorie rate adjusted for the user's weight and fitness level. Unknown groups return an empty list."),
	mcp.WithString("user", mcp.Required(), mcp.Description("User name. The user must already exist (log a workout first).")),
	mcp.WithString("muscle_group", mcp.Required(), mcp.Description("Muscle group to target (e.g. 'Legs', 'Upper Body', 'Core'); matching is case-insensitive")),
	mcp.WithString("equipment", mcp.Description("Comma-separated equipment on hand. When set, entries needing anything else are excluded. Omit for no constraint.")),
)

var toolLogWorkout = mcp.NewTool("log_workout",
	mcp.WithDescription("Log a workout of one or more catalog exercises for a user. Creates the user when weight_kg is supplied. Returns the workout summary and the updated goal report."),
	mcp.WithString("user", mcp.Required(), mcp.Description("User name")),
	mcp.WithNumber("weight_kg", mcp.Description("Body weight in kg; required the first time a user is seen")),
	mcp.WithString("fitness_level", mcp.Description("beginner, intermediate, or advanced; used when creating the user. Defaults to intermediate."), mcp.Enum("beginner", "intermediate", "advanced")),
	mcp.WithString("exercises", mcp.Required(), mcp.Description(`JSON array of performed exercises: [{"name": "Push-ups", "duration_min": 10, "heart_rate": 150}]. name must exist in the catalog; heart_rate is optional.`)),
	mcp.WithString("notes", mcp.Description("Free-text notes for the workout")),
)

var toolGetWorkouts = mcp.NewTool("get_workouts",
	mcp.WithDescription("List a user's workout summaries in logging order: totals, muscle groups, equipment, and average heart rate."),
	mcp.WithString("user", mcp.Required(), mcp.Description("User name")),
)

var toolGetProgress = mcp.NewTool("get_progress",
	mcp.WithDescription("Per-workout progress snapshots, lifetime totals, and the goal report for a user."),
	mcp.WithString("user", mcp.Required(), mcp.Description("User name")),
)

var toolSetGoal = mcp.NewTool("set_goal",
	mcp.WithDescription("Set or replace a numeric goal for a user. The metric's current value becomes the goal's start; a target equal to it is rejected."),
	mcp.WithString("user", mcp.Required(), mcp.Description("User name")),
	mcp.WithString("metric", mcp.Required(), mcp.Description("Goal metric"), mcp.Enum("calories", "workouts", "minutes")),
	mcp.WithNumber("target", mcp.Required(), mcp.Description("Target value for the metric")),
	mcp.WithString("deadline", mcp.Required(), mcp.Description("Deadline date (YYYY-MM-DD)")),
)

var toolListCatalog = mcp.NewTool("list_catalog",
	mcp.WithDescription("List catalog exercises, either for one muscle group or the whole catalog grouped by muscle group."),
	mcp.WithString("muscle_group", mcp.Description("Restrict the listing to one muscle group")),
)

// --- Tool handlers ---

func (h *handlers) requireUser(req mcp.CallToolRequest) (*tracker.User, *mcp.CallToolResult) {
	name, err := req.RequireString("user")
	if err != nil {
		return nil, mcp.NewToolResultError("user parameter is required")
	}
	u, ok := h.store.Get(name)
	if !ok {
		return nil, mcp.NewToolResultError("unknown user " + name + ": log a workout first")
	}
	return u, nil
}

func (h *handlers) suggestExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	u, errResult := h.requireUser(req)
	if errResult != nil {
		return errResult, nil
	}
	group, err := req.RequireString("muscle_group")
	if err != nil {
		return mcp.NewToolResultError("muscle_group parameter is required"), nil
	}

	var equipment []string
	if raw := req.GetString("equipment", ""); raw != "" {
		for _, item := range strings.Split(raw, ",") {
			if item = strings.TrimSpace(item); item != "" {
				equipment = append(equipment, item)
			}
		}
	}

	suggestions := suggest.Suggest(h.cat, group, u.WeightKg(), u.FitnessLevel(), equipment)

	result, err := mcp.NewToolResultJSON(suggestions)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

// exerciseInput is one performed exercise in a log_workout request.
type exerciseInput struct {
	Name        string   `json:"name"`
	DurationMin int      `json:"duration_min"`
	HeartRate   *float64 `json:"heart_rate,omitempty"`
}

func (h *handlers) logWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("user")
	if err != nil {
		return mcp.NewToolResultError("user parameter is required"), nil
	}
	exercisesRaw, err := req.RequireString("exercises")
	if err != nil {
		return mcp.NewToolResultError("exercises parameter is required"), nil
	}

	var inputs []exerciseInput
	if err := json.Unmarshal([]byte(exercisesRaw), &inputs); err != nil {
		return mcp.NewToolResultError("invalid exercises JSON: " + err.Error()), nil
	}
	if len(inputs) == 0 {
		return mcp.NewToolResultError("exercises must not be empty"), nil
	}

	u, ok := h.store.Get(name)
	if !ok {
		weight := req.GetFloat("weight_kg", 0)
		if weight <= 0 {
			return mcp.NewToolResultError("unknown user " + name + ": supply weight_kg to create them"), nil
		}
		level := models.LevelIntermediate
		if raw := req.GetString("fitness_level", ""); raw != "" {
			level, err = models.ParseFitnessLevel(raw)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
		}
		u, err = h.store.GetOrCreate(name, weight, level)
		if err != nil {
			return mcp.NewToolResultError("creating user: " + err.Error()), nil
		}
	}

	w := models.NewWorkout(req.GetString("notes", ""))
	for _, in := range inputs {
		entry, group, found := h.cat.FindExercise(in.Name)
		if !found {
			return mcp.NewToolResultError("exercise not in catalog: " + in.Name), nil
		}
		ex, err := entry.Exercise(group, in.DurationMin)
		if err != nil {
			return mcp.NewToolResultError("invalid exercise " + in.Name + ": " + err.Error()), nil
		}
		if err := w.AddExercise(ex, u.WeightKg(), in.HeartRate); err != nil {
			return mcp.NewToolResultError("adding exercise: " + err.Error()), nil
		}
	}

	u.AddWorkout(w)
	h.log.Info("mcp workout logged", "user", u.Name(), "exercises", w.ExerciseCount())

	result, err := mcp.NewToolResultJSON(map[string]any{
		"workout": w.Summary(),
		"goals":   u.GoalProgressReport(),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWorkouts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	u, errResult := h.requireUser(req)
	if errResult != nil {
		return errResult, nil
	}

	workouts := u.Workouts()
	summaries := make([]models.WorkoutSummary, len(workouts))
	for i, w := range workouts {
		summaries[i] = w.Summary()
	}

	result, err := mcp.NewToolResultJSON(summaries)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getProgress(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	u, errResult := h.requireUser(req)
	if errResult != nil {
		return errResult, nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"progress_history":   u.ProgressHistory(),
		"goals":              u.GoalProgressReport(),
		"total_calories":     u.TotalCalories(),
		"total_duration_min": u.TotalDurationMin(),
		"workout_count":      u.WorkoutCount(),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) setGoal(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	u, errResult := h.requireUser(req)
	if errResult != nil {
		return errResult, nil
	}
	metricRaw, err := req.RequireString("metric")
	if err != nil {
		return mcp.NewToolResultError("metric parameter is required"), nil
	}
	target, err := req.RequireFloat("target")
	if err != nil {
		return mcp.NewToolResultError("target parameter is required"), nil
	}
	deadlineRaw, err := req.RequireString("deadline")
	if err != nil {
		return mcp.NewToolResultError("deadline parameter is required"), nil
	}

	metric, err := tracker.ParseGoalMetric(metricRaw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	deadline, err := time.Parse("2006-01-02", deadlineRaw)
	if err != nil {
		return mcp.NewToolResultError("invalid deadline, use YYYY-MM-DD: " + err.Error()), nil
	}

	g, err := u.SetGoal(metric, target, deadline)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(g)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listCatalog(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if group := req.GetString("muscle_group", ""); group != "" {
		result, err := mcp.NewToolResultJSON(h.cat.Group(group))
		if err != nil {
			return mcp.NewToolResultError("serialization failed"), nil
		}
		return result, nil
	}

	full := make(map[string][]catalog.Entry)
	for _, group := range h.cat.Groups() {
		full[group] = h.cat.Group(group)
	}
	result, err := mcp.NewToolResultJSON(full)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
