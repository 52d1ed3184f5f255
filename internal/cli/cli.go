// Package cli implements the interactive menu loop. It is a thin layer
// over the catalog, suggestion, and tracker packages: it collects input,
// constructs exercises, and displays aggregates. All reads and writes go
// through the injected reader/writer so sessions can be scripted in
// tests.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/claude/fitlog/internal/catalog"
	"github.com/claude/fitlog/internal/models"
	"github.com/claude/fitlog/internal/suggest"
	"github.com/claude/fitlog/internal/tracker"
)

// CLI drives one interactive session against a store and a catalog.
type CLI struct {
	store *tracker.Store
	cat   *catalog.Catalog
	in    *bufio.Scanner
	out   io.Writer
	log   *slog.Logger
}

// New creates a CLI reading from in and writing to out.
func New(store *tracker.Store, cat *catalog.Catalog, in io.Reader, out io.Writer, log *slog.Logger) *CLI {
	return &CLI{
		store: store,
		cat:   cat,
		in:    bufio.NewScanner(in),
		out:   out,
		log:   log,
	}
}

// Run executes the menu loop until the user quits or input ends.
func (c *CLI) Run() error {
	for {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "--- FitLog ---")
		fmt.Fprintln(c.out, "1: Get workout suggestions")
		fmt.Fprintln(c.out, "2: Log a workout")
		fmt.Fprintln(c.out, "3: View logged workouts")
		fmt.Fprintln(c.out, "4: Set a goal")
		fmt.Fprintln(c.out, "5: Show progress")
		fmt.Fprintln(c.out, "q: Quit")

		choice, ok := c.prompt("Choose an option: ")
		if !ok {
			return nil
		}

		switch strings.ToLower(choice) {
		case "1":
			c.suggestions()
		case "2":
			c.logWorkout()
		case "3":
			c.viewWorkouts()
		case "4":
			c.setGoal()
		case "5":
			c.showProgress()
		case "q":
			fmt.Fprintln(c.out, "Exiting FitLog.")
			return nil
		default:
			fmt.Fprintln(c.out, "Invalid. Please enter 1, 2, 3, 4, 5, or q.")
		}
	}
}

func (c *CLI) suggestions() {
	u, ok := c.existingUser()
	if !ok {
		return
	}

	group, ok := c.prompt("Enter the muscle group (e.g. Legs, Upper Body, Core): ")
	if !ok {
		return
	}
	equipmentRaw, ok := c.prompt("Available equipment, comma-separated (blank for no constraint): ")
	if !ok {
		return
	}

	results := suggest.Suggest(c.cat, group, u.WeightKg(), u.FitnessLevel(), splitCSV(equipmentRaw))
	if len(results) == 0 {
		fmt.Fprintf(c.out, "No exercises found for %q. Known groups: %s\n", group, strings.Join(c.cat.Groups(), ", "))
		return
	}

	fmt.Fprintf(c.out, "\nSuggestions for %s (weight %g kg, level %s):\n", u.Name(), u.WeightKg(), u.FitnessLevel())
	for _, s := range results {
		line := fmt.Sprintf("- %s: %d min, %.2f cal/min", s.Name, s.DurationMin, s.AdjustedCaloriesPerMinute)
		if len(s.EquipmentNeeded) > 0 {
			line += " (needs: " + strings.Join(s.EquipmentNeeded, ", ") + ")"
		}
		fmt.Fprintln(c.out, line)
	}
}

func (c *CLI) logWorkout() {
	name, ok := c.prompt("Enter your name: ")
	if !ok || name == "" {
		return
	}

	u, found := c.store.Get(name)
	if !found {
		weight, ok := c.promptFloat(fmt.Sprintf("Enter your weight in kg, %s: ", name))
		if !ok {
			return
		}
		level := c.promptLevel()
		var err error
		u, err = c.store.GetOrCreate(name, weight, level)
		if err != nil {
			fmt.Fprintf(c.out, "Could not create user: %v\n", err)
			return
		}
	}

	if answer, ok := c.prompt("Would you like to see the available exercises? (yes/no): "); ok && strings.EqualFold(answer, "yes") {
		c.printCatalog()
	}

	notes, ok := c.prompt("Notes for this workout (optional): ")
	if !ok {
		return
	}
	w := models.NewWorkout(notes)

	for {
		name, ok := c.prompt("\nEnter the exercise name, or type 'done': ")
		if !ok {
			break
		}
		if strings.EqualFold(name, "done") {
			break
		}

		entry, group, found := c.cat.FindExercise(name)
		if !found {
			fmt.Fprintf(c.out, "Exercise %q not found. Please try again.\n", name)
			continue
		}

		duration, ok := c.promptInt(fmt.Sprintf("Enter the duration you performed %s (in minutes): ", entry.Name))
		if !ok {
			break
		}
		heartRate, ok := c.promptOptionalFloat("Average heart rate during the exercise (blank to skip): ")
		if !ok {
			break
		}

		ex, err := entry.Exercise(group, duration)
		if err != nil {
			fmt.Fprintf(c.out, "Invalid exercise: %v\n", err)
			continue
		}
		if err := w.AddExercise(ex, u.WeightKg(), heartRate); err != nil {
			fmt.Fprintf(c.out, "Could not add exercise: %v\n", err)
			continue
		}
		fmt.Fprintf(c.out, "Added %s (%d min) to the workout.\n", entry.Name, duration)
	}

	if w.ExerciseCount() == 0 {
		fmt.Fprintln(c.out, "No exercises entered; workout discarded.")
		return
	}

	u.AddWorkout(w)
	s := w.Summary()
	fmt.Fprintf(c.out, "Workout logged for %s: %d min, %.2f calories burned.\n", u.Name(), s.TotalDurationMin, s.TotalCalories)
}

func (c *CLI) viewWorkouts() {
	u, ok := c.existingUser()
	if !ok {
		return
	}

	workouts := u.Workouts()
	if len(workouts) == 0 {
		fmt.Fprintf(c.out, "No workouts have been logged for %s.\n", u.Name())
		return
	}

	fmt.Fprintf(c.out, "\nWorkouts for %s (weight %g kg):\n", u.Name(), u.WeightKg())
	for i, w := range workouts {
		s := w.Summary()
		fmt.Fprintf(c.out, "%d. %s: %d min, %.2f calories", i+1, s.Date.Format("2006-01-02"), s.TotalDurationMin, s.TotalCalories)
		if s.AverageHeartRate != nil {
			fmt.Fprintf(c.out, ", avg HR %.0f bpm", *s.AverageHeartRate)
		}
		fmt.Fprintln(c.out)
		for _, ex := range w.Exercises() {
			fmt.Fprintf(c.out, "   - %s (%s): %d min, %g cal/min\n", ex.Name(), ex.MuscleGroup(), ex.DurationMin(), ex.CalPerMin())
		}
		if s.Notes != "" {
			fmt.Fprintf(c.out, "   notes: %s\n", s.Notes)
		}
	}
	fmt.Fprintf(c.out, "Total: %d workouts, %d min, %.2f calories burned.\n", u.WorkoutCount(), u.TotalDurationMin(), u.TotalCalories())
}

func (c *CLI) setGoal() {
	u, ok := c.existingUser()
	if !ok {
		return
	}

	metricRaw, ok := c.prompt("Goal metric (calories, workouts, minutes): ")
	if !ok {
		return
	}
	metric, err := tracker.ParseGoalMetric(models.NormalizeKey(metricRaw))
	if err != nil {
		fmt.Fprintf(c.out, "Unknown metric %q.\n", metricRaw)
		return
	}

	target, ok := c.promptFloat("Target value: ")
	if !ok {
		return
	}
	deadline, ok := c.promptDate("Deadline (YYYY-MM-DD): ")
	if !ok {
		return
	}

	g, err := u.SetGoal(metric, target, deadline)
	if err != nil {
		fmt.Fprintf(c.out, "Could not set goal: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Goal set: %s from %g to %g by %s.\n", g.Metric, g.Start, g.Target, g.Deadline.Format("2006-01-02"))
}

func (c *CLI) showProgress() {
	u, ok := c.existingUser()
	if !ok {
		return
	}

	history := u.ProgressHistory()
	if len(history) == 0 {
		fmt.Fprintf(c.out, "No progress recorded for %s yet.\n", u.Name())
	} else {
		fmt.Fprintf(c.out, "\nProgress for %s:\n", u.Name())
		for _, p := range history {
			fmt.Fprintf(c.out, "- %s: %d min, %.2f calories\n", p.Date.Format("2006-01-02"), p.DurationMin, p.Calories)
		}
	}

	for _, gp := range u.GoalProgressReport() {
		status := string(gp.Status)
		fmt.Fprintf(c.out, "Goal %s: %.1f / %g (%.0f%%, %s)\n", gp.Metric, gp.Current, gp.Target, gp.Ratio*100, status)
	}
}

// existingUser prompts for a name and requires it to be registered;
// the original flow asks new users to log a workout first.
func (c *CLI) existingUser() (*tracker.User, bool) {
	name, ok := c.prompt("Enter your name: ")
	if !ok {
		return nil, false
	}
	u, found := c.store.Get(name)
	if !found {
		fmt.Fprintf(c.out, "No user data found for %q. Please log a workout first.\n", name)
		return nil, false
	}
	return u, true
}

func (c *CLI) printCatalog() {
	fmt.Fprintln(c.out, "\nAvailable Exercises:")
	for _, group := range c.cat.Groups() {
		fmt.Fprintf(c.out, "\n%s:\n", group)
		for _, e := range c.cat.Group(group) {
			fmt.Fprintf(c.out, "  - %s (%d min, %g cal/min)\n", e.Name, e.DurationMin, e.CaloriesPerMinute)
		}
	}
}

// prompt writes the label and reads one trimmed line. ok is false once
// input is exhausted.
func (c *CLI) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *CLI) promptFloat(label string) (float64, bool) {
	for {
		raw, ok := c.prompt(label)
		if !ok {
			return 0, false
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v <= 0 {
			fmt.Fprintln(c.out, "Invalid number. Please try again.")
			continue
		}
		return v, true
	}
}

func (c *CLI) promptInt(label string) (int, bool) {
	for {
		raw, ok := c.prompt(label)
		if !ok {
			return 0, false
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			fmt.Fprintln(c.out, "Invalid duration. Please enter a positive number of minutes.")
			continue
		}
		return v, true
	}
}

func (c *CLI) promptOptionalFloat(label string) (*float64, bool) {
	for {
		raw, ok := c.prompt(label)
		if !ok {
			return nil, false
		}
		if raw == "" {
			return nil, true
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v <= 0 {
			fmt.Fprintln(c.out, "Invalid number. Please try again (or leave blank).")
			continue
		}
		return &v, true
	}
}

func (c *CLI) promptDate(label string) (time.Time, bool) {
	for {
		raw, ok := c.prompt(label)
		if !ok {
			return time.Time{}, false
		}
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			fmt.Fprintln(c.out, "Invalid date. Use YYYY-MM-DD.")
			continue
		}
		return t, true
	}
}

// promptLevel asks for a fitness level, defaulting to intermediate on a
// blank or unrecognized answer.
func (c *CLI) promptLevel() models.FitnessLevel {
	raw, ok := c.prompt("Fitness level (beginner, intermediate, advanced) [intermediate]: ")
	if !ok || raw == "" {
		return models.LevelIntermediate
	}
	level, err := models.ParseFitnessLevel(raw)
	if err != nil {
		fmt.Fprintf(c.out, "Unknown level %q, using intermediate.\n", raw)
		return models.LevelIntermediate
	}
	return level
}

// splitCSV parses a comma-separated list, trimming items and dropping
// empties. A blank input returns nil, meaning no constraint.
func splitCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
