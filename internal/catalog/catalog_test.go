package catalog

import (
	"strings"
	"testing"
)

const sampleJSON = `{
  "Upper Body": [
    {"name": "Push-ups", "duration": 10, "calories_burned_per_minute": 5.0, "intensity": "medium", "equipment_needed": ["mat"]},
    {"name": "Pull-ups", "duration": 5, "calories_burned_per_minute": 7.0, "intensity": "high", "equipment_needed": ["pull-up bar"]}
  ],
  "Legs": [
    {"name": "Squats", "duration": 15, "calories_burned_per_minute": 8.0}
  ],
  "Core": [
    {"name": "Plank", "duration": 5, "calories_burned_per_minute": 4.0, "intensity": "low"}
  ]
}`

func parseSample(t *testing.T) *Catalog {
	t.Helper()
	cat, err := Parse(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return cat
}

// TestGroupLookup verifies lookup by exact and case-folded group names,
// preserving catalog entry order.
func TestGroupLookup(t *testing.T) {
	cat := parseSample(t)

	entries := cat.Group("Upper Body")
	if len(entries) != 2 {
		t.Fatalf("Group(Upper Body) returned %d entries, want 2", len(entries))
	}
	if entries[0].Name != "Push-ups" || entries[1].Name != "Pull-ups" {
		t.Errorf("entry order = [%s, %s], want [Push-ups, Pull-ups]", entries[0].Name, entries[1].Name)
	}

	// Same bucket regardless of casing and padding.
	if got := cat.Group("  upper body "); len(got) != 2 {
		t.Errorf("case-folded lookup returned %d entries, want 2", len(got))
	}
}

// TestGroupMiss verifies that an unknown muscle group yields an empty
// result rather than an error.
func TestGroupMiss(t *testing.T) {
	cat := parseSample(t)
	if got := cat.Group("Shoulders"); got != nil {
		t.Errorf("Group(Shoulders) = %v, want nil", got)
	}
	if _, ok := cat.GroupName("Shoulders"); ok {
		t.Error("GroupName(Shoulders) reported existing group")
	}
}

// TestGroups verifies the sorted display-name listing.
func TestGroups(t *testing.T) {
	cat := parseSample(t)
	got := cat.Groups()
	want := []string{"Core", "Legs", "Upper Body"}
	if len(got) != len(want) {
		t.Fatalf("Groups() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Groups()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

// TestFindExercise verifies the case-insensitive cross-group name search.
func TestFindExercise(t *testing.T) {
	cat := parseSample(t)

	e, group, ok := cat.FindExercise("squats")
	if !ok {
		t.Fatal("FindExercise(squats): not found")
	}
	if e.Name != "Squats" || group != "Legs" {
		t.Errorf("FindExercise(squats) = (%s, %s), want (Squats, Legs)", e.Name, group)
	}

	if _, _, ok := cat.FindExercise("Deadlift"); ok {
		t.Error("FindExercise(Deadlift): expected no result")
	}
}

// TestEntryExercise verifies conversion to a validated exercise, with
// missing intensity defaulting to medium.
func TestEntryExercise(t *testing.T) {
	cat := parseSample(t)

	e, group, _ := cat.FindExercise("Squats")
	ex, err := e.Exercise(group, 12)
	if err != nil {
		t.Fatalf("Exercise: %v", err)
	}
	if ex.DurationMin() != 12 {
		t.Errorf("duration = %d, want 12", ex.DurationMin())
	}
	if got := string(ex.Intensity()); got != "medium" {
		t.Errorf("default intensity = %q, want medium", got)
	}

	if _, err := e.Exercise(group, 0); err == nil {
		t.Error("Exercise with zero duration: expected error")
	}
}

// TestParseRejectsInvalidEntries verifies that malformed catalog records
// fail the load with context in the error.
func TestParseRejectsInvalidEntries(t *testing.T) {
	cases := []struct {
		name string
		json string
	}{
		{"zero duration", `{"Legs": [{"name": "Squats", "duration": 0, "calories_burned_per_minute": 8.0}]}`},
		{"negative calories", `{"Legs": [{"name": "Squats", "duration": 10, "calories_burned_per_minute": -1}]}`},
		{"bad intensity", `{"Legs": [{"name": "Squats", "duration": 10, "calories_burned_per_minute": 8.0, "intensity": "extreme"}]}`},
		{"missing name", `{"Legs": [{"duration": 10, "calories_burned_per_minute": 8.0}]}`},
		{"not JSON", `{"Legs": [`},
	}
	for _, tc := range cases {
		if _, err := Parse(strings.NewReader(tc.json)); err == nil {
			t.Errorf("%s: expected parse error", tc.name)
		}
	}
}
