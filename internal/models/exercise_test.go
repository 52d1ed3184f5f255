package models

import (
	"math"
	"testing"
)

func ptr(v float64) *float64 { return &v }

func mustExercise(t *testing.T, name, group string, dur int, cal float64, intensity Intensity, equipment []string) Exercise {
	t.Helper()
	ex, err := NewExercise(name, group, dur, cal, intensity, equipment)
	if err != nil {
		t.Fatalf("NewExercise: %v", err)
	}
	return ex
}

// TestCaloriesBaseline verifies the reference-weight identity: at 70 kg
// with no heart-rate sample and medium intensity, calories burned equal
// duration times the per-minute rate.
func TestCaloriesBaseline(t *testing.T) {
	cases := []struct {
		dur  int
		cal  float64
		want float64
	}{
		{10, 5.0, 50.0},
		{30, 8.5, 255.0},
		{1, 1.0, 1.0},
	}
	for _, tc := range cases {
		ex := mustExercise(t, "Push-ups", "Upper Body", tc.dur, tc.cal, IntensityMedium, nil)
		if got := ex.CaloriesBurned(70, nil); got != tc.want {
			t.Errorf("CaloriesBurned(70, nil) with dur=%d cal=%g = %g, want %g", tc.dur, tc.cal, got, tc.want)
		}
	}
}

// TestCaloriesWorkedExample pins the documented worked example:
// Push-ups 10 min at 5.0 cal/min, medium intensity, 70 kg is 50 kcal,
// and a 150 bpm sample scales it by 1.2 to 60 kcal.
func TestCaloriesWorkedExample(t *testing.T) {
	ex := mustExercise(t, "Push-ups", "Upper Body", 10, 5.0, IntensityMedium, []string{"mat"})
	if got := ex.CaloriesBurned(70, nil); got != 50.0 {
		t.Errorf("CaloriesBurned(70, nil) = %g, want 50.0", got)
	}
	if got := ex.CaloriesBurned(70, ptr(150)); got != 60.0 {
		t.Errorf("CaloriesBurned(70, 150) = %g, want 60.0", got)
	}
}

// TestHeartRateFactorMonotonic verifies that calories strictly increase
// across the heart-rate step boundaries for otherwise fixed inputs.
func TestHeartRateFactorMonotonic(t *testing.T) {
	ex := mustExercise(t, "Rowing", "Upper Body", 20, 6.0, IntensityHigh, nil)
	low := ex.CaloriesBurned(80, ptr(130))
	mid := ex.CaloriesBurned(80, ptr(145))
	high := ex.CaloriesBurned(80, ptr(165))
	if !(0 < low && low < mid && mid < high) {
		t.Errorf("expected 0 < %g < %g < %g", low, mid, high)
	}
}

// TestHeartRateStepBoundaries verifies the step function at and just
// above each threshold: the factor changes strictly above 120/140/160.
func TestHeartRateStepBoundaries(t *testing.T) {
	cases := []struct {
		hr     *float64
		factor float64
	}{
		{nil, 1.0},
		{ptr(90), 1.0},
		{ptr(120), 1.0},
		{ptr(121), 1.1},
		{ptr(140), 1.1},
		{ptr(141), 1.2},
		{ptr(160), 1.2},
		{ptr(161), 1.3},
	}
	ex := mustExercise(t, "Squats", "Legs", 10, 10.0, IntensityMedium, nil)
	for _, tc := range cases {
		want := 100.0 * tc.factor
		got := ex.CaloriesBurned(70, tc.hr)
		if math.Abs(got-want) > 1e-9 {
			hr := "nil"
			if tc.hr != nil {
				hr = "set"
			}
			t.Errorf("CaloriesBurned(70, %s hr=%v) = %g, want %g", hr, tc.hr, got, want)
		}
	}
}

// TestIntensityFactorScaling verifies the low/medium/high multipliers.
func TestIntensityFactorScaling(t *testing.T) {
	cases := []struct {
		intensity Intensity
		want      float64
	}{
		{IntensityLow, 40.0},
		{IntensityMedium, 50.0},
		{IntensityHigh, 60.0},
	}
	for _, tc := range cases {
		ex := mustExercise(t, "Plank", "Core", 10, 5.0, tc.intensity, nil)
		if got := ex.CaloriesBurned(70, nil); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("intensity %s: got %g, want %g", tc.intensity, got, tc.want)
		}
	}
}

// TestWeightScaling verifies the weight/70 scaling term.
func TestWeightScaling(t *testing.T) {
	ex := mustExercise(t, "Lunges", "Legs", 10, 7.0, IntensityMedium, nil)
	if got, want := ex.CaloriesBurned(140, nil), 140.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("CaloriesBurned(140, nil) = %g, want %g", got, want)
	}
	if got, want := ex.CaloriesBurned(35, nil), 35.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("CaloriesBurned(35, nil) = %g, want %g", got, want)
	}
}

// TestNewExerciseValidation verifies that invalid construction parameters
// fail and never produce a partially valid exercise.
func TestNewExerciseValidation(t *testing.T) {
	cases := []struct {
		name      string
		dur       int
		cal       float64
		intensity Intensity
	}{
		{"negative duration", -1, 5.0, IntensityMedium},
		{"zero duration", 0, 5.0, IntensityMedium},
		{"zero calories", 10, 0, IntensityMedium},
		{"negative calories", 10, -5.0, IntensityMedium},
		{"unknown intensity", 10, 5.0, Intensity("extreme")},
	}
	for _, tc := range cases {
		_, err := NewExercise("Push-ups", "Upper Body", tc.dur, tc.cal, tc.intensity, nil)
		if err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}

	if _, err := NewExercise("", "Upper Body", 10, 5.0, IntensityMedium, nil); err == nil {
		t.Error("empty name: expected error")
	}
}

// TestExerciseImmutable verifies that the equipment slice handed to the
// constructor and the one returned by Equipment are both detached copies.
func TestExerciseImmutable(t *testing.T) {
	input := []string{"mat"}
	ex := mustExercise(t, "Push-ups", "Upper Body", 10, 5.0, IntensityMedium, input)

	input[0] = "barbell"
	if got := ex.Equipment()[0]; got != "mat" {
		t.Errorf("constructor aliased caller slice: equipment[0] = %q", got)
	}

	out := ex.Equipment()
	out[0] = "bench"
	if got := ex.Equipment()[0]; got != "mat" {
		t.Errorf("Equipment returned aliased slice: equipment[0] = %q", got)
	}
}

// TestParseIntensity verifies case-insensitive parsing and rejection of
// unknown values.
func TestParseIntensity(t *testing.T) {
	cases := []struct {
		raw  string
		want Intensity
	}{
		{"low", IntensityLow},
		{"Medium", IntensityMedium},
		{"HIGH", IntensityHigh},
		{"  high ", IntensityHigh},
	}
	for _, tc := range cases {
		got, err := ParseIntensity(tc.raw)
		if err != nil {
			t.Errorf("ParseIntensity(%q): %v", tc.raw, err)
		}
		if got != tc.want {
			t.Errorf("ParseIntensity(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
	if _, err := ParseIntensity("extreme"); err == nil {
		t.Error("ParseIntensity(extreme): expected error")
	}
}

// TestParseFitnessLevel verifies parsing and the default multiplier for
// unrecognized levels.
func TestParseFitnessLevel(t *testing.T) {
	if _, err := ParseFitnessLevel("expert"); err == nil {
		t.Error("ParseFitnessLevel(expert): expected error")
	}
	l, err := ParseFitnessLevel("Advanced")
	if err != nil {
		t.Fatalf("ParseFitnessLevel: %v", err)
	}
	if l.Multiplier() != 1.2 {
		t.Errorf("advanced multiplier = %g, want 1.2", l.Multiplier())
	}
	if got := FitnessLevel("elite").Multiplier(); got != 1.0 {
		t.Errorf("unrecognized level multiplier = %g, want 1.0", got)
	}
}
