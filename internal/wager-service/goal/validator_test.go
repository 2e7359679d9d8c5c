package goal

import "testing"

func TestAssessTiers(t *testing.T) {
	cases := []struct {
		name      string
		initial   float64
		target    float64
		weeks     int
		realistic bool
		message   string
		weekly    float64
	}{
		{"below first bound", 90, 89, 5, true, MsgTooConservative, 0.2},
		{"exactly 0.3", 90, 87, 10, true, MsgConservative, 0.3},
		{"exactly 0.5", 90, 85, 10, true, MsgConservative, 0.5},
		{"just above 0.5", 90, 84, 10, true, MsgIdeal, 0.6},
		{"exactly 1.0", 90, 80, 10, true, MsgIdeal, 1.0},
		{"just above 1.0", 90, 79, 10, true, MsgAggressive, 1.1},
		{"exactly 1.5", 90, 75, 10, true, MsgAggressive, 1.5},
		{"above 1.5", 90, 74, 10, false, MsgTooAggressive, 1.6},
		{"scenario aggressive", 90, 80, 8, true, MsgAggressive, 1.25},
		{"scenario unrealistic", 90, 70, 8, false, MsgTooAggressive, 2.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := Assess(tc.initial, tc.target, tc.weeks)
			if err != nil {
				t.Fatalf("Assess failed: %v", err)
			}
			if a.Realistic != tc.realistic {
				t.Errorf("realistic: expected %v, got %v", tc.realistic, a.Realistic)
			}
			if a.Message != tc.message {
				t.Errorf("message: expected %q, got %q", tc.message, a.Message)
			}
			if a.WeeklyLossRequired != tc.weekly {
				t.Errorf("weekly loss: expected %.2f, got %.2f", tc.weekly, a.WeeklyLossRequired)
			}
		})
	}
}

func TestAssessRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name    string
		initial float64
		target  float64
		weeks   int
	}{
		{"target above initial", 80, 90, 4},
		{"target equal initial", 80, 80, 4},
		{"zero weeks", 90, 80, 0},
		{"negative initial", -90, 80, 4},
		{"zero target", 90, 0, 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Assess(tc.initial, tc.target, tc.weeks); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
