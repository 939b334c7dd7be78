package productivity

import "testing"

func intPtr(v int) *int { return &v }

func TestExperienceLevel(t *testing.T) {
	cases := []struct {
		months *int
		want   string
	}{
		{nil, "experienced"},
		{intPtr(0), "novice"},
		{intPtr(2), "novice"},
		{intPtr(3), "intermediate"},
		{intPtr(5), "intermediate"},
		{intPtr(6), "experienced"},
		{intPtr(12), "experienced"},
		{intPtr(13), "expert"},
	}

	for _, tc := range cases {
		if got := ExperienceLevel(tc.months); got != tc.want {
			t.Errorf("ExperienceLevel(%v) = %q, want %q", tc.months, got, tc.want)
		}
	}
}

func TestBaseEstimateEconomyExperienced(t *testing.T) {
	// 20 items * 15s * 1.0 * 1.0 = 300s
	got := BaseEstimate(20, "Economy", nil)

	if got.EstimatedTimeSeconds != 300 {
		t.Errorf("expected 300s, got %d", got.EstimatedTimeSeconds)
	}
	if got.EstimatedTimeMinutes != 5.0 {
		t.Errorf("expected 5.0 min, got %v", got.EstimatedTimeMinutes)
	}
}

func TestBaseEstimateBusinessNovice(t *testing.T) {
	// 10 items * 15s = 150s; *1.3 business = 195s; *1.4 novice = 273s
	got := BaseEstimate(10, "Business", intPtr(1))

	if got.EstimatedTimeSeconds != 273 {
		t.Errorf("expected 273s, got %d", got.EstimatedTimeSeconds)
	}
	if got.ComplexityMultiplier != 1.3 {
		t.Errorf("expected multiplier 1.3, got %v", got.ComplexityMultiplier)
	}
	if got.ExperienceLevel != "novice" {
		t.Errorf("expected novice, got %s", got.ExperienceLevel)
	}
}

func TestBaseEstimateExpertIsFaster(t *testing.T) {
	expert := BaseEstimate(20, "Economy", intPtr(24))
	novice := BaseEstimate(20, "Economy", intPtr(1))

	if expert.EstimatedTimeSeconds >= novice.EstimatedTimeSeconds {
		t.Fatalf("expert (%d) should beat novice (%d)",
			expert.EstimatedTimeSeconds, novice.EstimatedTimeSeconds)
	}
}

func TestCompareBands(t *testing.T) {
	// Baseline: 20 items Economy experienced = 300s.
	cases := []struct {
		actual int
		want   string
	}{
		{200, "excellent"},          // -33%
		{300, "on_target"},          // 0%
		{340, "on_target"},          // +13.3%
		{400, "needs_improvement"},  // +33%
	}

	for _, tc := range cases {
		got := Compare(tc.actual, 20, "Economy", nil)
		if got.Performance != tc.want {
			t.Errorf("actual=%d: expected %q, got %q (%.1f%%)",
				tc.actual, tc.want, got.Performance, got.Difference.Percent)
		}
	}
}

func TestValidFlightType(t *testing.T) {
	if !ValidFlightType("Economy") {
		t.Error("Economy should be valid")
	}
	if ValidFlightType("Cargo") {
		t.Error("Cargo should be rejected")
	}
}
