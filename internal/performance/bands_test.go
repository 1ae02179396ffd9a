package performance

import "testing"

func TestIndicator_AllBoundaries(t *testing.T) {
	tests := []struct {
		pct   float64
		token string
	}{
		{25.0, IndicatorSurge},
		{10.0001, IndicatorSurge},
		{10.0, IndicatorSurge},
		{9.9999, IndicatorUp},
		{5.0, IndicatorUp},
		{0.0, IndicatorUp},
		{-0.0001, IndicatorDown},
		{-5.0, IndicatorDown},
		{-10.0, IndicatorDown},
		{-10.0001, IndicatorWarning},
		{-20.0, IndicatorWarning},
	}
	for _, tt := range tests {
		if got := Indicator(tt.pct); got != tt.token {
			t.Errorf("Indicator(%.4f): expected %q, got %q", tt.pct, tt.token, got)
		}
	}
}

func TestGradeOf_SeparatePolicy(t *testing.T) {
	tests := []struct {
		pct   float64
		grade Grade
	}{
		{15.0, GradeStrong},
		{10.0, GradeStrong},
		{9.9999, GradeSteady},
		{0.0, GradeSteady},
		{-0.0001, GradeWeak},
		{-20.0, GradeWeak},
	}
	for _, tt := range tests {
		if got := GradeOf(tt.pct); got != tt.grade {
			t.Errorf("GradeOf(%.4f): expected %q, got %q", tt.pct, tt.grade, got)
		}
	}

	// The two policies intentionally disagree between -10 and 0: a
	// small loss still shows the plain down indicator but grades Weak.
	if Indicator(-5) != IndicatorDown {
		t.Errorf("expected plain down indicator at -5%%, got %q", Indicator(-5))
	}
	if GradeOf(-5) != GradeWeak {
		t.Errorf("expected Weak grade at -5%%, got %q", GradeOf(-5))
	}
}
