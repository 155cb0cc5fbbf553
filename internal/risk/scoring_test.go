package risk

import "testing"

func TestRiskScore(t *testing.T) {
	tests := []struct {
		impact, probability int
		want                int
	}{
		{4, 3, 12},
		{1, 1, 1},
		{5, 5, 25},
		{2, 5, 10},
	}

	for _, tt := range tests {
		if got := RiskScore(tt.impact, tt.probability); got != tt.want {
			t.Errorf("RiskScore(%d, %d) = %d, want %d", tt.impact, tt.probability, got, tt.want)
		}
	}
}

// Формула оценки зафиксирована: RPN = severity * likelihood * detectability.
func TestEvaluationScore(t *testing.T) {
	tests := []struct {
		severity, likelihood, detectability int
		want                                int
	}{
		{3, 4, 2, 24},
		{1, 1, 1, 1},
		{5, 5, 5, 125},
		{2, 3, 4, 24},
	}

	for _, tt := range tests {
		got := EvaluationScore(tt.severity, tt.likelihood, tt.detectability)
		if got != tt.want {
			t.Errorf("EvaluationScore(%d, %d, %d) = %d, want %d",
				tt.severity, tt.likelihood, tt.detectability, got, tt.want)
		}
	}
}

func TestRatingInRange(t *testing.T) {
	tests := []struct {
		v    int
		want bool
	}{
		{0, false},
		{1, true},
		{3, true},
		{5, true},
		{6, false},
		{-1, false},
	}

	for _, tt := range tests {
		if got := RatingInRange(tt.v); got != tt.want {
			t.Errorf("RatingInRange(%d) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
