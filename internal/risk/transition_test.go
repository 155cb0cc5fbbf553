package risk

import (
	"testing"

	"sentinelrisk/internal/models"
)

// Разрешённые рёбра конечного автомата — ровно семь.
var allowedEdges = map[[2]models.RiskStatus]bool{
	{models.StatusIdentified, models.StatusAssessed}:    true,
	{models.StatusAssessed, models.StatusInTreatment}:   true,
	{models.StatusInTreatment, models.StatusMonitoring}: true,
	{models.StatusInTreatment, models.StatusClosed}:     true,
	{models.StatusMonitoring, models.StatusAccepted}:    true,
	{models.StatusMonitoring, models.StatusRejected}:    true,
	{models.StatusMonitoring, models.StatusTransferred}: true,
}

// Полный перебор 8×8: true только для рёбер из таблицы.
func TestIsValidTransition_Exhaustive(t *testing.T) {
	for _, current := range models.AllStatuses {
		for _, next := range models.AllStatuses {
			want := allowedEdges[[2]models.RiskStatus{current, next}]
			if got := IsValidTransition(current, next); got != want {
				t.Errorf("IsValidTransition(%s, %s) = %v, want %v", current, next, got, want)
			}
		}
	}
}

func TestIsValidTransition_TerminalStatesHaveNoExits(t *testing.T) {
	terminal := []models.RiskStatus{
		models.StatusAccepted,
		models.StatusRejected,
		models.StatusTransferred,
		models.StatusClosed,
	}
	for _, current := range terminal {
		for _, next := range models.AllStatuses {
			if IsValidTransition(current, next) {
				t.Errorf("terminal status %s must not allow transition to %s", current, next)
			}
		}
	}
}

func TestIsValidTransition_SelfTransitionsRejected(t *testing.T) {
	for _, s := range models.AllStatuses {
		if IsValidTransition(s, s) {
			t.Errorf("self transition %s -> %s must be rejected", s, s)
		}
	}
}

func TestIsValidTransition_UnknownStatus(t *testing.T) {
	if IsValidTransition(models.RiskStatus("Bogus"), models.StatusAssessed) {
		t.Error("unknown current status must be rejected")
	}
	if IsValidTransition(models.StatusIdentified, models.RiskStatus("Bogus")) {
		t.Error("unknown next status must be rejected")
	}
}
