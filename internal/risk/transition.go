package risk

import "sentinelrisk/internal/models"

// IsValidTransition проверяет, разрешён ли переход статуса. Функция чистая
// и тотальная: любая пара вне таблицы (включая self-переходы, откаты и
// пропуски шагов) запрещена. Из терминальных статусов (Accepted, Rejected,
// Transferred, Closed) переходов нет.
//
// Identified -> Assessed -> InTreatment -> Monitoring -> Accepted | Rejected | Transferred
//                           InTreatment -> Closed
func IsValidTransition(current, next models.RiskStatus) bool {
	switch current {
	case models.StatusIdentified:
		return next == models.StatusAssessed
	case models.StatusAssessed:
		return next == models.StatusInTreatment
	case models.StatusInTreatment:
		return next == models.StatusMonitoring || next == models.StatusClosed
	case models.StatusMonitoring:
		return next == models.StatusAccepted ||
			next == models.StatusRejected ||
			next == models.StatusTransferred
	default:
		return false
	}
}
