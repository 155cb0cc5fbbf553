package risk

import "errors"

var (
	// ErrRiskNotFound — риск с таким ID не существует.
	ErrRiskNotFound = errors.New("risk not found")

	// ErrEvaluationNotFound — у риска нет оценки.
	ErrEvaluationNotFound = errors.New("evaluation not found")

	// ErrInvalidTransition — запрошенный переход не входит в таблицу разрешённых.
	ErrInvalidTransition = errors.New("status transition not allowed")

	// ErrTransitionConflict — статус изменился между чтением и записью,
	// переход не применён.
	ErrTransitionConflict = errors.New("concurrent status change, transition not applied")
)
