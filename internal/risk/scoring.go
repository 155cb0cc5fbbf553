package risk

// Rating bounds for impact, probability, severity, likelihood, detectability.
const (
	RatingMin = 1
	RatingMax = 5
)

// RiskScore — score риска: impact * probability (1..25). Значение никогда
// не хранится в БД, всегда выводится из текущих полей записи.
func RiskScore(impact, probability int) int {
	return impact * probability
}

// EvaluationScore — score оценки по конвенции RPN (risk priority number):
// severity * likelihood * detectability (1..125). Хранится в строке оценки
// и пересчитывается при каждом её изменении.
func EvaluationScore(severity, likelihood, detectability int) int {
	return severity * likelihood * detectability
}

// RatingInRange — валидация рейтинга на границе API.
func RatingInRange(v int) bool {
	return v >= RatingMin && v <= RatingMax
}
