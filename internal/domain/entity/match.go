package entity

import "errors"

// ErrorSentinel код символа или метки, для которых не нашлось подходящего шаблона
const ErrorSentinel = "error"

var (
	// ErrNoLabelFound на кадре не найдено ни одного контура этикетки
	ErrNoLabelFound = errors.New("no label found")
	// ErrEmptyFrame пустое или нечитаемое изображение
	ErrEmptyFrame = errors.New("empty frame")
)

// MatchResult лучший шаблон для символа и его оценка в [0, 1]
type MatchResult struct {
	Code  string
	Score float64
}

// Miss результат без совпадения с сохранённой лучшей оценкой
func Miss(score float64) MatchResult {
	return MatchResult{Code: ErrorSentinel, Score: score}
}

// Matched сообщает, что шаблон принят
func (m MatchResult) Matched() bool {
	return m.Code != "" && m.Code != ErrorSentinel
}
