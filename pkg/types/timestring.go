package types

import (
	"fmt"
	"time"
)

const timeFormat = "15:04"

// TimeString время в формате "HH:MM" (без даты и секунд).
// Строковое представление с ведущими нулями, поэтому лексикографическое
// сравнение совпадает с хронологическим.
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeFormat))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	if _, err := time.Parse(timeFormat, s); err != nil {
		return "", fmt.Errorf("invalid time string %q: %w", s, err)
	}
	return TimeString(s), nil
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// Minutes возвращает количество минут с начала суток
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(timeFormat, string(t))
	if err != nil {
		return 0, fmt.Errorf("invalid time string %q: %w", string(t), err)
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// AddMinutes возвращает время через m минут (в пределах суток, по модулю 24ч)
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}
	total = (total + m) % (24 * 60)
	if total < 0 {
		total += 24 * 60
	}
	return fromMinutes(total), nil
}

// Midpoint возвращает середину интервала [a, b].
// Считается по суммарным минутам с нормализацией, чтобы середина
// интервала 09:45-10:15 была "10:00", а не "09:60".
func Midpoint(a, b TimeString) (TimeString, error) {
	am, err := a.Minutes()
	if err != nil {
		return "", err
	}
	bm, err := b.Minutes()
	if err != nil {
		return "", err
	}
	return fromMinutes((am + bm) / 2), nil
}

func fromMinutes(m int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60))
}
