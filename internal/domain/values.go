package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// StringSet - фасет, который бэкенд отдаёт либо строкой, либо массивом строк.
// Любая другая форма (число, объект) декодируется в nil без ошибки: фид не валидируется,
// и битое поле должно ломать только свой предикат, а не весь ответ.
type StringSet []string

// UnmarshalJSON принимает "value", ["a","b"] или null
func (s *StringSet) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = nil
		return nil
	}

	switch data[0] {
	case '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			*s = nil
			return nil
		}
		if v == "" {
			*s = StringSet{}
			return nil
		}
		*s = StringSet{v}
	case '[':
		var raw []interface{}
		if err := json.Unmarshal(data, &raw); err != nil {
			*s = nil
			return nil
		}
		out := make(StringSet, 0, len(raw))
		for _, item := range raw {
			if str, ok := item.(string); ok {
				out = append(out, str)
			}
		}
		*s = out
	default:
		*s = nil
	}

	return nil
}

// Contains - точное совпадение с одним из элементов (без trim и case folding)
func (s StringSet) Contains(v string) bool {
	for _, item := range s {
		if item == v {
			return true
		}
	}
	return false
}

// Number - необязательное числовое поле из внешнего фида.
// Принимает число, числовую строку или null; всё остальное даёт Valid=false.
type Number struct {
	Value float64
	Valid bool
}

// NewNumber создаёт заполненный Number
func NewNumber(v float64) Number {
	return Number{Value: v, Valid: true}
}

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*n = Number{}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return nil
		}
		if v, err := strconv.ParseFloat(str, 64); err == nil && isFinite(v) {
			*n = NewNumber(v)
		}
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	*n = NewNumber(v)
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid || !isFinite(n.Value) {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(n.Value, 'f', -1, 64)), nil
}

// InRange - включительная проверка границ; невалидное значение не попадает ни в один диапазон
func (n Number) InRange(min, max float64) bool {
	return n.Valid && n.Value >= min && n.Value <= max
}

// isFinite отсекает "NaN" и "Inf": их нельзя записать обратно в JSON
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Text - скалярное текстовое поле фида. Строка берётся как есть, число - в
// десятичной записи (числовые id), любая другая форма даёт пустую строку.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*t = ""
	if len(data) == 0 {
		return nil
	}

	switch {
	case data[0] == '"':
		var v string
		if err := json.Unmarshal(data, &v); err == nil {
			*t = Text(v)
		}
	case data[0] == '-' || (data[0] >= '0' && data[0] <= '9'):
		var v json.Number
		if err := json.Unmarshal(data, &v); err == nil {
			*t = Text(v.String())
		}
	}
	return nil
}

// decodeItems декодирует массив поэлементно, пропуская битые элементы.
// Не-массив даёт nil.
func decodeItems[T any](data json.RawMessage) []T {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	out := make([]T, 0, len(raw))
	for _, item := range raw {
		var v T
		if err := json.Unmarshal(item, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}
