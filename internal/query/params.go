// Package query переводит выборку фильтра в query-параметры lite-эндпоинтов
// бэкенда.
package query

import (
	"net/url"
	"strconv"
	"strings"
)

// Param - один query-параметр
type Param struct {
	Key   string
	Value string
}

// Params - упорядоченный список параметров, Encode сохраняет порядок добавления
type Params []Param

// Add добавляет параметр
func (p *Params) Add(key, value string) {
	*p = append(*p, Param{Key: key, Value: value})
}

// AddFloat добавляет число в кратчайшей десятичной записи
func (p *Params) AddFloat(key string, v float64) {
	p.Add(key, strconv.FormatFloat(v, 'f', -1, 64))
}

// Get возвращает первое значение key
func (p Params) Get(key string) (string, bool) {
	for _, kv := range p {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

// Keys возвращает имена параметров в порядке добавления
func (p Params) Keys() []string {
	keys := make([]string, 0, len(p))
	for _, kv := range p {
		keys = append(keys, kv.Key)
	}
	return keys
}

// Encode собирает query string в порядке добавления
func (p Params) Encode() string {
	var b strings.Builder
	for i, kv := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.Value))
	}
	return b.String()
}

// Values конвертирует в url.Values
func (p Params) Values() url.Values {
	v := make(url.Values, len(p))
	for _, kv := range p {
		v.Add(kv.Key, kv.Value)
	}
	return v
}
