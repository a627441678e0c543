package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidJSON возвращается, если в колонке лежит не тот JSON
var ErrInvalidJSON = errors.New("invalid json payload")

// JSONList упорядоченный список, хранимый в текстовой колонке как JSON-массив
type JSONList[T any] []T

// Scan реализует sql.Scanner
func (l *JSONList[T]) Scan(src interface{}) error {
	raw, err := rawBytes(src)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		*l = nil
		return nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	*l = items
	return nil
}

// Value реализует driver.Valuer. Пустой список хранится как NULL
func (l JSONList[T]) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	b, err := json.Marshal([]T(l))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return string(b), nil
}

// ParseJSONList разбирает сохраненный JSON-массив.
// Битые данные не считаются ошибкой чтения: возвращается nil
func ParseJSONList[T any](raw string) JSONList[T] {
	var l JSONList[T]
	if err := l.Scan(raw); err != nil {
		return nil
	}
	return l
}

// JSONMap произвольный JSON-объект (ответы на кастомные вопросы формы)
type JSONMap map[string]interface{}

// Scan реализует sql.Scanner
func (m *JSONMap) Scan(src interface{}) error {
	raw, err := rawBytes(src)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		*m = nil
		return nil
	}

	var obj map[string]interface{}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	*m = obj
	return nil
}

// Value реализует driver.Valuer
func (m JSONMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(map[string]interface{}(m))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return string(b), nil
}

func rawBytes(src interface{}) ([]byte, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	default:
		return nil, fmt.Errorf("%w: cannot scan %T", ErrInvalidJSON, src)
	}
}
