package models

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ID - непрозрачный идентификатор записи. Сервер отдает его то числом, то строкой.
type ID string

// UnmarshalJSON принимает как число, так и строку
func (id *ID) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		*id = ""
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("invalid id %s: %w", raw, err)
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("invalid id %s: %w", raw, err)
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON отдает канонические числовые идентификаторы числом, остальные строкой ("007" остается строкой)
func (id ID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id ID) String() string {
	return string(id)
}

// IsZero сообщает, что идентификатор не задан
func (id ID) IsZero() bool {
	return id == ""
}

// Int возвращает числовое значение идентификатора, если оно есть
func (id ID) Int() (int, bool) {
	n, err := strconv.Atoi(string(id))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Coordinate - координата в десятичных градусах.
// DecimalField сериализуется сервером строкой ("14.599512"), поэтому принимаем оба вида.
type Coordinate float64

func (c *Coordinate) UnmarshalJSON(b []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if raw == "" || raw == "null" {
		*c = 0
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid coordinate %q: %w", raw, err)
	}
	*c = Coordinate(f)
	return nil
}

func (c Coordinate) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(c), 'f', -1, 64)), nil
}

func (c Coordinate) Float64() float64 {
	return float64(c)
}

// Upload - файл, прикладываемый к multipart-запросу
type Upload struct {
	Field       string
	Filename    string
	ContentType string
	Content     io.Reader
}
