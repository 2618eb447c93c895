package geo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

// UnavailableMessage - текст, который форма показывает рядом с полями координат
const UnavailableMessage = "Unable to retrieve location. Please enter manually."

var ErrLocationUnavailable = errors.New("geo: location unavailable")

// Coordinates - точка в десятичных градусах
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Rounded возвращает координаты, округленные до 6 знаков
func (c Coordinates) Rounded() Coordinates {
	return Coordinates{Latitude: Round6(c.Latitude), Longitude: Round6(c.Longitude)}
}

// Valid проверяет диапазоны широты и долготы
func (c Coordinates) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}

// Round6 округляет до 6 знаков после запятой так же, как toFixed(6)
func Round6(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 6, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// Format6 возвращает строку для отправки формы: 6 знаков без хвостовых нулей
func Format6(v float64) string {
	return strconv.FormatFloat(Round6(v), 'f', -1, 64)
}

// Locator определяет текущее местоположение устройства
type Locator interface {
	Locate(ctx context.Context) (Coordinates, error)
}

// StaticLocator отдает заранее настроенную точку; нулевая точка считается недоступной
type StaticLocator struct {
	Point Coordinates
}

func NewStaticLocator(lat, lon float64) *StaticLocator {
	return &StaticLocator{Point: Coordinates{Latitude: lat, Longitude: lon}}
}

func (l *StaticLocator) Locate(ctx context.Context) (Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return Coordinates{}, err
	}
	if l.Point.Latitude == 0 && l.Point.Longitude == 0 {
		return Coordinates{}, ErrLocationUnavailable
	}
	if !l.Point.Valid() {
		return Coordinates{}, fmt.Errorf("%w: point out of range", ErrLocationUnavailable)
	}
	return l.Point.Rounded(), nil
}

// Resolution - результат определения координат для формы
type Resolution struct {
	Coordinates Coordinates `json:"coordinates"`
	Located     bool        `json:"located"`
	Message     string      `json:"message,omitempty"`
}

// Resolve спрашивает Locator; при отказе поля остаются для ручного ввода
func Resolve(ctx context.Context, l Locator) Resolution {
	if l == nil {
		return Resolution{Message: UnavailableMessage}
	}
	c, err := l.Locate(ctx)
	if err != nil {
		return Resolution{Message: UnavailableMessage}
	}
	return Resolution{Coordinates: c.Rounded(), Located: true}
}
