package dto

import (
	"fmt"
	"time"
)

// HolidaysQuery query de GET /api/holidays.
type HolidaysQuery struct {
	Year                int   `query:"year" validate:"required,gte=1,lte=9999"`
	IncludeChristmasEve *bool `query:"include_christmas_eve"`
}

// Validate aplica las reglas de go-playground/validator.
func (q *HolidaysQuery) Validate() error {
	if err := validate.Struct(q); err != nil {
		return validationMessage(err)
	}
	return nil
}

// HolidayResponse feriado observado.
type HolidayResponse struct {
	Name    string `json:"name"`
	Date    string `json:"date" example:"2024-07-04"`
	Weekday string `json:"weekday" example:"Thursday"`
}

// HolidaysResponse feriados de un año.
type HolidaysResponse struct {
	Year                int               `json:"year"`
	IncludeChristmasEve bool              `json:"include_christmas_eve"`
	Holidays            []HolidayResponse `json:"holidays"`
}

// FXRateQuery query de GET /api/fx/rate. Date vacío = hoy.
type FXRateQuery struct {
	Date string `query:"date" validate:"omitempty,isodate"`
}

// Validate aplica las reglas de go-playground/validator.
func (q *FXRateQuery) Validate() error {
	if err := validate.Struct(q); err != nil {
		return validationMessage(err)
	}
	return nil
}

// AsOf fecha pedida o now si no se indicó.
func (q *FXRateQuery) AsOf(now time.Time) (time.Time, error) {
	if q.Date == "" {
		return now, nil
	}
	t, err := time.Parse("2006-01-02", q.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha %q: %w", q.Date, err)
	}
	return t, nil
}

// MonthOptionResponse mes seleccionable.
type MonthOptionResponse struct {
	Value string `json:"value" example:"2024-01"`
	Label string `json:"label" example:"janeiro - 2024"`
}
