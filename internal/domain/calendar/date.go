// Package calendar calcula los feriados federales de EE.UU. y clasifica los días
// hábiles de un mes. Todas las fechas se normalizan a (año, mes, día) antes de
// compararse, para que la zona horaria del reloj no afecte la pertenencia al set.
package calendar

import (
	"fmt"
	"time"
)

// Date fecha de calendario sin hora ni zona.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate normaliza (año, mes, día); valores fuera de rango se ajustan como en time.Date.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf toma el día de calendario de t en su propia zona.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Time devuelve la medianoche UTC de la fecha.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) AddDays(n int) Date          { return DateOf(d.Time().AddDate(0, 0, n)) }
func (d Date) Weekday() time.Weekday       { return d.Time().Weekday() }
func (d Date) Before(other Date) bool      { return d.Time().Before(other.Time()) }
func (d Date) After(other Date) bool       { return d.Time().After(other.Time()) }
func (d Date) IsWeekend() bool             { wd := d.Weekday(); return wd == time.Saturday || wd == time.Sunday }
func (d Date) String() string              { return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day) }
func (d Date) Format(layout string) string { return d.Time().Format(layout) }

// StartOfMonth primer día del mes.
func StartOfMonth(year int, month time.Month) Date {
	return Date{Year: year, Month: month, Day: 1}
}

// EndOfMonth último día del mes.
func EndOfMonth(year int, month time.Month) Date {
	return DateOf(time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1))
}
