package calendar

import (
	"sort"
	"time"

	"github.com/rickar/cal/v2"
)

// Regla de feriado observado: sábado → viernes anterior, domingo → lunes siguiente.
var weekendObserved = []cal.AltDay{
	{Day: time.Saturday, Offset: -1},
	{Day: time.Sunday, Offset: 1},
}

// Feriados pagados. Memorial Day, Labor Day, Thanksgiving y Black Friday se definen
// por día de la semana y no necesitan ajuste. Nochebuena NO se ajusta: si cae en
// fin de semana se descarta más adelante al filtrar días hábiles.
var (
	newYearsDay = &cal.Holiday{
		Name:     "New Year's Day",
		Month:    time.January,
		Day:      1,
		Observed: weekendObserved,
		Func:     cal.CalcDayOfMonth,
	}
	memorialDay = &cal.Holiday{
		Name:    "Memorial Day",
		Month:   time.May,
		Weekday: time.Monday,
		Offset:  -1,
		Func:    cal.CalcWeekdayOffset,
	}
	independenceDay = &cal.Holiday{
		Name:     "Independence Day",
		Month:    time.July,
		Day:      4,
		Observed: weekendObserved,
		Func:     cal.CalcDayOfMonth,
	}
	laborDay = &cal.Holiday{
		Name:    "Labor Day",
		Month:   time.September,
		Weekday: time.Monday,
		Offset:  1,
		Func:    cal.CalcWeekdayOffset,
	}
	thanksgivingDay = &cal.Holiday{
		Name:    "Thanksgiving",
		Month:   time.November,
		Weekday: time.Thursday,
		Offset:  4,
		Func:    cal.CalcWeekdayOffset,
	}
	blackFriday = &cal.Holiday{
		Name:       "Black Friday",
		Month:      time.November,
		Weekday:    time.Thursday,
		Offset:     4,
		CalcOffset: 1,
		Func:       cal.CalcWeekdayOffset,
	}
	christmasEve = &cal.Holiday{
		Name:  "Christmas Eve",
		Month: time.December,
		Day:   24,
		Func:  cal.CalcDayOfMonth,
	}
	christmasDay = &cal.Holiday{
		Name:     "Christmas Day",
		Month:    time.December,
		Day:      25,
		Observed: weekendObserved,
		Func:     cal.CalcDayOfMonth,
	}
)

// Holiday feriado ya resuelto a su fecha observada.
type Holiday struct {
	Name string
	Date Date
}

// ObservedHolidays lista los feriados del año en orden ascendente.
// Un feriado de año nuevo observado puede caer el 31/12 del año anterior.
func ObservedHolidays(year int, includeChristmasEve bool) []Holiday {
	defs := []*cal.Holiday{
		newYearsDay, memorialDay, independenceDay, laborDay,
		thanksgivingDay, blackFriday, christmasDay,
	}
	if includeChristmasEve {
		defs = append(defs, christmasEve)
	}

	out := make([]Holiday, 0, len(defs))
	for _, h := range defs {
		_, observed := h.Calc(year)
		out = append(out, Holiday{Name: h.Name, Date: DateOf(observed)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// HolidaySet conjunto de fechas normalizadas.
type HolidaySet map[Date]struct{}

// Holidays calcula el set de feriados observados de un año.
func Holidays(year int, includeChristmasEve bool) HolidaySet {
	set := make(HolidaySet)
	for _, h := range ObservedHolidays(year, includeChristmasEve) {
		set.Add(h.Date)
	}
	return set
}

// HolidaysAround une los feriados de year-1, year y year+1 para no perder
// fechas observadas que cruzan el cambio de año.
func HolidaysAround(year int, includeChristmasEve bool) HolidaySet {
	set := make(HolidaySet)
	for y := year - 1; y <= year+1; y++ {
		set.Union(Holidays(y, includeChristmasEve))
	}
	return set
}

func (s HolidaySet) Add(d Date) { s[d] = struct{}{} }

func (s HolidaySet) Contains(d Date) bool {
	_, ok := s[d]
	return ok
}

// Union agrega al set todas las fechas de other.
func (s HolidaySet) Union(other HolidaySet) {
	for d := range other {
		s[d] = struct{}{}
	}
}

// Sorted devuelve las fechas en orden ascendente.
func (s HolidaySet) Sorted() []Date {
	out := make([]Date, 0, len(s))
	for d := range s {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}
