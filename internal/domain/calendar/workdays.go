package calendar

// HoursPerDay horas facturables por día hábil o feriado pagado.
const HoursPerDay = 8

// Partition clasificación de los días hábiles de un rango.
type Partition struct {
	WorkDays     []Date
	PaidHolidays []Date
}

func (p Partition) WorkHours() int    { return len(p.WorkDays) * HoursPerDay }
func (p Partition) HolidayHours() int { return len(p.PaidHolidays) * HoursPerDay }
func (p Partition) TotalHours() int   { return p.WorkHours() + p.HolidayHours() }

// PartitionDays recorre [start, end] inclusive. Sábados y domingos no se clasifican;
// los días de semana presentes en holidays son feriados pagados, el resto días hábiles.
func PartitionDays(start, end Date, holidays HolidaySet) Partition {
	p := Partition{WorkDays: []Date{}, PaidHolidays: []Date{}}
	for d := start; !d.After(end); d = d.AddDays(1) {
		if d.IsWeekend() {
			continue
		}
		if holidays.Contains(d) {
			p.PaidHolidays = append(p.PaidHolidays, d)
			continue
		}
		p.WorkDays = append(p.WorkDays, d)
	}
	return p
}
