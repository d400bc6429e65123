package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/grinvo/internal/domain/calendar"
)

func partitionMonth(year int, month time.Month, xmasEve bool) calendar.Partition {
	return calendar.PartitionDays(
		calendar.StartOfMonth(year, month),
		calendar.EndOfMonth(year, month),
		calendar.HolidaysAround(year, xmasEve),
	)
}

func TestPartitionDays_Enero2024(t *testing.T) {
	p := partitionMonth(2024, time.January, true)

	assert.Len(t, p.WorkDays, 22)
	assert.Equal(t, dates(d(2024, time.January, 1)), p.PaidHolidays)
	assert.Equal(t, 176, p.WorkHours())
	assert.Equal(t, 8, p.HolidayHours())
	assert.Equal(t, 184, p.TotalHours())
}

func TestPartitionDays_MesSinFeriados(t *testing.T) {
	p := partitionMonth(2024, time.February, true)

	assert.Empty(t, p.PaidHolidays)
	assert.Len(t, p.WorkDays, 21)
	assert.Equal(t, d(2024, time.February, 1), p.WorkDays[0])
	assert.Equal(t, d(2024, time.February, 29), p.WorkDays[len(p.WorkDays)-1])
}

func TestPartitionDays_Diciembre2021CruzaAnio(t *testing.T) {
	// 25/12/2021 sábado → 24/12; 01/01/2022 sábado → 31/12/2021.
	for _, xmasEve := range []bool{true, false} {
		p := partitionMonth(2021, time.December, xmasEve)
		assert.Equal(t, dates(d(2021, time.December, 24), d(2021, time.December, 31)), p.PaidHolidays)
		assert.Len(t, p.WorkDays, 21)
	}
}

func TestPartitionDays_Diciembre2022(t *testing.T) {
	p := partitionMonth(2022, time.December, true)

	// Nochebuena cae en sábado y no suma horas.
	assert.Equal(t, dates(d(2022, time.December, 26)), p.PaidHolidays)
	assert.Len(t, p.WorkDays, 21)
}

func TestPartitionDays_Invariantes(t *testing.T) {
	for year := 2019; year <= 2031; year++ {
		for m := time.January; m <= time.December; m++ {
			p := partitionMonth(year, m, true)

			for _, day := range append(append([]calendar.Date{}, p.WorkDays...), p.PaidHolidays...) {
				assert.False(t, day.IsWeekend(), "%s no debe clasificarse", day)
				assert.Equal(t, m, day.Month)
			}
			for i := 1; i < len(p.WorkDays); i++ {
				assert.True(t, p.WorkDays[i-1].Before(p.WorkDays[i]))
			}
			for i := 1; i < len(p.PaidHolidays); i++ {
				assert.True(t, p.PaidHolidays[i-1].Before(p.PaidHolidays[i]))
			}
			assert.Equal(t, p.WorkHours()+p.HolidayHours(), p.TotalHours())
			assert.Zero(t, p.TotalHours()%calendar.HoursPerDay)
		}
	}
}

func TestEndOfMonth(t *testing.T) {
	assert.Equal(t, d(2024, time.February, 29), calendar.EndOfMonth(2024, time.February))
	assert.Equal(t, d(2023, time.February, 28), calendar.EndOfMonth(2023, time.February))
	assert.Equal(t, d(2024, time.December, 31), calendar.EndOfMonth(2024, time.December))
}
