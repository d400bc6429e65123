package invoice

import (
	"fmt"
	"time"
)

var ptBRMonths = [12]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// MonthOption mes seleccionable para facturar.
type MonthOption struct {
	Year  int
	Month time.Month
	Label string // "novembro - 2025"
}

// MonthOptions lista los meses del año anterior, el actual y el siguiente,
// del más reciente al más antiguo.
func MonthOptions(now time.Time) []MonthOption {
	current := now.Year()
	out := make([]MonthOption, 0, 36)
	for year := current + 1; year >= current-1; year-- {
		for m := time.December; m >= time.January; m-- {
			out = append(out, MonthOption{
				Year:  year,
				Month: m,
				Label: fmt.Sprintf("%s - %d", ptBRMonths[m-1], year),
			})
		}
	}
	return out
}

// MonthName nombre pt-BR del mes.
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return m.String()
	}
	return ptBRMonths[m-1]
}
