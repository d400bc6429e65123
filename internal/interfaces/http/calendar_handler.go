package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/grinvo/internal/application/dto"
	"github.com/jhoicas/grinvo/internal/domain/calendar"
)

// CalendarHandler expone el calendario de feriados federales de EE. UU.
type CalendarHandler struct {
	includeChristmasEve bool
}

// NewCalendarHandler construye el handler; includeChristmasEve es el valor por defecto.
func NewCalendarHandler(includeChristmasEve bool) *CalendarHandler {
	return &CalendarHandler{includeChristmasEve: includeChristmasEve}
}

// Holidays godoc
// @Summary      Feriados observados de un año
// @Description  Año nuevo, Independencia y Navidad se trasladan al viernes/lunes si caen en fin de semana.
// @Description  Nochebuena no se traslada.
// @Tags         calendar
// @Produce      json
// @Param        year                  query  int   true   "año"
// @Param        include_christmas_eve query  bool  false  "incluir Nochebuena"
// @Success      200  {object}  dto.HolidaysResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/holidays [get]
func (h *CalendarHandler) Holidays(c *fiber.Ctx) error {
	q := dto.HolidaysQuery{Year: c.QueryInt("year")}
	if c.Query("include_christmas_eve") != "" {
		v := c.QueryBool("include_christmas_eve", h.includeChristmasEve)
		q.IncludeChristmasEve = &v
	}
	if err := q.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}

	incl := h.includeChristmasEve
	if q.IncludeChristmasEve != nil {
		incl = *q.IncludeChristmasEve
	}

	holidays := calendar.ObservedHolidays(q.Year, incl)
	out := dto.HolidaysResponse{
		Year:                q.Year,
		IncludeChristmasEve: incl,
		Holidays:            make([]dto.HolidayResponse, 0, len(holidays)),
	}
	for _, hd := range holidays {
		out.Holidays = append(out.Holidays, dto.HolidayResponse{
			Name:    hd.Name,
			Date:    hd.Date.String(),
			Weekday: hd.Date.Weekday().String(),
		})
	}
	return c.JSON(out)
}
