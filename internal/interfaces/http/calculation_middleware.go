package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderCalculationID cabecera de correlación de cada cálculo.
const HeaderCalculationID = "X-Calculation-ID"

// LocalCalculationID clave en c.Locals.
const LocalCalculationID = "calculation_id"

// CalculationID asigna un UUID por petición. Si el cliente envía un UUID válido
// en X-Calculation-ID se respeta; cualquier otro valor se reemplaza.
func CalculationID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderCalculationID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Locals(LocalCalculationID, id)
		c.Set(HeaderCalculationID, id)
		return c.Next()
	}
}

// GetCalculationID obtiene el id asignado por CalculationID.
func GetCalculationID(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalCalculationID).(string)
	return v
}
