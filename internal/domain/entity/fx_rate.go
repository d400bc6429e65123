package entity

// DefaultOverrideLabel etiqueta de la cotización manual cuando el usuario no indica otra.
const DefaultOverrideLabel = "Manual override"

// FXRate cotización BRL por USD con su origen y fecha de referencia para mostrar.
type FXRate struct {
	Rate   float64
	Source string
	AsOf   string
}
