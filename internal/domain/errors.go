package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidMonth              = errors.New("mes inválido")
	ErrInvalidInput              = errors.New("entrada numérica inválida")
	ErrRateUnavailable           = errors.New("cotización USD/BRL no disponible")
	ErrMalformedProviderResponse = errors.New("respuesta del proveedor de cotización malformada")
)
