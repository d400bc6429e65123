package fx

import (
	"fmt"
	"net/http"
)

// HTTPError respuesta no-200 de un proveedor de cotización.
type HTTPError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("fx: GET %s respondió HTTP %d: %s", e.URL, e.StatusCode, e.Body)
}

// Retryable indica si vale la pena reintentar (timeouts, rate limit, errores 5xx).
func (e *HTTPError) Retryable() bool {
	return e.StatusCode == http.StatusRequestTimeout ||
		e.StatusCode == http.StatusTooManyRequests ||
		e.StatusCode >= http.StatusInternalServerError
}
