package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/grinvo/pkg/logger"
)

func TestLogger_JSONEnProduccion(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Out: &buf}).Named("fx")

	log.Info().Str("source", "BCB/PTAX").Msg("cotización obtenida")
	log.Debug().Msg("no debe aparecer")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "fx", line["component"])
	assert.Equal(t, "BCB/PTAX", line["source"])
	assert.Equal(t, "cotización obtenida", line["message"])
}

func TestLogger_NivelDebug(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "debug", Out: &buf})

	log.Debug().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestLogger_Nop(t *testing.T) {
	assert.NotPanics(t, func() {
		logger.Nop().Named("x").Error().Msg("descartado")
	})
}
