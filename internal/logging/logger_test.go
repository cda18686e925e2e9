package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saiyan/training-app/internal/logging"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, log.DebugLevel, logging.GetLevel("DEBUG"))
	assert.Equal(t, log.WarnLevel, logging.GetLevel("warning"))
	assert.Equal(t, log.ErrorLevel, logging.GetLevel("error"))
	assert.Equal(t, log.InfoLevel, logging.GetLevel("nonsense"))
}

func TestSetup_WritesToRotatingFile(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	name := filepath.Join(t.TempDir(), "training")
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:   name,
		LogLevel:      "info",
		LogFormatJSON: true,
	})
	log.WithField("power_level", 9001).Info("over nine thousand")

	data, err := os.ReadFile(name + ".log")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"power_level":9001`)
	assert.Equal(t, log.InfoLevel, log.GetLevel())
}
