package logger

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetFallsBackToNop(t *testing.T) {
	SetGlobalLogger(nil)
	l := Get()
	require.NotNil(t, l)
	l.Infof("nothing %s", "happens")
}

func TestTestLoggerCapturesMessages(t *testing.T) {
	tl := NewTestLogger(t)
	SetGlobalLogger(tl.Logger)
	defer SetGlobalLogger(nil)

	Get().Infof("scraping %s ...", "us-east-1")
	Get().Debug("debug message")
	Get().WarnWithFields("with fields", zap.String("region", "eu-west-1"))

	assert.Equal(t, []string{"scraping us-east-1 ...", "debug message", "with fields"}, tl.GetLogs())
}

func TestInitializeWritesFile(t *testing.T) {
	defer SetGlobalLogger(nil)
	path := filepath.Join(t.TempDir(), "amiaudit.log")

	require.NoError(t, Initialize(Config{Level: "debug", FilePath: path, InstantSync: true}))
	Get().Debugf("written to %s", "file")
	Get().Info("info line")
	require.NoError(t, GlobalLogFile.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
	assert.Contains(t, string(data), "info line")
	assert.True(t, GlobalEnableFileLogger)
	assert.Equal(t, "debug", GlobalLogLevel)
}

func TestInitializeRespectsLevel(t *testing.T) {
	defer SetGlobalLogger(nil)
	path := filepath.Join(t.TempDir(), "amiaudit.log")

	require.NoError(t, Initialize(Config{Level: "warn", FilePath: path, Format: "json"}))
	Get().Info("hidden")
	Get().Warn("shown")
	require.NoError(t, Get().Sync())
	require.NoError(t, GlobalLogFile.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), `"msg":"shown"`)
}

func TestInitLoggerOutputs(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	viper.Set("general.log_level", "debug")
	viper.Set("general.enable_console_logger", true)
	viper.Set("general.enable_file_logger", false)

	InitLoggerOutputs()

	assert.Equal(t, "debug", GlobalLogLevel)
	assert.True(t, GlobalEnableConsoleLogger)
	assert.False(t, GlobalEnableFileLogger)
}

func TestContextLogger(t *testing.T) {
	tl := NewTestLogger(t)
	ctx := IntoContext(context.Background(), tl.With(zap.String("command", "quickstart")))

	FromContext(ctx).Infof("from %s", "context")
	assert.Equal(t, []string{"from context"}, tl.GetLogs())

	assert.NotNil(t, FromContext(context.Background()))
}

func TestGetZapLevel(t *testing.T) {
	assert.Equal(t, "debug", getZapLevel("DEBUG").String())
	assert.Equal(t, "error", getZapLevel("error").String())
	assert.Equal(t, "info", getZapLevel("bogus").String())
}
