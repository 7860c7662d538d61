package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bacalhau-project/amiaudit/internal/testdata"
	"github.com/spf13/viper"
)

// GetTestViper returns a viper instance loaded from the generic test config.
func GetTestViper() (*viper.Viper, error) {
	configFile, cleanup, err := WriteStringToTempFileWithExtension(testdata.TestGenericConfig, ".yaml")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	testConfig := viper.New()
	testConfig.SetConfigType("yaml")
	testConfig.SetConfigFile(configFile)
	if err := testConfig.ReadInConfig(); err != nil {
		return nil, err
	}
	return testConfig, nil
}

// WriteStringToTempFileWithExtension writes content to a temp file whose
// name ends in extension and returns the path and a cleanup function.
func WriteStringToTempFileWithExtension(content string, extension string) (string, func(), error) {
	tempFile, err := os.CreateTemp("", "temp-*"+extension)
	if err != nil {
		return "", nil, err
	}

	if _, err := tempFile.WriteString(content); err != nil {
		tempFile.Close()
		os.Remove(tempFile.Name())
		return "", nil, err
	}

	tempFile.Close()

	cleanup := func() {
		os.Remove(tempFile.Name())
	}

	return tempFile.Name(), cleanup, nil
}

// WriteFileInDir writes content to name inside dir and returns the path.
func WriteFileInDir(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}
