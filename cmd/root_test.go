package cmd

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/bacalhau-project/amiaudit/pkg/logger"
	awsprovider "github.com/bacalhau-project/amiaudit/pkg/providers/aws"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func ExecuteCommand(root *cobra.Command, args ...string) (output string, err error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	defer func() {
		if r := recover(); r != nil {
			logger.Get().Errorf("Panic occurred: %v", r)
			_ = logger.Get().Sync()
			err = fmt.Errorf("panic occurred: %v", r)
		}
	}()

	_, err = root.ExecuteC()

	_ = logger.Get().Sync()

	return buf.String(), err
}

// setupTest resets global config and keeps logs out of /tmp.
func setupTest(t *testing.T) {
	t.Helper()
	viper.Reset()
	viper.Set("general.enable_file_logger", false)
	t.Cleanup(func() {
		viper.Reset()
		logger.SetGlobalLogger(nil)
		newAWSProvider = awsprovider.NewAWSProviderFunc
	})
}

// useProvider makes every command use provider instead of loading AWS config.
func useProvider(t *testing.T, provider *awsprovider.AWSProvider) {
	t.Helper()
	newAWSProvider = func(context.Context, string) (*awsprovider.AWSProvider, error) {
		return provider, nil
	}
}
