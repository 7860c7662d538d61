package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bacalhau-project/amiaudit/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix         = "AMIAUDIT"
	DefaultConfigName = ".amiaudit"
)

var (
	cfgFile     string
	verboseMode bool
)

// NewRootCmd builds the amiaudit command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "amiaudit",
		Short: "Audit Ubuntu AMI listings across AWS regions",
		Long: `amiaudit checks the Ubuntu images offered in the EC2 quickstart launcher and
the AWS Marketplace against what Canonical expects to be published, and
reports missing, duplicated, mismatched and stale listings.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initLogging()
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.amiaudit.yaml)")
	rootCmd.PersistentFlags().BoolVar(&verboseMode, "verbose", false, "Log to the console at debug level")
	rootCmd.PersistentFlags().String("log-level", logger.InfoLogLevel, "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().String("aws-profile", "", "AWS shared config profile to use for credentials")
	rootCmd.PersistentFlags().StringSlice("regions", nil, "Only audit these regions (default: all)")

	bindFlag(rootCmd.PersistentFlags().Lookup("log-level"), "general.log_level")
	bindFlag(rootCmd.PersistentFlags().Lookup("log-file"), "general.log_path")
	bindFlag(rootCmd.PersistentFlags().Lookup("aws-profile"), "aws.profile")
	bindFlag(rootCmd.PersistentFlags().Lookup("regions"), "aws.regions")

	rootCmd.AddCommand(
		getQuickstartCmd(),
		getMarketplaceCmd(),
		getQuickstartReportCmd(),
		getRegionsCmd(),
		getDiagnoseCmd(),
		getCompletionCmd(),
	)
	return rootCmd
}

// Execute runs the root command and exits with the command's exit code.
func Execute() {
	cobra.OnInitialize(initConfig)

	err := NewRootCmd().Execute()
	if err == nil {
		return
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Message != "" {
			fmt.Println(exitErr.Message)
		}
		os.Exit(exitErr.Code)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "Failed to load .env:", err)
	}

	if cfgFile != "" {
		path, err := homedir.Expand(cfgFile)
		cobra.CheckErr(err)
		viper.SetConfigFile(path)
	} else {
		home, err := homedir.Dir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(DefaultConfigName)
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func initLogging() error {
	logger.InitLoggerOutputs()
	if verboseMode {
		logger.GlobalEnableConsoleLogger = true
		logger.GlobalLogLevel = "debug"
	}
	if logger.GlobalEnableFileLogger {
		path, err := homedir.Expand(logger.GlobalLogPath)
		if err != nil {
			return fmt.Errorf("failed to expand log path: %w", err)
		}
		logger.GlobalLogPath = path
	}
	return logger.InitProduction()
}

func bindFlag(flag *pflag.Flag, key string) {
	cobra.CheckErr(viper.BindPFlag(key, flag))
}
