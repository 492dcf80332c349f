package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdrpinto/gridsearch/internal/logger"
)

type rootOpts struct {
	cfgFile     string
	debugModeOn bool
	hideLogTime bool
	hideLogPath bool
	logDir      string
	colorMode   string
}

var rootOpt rootOpts

const (
	colorModeNever  = "never"
	colorModeAlways = "always"
)

var supportedColorModes = []string{
	colorModeNever,
	colorModeAlways,
}

var longRootCmdDescription = `gridsearch finds cost-optimal routes on binary occupancy grids
with A* or Jump Point Search.

Search settings are read from flags, then GRIDSEARCH_* environment variables,
then the config file.
`

var rootCmd = NewRootCmd()

// NewRootCmd builds the command tree. Tests build a fresh tree per case.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gridsearch",
		Short:         "Shortest paths on occupancy grids",
		Long:          longRootCmdDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&rootOpt.cfgFile, "config", "", "config file (default is $HOME/.gridsearch.yaml)")
	flags.BoolVarP(&rootOpt.debugModeOn, "debug", "d", false, "turn on debug mode")
	flags.BoolVar(&rootOpt.hideLogTime, "hide-time", false, "hide the log time")
	flags.BoolVar(&rootOpt.hideLogPath, "hide-path", false, "hide the log path")
	flags.StringVar(&rootOpt.logDir, "log-dir", "", "also write logs to rotated files in this directory")
	flags.StringVar(&rootOpt.colorMode, "color", colorModeAlways, fmt.Sprintf("set the log color mode, the possible values can be %v", supportedColorModes))
	addSearchFlags(root)

	root.AddCommand(NewFindCmd(), NewBatchCmd())
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Errorf("gridsearch: %v", err)
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	if err := logger.Init(logger.LogOptions{
		Verbose:      rootOpt.debugModeOn,
		DisableColor: rootOpt.colorMode == colorModeNever,
		HideLogTime:  rootOpt.hideLogTime,
		HideLogPath:  rootOpt.hideLogPath,
		LogToFile:    rootOpt.logDir != "",
		OutputDir:    rootOpt.logDir,
	}); err != nil {
		return err
	}

	explicit := rootOpt.cfgFile != ""
	if !explicit {
		home, err := homedir.Dir()
		if err != nil {
			return err
		}
		rootOpt.cfgFile = filepath.Join(home, ".gridsearch.yaml")
	}
	viper.SetConfigFile(rootOpt.cfgFile)

	viper.SetEnvPrefix("gridsearch")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err != nil {
		if explicit || !os.IsNotExist(err) {
			return fmt.Errorf("failed to read config %s: %v", rootOpt.cfgFile, err)
		}
		return nil
	}
	logrus.Debugf("using config file %s", viper.ConfigFileUsed())
	return nil
}
