package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/black-desk/lib/go/logger"
	"github.com/spf13/cobra"
	"github.com/twinpane/dirwatch/pkg/dirwatch/config"
)

var flags struct {
	CfgPath string
}

var rootCmd = &cobra.Command{
	Use:   "dirwatch <left-dir> <right-dir>",
	Short: "Watch two directory panes and reload them on quiesced changes",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if err == nil {
				return
			}

			err = fmt.Errorf(
				"\n\n%w\n"+CheckDocumentString,
				err,
			)

			return
		}()
		err = rootCmdRun(args[0], args[1])
		return
	},
}

func rootCmdRun(leftDir, rightDir string) (err error) {
	log := logger.Get("dirwatch")

	content, err := os.ReadFile(flags.CfgPath)
	if errors.Is(err, os.ErrNotExist) && flags.CfgPath == DirwatchCfgPath {
		log.Infow("Configuration file missing, fallback to default config.")

		content = []byte(config.DefaultConfig)
		err = nil
	} else if err != nil {
		log.Errorw("Failed to read configuration from file",
			"file", flags.CfgPath,
			"error", err)

		return err
	}

	var cfg *config.Config
	cfg, err = config.New(
		config.WithContent(content),
		config.WithLogger(log),
	)
	if err != nil {
		return
	}

	a, err := injectedApp(cfg, log, paneDirs{Left: leftDir, Right: rightDir})
	if err != nil {
		return
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

		sig := <-sigCh
		a.Stop(&ErrCancelBySignal{Signal: sig})
	}()

	err = a.Run()
	if err == nil {
		return
	}

	log.Debugw(
		"Demo exited with error.",
		"error", err,
	)

	var cancelBySignal *ErrCancelBySignal
	if errors.As(err, &cancelBySignal) {
		log.Infow("Signal received, exiting...",
			"signal", cancelBySignal.Signal,
		)
		err = nil
		return
	}

	return
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cfgPath := os.Getenv("CONFIGURATION_DIRECTORY")
	if cfgPath == "" {
		cfgPath = DirwatchCfgPath
	} else {
		cfgPath += "/config.yaml"
	}

	rootCmd.PersistentFlags().StringVarP(
		&flags.CfgPath,
		"config", "c", cfgPath,
		"the configure file to use",
	)
}
