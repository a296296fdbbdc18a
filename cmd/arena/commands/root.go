package commands

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"os"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	logLevel    = "info"
	logFile     = ""
	promEnable  = false
	promListen  = ":9000"
	backend     = "inmem"
	backendArgs = ""
)

var rootCmd = &cobra.Command{
	Use:   "arena",
	Short: "arena runs multi-player snake games in the terminal",
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		if err := setupLogging(); err != nil {
			return err
		}
		prometheus()
		return nil
	},
	RunE: func(c *cobra.Command, args []string) error {
		return playCmd.RunE(c, args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "log level, as one of: [debug, info, warn, error]")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", logFile, "file to append logs to, logs are discarded when empty")
	rootCmd.PersistentFlags().BoolVar(&promEnable, "prometheus", promEnable, "enable prometheus metrics")
	rootCmd.PersistentFlags().StringVar(&promListen, "prometheus-listen", promListen, "prometheus http endpoint")
	rootCmd.PersistentFlags().StringVarP(&backend, "backend", "b", backend, "recording backend, as one of: [inmem, file, redis]")
	rootCmd.PersistentFlags().StringVarP(&backendArgs, "backend-args", "a", backendArgs, "options to pass to the backend being used")
	rootCmd.Flags().AddFlagSet(playCmd.Flags())

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(statusCmd)
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// setupLogging points logrus at the log file. The terminal belongs to the
// game, so without a file the logs go nowhere.
func setupLogging() error {
	lvl, err := log.ParseLevel(logLevel)
	if err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	log.SetLevel(lvl)

	if logFile == "" {
		log.SetOutput(ioutil.Discard)
		return nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrap(err, "unable to open log file")
	}
	log.SetOutput(f)
	log.SetFormatter(&log.JSONFormatter{})
	return nil
}

func prometheus() {
	if !promEnable {
		log.Debug("prometheus exporter not enabled")
		return
	}

	log.WithField("addr", promListen).Info("starting prometheus exporter")
	go func() {
		r := http.NewServeMux()
		r.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(promListen, r); err != nil {
			log.WithError(err).Warn("prometheus failed to listen")
		}
	}()
}
