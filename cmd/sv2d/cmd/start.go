package cmd

import (
	"context"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"sv2/config"
	"sv2/log"
	"sv2/rpc"
	"sv2/store"
	"sv2/version"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Starts the daemon.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.ReadConfigFile(configuredHomeDir)
		if err != nil {
			return errors.Wrap(err, "error reading config file")
		}
		logLevel, err := log.NewLevel(cfg.LogLevel)
		if err != nil {
			return errors.Wrap(err, "error parsing log level")
		}
		log.SetLevel(logLevel)
		if cfg.LogFormat != "" {
			if err := log.SetFormat(cfg.LogFormat); err != nil {
				return errors.Wrap(err, "error setting log format")
			}
		}
		lgr := log.WithModule("main")

		lgr.Info("starting sv2d", "git_commit", version.GitCommit, "git_tag", version.GitTag)
		dbPath := config.ExpandDBPath(configuredHomeDir)
		lgr.Info("opening db", "path", dbPath)
		db, err := store.Open(dbPath)
		if err != nil {
			return errors.Wrap(err, "error opening db")
		}
		defer func() {
			if err := db.Close(); err != nil {
				lgr.Error("error closing db", "err", err)
			}
		}()

		server := rpc.NewServer(&rpc.Opts{
			DB:                db,
			Host:              cfg.RPC.Host,
			Port:              cfg.RPC.Port,
			RequestsPerSecond: cfg.Tuning.RPC.RequestsPerSecond,
			Burst:             cfg.Tuning.RPC.Burst,
			MaxCaptureBytes:   cfg.Tuning.Captures.MaxCaptureBytes,
			ParseCacheTTL:     config.ConvertDuration(cfg.Tuning.Captures.ParseCacheTTLMS, time.Millisecond),
		})
		lis, err := net.Listen("tcp", net.JoinHostPort(cfg.RPC.Host, strconv.Itoa(cfg.RPC.Port)))
		if err != nil {
			return errors.Wrap(err, "error opening RPC listener")
		}

		grace := config.ConvertDuration(cfg.Tuning.Shutdown.GracePeriodMS, time.Millisecond)
		g, ctx := errgroup.WithContext(context.Background())
		g.Go(func() error {
			return server.Serve(lis)
		})
		g.Go(func() error {
			sigs := make(chan os.Signal, 1)
			signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigs)

			select {
			case sig := <-sigs:
				lgr.Info("shutting down", "signal", sig)
			case <-ctx.Done():
			}
			server.Shutdown(grace)
			return nil
		})
		return g.Wait()
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
