package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/captable-labs/captable-indexer/internal/api"
	"github.com/captable-labs/captable-indexer/internal/clients/ledgerclient"
	"github.com/captable-labs/captable-indexer/internal/config"
	"github.com/captable-labs/captable-indexer/internal/db"
	dbmodel "github.com/captable-labs/captable-indexer/internal/db/model"
	"github.com/captable-labs/captable-indexer/internal/notify"
	"github.com/captable-labs/captable-indexer/internal/observability/metrics"
	"github.com/captable-labs/captable-indexer/internal/observability/tracing"
	"github.com/captable-labs/captable-indexer/internal/sync"
)

const shutdownTimeout = 30 * time.Second

func StartServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-server",
		Short: "Starts the cap table indexer server",
		Args:  cobra.ExactArgs(0),
		RunE:  startServer,
	}

	return cmd
}

func startServer(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	ctx = tracing.InjectTraceID(ctx)
	log := log.Ctx(ctx)

	// load config
	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	err = dbmodel.Setup(ctx, &cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up cap table db model")
	}

	// create new db client
	var dbClient db.DbInterface
	dbClient, err = db.New(ctx, cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating db client")
	}
	dbClient = db.NewDbWithMetrics(dbClient)

	var ledgerClient ledgerclient.LedgerInterface = ledgerclient.NewLedgerClient(&cfg.Ledger)
	ledgerClient = ledgerclient.NewLedgerClientWithMetrics(ledgerClient)

	var notifier notify.Notifier = notify.NoopNotifier{}
	if cfg.Notifier.Enabled {
		notifier, err = notify.NewQueueNotifier(&cfg.Notifier)
		if err != nil {
			log.Fatal().Err(err).Msg("error while creating queue notifier")
		}
	}

	service := sync.NewService(&cfg.Sync, dbClient, ledgerClient, notifier)

	apiServer := api.New(&cfg.Api, dbClient)
	apiServer.Start()

	// initialize metrics with the metrics port from config
	metricsPort := cfg.Metrics.GetMetricsPort()
	metrics.Init(metricsPort)

	go service.Start(ctx)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info().Msg("Received shutdown signal")

	// Let the in-flight sweep drain before closing anything it depends on.
	service.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := apiServer.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Failed to stop API server")
	}
	notifier.Shutdown()
	return nil
}
