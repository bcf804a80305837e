package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/captable-labs/captable-indexer/internal/captable"
	"github.com/captable-labs/captable-indexer/internal/config"
	"github.com/captable-labs/captable-indexer/internal/db"
)

func DumpCapTableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump-captable",
		Short: "Prints the computed cap table summary for one issuer as JSON",
		Run:   dumpCapTable,
	}

	cmd.Flags().String("issuer", "", "Issuer id to project")
	_ = cmd.MarkFlagRequired("issuer")

	return cmd
}

func dumpCapTable(cmd *cobra.Command, args []string) {
	if err := dumpCapTableE(cmd, args); err != nil {
		log.Err(err).Msg("Failed to dump cap table")
		os.Exit(1)
	}
}

func dumpCapTableE(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := config.New(GetConfigPath())
	if err != nil {
		return err
	}

	issuerID, err := cmd.Flags().GetString("issuer")
	if err != nil {
		return err
	}

	dbClient, err := db.New(ctx, cfg.Db)
	if err != nil {
		return err
	}
	defer func() {
		if err := dbClient.Disconnect(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to disconnect db client")
		}
	}()

	summary, err := captable.Compute(ctx, dbClient, issuerID)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
