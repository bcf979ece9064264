package cmd

import (
	"context"
	"fmt"

	"github.com/kasuboski/sceneid/pkg/logger"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
)

// migrateCmd applies pending database migrations
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "apply database migrations",
	Long:  `apply any pending database migrations and print the schema version`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		cfg := readConfig()

		ctx := logger.WithCtx(context.Background(), log)
		store, err := openStore(ctx, cfg)
		if err != nil {
			log.Fatal("failed to open database", zap.Error(err))
		}
		defer store.Close()

		version, dirty, err := store.GetMigrationVersion()
		if err != nil {
			log.Fatal("failed to read migration version", zap.Error(err))
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s at schema version %d (dirty: %t)\n", cfg.Storage.FilePath, version, dirty)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
