package cmd

import (
	"context"

	"github.com/kasuboski/sceneid/pkg/logger"
	"github.com/kasuboski/sceneid/server"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the resolution api",
	Long:  `start the resolution api`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		cfg := readConfig()

		ctx := logger.WithCtx(context.Background(), log)
		m, store, err := newManager(ctx, cfg)
		if err != nil {
			log.Fatal("failed to create manager", zap.Error(err))
		}
		defer store.Close()

		if cfg.TMDB.APIKey == "" {
			log.Info("no tmdb api key configured, remote lookups are disabled")
		}

		srv := server.New(log, m)
		if err := srv.Serve(cfg.Server.Port); err != nil {
			log.Error("server stopped", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
