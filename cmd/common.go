package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/kasuboski/sceneid/config"
	mhttp "github.com/kasuboski/sceneid/pkg/http"
	"github.com/kasuboski/sceneid/pkg/identity"
	"github.com/kasuboski/sceneid/pkg/logger"
	"github.com/kasuboski/sceneid/pkg/manager"
	"github.com/kasuboski/sceneid/pkg/storage/sqlite"
	"github.com/kasuboski/sceneid/pkg/tmdb"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// readConfig loads the configuration or exits
func readConfig() config.Config {
	log := logger.Get()

	cfg, err := config.New(viper.GetViper())
	if err != nil {
		log.Fatal("failed to read configurations", zap.Error(err))
	}

	return cfg
}

// openStore opens and migrates the configured database
func openStore(ctx context.Context, cfg config.Config) (*sqlite.SQLite, error) {
	store, err := sqlite.New(cfg.Storage.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage connection: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// metadataService builds the tmdb client. Without an api key there is no
// metadata service and remote lookups are skipped.
func metadataService(cfg config.Config) (identity.MetadataService, error) {
	if cfg.TMDB.APIKey == "" {
		return nil, nil
	}

	httpClient := mhttp.NewRateLimitedHTTPClient(
		mhttp.WithMaxRetries(cfg.TMDB.MaxRetries),
		mhttp.WithBaseBackoff(cfg.TMDB.BaseBackoff),
	)

	client, err := tmdb.New(cfg.TMDB.URI(), cfg.TMDB.APIKey,
		tmdb.WithHTTPClient(httpClient),
		tmdb.WithLanguage(cfg.TMDB.Language),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create tmdb client: %w", err)
	}

	return client, nil
}

// newManager wires storage and tmdb into a manager. The returned store must be closed.
func newManager(ctx context.Context, cfg config.Config) (manager.IdentityManager, *sqlite.SQLite, error) {
	metadata, err := metadataService(cfg)
	if err != nil {
		return manager.IdentityManager{}, nil, err
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		return manager.IdentityManager{}, nil, err
	}

	m := manager.New(store, metadata, manager.WithRemoteLookup(cfg.Resolver.AllowRemoteLookup))
	return m, store, nil
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}
