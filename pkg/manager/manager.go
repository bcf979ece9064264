package manager

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/go-playground/validator/v10"
	"github.com/kasuboski/sceneid/pkg/alias"
	"github.com/kasuboski/sceneid/pkg/catalog"
	"github.com/kasuboski/sceneid/pkg/identity"
	"github.com/kasuboski/sceneid/pkg/logger"
	"github.com/kasuboski/sceneid/pkg/nameparser"
	"github.com/kasuboski/sceneid/pkg/storage"
	"github.com/kasuboski/sceneid/pkg/storage/sqlite/schema/gen/table"
	"go.uber.org/zap"
)

// IdentityManager resolves names against the shows in storage. Every call
// works on a fresh catalog snapshot.
type IdentityManager struct {
	storage     storage.Storage
	resolver    identity.Resolver
	aliases     *alias.Index
	validate    *validator.Validate
	allowRemote bool
}

type Option func(*IdentityManager)

// WithRemoteLookup lets name matching fall back to the metadata service
func WithRemoteLookup(allow bool) Option {
	return func(m *IdentityManager) {
		m.allowRemote = allow
	}
}

// New creates an IdentityManager. metadata may be nil when no metadata service is configured.
func New(store storage.Storage, metadata identity.MetadataService, opts ...Option) IdentityManager {
	aliases := alias.New(store)

	m := IdentityManager{
		storage:  store,
		aliases:  aliases,
		resolver: identity.New(nameparser.New(), metadata, aliases, store),
		validate: validator.New(),
	}

	for _, opt := range opts {
		opt(&m)
	}

	return m
}

// AnimeSupport reports whether any stored show is anime
func (m IdentityManager) AnimeSupport(ctx context.Context) (bool, error) {
	cat, err := m.Catalog(ctx)
	if err != nil {
		return false, err
	}

	return identity.AnyAnimePresent(cat), nil
}

// Resolve parses a release name. When showID is not 0 the name is parsed as an episode of that show.
func (m IdentityManager) Resolve(ctx context.Context, name string, showID int64) (*identity.Resolution, error) {
	log := logger.FromCtx(ctx, zap.String("name", name))

	cat, err := m.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	var show *catalog.Show
	if showID != 0 {
		show, err = cat.FindByID(showID)
		if err != nil {
			return nil, err
		}

		if show == nil {
			return nil, fmt.Errorf("%w: %d", identity.ErrUnknownShow, showID)
		}
	}

	res, err := m.resolver.ResolveParse(ctx, name, show, cat, m.allowRemote)
	if err != nil {
		log.Debugw("failed to resolve", zap.Error(err))
		return nil, err
	}

	return res, nil
}

// Match finds the show a name refers to, first by name then by stored records.
// An empty Match means no show was found.
func (m IdentityManager) Match(ctx context.Context, name string) (identity.Match, error) {
	cat, err := m.Catalog(ctx)
	if err != nil {
		return identity.Match{}, err
	}

	id, err := m.resolver.MatchByName(ctx, name, cat, m.allowRemote)
	if err != nil {
		return identity.Match{}, err
	}

	if id != 0 {
		match := identity.Match{ID: id}
		if show, err := cat.FindByID(id); err == nil && show != nil {
			match.Name = show.Name
		}
		return match, nil
	}

	match, ok := m.resolver.MatchByStoredRecords(ctx, name)
	if !ok {
		return identity.Match{}, nil
	}

	return match, nil
}

// ResolveAbsolute maps absolute episode numbers of a show to its season and episodes
func (m IdentityManager) ResolveAbsolute(ctx context.Context, showID int64, numbers []int32) (identity.AbsoluteResult, error) {
	cat, err := m.Catalog(ctx)
	if err != nil {
		return identity.AbsoluteResult{}, err
	}

	return identity.ResolveAbsoluteNumbersByID(cat, showID, numbers)
}

// IsAnime reads the anime flag of a stored show
func (m IdentityManager) IsAnime(ctx context.Context, showID int64) (bool, error) {
	return m.resolver.IsAnimeShow(ctx, showID, catalog.Catalog{}, true)
}

func (m IdentityManager) requireShow(ctx context.Context, showID int64) error {
	_, err := m.storage.GetShow(ctx, table.Show.ID.EQ(sqlite.Int64(showID)))
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %d", identity.ErrUnknownShow, showID)
	}

	return err
}
