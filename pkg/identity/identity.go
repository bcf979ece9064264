// Package identity resolves release names to the shows and episodes they refer to.
//
// Every call takes the catalog snapshot it should be checked against. Local
// data always wins over the remote metadata service, which is only consulted
// when the caller allows it.
package identity

import (
	"context"

	"github.com/kasuboski/sceneid/pkg/nameparser"
	"github.com/kasuboski/sceneid/pkg/storage"
	"github.com/kasuboski/sceneid/pkg/tmdb"
)

type NameParser interface {
	Parse(name string, mode nameparser.Mode) (*nameparser.ParseResult, error)
}

// MetadataService finds shows by name remotely. A search without results returns tmdb.ErrNotFound.
type MetadataService interface {
	FindByName(ctx context.Context, name string, searchAllLocales bool) (*tmdb.Series, error)
}

type AliasIndex interface {
	ExceptionsFor(ctx context.Context, showID int64) []string
}

type Resolver struct {
	parser   NameParser
	metadata MetadataService
	aliases  AliasIndex
	shows    storage.ShowStorage
}

// New builds a Resolver. metadata, aliases and shows may be nil, in which case
// remote lookups, alias matching and stored record lookups find nothing.
func New(parser NameParser, metadata MetadataService, aliases AliasIndex, shows storage.ShowStorage) Resolver {
	return Resolver{
		parser:   parser,
		metadata: metadata,
		aliases:  aliases,
		shows:    shows,
	}
}
