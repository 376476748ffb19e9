// Package assets resolves the asset identifiers stored on ledger actions into
// models.Asset values.
package assets

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/ledgerkeeper/internal/common"
	"github.com/dmitrijs2005/ledgerkeeper/internal/models"
)

// Resolver looks up an asset by identifier.
type Resolver interface {
	// Resolve returns *UnknownAssetError when identifier is not known.
	Resolve(ctx context.Context, identifier string) (models.Asset, error)
}

// UnknownAssetError is returned for identifiers the resolver does not know.
type UnknownAssetError struct {
	Identifier string
}

func (e *UnknownAssetError) Error() string {
	return fmt.Sprintf("unknown asset %s", e.Identifier)
}

func (e *UnknownAssetError) Unwrap() error { return common.ErrUnknownAsset }

// StaticResolver resolves from a fixed in-memory set.
type StaticResolver struct {
	assets map[string]models.Asset
}

func NewStaticResolver(list ...models.Asset) *StaticResolver {
	m := make(map[string]models.Asset, len(list))
	for _, a := range list {
		m[a.Identifier] = a
	}
	return &StaticResolver{assets: m}
}

func (r *StaticResolver) Resolve(_ context.Context, identifier string) (models.Asset, error) {
	a, ok := r.assets[identifier]
	if !ok {
		return models.Asset{}, &UnknownAssetError{Identifier: identifier}
	}
	return a, nil
}
