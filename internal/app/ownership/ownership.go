// Package ownership concentra a checagem de posse repetida por todos os
// caminhos de leitura por id, atualização e remoção. A ordem é fixa:
// existência antes de posse.
package ownership

import (
	"context"

	apperrors "github.com/vidasync/health-api/pkg/errors"
)

// Resource é qualquer registro que conhece seu dono.
type Resource interface {
	OwnerID() uint
}

// FindFunc carrega um registro pelo id.
type FindFunc[T Resource] func(ctx context.Context, id uint) (T, error)

// LoadOwned carrega o registro e garante que pertence ao solicitante.
// Registro ausente falha com ErrNotFound; registro de outro dono falha
// com ErrUnauthorized. Toda mutação por id dos quatro recursos passa por
// aqui, nunca por uma checagem reimplementada localmente.
func LoadOwned[T Resource](ctx context.Context, find FindFunc[T], id, userID uint) (T, error) {
	record, err := find(ctx, id)
	if err != nil {
		var zero T
		return zero, err
	}

	if record.OwnerID() != userID {
		var zero T
		return zero, apperrors.ErrUnauthorized
	}

	return record, nil
}
