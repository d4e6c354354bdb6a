package repository

import (
	"context"

	"github.com/luuvisa/backend/internal/model"
)

// BalanceRepository defines persistence for client opening balances.
// One row per client, keyed by client ID.
type BalanceRepository interface {
	List(ctx context.Context) ([]model.ClientBalance, error)
	Get(ctx context.Context, clientID string) (model.ClientBalance, error)
	Upsert(ctx context.Context, b model.ClientBalance) error
	Delete(ctx context.Context, clientID string) error
	UpdateClientName(ctx context.Context, clientID, name string) error
}

type balanceRepository struct {
	c collection[model.ClientBalance]
}

// NewBalanceRepository creates a BalanceRepository on the given engine.
func NewBalanceRepository(eng Engine) BalanceRepository {
	return &balanceRepository{c: collection[model.ClientBalance]{
		eng:  eng,
		name: ColClientBalances,
		id:   func(b *model.ClientBalance) string { return b.ClientID },
	}}
}

var _ BalanceRepository = (*balanceRepository)(nil)

func (r *balanceRepository) List(ctx context.Context) ([]model.ClientBalance, error) {
	return r.c.loadAll(ctx)
}

func (r *balanceRepository) Get(ctx context.Context, clientID string) (model.ClientBalance, error) {
	return r.c.findByID(ctx, clientID)
}

func (r *balanceRepository) Upsert(ctx context.Context, b model.ClientBalance) error {
	return r.c.mutate(ctx, func(records []model.ClientBalance) ([]model.ClientBalance, error) {
		if i := r.c.indexOf(records, b.ClientID); i >= 0 {
			records[i] = b
			return records, nil
		}
		return append(records, b), nil
	})
}

func (r *balanceRepository) Delete(ctx context.Context, clientID string) error {
	return r.c.remove(ctx, clientID)
}

func (r *balanceRepository) UpdateClientName(ctx context.Context, clientID, name string) error {
	return r.c.mutate(ctx, func(records []model.ClientBalance) ([]model.ClientBalance, error) {
		if i := r.c.indexOf(records, clientID); i >= 0 {
			records[i].ClientName = name
		}
		return records, nil
	})
}
