package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/nft-snap/common/errs"
	"github.com/gaze-network/nft-snap/internal/postgres"
	"github.com/gaze-network/nft-snap/modules/snap/datagateway"
	"github.com/gaze-network/nft-snap/modules/snap/internal/entity"
	"github.com/gaze-network/nft-snap/modules/snap/repository/postgres/gen"
	"github.com/gaze-network/uint128"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

var _ datagateway.SnapDataGateway = (*Repository)(nil)

const (
	pgCodeUniqueViolation = "23505"
	pgCodeCheckViolation  = "23514"
	pgCodeForeignKey      = "23503"
)

type Repository struct {
	db      postgres.DB
	queries *gen.Queries
	tx      pgx.Tx
}

func NewRepository(db postgres.DB) *Repository {
	return &Repository{
		db:      db,
		queries: gen.New(db),
	}
}

// mapConstraintError translates constraint violations into error kinds callers can match on.
func mapConstraintError(err error, checkKind errs.ErrorKind) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgCodeUniqueViolation:
		return errors.Mark(err, errs.Conflict)
	case pgCodeForeignKey:
		return errors.Mark(err, errs.NotFound)
	case pgCodeCheckViolation:
		return errors.Mark(err, checkKind)
	}
	return err
}

func (r *Repository) GetInstances(ctx context.Context) ([]*entity.Instance, error) {
	models, err := r.queries.GetInstances(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	result := make([]*entity.Instance, 0, len(models))
	for _, model := range models {
		instance, err := mapInstanceModelToType(model)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse instance %s", model.ID)
		}
		result = append(result, &instance)
	}
	return result, nil
}

func (r *Repository) GetItemsByInstance(ctx context.Context, instance common.Address) ([]*entity.Item, error) {
	models, err := r.queries.GetItemsByInstance(ctx, instance.Hex())
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	result := make([]*entity.Item, 0, len(models))
	for _, model := range models {
		item, err := mapItemModelToType(model)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse item #%d", model.ItemID)
		}
		result = append(result, &item)
	}
	return result, nil
}

func (r *Repository) GetEventsByInstance(ctx context.Context, instance common.Address, limit int32, offset int32) ([]*entity.Event, error) {
	models, err := r.queries.GetEventsByInstance(ctx, gen.GetEventsByInstanceParams{
		InstanceID: instance.Hex(),
		Limit:      pgtype.Int8{Int64: int64(limit), Valid: limit > 0},
		Offset:     int64(max(offset, 0)),
	})
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	result := make([]*entity.Event, 0, len(models))
	for _, model := range models {
		event, err := mapEventModelToType(model)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse event %d", model.ID)
		}
		result = append(result, &event)
	}
	return result, nil
}

func (r *Repository) CreateInstance(ctx context.Context, instance *entity.Instance) error {
	params, err := mapInstanceTypeToParams(*instance)
	if err != nil {
		return errors.Wrap(err, "failed to map instance to params")
	}
	if err := r.queries.CreateInstance(ctx, params); err != nil {
		return errors.Wrap(mapConstraintError(err, errs.InvalidArgument), "error during exec")
	}
	return nil
}

func (r *Repository) SetLastItemId(ctx context.Context, instance common.Address, itemId uint64) error {
	lastItemId, err := int64FromUint64(itemId)
	if err != nil {
		return errors.WithStack(err)
	}
	affected, err := r.queries.SetLastItemId(ctx, gen.SetLastItemIdParams{
		ID:         instance.Hex(),
		LastItemID: lastItemId,
	})
	if err != nil {
		return errors.Wrap(err, "error during exec")
	}
	if affected == 0 {
		return errors.Wrapf(errs.NotFound, "instance %s", instance)
	}
	return nil
}

func (r *Repository) CreateItem(ctx context.Context, item *entity.Item) error {
	itemId, err := int64FromUint64(item.ItemId)
	if err != nil {
		return errors.WithStack(err)
	}
	err = r.queries.CreateItem(ctx, gen.CreateItemParams{
		InstanceID: item.Instance.Hex(),
		ItemID:     itemId,
		Holder:     item.Holder.Hex(),
		MintedAt:   timestamptzFromTime(item.MintedAt),
	})
	if err != nil {
		return errors.Wrap(mapConstraintError(err, errs.InvalidArgument), "error during exec")
	}
	return nil
}

func (r *Repository) DeleteItem(ctx context.Context, instance common.Address, itemId uint64) error {
	id, err := int64FromUint64(itemId)
	if err != nil {
		return errors.WithStack(err)
	}
	affected, err := r.queries.DeleteItem(ctx, gen.DeleteItemParams{
		InstanceID: instance.Hex(),
		ItemID:     id,
	})
	if err != nil {
		return errors.Wrap(err, "error during exec")
	}
	if affected == 0 {
		return errors.Wrapf(errs.NotFound, "item #%d of %s", itemId, instance)
	}
	return nil
}

func (r *Repository) CreateEvent(ctx context.Context, event *entity.Event) error {
	params, err := mapEventTypeToParams(*event)
	if err != nil {
		return errors.Wrap(err, "failed to map event to params")
	}
	if err := r.queries.CreateEvent(ctx, params); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) GetBalance(ctx context.Context, account common.Address) (uint128.Uint128, error) {
	amount, err := r.queries.GetBalance(ctx, account.Hex())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uint128.Zero, nil
		}
		return uint128.Uint128{}, errors.Wrap(err, "error during query")
	}
	balance, err := uint128FromNumeric(amount)
	if err != nil {
		return uint128.Uint128{}, errors.Wrap(err, "failed to parse balance")
	}
	return balance, nil
}

func (r *Repository) Credit(ctx context.Context, account common.Address, amount uint128.Uint128) error {
	numeric, err := numericFromUint128(amount)
	if err != nil {
		return errors.WithStack(err)
	}
	err = r.queries.CreditBalance(ctx, gen.CreditBalanceParams{
		Account: account.Hex(),
		Amount:  numeric,
	})
	if err != nil {
		return errors.Wrap(mapConstraintError(err, errs.OverflowUint128), "error during exec")
	}
	return nil
}

func (r *Repository) Transfer(ctx context.Context, from common.Address, to common.Address, amount uint128.Uint128) error {
	if amount.IsZero() {
		return nil
	}
	numeric, err := numericFromUint128(amount)
	if err != nil {
		return errors.WithStack(err)
	}
	return r.atomically(ctx, func(repo *Repository) error {
		affected, err := repo.queries.DebitBalance(ctx, gen.DebitBalanceParams{
			Amount:  numeric,
			Account: from.Hex(),
		})
		if err != nil {
			return errors.Wrap(err, "failed to debit sender")
		}
		if affected == 0 {
			return errors.Wrapf(errs.InsufficientFunds, "%s can't cover %s", from, amount)
		}
		err = repo.queries.CreditBalance(ctx, gen.CreditBalanceParams{
			Account: to.Hex(),
			Amount:  numeric,
		})
		if err != nil {
			return errors.Wrap(mapConstraintError(err, errs.OverflowUint128), "failed to credit recipient")
		}
		return nil
	})
}
