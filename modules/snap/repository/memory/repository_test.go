package memory

import (
	"context"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/nft-snap/common/errs"
	"github.com/gaze-network/nft-snap/modules/snap/internal/entity"
	"github.com/gaze-network/uint128"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	alice = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	bob   = common.HexToAddress("0x00000000000000000000000000000000000000b0")
)

func TestTransfer(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	require.NoError(t, repo.Credit(ctx, alice, uint128.From64(100)))

	require.NoError(t, repo.Transfer(ctx, alice, bob, uint128.From64(60)))
	err := repo.Transfer(ctx, alice, bob, uint128.From64(41))
	assert.ErrorIs(t, err, errs.InsufficientFunds)

	balance, err := repo.GetBalance(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, uint128.From64(40), balance)
	balance, err = repo.GetBalance(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, uint128.From64(60), balance)

	balance, err = repo.GetBalance(ctx, common.HexToAddress("0xdead"))
	require.NoError(t, err)
	assert.True(t, balance.IsZero())

	assert.ErrorIs(t, repo.Credit(ctx, bob, uint128.Max), errs.OverflowUint128)
}

func TestTx(t *testing.T) {
	ctx := context.Background()
	instance := &entity.Instance{Id: common.HexToAddress("0x01"), Nonce: 0, CreatedAt: time.Unix(0, 0)}

	t.Run("rollback discards writes", func(t *testing.T) {
		repo := NewRepository()
		tx, err := repo.BeginSnapTx(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.CreateInstance(ctx, instance))
		require.NoError(t, tx.Credit(ctx, alice, uint128.From64(1)))

		instances, err := tx.GetInstances(ctx)
		require.NoError(t, err)
		assert.Len(t, instances, 1)

		require.NoError(t, tx.Rollback(ctx))
		require.NoError(t, tx.Rollback(ctx))

		instances, err = repo.GetInstances(ctx)
		require.NoError(t, err)
		assert.Empty(t, instances)
		balance, err := repo.GetBalance(ctx, alice)
		require.NoError(t, err)
		assert.True(t, balance.IsZero())
	})

	t.Run("commit publishes writes", func(t *testing.T) {
		repo := NewRepository()
		tx, err := repo.BeginSnapTx(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.CreateInstance(ctx, instance))
		require.NoError(t, tx.CreateItem(ctx, &entity.Item{Instance: instance.Id, ItemId: 1, Holder: alice}))
		require.NoError(t, tx.SetLastItemId(ctx, instance.Id, 1))
		require.NoError(t, tx.Commit(ctx))
		require.NoError(t, tx.Rollback(ctx), "rollback after commit is a no-op")

		_, err = tx.GetInstances(ctx)
		assert.ErrorIs(t, err, errs.Conflict)

		instances, err := repo.GetInstances(ctx)
		require.NoError(t, err)
		require.Len(t, instances, 1)
		assert.Equal(t, uint64(1), instances[0].LastItemId)
		items, err := repo.GetItemsByInstance(ctx, instance.Id)
		require.NoError(t, err)
		assert.Equal(t, []*entity.Item{{Instance: instance.Id, ItemId: 1, Holder: alice}}, items)
	})

	t.Run("nested", func(t *testing.T) {
		repo := NewRepository()
		tx, err := repo.BeginSnapTx(ctx)
		require.NoError(t, err)
		defer tx.Rollback(ctx)

		_, err = tx.BeginSnapTx(ctx)
		assert.ErrorIs(t, err, errs.Unsupported)
	})

	t.Run("outside transaction", func(t *testing.T) {
		repo := NewRepository()
		assert.NoError(t, repo.Commit(ctx))
		assert.NoError(t, repo.Rollback(ctx))
	})
}

func TestItemsAndEvents(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	instance := &entity.Instance{Id: common.HexToAddress("0x01")}
	require.NoError(t, repo.CreateInstance(ctx, instance))
	assert.ErrorIs(t, repo.CreateInstance(ctx, instance), errs.Conflict)
	assert.ErrorIs(t, repo.CreateInstance(ctx, &entity.Instance{Id: common.HexToAddress("0x02")}), errs.Conflict, "nonce is reused")

	require.NoError(t, repo.CreateItem(ctx, &entity.Item{Instance: instance.Id, ItemId: 1, Holder: alice}))
	assert.ErrorIs(t, repo.CreateItem(ctx, &entity.Item{Instance: instance.Id, ItemId: 1, Holder: bob}), errs.Conflict)
	assert.ErrorIs(t, repo.CreateItem(ctx, &entity.Item{Instance: common.HexToAddress("0x03"), ItemId: 1}), errs.NotFound)

	require.NoError(t, repo.DeleteItem(ctx, instance.Id, 1))
	assert.ErrorIs(t, repo.DeleteItem(ctx, instance.Id, 1), errs.NotFound)

	for i := uint64(1); i <= 5; i++ {
		require.NoError(t, repo.CreateEvent(ctx, &entity.Event{Instance: instance.Id, Kind: entity.EventKindMinted, ItemId: i}))
	}
	events, err := repo.GetEventsByInstance(ctx, instance.Id, 2, 1)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, uint64(4), events[0].ItemId)
	assert.Equal(t, uint64(3), events[1].ItemId)

	events, err = repo.GetEventsByInstance(ctx, instance.Id, 0, 0)
	require.NoError(t, err)
	assert.Len(t, events, 5)

	events, err = repo.GetEventsByInstance(ctx, instance.Id, 10, 10)
	require.NoError(t, err)
	assert.Empty(t, events)
}
