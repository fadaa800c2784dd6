package snaps

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/nft-snap/common/errs"
	"github.com/gaze-network/nft-snap/modules/snap/datagateway/mocks"
	"github.com/gaze-network/nft-snap/modules/snap/internal/entity"
	"github.com/gaze-network/uint128"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMint(t *testing.T) {
	ctx := context.Background()

	t.Run("first item", func(t *testing.T) {
		env := newTestEnv(t)
		instance := env.createSnap(t, testMintFee)
		env.fund(t, wallet2, "1")

		itemId, err := instance.Mint(ctx, MintParams{Caller: wallet2, To: wallet0, Payment: testMintFee})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), itemId)

		holder, err := instance.OwnerOf(1)
		require.NoError(t, err)
		assert.Equal(t, wallet0, holder)
		assert.Equal(t, uint64(1), instance.TotalSupply())

		// fee recipient is unset, so the creator is paid
		balance, err := env.repo.GetBalance(ctx, wallet0)
		require.NoError(t, err)
		assert.Equal(t, testMintFee, balance)
	})

	t.Run("sequential ids", func(t *testing.T) {
		env := newTestEnv(t)
		instance := env.createSnap(t, testMintFee)
		env.fund(t, wallet2, "1")

		for expected := uint64(1); expected <= 5; expected++ {
			itemId, err := instance.Mint(ctx, MintParams{Caller: wallet2, To: wallet2, Payment: testMintFee})
			require.NoError(t, err)
			assert.Equal(t, expected, itemId)
		}
		assert.Equal(t, uint64(5), instance.TotalSupply())
		assert.Equal(t, []uint64{1, 2, 3, 4, 5}, instance.ItemIds())
	})

	t.Run("fee recipient", func(t *testing.T) {
		env := newTestEnv(t)
		descriptor := testDescriptor
		descriptor.FeeRecipient = common.HexToAddress("0x00000000000000000000000000000000000000fe")
		id, err := env.registry.CreateSnap(ctx, CreateSnapParams{
			Caller:         wallet0,
			CollectionName: "Test Snap",
			Symbol:         "NFTSNAP",
			Descriptor:     descriptor,
			MintFee:        testMintFee,
			Owner:          wallet1,
		})
		require.NoError(t, err)
		instance, err := env.registry.GetSnap(id)
		require.NoError(t, err)
		env.fund(t, wallet2, "1")

		_, err = instance.Mint(ctx, MintParams{Caller: wallet2, To: wallet2, Payment: testMintFee})
		require.NoError(t, err)

		balance, err := env.repo.GetBalance(ctx, descriptor.FeeRecipient)
		require.NoError(t, err)
		assert.Equal(t, testMintFee, balance)
	})

	testCases := []struct {
		name    string
		payment uint128.Uint128
		to      common.Address
		fund    string
		err     error
	}{
		{name: "no payment", payment: uint128.Zero, to: wallet2, fund: "1", err: ErrInsufficientPayment},
		{name: "not enough", payment: testMintFee.Sub64(1), to: wallet2, fund: "1", err: ErrInsufficientPayment},
		{name: "too much", payment: testMintFee.Add64(1), to: wallet2, fund: "1", err: ErrExcessPayment},
		{name: "zero recipient", payment: testMintFee, to: common.Address{}, fund: "1", err: ErrInvalidRecipient},
		{name: "unfunded payer", payment: testMintFee, to: wallet2, fund: "0", err: ErrInsufficientFunds},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			instance := env.createSnap(t, testMintFee)
			env.fund(t, wallet2, tc.fund)

			_, err := instance.Mint(ctx, MintParams{Caller: wallet2, To: tc.to, Payment: tc.payment})
			assert.ErrorIs(t, err, tc.err)
			assert.Zero(t, instance.TotalSupply())
			assert.Equal(t, []entity.EventKind{entity.EventKindSnapMade}, env.recorder.Kinds())
		})
	}

	t.Run("minting ended wins over payment errors", func(t *testing.T) {
		env := newTestEnv(t)
		instance := env.createSnap(t, testMintFee)
		env.clock.Advance(24 * time.Hour)

		_, err := instance.Mint(ctx, MintParams{Caller: wallet2, To: wallet2, Payment: uint128.Zero})
		assert.ErrorIs(t, err, ErrMintingEnded)
	})
}

func TestMintConcurrent(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	instance := env.createSnap(t, testMintFee)
	env.fund(t, wallet2, "1")

	const n = 32
	ids := make(chan uint64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			itemId, err := instance.Mint(ctx, MintParams{Caller: wallet2, To: wallet2, Payment: testMintFee})
			assert.NoError(t, err)
			ids <- itemId
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[uint64]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "item #%d allocated twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
	for id := uint64(1); id <= n; id++ {
		assert.True(t, seen[id], "item #%d missing", id)
	}
}

func TestBurn(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*testEnv, *Instance) {
		env := newTestEnv(t)
		instance := env.createSnap(t, testMintFee)
		env.fund(t, wallet2, "1")
		_, err := instance.Mint(ctx, MintParams{Caller: wallet2, To: wallet2, Payment: testMintFee})
		require.NoError(t, err)
		return env, instance
	}

	t.Run("owner while minting", func(t *testing.T) {
		_, instance := setup(t)
		require.NoError(t, instance.Burn(ctx, BurnParams{Caller: wallet1, ItemId: 1}))
		assert.Zero(t, instance.TotalSupply())
	})

	t.Run("holder is not the owner", func(t *testing.T) {
		_, instance := setup(t)
		err := instance.Burn(ctx, BurnParams{Caller: wallet2, ItemId: 1})
		assert.ErrorIs(t, err, ErrUnauthorizedBurn)
		assert.True(t, errors.Is(err, errs.Unauthorized))
		assert.Equal(t, uint64(1), instance.TotalSupply())
	})

	t.Run("stranger while closed but visible", func(t *testing.T) {
		env, instance := setup(t)
		env.clock.Advance(36 * time.Hour)
		err := instance.Burn(ctx, BurnParams{Caller: wallet2, ItemId: 1})
		assert.ErrorIs(t, err, ErrUnauthorizedBurn)
	})

	t.Run("anyone after expiry", func(t *testing.T) {
		env, instance := setup(t)
		env.clock.Advance(48 * time.Hour)
		require.NoError(t, instance.Burn(ctx, BurnParams{Caller: common.HexToAddress("0x1234"), ItemId: 1}))
		assert.Zero(t, instance.TotalSupply())
	})

	t.Run("missing item", func(t *testing.T) {
		_, instance := setup(t)
		err := instance.Burn(ctx, BurnParams{Caller: wallet1, ItemId: 2})
		assert.ErrorIs(t, err, ErrItemNotFound)
		assert.True(t, errors.Is(err, errs.NotFound))
	})

	t.Run("burned item is gone for good", func(t *testing.T) {
		env, instance := setup(t)
		require.NoError(t, instance.Burn(ctx, BurnParams{Caller: wallet1, ItemId: 1}))

		err := instance.Burn(ctx, BurnParams{Caller: wallet1, ItemId: 1})
		assert.ErrorIs(t, err, ErrItemNotFound)
		_, err = instance.OwnerOf(1)
		assert.ErrorIs(t, err, ErrItemNotFound)

		itemId, err := instance.Mint(ctx, MintParams{Caller: wallet2, To: wallet2, Payment: testMintFee})
		require.NoError(t, err)
		assert.Equal(t, uint64(2), itemId, "burned ids are never reused")

		assert.Equal(t, []entity.EventKind{
			entity.EventKindSnapMade,
			entity.EventKindMinted,
			entity.EventKindBurned,
			entity.EventKindMinted,
		}, env.recorder.Kinds())
	})

	t.Run("missing item is reported before authorization", func(t *testing.T) {
		_, instance := setup(t)
		err := instance.Burn(ctx, BurnParams{Caller: wallet2, ItemId: 9})
		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}

func TestName(t *testing.T) {
	env := newTestEnv(t)
	instance := env.createSnap(t, testMintFee)

	assert.Equal(t, "Test Snap", instance.Name())
	assert.Equal(t, "NFTSNAP", instance.Symbol())

	env.clock.Advance(47 * time.Hour)
	assert.Equal(t, "Test Snap", instance.Name())

	env.clock.Advance(time.Hour)
	assert.Equal(t, ExpiredName, instance.Name())
	assert.Equal(t, "NFTSNAP", instance.Symbol())
}

func TestInfo(t *testing.T) {
	env := newTestEnv(t)
	instance := env.createSnap(t, testMintFee)
	env.clock.Advance(30 * time.Hour)

	info := instance.Info()
	assert.Equal(t, instance.Id(), info.Id)
	assert.Equal(t, "Test Snap", info.Name)
	assert.Equal(t, PhaseClosedVisible, info.Phase)
	assert.Equal(t, testStart.Add(30*time.Hour), info.Now)
	assert.Equal(t, testStart.Add(24*time.Hour), info.MintDeadline)
	assert.Equal(t, testStart.Add(48*time.Hour), info.VisibilityDeadline)
	assert.Equal(t, testMintFee, instance.MintFee())
	assert.Equal(t, uint128.Zero, instance.SalePrice())
	assert.Equal(t, wallet1, instance.Owner())
	assert.Equal(t, wallet0, instance.Creator())
	assert.Equal(t, testDescriptor, instance.Descriptor())
}

func TestNewInstanceValidation(t *testing.T) {
	record := entity.Instance{
		Id:               common.HexToAddress("0x01"),
		Descriptor:       testDescriptor,
		MintFee:          testMintFee,
		CreatedAt:        testStart,
		MintWindow:       time.Hour,
		VisibilityWindow: 2 * time.Hour,
	}

	t.Run("basis points", func(t *testing.T) {
		r := record
		r.Descriptor.SellerFeeBasisPoints = MaxFeeBasisPoints
		_, err := newInstance(r, nil, nil, NewManualClock(testStart), Notifiers())
		assert.NoError(t, err)

		r.Descriptor.SellerFeeBasisPoints = MaxFeeBasisPoints + 1
		_, err = newInstance(r, nil, nil, NewManualClock(testStart), Notifiers())
		assert.ErrorIs(t, err, ErrInvalidFeeBasisPoints)
	})

	t.Run("windows", func(t *testing.T) {
		r := record
		r.VisibilityWindow = r.MintWindow
		_, err := newInstance(r, nil, nil, NewManualClock(testStart), Notifiers())
		assert.ErrorIs(t, err, errs.InvalidArgument)
	})

	t.Run("item outside allocated range", func(t *testing.T) {
		r := record
		r.LastItemId = 1
		_, err := newInstance(r, []*entity.Item{{Instance: r.Id, ItemId: 2, Holder: wallet0}}, nil, NewManualClock(testStart), Notifiers())
		assert.ErrorIs(t, err, errs.SomethingWentWrong)
	})
}

func newMockedInstance(t *testing.T) (*Instance, *mocks.SnapDataGatewayWithTx, *mocks.SnapDataGatewayWithTx) {
	t.Helper()
	mockDg := mocks.NewSnapDataGatewayWithTx(t)
	mockDgTx := mocks.NewSnapDataGatewayWithTx(t)
	instance, err := newInstance(entity.Instance{
		Id:               common.HexToAddress("0x01"),
		Descriptor:       testDescriptor,
		MintFee:          testMintFee,
		Creator:          wallet0,
		Owner:            wallet1,
		CreatedAt:        testStart,
		MintWindow:       time.Hour,
		VisibilityWindow: 2 * time.Hour,
	}, nil, mockDg, NewManualClock(testStart), Notifiers())
	require.NoError(t, err)
	return instance, mockDg, mockDgTx
}

func TestMintRollback(t *testing.T) {
	ctx := context.Background()

	t.Run("transfer failure", func(t *testing.T) {
		instance, mockDg, mockDgTx := newMockedInstance(t)
		mockDg.EXPECT().BeginSnapTx(mock.Anything).Return(mockDgTx, nil)
		mockDgTx.EXPECT().Transfer(mock.Anything, wallet2, wallet0, testMintFee).Return(errors.WithStack(errs.InsufficientFunds))
		mockDgTx.EXPECT().Rollback(mock.Anything).Return(nil)

		_, err := instance.Mint(ctx, MintParams{Caller: wallet2, To: wallet2, Payment: testMintFee})
		assert.ErrorIs(t, err, ErrInsufficientFunds)
		assert.Zero(t, instance.TotalSupply())
	})

	t.Run("commit failure", func(t *testing.T) {
		instance, mockDg, mockDgTx := newMockedInstance(t)
		mockDg.EXPECT().BeginSnapTx(mock.Anything).Return(mockDgTx, nil)
		mockDgTx.EXPECT().Transfer(mock.Anything, wallet2, wallet0, testMintFee).Return(nil)
		mockDgTx.EXPECT().CreateItem(mock.Anything, mock.MatchedBy(func(item *entity.Item) bool {
			return item.ItemId == 1 && item.Holder == wallet2
		})).Return(nil)
		mockDgTx.EXPECT().SetLastItemId(mock.Anything, instance.Id(), uint64(1)).Return(nil)
		mockDgTx.EXPECT().CreateEvent(mock.Anything, mock.MatchedBy(func(event *entity.Event) bool {
			return event.Kind == entity.EventKindMinted && event.ItemId == 1
		})).Return(nil)
		mockDgTx.EXPECT().Commit(mock.Anything).Return(errors.New("connection reset"))
		mockDgTx.EXPECT().Rollback(mock.Anything).Return(nil)

		_, err := instance.Mint(ctx, MintParams{Caller: wallet2, To: wallet2, Payment: testMintFee})
		assert.Error(t, err)
		assert.Zero(t, instance.TotalSupply())
		_, err = instance.OwnerOf(1)
		assert.ErrorIs(t, err, ErrItemNotFound)
	})

	t.Run("begin failure", func(t *testing.T) {
		instance, mockDg, _ := newMockedInstance(t)
		mockDg.EXPECT().BeginSnapTx(mock.Anything).Return(nil, errors.New("pool closed"))

		_, err := instance.Mint(ctx, MintParams{Caller: wallet2, To: wallet2, Payment: testMintFee})
		assert.Error(t, err)
		assert.Zero(t, instance.TotalSupply())
	})
}
