package snaps

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/nft-snap/modules/snap/internal/entity"
	"github.com/gaze-network/nft-snap/modules/snap/repository/memory"
	"github.com/gaze-network/nft-snap/pkg/decimals"
	"github.com/gaze-network/uint128"
	"github.com/stretchr/testify/require"
)

var (
	testRegistryAddress = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	wallet0             = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	wallet1             = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	wallet2             = common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA6293BC")

	testStart   = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	testMintFee = decimals.MustParseEther("0.0000092")
	testFloor   = decimals.MustParseEther("0.000001")
)

var testDescriptor = entity.Descriptor{
	Name:                 "Test Snap",
	Description:          "This is a test snap",
	Image:                "ipfs://QmXxZWr5AQf25yu1UswNm2cfGbaUbR5U3ejH1WfFEP8f1e",
	ExternalLink:         "https://testing.snap",
	SellerFeeBasisPoints: 100,
}

// recorder collects notified events.
type recorder struct {
	mu     sync.Mutex
	events []entity.Event
}

func (r *recorder) Notify(_ context.Context, event entity.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recorder) Kinds() []entity.EventKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	kinds := make([]entity.EventKind, 0, len(r.events))
	for _, e := range r.events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

type testEnv struct {
	registry *Registry
	repo     *memory.Repository
	clock    *ManualClock
	recorder *recorder
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		repo:     memory.NewRepository(),
		clock:    NewManualClock(testStart),
		recorder: &recorder{},
	}
	registry, err := NewRegistry(env.repo, RegistryConfig{
		Address:          testRegistryAddress,
		MintFeeFloor:     testFloor,
		MintWindow:       24 * time.Hour,
		VisibilityWindow: 48 * time.Hour,
		Clock:            env.clock,
		Notifier:         env.recorder,
	})
	require.NoError(t, err)
	env.registry = registry
	return env
}

func (env *testEnv) createSnap(t *testing.T, mintFee uint128.Uint128) *Instance {
	t.Helper()
	id, err := env.registry.CreateSnap(context.Background(), CreateSnapParams{
		Caller:         wallet0,
		CollectionName: "Test Snap",
		Symbol:         "NFTSNAP",
		Descriptor:     testDescriptor,
		ImageURI:       "ipfs://QmXxZWr5AQf25yu1UswNm2cfGbaUbR5U3ejH1WfFEP8f1e",
		MetadataURI:    "ipfs://QmRZ86jmHScFm94hoED2FmB6SjqpuACgy6VYN5nTibxwSB",
		MintFee:        mintFee,
		Owner:          wallet1,
	})
	require.NoError(t, err)
	instance, err := env.registry.GetSnap(id)
	require.NoError(t, err)
	return instance
}

func (env *testEnv) fund(t *testing.T, account common.Address, ether string) {
	t.Helper()
	require.NoError(t, env.repo.Credit(context.Background(), account, decimals.MustParseEther(ether)))
}
