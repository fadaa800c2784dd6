package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/nft-snap/common/errs"
	"github.com/gaze-network/nft-snap/modules/snap/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu      sync.Mutex
	results map[string]int
}

func (r *recorder) ObserveDelivery(result string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.results == nil {
		r.results = make(map[string]int)
	}
	r.results[result]++
}

func (r *recorder) count(result string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.results[result]
}

type received struct {
	payload   Payload
	signature string
}

func newReceiver(t *testing.T, failures int32) (*httptest.Server, <-chan received) {
	t.Helper()
	ch := make(chan received, 16)
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= failures {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		body, _ := io.ReadAll(r.Body)
		var payload Payload
		if err := json.Unmarshal(body, &payload); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.Header.Get(SignatureHeader) != "" && r.Header.Get(SignatureHeader) != Sign("s3cret", body) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		ch <- received{payload: payload, signature: r.Header.Get(SignatureHeader)}
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)
	return server, ch
}

var (
	testInstance = common.HexToAddress("0xa16E02E87b7454126E5E10d957A927A7F5B5d2be")
	testActor    = common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA6293BC")
	testTime     = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
)

func startNotifier(t *testing.T, n *Notifier) {
	t.Helper()
	errCh := make(chan error, 1)
	go func() { errCh <- n.Run(context.Background()) }()
	t.Cleanup(func() {
		require.NoError(t, n.Shutdown())
		require.NoError(t, <-errCh)
	})
}

func receive(t *testing.T, ch <-chan received) received {
	t.Helper()
	select {
	case r := <-ch:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("webhook was not delivered")
		return received{}
	}
}

func TestDeliver(t *testing.T) {
	server, ch := newReceiver(t, 0)
	rec := &recorder{}
	n, err := New(Config{URL: server.URL, Secret: "s3cret"}, rec)
	require.NoError(t, err)
	startNotifier(t, n)

	n.Notify(context.Background(), entity.Event{Instance: testInstance, Kind: entity.EventKindMinted, ItemId: 1, Actor: testActor, Timestamp: testTime})
	n.Notify(context.Background(), entity.Event{Instance: testInstance, Kind: entity.EventKindPhaseChanged, Data: map[string]string{"phase": "expired"}, Timestamp: testTime})

	first := receive(t, ch)
	assert.Equal(t, Payload{
		Kind:      "minted",
		Instance:  testInstance.Hex(),
		ItemId:    1,
		Actor:     testActor.Hex(),
		Timestamp: testTime.Unix(),
	}, first.payload)
	assert.NotEmpty(t, first.signature)

	second := receive(t, ch)
	assert.Equal(t, "phase_changed", second.payload.Kind)
	assert.Empty(t, second.payload.Actor)
	assert.Equal(t, map[string]string{"phase": "expired"}, second.payload.Data)

	assert.Eventually(t, func() bool { return rec.count(ResultDelivered) == 2 }, time.Second, 10*time.Millisecond)
}

func TestRetry(t *testing.T) {
	server, ch := newReceiver(t, 2)
	rec := &recorder{}
	n, err := New(Config{URL: server.URL, MaxAttempts: 3}, rec)
	require.NoError(t, err)
	n.backoff = time.Millisecond
	startNotifier(t, n)

	n.Notify(context.Background(), entity.Event{Instance: testInstance, Kind: entity.EventKindBurned, ItemId: 7, Timestamp: testTime})
	got := receive(t, ch)
	assert.Equal(t, uint64(7), got.payload.ItemId)
	assert.Empty(t, got.signature)
	assert.Eventually(t, func() bool { return rec.count(ResultDelivered) == 1 }, time.Second, 10*time.Millisecond)
	assert.Zero(t, rec.count(ResultFailed))
}

func TestGiveUp(t *testing.T) {
	server, _ := newReceiver(t, 100)
	rec := &recorder{}
	n, err := New(Config{URL: server.URL, MaxAttempts: 2}, rec)
	require.NoError(t, err)
	n.backoff = time.Millisecond
	startNotifier(t, n)

	n.Notify(context.Background(), entity.Event{Instance: testInstance, Kind: entity.EventKindSnapMade, Timestamp: testTime})
	assert.Eventually(t, func() bool { return rec.count(ResultFailed) == 1 }, 5*time.Second, 10*time.Millisecond)
}

func TestQueueFull(t *testing.T) {
	rec := &recorder{}
	n, err := New(Config{URL: "http://127.0.0.1:1", QueueSize: 1}, rec)
	require.NoError(t, err)

	n.Notify(context.Background(), entity.Event{Kind: entity.EventKindMinted})
	n.Notify(context.Background(), entity.Event{Kind: entity.EventKindMinted})
	assert.Equal(t, 1, rec.count(ResultDropped))
	assert.NoError(t, n.Shutdown(), "shutdown before run")
}

func TestShutdownDrains(t *testing.T) {
	server, ch := newReceiver(t, 0)
	rec := &recorder{}
	n, err := New(Config{URL: server.URL}, rec)
	require.NoError(t, err)

	n.Notify(context.Background(), entity.Event{Instance: testInstance, Kind: entity.EventKindMinted, ItemId: 1, Timestamp: testTime})
	n.Notify(context.Background(), entity.Event{Instance: testInstance, Kind: entity.EventKindMinted, ItemId: 2, Timestamp: testTime})

	// quit is already closed when Run starts, so everything goes through drain
	require.NoError(t, n.Shutdown())
	require.NoError(t, n.Run(context.Background()))

	assert.Equal(t, uint64(1), receive(t, ch).payload.ItemId)
	assert.Equal(t, uint64(2), receive(t, ch).payload.ItemId)
	assert.Equal(t, 2, rec.count(ResultDelivered))
}

func TestNew(t *testing.T) {
	_, err := New(Config{}, nil)
	assert.ErrorIs(t, err, errs.InvalidArgument)
	_, err = New(Config{URL: "ftp://example.com"}, nil)
	assert.Error(t, err)
}

func TestSign(t *testing.T) {
	assert.Equal(t,
		"sha256=f7bc83f430538424b13298e6aa6fb143ef4d59a14946175997479dbc2d1a3cd8",
		Sign("key", []byte("The quick brown fox jumps over the lazy dog")),
	)
}
