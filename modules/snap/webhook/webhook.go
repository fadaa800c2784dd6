// Package webhook delivers committed snap events to an HTTP endpoint.
package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/nft-snap/common/errs"
	"github.com/gaze-network/nft-snap/modules/snap/internal/entity"
	"github.com/gaze-network/nft-snap/modules/snap/snaps"
	"github.com/gaze-network/nft-snap/pkg/httpclient"
	"github.com/gaze-network/nft-snap/pkg/logger"
	"github.com/gaze-network/nft-snap/pkg/logger/slogx"
	"github.com/valyala/fasthttp"
)

const (
	DefaultQueueSize   = 1024
	DefaultMaxAttempts = 3
	DefaultTimeout     = 5 * time.Second

	SignatureHeader = "X-Snap-Signature"
)

// Delivery results reported to the Recorder.
const (
	ResultDelivered = "delivered"
	ResultFailed    = "failed"
	ResultDropped   = "dropped"
)

type Config struct {
	// URL receives a POST per event. Delivery is disabled when empty.
	URL string `mapstructure:"url"`
	// Secret signs each body with HMAC-SHA256 into the X-Snap-Signature header.
	Secret      string        `mapstructure:"secret"`
	Timeout     time.Duration `mapstructure:"timeout"`
	QueueSize   int           `mapstructure:"queue_size"`
	MaxAttempts int           `mapstructure:"max_attempts"`
	Debug       bool          `mapstructure:"debug"`
}

func (c Config) Enabled() bool {
	return c.URL != ""
}

type Recorder interface {
	ObserveDelivery(result string)
}

type Payload struct {
	Kind      string            `json:"kind"`
	Instance  string            `json:"instance"`
	ItemId    uint64            `json:"itemId,omitempty"`
	Actor     string            `json:"actor,omitempty"`
	Data      map[string]string `json:"data,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

func NewPayload(event entity.Event) Payload {
	payload := Payload{
		Kind:      event.Kind.String(),
		Instance:  event.Instance.Hex(),
		ItemId:    event.ItemId,
		Data:      event.Data,
		Timestamp: event.Timestamp.Unix(),
	}
	if event.Actor != (common.Address{}) {
		payload.Actor = event.Actor.Hex()
	}
	return payload
}

var _ snaps.Notifier = (*Notifier)(nil)

// Notifier queues events without blocking the operation that produced them
// and posts them one at a time, in commit order, from Run.
type Notifier struct {
	client   *httpclient.Client
	config   Config
	recorder Recorder
	backoff  time.Duration

	queue    chan entity.Event
	running  atomic.Bool
	quitOnce sync.Once
	quit     chan struct{}
	done     chan struct{}
}

func New(config Config, recorder Recorder) (*Notifier, error) {
	if !config.Enabled() {
		return nil, errors.Wrap(errs.InvalidArgument, "webhook url is required")
	}
	config.Timeout = utils.Default(config.Timeout, DefaultTimeout)
	config.QueueSize = utils.Default(config.QueueSize, DefaultQueueSize)
	config.MaxAttempts = utils.Default(config.MaxAttempts, DefaultMaxAttempts)

	client, err := httpclient.New(config.URL, httpclient.Config{
		Timeout: config.Timeout,
		Headers: map[string]string{"User-Agent": "nftsnap-webhook"},
		Debug:   config.Debug,
	})
	if err != nil {
		return nil, errors.Wrap(err, "invalid webhook url")
	}
	return &Notifier{
		client:   client,
		config:   config,
		recorder: recorder,
		backoff:  time.Second,
		queue:    make(chan entity.Event, config.QueueSize),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}

// Notify drops the event when the queue is full.
func (n *Notifier) Notify(ctx context.Context, event entity.Event) {
	select {
	case n.queue <- event:
	default:
		n.observe(ResultDropped)
		logger.WarnContext(ctx, "webhook queue is full, dropping event",
			slogx.Stringer("kind", event.Kind),
			slogx.Stringer("instance", event.Instance),
		)
	}
}

func (n *Notifier) Run(ctx context.Context) error {
	if !n.running.CompareAndSwap(false, true) {
		return errors.New("webhook notifier is already running")
	}
	defer close(n.done)

	ctx = logger.WithContext(ctx, slog.String("package", "webhook"))
	for {
		select {
		case <-n.quit:
			n.drain(ctx)
			return nil
		case <-ctx.Done():
			return nil
		case event := <-n.queue:
			n.deliver(ctx, event)
		}
	}
}

// drain delivers what was queued before shutdown, with a single attempt each.
func (n *Notifier) drain(ctx context.Context) {
	for {
		select {
		case event := <-n.queue:
			if err := n.post(ctx, event); err != nil {
				n.observe(ResultFailed)
				logger.WarnContext(ctx, "failed to deliver webhook during shutdown", slogx.Error(err))
				continue
			}
			n.observe(ResultDelivered)
		default:
			return
		}
	}
}

func (n *Notifier) Shutdown() error {
	return n.ShutdownWithContext(context.Background())
}

func (n *Notifier) ShutdownWithContext(ctx context.Context) (err error) {
	n.quitOnce.Do(func() {
		close(n.quit)
		if !n.running.Load() {
			return
		}
		select {
		case <-n.done:
		case <-ctx.Done():
			err = errors.Wrap(ctx.Err(), "webhook notifier shutdown context canceled")
		}
	})
	return
}

func (n *Notifier) deliver(ctx context.Context, event entity.Event) {
	err := n.post(ctx, event)
	for attempt := 1; err != nil && attempt < n.config.MaxAttempts; attempt++ {
		if !n.wait(ctx, n.backoff*time.Duration(attempt)) {
			break
		}
		err = n.post(ctx, event)
	}
	if err == nil {
		n.observe(ResultDelivered)
		return
	}

	n.observe(ResultFailed)
	logger.ErrorContext(ctx, "failed to deliver webhook", err,
		slogx.Stringer("kind", event.Kind),
		slogx.Stringer("instance", event.Instance),
	)
}

// wait reports false if the notifier is stopping.
func (n *Notifier) wait(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-n.quit:
		return false
	case <-ctx.Done():
		return false
	}
}

func (n *Notifier) post(ctx context.Context, event entity.Event) error {
	body, err := json.Marshal(NewPayload(event))
	if err != nil {
		return errors.Wrap(err, "can't marshal webhook payload")
	}
	var header map[string]string
	if n.config.Secret != "" {
		header = map[string]string{SignatureHeader: Sign(n.config.Secret, body)}
	}

	resp, err := n.client.Do(ctx, fasthttp.MethodPost, "", body, header)
	if err != nil {
		return errors.WithStack(err)
	}
	if !resp.IsSuccess() {
		return errors.Errorf("webhook responded with status %d", resp.StatusCode)
	}
	return nil
}

func (n *Notifier) observe(result string) {
	if n.recorder != nil {
		n.recorder.ObserveDelivery(result)
	}
}

// Sign returns "sha256=" followed by the hex HMAC-SHA256 of body.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}
