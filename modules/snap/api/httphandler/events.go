package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/nft-snap/common/errs"
	"github.com/gaze-network/nft-snap/modules/snap/internal/entity"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

const (
	defaultEventsLimit = 100
	maxEventsLimit     = 1000
)

type getEventsRequest struct {
	Limit  int32 `query:"limit"`
	Offset int32 `query:"offset"`
}

func (r *getEventsRequest) Validate() error {
	var errList []error
	if r.Limit < 0 || r.Limit > maxEventsLimit {
		errList = append(errList, errors.Errorf("'limit' must be between 0 and %d", maxEventsLimit))
	}
	if r.Offset < 0 {
		errList = append(errList, errors.New("'offset' must be non-negative"))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type eventResult struct {
	Kind      string            `json:"kind"`
	ItemId    uint64            `json:"itemId,omitempty"`
	Actor     string            `json:"actor"`
	Data      map[string]string `json:"data"`
	Timestamp int64             `json:"timestamp"`
}

type getEventsResult struct {
	Instance string        `json:"instance"`
	Events   []eventResult `json:"events"`
}

type getEventsResponse = HttpResponse[getEventsResult]

func (h *HttpHandler) GetEvents(ctx *fiber.Ctx) (err error) {
	instance, err := h.getInstance(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	var req getEventsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return invalidRequest(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}
	if req.Limit == 0 {
		req.Limit = defaultEventsLimit
	}

	events, err := h.dg.GetEventsByInstance(ctx.UserContext(), instance.Id(), req.Limit, req.Offset)
	if err != nil {
		return errors.Wrap(err, "error during GetEventsByInstance")
	}
	return errors.WithStack(ctx.JSON(getEventsResponse{
		Result: &getEventsResult{
			Instance: instance.Id().Hex(),
			Events: lo.Map(events, func(event *entity.Event, _ int) eventResult {
				return eventResult{
					Kind:      event.Kind.String(),
					ItemId:    event.ItemId,
					Actor:     event.Actor.Hex(),
					Data:      event.Data,
					Timestamp: event.Timestamp.Unix(),
				}
			}),
		},
	}))
}
