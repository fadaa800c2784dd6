package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/nft-snap/common/errs"
	"github.com/gaze-network/nft-snap/modules/snap/snaps"
	"github.com/gofiber/fiber/v2"
)

type mintRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Payment string `json:"payment"` // in ether
}

func (r *mintRequest) Validate() (snaps.MintParams, error) {
	var errList []error
	var params snaps.MintParams
	var err error
	if params.Caller, err = parseAddress("from", r.From); err != nil {
		errList = append(errList, err)
	}
	if r.To == "" {
		params.To = params.Caller
	} else if params.To, err = parseAddress("to", r.To); err != nil {
		errList = append(errList, err)
	}
	if params.Payment, err = parseEther("payment", r.Payment); err != nil {
		errList = append(errList, err)
	}
	return params, errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type mintResult struct {
	ItemId uint64 `json:"itemId"`
}

type mintResponse = HttpResponse[mintResult]

func (h *HttpHandler) Mint(ctx *fiber.Ctx) (err error) {
	instance, err := h.getInstance(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	var req mintRequest
	if err := ctx.BodyParser(&req); err != nil {
		return invalidRequest(err)
	}
	params, err := req.Validate()
	if err != nil {
		return errors.WithStack(err)
	}

	itemId, err := instance.Mint(ctx.UserContext(), params)
	if err != nil {
		return publicError(err, "can't mint")
	}
	return errors.WithStack(ctx.Status(fiber.StatusCreated).JSON(mintResponse{
		Result: &mintResult{ItemId: itemId},
	}))
}

type burnRequest struct {
	From   string `json:"from"`
	ItemId uint64 `json:"itemId"`
}

func (r *burnRequest) Validate() (snaps.BurnParams, error) {
	var errList []error
	params := snaps.BurnParams{ItemId: r.ItemId}
	var err error
	if params.Caller, err = parseAddress("from", r.From); err != nil {
		errList = append(errList, err)
	}
	if r.ItemId == 0 {
		errList = append(errList, errors.New("'itemId' is required"))
	}
	return params, errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type burnResult struct {
	ItemId uint64 `json:"itemId"`
	Burned bool   `json:"burned"`
}

type burnResponse = HttpResponse[burnResult]

func (h *HttpHandler) Burn(ctx *fiber.Ctx) (err error) {
	instance, err := h.getInstance(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	var req burnRequest
	if err := ctx.BodyParser(&req); err != nil {
		return invalidRequest(err)
	}
	params, err := req.Validate()
	if err != nil {
		return errors.WithStack(err)
	}

	if err := instance.Burn(ctx.UserContext(), params); err != nil {
		return publicError(err, "can't burn")
	}
	return errors.WithStack(ctx.JSON(burnResponse{
		Result: &burnResult{ItemId: params.ItemId, Burned: true},
	}))
}
