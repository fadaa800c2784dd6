package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
)

type getItemRequest struct {
	ItemId uint64 `params:"itemId"`
}

type getItemResult struct {
	Instance string `json:"instance"`
	ItemId   uint64 `json:"itemId"`
	Holder   string `json:"holder"`
	TokenURI string `json:"tokenUri"`
}

type getItemResponse = HttpResponse[getItemResult]

func (h *HttpHandler) GetItem(ctx *fiber.Ctx) (err error) {
	instance, err := h.getInstance(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	var req getItemRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return invalidRequest(err)
	}

	holder, err := instance.OwnerOf(req.ItemId)
	if err != nil {
		return publicError(err, "")
	}
	uri, err := instance.TokenURI(req.ItemId)
	if err != nil {
		return publicError(err, "")
	}
	return errors.WithStack(ctx.JSON(getItemResponse{
		Result: &getItemResult{
			Instance: instance.Id().Hex(),
			ItemId:   req.ItemId,
			Holder:   holder.Hex(),
			TokenURI: uri,
		},
	}))
}
