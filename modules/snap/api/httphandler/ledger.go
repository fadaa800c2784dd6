package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/nft-snap/common/errs"
	"github.com/gofiber/fiber/v2"
)

type addressRequest struct {
	Address string `params:"address"`
}

type creditRequest struct {
	Amount string `json:"amount"` // in ether
}

type balanceResult struct {
	Address string `json:"address"`
	Balance amount `json:"balance"`
}

type balanceResponse = HttpResponse[balanceResult]

func (h *HttpHandler) parseAccount(ctx *fiber.Ctx) (common.Address, error) {
	var req addressRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return common.Address{}, invalidRequest(err)
	}
	account, err := parseAddress("address", req.Address)
	if err != nil {
		return common.Address{}, errs.WithPublicMessage(err, "validation error")
	}
	return account, nil
}

func (h *HttpHandler) GetBalance(ctx *fiber.Ctx) (err error) {
	account, err := h.parseAccount(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	balance, err := h.dg.GetBalance(ctx.UserContext(), account)
	if err != nil {
		return errors.Wrap(err, "error during GetBalance")
	}
	return errors.WithStack(ctx.JSON(balanceResponse{
		Result: &balanceResult{Address: account.Hex(), Balance: newAmount(balance)},
	}))
}

// Credit funds an account out of thin air. It is only mounted when the faucet is enabled.
func (h *HttpHandler) Credit(ctx *fiber.Ctx) (err error) {
	account, err := h.parseAccount(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	var req creditRequest
	if err := ctx.BodyParser(&req); err != nil {
		return invalidRequest(err)
	}
	credit, err := parseEther("amount", req.Amount)
	if err != nil {
		return errs.WithPublicMessage(err, "validation error")
	}
	if credit.IsZero() {
		return errs.NewPublicError("validation error: 'amount' must be positive")
	}

	if err := h.dg.Credit(ctx.UserContext(), account, credit); err != nil {
		if errors.Is(err, errs.OverflowUint128) {
			return errs.WithPublicMessageCode(err, "can't credit", "balance_overflow")
		}
		return errors.Wrap(err, "error during Credit")
	}
	balance, err := h.dg.GetBalance(ctx.UserContext(), account)
	if err != nil {
		return errors.Wrap(err, "error during GetBalance")
	}
	return errors.WithStack(ctx.JSON(balanceResponse{
		Result: &balanceResult{Address: account.Hex(), Balance: newAmount(balance)},
	}))
}
