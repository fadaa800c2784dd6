package httphandler

import (
	"github.com/gofiber/fiber/v2"
)

func (h *HttpHandler) Mount(router fiber.Router) error {
	r := router.Group("/v1/snaps")

	r.Post("/", h.CreateSnap)
	r.Get("/", h.GetSnaps)
	r.Get("/active", h.GetActiveSnaps)
	r.Get("/visible", h.GetVisibleSnaps)
	r.Get("/:id", h.GetSnap)
	r.Get("/:id/active", h.IsActive)
	r.Get("/:id/visible", h.IsVisible)
	r.Get("/:id/contract-uri", h.GetContractURI)
	r.Get("/:id/events", h.GetEvents)
	r.Post("/:id/mint", h.Mint)
	r.Post("/:id/burn", h.Burn)
	r.Get("/:id/items/:itemId", h.GetItem)

	ledger := router.Group("/v1/ledger")
	ledger.Get("/:address", h.GetBalance)
	if h.faucet {
		ledger.Post("/:address/credit", h.Credit)
	}
	return nil
}
