package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/nft-snap/common/errs"
	"github.com/gaze-network/nft-snap/modules/snap/datagateway"
	"github.com/gaze-network/nft-snap/modules/snap/snaps"
	"github.com/gaze-network/nft-snap/pkg/decimals"
	"github.com/gaze-network/uint128"
)

type Datagateway interface {
	datagateway.SnapReaderDataGateway
	datagateway.LedgerDataGateway
}

type HttpHandler struct {
	registry *snaps.Registry
	dg       Datagateway
	faucet   bool
}

func New(registry *snaps.Registry, dg Datagateway, faucet bool) *HttpHandler {
	return &HttpHandler{
		registry: registry,
		dg:       dg,
		faucet:   faucet,
	}
}

type HttpResponse[T any] struct {
	Error  *string `json:"error"`
	Result *T      `json:"result,omitempty"`
}

// amount is an amount rendered both in ether and in wei.
type amount struct {
	Ether string `json:"ether"`
	Wei   string `json:"wei"`
}

func newAmount(wei uint128.Uint128) amount {
	return amount{
		Ether: decimals.FormatEther(wei),
		Wei:   wei.String(),
	}
}

func parseAddress(field string, value string) (common.Address, error) {
	if !common.IsHexAddress(value) {
		return common.Address{}, errors.Errorf("%s '%s' is not a valid address", field, value)
	}
	return common.HexToAddress(value), nil
}

func parseEther(field string, value string) (uint128.Uint128, error) {
	if value == "" {
		return uint128.Zero, nil
	}
	wei, err := decimals.ParseEther(value)
	if err != nil {
		return uint128.Uint128{}, errors.Wrapf(err, "%s '%s' is not a valid ether amount", field, value)
	}
	return wei, nil
}

var publicCodes = []struct {
	err  error
	code string
	// fixed replaces the error text in the response when the wrapped detail is private.
	fixed string
}{
	{err: snaps.ErrMintFeeTooLow, code: "mint_fee_too_low"},
	{err: snaps.ErrInvalidFeeBasisPoints, code: "invalid_fee_basis_points"},
	{err: snaps.ErrMintingEnded, code: "minting_ended"},
	{err: snaps.ErrInsufficientPayment, code: "insufficient_payment"},
	{err: snaps.ErrExcessPayment, code: "excess_payment"},
	{err: snaps.ErrInvalidRecipient, code: "invalid_recipient"},
	{err: snaps.ErrUnauthorizedBurn, code: "unauthorized_burn"},
	{err: snaps.ErrUnknownInstance, code: "unknown_instance"},
	{err: snaps.ErrItemNotFound, code: "item_not_found"},
	{err: snaps.ErrInsufficientFunds, code: "insufficient_funds", fixed: "insufficient funds"},
}

// publicError exposes domain rule violations to the client and leaves everything else internal.
func publicError(err error, prefix string) error {
	for _, c := range publicCodes {
		if !errors.Is(err, c.err) {
			continue
		}
		if c.fixed == "" {
			return errs.WithPublicMessageCode(err, prefix, c.code)
		}
		message := c.fixed
		if prefix != "" {
			message = prefix + ": " + message
		}
		return errs.WithFixedPublicMessage(err, message, c.code)
	}
	return errors.Wrap(err, prefix)
}

// invalidRequest reports a body, params or query that could not be decoded.
func invalidRequest(err error) error {
	return errs.WithPublicMessageCode(err, "invalid request", "invalid_request")
}
