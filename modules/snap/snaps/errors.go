package snaps

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/nft-snap/common/errs"
)

var (
	ErrMintFeeTooLow         = errors.Mark(errors.New("mint fee too low"), errs.InvalidArgument)
	ErrInvalidFeeBasisPoints = errors.Mark(errors.New("seller fee basis points must be between 0 and 10000"), errs.InvalidArgument)
	ErrMintingEnded          = errors.Mark(errors.New("minting has ended"), errs.Conflict)
	ErrInsufficientPayment   = errors.Mark(errors.New("insufficient payment"), errs.InvalidArgument)
	ErrExcessPayment         = errors.Mark(errors.New("payment exceeds mint fee"), errs.InvalidArgument)
	ErrInvalidRecipient      = errors.Mark(errors.New("invalid recipient"), errs.InvalidArgument)
	ErrUnauthorizedBurn      = errors.Mark(errors.New("caller is not allowed to burn while the snap is visible"), errs.Unauthorized)
	ErrUnknownInstance       = errors.Mark(errors.New("unknown snap instance"), errs.NotFound)
	ErrItemNotFound          = errors.Mark(errors.New("item not found"), errs.NotFound)

	// ErrInsufficientFunds is returned by the ledger when the payer can't cover the mint fee.
	ErrInsufficientFunds = errs.InsufficientFunds
)
