package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/nft-snap/common/errs"
	"github.com/gaze-network/nft-snap/modules/snap/internal/entity"
	"github.com/gaze-network/nft-snap/modules/snap/snaps"
	"github.com/gofiber/fiber/v2"
)

type createSnapRequest struct {
	From                 string `json:"from"`
	Creator              string `json:"creator"` // defaults to from
	CollectionName       string `json:"collectionName"`
	Symbol               string `json:"symbol"`
	Name                 string `json:"name"`
	Description          string `json:"description"`
	Image                string `json:"image"`
	ExternalLink         string `json:"externalLink"`
	SellerFeeBasisPoints uint16 `json:"sellerFeeBasisPoints"`
	FeeRecipient         string `json:"feeRecipient"`
	ImageURI             string `json:"imageUri"`
	MetadataURI          string `json:"metadataUri"`
	MintFee              string `json:"mintFee"` // in ether
	Owner                string `json:"owner"`
	SalePrice            string `json:"salePrice"` // in ether
}

func (r *createSnapRequest) Validate() (snaps.CreateSnapParams, error) {
	var errList []error
	params := snaps.CreateSnapParams{
		CollectionName: r.CollectionName,
		Symbol:         r.Symbol,
		Descriptor: entity.Descriptor{
			Name:                 r.Name,
			Description:          r.Description,
			Image:                r.Image,
			ExternalLink:         r.ExternalLink,
			SellerFeeBasisPoints: r.SellerFeeBasisPoints,
		},
		ImageURI:    r.ImageURI,
		MetadataURI: r.MetadataURI,
	}

	var err error
	if params.Caller, err = parseAddress("from", r.From); err != nil {
		errList = append(errList, err)
	}
	if r.Creator != "" {
		if params.Creator, err = parseAddress("creator", r.Creator); err != nil {
			errList = append(errList, err)
		}
	}
	if params.Owner, err = parseAddress("owner", r.Owner); err != nil {
		errList = append(errList, err)
	}
	if r.FeeRecipient != "" {
		if params.Descriptor.FeeRecipient, err = parseAddress("feeRecipient", r.FeeRecipient); err != nil {
			errList = append(errList, err)
		}
	}
	if r.MintFee == "" {
		errList = append(errList, errors.New("'mintFee' is required"))
	} else if params.MintFee, err = parseEther("mintFee", r.MintFee); err != nil {
		errList = append(errList, err)
	}
	if params.SalePrice, err = parseEther("salePrice", r.SalePrice); err != nil {
		errList = append(errList, err)
	}
	if r.CollectionName == "" {
		errList = append(errList, errors.New("'collectionName' is required"))
	}
	if r.Name == "" {
		params.Descriptor.Name = r.CollectionName
	}
	if params.Owner == (common.Address{}) && r.Owner != "" {
		errList = append(errList, errors.New("'owner' must not be the zero address"))
	}
	return params, errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type createSnapResult struct {
	Id string `json:"id"`
}

type createSnapResponse = HttpResponse[createSnapResult]

func (h *HttpHandler) CreateSnap(ctx *fiber.Ctx) (err error) {
	var req createSnapRequest
	if err := ctx.BodyParser(&req); err != nil {
		return invalidRequest(err)
	}
	params, err := req.Validate()
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := h.registry.CreateSnap(ctx.UserContext(), params)
	if err != nil {
		return publicError(err, "can't create snap")
	}
	return errors.WithStack(ctx.Status(fiber.StatusCreated).JSON(createSnapResponse{
		Result: &createSnapResult{Id: id.Hex()},
	}))
}
