package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/nft-snap/common/errs"
	"github.com/gaze-network/nft-snap/modules/snap/snaps"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type snapIdRequest struct {
	Id string `params:"id"`
}

func (r *snapIdRequest) Validate() (common.Address, error) {
	id, err := parseAddress("id", r.Id)
	if err != nil {
		return common.Address{}, errs.WithPublicMessage(err, "validation error")
	}
	return id, nil
}

func (h *HttpHandler) getInstance(ctx *fiber.Ctx) (*snaps.Instance, error) {
	var req snapIdRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return nil, invalidRequest(err)
	}
	id, err := req.Validate()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	instance, err := h.registry.GetSnap(id)
	if err != nil {
		return nil, publicError(err, "")
	}
	return instance, nil
}

type snapResult struct {
	Id                   string `json:"id"`
	Nonce                uint64 `json:"nonce"`
	Name                 string `json:"name"`
	CollectionName       string `json:"collectionName"`
	Symbol               string `json:"symbol"`
	Phase                string `json:"phase"`
	Active               bool   `json:"active"`
	Visible              bool   `json:"visible"`
	Description          string `json:"description"`
	Image                string `json:"image"`
	ExternalLink         string `json:"externalLink"`
	SellerFeeBasisPoints uint16 `json:"sellerFeeBasisPoints"`
	FeeRecipient         string `json:"feeRecipient"`
	ImageURI             string `json:"imageUri"`
	MetadataURI          string `json:"metadataUri"`
	MintFee              amount `json:"mintFee"`
	SalePrice            amount `json:"salePrice"`
	Creator              string `json:"creator"`
	Owner                string `json:"owner"`
	TotalSupply          uint64 `json:"totalSupply"`
	LastItemId           uint64 `json:"lastItemId"`
	CreatedAt            int64  `json:"createdAt"` // unix timestamp
	MintDeadline         int64  `json:"mintDeadline"`
	VisibilityDeadline   int64  `json:"visibilityDeadline"`
}

func mapSnapResult(instance *snaps.Instance) snapResult {
	info := instance.Info()
	descriptor := instance.Descriptor()
	return snapResult{
		Id:                   info.Id.Hex(),
		Nonce:                instance.Nonce(),
		Name:                 info.Name,
		CollectionName:       instance.CollectionName(),
		Symbol:               info.Symbol,
		Phase:                info.Phase.String(),
		Active:               info.Phase.IsActive(),
		Visible:              info.Phase.IsVisible(),
		Description:          descriptor.Description,
		Image:                descriptor.Image,
		ExternalLink:         descriptor.ExternalLink,
		SellerFeeBasisPoints: descriptor.SellerFeeBasisPoints,
		FeeRecipient:         instance.FeeRecipient().Hex(),
		ImageURI:             instance.ImageURI(),
		MetadataURI:          instance.MetadataURI(),
		MintFee:              newAmount(instance.MintFee()),
		SalePrice:            newAmount(instance.SalePrice()),
		Creator:              instance.Creator().Hex(),
		Owner:                instance.Owner().Hex(),
		TotalSupply:          info.TotalSupply,
		LastItemId:           info.LastItemId,
		CreatedAt:            instance.CreatedAt().Unix(),
		MintDeadline:         info.MintDeadline.Unix(),
		VisibilityDeadline:   info.VisibilityDeadline.Unix(),
	}
}

type getSnapResponse = HttpResponse[snapResult]

func (h *HttpHandler) GetSnap(ctx *fiber.Ctx) (err error) {
	instance, err := h.getInstance(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	result := mapSnapResult(instance)
	return errors.WithStack(ctx.JSON(getSnapResponse{Result: &result}))
}

type getSnapsResult struct {
	Snaps []snapResult `json:"snaps"`
}

type getSnapsResponse = HttpResponse[getSnapsResult]

func (h *HttpHandler) GetSnaps(ctx *fiber.Ctx) (err error) {
	result := getSnapsResult{
		Snaps: lo.Map(h.registry.Instances(), func(instance *snaps.Instance, _ int) snapResult {
			return mapSnapResult(instance)
		}),
	}
	return errors.WithStack(ctx.JSON(getSnapsResponse{Result: &result}))
}

type snapIdsResult struct {
	Ids []string `json:"ids"`
}

type snapIdsResponse = HttpResponse[snapIdsResult]

func (h *HttpHandler) GetActiveSnaps(ctx *fiber.Ctx) (err error) {
	return h.snapIds(ctx, h.registry.GetActiveSnaps())
}

func (h *HttpHandler) GetVisibleSnaps(ctx *fiber.Ctx) (err error) {
	return h.snapIds(ctx, h.registry.GetVisibleSnaps())
}

func (h *HttpHandler) snapIds(ctx *fiber.Ctx, ids []common.Address) error {
	result := snapIdsResult{
		Ids: lo.Map(ids, func(id common.Address, _ int) string {
			return id.Hex()
		}),
	}
	return errors.WithStack(ctx.JSON(snapIdsResponse{Result: &result}))
}

type flagResult struct {
	Id    string `json:"id"`
	Value bool   `json:"value"`
}

type flagResponse = HttpResponse[flagResult]

func (h *HttpHandler) IsActive(ctx *fiber.Ctx) (err error) {
	return h.flag(ctx, h.registry.IsActive)
}

func (h *HttpHandler) IsVisible(ctx *fiber.Ctx) (err error) {
	return h.flag(ctx, h.registry.IsVisible)
}

func (h *HttpHandler) flag(ctx *fiber.Ctx, get func(common.Address) (bool, error)) error {
	var req snapIdRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return invalidRequest(err)
	}
	id, err := req.Validate()
	if err != nil {
		return errors.WithStack(err)
	}
	value, err := get(id)
	if err != nil {
		return publicError(err, "")
	}
	return errors.WithStack(ctx.JSON(flagResponse{Result: &flagResult{Id: id.Hex(), Value: value}}))
}

type getContractURIResult struct {
	URI string `json:"uri"`
}

type getContractURIResponse = HttpResponse[getContractURIResult]

func (h *HttpHandler) GetContractURI(ctx *fiber.Ctx) (err error) {
	instance, err := h.getInstance(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	uri, err := instance.ContractURI()
	if err != nil {
		return errors.Wrap(err, "error during ContractURI")
	}
	return errors.WithStack(ctx.JSON(getContractURIResponse{Result: &getContractURIResult{URI: uri}}))
}
