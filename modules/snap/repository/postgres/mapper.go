package postgres

import (
	"encoding/json"
	"math"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/nft-snap/common/errs"
	"github.com/gaze-network/nft-snap/modules/snap/internal/entity"
	"github.com/gaze-network/nft-snap/modules/snap/repository/postgres/gen"
	"github.com/gaze-network/uint128"
	"github.com/jackc/pgx/v5/pgtype"
)

func uint128FromNumeric(src pgtype.Numeric) (uint128.Uint128, error) {
	if !src.Valid {
		return uint128.Zero, nil
	}
	bytes, err := src.MarshalJSON()
	if err != nil {
		return uint128.Uint128{}, errors.WithStack(err)
	}
	result, err := uint128.FromString(string(bytes))
	if err != nil {
		return uint128.Uint128{}, errors.WithStack(err)
	}
	return result, nil
}

func numericFromUint128(src uint128.Uint128) (pgtype.Numeric, error) {
	bytes := []byte(src.String())
	var result pgtype.Numeric
	err := result.UnmarshalJSON(bytes)
	if err != nil {
		return pgtype.Numeric{}, errors.WithStack(err)
	}
	return result, nil
}

func addressFromText(src string) (common.Address, error) {
	if !common.IsHexAddress(src) {
		return common.Address{}, errors.Wrapf(errs.InvalidArgument, "invalid address %q", src)
	}
	return common.HexToAddress(src), nil
}

func timestamptzFromTime(src time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: src.UTC(), Valid: true}
}

func timeFromTimestamptz(src pgtype.Timestamptz) time.Time {
	if !src.Valid {
		return time.Time{}
	}
	return src.Time.UTC()
}

func int64FromUint64(src uint64) (int64, error) {
	if src > math.MaxInt64 {
		return 0, errors.Wrapf(errs.InvalidArgument, "%d overflows bigint", src)
	}
	return int64(src), nil
}

func mapInstanceTypeToParams(src entity.Instance) (gen.CreateInstanceParams, error) {
	mintFee, err := numericFromUint128(src.MintFee)
	if err != nil {
		return gen.CreateInstanceParams{}, errors.Wrap(err, "failed to parse mint fee")
	}
	salePrice, err := numericFromUint128(src.SalePrice)
	if err != nil {
		return gen.CreateInstanceParams{}, errors.Wrap(err, "failed to parse sale price")
	}
	nonce, err := int64FromUint64(src.Nonce)
	if err != nil {
		return gen.CreateInstanceParams{}, errors.Wrap(err, "invalid nonce")
	}
	lastItemId, err := int64FromUint64(src.LastItemId)
	if err != nil {
		return gen.CreateInstanceParams{}, errors.Wrap(err, "invalid last item id")
	}
	return gen.CreateInstanceParams{
		ID:                     src.Id.Hex(),
		Nonce:                  nonce,
		CollectionName:         src.CollectionName,
		Symbol:                 src.Symbol,
		DescriptorName:         src.Descriptor.Name,
		DescriptorDescription:  src.Descriptor.Description,
		DescriptorImage:        src.Descriptor.Image,
		DescriptorExternalLink: src.Descriptor.ExternalLink,
		SellerFeeBasisPoints:   int32(src.Descriptor.SellerFeeBasisPoints),
		FeeRecipient:           src.Descriptor.FeeRecipient.Hex(),
		ImageUri:               src.ImageURI,
		MetadataUri:            src.MetadataURI,
		MintFee:                mintFee,
		Creator:                src.Creator.Hex(),
		Owner:                  src.Owner.Hex(),
		SalePrice:              salePrice,
		CreatedAt:              timestamptzFromTime(src.CreatedAt),
		MintWindow:             int64(src.MintWindow),
		VisibilityWindow:       int64(src.VisibilityWindow),
		LastItemID:             lastItemId,
	}, nil
}

func mapInstanceModelToType(src gen.SnapInstance) (entity.Instance, error) {
	id, err := addressFromText(src.ID)
	if err != nil {
		return entity.Instance{}, errors.Wrap(err, "failed to parse instance id")
	}
	feeRecipient, err := addressFromText(src.FeeRecipient)
	if err != nil {
		return entity.Instance{}, errors.Wrap(err, "failed to parse fee recipient")
	}
	creator, err := addressFromText(src.Creator)
	if err != nil {
		return entity.Instance{}, errors.Wrap(err, "failed to parse creator")
	}
	owner, err := addressFromText(src.Owner)
	if err != nil {
		return entity.Instance{}, errors.Wrap(err, "failed to parse owner")
	}
	mintFee, err := uint128FromNumeric(src.MintFee)
	if err != nil {
		return entity.Instance{}, errors.Wrap(err, "failed to parse mint fee")
	}
	salePrice, err := uint128FromNumeric(src.SalePrice)
	if err != nil {
		return entity.Instance{}, errors.Wrap(err, "failed to parse sale price")
	}
	if src.SellerFeeBasisPoints < 0 || src.SellerFeeBasisPoints > math.MaxUint16 {
		return entity.Instance{}, errors.Wrapf(errs.InvalidArgument, "invalid seller fee basis points %d", src.SellerFeeBasisPoints)
	}
	return entity.Instance{
		Id:             id,
		Nonce:          uint64(src.Nonce),
		CollectionName: src.CollectionName,
		Symbol:         src.Symbol,
		Descriptor: entity.Descriptor{
			Name:                 src.DescriptorName,
			Description:          src.DescriptorDescription,
			Image:                src.DescriptorImage,
			ExternalLink:         src.DescriptorExternalLink,
			SellerFeeBasisPoints: uint16(src.SellerFeeBasisPoints),
			FeeRecipient:         feeRecipient,
		},
		ImageURI:         src.ImageUri,
		MetadataURI:      src.MetadataUri,
		MintFee:          mintFee,
		Creator:          creator,
		Owner:            owner,
		SalePrice:        salePrice,
		CreatedAt:        timeFromTimestamptz(src.CreatedAt),
		MintWindow:       time.Duration(src.MintWindow),
		VisibilityWindow: time.Duration(src.VisibilityWindow),
		LastItemId:       uint64(src.LastItemID),
	}, nil
}

func mapItemModelToType(src gen.SnapItem) (entity.Item, error) {
	instance, err := addressFromText(src.InstanceID)
	if err != nil {
		return entity.Item{}, errors.Wrap(err, "failed to parse instance id")
	}
	holder, err := addressFromText(src.Holder)
	if err != nil {
		return entity.Item{}, errors.Wrap(err, "failed to parse holder")
	}
	return entity.Item{
		Instance: instance,
		ItemId:   uint64(src.ItemID),
		Holder:   holder,
		MintedAt: timeFromTimestamptz(src.MintedAt),
	}, nil
}

func mapEventTypeToParams(src entity.Event) (gen.CreateEventParams, error) {
	data, err := json.Marshal(src.Data)
	if err != nil {
		return gen.CreateEventParams{}, errors.Wrap(err, "failed to marshal event data")
	}
	itemId, err := int64FromUint64(src.ItemId)
	if err != nil {
		return gen.CreateEventParams{}, errors.Wrap(err, "invalid item id")
	}
	return gen.CreateEventParams{
		InstanceID: src.Instance.Hex(),
		Kind:       src.Kind.String(),
		ItemID:     itemId,
		Actor:      src.Actor.Hex(),
		Data:       data,
		CreatedAt:  timestamptzFromTime(src.Timestamp),
	}, nil
}

func mapEventModelToType(src gen.SnapEvent) (entity.Event, error) {
	instance, err := addressFromText(src.InstanceID)
	if err != nil {
		return entity.Event{}, errors.Wrap(err, "failed to parse instance id")
	}
	actor, err := addressFromText(src.Actor)
	if err != nil {
		return entity.Event{}, errors.Wrap(err, "failed to parse actor")
	}
	var data map[string]string
	if len(src.Data) > 0 {
		if err := json.Unmarshal(src.Data, &data); err != nil {
			return entity.Event{}, errors.Wrap(err, "failed to unmarshal event data")
		}
	}
	return entity.Event{
		Instance:  instance,
		Kind:      entity.EventKind(src.Kind),
		ItemId:    uint64(src.ItemID),
		Actor:     actor,
		Data:      data,
		Timestamp: timeFromTimestamptz(src.CreatedAt),
	}, nil
}
