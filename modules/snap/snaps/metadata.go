package snaps

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// ExpiredName replaces the collection name once the visibility window is over.
const ExpiredName = "Expired NFT Snap"

const dataURIPrefix = "data:application/json;base64,"

type ContractMetadata struct {
	Name                 string `json:"name"`
	Description          string `json:"description"`
	Image                string `json:"image"`
	ExternalLink         string `json:"external_link"`
	SellerFeeBasisPoints uint16 `json:"seller_fee_basis_points"`
	FeeRecipient         string `json:"fee_recipient"`
}

type TokenAttribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

type TokenMetadata struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Image       string           `json:"image"`
	ExternalURL string           `json:"external_url,omitempty"`
	MetadataURI string           `json:"metadata_uri,omitempty"`
	Attributes  []TokenAttribute `json:"attributes"`
}

// ContractURI returns the collection-level metadata document as a base64 JSON data URI.
func (i *Instance) ContractURI() (string, error) {
	now := i.clock.Now()
	d := i.record.Descriptor
	return encodeDataURI(ContractMetadata{
		Name:                 i.nameAt(now),
		Description:          d.Description,
		Image:                d.Image,
		ExternalLink:         d.ExternalLink,
		SellerFeeBasisPoints: d.SellerFeeBasisPoints,
		FeeRecipient:         i.FeeRecipient().Hex(),
	})
}

// TokenURI returns the metadata document of an existing item as a base64 JSON data URI.
// After expiry the item falls back to the descriptor image and drops its metadata URI.
func (i *Instance) TokenURI(itemId uint64) (string, error) {
	if _, err := i.OwnerOf(itemId); err != nil {
		return "", errors.WithStack(err)
	}

	now := i.clock.Now()
	phase := i.phaseAt(now)
	d := i.record.Descriptor
	doc := TokenMetadata{
		Name:        fmt.Sprintf("%s #%d", i.nameAt(now), itemId),
		Description: d.Description,
		Image:       d.Image,
		ExternalURL: d.ExternalLink,
		Attributes:  []TokenAttribute{{TraitType: "Phase", Value: phase.String()}},
	}
	if phase.IsVisible() {
		if i.record.ImageURI != "" {
			doc.Image = i.record.ImageURI
		}
		doc.MetadataURI = i.record.MetadataURI
	}
	return encodeDataURI(doc)
}

func encodeDataURI(doc any) (string, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal metadata")
	}
	return dataURIPrefix + base64.StdEncoding.EncodeToString(raw), nil
}

// DecodeDataURI decodes a document produced by ContractURI or TokenURI into dst.
func DecodeDataURI(uri string, dst any) error {
	encoded, ok := strings.CutPrefix(uri, dataURIPrefix)
	if !ok {
		return errors.Errorf("unsupported data uri %q", uri)
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return errors.Wrap(err, "failed to decode base64 payload")
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return errors.Wrap(err, "failed to unmarshal metadata")
	}
	return nil
}
