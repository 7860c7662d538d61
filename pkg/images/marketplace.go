package images

import (
	"fmt"

	"github.com/bacalhau-project/amiaudit/pkg/models"
)

const MarketplaceProductURLBase = "https://aws.amazon.com/marketplace/pp"

// MarketplaceListing carries the listing attributes the product normalizer needs.
type MarketplaceListing struct {
	ID          string
	Title       string
	CreatorID   string
	Creator     string
	Version     string
	Description string
	Type        string
}

// NormalizeListing parses the listing's recommended version and builds the
// product record shown in marketplace output.
func NormalizeListing(l MarketplaceListing) models.MarketplaceProduct {
	release, serial := ParseVersion(l.Version)
	return models.MarketplaceProduct{
		UniqueIdentifier: UniqueIdentifier(l.Title, l.Type, serial),
		Creator:          l.Creator,
		Version:          l.Version,
		ReleaseVersion:   release,
		Title:            l.Title,
		Description:      l.Description,
		Serial:           serial,
		MarketplaceURL:   fmt.Sprintf("%s/%s", MarketplaceProductURLBase, l.ID),
		Type:             l.Type,
	}
}
