package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/bacalhau-project/amiaudit/pkg/images"
	"github.com/bacalhau-project/amiaudit/pkg/models"
)

// Seller profiles whose listings are audited.
const (
	CanonicalMarketplaceProfile = "565feec9-3d43-413e-9760-c651546613f2"
	AWSMarketplaceProfile       = "e6a5002c-6dd0-4d1e-8196-0a1d1857229b"
)

// ListingSummary is the subset of a marketplace discovery ListingSummary we read.
type ListingSummary struct {
	ID                string `json:"Id"`
	DisplayAttributes struct {
		Title              string `json:"Title"`
		LongDescription    string `json:"LongDescription"`
		VersionInformation struct {
			RecommendedVersion string `json:"RecommendedVersion"`
		} `json:"VersionInformation"`
	} `json:"DisplayAttributes"`
	ProductAttributes struct {
		Creator struct {
			Value       string `json:"Value"`
			DisplayName string `json:"DisplayName"`
		} `json:"Creator"`
	} `json:"ProductAttributes"`
	FulfillmentOptionTypes []struct {
		DisplayName string `json:"DisplayName"`
	} `json:"FulfillmentOptionTypes"`
}

func ReadListingSummaries(path string) ([]ListingSummary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read marketplace listings: %w", err)
	}
	var summaries []ListingSummary
	if err := json.Unmarshal(data, &summaries); err != nil {
		return nil, fmt.Errorf("failed to parse marketplace listings %s: %w", path, err)
	}
	return summaries, nil
}

// Products normalizes listing summaries. Listings on the AWS seller profile
// are only kept when they are Ubuntu listings.
func Products(summaries []ListingSummary) []models.MarketplaceProduct {
	products := make([]models.MarketplaceProduct, 0, len(summaries))
	for _, s := range summaries {
		title := s.DisplayAttributes.Title
		creator := s.ProductAttributes.Creator
		if creator.Value == AWSMarketplaceProfile && !strings.Contains(title, "Ubuntu") {
			continue
		}

		listingType := ""
		if len(s.FulfillmentOptionTypes) > 0 {
			listingType = s.FulfillmentOptionTypes[0].DisplayName
		}

		products = append(products, images.NormalizeListing(images.MarketplaceListing{
			ID:          s.ID,
			Title:       title,
			CreatorID:   creator.Value,
			Creator:     creator.DisplayName,
			Version:     s.DisplayAttributes.VersionInformation.RecommendedVersion,
			Description: s.DisplayAttributes.LongDescription,
			Type:        listingType,
		}))
	}
	return products
}
