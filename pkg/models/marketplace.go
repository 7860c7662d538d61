package models

import (
	"fmt"
	"strings"
)

// MarketplaceProduct is a normalized AWS Marketplace listing.
type MarketplaceProduct struct {
	UniqueIdentifier string `json:"unique_identifier"`
	Creator          string `json:"creator"`
	Version          string `json:"version"`
	ReleaseVersion   string `json:"release_version"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Serial           string `json:"serial"`
	MarketplaceURL   string `json:"marketplace_url"`
	Type             string `json:"type"`
}

func (p MarketplaceProduct) String() string {
	return fmt.Sprintf(
		"\n%s\n\t\t"+
			"Creator: %s\n\t\t"+
			"Release: %s\n\t\t"+
			"Serial: %s\n\t\t"+
			"Version: %s\n\t\t"+
			"Type: %s\n\t\t"+
			"Title: %s\n\t\t"+
			"Description: \n\t\t\t\t%s\n\t\t"+
			"URL: %s\n\t\t",
		p.UniqueIdentifier,
		p.Creator,
		p.ReleaseVersion,
		p.Serial,
		p.Version,
		p.Type,
		p.Title,
		strings.ReplaceAll(p.Description, "\n", "\n\t\t\t\t"),
		p.MarketplaceURL,
	)
}
