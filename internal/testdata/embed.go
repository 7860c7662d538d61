package testdata

import _ "embed"

//go:embed configs/config.yaml
var TestGenericConfig string

//go:embed configs/catalog.yaml
var TestCatalog string

//go:embed fixtures/us-east-1-getQuickstartList.json
var TestQuickstartList string

//go:embed fixtures/marketplace-listings.json
var TestMarketplaceListings string

//go:embed fixtures/streams.json
var TestStreams string
