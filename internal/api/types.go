package api

// SpotAssetsResponse from the spot asset listing endpoint.
type SpotAssetsResponse struct {
	Data []SpotAsset `json:"data"`
}

// SpotAsset is a single spot-listed asset.
type SpotAsset struct {
	AssetCode string `json:"assetCode"`
	AssetName string `json:"assetName"`
	LogoURL   string `json:"logoUrl"` // null decodes to ""
}

// ExchangeInfoResponse from the futures exchangeInfo endpoint.
type ExchangeInfoResponse struct {
	Symbols []FuturesSymbol `json:"symbols"`
}

// FuturesSymbol is a single futures instrument.
type FuturesSymbol struct {
	Symbol     string `json:"symbol"`
	Status     string `json:"status"`
	BaseAsset  string `json:"baseAsset"`
	QuoteAsset string `json:"quoteAsset"`
}
