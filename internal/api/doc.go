// Package api provides the client for the exchange listing endpoints.
//
// Endpoints (Binance defaults):
//   - Spot assets: https://www.binance.com/bapi/asset/v2/public/asset/asset/get-all-asset
//   - USD-M futures exchange info: https://fapi.binance.com/fapi/v1/exchangeInfo
//
// The same pooled HTTP client is shared with the logo downloader so that the
// whole run stays within one connection limit.
package api
