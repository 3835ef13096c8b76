package api

import (
	"context"
	"fmt"

	"github.com/rickgao/coin-logos/internal/model"
)

// FetchSpotAssets fetches every spot-listed asset with its logo reference.
func (c *Client) FetchSpotAssets(ctx context.Context) ([]model.AssetRecord, error) {
	var resp SpotAssetsResponse
	if err := c.getJSON(ctx, c.spotURL, &resp); err != nil {
		return nil, fmt.Errorf("get spot assets: %w", err)
	}

	out := make([]model.AssetRecord, 0, len(resp.Data))
	for _, a := range resp.Data {
		if a.AssetCode == "" {
			continue
		}
		out = append(out, model.AssetRecord{
			Symbol:  a.AssetCode,
			LogoURL: a.LogoURL,
		})
	}

	c.logger.Debug("spot assets fetched", "count", len(out))
	return out, nil
}

// FetchFuturesBaseAssets fetches the distinct base assets of all futures
// instruments, in first-seen order. The endpoint carries no logo data.
func (c *Client) FetchFuturesBaseAssets(ctx context.Context) ([]string, error) {
	var resp ExchangeInfoResponse
	if err := c.getJSON(ctx, c.futuresURL, &resp); err != nil {
		return nil, fmt.Errorf("get futures exchange info: %w", err)
	}

	seen := make(map[string]struct{}, len(resp.Symbols))
	out := make([]string, 0, len(resp.Symbols))
	for _, s := range resp.Symbols {
		if s.BaseAsset == "" {
			continue
		}
		if _, ok := seen[s.BaseAsset]; ok {
			continue
		}
		seen[s.BaseAsset] = struct{}{}
		out = append(out, s.BaseAsset)
	}

	c.logger.Debug("futures base assets fetched", "instruments", len(resp.Symbols), "bases", len(out))
	return out, nil
}
