package model

import (
	"sort"

	"golang.org/x/text/unicode/norm"
)

// Catalog maps each symbol to its optional logo reference.
// It is built once by Merge and never mutated afterwards.
type Catalog struct {
	logos   map[string]string
	spot    int
	futures int
}

// Merge builds a Catalog from spot records and futures base assets.
//
// Spot records are applied first, so a symbol listed by both sources keeps
// the spot logo reference. Futures-only symbols are added with no logo.
// When the spot listing repeats a symbol, the last record wins.
// Empty symbols are ignored.
func Merge(spot []AssetRecord, futuresBases []string) Catalog {
	c := Catalog{logos: make(map[string]string, len(spot)+len(futuresBases))}

	for _, rec := range spot {
		if rec.Symbol == "" {
			continue
		}
		if _, ok := c.logos[rec.Symbol]; !ok {
			c.spot++
		}
		c.logos[rec.Symbol] = rec.LogoURL
	}

	for _, base := range futuresBases {
		if base == "" {
			continue
		}
		if _, ok := c.logos[base]; ok {
			continue
		}
		c.logos[base] = ""
		c.futures++
	}

	return c
}

// Len returns the number of distinct symbols.
func (c Catalog) Len() int {
	return len(c.logos)
}

// SpotCount returns how many symbols came from the spot listing.
func (c Catalog) SpotCount() int {
	return c.spot
}

// FuturesOnlyCount returns how many symbols were only present in the futures listing.
func (c Catalog) FuturesOnlyCount() int {
	return c.futures
}

// Lookup returns the logo reference for symbol and whether the symbol is present.
// A present symbol may still have an empty logo reference.
func (c Catalog) Lookup(symbol string) (logoURL string, ok bool) {
	logoURL, ok = c.logos[symbol]
	return logoURL, ok
}

// Symbols returns every symbol in lexical order.
func (c Catalog) Symbols() []string {
	out := make([]string, 0, len(c.logos))
	for sym := range c.logos {
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}

// WithLogo returns the records that have a logo reference, in lexical order.
func (c Catalog) WithLogo() []AssetRecord {
	out := make([]AssetRecord, 0, len(c.logos))
	for _, sym := range c.Symbols() {
		if logo := c.logos[sym]; logo != "" {
			out = append(out, AssetRecord{Symbol: sym, LogoURL: logo})
		}
	}
	return out
}

// NormalizationClashes returns groups of symbols that are distinct keys but
// share the same NFC form (e.g. a composed and a decomposed "É"). Their
// artifact names differ, yet a normalizing filesystem stores them as one file.
// Groups and their members are in lexical order.
func (c Catalog) NormalizationClashes() [][]string {
	byForm := make(map[string][]string)
	for _, sym := range c.Symbols() {
		form := norm.NFC.String(sym)
		byForm[form] = append(byForm[form], sym)
	}

	var out [][]string
	for _, group := range byForm {
		if len(group) > 1 {
			out = append(out, group)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}
