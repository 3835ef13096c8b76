package model

import "strings"

// ArtifactExt is the file extension of every output artifact.
const ArtifactExt = ".png"

// AssetRecord is a single asset parsed from a listing endpoint.
type AssetRecord struct {
	Symbol  string // Asset code (e.g. "BTC")
	LogoURL string // Logo reference, empty when absent
}

// HasLogo reports whether the record carries a logo reference.
func (a AssetRecord) HasLogo() bool {
	return a.LogoURL != ""
}

var artifactEscaper = strings.NewReplacer("%", "%25", "/", "%2F", `\`, "%5C")

// ArtifactName returns the file name the logo for symbol is stored under.
//
// Distinct symbols always yield distinct names: '%' and path separators are
// percent-escaped, so a symbol can never escape the output directory and
// "A/B" does not clash with "A_B" or "A%2FB".
func ArtifactName(symbol string) string {
	name := artifactEscaper.Replace(symbol)
	switch name {
	case ".":
		name = "%2E"
	case "..":
		name = "%2E%2E"
	}
	return name + ArtifactExt
}
