// Package model defines the data types shared by the logo pipeline.
//
// Conventions:
//   - Symbols are kept case-as-given (e.g. "BTC", "1000SATS").
//   - An empty logo URL means the asset has no logo reference.
//   - Output artifacts are PNG files named <SYMBOL>.png.
package model
