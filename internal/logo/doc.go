// Package logo downloads asset logos and stores them as fixed-size thumbnails.
//
// Each logo is decoded (PNG, JPEG, GIF, WebP, BMP), converted to non-premultiplied
// RGBA, scaled to a square thumbnail and written as <SYMBOL>.png. A file that
// already exists is never fetched again.
package logo
