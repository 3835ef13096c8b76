// Package downloader coordinates a full logo run.
//
// A run:
//   - Fetches the spot and futures listings concurrently; a failing source
//     degrades to an empty list
//   - Merges them into one catalog, spot entries first
//   - Downloads every logo concurrently, bounded by a shared slot count
//   - Waits for every task, whatever its outcome, and reports a summary
package downloader
