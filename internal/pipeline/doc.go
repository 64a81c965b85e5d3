// Package pipeline orchestrates folder scanning and the sequential
// annotation run over a batch of images.
//
// A run is one pass of [Runner] over a fixed []FileTask: each image is read
// and dispatched to the analysis client in input order, one call in flight
// at a time. Every task yields exactly one [Entry] (a failed call becomes
// a Failure entry, never a dropped or reordered one) and the run always
// proceeds to the next file. Progress is reported through the ordered
// [Event] stream returned by [Runner.Start]; ownership of the entries
// passes to the consumer with the RunDone event.
package pipeline
