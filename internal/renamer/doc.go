// Package renamer applies SEO titles back to the filesystem. It plans a
// collision-free target name for each successfully analyzed entry and
// executes the renames one file at a time, so a single failure never
// blocks the rest of the batch.
package renamer
