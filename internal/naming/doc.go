// Package naming derives filesystem-safe file names from generated titles.
//
// Two pure-ish helpers make up the package:
//
//   - Sanitize(title) → stem
//     Strip everything that is not a letter, digit, underscore, hyphen, or
//     whitespace; trim; collapse whitespace runs to a single hyphen.
//   - UniquePath(dir, stem, ext) → path
//     First free path among stem.ext, stem-2.ext, stem-3.ext, … in dir.
//
// UniquePath checks the filesystem at call time only; the caller owns the
// window between picking a path and using it.
package naming
