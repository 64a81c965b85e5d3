package naming

import (
	"fmt"
	"os"
	"path/filepath"
)

// UniquePath returns a path in dir for stem+ext that does not collide with
// any existing directory entry. The first candidate is dir/stem.ext; on
// collision the probe continues with stem-2.ext, stem-3.ext, … and returns
// the first free name. The counter is unbounded. ext must include its
// leading dot (".jpg").
//
// The result is only guaranteed free at the instant of the check; renaming
// into it later can still race with concurrent writers to dir.
func UniquePath(dir, stem, ext string) string {
	candidate := filepath.Join(dir, stem+ext)
	if !exists(candidate) {
		return candidate
	}
	for counter := 2; ; counter++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s-%d%s", stem, counter, ext))
		if !exists(candidate) {
			return candidate
		}
	}
}

// exists reports whether any entry (file, dir, or dangling symlink) occupies path.
func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
