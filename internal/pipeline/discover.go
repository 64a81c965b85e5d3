package pipeline

import (
	"os"
	"path/filepath"
	"strings"
)

// imageExtensions is the fixed allow-list of image extensions the scanner
// accepts (lowercase, with leading dot).
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".bmp":  true,
	".tiff": true,
	".gif":  true,
}

// mimeTypes maps allow-listed extensions to the MIME type sent with the
// analysis request.
var mimeTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".bmp":  "image/bmp",
	".tiff": "image/tiff",
	".gif":  "image/gif",
}

// MimeType returns the MIME type for an image extension, case-insensitively,
// falling back to image/jpeg for anything unknown.
func MimeType(ext string) string {
	if mt, ok := mimeTypes[strings.ToLower(ext)]; ok {
		return mt
	}
	return "image/jpeg"
}

// Discover lists the images directly inside dir (no recursion), filtered
// by the extension allow-list (case-insensitive) and returned as FileTasks
// in lexicographic name order (os.ReadDir's ordering).
func Discover(dir string) ([]FileTask, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var tasks []FileTask
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !imageExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		tasks = append(tasks, NewFileTask(filepath.Join(dir, e.Name())))
	}
	return tasks, nil
}
