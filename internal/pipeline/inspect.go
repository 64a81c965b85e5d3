package pipeline

import (
	"bytes"
	"image"

	// Decoders for every allow-listed format, registered for
	// image.DecodeConfig and image.Decode across the package.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Inspect returns the pixel dimensions of an encoded image without fully
// decoding it. It is informational only: an image that cannot be decoded
// locally is still sent to the analysis service, so failure here just
// reports ok=false.
func Inspect(data []byte) (width, height int, ok bool) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, false
	}
	return cfg.Width, cfg.Height, true
}
