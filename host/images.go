package host

import (
	"fmt"
	"image"
	"io"

	// Stdlib formats hosts commonly receive.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	// Extra formats from golang.org/x/image, registered for their side
	// effects so DecodeImage handles them transparently.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DecodeImage decodes an encoded image for registration with a host.
//
// Image decoding is a host-edge concern: the encoder core only ever sees
// image ids. This helper exists so host implementations (and tests) share
// one decode path covering PNG, JPEG, GIF, BMP, TIFF and WebP.
func DecodeImage(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("host: decode image: %w", err)
	}
	return img, nil
}

// DecodeAndRegister decodes an encoded image and registers it with the
// given MemHost, returning the assigned image id.
func DecodeAndRegister(h *MemHost, r io.Reader) (uint32, error) {
	img, err := DecodeImage(r)
	if err != nil {
		return 0, err
	}
	return h.RegisterImage(img), nil
}
