package qrgen

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

const imageSize = 512

// RenderImage encodes payloadText into a QR PNG at destinationPath using the
// given dot/background hex colors. Dot shapes, gradients and logos are not
// baked into the server-side PNG; they are styling metadata for the
// client-side preview renderer.
func RenderImage(payloadText, dotColor, backgroundColor, destinationPath string) error {
	fg := parseHexColor(dotColor, color.RGBA{A: 255})
	bg := parseHexColor(backgroundColor, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	if err := qrcode.WriteColorFile(payloadText, qrcode.Medium, imageSize, bg, fg, destinationPath); err != nil {
		return fmt.Errorf("failed to render qr image: %w", err)
	}
	return nil
}

// parseHexColor accepts #RGB and #RRGGBB; anything else falls back to def.
func parseHexColor(s string, def color.RGBA) color.RGBA {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return def
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return def
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}
}
