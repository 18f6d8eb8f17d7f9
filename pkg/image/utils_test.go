package image

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"stegmsg/pkg/config"
	"testing"
)

var testChannels = []config.Channel{config.ChannelRed, config.ChannelGreen, config.ChannelBlue}

type testFunc func(t *testing.T, channel config.Channel)

func runImageTestsWithAllChannels(t *testing.T, testFunc testFunc) {
	for _, channel := range testChannels {
		channelCopy := channel
		t.Run(fmt.Sprintf("channel-%s", channel), func(t *testing.T) {
			t.Parallel()
			testFunc(t, channelCopy)
		})
	}
}

func cloneImage(img *image.NRGBA) *image.NRGBA {
	cloned := *img
	cloned.Pix = bytes.Clone(img.Pix)
	return &cloned
}

func writePNG(t testing.TB, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Error creating %s: %s", path, err)
	}
	defer f.Close()
	if err = png.Encode(f, img); err != nil {
		t.Fatalf("Error encoding %s: %s", path, err)
	}
	return path
}

// framedBits returns the expected bit sequence for message, one entry per bit
func framedBits(t testing.TB, message string) []byte {
	t.Helper()
	payload, err := Frame(message, 1<<16, 1<<16)
	if err != nil {
		t.Fatalf("Error framing message: %s", err)
	}
	var expectedBits []byte
	for _, b := range payload.Bytes() {
		for bit := 7; bit >= 0; bit-- {
			expectedBits = append(expectedBits, (b>>bit)&1)
		}
	}
	return expectedBits
}
