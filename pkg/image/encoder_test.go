package image

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"stegmsg/pkg/config"
	"stegmsg/test"
	"testing"
)

const testImageSize = 64

func TestEncodeMessage(t *testing.T) {
	runImageTestsWithAllChannels(t, func(t *testing.T, channel config.Channel) {
		img := test.GenerateImage(testImageSize, testImageSize)
		original := cloneImage(img)
		message := test.GenerateRandomMessage(testImageSize*testImageSize/8 - 2)

		encoder := NewImageEncoder(img, config.ImageEncodeConfig{Channel: channel})
		if err := encoder.EncodeMessage(message); err != nil {
			t.Fatalf("Error encoding message: %s", err)
		}

		expectedBits := framedBits(t, message)
		checkEncodedImageAgainstExpectedBits(t, original, img, channel, expectedBits)
		if encoder.Stats().BitsEmbedded != len(expectedBits) {
			t.Errorf("Expected %d bits embedded, stats report %d", len(expectedBits), encoder.Stats().BitsEmbedded)
		}
	})
}

func TestEncodeMessageLeavesRemainingPixelsUntouched(t *testing.T) {
	img := test.GenerateImage(testImageSize, testImageSize)
	original := cloneImage(img)

	encoder := NewImageEncoder(img, config.ImageEncodeConfig{})
	if err := encoder.EncodeMessage("short"); err != nil {
		t.Fatalf("Error encoding message: %s", err)
	}

	payloadPixels := (len("short") + 2) * 8
	if !bytes.Equal(img.Pix[payloadPixels*4:], original.Pix[payloadPixels*4:]) {
		t.Errorf("Pixels after the payload were modified")
	}
}

func TestEncodeMessageCapacityExceeded(t *testing.T) {
	img := test.GenerateImage(4, 6)
	original := cloneImage(img)

	encoder := NewImageEncoder(img, config.ImageEncodeConfig{})
	err := encoder.EncodeMessage("ab")
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("Expected ErrCapacityExceeded, got %v", err)
	}
	if !bytes.Equal(img.Pix, original.Pix) {
		t.Errorf("Image was modified despite capacity failure")
	}
	if encoder.Stats().Capacity != 24 {
		t.Errorf("Expected capacity 24 in stats, got %d", encoder.Stats().Capacity)
	}
}

func TestEncodeMessageUnsupportedCharacterLeavesImageUntouched(t *testing.T) {
	img := test.GenerateImage(testImageSize, testImageSize)
	original := cloneImage(img)

	err := NewImageEncoder(img, config.ImageEncodeConfig{}).EncodeMessage("ok until Ω")
	if !errors.Is(err, ErrUnsupportedCharacter) {
		t.Fatalf("Expected ErrUnsupportedCharacter, got %v", err)
	}
	if !bytes.Equal(img.Pix, original.Pix) {
		t.Errorf("Image was modified despite charset failure")
	}
}

func TestEncodeDeterminism(t *testing.T) {
	img := test.GenerateImage(testImageSize, testImageSize)
	message := "the same message twice"

	var outputs [2][]byte
	for i := range outputs {
		encoder := NewImageEncoder(cloneImage(img), config.ImageEncodeConfig{PngCompressionLevel: png.BestCompression})
		if err := encoder.EncodeMessage(message); err != nil {
			t.Fatalf("Error encoding message: %s", err)
		}
		var buf bytes.Buffer
		if err := encoder.WriteEncodedPNG(&buf); err != nil {
			t.Fatalf("Error writing PNG: %s", err)
		}
		outputs[i] = buf.Bytes()
	}

	if !bytes.Equal(outputs[0], outputs[1]) {
		t.Errorf("Encoding the same image and message twice produced different outputs")
	}
}

func checkEncodedImageAgainstExpectedBits(t *testing.T, original, encoded *image.NRGBA, channel config.Channel,
	expectedBits []byte) {

	bounds := encoded.Bounds()
	pixelIdx := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			offset := encoded.PixOffset(x, y)
			pixel := encoded.Pix[offset : offset+4]
			originalPixel := original.Pix[offset : offset+4]
			for channelIdx := 0; channelIdx < 4; channelIdx++ {
				if pixelIdx < len(expectedBits) && channelIdx == int(channel) {
					if pixel[channelIdx]&1 != expectedBits[pixelIdx] {
						t.Fatalf("Pixel %d channel %d: expected LSB %d, got %d", pixelIdx, channelIdx,
							expectedBits[pixelIdx], pixel[channelIdx]&1)
					}
					if pixel[channelIdx]&0xFE != originalPixel[channelIdx]&0xFE {
						t.Fatalf("Pixel %d channel %d: bits other than the LSB were modified", pixelIdx, channelIdx)
					}
				} else if pixel[channelIdx] != originalPixel[channelIdx] {
					t.Fatalf("Pixel %d channel %d: expected untouched value %d, got %d", pixelIdx, channelIdx,
						originalPixel[channelIdx], pixel[channelIdx])
				}
			}
			pixelIdx++
		}
	}
}
