package image

import (
	"errors"
	"image"
	"stegmsg/pkg/config"
	"stegmsg/test"
	"testing"
)

// embedBits writes bits directly into the red channel LSBs, bypassing the framer
func embedBits(img *image.NRGBA, bitsToEmbed []byte) {
	bounds := img.Bounds()
	idx := 0
	for y := bounds.Min.Y; y < bounds.Max.Y && idx < len(bitsToEmbed); y++ {
		for x := bounds.Min.X; x < bounds.Max.X && idx < len(bitsToEmbed); x++ {
			offset := img.PixOffset(x, y)
			img.Pix[offset] = img.Pix[offset]&0xFE | bitsToEmbed[idx]
			idx++
		}
	}
}

func TestDecodeNoMessage(t *testing.T) {
	img := test.GenerateEvenImage(testImageSize, testImageSize)
	decoder := NewImageDecoder(img, config.ImageDecodeConfig{})

	_, err := decoder.DecodeMessage()
	if !errors.Is(err, ErrTerminatorNotFound) {
		t.Fatalf("Expected ErrTerminatorNotFound, got %v", err)
	}
	if decoder.Stats().BitsScanned != testImageSize*testImageSize {
		t.Errorf("Expected the whole image to be scanned, stats report %d bits", decoder.Stats().BitsScanned)
	}
}

func TestDecodeStopsAtTerminator(t *testing.T) {
	img := test.GenerateEvenImage(testImageSize, testImageSize)
	// a second terminator right after the first must never be reached
	embedBits(img, append(framedBits(t, "A"), framedBits(t, "")...))

	decoder := NewImageDecoder(img, config.ImageDecodeConfig{})
	message, err := decoder.DecodeMessage()
	if err != nil {
		t.Fatalf("Error decoding message: %s", err)
	}
	if message != "A" {
		t.Errorf("Expected message %q, got %q", "A", message)
	}
	if decoder.Stats().BitsScanned != 24 {
		t.Errorf("Expected decoding to stop after 24 bits, scanned %d", decoder.Stats().BitsScanned)
	}
}

func TestDecodeDiscardsTrailingPartialByte(t *testing.T) {
	img := test.GenerateEvenImage(testImageSize, testImageSize)
	// 'B' followed by three stray bits and the terminator
	bitsToEmbed := []byte{0, 1, 0, 0, 0, 0, 1, 0, 0, 1, 0}
	bitsToEmbed = append(bitsToEmbed, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0)
	embedBits(img, bitsToEmbed)

	message, err := NewImageDecoder(img, config.ImageDecodeConfig{}).DecodeMessage()
	if err != nil {
		t.Fatalf("Error decoding message: %s", err)
	}
	if message != "B" {
		t.Errorf("Expected message %q, got %q", "B", message)
	}
}

// A terminator pattern inside the message bytes ends the message early. This is a limitation of terminator framing
func TestDecodeTerminatorPrecedence(t *testing.T) {
	testCases := []struct {
		name     string
		message  string
		expected string
	}{
		{name: "byte aligned", message: "abÿþcd", expected: "ab"},
		{name: "not byte aligned", message: "\u007fÿ\u0000tail", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			img := test.GenerateImage(testImageSize, testImageSize)
			if err := NewImageEncoder(img, config.ImageEncodeConfig{}).EncodeMessage(tc.message); err != nil {
				t.Fatalf("Error encoding message: %s", err)
			}

			message, err := NewImageDecoder(img, config.ImageDecodeConfig{}).DecodeMessage()
			if err != nil {
				t.Fatalf("Error decoding message: %s", err)
			}
			if message != tc.expected {
				t.Errorf("Expected truncated message %q, got %q", tc.expected, message)
			}
		})
	}
}

func TestDecodeWrongChannel(t *testing.T) {
	img := test.GenerateEvenImage(testImageSize, testImageSize)
	if err := NewImageEncoder(img, config.ImageEncodeConfig{Channel: config.ChannelGreen}).EncodeMessage("hidden"); err != nil {
		t.Fatalf("Error encoding message: %s", err)
	}

	_, err := NewImageDecoder(img, config.ImageDecodeConfig{Channel: config.ChannelRed}).DecodeMessage()
	if !errors.Is(err, ErrTerminatorNotFound) {
		t.Errorf("Expected ErrTerminatorNotFound when reading the wrong channel, got %v", err)
	}
}
