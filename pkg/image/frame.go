package image

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

const (
	// Terminator marks the end of the message: 1111111111111110
	Terminator     = uint16(0xFFFE)
	terminatorBits = 16
)

var (
	ErrCapacityExceeded     = errors.New("message is too large for the image")
	ErrUnsupportedCharacter = errors.New("message contains a character that does not fit in a single byte")

	terminatorBytes = []byte{byte(Terminator >> 8), byte(Terminator & 0xFF)}
)

// Payload is a message framed for embedding: its single byte characters followed by the terminator
type Payload struct {
	bytes []byte
}

func (p *Payload) Bytes() []byte {
	return p.bytes
}

// BitLen is the number of pixels needed to embed the payload
func (p *Payload) BitLen() int {
	return len(p.bytes) * 8
}

// Capacity is the number of bits an image can carry, one per pixel
func Capacity(width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return width * height
}

// Frame converts message into a terminated bit sequence and validates it fits in an image of the given dimensions
func Frame(message string, width, height int) (*Payload, error) {
	messageBytes, err := messageToBytes(message)
	if err != nil {
		return nil, err
	}

	payload := &Payload{bytes: append(messageBytes, terminatorBytes...)}
	if capacity := Capacity(width, height); payload.BitLen() > capacity {
		return nil, fmt.Errorf("%w: %d bits required, %d available", ErrCapacityExceeded, payload.BitLen(), capacity)
	}
	return payload, nil
}

func messageToBytes(message string) ([]byte, error) {
	for idx, r := range message {
		if r > 0xFF {
			return nil, fmt.Errorf("%w: %q at byte %d", ErrUnsupportedCharacter, r, idx)
		}
	}

	encoded, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(message))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCharacter, err)
	}
	return encoded, nil
}

func bytesToMessage(messageBytes []byte) (string, error) {
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(messageBytes)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
