package bits

// BitReader implements methods to help with reading bits from an array of bytes. Bits are read from most significant
// to least significant, which is the order in which framed messages are laid out in an image
type BitReader struct {
	bytes         []byte
	currentBitIdx uint
}

func NewBitReader(bytes []byte) *BitReader {
	return &BitReader{
		bytes: bytes,
	}
}

func (br *BitReader) BitsLeftToRead() int {
	if len(br.bytes) == 0 {
		return 0
	}
	return (len(br.bytes)-1)*8 + (8 - int(br.currentBitIdx))
}

// ReadBit returns the next bit as 0 or 1. Reading past the end returns 0
func (br *BitReader) ReadBit() byte {
	if len(br.bytes) == 0 {
		return 0
	}
	bit := (br.bytes[0] >> (7 - br.currentBitIdx)) & 1
	br.currentBitIdx++
	if br.currentBitIdx == 8 {
		br.bytes = br.bytes[1:]
		br.currentBitIdx = 0
	}
	return bit
}
