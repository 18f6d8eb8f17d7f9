package bits

// BitWriter accumulates bits most significant first into whole bytes
type BitWriter struct {
	bytes   []byte
	current byte
	bitLen  int
}

func NewBitWriter(sizeHint int) *BitWriter {
	return &BitWriter{bytes: make([]byte, 0, sizeHint)}
}

func (bw *BitWriter) WriteBit(bit byte) {
	bw.current = bw.current<<1 | bit&1
	bw.bitLen++
	if bw.bitLen%8 == 0 {
		bw.bytes = append(bw.bytes, bw.current)
		bw.current = 0
	}
}

// Len returns the number of bits written so far
func (bw *BitWriter) Len() int {
	return bw.bitLen
}

// CompleteBytes returns the complete bytes contained in the first numOfBits bits written, discarding any trailing
// partial byte
func (bw *BitWriter) CompleteBytes(numOfBits int) []byte {
	if numOfBits <= 0 {
		return bw.bytes[:0]
	}
	if numOfBits > bw.bitLen {
		numOfBits = bw.bitLen
	}
	return bw.bytes[:numOfBits/8]
}
