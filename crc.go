package z180

import "hash/crc32"

// CRC32 accumulates a running checksum using zexdoc's convention: seed the
// accumulator with all-ones and never apply a final XOR, unlike
// hash/crc32's ChecksumIEEE which finalizes with one. Reusing
// crc32.IEEETable keeps the polynomial itself straight from the standard
// library; only the accumulation convention differs.
type CRC32 struct {
	value uint32
}

// NewCRC32 creates an accumulator seeded the way zexdoc's updcrc expects.
func NewCRC32() *CRC32 {
	return &CRC32{value: 0xFFFFFFFF}
}

// UpdateByte folds one byte into the running checksum.
func (c *CRC32) UpdateByte(b byte) {
	c.value = crc32.IEEETable[byte(c.value)^b] ^ (c.value >> 8)
}

// Update folds every byte of data into the running checksum, in order.
func (c *CRC32) Update(data []byte) {
	for _, b := range data {
		c.UpdateByte(b)
	}
}

// Sum returns the checksum accumulated so far. There is no final XOR, so
// calling Sum mid-stream and continuing to Update afterward is valid.
func (c *CRC32) Sum() uint32 {
	return c.value
}
