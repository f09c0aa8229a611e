package z180

import (
	"encoding/binary"
	"errors"
)

// cpuSerializeVersion is incremented whenever the binary layout changes.
const cpuSerializeVersion = 1

// cpuSerializeSize is the number of bytes produced by CPU.Serialize.
// Update this constant whenever the binary layout changes.
const cpuSerializeSize = 34

// SerializeSize returns the number of bytes needed for Serialize.
func (c *CPU) SerializeSize() int { return cpuSerializeSize }

// Serialize writes the full CPU state into buf, which must be at least
// SerializeSize() bytes. Bus and peripheral state are not included; only
// the MMU's three bank registers travel with the CPU, since translate()
// is otherwise a pure function of them.
func (c *CPU) Serialize(buf []byte) error {
	if len(buf) < cpuSerializeSize {
		return errors.New("z180: serialize buffer too small")
	}

	buf[0] = cpuSerializeVersion
	be := binary.BigEndian
	off := 1

	off = putGR(buf, off, c.gr)
	off = putGR(buf, off, c.shadow)

	be.PutUint16(buf[off:], c.sr.IX)
	off += 2
	be.PutUint16(buf[off:], c.sr.IY)
	off += 2
	be.PutUint16(buf[off:], c.sr.SP)
	off += 2
	be.PutUint16(buf[off:], c.sr.PC)
	off += 2
	buf[off] = c.sr.I
	off++
	buf[off] = c.sr.R
	off++
	buf[off] = boolByte(c.sr.IFF1)
	off++
	buf[off] = boolByte(c.sr.IFF2)
	off++

	buf[off] = c.mmu.cbar
	off++
	buf[off] = c.mmu.cbr
	off++
	buf[off] = c.mmu.bbr
	off++

	buf[off] = uint8(c.mode)
	off++
	buf[off] = c.interruptMode
	return nil
}

func putGR(buf []byte, off int, gr GR) int {
	be := binary.BigEndian
	buf[off] = gr.A
	off++
	buf[off] = gr.F
	off++
	be.PutUint16(buf[off:], gr.BC)
	off += 2
	be.PutUint16(buf[off:], gr.DE)
	off += 2
	be.PutUint16(buf[off:], gr.HL)
	off += 2
	return off
}

func getGR(buf []byte, off int) (GR, int) {
	be := binary.BigEndian
	var gr GR
	gr.A = buf[off]
	off++
	gr.F = buf[off]
	off++
	gr.BC = be.Uint16(buf[off:])
	off += 2
	gr.DE = be.Uint16(buf[off:])
	off += 2
	gr.HL = be.Uint16(buf[off:])
	off += 2
	return gr, off
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// Deserialize restores CPU state from buf, which must be at least
// SerializeSize() bytes. Returns an error if the buffer is too small or
// the version does not match. Fault is cleared: a resumed CPU is given
// the chance to run again rather than inheriting a frozen diagnostic.
func (c *CPU) Deserialize(buf []byte) error {
	if len(buf) < cpuSerializeSize {
		return errors.New("z180: deserialize buffer too small")
	}
	if buf[0] != cpuSerializeVersion {
		return errors.New("z180: unsupported serialize version")
	}

	be := binary.BigEndian
	off := 1

	c.gr, off = getGR(buf, off)
	c.shadow, off = getGR(buf, off)

	c.sr.IX = be.Uint16(buf[off:])
	off += 2
	c.sr.IY = be.Uint16(buf[off:])
	off += 2
	c.sr.SP = be.Uint16(buf[off:])
	off += 2
	c.sr.PC = be.Uint16(buf[off:])
	off += 2
	c.sr.I = buf[off]
	off++
	c.sr.R = buf[off]
	off++
	c.sr.IFF1 = buf[off] != 0
	off++
	c.sr.IFF2 = buf[off] != 0
	off++

	c.mmu.cbar = buf[off]
	off++
	c.mmu.cbr = buf[off]
	off++
	c.mmu.bbr = buf[off]
	off++

	c.mode = Mode(buf[off])
	off++
	c.interruptMode = buf[off]
	c.fault = nil
	return nil
}
