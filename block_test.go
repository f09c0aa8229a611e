package z180

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// LDI copies one byte from (HL) to (DE), advances both pointers, and
// decrements BC; P/V reflects whether BC is still nonzero afterward.
func TestLDI(t *testing.T) {
	c, bus, ram := newTestCPU()
	c.gr.HL = 0x4000
	c.gr.DE = 0x5000
	c.gr.BC = 2
	ram.Poke(0x4000, 0x77)
	c.gr.F = flagS | flagZ | flagC // must survive untouched

	c.ldi(bus)

	assert.Equal(t, uint8(0x77), ram.Peek(0x5000))
	assert.Equal(t, uint16(0x4001), c.gr.HL)
	assert.Equal(t, uint16(0x5001), c.gr.DE)
	assert.Equal(t, uint16(1), c.gr.BC)
	assert.NotZero(t, c.gr.F&flagPV) // BC still nonzero
	assert.NotZero(t, c.gr.F&flagS)
	assert.NotZero(t, c.gr.F&flagZ)
	assert.NotZero(t, c.gr.F&flagC)
	assert.Zero(t, c.gr.F&flagH)
}

// LDIR repeats LDI until BC reaches zero, rewinding PC by 2 each time it
// does, and clears P/V on the final iteration.
func TestLDIR(t *testing.T) {
	c, bus, ram := newTestCPU()
	c.gr.HL = 0x4000
	c.gr.DE = 0x5000
	c.gr.BC = 3
	c.sr.PC = 0x0100
	ram.Load(0x4000, []byte{0x11, 0x22, 0x33})

	c.ldir(bus)
	assert.Equal(t, uint16(0x0100-2), c.sr.PC) // re-fetch while BC != 0
	assert.NotZero(t, c.gr.F&flagPV)

	c.sr.PC = 0x0100
	c.ldir(bus)
	assert.Equal(t, uint16(0x0100-2), c.sr.PC)

	c.sr.PC = 0x0100
	c.ldir(bus)
	assert.Equal(t, uint16(0), c.gr.BC)
	assert.Equal(t, uint16(0x0100), c.sr.PC) // no rewind on the final byte
	assert.Zero(t, c.gr.F&flagPV)

	assert.Equal(t, []byte{0x11, 0x22, 0x33}, []byte{ram.Peek(0x5000), ram.Peek(0x5001), ram.Peek(0x5002)})
}

// LDD mirrors LDI, moving HL/DE backward instead of forward.
func TestLDD(t *testing.T) {
	c, bus, ram := newTestCPU()
	c.gr.HL = 0x4002
	c.gr.DE = 0x5002
	c.gr.BC = 1
	ram.Poke(0x4002, 0x99)

	c.ldd(bus)

	assert.Equal(t, uint8(0x99), ram.Peek(0x5002))
	assert.Equal(t, uint16(0x4001), c.gr.HL)
	assert.Equal(t, uint16(0x5001), c.gr.DE)
	assert.Zero(t, c.gr.F&flagPV) // BC reached 0
}

// CPI compares A against (HL), sets Z on a match, leaves C untouched, and
// always sets N.
func TestCPI(t *testing.T) {
	c, bus, ram := newTestCPU()
	c.gr.A = 0x42
	c.gr.HL = 0x6000
	c.gr.BC = 5
	ram.Poke(0x6000, 0x42)
	c.gr.F = flagC

	c.cpi(bus)

	assert.NotZero(t, c.gr.F&flagZ)
	assert.NotZero(t, c.gr.F&flagN)
	assert.NotZero(t, c.gr.F&flagC) // preserved, not derived from the comparison
	assert.NotZero(t, c.gr.F&flagPV)
	assert.Equal(t, uint16(0x6001), c.gr.HL)
	assert.Equal(t, uint16(4), c.gr.BC)
}

// CPIR keeps repeating CPI until either a match is found or BC reaches
// zero, whichever comes first.
func TestCPIR(t *testing.T) {
	c, bus, ram := newTestCPU()
	c.gr.A = 0xAB
	c.gr.HL = 0x7000
	c.gr.BC = 3
	c.sr.PC = 0x0200
	ram.Load(0x7000, []byte{0x01, 0xAB, 0x02})

	c.cpir(bus) // miss at 0x7000
	assert.Equal(t, uint16(0x0200-2), c.sr.PC)
	assert.Zero(t, c.gr.F&flagZ)

	c.sr.PC = 0x0200
	c.cpir(bus) // match at 0x7001: HL has advanced past the first byte
	assert.NotZero(t, c.gr.F&flagZ)
	assert.Equal(t, uint16(0x0200), c.sr.PC) // no rewind once a match is found
	assert.Equal(t, uint16(1), c.gr.BC)
}
