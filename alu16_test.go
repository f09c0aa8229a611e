package z180

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// INC/ADD/SBC HL sequence: HL starts at 0xFFFF and INC wraps it to 0;
// then, from HL=0x1234, adding 0x1234 doubles it to 0x2468, and
// SBC HL,HL with no carry zeroes it while setting Z and clearing S/C.
func TestAlu16Sequence(t *testing.T) {
	c, _, _ := newTestCPU()
	c.gr.HL = 0xFFFF

	c.inc16(&c.gr.HL)
	assert.Equal(t, uint16(0), c.gr.HL)

	c.gr.HL = 0x1234
	c.add16(&c.gr.HL, 0x1234)
	assert.Equal(t, uint16(0x2468), c.gr.HL)

	c.gr.F &^= flagC
	c.sbc16(c.gr.HL)
	assert.Equal(t, uint16(0), c.gr.HL)
	assert.NotZero(t, c.gr.F&flagZ)
	assert.Zero(t, c.gr.F&flagS)
	assert.Zero(t, c.gr.F&flagC)
}

// ADD HL,ww only touches C, H, and N; S, Z, and P/V survive untouched
// from whatever they were before the add.
func TestAdd16PreservesSZPV(t *testing.T) {
	c, _, _ := newTestCPU()
	c.gr.F = flagS | flagZ | flagPV
	c.gr.HL = 0x0FFF

	c.add16(&c.gr.HL, 0x0001)

	assert.Equal(t, uint16(0x1000), c.gr.HL)
	assert.NotZero(t, c.gr.F&flagS)
	assert.NotZero(t, c.gr.F&flagZ)
	assert.NotZero(t, c.gr.F&flagPV)
	assert.NotZero(t, c.gr.F&flagH)
	assert.Zero(t, c.gr.F&flagC)
}

// ADC HL,ww with an incoming carry sets the full flag set from the
// 16-bit result, unlike plain ADD HL,ww.
func TestAdc16FullFlags(t *testing.T) {
	c, _, _ := newTestCPU()
	c.gr.HL = 0x7FFF
	c.gr.BC = 0x0000
	c.gr.F = flagC

	c.adc16(c.gr.BC)

	assert.Equal(t, uint16(0x8000), c.gr.HL)
	assert.NotZero(t, c.gr.F&flagS)
	assert.NotZero(t, c.gr.F&flagPV)
	assert.Zero(t, c.gr.F&flagC)
}
