package z180

// 16-bit arithmetic: ADD HL,ww and the carry-affecting ADC/SBC HL,ww
// forms. Both compute half-carry from bit 12 of the intermediate.

// addFlags16 computes a+b+cin (16-bit) and the flags that result, mirroring
// addFlags8 one size class up: H is the carry into bit 12, P/V is the
// sign-comparison overflow rule applied to bit 15, C is the carry out of
// bit 16.
func addFlags16(a, b, cin uint16) (result uint16, flags uint8) {
	r := uint32(a) + uint32(b) + uint32(cin)
	result = uint16(r)
	flags |= sign16(result)
	flags |= zero16(result)
	if (a^b^result)&0x1000 != 0 {
		flags |= flagH
	}
	if (a^b^0x8000)&(a^result)&0x8000 != 0 {
		flags |= flagPV
	}
	if r&0x10000 != 0 {
		flags |= flagC
	}
	return result, flags
}

// subFlags16 computes a-b-cin by the same one's-complement-reuse technique
// as subFlags8.
func subFlags16(a, b, cin uint16) (result uint16, flags uint8) {
	result, flags = addFlags16(a, ^b, 1-cin)
	flags ^= flagH | flagC
	flags |= flagN
	return result, flags
}

// add16 implements ADD HL,ww / ADD IX,pp / ADD IY,pp: only C (bit 16) and
// H (bit 12) are affected, N is reset, and S, Z, P/V are preserved from
// whatever they were before the instruction.
func (c *CPU) add16(dst *uint16, ww uint16) {
	a := *dst
	r := uint32(a) + uint32(ww)
	result := uint16(r)
	*dst = result

	f := c.gr.F &^ (flagH | flagN | flagC)
	if (a^ww^result)&0x1000 != 0 {
		f |= flagH
	}
	if r&0x10000 != 0 {
		f |= flagC
	}
	c.gr.F = f
}

// adc16 implements ADC HL,ww: all of S,Z,H,P/V,N,C are affected.
func (c *CPU) adc16(ww uint16) {
	var cin uint16
	if c.gr.F&flagC != 0 {
		cin = 1
	}
	result, f := addFlags16(c.gr.HL, ww, cin)
	c.gr.HL = result
	c.gr.F = f
}

// sbc16 implements SBC HL,ww: all of S,Z,H,P/V,N,C are affected.
func (c *CPU) sbc16(ww uint16) {
	var cin uint16
	if c.gr.F&flagC != 0 {
		cin = 1
	}
	result, f := subFlags16(c.gr.HL, ww, cin)
	c.gr.HL = result
	c.gr.F = f
}

// inc16 implements INC on a 16-bit register pair: no flags, wraps mod 2^16.
func (c *CPU) inc16(dst *uint16) {
	*dst++
}

// dec16 implements DEC on a 16-bit register pair: no flags, wraps mod 2^16.
func (c *CPU) dec16(dst *uint16) {
	*dst--
}
