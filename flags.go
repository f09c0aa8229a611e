package z180

// Flag bit positions within F. Bits 3 and 5 are left unassigned: this
// package never sets them when synthesizing flags, so no undefined state
// leaks into F from the ALU. Direct register writes (e.g. POP AF) still
// round-trip every bit of F.
const (
	flagC  uint8 = 1 << 0
	flagN  uint8 = 1 << 1
	flagPV uint8 = 1 << 2
	flagH  uint8 = 1 << 4
	flagZ  uint8 = 1 << 6
	flagS  uint8 = 1 << 7
)

func sign8(v uint8) uint8 {
	if v&0x80 != 0 {
		return flagS
	}
	return 0
}

func zero8(v uint8) uint8 {
	if v == 0 {
		return flagZ
	}
	return 0
}

// parity8 sets flagPV when v has an even number of set bits.
func parity8(v uint8) uint8 {
	p := v
	p ^= p >> 4
	p ^= p >> 2
	p ^= p >> 1
	if p&1 == 0 {
		return flagPV
	}
	return 0
}

func sign16(v uint16) uint8 {
	if v&0x8000 != 0 {
		return flagS
	}
	return 0
}

func zero16(v uint16) uint8 {
	if v == 0 {
		return flagZ
	}
	return 0
}

// addFlags8 computes the 8-bit adder a+b+cin (cin in {0,1}) and the flags
// that result: S from bit 7, Z from the masked result, H from the nibble
// carry, P/V from the sign-comparison overflow rule, N=0, C from bit 8 of
// the sum.
func addFlags8(a, b, cin uint8) (result uint8, flags uint8) {
	r := uint16(a) + uint16(b) + uint16(cin)
	result = uint8(r)
	flags |= sign8(result)
	flags |= zero8(result)
	if (a^b^result)&0x10 != 0 {
		flags |= flagH
	}
	if (a^b^0x80)&(a^result)&0x80 != 0 {
		flags |= flagPV
	}
	if r&0x100 != 0 {
		flags |= flagC
	}
	return result, flags
}

// subFlags8 computes a-b-cin by reusing addFlags8 on the one's-complement
// of b with the carry-in complemented, then inverting the two borrow-style
// bits (H and C come out of addFlags8 as the complement of a half/full
// borrow) and forcing N=1.
func subFlags8(a, b, cin uint8) (result uint8, flags uint8) {
	result, flags = addFlags8(a, ^b, 1-cin)
	flags ^= flagH | flagC
	flags |= flagN
	return result, flags
}

// logicFlags8 computes the flags for AND/OR/XOR: S,Z from the result,
// parity of the result, H set only for AND, N=0, C=0.
func logicFlags8(result uint8, isAnd bool) uint8 {
	f := sign8(result) | zero8(result) | parity8(result)
	if isAnd {
		f |= flagH
	}
	return f
}
