package z180

import "fmt"

// opFunc is the handler signature for a single instruction. opcode is the
// byte that selected the handler (the CB/ED opcode, or the base-plane
// opcode for DD/FD-prefixed instructions); every field a handler needs is
// decoded from it at call time rather than baked in at registration time,
// so the same handler can serve every register/condition permutation of
// an instruction and can be reused unmodified under a DD/FD prefix.
type opFunc func(c *CPU, bus Bus, opcode uint8)

var baseTable [256]opFunc
var cbTable [256]opFunc
var edTable [256]opFunc

func init() {
	registerLoads()
	registerALU()
	registerIncDec()
	registerRotateAccumulator()
	register16Bit()
	registerJumpsAndCalls()
	registerStackAndExchange()
	registerMisc()
	registerCB()
	registerED()
}

// regFromField maps a 3-bit register field to a Register. Field 6 ((HL))
// is handled separately by regOperand, since it addresses memory rather
// than a register.
func regFromField(f uint8) Register {
	switch f & 7 {
	case 0:
		return RegB
	case 1:
		return RegC
	case 2:
		return RegD
	case 3:
		return RegE
	case 4:
		return RegH
	case 5:
		return RegL
	case 7:
		return RegA
	}
	return RegA
}

// regOperand resolves a 3-bit register field to an Operand, substituting
// (IX+d)/(IY+d) for (HL) when executing under a DD/FD prefix. Plain H and
// L are never substituted: only the (HL) indirection and the 16-bit HL
// register itself (via hlPtr/hlOperand) respond to the index override.
func (c *CPU) regOperand(f uint8) Operand {
	if f&7 == 6 {
		switch c.indexMode {
		case 1:
			return OpIndexed(RegIX)
		case 2:
			return OpIndexed(RegIY)
		default:
			return OpIndirect(RegHL)
		}
	}
	return OpDirect(regFromField(f))
}

// hlPtr returns a pointer to whichever 16-bit register HL-shaped
// instructions should address: HL normally, IX or IY under a DD/FD
// prefix.
func (c *CPU) hlPtr() *uint16 {
	switch c.indexMode {
	case 1:
		return &c.sr.IX
	case 2:
		return &c.sr.IY
	default:
		return &c.gr.HL
	}
}

func (c *CPU) hlRegister() Register {
	switch c.indexMode {
	case 1:
		return RegIX
	case 2:
		return RegIY
	default:
		return RegHL
	}
}

// ddPtr resolves a 2-bit register-pair field (00=BC,01=DE,10=HL,11=SP) to
// a pointer, substituting IX/IY for the HL slot under a DD/FD prefix.
func (c *CPU) ddPtr(dd uint8) *uint16 {
	switch dd & 3 {
	case 0:
		return &c.gr.BC
	case 1:
		return &c.gr.DE
	case 2:
		return c.hlPtr()
	default:
		return &c.sr.SP
	}
}

// qqReg resolves a 2-bit register-pair field used by PUSH/POP
// (00=BC,01=DE,10=HL,11=AF), substituting IX/IY for the HL slot under a
// DD/FD prefix.
func (c *CPU) qqReg(qq uint8) Register {
	switch qq & 3 {
	case 0:
		return RegBC
	case 1:
		return RegDE
	case 2:
		return c.hlRegister()
	default:
		return RegAF
	}
}

// aluOp applies one of the eight accumulator ALU operations, in the
// order the base opcode map's ADD/ADC/SUB/SBC/AND/XOR/OR/CP block and the
// 0xC6-0xFE immediate block both use.
func (c *CPU) aluOp(bus Bus, op uint8, src Operand) {
	switch op & 7 {
	case 0:
		c.addA(bus, src, false)
	case 1:
		c.addA(bus, src, true)
	case 2:
		c.subA(bus, src, false, false)
	case 3:
		c.subA(bus, src, true, false)
	case 4:
		c.andA(bus, src)
	case 5:
		c.xorA(bus, src)
	case 6:
		c.orA(bus, src)
	case 7:
		c.subA(bus, src, false, true)
	}
}

// execute dispatches the just-fetched opcode byte, following any CB/ED/
// DD/FD prefix chain to the instruction it ultimately selects.
func (c *CPU) execute(bus Bus, opcode uint8) {
	switch opcode {
	case 0xCB:
		op2 := c.fetchByte(bus)
		cbTable[op2](c, bus, op2)
	case 0xED:
		op2 := c.fetchByte(bus)
		if h := edTable[op2]; h != nil {
			h(c, bus, op2)
		} else {
			c.decoderBug(fmt.Sprintf("illegal opcode ED %02X", op2))
		}
	case 0xDD:
		c.executeIndexed(bus, 1)
	case 0xFD:
		c.executeIndexed(bus, 2)
	default:
		if h := baseTable[opcode]; h != nil {
			h(c, bus, opcode)
		} else {
			c.decoderBug(fmt.Sprintf("illegal opcode %02X", opcode))
		}
	}
}

// executeIndexed runs a single DD- or FD-prefixed instruction: it sets
// indexMode for the duration of the call so every helper that consults
// hlPtr/regOperand/ddPtr/qqReg substitutes IX or IY, then either dispatches
// into the base table (for a plain indexed instruction) or into the
// DD CB / FD CB path (when the next byte is itself 0xCB).
func (c *CPU) executeIndexed(bus Bus, mode uint8) {
	prev := c.indexMode
	c.indexMode = mode
	defer func() { c.indexMode = prev }()

	op2 := c.fetchByte(bus)
	if op2 == 0xCB {
		c.executeIndexedBit(bus, mode)
		return
	}
	if h := baseTable[op2]; h != nil {
		h(c, bus, op2)
	} else {
		c.decoderBug(fmt.Sprintf("illegal indexed opcode %02X", op2))
	}
}

// executeIndexedBit runs a DD CB / FD CB instruction: the displacement
// byte precedes the CB-style opcode byte, and the effective address it
// computes replaces whatever register field the opcode names — matching
// the common simplification that the undocumented register-capture
// variants only ever touch memory.
func (c *CPU) executeIndexedBit(bus Bus, mode uint8) {
	reg := RegIX
	if mode == 2 {
		reg = RegIY
	}
	d := int8(c.fetchByte(bus))
	addr := uint16(int32(c.reg(reg)) + int32(d))
	op3 := c.fetchByte(bus)
	c.executeCB(bus, op3, OpMemory(addr))
}

// executeCB runs a single CB-plane instruction against the given operand.
// Called directly for the plain CB table (where operand is derived from
// op's own register field) and indirectly for DD CB/FD CB (where operand
// is the precomputed indexed address and the register field is ignored).
func (c *CPU) executeCB(bus Bus, op uint8, operand Operand) {
	group := (op >> 3) & 7
	switch {
	case op < 0x40:
		c.shiftOp(bus, group, operand)
	case op < 0x80:
		c.bit(bus, group, operand)
	case op < 0xC0:
		c.res(bus, group, operand)
	default:
		c.setBit(bus, group, operand)
	}
}

func (c *CPU) shiftOp(bus Bus, group uint8, op Operand) {
	switch group {
	case 0:
		c.rlc(bus, op)
	case 1:
		c.rrc(bus, op)
	case 2:
		c.rl(bus, op)
	case 3:
		c.rr(bus, op)
	case 4:
		c.sla(bus, op)
	case 5:
		c.sra(bus, op)
	case 6:
		c.sll(bus, op)
	case 7:
		c.srl(bus, op)
	}
}

// --- base-plane loads ---

func registerLoads() {
	for r := uint8(0); r < 8; r++ {
		for rp := uint8(0); rp < 8; rp++ {
			opcode := 0x40 + r*8 + rp
			if r == 6 && rp == 6 {
				baseTable[opcode] = opHalt
				continue
			}
			baseTable[opcode] = opLDrr
		}
		baseTable[0x06+r*8] = opLDrImm
	}

	baseTable[0x02] = opLDBCIndirectA
	baseTable[0x12] = opLDDEIndirectA
	baseTable[0x0A] = opLDABCIndirect
	baseTable[0x1A] = opLDADEIndirect
	baseTable[0x22] = opLDExtHL
	baseTable[0x2A] = opLDHLExt
	baseTable[0x32] = opLDExtA
	baseTable[0x3A] = opLDAExt
	baseTable[0x36] = opLDIndirectImm
}

func opLDrr(c *CPU, bus Bus, opcode uint8) {
	r := (opcode >> 3) & 7
	rp := opcode & 7
	v := c.loadOperand(bus, c.regOperand(rp))
	c.storeOperand(bus, c.regOperand(r), v)
}

func opLDrImm(c *CPU, bus Bus, opcode uint8) {
	r := (opcode >> 3) & 7
	dst := c.regOperand(r)
	v := c.loadOperand(bus, OpImmediate())
	c.storeOperand(bus, dst, v)
}

func opLDBCIndirectA(c *CPU, bus Bus, _ uint8) { c.memWrite8(bus, c.gr.BC, c.gr.A) }
func opLDDEIndirectA(c *CPU, bus Bus, _ uint8) { c.memWrite8(bus, c.gr.DE, c.gr.A) }
func opLDABCIndirect(c *CPU, bus Bus, _ uint8) { c.gr.A = c.memRead8(bus, c.gr.BC, false) }
func opLDADEIndirect(c *CPU, bus Bus, _ uint8) { c.gr.A = c.memRead8(bus, c.gr.DE, false) }

func opLDExtHL(c *CPU, bus Bus, _ uint8) {
	c.storeOperand(bus, OpExtended16(), *c.hlPtr())
}

func opLDHLExt(c *CPU, bus Bus, _ uint8) {
	*c.hlPtr() = c.loadOperand(bus, OpExtended16())
}

func opLDExtA(c *CPU, bus Bus, _ uint8) {
	c.storeOperand(bus, OpExtended(), uint16(c.gr.A))
}

func opLDAExt(c *CPU, bus Bus, _ uint8) {
	c.gr.A = uint8(c.loadOperand(bus, OpExtended()))
}

// opLDIndirectImm implements LD (HL),n and LD (IX+d),n/LD (IY+d),n. The
// displacement, when present, must be consumed before the immediate
// operand byte that follows it, so this bypasses the generic
// load-then-store helpers rather than risk reading the two bytes in the
// wrong order.
func opLDIndirectImm(c *CPU, bus Bus, _ uint8) {
	switch c.indexMode {
	case 1, 2:
		reg := c.hlRegister()
		d := int8(c.fetchByte(bus))
		addr := uint16(int32(c.reg(reg)) + int32(d))
		n := c.fetchByte(bus)
		c.memWrite8(bus, addr, n)
	default:
		n := c.fetchByte(bus)
		c.memWrite8(bus, c.gr.HL, n)
	}
}

// --- ALU ---

func registerALU() {
	for op := uint8(0); op < 8; op++ {
		for r := uint8(0); r < 8; r++ {
			baseTable[0x80+op*8+r] = opALUReg
		}
		baseTable[0xC6+op*8] = opALUImm
	}
}

func opALUReg(c *CPU, bus Bus, opcode uint8) {
	op := (opcode >> 3) & 7
	r := opcode & 7
	c.aluOp(bus, op, c.regOperand(r))
}

func opALUImm(c *CPU, bus Bus, opcode uint8) {
	op := (opcode >> 3) & 7
	c.aluOp(bus, op, OpImmediate())
}

// --- INC/DEC ---

func registerIncDec() {
	for r := uint8(0); r < 8; r++ {
		baseTable[0x04+r*8] = opINCr
		baseTable[0x05+r*8] = opDECr
	}
}

func opINCr(c *CPU, bus Bus, opcode uint8) {
	r := (opcode >> 3) & 7
	c.inc8(bus, c.regOperand(r))
}

func opDECr(c *CPU, bus Bus, opcode uint8) {
	r := (opcode >> 3) & 7
	c.dec8(bus, c.regOperand(r))
}

// --- accumulator rotates and flag-adjustment ---

func registerRotateAccumulator() {
	baseTable[0x07] = func(c *CPU, bus Bus, _ uint8) { c.rlca(bus) }
	baseTable[0x0F] = func(c *CPU, bus Bus, _ uint8) { c.rrca(bus) }
	baseTable[0x17] = func(c *CPU, bus Bus, _ uint8) { c.rla(bus) }
	baseTable[0x1F] = func(c *CPU, bus Bus, _ uint8) { c.rra(bus) }
	baseTable[0x27] = func(c *CPU, bus Bus, _ uint8) { c.daa() }
	baseTable[0x2F] = func(c *CPU, bus Bus, _ uint8) { c.cpl() }
	baseTable[0x37] = func(c *CPU, bus Bus, _ uint8) { c.scf() }
	baseTable[0x3F] = func(c *CPU, bus Bus, _ uint8) { c.ccf() }
}

// --- 16-bit register-pair instructions ---

func register16Bit() {
	for dd := uint8(0); dd < 4; dd++ {
		baseTable[0x01+dd*16] = opLDddImm
		baseTable[0x03+dd*16] = opINCdd
		baseTable[0x0B+dd*16] = opDECdd
		baseTable[0x09+dd*16] = opADDHLdd
	}
	for qq := uint8(0); qq < 4; qq++ {
		baseTable[0xC1+qq*16] = opPOPqq
		baseTable[0xC5+qq*16] = opPUSHqq
	}
}

func opLDddImm(c *CPU, bus Bus, opcode uint8) {
	dd := (opcode >> 4) & 3
	*c.ddPtr(dd) = c.loadOperand(bus, OpImmediate16())
}

func opINCdd(c *CPU, bus Bus, opcode uint8) {
	dd := (opcode >> 4) & 3
	c.inc16(c.ddPtr(dd))
}

func opDECdd(c *CPU, bus Bus, opcode uint8) {
	dd := (opcode >> 4) & 3
	c.dec16(c.ddPtr(dd))
}

func opADDHLdd(c *CPU, bus Bus, opcode uint8) {
	dd := (opcode >> 4) & 3
	c.add16(c.hlPtr(), *c.ddPtr(dd))
}

func opPUSHqq(c *CPU, bus Bus, opcode uint8) {
	qq := (opcode >> 4) & 3
	c.push(bus, c.qqReg(qq))
}

func opPOPqq(c *CPU, bus Bus, opcode uint8) {
	qq := (opcode >> 4) & 3
	c.pop(bus, c.qqReg(qq))
}

// --- jumps, calls, returns ---

func registerJumpsAndCalls() {
	baseTable[0x10] = opDJNZ
	baseTable[0x18] = opJR
	baseTable[0xC3] = opJP
	baseTable[0xC9] = opRET
	baseTable[0xE9] = opJPHL

	for cc := uint8(0); cc < 4; cc++ {
		baseTable[0x20+cc*8] = opJRcc
	}
	for cc := uint8(0); cc < 8; cc++ {
		baseTable[0xC0+cc*8] = opRETcc
		baseTable[0xC2+cc*8] = opJPcc
		baseTable[0xC4+cc*8] = opCALLcc
		baseTable[0xC7+cc*8] = opRST
	}
	baseTable[0xCD] = opCALL
}

func opJR(c *CPU, bus Bus, _ uint8)   { c.jr(bus, OpRelative()) }
func opJP(c *CPU, bus Bus, _ uint8)   { c.jp(bus, OpImmediate16()) }
func opJPHL(c *CPU, bus Bus, _ uint8) { c.jp(bus, OpDirect(c.hlRegister())) }
func opRET(c *CPU, bus Bus, _ uint8)  { c.ret(bus) }
func opCALL(c *CPU, bus Bus, _ uint8) { c.call(bus, OpImmediate16()) }

func opDJNZ(c *CPU, bus Bus, _ uint8) { c.djnz(bus, OpRelative()) }

func opJRcc(c *CPU, bus Bus, opcode uint8) {
	cc := Condition((opcode >> 3) & 3)
	c.jrConditional(bus, cc, OpRelative())
}

func opRETcc(c *CPU, bus Bus, opcode uint8) {
	cc := Condition((opcode >> 3) & 7)
	c.retConditional(bus, cc)
}

func opJPcc(c *CPU, bus Bus, opcode uint8) {
	cc := Condition((opcode >> 3) & 7)
	c.jpConditional(bus, cc, OpImmediate16())
}

func opCALLcc(c *CPU, bus Bus, opcode uint8) {
	cc := Condition((opcode >> 3) & 7)
	c.callConditional(bus, cc, OpImmediate16())
}

func opRST(c *CPU, bus Bus, opcode uint8) {
	n := (opcode >> 3) & 7
	c.rst(bus, uint16(n)*8)
}

// --- stack and exchange ---

func registerStackAndExchange() {
	baseTable[0xE3] = opEXSPHL
	baseTable[0xEB] = opEXDEHL
	baseTable[0xD9] = opEXX
	baseTable[0x08] = opEXAFAFPrime
	baseTable[0xF9] = opLDSPHL
}

func opEXSPHL(c *CPU, bus Bus, _ uint8) {
	switch c.indexMode {
	case 1:
		c.exchange(bus, ExchangeSPIX)
	case 2:
		c.exchange(bus, ExchangeSPIY)
	default:
		c.exchange(bus, ExchangeSPHL)
	}
}

func opEXDEHL(c *CPU, bus Bus, _ uint8)      { c.exchange(bus, ExchangeDEHL) }
func opEXX(c *CPU, bus Bus, _ uint8)         { c.exchange(bus, ExchangeX) }
func opEXAFAFPrime(c *CPU, bus Bus, _ uint8) { c.exchange(bus, ExchangeAFAFPrime) }
func opLDSPHL(c *CPU, bus Bus, _ uint8)      { c.sr.SP = *c.hlPtr() }

// --- misc ---

func registerMisc() {
	baseTable[0x00] = func(c *CPU, bus Bus, _ uint8) {}
	baseTable[0xF3] = func(c *CPU, bus Bus, _ uint8) { c.di() }
	baseTable[0xFB] = func(c *CPU, bus Bus, _ uint8) { c.ei() }
	baseTable[0xD3] = opOUTnA
	baseTable[0xDB] = opINAn
}

func opHalt(c *CPU, bus Bus, _ uint8) { c.halt() }

// OUT (n),A and IN A,(n) place A on the high half of the port address,
// so a peripheral decoding all sixteen address lines sees A on A8-A15.
func opOUTnA(c *CPU, bus Bus, _ uint8) {
	n := c.fetchByte(bus)
	bus.IOWrite(uint16(c.gr.A)<<8|uint16(n), c.gr.A)
}

func opINAn(c *CPU, bus Bus, _ uint8) {
	n := c.fetchByte(bus)
	c.gr.A = bus.IORead(uint16(c.gr.A)<<8 | uint16(n))
}

// --- CB plane ---

func registerCB() {
	for op := 0; op < 256; op++ {
		cbTable[uint8(op)] = opCBDispatch
	}
}

func opCBDispatch(c *CPU, bus Bus, opcode uint8) {
	r := opcode & 7
	c.executeCB(bus, opcode, c.regOperand(r))
}

// --- ED plane ---

func registerED() {
	for dd := uint8(0); dd < 4; dd++ {
		edTable[0x42+dd*16] = opSBCHLss
		edTable[0x4A+dd*16] = opADCHLss
		edTable[0x43+dd*16] = opLDExtSS
		edTable[0x4B+dd*16] = opLDSSExt
	}
	for r := uint8(0); r < 8; r++ {
		edTable[0x40+r*8] = opINrC
		edTable[0x41+r*8] = opOUTCr
		edTable[0x04+r*8] = opTSTr
		if r != 6 {
			// ED 30/31, the would-be (HL) forms of IN0/OUT0, are
			// unassigned on the Z8018x.
			edTable[0x00+r*8] = opIN0r
			edTable[0x01+r*8] = opOUT0r
		}
	}
	edTable[0x64] = opTSTImm

	edTable[0x44] = opNEG
	edTable[0x45] = opRETN
	edTable[0x4D] = opRETN
	edTable[0x46] = opIM0
	edTable[0x4E] = opIM0
	edTable[0x56] = opIM1
	edTable[0x66] = opIM0
	edTable[0x6E] = opIM0
	edTable[0x76] = opIM1
	edTable[0x5E] = opIM2
	edTable[0x7E] = opIM2
	edTable[0x47] = opLDIA
	edTable[0x4F] = opLDRA
	edTable[0x57] = opLDAI
	edTable[0x5F] = opLDAR
	edTable[0x67] = opRRD
	edTable[0x6F] = opRLD

	edTable[0xA0] = func(c *CPU, bus Bus, _ uint8) { c.ldi(bus) }
	edTable[0xA1] = func(c *CPU, bus Bus, _ uint8) { c.cpi(bus) }
	edTable[0xA8] = func(c *CPU, bus Bus, _ uint8) { c.ldd(bus) }
	edTable[0xA9] = func(c *CPU, bus Bus, _ uint8) { c.cpd(bus) }
	edTable[0xB0] = func(c *CPU, bus Bus, _ uint8) { c.ldir(bus) }
	edTable[0xB1] = func(c *CPU, bus Bus, _ uint8) { c.cpir(bus) }
	edTable[0xB8] = func(c *CPU, bus Bus, _ uint8) { c.lddr(bus) }
	edTable[0xB9] = func(c *CPU, bus Bus, _ uint8) { c.cpdr(bus) }

	// The r=6 encodings of IN r,(C) and OUT (C),r are the undocumented
	// "IN (C)" (reads and sets flags, discards the value) and "OUT (C),0"
	// (writes a constant zero) forms; neither touches memory at (HL).
	edTable[0x70] = opINFlagsOnly
	edTable[0x71] = opOUTZero
}

func opINFlagsOnly(c *CPU, bus Bus, _ uint8) {
	v := bus.IORead(c.gr.BC)
	c.gr.F = (c.gr.F & flagC) | sign8(v) | zero8(v) | parity8(v)
}

func opOUTZero(c *CPU, bus Bus, _ uint8) {
	bus.IOWrite(c.gr.BC, 0)
}

func opSBCHLss(c *CPU, bus Bus, opcode uint8) {
	dd := (opcode >> 4) & 3
	c.sbc16(*c.ddPtr(dd))
}

func opADCHLss(c *CPU, bus Bus, opcode uint8) {
	dd := (opcode >> 4) & 3
	c.adc16(*c.ddPtr(dd))
}

func opLDExtSS(c *CPU, bus Bus, opcode uint8) {
	dd := (opcode >> 4) & 3
	c.storeOperand(bus, OpExtended16(), *c.ddPtr(dd))
}

func opLDSSExt(c *CPU, bus Bus, opcode uint8) {
	dd := (opcode >> 4) & 3
	*c.ddPtr(dd) = c.loadOperand(bus, OpExtended16())
}

func opINrC(c *CPU, bus Bus, opcode uint8) {
	r := (opcode >> 3) & 7
	v := bus.IORead(c.gr.BC)
	c.storeOperand(bus, c.regOperand(r), uint16(v))
	c.gr.F = (c.gr.F & flagC) | sign8(v) | zero8(v) | parity8(v)
}

func opOUTCr(c *CPU, bus Bus, opcode uint8) {
	r := (opcode >> 3) & 7
	v := uint8(c.loadOperand(bus, c.regOperand(r)))
	bus.IOWrite(c.gr.BC, v)
}

// opIN0r implements IN0 r,(n): the Z180's page-0 I/O read. The port
// number is an immediate byte rather than BC, unlike IN r,(C); flags
// follow the same S,Z,P/V-from-value rule, H and N cleared, C preserved.
func opIN0r(c *CPU, bus Bus, opcode uint8) {
	r := (opcode >> 3) & 7
	n := c.fetchByte(bus)
	v := bus.IORead(uint16(n))
	c.storeOperand(bus, c.regOperand(r), uint16(v))
	c.gr.F = (c.gr.F & flagC) | sign8(v) | zero8(v) | parity8(v)
}

// opOUT0r implements OUT0 (n),r: the Z180's page-0 I/O write, IN0's
// mirror. No flags are affected.
func opOUT0r(c *CPU, bus Bus, opcode uint8) {
	r := (opcode >> 3) & 7
	n := c.fetchByte(bus)
	v := uint8(c.loadOperand(bus, c.regOperand(r)))
	bus.IOWrite(uint16(n), v)
}

// opTSTr implements TST r: A AND r, flags set as for AND, result
// discarded. r=6 addresses (HL), a genuine documented form rather than
// an undocumented one.
func opTSTr(c *CPU, bus Bus, opcode uint8) {
	r := (opcode >> 3) & 7
	v := uint8(c.loadOperand(bus, c.regOperand(r)))
	c.gr.F = logicFlags8(c.gr.A&v, true)
}

// opTSTImm implements TST n: A AND the immediate byte, flags set as for
// AND, result discarded.
func opTSTImm(c *CPU, bus Bus, _ uint8) {
	n := c.fetchByte(bus)
	c.gr.F = logicFlags8(c.gr.A&n, true)
}

func opNEG(c *CPU, bus Bus, _ uint8)  { c.neg() }
func opRETN(c *CPU, bus Bus, _ uint8) { c.sr.IFF1 = c.sr.IFF2; c.ret(bus) }
func opIM0(c *CPU, bus Bus, _ uint8)  { c.im(0) }
func opIM1(c *CPU, bus Bus, _ uint8)  { c.im(1) }
func opIM2(c *CPU, bus Bus, _ uint8)  { c.im(2) }
func opLDIA(c *CPU, bus Bus, _ uint8) { c.sr.I = c.gr.A }
func opLDRA(c *CPU, bus Bus, _ uint8) { c.sr.R = c.gr.A }
func opLDAI(c *CPU, bus Bus, _ uint8) {
	c.gr.A = c.sr.I
	c.setIRFlags(c.sr.I)
}
func opLDAR(c *CPU, bus Bus, _ uint8) {
	c.gr.A = c.sr.R
	c.setIRFlags(c.sr.R)
}
func opRRD(c *CPU, bus Bus, _ uint8) { c.rrd(bus) }
func opRLD(c *CPU, bus Bus, _ uint8) { c.rld(bus) }

// setIRFlags implements LD A,I / LD A,R's flag rule: S and Z from the
// loaded value, H and N cleared, P/V from IFF2, C untouched.
func (c *CPU) setIRFlags(v uint8) {
	f := c.gr.F & flagC
	f |= sign8(v) | zero8(v)
	if c.sr.IFF2 {
		f |= flagPV
	}
	c.gr.F = f
}
