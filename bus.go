package z180

// Bus is the contract the CPU drives. A concrete *SystemBus satisfies it
// by routing reads/writes to an ordered collection of peripherals; tests
// may substitute a narrower fake.
type Bus interface {
	// Reset propagates a hardware reset to every attached peripheral.
	Reset()

	// MemRead reads one byte at a physical address. m1 distinguishes an
	// opcode-fetch cycle from a data read, as required by peripherals
	// (e.g. a banked ROM) that only respond to instruction fetches.
	MemRead(addr uint32, m1 bool) uint8

	// MemWrite broadcasts a byte write to every peripheral; each decides
	// independently whether the address is theirs.
	MemWrite(addr uint32, val uint8)

	// IORead and IOWrite access the 16-bit I/O address space the MMU and
	// other peripherals share.
	IORead(port uint16) uint8
	IOWrite(port uint16, val uint8)

	// Tick advances every peripheral by one step and unions any pending
	// interrupts into a single priority result. The CPU never consumes
	// the result itself; Tick exists so time-driven peripherals (timers,
	// DMA) still advance once per CPU instruction.
	Tick() (irq uint8, pending bool)
}

// Peripheral is satisfied by anything the bus can route reads, writes, and
// ticks to.
type Peripheral interface {
	Reset()
	Cycle() (irq uint8, pending bool)
	MemRead(addr uint32, m1 bool) (val uint8, ok bool)
	MemWrite(addr uint32, val uint8) (ok bool)
	IORead(port uint16) (val uint8, ok bool)
	IOWrite(port uint16, val uint8) (ok bool)
}

// interruptAcker is an optional extension a Peripheral may implement to
// observe interrupt acknowledgements. No shipped peripheral in this
// package needs it, since the CPU engine never delivers interrupts.
type interruptAcker interface {
	AckInterrupt(kind uint8)
}

// SystemBus is the default Bus: an ordered collection of peripherals,
// first-claim-wins on reads, broadcast on writes, open-bus 0xFF on an
// unclaimed read.
//
// A full single-board machine hangs more than memory off this bus: a
// command-sequenced flash ROM, an SPI-attached SD card, a DMA controller,
// reload timers, a serial backend. All of those are Peripheral-shaped
// collaborators the host program supplies and Adds alongside RAM; this
// package implements none of them.
type SystemBus struct {
	peripherals []Peripheral
}

// NewSystemBus creates an empty bus. Peripherals are attached with Add in
// the order they should be polled on reads.
func NewSystemBus() *SystemBus {
	return &SystemBus{}
}

// Add registers a peripheral. Read order matches registration order.
func (b *SystemBus) Add(p Peripheral) {
	b.peripherals = append(b.peripherals, p)
}

func (b *SystemBus) Reset() {
	for _, p := range b.peripherals {
		p.Reset()
	}
}

func (b *SystemBus) MemRead(addr uint32, m1 bool) uint8 {
	for _, p := range b.peripherals {
		if v, ok := p.MemRead(addr, m1); ok {
			return v
		}
	}
	return 0xFF
}

func (b *SystemBus) MemWrite(addr uint32, val uint8) {
	for _, p := range b.peripherals {
		p.MemWrite(addr, val)
	}
}

func (b *SystemBus) IORead(port uint16) uint8 {
	for _, p := range b.peripherals {
		if v, ok := p.IORead(port); ok {
			return v
		}
	}
	return 0xFF
}

func (b *SystemBus) IOWrite(port uint16, val uint8) {
	for _, p := range b.peripherals {
		p.IOWrite(port, val)
	}
}

func (b *SystemBus) Tick() (irq uint8, pending bool) {
	for _, p := range b.peripherals {
		if v, ok := p.Cycle(); ok {
			if !pending || v > irq {
				irq = v
			}
			pending = true
		}
	}
	return irq, pending
}

// AckInterrupt broadcasts an interrupt acknowledgement to any peripheral
// that asked to observe it. The CPU engine itself never calls it.
func (b *SystemBus) AckInterrupt(kind uint8) {
	for _, p := range b.peripherals {
		if a, ok := p.(interruptAcker); ok {
			a.AckInterrupt(kind)
		}
	}
}

// RAM is a flat byte-addressable peripheral occupying [base, base+len(mem)).
// It is the one peripheral this package implements, since some form of
// memory is required to execute any program at all.
type RAM struct {
	base uint32
	mem  []byte
}

// NewRAM creates a RAM peripheral of the given size, based at base.
func NewRAM(base uint32, size int) *RAM {
	return &RAM{base: base, mem: make([]byte, size)}
}

func (r *RAM) Reset() {}

func (r *RAM) Cycle() (uint8, bool) { return 0, false }

func (r *RAM) contains(addr uint32) bool {
	return addr >= r.base && addr < r.base+uint32(len(r.mem))
}

func (r *RAM) MemRead(addr uint32, _ bool) (uint8, bool) {
	if !r.contains(addr) {
		return 0, false
	}
	return r.mem[addr-r.base], true
}

func (r *RAM) MemWrite(addr uint32, val uint8) bool {
	if !r.contains(addr) {
		return false
	}
	r.mem[addr-r.base] = val
	return true
}

func (r *RAM) IORead(uint16) (uint8, bool) { return 0, false }
func (r *RAM) IOWrite(uint16, uint8) bool  { return false }

// Peek and Poke give test harnesses direct access to RAM contents without
// going through the MMU's logical-to-physical translation.
func (r *RAM) Peek(addr uint32) uint8 {
	if !r.contains(addr) {
		return 0xFF
	}
	return r.mem[addr-r.base]
}

func (r *RAM) Poke(addr uint32, val uint8) {
	if r.contains(addr) {
		r.mem[addr-r.base] = val
	}
}

// Load copies data into RAM starting at addr, for test/harness setup.
func (r *RAM) Load(addr uint32, data []byte) {
	for i, b := range data {
		r.Poke(addr+uint32(i), b)
	}
}
