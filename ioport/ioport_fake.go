package ioport

// This file backs every port with an in-memory model of the exact VGA /
// Bochs DISPI port map this driver targets. ioport is purpose-built for
// that fixed map, so the fake encodes its index/data and flip-flop
// protocols directly instead of pretending to be a generic I/O bus -- that
// is what lets the property tests in the registers, vga, writers and
// devices packages exercise real register-file semantics (readback,
// flip-flop reset, auto-increment) without real hardware or a VM.
const (
	msrWriteAddr    = 0x3C2
	msrReadAddr     = 0x3CC
	st01CGAAddr     = 0x3DA
	st01MDAAddr     = 0x3BA
	arxPortAddr     = 0x3C0
	arxDataReadAddr = 0x3C1

	paletteWriteIndexAddr = 0x3C8
	paletteReadIndexAddr  = 0x3C7
	paletteDataAddr       = 0x3C9

	bochsIndexAddr = 0x1CE
	bochsDataAddr  = 0x1CF

	bochsRegXRES   = 1
	bochsRegYRES   = 2
	bochsRegENABLE = 4
	bochsGetCaps   = 2
)

// indexToData and its inverse encode the standard VGA index/data port
// pairing: writing a register index to the first port of a pair selects
// which register subsequent reads/writes of the second port address.
var indexToData = map[uint16]uint16{
	0x3C4: 0x3C5, // sequencer
	0x3CE: 0x3CF, // graphics controller
	0x3D4: 0x3D5, // crtc, cga port group
	0x3B4: 0x3B5, // crtc, mda port group
}

var dataToIndex = invert(indexToData)

func invert(m map[uint16]uint16) map[uint16]uint16 {
	out := make(map[uint16]uint16, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

type fakeState struct {
	msr uint8

	currentIndex map[uint16]uint8
	banks        map[uint16]map[uint8]uint8

	// attribute controller: a single port (arxPortAddr) serves as both
	// index and data target, disambiguated by a write/read flip-flop that
	// only a read of status register 1 resets to "next write is index".
	arxFlipIndexNext bool
	arxLatch         uint8
	arxBank          map[uint8]uint8

	palette            [768]uint8
	paletteWriteCursor int
	paletteReadCursor  int

	bochsIndex uint16
	bochsRegs  map[uint16]uint16
	words      map[uint16]uint16

	// pciAddress and pciConfig model the 0xCF8/0xCFC configuration-space
	// address/data port pair: writing an address to 0xCF8 selects which
	// dword of which device's configuration space 0xCFC reads next.
	pciAddress uint32
	pciConfig  map[uint32]uint32
}

var fake = newFakeState()

func newFakeState() *fakeState {
	return &fakeState{
		currentIndex:     make(map[uint16]uint8),
		banks:            make(map[uint16]map[uint8]uint8),
		arxBank:          make(map[uint8]uint8),
		arxFlipIndexNext: true,
		bochsRegs:        make(map[uint16]uint16),
		words:            make(map[uint16]uint16),
		pciConfig:        make(map[uint32]uint32),
	}
}

// SeedPCIConfig sets the fake configuration-space dword a given address
// (as formed by devices.configAddress) will read back as, mimicking a real
// device's response to a 0xCF8/0xCFC probe.
func SeedPCIConfig(address, value uint32) {
	fake.pciConfig[address] = value
}

// ResetFake restores every simulated register to its power-up state. Tests
// call this between cases that assume a clean register file.
func ResetFake() {
	fake = newFakeState()
}

// FakeRegister returns the raw indexed-register value currently latched for
// a (index-port, register-index) pair, bypassing the normal flip-flop /
// auto-increment protocol, for tests asserting on a register file's
// internal state directly rather than through its own Read.
func FakeRegister(indexPortAddr uint16, index uint8) uint8 {
	return fake.banks[indexPortAddr][index]
}

// SeedBochsCapabilities sets the maximum resolution the fake Bochs device
// reports from a GETCAPS query, mimicking the firmware-reported ceiling
// real DISPI hardware would return.
func SeedBochsCapabilities(maxWidth, maxHeight uint16) {
	fake.bochsRegs[bochsRegXRES] = maxWidth
	fake.bochsRegs[bochsRegYRES] = maxHeight
}

func fakeOut8(addr uint16, value uint8) {
	switch addr {
	case msrWriteAddr:
		fake.msr = value
		return
	case arxPortAddr:
		if fake.arxFlipIndexNext {
			fake.arxLatch = value
		} else {
			fake.arxBank[fake.arxLatch&0x1F] = value
		}
		fake.arxFlipIndexNext = !fake.arxFlipIndexNext
		return
	case paletteWriteIndexAddr:
		fake.paletteWriteCursor = int(value) * 3
		return
	case paletteReadIndexAddr:
		fake.paletteReadCursor = int(value) * 3
		return
	case paletteDataAddr:
		fake.palette[fake.paletteWriteCursor%len(fake.palette)] = value
		fake.paletteWriteCursor++
		return
	}
	if _, ok := indexToData[addr]; ok {
		fake.currentIndex[addr] = value
		return
	}
	if indexAddr, ok := dataToIndex[addr]; ok {
		bank, ok := fake.banks[indexAddr]
		if !ok {
			bank = make(map[uint8]uint8)
			fake.banks[indexAddr] = bank
		}
		bank[fake.currentIndex[indexAddr]] = value
	}
}

func fakeIn8(addr uint16) uint8 {
	switch addr {
	case msrReadAddr:
		return fake.msr
	case st01CGAAddr, st01MDAAddr:
		fake.arxFlipIndexNext = true
		return 0
	case arxPortAddr:
		return fake.arxLatch
	case arxDataReadAddr:
		return fake.arxBank[fake.arxLatch&0x1F]
	case paletteDataAddr:
		val := fake.palette[fake.paletteReadCursor%len(fake.palette)]
		fake.paletteReadCursor++
		return val
	}
	if indexAddr, ok := dataToIndex[addr]; ok {
		return fake.banks[indexAddr][fake.currentIndex[indexAddr]]
	}
	// Reading an index port back (no real VGA register file does this,
	// but it keeps the model total) returns the last index written.
	return fake.currentIndex[addr]
}

func fakeOut16(addr uint16, value uint16) {
	switch addr {
	case bochsIndexAddr:
		fake.bochsIndex = value
	case bochsDataAddr:
		if fake.bochsIndex == bochsRegENABLE && value == bochsGetCaps {
			// Entering capability-report mode: XRES/YRES reads that
			// follow should yield the ceiling seeded by
			// SeedBochsCapabilities, so leave those registers alone.
			fake.bochsRegs[bochsRegENABLE] = value
			return
		}
		fake.bochsRegs[fake.bochsIndex] = value
	default:
		fake.words[addr] = value
	}
}

const (
	pciConfigAddress = 0xCF8
	pciConfigData    = 0xCFC
)

func fakeOut32(addr uint16, value uint32) {
	switch addr {
	case pciConfigAddress:
		fake.pciAddress = value
	}
}

func fakeIn32(addr uint16) uint32 {
	switch addr {
	case pciConfigAddress:
		return fake.pciAddress
	case pciConfigData:
		return fake.pciConfig[fake.pciAddress]
	}
	return 0
}

func fakeIn16(addr uint16) uint16 {
	switch addr {
	case bochsIndexAddr:
		return fake.bochsIndex
	case bochsDataAddr:
		return fake.bochsRegs[fake.bochsIndex]
	default:
		return fake.words[addr]
	}
}
