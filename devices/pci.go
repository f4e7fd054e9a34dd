// Package devices implements PCI configuration-space scanning and the
// Bochs/QEMU VBE-DISPI display device, both addressed through raw port I/O
// rather than the indexed VGA register files the registers package covers.
package devices

import "vga/ioport"

const (
	pciConfigAddressPort = 0xCF8
	pciConfigDataPort    = 0xCFC
)

var (
	pciAddress = ioport.Port32{Addr: pciConfigAddressPort}
	pciData    = ioport.Port32{Addr: pciConfigDataPort}
)

// PciDevice is a snapshot of one PCI function's type-0 configuration
// header, plus the bus/slot/function address it was found at.
type PciDevice struct {
	Bus, Slot, Function uint8

	VendorID uint16
	DeviceID uint16

	Command uint16
	Status  uint16

	RevisionID uint8
	ProgIF     uint8
	Subclass   uint8
	ClassCode  uint8

	CacheLineSize uint8
	LatencyTimer  uint8
	HeaderType    uint8
	BIST          uint8

	BAR0, BAR1, BAR2, BAR3, BAR4, BAR5 uint32

	CardbusCISPointer uint32

	SubsystemVendorID uint16
	SubsystemID       uint16

	ExpansionROMBaseAddress uint32
	CapabilitiesPointer     uint8

	InterruptLine uint8
	InterruptPin  uint8
	MinGrant      uint8
	MaxLatency    uint8
}

// configAddress forms the CONFIG_ADDRESS value for a (bus, slot, function,
// offset) configuration-space access, per the standard mechanism #1 layout.
func configAddress(bus, slot, function, offset uint8) uint32 {
	return 0x80000000 |
		uint32(bus)<<16 |
		uint32(slot&0x1F)<<11 |
		uint32(function&0x7)<<8 |
		uint32(offset&0xFC)
}

// readOffset returns the configuration-space dword at offset for the
// device at (bus, slot, function).
func readOffset(bus, slot, function, offset uint8) uint32 {
	pciAddress.Write(configAddress(bus, slot, function, offset))
	return pciData.Read()
}

func read2Words(dword uint32) (low, high uint16) {
	return uint16(dword & 0xFFFF), uint16(dword >> 16)
}

func read4Bytes(dword uint32) (b0, b1, b2, b3 uint8) {
	return uint8(dword), uint8(dword >> 8), uint8(dword >> 16), uint8(dword >> 24)
}

// readDevice reads the full 64-byte configuration header of the device at
// (bus, slot, function), 32 bits at a time.
func readDevice(bus, slot, function uint8) PciDevice {
	d := PciDevice{Bus: bus, Slot: slot, Function: function}

	d.VendorID, d.DeviceID = read2Words(readOffset(bus, slot, function, 0x00))
	d.Command, d.Status = read2Words(readOffset(bus, slot, function, 0x04))
	d.RevisionID, d.ProgIF, d.Subclass, d.ClassCode = read4Bytes(readOffset(bus, slot, function, 0x08))
	d.CacheLineSize, d.LatencyTimer, d.HeaderType, d.BIST = read4Bytes(readOffset(bus, slot, function, 0x0C))

	d.BAR0 = readOffset(bus, slot, function, 0x10)
	d.BAR1 = readOffset(bus, slot, function, 0x14)
	d.BAR2 = readOffset(bus, slot, function, 0x18)
	d.BAR3 = readOffset(bus, slot, function, 0x1C)
	d.BAR4 = readOffset(bus, slot, function, 0x20)
	d.BAR5 = readOffset(bus, slot, function, 0x24)

	d.CardbusCISPointer = readOffset(bus, slot, function, 0x28)
	d.SubsystemVendorID, d.SubsystemID = read2Words(readOffset(bus, slot, function, 0x2C))
	d.ExpansionROMBaseAddress = readOffset(bus, slot, function, 0x30)
	d.CapabilitiesPointer, _, _, _ = read4Bytes(readOffset(bus, slot, function, 0x34))
	d.InterruptLine, d.InterruptPin, d.MinGrant, d.MaxLatency = read4Bytes(readOffset(bus, slot, function, 0x3C))

	return d
}

// FindPCIDevice scans every bus/slot/function for a device whose vendor and
// device ID, packed low-word-first as deviceID<<16|vendorID, equals
// deviceID. It returns the first match and true, or the zero PciDevice and
// false if none of the 65536 possible addresses matched.
func FindPCIDevice(deviceID uint32) (PciDevice, bool) {
	for bus := 0; bus < 256; bus++ {
		for slot := 0; slot < 32; slot++ {
			for function := 0; function < 8; function++ {
				id := readOffset(uint8(bus), uint8(slot), uint8(function), 0x00)
				if id == deviceID {
					return readDevice(uint8(bus), uint8(slot), uint8(function)), true
				}
			}
		}
	}
	return PciDevice{}, false
}

// MaskBAR clears the low 4 bits of a memory BAR (the type/prefetchable
// flags) leaving only the base address.
func MaskBAR(bar uint32) uint32 {
	return bar &^ 0xF
}
