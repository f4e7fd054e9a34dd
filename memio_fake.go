package vga

// fakeMemory models physical memory as a sparse byte map, addressable the
// same way a real linear framebuffer is: by absolute address, not offset
// from some allocation. Good enough for tests that write a pixel and read
// it back; nothing here models bus width or alignment effects.
var fakeMemory = make(map[uintptr]byte)

func fakeReadByte(addr uintptr) byte {
	return fakeMemory[addr]
}

func fakeWriteByte(addr uintptr, value byte) {
	fakeMemory[addr] = value
}

// ResetFakeMemory clears every simulated memory location. Tests call this
// between cases that assume a blank framebuffer.
func ResetFakeMemory() {
	fakeMemory = make(map[uintptr]byte)
}
