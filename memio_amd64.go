//go:build amd64 && freestanding

package vga

import "unsafe"

// realReadByte and realWriteByte dereference addr as a genuine physical
// address. On a freestanding kernel, the VGA/Bochs linear framebuffer is
// identity- or otherwise fixed-mapped by the boot loader before this package
// ever runs; this package does not set up that mapping itself, the same
// division of responsibility iansmith-mazarin's kernel draws between paging
// setup and the drivers that assume it. Gated on the explicit
// "freestanding" build tag (not bare GOARCH=amd64) for the same reason
// ioport_amd64.go is: a plain `go test` on an amd64 workstation must keep
// using the fake backend, never dereference a raw physical address.

//go:nosplit
func realReadByte(addr uintptr) byte {
	return *(*byte)(unsafe.Pointer(addr))
}

//go:nosplit
func realWriteByte(addr uintptr, value byte) {
	*(*byte)(unsafe.Pointer(addr)) = value
}

func init() {
	ReadByte = realReadByte
	WriteByte = realWriteByte
}
