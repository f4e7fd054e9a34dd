package vga

// This file gives framebuffer memory the same default-fake/amd64-real split
// as the ioport package gives I/O ports: ReadByte/WriteByte default to an
// in-memory model (memio_fake.go) so FrameBuffer is exercisable under plain
// `go test`, and memio_amd64.go rebinds them to direct memory access on the
// one target where a physical address is actually meaningful.

// ReadByte returns the byte at the given physical address.
var ReadByte = fakeReadByte

// WriteByte writes value at the given physical address.
var WriteByte = fakeWriteByte
