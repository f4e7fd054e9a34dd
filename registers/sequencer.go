package registers

import "vga/ioport"

// SequencerIndex indexes the sequencer register file.
type SequencerIndex uint8

const (
	SequencerReset SequencerIndex = 0x0
	ClockingMode   SequencerIndex = 0x1
	SeqPlaneMask   SequencerIndex = 0x2
	CharacterFont  SequencerIndex = 0x3
	MemoryMode     SequencerIndex = 0x4
	CounterReset   SequencerIndex = 0x7
)

// PlaneMask selects which of the four bit planes subsequent writes affect.
// It is a bitmask, not an enum: planes combine with bitwise OR.
type PlaneMask uint8

const (
	Plane0     PlaneMask = 1 << 0
	Plane1     PlaneMask = 1 << 1
	Plane2     PlaneMask = 1 << 2
	Plane3     PlaneMask = 1 << 3
	AllPlanes  PlaneMask = Plane0 | Plane1 | Plane2 | Plane3
)

// SequencerRegisters is the sequencer index/data register pair.
type SequencerRegisters struct {
	index ioport.Port8
	data  ioport.Port8
}

// NewSequencerRegisters returns a SequencerRegisters bound to the standard
// VGA sequencer port pair.
func NewSequencerRegisters() SequencerRegisters {
	return SequencerRegisters{
		index: ioport.Port8{Addr: srxIndexAddress},
		data:  ioport.Port8{Addr: srxDataAddress},
	}
}

// Read returns the value of the sequencer register selected by index.
func (s *SequencerRegisters) Read(index SequencerIndex) uint8 {
	s.setIndex(index)
	return s.data.Read()
}

// Write sets the sequencer register selected by index to value.
func (s *SequencerRegisters) Write(index SequencerIndex, value uint8) {
	s.setIndex(index)
	s.data.Write(value)
}

// SetPlaneMask writes mask into the low nibble of the Plane/Map Mask
// register, leaving the high nibble untouched.
func (s *SequencerRegisters) SetPlaneMask(mask PlaneMask) {
	current := s.Read(SeqPlaneMask)
	s.Write(SeqPlaneMask, (current&0xF0)|(uint8(mask)&0x0F))
}

func (s *SequencerRegisters) setIndex(index SequencerIndex) {
	s.index.Write(uint8(index))
}
