// Package ioctl encodes Linux ioctl request numbers and issues them.
package ioctl

import (
	"fmt"
	"reflect"
)

// Mode is the data direction of a request, seen from user space.
type Mode uint8

// Modes
const (
	None Mode = iota
	Write
	Read
)

// Command to be sent over ioctl.
type Command uintptr

// Mode of the command.
func (c Command) Mode() Mode {
	return Mode(c >> 30 & 0x03)
}

// Size of the argument in bytes.
func (c Command) Size() uint16 {
	return uint16(c >> 16 & 0x3fff)
}

// Type is the driver type, such as 'F' for framebuffers.
func (c Command) Type() uint8 {
	return uint8(c >> 8)
}

// Number is the request number within the type.
func (c Command) Number() uint8 {
	return uint8(c)
}

func (c Command) String() string {
	var str string
	if c.Mode()&Write > 0 {
		str += " write"
	}
	if c.Mode()&Read > 0 {
		str += " read"
	}
	return fmt.Sprintf("ioctl%s (%d bytes) %q 0x%02x", str, c.Size(), rune(c.Type()), c.Number())
}

// Encode an ioctl command.
func Encode(mode Mode, size uint16, typ, nr uint8) Command {
	return Command(mode)<<30 | Command(size&0x3fff)<<16 | Command(typ)<<8 | Command(nr)
}

// Pointer encodes a command that passes a pointer to a value of the type ref
// points to.
func Pointer(mode Mode, ref any, typ, nr uint8) Command {
	size := uint16(reflect.TypeOf(ref).Elem().Size())
	return Encode(mode, size, typ, nr)
}
