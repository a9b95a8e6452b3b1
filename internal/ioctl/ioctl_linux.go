package ioctl

import (
	"os"
	"syscall"
	"unsafe"
)

// Do executes the ioctl call with a pointer argument. Errors wrap the errno,
// so they can be matched with errors.Is.
func Do(fd uintptr, command Command, ptr unsafe.Pointer) error {
	if _, _, errno := syscall.Syscall(syscall.SYS_IOCTL, fd, uintptr(command), uintptr(ptr)); errno != 0 {
		return os.NewSyscallError(command.String(), errno)
	}
	return nil
}

// Call does a plain ioctl system call with an integer argument.
func Call(fd uintptr, command Command, arg uintptr) error {
	if _, _, errno := syscall.Syscall(syscall.SYS_IOCTL, fd, uintptr(command), arg); errno != 0 {
		return os.NewSyscallError(command.String(), errno)
	}
	return nil
}
