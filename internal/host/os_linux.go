//go:build linux

package host

import (
	"fmt"

	"golang.org/x/sys/unix"
)

const osFamily = FamilyLinux

// osName formats uname as "sysname release (version)".
func osName() (string, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return "", fmt.Errorf("uname: %w", err)
	}
	return unameName(
		unix.ByteSliceToString(u.Sysname[:]),
		unix.ByteSliceToString(u.Release[:]),
		unix.ByteSliceToString(u.Version[:]),
	), nil
}

func nativeBits() int { return 0 }
