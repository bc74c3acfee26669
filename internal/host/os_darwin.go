//go:build darwin

package host

import (
	"fmt"

	"golang.org/x/sys/unix"
)

const osFamily = FamilyMacOS

// osName returns "macOS <product version> (Darwin <release>)".
func osName() (string, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return "", fmt.Errorf("uname: %w", err)
	}
	release := unix.ByteSliceToString(u.Release[:])

	product, err := unix.Sysctl("kern.osproductversion")
	if err != nil || product == "" {
		return unameName(unix.ByteSliceToString(u.Sysname[:]), release, ""), nil
	}
	return fmt.Sprintf("macOS %s (Darwin %s)", product, release), nil
}

func nativeBits() int { return 0 }
