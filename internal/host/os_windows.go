//go:build windows

package host

import (
	"fmt"

	"github.com/yusufpapurcu/wmi"
	"golang.org/x/sys/windows"
)

const osFamily = FamilyWindows

type win32OperatingSystem struct {
	Caption     string
	CSDVersion  string
	BuildNumber string
}

// osName queries Win32_OperatingSystem for the product caption, service
// pack and build number.
func osName() (string, error) {
	var osInfo []win32OperatingSystem
	if err := wmi.Query("SELECT Caption, CSDVersion, BuildNumber FROM Win32_OperatingSystem", &osInfo); err != nil {
		return unknownWindows, fmt.Errorf("query Win32_OperatingSystem: %w", err)
	}
	if len(osInfo) == 0 {
		return unknownWindows, nil
	}
	return windowsName(osInfo[0].Caption, osInfo[0].CSDVersion, osInfo[0].BuildNumber), nil
}

// nativeBits reports 64 for a 32-bit process running under WOW64.
func nativeBits() int {
	var wow64 bool
	if err := windows.IsWow64Process(windows.CurrentProcess(), &wow64); err != nil {
		return 0
	}
	if wow64 {
		return 64
	}
	return 0
}
