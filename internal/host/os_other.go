//go:build !windows && !linux && !darwin

package host

import (
	"fmt"
	"strings"

	pshost "github.com/shirou/gopsutil/v3/host"
)

const osFamily = ""

func osName() (string, error) {
	platform, _, version, err := pshost.PlatformInformation()
	if err != nil {
		return "", fmt.Errorf("platform information: %w", err)
	}
	return strings.TrimSpace(platform + " " + version), nil
}

func nativeBits() int { return 0 }
