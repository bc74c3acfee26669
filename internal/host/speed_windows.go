//go:build windows

package host

import (
	"fmt"

	"golang.org/x/sys/windows/registry"
)

const processorKey = `HARDWARE\DESCRIPTION\System\CentralProcessor\0`

func platformSpeedProbes() []speedProbe {
	return []speedProbe{{"registry", registrySpeed}}
}

func registrySpeed() (uint32, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, processorKey, registry.QUERY_VALUE)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", processorKey, err)
	}
	defer k.Close()

	v, _, err := k.GetIntegerValue("~MHz")
	if err != nil {
		return 0, fmt.Errorf("read ~MHz: %w", err)
	}
	return uint32(v), nil
}
