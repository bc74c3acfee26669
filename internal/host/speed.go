package host

import (
	"errors"
	"fmt"
	"math"

	"github.com/klauspost/cpuid/v2"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/siderolabs/go-smbios/smbios"
)

// speedProbe reports a processor clock in MHz. Zero means no answer.
type speedProbe struct {
	name  string
	query func() (uint32, error)
}

// ProcessorSpeed returns the clock of the first processor in MHz, asking
// each source in turn until one gives a non-zero value.
func (Host) ProcessorSpeed() (uint32, error) {
	return firstSpeed(speedProbes())
}

func speedProbes() []speedProbe {
	return append(platformSpeedProbes(),
		speedProbe{"smbios", smbiosSpeed},
		speedProbe{"cpuinfo", cpuInfoSpeed},
		speedProbe{"cpuid", cpuidSpeed},
	)
}

func firstSpeed(probes []speedProbe) (uint32, error) {
	var errs []error
	for _, p := range probes {
		mhz, err := p.query()
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", p.name, err))
			continue
		}
		if mhz != 0 {
			return mhz, nil
		}
	}
	return 0, errors.Join(errs...)
}

func smbiosSpeed() (uint32, error) {
	s, err := smbios.New()
	if err != nil {
		return 0, err
	}
	for _, p := range s.ProcessorInformation {
		if p.CurrentSpeed != 0 {
			return uint32(p.CurrentSpeed), nil
		}
		if p.MaxSpeed != 0 {
			return uint32(p.MaxSpeed), nil
		}
	}
	return 0, nil
}

func cpuInfoSpeed() (uint32, error) {
	infos, err := cpu.Info()
	if err != nil {
		return 0, err
	}
	if len(infos) == 0 {
		return 0, nil
	}
	return mhz(infos[0].Mhz), nil
}

func cpuidSpeed() (uint32, error) {
	return mhz(float64(cpuid.CPU.Hz) / 1e6), nil
}

func mhz(v float64) uint32 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(math.Round(v))
}
