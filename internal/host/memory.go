package host

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/mem"
)

// Memory returns total and available physical memory in MiB, rounded down.
func (Host) Memory() (total, free uint64, err error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, 0, fmt.Errorf("virtual memory: %w", err)
	}
	return vm.Total / bytesPerMB, vm.Available / bytesPerMB, nil
}
