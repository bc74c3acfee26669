//go:build windows

package topology

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modKernel32                       = windows.NewLazySystemDLL("kernel32.dll")
	procGetLogicalProcessorInformation = modKernel32.NewProc("GetLogicalProcessorInformation")
)

type windowsSource struct{}

// Native returns the topology source of the running host.
func Native() Source { return windowsSource{} }

// Relations calls GetLogicalProcessorInformation twice: once to size the
// buffer, once to fill it.
func (windowsSource) Relations() ([]Relation, error) {
	if err := procGetLogicalProcessorInformation.Find(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}

	var size uint32
	r1, _, err := procGetLogicalProcessorInformation.Call(0, uintptr(unsafe.Pointer(&size)))
	if r1 == 0 && !errors.Is(err, windows.ERROR_INSUFFICIENT_BUFFER) {
		return nil, fmt.Errorf("query buffer size: %w", err)
	}
	if size == 0 {
		return nil, errors.New("query buffer size: empty buffer")
	}

	buf := make([]byte, size)
	r1, _, err = procGetLogicalProcessorInformation.Call(
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(unsafe.Pointer(&size)),
	)
	if r1 == 0 {
		return nil, fmt.Errorf("get logical processor information: %w", err)
	}

	return ParseLogicalProcessorInformation(buf[:size], int(unsafe.Sizeof(uintptr(0)))), nil
}
