//go:build !windows

package host

func platformSpeedProbes() []speedProbe { return nil }
