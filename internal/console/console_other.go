//go:build !windows

package console

// ownsConsole is false outside Windows: terminals outlive the processes
// they start.
func ownsConsole() bool { return false }
