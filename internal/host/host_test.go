package host

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompiler(t *testing.T) {
	c := Native().Compiler()
	assert.True(t, strings.HasPrefix(c, "Go "+runtime.Compiler+" ("), c)
	assert.Contains(t, c, runtime.Version())
}

func TestOSFamily(t *testing.T) {
	want := map[string]string{
		"windows": FamilyWindows,
		"linux":   FamilyLinux,
		"darwin":  FamilyMacOS,
	}[runtime.GOOS]
	assert.Equal(t, want, Native().OSFamily())
}

func TestSources(t *testing.T) {
	h := Native()
	assert.NotNil(t, h.Identification())
	assert.NotNil(t, h.Topology())
}
