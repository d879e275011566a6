package cryptox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// resetPepper clears the cached pepper so each test exercises the load
// path from scratch.
func resetPepper(t *testing.T) {
	t.Helper()
	pepper = ""
	pepperFile = ""
	t.Cleanup(func() {
		pepper = ""
		pepperFile = ""
	})
}

func TestGetPepperWithoutPathFallsBackToDefaultFile(t *testing.T) {
	resetPepper(t)
	t.Chdir(t.TempDir())

	got := GetPepper()
	require.NotEmpty(t, got)

	data, err := os.ReadFile(defaultPepperFile)
	require.NoError(t, err)
	require.Equal(t, string(data), got)
}

func TestGetPepperPersistsAcrossLoads(t *testing.T) {
	resetPepper(t)
	file := filepath.Join(t.TempDir(), "pepper")

	SetPepperPath(file)
	first := GetPepper()

	pepper = ""
	SetPepperPath(file)
	require.Equal(t, first, GetPepper())
}
