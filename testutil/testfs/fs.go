package testfs

import (
	"io/ioutil"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// tempPrefix names temp paths after the test so leftovers can be traced.
func tempPrefix(t *testing.T) string {
	return "sv2_" + strings.NewReplacer("/", "_", " ", "_").Replace(t.Name()) + "_"
}

func NewTempDir(t *testing.T) (string, func()) {
	dir, err := ioutil.TempDir("", tempPrefix(t))
	require.NoError(t, err)
	return dir, func() {
		require.NoError(t, os.RemoveAll(dir))
	}
}

func NewTempFile(t *testing.T) (*os.File, func()) {
	f, err := ioutil.TempFile("", tempPrefix(t))
	require.NoError(t, err)
	return f, func() {
		require.NoError(t, f.Close())
		require.NoError(t, os.Remove(f.Name()))
	}
}
