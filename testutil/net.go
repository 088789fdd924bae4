package testutil

import (
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

// FreeLoopbackPort returns a loopback TCP port that was free when checked.
func FreeLoopbackPort(t *testing.T) int {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer lis.Close()
	return lis.Addr().(*net.TCPAddr).Port
}
