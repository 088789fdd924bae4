package store

import (
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

var (
	worker1Bytes = []byte{0x02, 0x00, 0x01, 0x07, 0x00, 'w', 'o', 'r', 'k', 'e', 'r', '1'}
	fixedTime    = time.Unix(1234567890, 0).UTC()
)

func TestNewCapture(t *testing.T) {
	c, err := NewCapture("share-01", worker1Bytes, fixedTime)
	require.NoError(t, err)
	require.Equal(t, chainhash.DoubleHashH(worker1Bytes), c.ID)
	require.Equal(t, 1, c.FieldCount)
	require.True(t, c.FullyParsed)

	c, err = NewCapture("truncated", worker1Bytes[:8], fixedTime)
	require.NoError(t, err)
	require.Equal(t, 0, c.FieldCount)
	require.False(t, c.FullyParsed)

	for _, name := range []string{"", "UPPER", "has space", string(make([]byte, 65))} {
		_, err = NewCapture(name, worker1Bytes, fixedTime)
		require.Equal(t, ErrInvalidCaptureName, err)
	}
}

func TestCaptures_GetSaveDelete(t *testing.T) {
	db, done := setupLevelDB(t)
	defer done()

	_, err := GetCapture(db, "share-01")
	require.True(t, errors.Is(err, ErrCaptureNotFound))

	c, err := NewCapture("share-01", worker1Bytes, fixedTime)
	require.NoError(t, err)
	require.NoError(t, SaveCapture(db, c))

	got, err := GetCapture(db, "share-01")
	require.NoError(t, err)
	require.Equal(t, c, got)

	names, err := CaptureNamesByID(db, c.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"share-01"}, names)

	replacement, err := NewCapture("share-01", worker1Bytes[:8], fixedTime)
	require.NoError(t, err)
	require.NoError(t, SaveCapture(db, replacement))
	names, err = CaptureNamesByID(db, c.ID)
	require.NoError(t, err)
	require.Empty(t, names)

	count, err := CountCaptures(db)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	require.NoError(t, DeleteCapture(db, "share-01"))
	require.True(t, errors.Is(DeleteCapture(db, "share-01"), ErrCaptureNotFound))
	names, err = CaptureNamesByID(db, replacement.ID)
	require.NoError(t, err)
	require.Empty(t, names)
}

func TestCaptures_Stream(t *testing.T) {
	db, done := setupLevelDB(t)
	defer done()

	for _, name := range []string{"c", "a", "b"} {
		c, err := NewCapture(name, worker1Bytes, fixedTime)
		require.NoError(t, err)
		require.NoError(t, SaveCapture(db, c))
	}

	names, err := CaptureNamesByID(db, chainhash.DoubleHashH(worker1Bytes))
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, names)

	collect := func(start string) []string {
		stream, err := StreamCaptures(db, start)
		require.NoError(t, err)
		var out []string
		for {
			c, err := stream.Next()
			require.NoError(t, err)
			if c == nil {
				break
			}
			out = append(out, c.Name)
		}
		require.NoError(t, stream.Close())
		return out
	}
	require.Equal(t, []string{"a", "b", "c"}, collect(""))
	require.Equal(t, []string{"b", "c"}, collect("b"))
}
