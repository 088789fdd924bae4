package store

import (
	"testing"

	"sv2/testutil/testfs"

	"github.com/stretchr/testify/require"
	"github.com/syndtr/goleveldb/leveldb"
)

func setupLevelDB(t *testing.T) (*leveldb.DB, func()) {
	dir, cleanup := testfs.NewTempDir(t)
	db, err := Open(dir)
	require.NoError(t, err)
	return db, func() {
		require.NoError(t, db.Close())
		cleanup()
	}
}
