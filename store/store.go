package store

import (
	"encoding/json"
	"strings"

	"sv2/log"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
)

type TxCb func(tx *leveldb.Transaction) error

var logger = log.WithModule("store")

func Open(path string) (*leveldb.DB, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, errors.Wrap(err, "error opening database")
	}
	logger.Debug("opened database", "path", path)
	return db, nil
}

// WithTx runs cb inside a transaction. The transaction is committed if cb
// returns nil and discarded otherwise.
func WithTx(db *leveldb.DB, cb TxCb) (err error) {
	tx, err := db.OpenTransaction()
	if err != nil {
		return errors.Wrap(err, "error opening transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Discard()
			panic(p)
		} else if err != nil {
			tx.Discard()
		} else if cErr := tx.Commit(); cErr != nil {
			err = errors.Wrap(cErr, "error committing transaction")
		}
	}()

	return cb(tx)
}

func Prefixer(prefix string) func(k ...string) []byte {
	return func(parts ...string) []byte {
		k := strings.Join(append([]string{prefix}, parts...), "/")
		return []byte(k)
	}
}

func mustMarshalJSON(in interface{}) []byte {
	out, err := json.Marshal(in)
	if err != nil {
		panic(err)
	}
	return out
}

func mustUnmarshalJSON(data []byte, in interface{}) {
	if err := json.Unmarshal(data, in); err != nil {
		panic(err)
	}
}
