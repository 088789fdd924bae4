package store

import (
	"encoding/hex"
	"encoding/json"
	"regexp"
	"time"

	"sv2/tlv"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/util"
)

var (
	ErrCaptureNotFound    = errors.New("capture not found")
	ErrInvalidCaptureName = errors.New("capture names must be 1-64 characters of a-z, 0-9, '-', '_' or '.'")

	capturesPrefix    = Prefixer("captures")
	captureDataPrefix = Prefixer(string(capturesPrefix("capture")))
	captureIDPrefix   = Prefixer(string(capturesPrefix("id")))

	captureNameRegex = regexp.MustCompile(`^[a-z0-9\-_.]{1,64}$`)
)

// Capture is a named TLV buffer kept for later inspection. ID is the Bitcoin
// style double SHA-256 of Data.
type Capture struct {
	Name        string
	ID          chainhash.Hash
	Data        []byte
	CreatedAt   time.Time
	FieldCount  int
	FullyParsed bool
}

type captureJSON struct {
	Name        string    `json:"name"`
	ID          string    `json:"id"`
	Data        string    `json:"data"`
	CreatedAt   time.Time `json:"created_at"`
	FieldCount  int       `json:"field_count"`
	FullyParsed bool      `json:"fully_parsed"`
}

func (c *Capture) MarshalJSON() ([]byte, error) {
	return json.Marshal(&captureJSON{
		Name:        c.Name,
		ID:          c.ID.String(),
		Data:        hex.EncodeToString(c.Data),
		CreatedAt:   c.CreatedAt,
		FieldCount:  c.FieldCount,
		FullyParsed: c.FullyParsed,
	})
}

func (c *Capture) UnmarshalJSON(b []byte) error {
	out := new(captureJSON)
	if err := json.Unmarshal(b, out); err != nil {
		return err
	}
	id, err := chainhash.NewHashFromStr(out.ID)
	if err != nil {
		return errors.Wrap(err, "error decoding capture id")
	}
	data, err := hex.DecodeString(out.Data)
	if err != nil {
		return errors.Wrap(err, "error decoding capture data")
	}
	c.Name = out.Name
	c.ID = *id
	c.Data = data
	c.CreatedAt = out.CreatedAt
	c.FieldCount = out.FieldCount
	c.FullyParsed = out.FullyParsed
	return nil
}

func ValidateCaptureName(name string) error {
	if !captureNameRegex.MatchString(name) {
		return ErrInvalidCaptureName
	}
	return nil
}

// NewCapture builds a capture and records a summary of decoding data.
func NewCapture(name string, data []byte, createdAt time.Time) (*Capture, error) {
	if err := ValidateCaptureName(name); err != nil {
		return nil, err
	}
	res := tlv.Decode(data)
	return &Capture{
		Name:        name,
		ID:          chainhash.DoubleHashH(data),
		Data:        append([]byte(nil), data...),
		CreatedAt:   createdAt.UTC().Truncate(time.Second),
		FieldCount:  len(res.Fields),
		FullyParsed: res.FullyParsed(),
	}, nil
}

// SaveCapture stores c, replacing any capture with the same name.
func SaveCapture(db *leveldb.DB, c *Capture) error {
	return WithTx(db, func(tx *leveldb.Transaction) error {
		return SaveCaptureTx(tx, c)
	})
}

func SaveCaptureTx(tx *leveldb.Transaction, c *Capture) error {
	if err := ValidateCaptureName(c.Name); err != nil {
		return err
	}
	if err := deleteCaptureTx(tx, c.Name); err != nil && !errors.Is(err, ErrCaptureNotFound) {
		return err
	}
	if err := tx.Put(captureDataPrefix(c.Name), mustMarshalJSON(c), nil); err != nil {
		return errors.Wrap(err, "error writing capture")
	}
	if err := tx.Put(captureIDPrefix(c.ID.String(), c.Name), []byte{0x01}, nil); err != nil {
		return errors.Wrap(err, "error writing capture id index")
	}
	return nil
}

func GetCapture(db *leveldb.DB, name string) (*Capture, error) {
	b, err := db.Get(captureDataPrefix(name), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, ErrCaptureNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "error getting capture")
	}
	c := new(Capture)
	mustUnmarshalJSON(b, c)
	return c, nil
}

// CaptureNamesByID returns the names of every capture holding the bytes
// identified by id.
func CaptureNamesByID(db *leveldb.DB, id chainhash.Hash) ([]string, error) {
	prefix := captureIDPrefix(id.String(), "")
	iter := db.NewIterator(util.BytesPrefix(prefix), nil)
	defer iter.Release()

	var names []string
	for iter.Next() {
		names = append(names, string(iter.Key()[len(prefix):]))
	}
	if err := iter.Error(); err != nil {
		return nil, errors.Wrap(err, "error iterating capture id index")
	}
	return names, nil
}

func DeleteCapture(db *leveldb.DB, name string) error {
	return WithTx(db, func(tx *leveldb.Transaction) error {
		return deleteCaptureTx(tx, name)
	})
}

func deleteCaptureTx(tx *leveldb.Transaction, name string) error {
	b, err := tx.Get(captureDataPrefix(name), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return ErrCaptureNotFound
	}
	if err != nil {
		return errors.Wrap(err, "error getting capture")
	}
	existing := new(Capture)
	mustUnmarshalJSON(b, existing)
	if err := tx.Delete(captureIDPrefix(existing.ID.String(), name), nil); err != nil {
		return errors.Wrap(err, "error deleting capture id index")
	}
	if err := tx.Delete(captureDataPrefix(name), nil); err != nil {
		return errors.Wrap(err, "error deleting capture")
	}
	return nil
}

func CountCaptures(db *leveldb.DB) (int, error) {
	iter := db.NewIterator(util.BytesPrefix(captureDataPrefix("")), nil)
	defer iter.Release()
	var count int
	for iter.Next() {
		count++
	}
	if err := iter.Error(); err != nil {
		return 0, errors.Wrap(err, "error counting captures")
	}
	return count, nil
}

type CaptureStream struct {
	iter iterator.Iterator
}

// Next returns the next capture in name order, or nil when the stream is
// exhausted.
func (cs *CaptureStream) Next() (*Capture, error) {
	if !cs.iter.Next() {
		return nil, nil
	}
	c := new(Capture)
	mustUnmarshalJSON(cs.iter.Value(), c)
	return c, nil
}

func (cs *CaptureStream) Close() error {
	cs.iter.Release()
	return cs.iter.Error()
}

func StreamCaptures(db *leveldb.DB, start string) (*CaptureStream, error) {
	rng := util.BytesPrefix(captureDataPrefix(""))
	if start != "" {
		rng.Start = captureDataPrefix(start)
	}
	return &CaptureStream{
		iter: db.NewIterator(rng, nil),
	}, nil
}
