package rpc

import (
	"context"
	"net"
	"strconv"
	"strings"
	"testing"
	"time"

	"sv2/catalog"
	apiv1 "sv2/rpc/v1"
	"sv2/store"
	"sv2/testutil"
	"sv2/testutil/testflags"
	"sv2/testutil/testfs"
	"sv2/tlv"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/stretchr/testify/require"
	"github.com/syndtr/goleveldb/leveldb"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

var worker1Bytes = []byte{0x02, 0x00, 0x01, 0x07, 0x00, 'w', 'o', 'r', 'k', 'e', 'r', '1'}

func setupServer(t *testing.T, opts *Opts) (apiv1.SV2v1Client, func()) {
	db, closeDB := setupDB(t)
	opts.DB = db
	srv := NewServer(opts)
	lis := bufconn.Listen(1024 * 1024)
	go srv.Serve(lis)

	conn, err := grpc.Dial(
		"bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
			return lis.Dial()
		}),
		grpc.WithInsecure(),
	)
	require.NoError(t, err)

	return apiv1.NewSV2v1Client(conn), func() {
		require.NoError(t, conn.Close())
		require.NoError(t, srv.Stop())
		closeDB()
	}
}

func setupDB(t *testing.T) (*leveldb.DB, func()) {
	dir, cleanup := testfs.NewTempDir(t)
	db, err := store.Open(dir)
	require.NoError(t, err)
	return db, func() {
		require.NoError(t, db.Close())
		cleanup()
	}
}

func TestServer_Status(t *testing.T) {
	client, done := setupServer(t, &Opts{})
	defer done()

	st, err := GetStatus(client)
	require.NoError(t, err)
	require.Equal(t, catalog.ProtocolVersion, st.ProtocolVersion)
	require.EqualValues(t, 1, st.RequestCount)
	require.Equal(t, 0, st.CaptureCount)

	st, err = GetStatus(client)
	require.NoError(t, err)
	require.EqualValues(t, 2, st.RequestCount)
}

func TestServer_Catalog(t *testing.T) {
	client, done := setupServer(t, &Opts{})
	defer done()

	spec, err := AnalyzeProtocol(client)
	require.NoError(t, err)
	require.Equal(t, catalog.ProtocolVersion, spec.Version)
	require.Len(t, spec.MessageTypes, len(catalog.Spec().MessageTypes))

	types, err := ListMessageTypes(client)
	require.NoError(t, err)
	require.Equal(t, catalog.MessageTypes(), types)

	exts, err := ListExtensions(client)
	require.NoError(t, err)
	require.Equal(t, catalog.Extensions(), exts)

	info, err := GetExtensionInfo(client, tlv.ExtensionWorkerHashrate)
	require.NoError(t, err)
	expInfo, err := catalog.Extension(tlv.ExtensionWorkerHashrate)
	require.NoError(t, err)
	require.Equal(t, expInfo, *info)

	_, err = GetExtensionInfo(client, 0x00ff)
	require.Error(t, err)
	require.Contains(t, err.Error(), "0x00ff")

	msg, err := GenerateTestMessage(client, "SetupConnection")
	require.NoError(t, err)
	require.Equal(t, "SetupConnection", msg.MessageType)

	_, err = GenerateTestMessage(client, "NoSuchMessage")
	require.Error(t, err)
	require.True(t, strings.HasPrefix(err.Error(), "unknown message type: NoSuchMessage"))

	desc, err := DescribeTopic(client, "")
	require.NoError(t, err)
	require.Nil(t, desc.Topic)
	require.Equal(t, catalog.TopicNames(), desc.Available)

	desc, err = DescribeTopic(client, "noise")
	require.NoError(t, err)
	require.NotNil(t, desc.Topic)

	_, err = DescribeTopic(client, "nope")
	require.Error(t, err)
}

func TestServer_CreateTLVField(t *testing.T) {
	client, done := setupServer(t, &Opts{})
	defer done()

	f, encoded, err := CreateTLVField(client, 0x0002, 0x01, []byte("worker1"))
	require.NoError(t, err)
	require.Equal(t, worker1Bytes, encoded)
	require.EqualValues(t, 7, f.Length())
	require.Equal(t, []byte("worker1"), f.Value())

	_, _, err = CreateTLVField(client, 0x0002, 0x01, make([]byte, tlv.MaxValueLen+1))
	require.Error(t, err)
	require.Contains(t, err.Error(), "value too long")
}

func TestServer_ParseTLVFields(t *testing.T) {
	client, done := setupServer(t, &Opts{})
	defer done()

	data := append(append([]byte{}, worker1Bytes...), 0x01, 0x00, 0x05, 0x02, 0x00, 0xaa, 0xbb)
	res, err := ParseTLVFields(client, data)
	require.NoError(t, err)
	require.True(t, res.ParsedSuccessfully)
	require.Empty(t, res.Errors)
	require.Len(t, res.Fields, 2)
	require.EqualValues(t, 0x0001, res.Fields[1].ExtensionType())
	require.Equal(t, []byte{0xaa, 0xbb}, res.Fields[1].Value())

	res, err = ParseTLVFields(client, worker1Bytes[:8])
	require.NoError(t, err)
	require.False(t, res.ParsedSuccessfully)
	require.Empty(t, res.Fields)
	require.Equal(t, []string{"insufficient bytes for TLV value at offset 0 (need 7, have 3)"}, res.Errors)

	res, err = ParseTLVFields(client, append(append([]byte{}, worker1Bytes...), 0x01, 0x02))
	require.NoError(t, err)
	require.True(t, res.ParsedSuccessfully)
	require.Len(t, res.Fields, 1)
	require.Equal(t, 2, res.TrailingBytes)
}

func TestServer_ValidateTLVField(t *testing.T) {
	client, done := setupServer(t, &Opts{})
	defer done()

	v, err := ValidateTLVField(client, 0x0002, 0x01, []byte("worker1"))
	require.NoError(t, err)
	require.True(t, v.Valid)
	require.Equal(t, &tlv.FieldInfo{
		FieldName:     "user_identity",
		MaxLength:     32,
		CurrentLength: 7,
		Encoding:      tlv.EncodingUTF8,
	}, v.Info)

	v, err = ValidateTLVField(client, 0x0002, 0x01, []byte(strings.Repeat("a", 33)))
	require.NoError(t, err)
	require.False(t, v.Valid)
	require.Equal(t, "user_identity must be 32 bytes or less (got 33)", v.Error)

	v, err = ValidateTLVField(client, 0x0002, 0x09, nil)
	require.NoError(t, err)
	require.False(t, v.Valid)
	require.Equal(t, "unknown field type 0x09 for Worker-Specific Hashrate Tracking extension", v.Error)
}

func TestServer_Captures(t *testing.T) {
	client, done := setupServer(t, &Opts{
		MaxCaptureBytes: 16,
	})
	defer done()

	_, _, err := GetCapture(client, "share-01")
	require.Equal(t, codes.NotFound, status.Code(err))
	require.Equal(t, codes.NotFound, status.Code(DeleteCapture(client, "share-01")))

	_, err = SaveCapture(client, "Bad Name", worker1Bytes)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
	_, err = SaveCapture(client, "big", make([]byte, 17))
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	saved, err := SaveCapture(client, "share-01", worker1Bytes)
	require.NoError(t, err)
	require.Equal(t, chainhash.DoubleHashH(worker1Bytes).String(), saved.ID)
	require.Equal(t, 1, saved.FieldCount)
	require.True(t, saved.FullyParsed)

	_, err = SaveCapture(client, "share-00", worker1Bytes[:8])
	require.NoError(t, err)

	c, parse, err := GetCapture(client, "share-01")
	require.NoError(t, err)
	require.Equal(t, saved, c)
	require.Len(t, parse.Fields, 1)
	require.Equal(t, "worker1", string(parse.Fields[0].Value()))

	captures, err := ListCaptures(client, "")
	require.NoError(t, err)
	require.Len(t, captures, 2)
	require.Equal(t, "share-00", captures[0].Name)
	require.False(t, captures[0].FullyParsed)
	require.Equal(t, "share-01", captures[1].Name)

	captures, err = ListCaptures(client, "share-01")
	require.NoError(t, err)
	require.Len(t, captures, 1)

	st, err := GetStatus(client)
	require.NoError(t, err)
	require.Equal(t, 2, st.CaptureCount)

	require.NoError(t, DeleteCapture(client, "share-00"))
	captures, err = ListCaptures(client, "")
	require.NoError(t, err)
	require.Len(t, captures, 1)
}

func TestServer_RateLimit(t *testing.T) {
	client, done := setupServer(t, &Opts{
		RequestsPerSecond: 0.001,
		Burst:             1,
	})
	defer done()

	_, err := ListMessageTypes(client)
	require.NoError(t, err)
	_, err = ListMessageTypes(client)
	require.Equal(t, codes.ResourceExhausted, status.Code(err))
	_, err = ListCaptures(client, "")
	require.Equal(t, codes.ResourceExhausted, status.Code(err))
}

func TestServer_StartTCP(t *testing.T) {
	testflags.IntegrationTest(t)

	db, done := setupDB(t)
	defer done()

	port := testutil.FreeLoopbackPort(t)
	srv := NewServer(&Opts{
		DB:   db,
		Host: "127.0.0.1",
		Port: port,
	})
	require.NoError(t, srv.Start())
	defer srv.Shutdown(time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, err := grpc.DialContext(ctx, net.JoinHostPort("127.0.0.1", strconv.Itoa(port)), grpc.WithInsecure(), grpc.WithBlock())
	require.NoError(t, err)
	defer conn.Close()

	st, err := GetStatusContext(ctx, apiv1.NewSV2v1Client(conn))
	require.NoError(t, err)
	require.Equal(t, catalog.ProtocolVersion, st.ProtocolVersion)
}

func TestServer_ParseCaptureCached(t *testing.T) {
	db, done := setupDB(t)
	defer done()

	srv := NewServer(&Opts{DB: db})
	c, err := store.NewCapture("share-01", worker1Bytes, time.Now())
	require.NoError(t, err)

	first := srv.parseCapture(c)
	require.Equal(t, 1, srv.parseCache.Len())
	require.True(t, first == srv.parseCapture(c))

	other, err := store.NewCapture("share-02", worker1Bytes, time.Now())
	require.NoError(t, err)
	require.True(t, first == srv.parseCapture(other))
	require.Equal(t, 1, srv.parseCache.Len())
}

func TestServer_CaptureBusy(t *testing.T) {
	db, done := setupDB(t)
	defer done()

	srv := NewServer(&Opts{DB: db})
	require.True(t, srv.captureLocker.TryLock("share-01"))
	_, err := srv.SaveCapture(context.Background(), &apiv1.SaveCaptureReq{Name: "share-01", Data: worker1Bytes})
	require.Equal(t, codes.Aborted, status.Code(err))
	_, err = srv.GetCapture(context.Background(), &apiv1.CaptureReq{Name: "share-01"})
	require.Equal(t, codes.Aborted, status.Code(err))
	srv.captureLocker.Unlock("share-01")

	_, err = srv.SaveCapture(context.Background(), &apiv1.SaveCaptureReq{Name: "share-01", Data: worker1Bytes})
	require.NoError(t, err)
}
