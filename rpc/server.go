package rpc

import (
	"context"
	"net"
	"strconv"
	"sync/atomic"
	"time"

	"sv2/catalog"
	"sv2/log"
	apiv1 "sv2/rpc/v1"
	"sv2/store"
	"sv2/tlv"
	"sv2/util"
	"sv2/version"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	DefaultRequestsPerSecond = 50
	DefaultBurst             = 100
	DefaultMaxCaptureBytes   = 1024 * 1024
	DefaultParseCacheTTL     = time.Minute
	parseCacheSize           = 1024
)

var emptyRes = &apiv1.Empty{}

type Opts struct {
	DB                *leveldb.DB
	Host              string
	Port              int
	RequestsPerSecond float64
	Burst             int
	MaxCaptureBytes   int
	ParseCacheTTL     time.Duration
}

type Server struct {
	host            string
	port            int
	db              *leveldb.DB
	maxCaptureBytes int
	limiter         *rate.Limiter
	captureLocker   *util.KeyLocker
	parseCache      *util.Cache
	lgr             log.Logger
	startedAt       time.Time
	requestCount    uint64
	srv             *grpc.Server
}

var _ apiv1.SV2v1Server = (*Server)(nil)

func NewServer(opts *Opts) *Server {
	rps := opts.RequestsPerSecond
	if rps <= 0 {
		rps = DefaultRequestsPerSecond
	}
	burst := opts.Burst
	if burst <= 0 {
		burst = DefaultBurst
	}
	maxCaptureBytes := opts.MaxCaptureBytes
	if maxCaptureBytes <= 0 {
		maxCaptureBytes = DefaultMaxCaptureBytes
	}
	parseCacheTTL := opts.ParseCacheTTL
	if parseCacheTTL <= 0 {
		parseCacheTTL = DefaultParseCacheTTL
	}

	s := &Server{
		host:            opts.Host,
		port:            opts.Port,
		db:              opts.DB,
		maxCaptureBytes: maxCaptureBytes,
		limiter:         rate.NewLimiter(rate.Limit(rps), burst),
		captureLocker:   util.NewKeyLocker(),
		parseCache:      util.NewCache(parseCacheTTL, parseCacheSize),
		lgr:             log.WithModule("rpc-server"),
		startedAt:       time.Now(),
	}
	s.srv = grpc.NewServer(
		grpc.UnaryInterceptor(s.unaryInterceptor),
		grpc.StreamInterceptor(s.streamInterceptor),
	)
	apiv1.RegisterSV2v1Server(s.srv, s)
	return s
}

// Start listens on the configured host and port and serves in the
// background.
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", net.JoinHostPort(s.host, strconv.Itoa(s.port)))
	if err != nil {
		return errors.Wrap(err, "error opening RPC listener")
	}
	go func() {
		if err := s.Serve(lis); err != nil {
			s.lgr.Error("RPC server exited", "err", err)
		}
	}()
	return nil
}

// Serve blocks serving requests from lis until the server is stopped.
func (s *Server) Serve(lis net.Listener) error {
	s.lgr.Info("serving RPC", "addr", lis.Addr().String())
	return s.srv.Serve(lis)
}

func (s *Server) Stop() error {
	s.srv.Stop()
	return nil
}

// Shutdown waits up to grace for in-flight calls before forcing the server
// closed.
func (s *Server) Shutdown(grace time.Duration) {
	done := make(chan struct{})
	go func() {
		s.srv.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(grace):
		s.lgr.Warn("grace period elapsed, forcing RPC server closed")
		s.srv.Stop()
	}
}

func (s *Server) admit(method string) error {
	atomic.AddUint64(&s.requestCount, 1)
	if !s.limiter.Allow() {
		s.lgr.Warn("rate limited RPC call", "method", method)
		return status.Error(codes.ResourceExhausted, "rate limit exceeded")
	}
	s.lgr.Debug("handling RPC call", "method", method)
	return nil
}

func (s *Server) unaryInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if err := s.admit(info.FullMethod); err != nil {
		return nil, err
	}
	res, err := handler(ctx, req)
	if err != nil {
		s.lgr.Debug("RPC call failed", "method", info.FullMethod, "err", err)
	}
	return res, err
}

func (s *Server) streamInterceptor(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	if err := s.admit(info.FullMethod); err != nil {
		return err
	}
	return handler(srv, ss)
}

func (s *Server) GetStatus(context.Context, *apiv1.Empty) (*apiv1.GetStatusRes, error) {
	count, err := store.CountCaptures(s.db)
	if err != nil {
		return nil, err
	}
	return &apiv1.GetStatusRes{
		Version:         version.String(),
		ProtocolVersion: catalog.ProtocolVersion,
		UptimeMS:        int64(time.Since(s.startedAt) / time.Millisecond),
		RequestCount:    atomic.LoadUint64(&s.requestCount),
		CaptureCount:    uint32(count),
	}, nil
}

func (s *Server) AnalyzeProtocol(context.Context, *apiv1.Empty) (*apiv1.AnalyzeProtocolRes, error) {
	return &apiv1.AnalyzeProtocolRes{
		Spec: catalog.Spec(),
	}, nil
}

func (s *Server) ListMessageTypes(context.Context, *apiv1.Empty) (*apiv1.ListMessageTypesRes, error) {
	return &apiv1.ListMessageTypesRes{
		MessageTypes: catalog.MessageTypes(),
	}, nil
}

func (s *Server) ListExtensions(context.Context, *apiv1.Empty) (*apiv1.ListExtensionsRes, error) {
	return &apiv1.ListExtensionsRes{
		Extensions: catalog.Extensions(),
	}, nil
}

func (s *Server) GetExtensionInfo(_ context.Context, req *apiv1.GetExtensionInfoReq) (*apiv1.GetExtensionInfoRes, error) {
	info, err := catalog.Extension(req.ExtensionType)
	if err != nil {
		return &apiv1.GetExtensionInfoRes{
			Error: err.Error(),
		}, nil
	}
	return &apiv1.GetExtensionInfoRes{
		ExtensionInfo: &info,
	}, nil
}

func (s *Server) CreateTLVField(_ context.Context, req *apiv1.TLVFieldReq) (*apiv1.CreateTLVFieldRes, error) {
	f, err := tlv.NewField(req.ExtensionType, req.FieldType, req.Value)
	if err != nil {
		return &apiv1.CreateTLVFieldRes{
			Error: err.Error(),
		}, nil
	}
	return &apiv1.CreateTLVFieldRes{
		TLVField:     toAPIField(f),
		EncodedBytes: f.Bytes(),
	}, nil
}

func (s *Server) ParseTLVFields(_ context.Context, req *apiv1.ParseTLVFieldsReq) (*apiv1.ParseTLVFieldsRes, error) {
	return toAPIParse(tlv.Decode(req.Data)), nil
}

func (s *Server) ValidateTLVField(_ context.Context, req *apiv1.TLVFieldReq) (*apiv1.ValidateTLVFieldRes, error) {
	outcome := tlv.Validate(req.ExtensionType, req.FieldType, req.Value)
	if !outcome.Valid {
		return &apiv1.ValidateTLVFieldRes{
			Error: outcome.Err.Error(),
		}, nil
	}
	return &apiv1.ValidateTLVFieldRes{
		Valid:     true,
		FieldInfo: outcome.Info,
	}, nil
}

func (s *Server) GenerateTestMessage(_ context.Context, req *apiv1.GenerateTestMessageReq) (*apiv1.GenerateTestMessageRes, error) {
	msg, err := catalog.Sample(req.MessageType)
	if err != nil {
		return &apiv1.GenerateTestMessageRes{
			Error: err.Error(),
		}, nil
	}
	return &apiv1.GenerateTestMessageRes{
		Message: &msg,
	}, nil
}

func (s *Server) DescribeTopic(_ context.Context, req *apiv1.DescribeTopicReq) (*apiv1.DescribeTopicRes, error) {
	res := &apiv1.DescribeTopicRes{
		Available: catalog.TopicNames(),
	}
	if req.Name == "" {
		return res, nil
	}
	topic, err := catalog.LookupTopic(req.Name)
	if err != nil {
		res.Error = err.Error()
		return res, nil
	}
	res.Topic = &topic
	return res, nil
}

func (s *Server) SaveCapture(_ context.Context, req *apiv1.SaveCaptureReq) (*apiv1.SaveCaptureRes, error) {
	if len(req.Data) > s.maxCaptureBytes {
		return nil, status.Errorf(codes.InvalidArgument, "capture is %d bytes, limit is %d", len(req.Data), s.maxCaptureBytes)
	}
	c, err := store.NewCapture(req.Name, req.Data, time.Now())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if !s.captureLocker.TryLock(c.Name) {
		return nil, captureBusy(c.Name)
	}
	defer s.captureLocker.Unlock(c.Name)
	if err := store.SaveCapture(s.db, c); err != nil {
		return nil, errors.Wrap(err, "error storing capture")
	}
	s.lgr.Info("saved capture", "name", c.Name, "id", c.ID, "fields", c.FieldCount, "fully_parsed", c.FullyParsed)
	return &apiv1.SaveCaptureRes{
		Capture: toAPICapture(c),
	}, nil
}

func (s *Server) GetCapture(_ context.Context, req *apiv1.CaptureReq) (*apiv1.GetCaptureRes, error) {
	if !s.captureLocker.TryRLock(req.Name) {
		return nil, captureBusy(req.Name)
	}
	defer s.captureLocker.RUnlock(req.Name)
	c, err := store.GetCapture(s.db, req.Name)
	if errors.Is(err, store.ErrCaptureNotFound) {
		return nil, status.Errorf(codes.NotFound, "capture %s not found", req.Name)
	}
	if err != nil {
		return nil, err
	}
	return &apiv1.GetCaptureRes{
		Capture: toAPICapture(c),
		Parse:   s.parseCapture(c),
	}, nil
}

// parseCapture decodes a capture's bytes. Results are cached by capture ID,
// which is a hash of the bytes.
func (s *Server) parseCapture(c *store.Capture) *apiv1.ParseTLVFieldsRes {
	key := c.ID.String()
	if cached, ok := s.parseCache.Get(key); ok {
		return cached.(*apiv1.ParseTLVFieldsRes)
	}
	res := toAPIParse(tlv.Decode(c.Data))
	s.parseCache.Set(key, res)
	return res
}

func (s *Server) DeleteCapture(_ context.Context, req *apiv1.CaptureReq) (*apiv1.Empty, error) {
	if !s.captureLocker.TryLock(req.Name) {
		return nil, captureBusy(req.Name)
	}
	defer s.captureLocker.Unlock(req.Name)
	err := store.DeleteCapture(s.db, req.Name)
	if errors.Is(err, store.ErrCaptureNotFound) {
		return nil, status.Errorf(codes.NotFound, "capture %s not found", req.Name)
	}
	if err != nil {
		return nil, errors.Wrap(err, "error deleting capture")
	}
	s.lgr.Info("deleted capture", "name", req.Name)
	return emptyRes, nil
}

func (s *Server) ListCaptures(req *apiv1.ListCapturesReq, stream apiv1.SV2v1_ListCapturesServer) error {
	captures, err := store.StreamCaptures(s.db, req.Start)
	if err != nil {
		return errors.Wrap(err, "error opening capture stream")
	}
	defer captures.Close()

	for {
		c, err := captures.Next()
		if err != nil {
			return errors.Wrap(err, "error streaming captures")
		}
		if c == nil {
			return nil
		}
		if err := stream.Send(toAPICapture(c)); err != nil {
			return err
		}
	}
}

func captureBusy(name string) error {
	return status.Errorf(codes.Aborted, "capture %s is being modified", name)
}

func toAPIField(f tlv.Field) *apiv1.TLVField {
	return &apiv1.TLVField{
		ExtensionType: f.ExtensionType(),
		FieldType:     f.FieldType(),
		Length:        f.Length(),
		Value:         f.Value(),
	}
}

func toAPIParse(res *tlv.ParseOutcome) *apiv1.ParseTLVFieldsRes {
	fields := make([]*apiv1.TLVField, len(res.Fields))
	for i, f := range res.Fields {
		fields[i] = toAPIField(f)
	}
	return &apiv1.ParseTLVFieldsRes{
		TLVFields:          fields,
		Errors:             res.ErrorStrings(),
		ParsedSuccessfully: res.FullyParsed(),
		TrailingBytes:      uint32(res.TrailingBytes),
	}
}

func toAPICapture(c *store.Capture) *apiv1.Capture {
	return &apiv1.Capture{
		Name:        c.Name,
		ID:          c.ID.String(),
		Data:        c.Data,
		CreatedAt:   c.CreatedAt.Unix(),
		FieldCount:  uint32(c.FieldCount),
		FullyParsed: c.FullyParsed,
	}
}
