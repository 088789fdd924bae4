package apiv1

import (
	"context"

	"google.golang.org/grpc"
)

const ServiceName = "sv2.v1.SV2v1"

// SV2v1Server is the server API for the SV2v1 service.
type SV2v1Server interface {
	GetStatus(context.Context, *Empty) (*GetStatusRes, error)
	AnalyzeProtocol(context.Context, *Empty) (*AnalyzeProtocolRes, error)
	ListMessageTypes(context.Context, *Empty) (*ListMessageTypesRes, error)
	ListExtensions(context.Context, *Empty) (*ListExtensionsRes, error)
	GetExtensionInfo(context.Context, *GetExtensionInfoReq) (*GetExtensionInfoRes, error)
	CreateTLVField(context.Context, *TLVFieldReq) (*CreateTLVFieldRes, error)
	ParseTLVFields(context.Context, *ParseTLVFieldsReq) (*ParseTLVFieldsRes, error)
	ValidateTLVField(context.Context, *TLVFieldReq) (*ValidateTLVFieldRes, error)
	GenerateTestMessage(context.Context, *GenerateTestMessageReq) (*GenerateTestMessageRes, error)
	DescribeTopic(context.Context, *DescribeTopicReq) (*DescribeTopicRes, error)
	SaveCapture(context.Context, *SaveCaptureReq) (*SaveCaptureRes, error)
	GetCapture(context.Context, *CaptureReq) (*GetCaptureRes, error)
	DeleteCapture(context.Context, *CaptureReq) (*Empty, error)
	ListCaptures(*ListCapturesReq, SV2v1_ListCapturesServer) error
}

func RegisterSV2v1Server(s *grpc.Server, srv SV2v1Server) {
	s.RegisterService(&serviceDesc, srv)
}

type SV2v1_ListCapturesServer interface {
	Send(*Capture) error
	grpc.ServerStream
}

type listCapturesServer struct {
	grpc.ServerStream
}

func (x *listCapturesServer) Send(m *Capture) error {
	return x.ServerStream.SendMsg(m)
}

func fullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

type unaryCall func(srv SV2v1Server, ctx context.Context, req interface{}) (interface{}, error)

// unaryHandler adapts a typed call into a grpc.MethodDesc handler. newReq
// allocates the request value the codec decodes into.
func unaryHandler(name string, newReq func() interface{}, call unaryCall) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := newReq()
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(SV2v1Server), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod(name),
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(SV2v1Server), ctx, req)
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

func newEmpty() interface{}       { return new(Empty) }
func newTLVFieldReq() interface{} { return new(TLVFieldReq) }
func newCaptureReq() interface{}  { return new(CaptureReq) }

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SV2v1Server)(nil),
	Methods: []grpc.MethodDesc{
		unaryHandler("GetStatus", newEmpty, func(srv SV2v1Server, ctx context.Context, req interface{}) (interface{}, error) {
			return srv.GetStatus(ctx, req.(*Empty))
		}),
		unaryHandler("AnalyzeProtocol", newEmpty, func(srv SV2v1Server, ctx context.Context, req interface{}) (interface{}, error) {
			return srv.AnalyzeProtocol(ctx, req.(*Empty))
		}),
		unaryHandler("ListMessageTypes", newEmpty, func(srv SV2v1Server, ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ListMessageTypes(ctx, req.(*Empty))
		}),
		unaryHandler("ListExtensions", newEmpty, func(srv SV2v1Server, ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ListExtensions(ctx, req.(*Empty))
		}),
		unaryHandler("GetExtensionInfo", func() interface{} { return new(GetExtensionInfoReq) }, func(srv SV2v1Server, ctx context.Context, req interface{}) (interface{}, error) {
			return srv.GetExtensionInfo(ctx, req.(*GetExtensionInfoReq))
		}),
		unaryHandler("CreateTLVField", newTLVFieldReq, func(srv SV2v1Server, ctx context.Context, req interface{}) (interface{}, error) {
			return srv.CreateTLVField(ctx, req.(*TLVFieldReq))
		}),
		unaryHandler("ParseTLVFields", func() interface{} { return new(ParseTLVFieldsReq) }, func(srv SV2v1Server, ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ParseTLVFields(ctx, req.(*ParseTLVFieldsReq))
		}),
		unaryHandler("ValidateTLVField", newTLVFieldReq, func(srv SV2v1Server, ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ValidateTLVField(ctx, req.(*TLVFieldReq))
		}),
		unaryHandler("GenerateTestMessage", func() interface{} { return new(GenerateTestMessageReq) }, func(srv SV2v1Server, ctx context.Context, req interface{}) (interface{}, error) {
			return srv.GenerateTestMessage(ctx, req.(*GenerateTestMessageReq))
		}),
		unaryHandler("DescribeTopic", func() interface{} { return new(DescribeTopicReq) }, func(srv SV2v1Server, ctx context.Context, req interface{}) (interface{}, error) {
			return srv.DescribeTopic(ctx, req.(*DescribeTopicReq))
		}),
		unaryHandler("SaveCapture", func() interface{} { return new(SaveCaptureReq) }, func(srv SV2v1Server, ctx context.Context, req interface{}) (interface{}, error) {
			return srv.SaveCapture(ctx, req.(*SaveCaptureReq))
		}),
		unaryHandler("GetCapture", newCaptureReq, func(srv SV2v1Server, ctx context.Context, req interface{}) (interface{}, error) {
			return srv.GetCapture(ctx, req.(*CaptureReq))
		}),
		unaryHandler("DeleteCapture", newCaptureReq, func(srv SV2v1Server, ctx context.Context, req interface{}) (interface{}, error) {
			return srv.DeleteCapture(ctx, req.(*CaptureReq))
		}),
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName: "ListCaptures",
			Handler: func(srv interface{}, stream grpc.ServerStream) error {
				m := new(ListCapturesReq)
				if err := stream.RecvMsg(m); err != nil {
					return err
				}
				return srv.(SV2v1Server).ListCaptures(m, &listCapturesServer{stream})
			},
			ServerStreams: true,
		},
	},
	Metadata: "rpc/v1/service.go",
}
