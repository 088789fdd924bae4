package apiv1

import (
	"context"

	"google.golang.org/grpc"
)

// SV2v1Client is the client API for the SV2v1 service.
type SV2v1Client interface {
	GetStatus(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*GetStatusRes, error)
	AnalyzeProtocol(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*AnalyzeProtocolRes, error)
	ListMessageTypes(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListMessageTypesRes, error)
	ListExtensions(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListExtensionsRes, error)
	GetExtensionInfo(ctx context.Context, in *GetExtensionInfoReq, opts ...grpc.CallOption) (*GetExtensionInfoRes, error)
	CreateTLVField(ctx context.Context, in *TLVFieldReq, opts ...grpc.CallOption) (*CreateTLVFieldRes, error)
	ParseTLVFields(ctx context.Context, in *ParseTLVFieldsReq, opts ...grpc.CallOption) (*ParseTLVFieldsRes, error)
	ValidateTLVField(ctx context.Context, in *TLVFieldReq, opts ...grpc.CallOption) (*ValidateTLVFieldRes, error)
	GenerateTestMessage(ctx context.Context, in *GenerateTestMessageReq, opts ...grpc.CallOption) (*GenerateTestMessageRes, error)
	DescribeTopic(ctx context.Context, in *DescribeTopicReq, opts ...grpc.CallOption) (*DescribeTopicRes, error)
	SaveCapture(ctx context.Context, in *SaveCaptureReq, opts ...grpc.CallOption) (*SaveCaptureRes, error)
	GetCapture(ctx context.Context, in *CaptureReq, opts ...grpc.CallOption) (*GetCaptureRes, error)
	DeleteCapture(ctx context.Context, in *CaptureReq, opts ...grpc.CallOption) (*Empty, error)
	ListCaptures(ctx context.Context, in *ListCapturesReq, opts ...grpc.CallOption) (SV2v1_ListCapturesClient, error)
}

type SV2v1_ListCapturesClient interface {
	Recv() (*Capture, error)
	grpc.ClientStream
}

type sv2v1Client struct {
	cc *grpc.ClientConn
}

func NewSV2v1Client(cc *grpc.ClientConn) SV2v1Client {
	return &sv2v1Client{cc}
}

func (c *sv2v1Client) invoke(ctx context.Context, method string, in, out interface{}, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, fullMethod(method), in, out, opts...)
}

func (c *sv2v1Client) GetStatus(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*GetStatusRes, error) {
	out := new(GetStatusRes)
	if err := c.invoke(ctx, "GetStatus", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sv2v1Client) AnalyzeProtocol(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*AnalyzeProtocolRes, error) {
	out := new(AnalyzeProtocolRes)
	if err := c.invoke(ctx, "AnalyzeProtocol", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sv2v1Client) ListMessageTypes(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListMessageTypesRes, error) {
	out := new(ListMessageTypesRes)
	if err := c.invoke(ctx, "ListMessageTypes", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sv2v1Client) ListExtensions(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListExtensionsRes, error) {
	out := new(ListExtensionsRes)
	if err := c.invoke(ctx, "ListExtensions", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sv2v1Client) GetExtensionInfo(ctx context.Context, in *GetExtensionInfoReq, opts ...grpc.CallOption) (*GetExtensionInfoRes, error) {
	out := new(GetExtensionInfoRes)
	if err := c.invoke(ctx, "GetExtensionInfo", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sv2v1Client) CreateTLVField(ctx context.Context, in *TLVFieldReq, opts ...grpc.CallOption) (*CreateTLVFieldRes, error) {
	out := new(CreateTLVFieldRes)
	if err := c.invoke(ctx, "CreateTLVField", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sv2v1Client) ParseTLVFields(ctx context.Context, in *ParseTLVFieldsReq, opts ...grpc.CallOption) (*ParseTLVFieldsRes, error) {
	out := new(ParseTLVFieldsRes)
	if err := c.invoke(ctx, "ParseTLVFields", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sv2v1Client) ValidateTLVField(ctx context.Context, in *TLVFieldReq, opts ...grpc.CallOption) (*ValidateTLVFieldRes, error) {
	out := new(ValidateTLVFieldRes)
	if err := c.invoke(ctx, "ValidateTLVField", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sv2v1Client) GenerateTestMessage(ctx context.Context, in *GenerateTestMessageReq, opts ...grpc.CallOption) (*GenerateTestMessageRes, error) {
	out := new(GenerateTestMessageRes)
	if err := c.invoke(ctx, "GenerateTestMessage", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sv2v1Client) DescribeTopic(ctx context.Context, in *DescribeTopicReq, opts ...grpc.CallOption) (*DescribeTopicRes, error) {
	out := new(DescribeTopicRes)
	if err := c.invoke(ctx, "DescribeTopic", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sv2v1Client) SaveCapture(ctx context.Context, in *SaveCaptureReq, opts ...grpc.CallOption) (*SaveCaptureRes, error) {
	out := new(SaveCaptureRes)
	if err := c.invoke(ctx, "SaveCapture", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sv2v1Client) GetCapture(ctx context.Context, in *CaptureReq, opts ...grpc.CallOption) (*GetCaptureRes, error) {
	out := new(GetCaptureRes)
	if err := c.invoke(ctx, "GetCapture", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sv2v1Client) DeleteCapture(ctx context.Context, in *CaptureReq, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.invoke(ctx, "DeleteCapture", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sv2v1Client) ListCaptures(ctx context.Context, in *ListCapturesReq, opts ...grpc.CallOption) (SV2v1_ListCapturesClient, error) {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	stream, err := c.cc.NewStream(ctx, &serviceDesc.Streams[0], fullMethod("ListCaptures"), opts...)
	if err != nil {
		return nil, err
	}
	x := &listCapturesClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type listCapturesClient struct {
	grpc.ClientStream
}

func (x *listCapturesClient) Recv() (*Capture, error) {
	m := new(Capture)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}
