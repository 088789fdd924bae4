package rpc

import (
	"context"
	"time"

	"sv2/catalog"
	apiv1 "sv2/rpc/v1"

	"github.com/pkg/errors"
)

type Status struct {
	Version         string
	ProtocolVersion string
	Uptime          time.Duration
	RequestCount    uint64
	CaptureCount    int
}

func GetStatus(client apiv1.SV2v1Client) (*Status, error) {
	return GetStatusContext(context.Background(), client)
}

func GetStatusContext(ctx context.Context, client apiv1.SV2v1Client) (*Status, error) {
	res, err := client.GetStatus(ctx, &apiv1.Empty{})
	if err != nil {
		return nil, err
	}
	return &Status{
		Version:         res.Version,
		ProtocolVersion: res.ProtocolVersion,
		Uptime:          time.Duration(res.UptimeMS) * time.Millisecond,
		RequestCount:    res.RequestCount,
		CaptureCount:    int(res.CaptureCount),
	}, nil
}

func AnalyzeProtocol(client apiv1.SV2v1Client) (*catalog.ProtocolSpec, error) {
	return AnalyzeProtocolContext(context.Background(), client)
}

func AnalyzeProtocolContext(ctx context.Context, client apiv1.SV2v1Client) (*catalog.ProtocolSpec, error) {
	res, err := client.AnalyzeProtocol(ctx, &apiv1.Empty{})
	if err != nil {
		return nil, err
	}
	return &res.Spec, nil
}

func ListMessageTypes(client apiv1.SV2v1Client) ([]string, error) {
	return ListMessageTypesContext(context.Background(), client)
}

func ListMessageTypesContext(ctx context.Context, client apiv1.SV2v1Client) ([]string, error) {
	res, err := client.ListMessageTypes(ctx, &apiv1.Empty{})
	if err != nil {
		return nil, err
	}
	return res.MessageTypes, nil
}

func ListExtensions(client apiv1.SV2v1Client) ([]catalog.ExtensionInfo, error) {
	return ListExtensionsContext(context.Background(), client)
}

func ListExtensionsContext(ctx context.Context, client apiv1.SV2v1Client) ([]catalog.ExtensionInfo, error) {
	res, err := client.ListExtensions(ctx, &apiv1.Empty{})
	if err != nil {
		return nil, err
	}
	return res.Extensions, nil
}

func GetExtensionInfo(client apiv1.SV2v1Client, extensionType uint16) (*catalog.ExtensionInfo, error) {
	return GetExtensionInfoContext(context.Background(), client, extensionType)
}

func GetExtensionInfoContext(ctx context.Context, client apiv1.SV2v1Client, extensionType uint16) (*catalog.ExtensionInfo, error) {
	res, err := client.GetExtensionInfo(ctx, &apiv1.GetExtensionInfoReq{
		ExtensionType: extensionType,
	})
	if err != nil {
		return nil, err
	}
	if res.Error != "" {
		return nil, errors.New(res.Error)
	}
	return res.ExtensionInfo, nil
}

func GenerateTestMessage(client apiv1.SV2v1Client, messageType string) (*catalog.SampleMessage, error) {
	return GenerateTestMessageContext(context.Background(), client, messageType)
}

func GenerateTestMessageContext(ctx context.Context, client apiv1.SV2v1Client, messageType string) (*catalog.SampleMessage, error) {
	res, err := client.GenerateTestMessage(ctx, &apiv1.GenerateTestMessageReq{
		MessageType: messageType,
	})
	if err != nil {
		return nil, err
	}
	if res.Error != "" {
		return nil, errors.New(res.Error)
	}
	return res.Message, nil
}

type TopicDescription struct {
	Topic     *catalog.Topic
	Available []string
}

// DescribeTopic returns the named topic. An empty name only lists the
// available topics.
func DescribeTopic(client apiv1.SV2v1Client, name string) (*TopicDescription, error) {
	return DescribeTopicContext(context.Background(), client, name)
}

func DescribeTopicContext(ctx context.Context, client apiv1.SV2v1Client, name string) (*TopicDescription, error) {
	res, err := client.DescribeTopic(ctx, &apiv1.DescribeTopicReq{
		Name: name,
	})
	if err != nil {
		return nil, err
	}
	if res.Error != "" {
		return nil, errors.New(res.Error)
	}
	return &TopicDescription{
		Topic:     res.Topic,
		Available: res.Available,
	}, nil
}
