package rpc

import (
	"context"
	"io"
	"time"

	apiv1 "sv2/rpc/v1"
)

type Capture struct {
	Name        string
	ID          string
	Data        []byte
	CreatedAt   time.Time
	FieldCount  int
	FullyParsed bool
}

func SaveCapture(client apiv1.SV2v1Client, name string, data []byte) (*Capture, error) {
	return SaveCaptureContext(context.Background(), client, name, data)
}

func SaveCaptureContext(ctx context.Context, client apiv1.SV2v1Client, name string, data []byte) (*Capture, error) {
	res, err := client.SaveCapture(ctx, &apiv1.SaveCaptureReq{
		Name: name,
		Data: data,
	})
	if err != nil {
		return nil, err
	}
	return fromAPICapture(res.Capture), nil
}

// GetCapture returns the stored capture and the daemon's decoding of its
// bytes.
func GetCapture(client apiv1.SV2v1Client, name string) (*Capture, *ParseResult, error) {
	return GetCaptureContext(context.Background(), client, name)
}

func GetCaptureContext(ctx context.Context, client apiv1.SV2v1Client, name string) (*Capture, *ParseResult, error) {
	res, err := client.GetCapture(ctx, &apiv1.CaptureReq{
		Name: name,
	})
	if err != nil {
		return nil, nil, err
	}
	parse, err := fromAPIParse(res.Parse)
	if err != nil {
		return nil, nil, err
	}
	return fromAPICapture(res.Capture), parse, nil
}

func DeleteCapture(client apiv1.SV2v1Client, name string) error {
	return DeleteCaptureContext(context.Background(), client, name)
}

func DeleteCaptureContext(ctx context.Context, client apiv1.SV2v1Client, name string) error {
	_, err := client.DeleteCapture(ctx, &apiv1.CaptureReq{
		Name: name,
	})
	return err
}

func ListCaptures(client apiv1.SV2v1Client, start string) ([]*Capture, error) {
	return ListCapturesContext(context.Background(), client, start)
}

func ListCapturesContext(ctx context.Context, client apiv1.SV2v1Client, start string) ([]*Capture, error) {
	stream, err := client.ListCaptures(ctx, &apiv1.ListCapturesReq{
		Start: start,
	})
	if err != nil {
		return nil, err
	}
	defer stream.CloseSend()

	var captures []*Capture
	for {
		res, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		captures = append(captures, fromAPICapture(res))
	}
	return captures, nil
}

func fromAPICapture(c *apiv1.Capture) *Capture {
	if c == nil {
		return nil
	}
	return &Capture{
		Name:        c.Name,
		ID:          c.ID,
		Data:        c.Data,
		CreatedAt:   time.Unix(c.CreatedAt, 0).UTC(),
		FieldCount:  int(c.FieldCount),
		FullyParsed: c.FullyParsed,
	}
}
