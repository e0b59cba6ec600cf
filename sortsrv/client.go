package sortsrv

import (
	"context"

	"github.com/jfhansen/algorithms/dataset"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"
)

// Client calls a remote sort service.
type Client struct {
	conn *grpc.ClientConn
}

func Dial(addr string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.MaxCallRecvMsgSize(MaxRcvMsgSize), grpc.MaxCallSendMsgSize(MaxRcvMsgSize)),
	}, opts...)
	conn, err := grpc.Dial(addr, opts...)
	if err != nil {
		return nil, err
	}

	return &Client{conn: conn}, nil
}

func (c *Client) Sort(ctx context.Context, values []float64) ([]float64, error) {
	out := &structpb.ListValue{}
	if err := c.conn.Invoke(ctx, sortMethod, dataset.ToListValue(values), out); err != nil {
		return nil, err
	}

	return dataset.FromListValue(out)
}

func (c *Client) Close() error {
	return c.conn.Close()
}
