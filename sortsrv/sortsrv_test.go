package sortsrv

import (
	"context"
	"math"
	"net"
	"testing"
	"time"

	"github.com/go-test/deep"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"
)

func setup(t *testing.T) *Client {
	t.Helper()
	lis := bufconn.Listen(MaxRcvMsgSize)
	srv := NewWithListener(lis)
	t.Cleanup(srv.Stop)
	c, err := Dial("bufnet", grpc.WithContextDialer(func(ctx context.Context, s string) (net.Conn, error) {
		return lis.Dial()
	}))
	if err != nil {
		t.Fatalf("failed to dial sort service with error: %+v", err)
	}
	t.Cleanup(func() { c.Close() })

	return c
}

func TestSort(t *testing.T) {
	c := setup(t)
	tests := []struct {
		name   string
		input  []float64
		expect []float64
	}{
		{
			name:   "empty",
			input:  []float64{},
			expect: []float64{},
		},
		{
			name:   "nine elements",
			input:  []float64{9, 4, 6, 3, 8, 7, 1, 5, 2},
			expect: []float64{1, 2, 3, 4, 5, 6, 7, 8, 9},
		},
		{
			name:   "duplicates",
			input:  []float64{5, 3, 5, 1, 5},
			expect: []float64{1, 3, 5, 5, 5},
		},
		{
			name:   "max value",
			input:  []float64{math.MaxFloat64, 1.0, -1.0},
			expect: []float64{-1.0, 1.0, math.MaxFloat64},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
			defer cancel()
			got, err := c.Sort(ctx, tt.input)
			if err != nil {
				t.Fatalf("supposed to succeed but fail with error: %+v", err)
			}
			if diff := deep.Equal(got, tt.expect); diff != nil {
				t.Errorf("%+v", diff)
			}
		})
	}
}

func TestSortInvalidArgument(t *testing.T) {
	c := setup(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	in := &structpb.ListValue{
		Values: []*structpb.Value{structpb.NewNumberValue(1), structpb.NewBoolValue(true)},
	}
	err := c.conn.Invoke(ctx, sortMethod, in, &structpb.ListValue{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected %s, got %+v", codes.InvalidArgument, err)
	}
}
