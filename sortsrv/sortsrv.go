package sortsrv

import (
	"context"
	"net"
	"time"

	"github.com/golang/glog"
	"github.com/jfhansen/algorithms/dataset"
	"github.com/jfhansen/algorithms/sort"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	MaxRcvMsgSize = 16 * 1024 * 1024
	ServiceName   = "mergesort.Sorter"
	sortMethod    = "/" + ServiceName + "/Sort"
)

// SorterServer sorts a list of numbers in ascending order.
type SorterServer interface {
	Sort(context.Context, *structpb.ListValue) (*structpb.ListValue, error)
}

func sortHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.ListValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SorterServer).Sort(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: sortMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SorterServer).Sort(ctx, req.(*structpb.ListValue))
	}
	return interceptor(ctx, in, info, handler)
}

var sorterServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SorterServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Sort",
			Handler:    sortHandler,
		},
	},
	Streams: []grpc.StreamDesc{},
}

// Server is a running sort service
type Server interface {
	Addr() net.Addr
	Stop()
}

var _ SorterServer = &sortSrv{}

type sortSrv struct {
	conn net.Listener
	gSrv *grpc.Server
}

func (srv *sortSrv) Addr() net.Addr {
	return srv.conn.Addr()
}

func (srv *sortSrv) Stop() {
	srv.gSrv.Stop()
	srv.conn.Close()
}

func (srv *sortSrv) Sort(ctx context.Context, in *structpb.ListValue) (*structpb.ListValue, error) {
	if p, ok := peer.FromContext(ctx); ok {
		glog.V(5).Infof("Sort request of %d values from: %s", len(in.GetValues()), p.Addr)
	}
	values, err := dataset.FromListValue(in)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%+v", err)
	}
	if err := sort.Sort[float64](sort.Slice[float64](values), 0, len(values)); err != nil {
		return nil, status.Errorf(codes.Internal, "%+v", err)
	}

	return dataset.ToListValue(values), nil
}

// New starts the sort service on addr.
func New(addr string) (Server, error) {
	conn, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	return NewWithListener(conn), nil
}

// NewWithListener starts the sort service on an already open listener.
func NewWithListener(conn net.Listener) Server {
	srv := &sortSrv{
		conn: conn,
		gSrv: grpc.NewServer(
			grpc.MaxRecvMsgSize(MaxRcvMsgSize),
			grpc.MaxSendMsgSize(MaxRcvMsgSize),
			grpc.KeepaliveParams(keepalive.ServerParameters{Time: time.Second * 30, Timeout: time.Second * 10}),
			grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{MinTime: time.Second * 10, PermitWithoutStream: true}),
		),
	}
	srv.gSrv.RegisterService(&sorterServiceDesc, srv)

	go func() {
		if err := srv.gSrv.Serve(conn); err != nil {
			glog.Errorf("sort service on %s failed with error: %+v", conn.Addr(), err)
		}
	}()

	return srv
}
