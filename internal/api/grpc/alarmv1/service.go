package alarmv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

// Fully qualified method names.
const (
	ServiceName             = "alarm.v1.AlarmService"
	MethodScheduleFullName  = "/" + ServiceName + "/Schedule"
	MethodEditFullName      = "/" + ServiceName + "/Edit"
	MethodCancelFullName    = "/" + ServiceName + "/Cancel"
	MethodGetStatusFullName = "/" + ServiceName + "/GetStatus"
)

// AlarmServiceServer is the server API of the alarm service.
type AlarmServiceServer interface {
	Schedule(ctx context.Context, req *ScheduleRequest) (*AlarmStateResponse, error)
	Edit(ctx context.Context, req *emptypb.Empty) (*EditResponse, error)
	Cancel(ctx context.Context, req *CancelRequest) (*AlarmStateResponse, error)
	GetStatus(ctx context.Context, req *emptypb.Empty) (*AlarmStateResponse, error)
}

// UnimplementedAlarmServiceServer answers every method with codes.Unimplemented.
type UnimplementedAlarmServiceServer struct{}

// Schedule is not implemented.
func (UnimplementedAlarmServiceServer) Schedule(context.Context, *ScheduleRequest) (*AlarmStateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Schedule not implemented")
}

// Edit is not implemented.
func (UnimplementedAlarmServiceServer) Edit(context.Context, *emptypb.Empty) (*EditResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Edit not implemented")
}

// Cancel is not implemented.
func (UnimplementedAlarmServiceServer) Cancel(context.Context, *CancelRequest) (*AlarmStateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Cancel not implemented")
}

// GetStatus is not implemented.
func (UnimplementedAlarmServiceServer) GetStatus(context.Context, *emptypb.Empty) (*AlarmStateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetStatus not implemented")
}

// RegisterAlarmServiceServer registers srv on s.
func RegisterAlarmServiceServer(s grpc.ServiceRegistrar, srv AlarmServiceServer) {
	s.RegisterService(&AlarmServiceDesc, srv)
}

// unary adapts a typed method to a grpc.MethodHandler.
func unary[Req any, Resp any](
	fullMethod string,
	newReq func() *Req,
	call func(srv AlarmServiceServer, ctx context.Context, req *Req) (*Resp, error),
) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := newReq()
		if err := dec(in); err != nil {
			return nil, err
		}

		if interceptor == nil {
			return call(srv.(AlarmServiceServer), ctx, in) //nolint:forcetypeassert // Guaranteed by HandlerType.
		}

		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}

		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(AlarmServiceServer), ctx, req.(*Req)) //nolint:forcetypeassert // Same as above.
		}

		return interceptor(ctx, in, info, handler)
	}
}

// AlarmServiceDesc describes alarm.v1.AlarmService for grpc.Server.
//
//nolint:gochecknoglobals // Service descriptors are package-level by convention.
var AlarmServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AlarmServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Schedule",
			Handler: unary(MethodScheduleFullName, func() *ScheduleRequest { return new(ScheduleRequest) },
				func(srv AlarmServiceServer, ctx context.Context, req *ScheduleRequest) (*AlarmStateResponse, error) {
					return srv.Schedule(ctx, req)
				}),
		},
		{
			MethodName: "Edit",
			Handler: unary(MethodEditFullName, func() *emptypb.Empty { return new(emptypb.Empty) },
				func(srv AlarmServiceServer, ctx context.Context, req *emptypb.Empty) (*EditResponse, error) {
					return srv.Edit(ctx, req)
				}),
		},
		{
			MethodName: "Cancel",
			Handler: unary(MethodCancelFullName, func() *CancelRequest { return new(CancelRequest) },
				func(srv AlarmServiceServer, ctx context.Context, req *CancelRequest) (*AlarmStateResponse, error) {
					return srv.Cancel(ctx, req)
				}),
		},
		{
			MethodName: "GetStatus",
			Handler: unary(MethodGetStatusFullName, func() *emptypb.Empty { return new(emptypb.Empty) },
				func(srv AlarmServiceServer, ctx context.Context, req *emptypb.Empty) (*AlarmStateResponse, error) {
					return srv.GetStatus(ctx, req)
				}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "alarm/v1/alarm.proto",
}

// AlarmServiceClient is the client API of the alarm service.
type AlarmServiceClient interface {
	Schedule(ctx context.Context, in *ScheduleRequest, opts ...grpc.CallOption) (*AlarmStateResponse, error)
	Edit(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*EditResponse, error)
	Cancel(ctx context.Context, in *CancelRequest, opts ...grpc.CallOption) (*AlarmStateResponse, error)
	GetStatus(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*AlarmStateResponse, error)
}

// alarmServiceClient invokes the service over a connection, always in the JSON codec.
type alarmServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewAlarmServiceClient creates a client bound to cc.
//
//nolint:ireturn // Mirrors generated gRPC clients.
func NewAlarmServiceClient(cc grpc.ClientConnInterface) AlarmServiceClient {
	return &alarmServiceClient{cc: cc}
}

// Schedule calls alarm.v1.AlarmService/Schedule.
func (c *alarmServiceClient) Schedule(
	ctx context.Context,
	in *ScheduleRequest,
	opts ...grpc.CallOption,
) (*AlarmStateResponse, error) {
	out := new(AlarmStateResponse)
	if err := c.invoke(ctx, MethodScheduleFullName, in, out, opts); err != nil {
		return nil, err
	}

	return out, nil
}

// Edit calls alarm.v1.AlarmService/Edit.
func (c *alarmServiceClient) Edit(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*EditResponse, error) {
	out := new(EditResponse)
	if err := c.invoke(ctx, MethodEditFullName, in, out, opts); err != nil {
		return nil, err
	}

	return out, nil
}

// Cancel calls alarm.v1.AlarmService/Cancel.
func (c *alarmServiceClient) Cancel(
	ctx context.Context,
	in *CancelRequest,
	opts ...grpc.CallOption,
) (*AlarmStateResponse, error) {
	out := new(AlarmStateResponse)
	if err := c.invoke(ctx, MethodCancelFullName, in, out, opts); err != nil {
		return nil, err
	}

	return out, nil
}

// GetStatus calls alarm.v1.AlarmService/GetStatus.
func (c *alarmServiceClient) GetStatus(
	ctx context.Context,
	in *emptypb.Empty,
	opts ...grpc.CallOption,
) (*AlarmStateResponse, error) {
	out := new(AlarmStateResponse)
	if err := c.invoke(ctx, MethodGetStatusFullName, in, out, opts); err != nil {
		return nil, err
	}

	return out, nil
}

// invoke runs a unary call in the JSON content subtype.
func (c *alarmServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	callOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)

	return c.cc.Invoke(ctx, method, in, out, callOpts...)
}
