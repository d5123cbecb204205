package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	ServiceName = "cloud.v1.CloudService"

	ListPlansFullMethodName   = "/" + ServiceName + "/ListPlans"
	GetBenefitsFullMethodName = "/" + ServiceName + "/GetBenefits"
)

// CloudServiceServer exchanges google.protobuf.Struct bodies shaped like the
// HTTP JSON responses.
type CloudServiceServer interface {
	ListPlans(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetBenefits(context.Context, *emptypb.Empty) (*structpb.Struct, error)
}

func RegisterCloudServiceServer(s grpc.ServiceRegistrar, srv CloudServiceServer) {
	s.RegisterService(&CloudServiceDesc, srv)
}

var CloudServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CloudServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListPlans", Handler: listPlansHandler},
		{MethodName: "GetBenefits", Handler: getBenefitsHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "cloud/v1/cloud.proto",
}

func listPlansHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CloudServiceServer).ListPlans(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ListPlansFullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CloudServiceServer).ListPlans(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func getBenefitsHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CloudServiceServer).GetBenefits(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GetBenefitsFullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CloudServiceServer).GetBenefits(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

type CloudServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCloudServiceClient(cc grpc.ClientConnInterface) *CloudServiceClient {
	return &CloudServiceClient{cc: cc}
}

func (c *CloudServiceClient) ListPlans(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, ListPlansFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CloudServiceClient) GetBenefits(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GetBenefitsFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
