package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// 服务使用 protobuf 的 well-known types 作为消息，因此不需要额外的 .proto 生成代码。
//
//	service KeyFactory {
//	  rpc NewPrivateKey(google.protobuf.BytesValue) returns (google.protobuf.Struct);
//	  rpc ReleaseKey(google.protobuf.UInt64Value) returns (google.protobuf.Empty);
//	}
const (
	KeyFactoryServiceName       = "hdkey.v1.KeyFactory"
	KeyFactoryNewPrivateKeyPath = "/" + KeyFactoryServiceName + "/NewPrivateKey"
	KeyFactoryReleaseKeyPath    = "/" + KeyFactoryServiceName + "/ReleaseKey"
)

// KeyFactoryServer 是 hdkey.v1.KeyFactory 的服务端接口
type KeyFactoryServer interface {
	NewPrivateKey(context.Context, *wrapperspb.BytesValue) (*structpb.Struct, error)
	ReleaseKey(context.Context, *wrapperspb.UInt64Value) (*emptypb.Empty, error)
}

// RegisterKeyFactoryServer 注册服务实现
func RegisterKeyFactoryServer(s grpc.ServiceRegistrar, srv KeyFactoryServer) {
	s.RegisterService(&KeyFactoryServiceDesc, srv)
}

var KeyFactoryServiceDesc = grpc.ServiceDesc{
	ServiceName: KeyFactoryServiceName,
	HandlerType: (*KeyFactoryServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "NewPrivateKey", Handler: newPrivateKeyHandler},
		{MethodName: "ReleaseKey", Handler: releaseKeyHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "hdkey/v1/key_factory.proto",
}

func newPrivateKeyHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KeyFactoryServer).NewPrivateKey(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: KeyFactoryNewPrivateKeyPath}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KeyFactoryServer).NewPrivateKey(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}

func releaseKeyHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.UInt64Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KeyFactoryServer).ReleaseKey(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: KeyFactoryReleaseKeyPath}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KeyFactoryServer).ReleaseKey(ctx, req.(*wrapperspb.UInt64Value))
	}
	return interceptor(ctx, in, info, handler)
}

// KeyFactoryClient 是 hdkey.v1.KeyFactory 的客户端
type KeyFactoryClient struct {
	cc grpc.ClientConnInterface
}

func NewKeyFactoryClient(cc grpc.ClientConnInterface) *KeyFactoryClient {
	return &KeyFactoryClient{cc: cc}
}

func (c *KeyFactoryClient) NewPrivateKey(ctx context.Context, seed []byte, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, KeyFactoryNewPrivateKeyPath, wrapperspb.Bytes(seed), out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *KeyFactoryClient) ReleaseKey(ctx context.Context, id uint64, opts ...grpc.CallOption) error {
	return c.cc.Invoke(ctx, KeyFactoryReleaseKeyPath, wrapperspb.UInt64(id), new(emptypb.Empty), opts...)
}
