// Package analystv1 defines the analyst.v1.AnalystService gRPC contract: account
// registration and login plus question/answer history. Messages travel with
// the JSON codec registered by this package.
package analystv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const (
	AnalystService_Register_FullMethodName       = "/analyst.v1.AnalystService/Register"
	AnalystService_Login_FullMethodName          = "/analyst.v1.AnalystService/Login"
	AnalystService_SaveHistory_FullMethodName    = "/analyst.v1.AnalystService/SaveHistory"
	AnalystService_ListMyHistory_FullMethodName  = "/analyst.v1.AnalystService/ListMyHistory"
	AnalystService_ListAllHistory_FullMethodName = "/analyst.v1.AnalystService/ListAllHistory"
	AnalystService_DeleteHistory_FullMethodName  = "/analyst.v1.AnalystService/DeleteHistory"
)

// AnalystServiceServer is the server API for AnalystService.
type AnalystServiceServer interface {
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	SaveHistory(context.Context, *SaveHistoryRequest) (*SaveHistoryResponse, error)
	ListMyHistory(context.Context, *emptypb.Empty) (*ListMyHistoryResponse, error)
	ListAllHistory(context.Context, *emptypb.Empty) (*ListAllHistoryResponse, error)
	DeleteHistory(context.Context, *DeleteHistoryRequest) (*DeleteHistoryResponse, error)
}

// UnimplementedAnalystServiceServer can be embedded to have forward compatible implementations.
type UnimplementedAnalystServiceServer struct{}

func (UnimplementedAnalystServiceServer) Register(context.Context, *RegisterRequest) (*RegisterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Register not implemented")
}
func (UnimplementedAnalystServiceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedAnalystServiceServer) SaveHistory(context.Context, *SaveHistoryRequest) (*SaveHistoryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SaveHistory not implemented")
}
func (UnimplementedAnalystServiceServer) ListMyHistory(context.Context, *emptypb.Empty) (*ListMyHistoryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListMyHistory not implemented")
}
func (UnimplementedAnalystServiceServer) ListAllHistory(context.Context, *emptypb.Empty) (*ListAllHistoryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListAllHistory not implemented")
}
func (UnimplementedAnalystServiceServer) DeleteHistory(context.Context, *DeleteHistoryRequest) (*DeleteHistoryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteHistory not implemented")
}

func RegisterAnalystServiceServer(s grpc.ServiceRegistrar, srv AnalystServiceServer) {
	s.RegisterService(&AnalystService_ServiceDesc, srv)
}

// unary builds a MethodDesc handler for one request type.
func unary[Req any, Resp any](fullMethod string, call func(AnalystServiceServer, context.Context, *Req) (*Resp, error)) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		s := srv.(AnalystServiceServer)
		if interceptor == nil {
			return call(s, ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(s, ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// AnalystService_ServiceDesc is the grpc.ServiceDesc for AnalystService.
var AnalystService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "analyst.v1.AnalystService",
	HandlerType: (*AnalystServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Register", Handler: unary(AnalystService_Register_FullMethodName, AnalystServiceServer.Register)},
		{MethodName: "Login", Handler: unary(AnalystService_Login_FullMethodName, AnalystServiceServer.Login)},
		{MethodName: "SaveHistory", Handler: unary(AnalystService_SaveHistory_FullMethodName, AnalystServiceServer.SaveHistory)},
		{MethodName: "ListMyHistory", Handler: unary(AnalystService_ListMyHistory_FullMethodName, AnalystServiceServer.ListMyHistory)},
		{MethodName: "ListAllHistory", Handler: unary(AnalystService_ListAllHistory_FullMethodName, AnalystServiceServer.ListAllHistory)},
		{MethodName: "DeleteHistory", Handler: unary(AnalystService_DeleteHistory_FullMethodName, AnalystServiceServer.DeleteHistory)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "analyst/v1/analyst.go",
}

// AnalystServiceClient is the client API for AnalystService.
type AnalystServiceClient interface {
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	SaveHistory(ctx context.Context, in *SaveHistoryRequest, opts ...grpc.CallOption) (*SaveHistoryResponse, error)
	ListMyHistory(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*ListMyHistoryResponse, error)
	ListAllHistory(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*ListAllHistoryResponse, error)
	DeleteHistory(ctx context.Context, in *DeleteHistoryRequest, opts ...grpc.CallOption) (*DeleteHistoryResponse, error)
}

type analystServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAnalystServiceClient(cc grpc.ClientConnInterface) AnalystServiceClient {
	return &analystServiceClient{cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *analystServiceClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	return invoke[RegisterResponse](ctx, c.cc, AnalystService_Register_FullMethodName, in, opts)
}

func (c *analystServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, AnalystService_Login_FullMethodName, in, opts)
}

func (c *analystServiceClient) SaveHistory(ctx context.Context, in *SaveHistoryRequest, opts ...grpc.CallOption) (*SaveHistoryResponse, error) {
	return invoke[SaveHistoryResponse](ctx, c.cc, AnalystService_SaveHistory_FullMethodName, in, opts)
}

func (c *analystServiceClient) ListMyHistory(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*ListMyHistoryResponse, error) {
	return invoke[ListMyHistoryResponse](ctx, c.cc, AnalystService_ListMyHistory_FullMethodName, in, opts)
}

func (c *analystServiceClient) ListAllHistory(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*ListAllHistoryResponse, error) {
	return invoke[ListAllHistoryResponse](ctx, c.cc, AnalystService_ListAllHistory_FullMethodName, in, opts)
}

func (c *analystServiceClient) DeleteHistory(ctx context.Context, in *DeleteHistoryRequest, opts ...grpc.CallOption) (*DeleteHistoryResponse, error) {
	return invoke[DeleteHistoryResponse](ctx, c.cc, AnalystService_DeleteHistory_FullMethodName, in, opts)
}
