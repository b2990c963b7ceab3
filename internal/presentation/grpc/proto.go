package grpc

// proto.go defines the gRPC server interface for timedeposit/v1/time_deposit.proto.
// Messages travel with the JSON codec registered in json_codec.go.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const serviceName = "timedeposit.v1.TimeDepositService"

// TimeDepositServiceServer is the server API for TimeDepositService.
type TimeDepositServiceServer interface {
	UpdateAllAccounts(context.Context, *UpdateAllAccountsRequest) (*UpdateAllAccountsResponse, error)
	GetAllAccounts(context.Context, *GetAllAccountsRequest) (*GetAllAccountsResponse, error)
	mustEmbedUnimplementedTimeDepositServiceServer()
}

// UnimplementedTimeDepositServiceServer provides forward-compatible default implementations.
type UnimplementedTimeDepositServiceServer struct{}

func (UnimplementedTimeDepositServiceServer) UpdateAllAccounts(context.Context, *UpdateAllAccountsRequest) (*UpdateAllAccountsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateAllAccounts not implemented")
}
func (UnimplementedTimeDepositServiceServer) GetAllAccounts(context.Context, *GetAllAccountsRequest) (*GetAllAccountsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAllAccounts not implemented")
}
func (UnimplementedTimeDepositServiceServer) mustEmbedUnimplementedTimeDepositServiceServer() {}

// RegisterTimeDepositServiceServer registers the TimeDepositServiceServer with the gRPC server.
func RegisterTimeDepositServiceServer(s *grpclib.Server, srv TimeDepositServiceServer) {
	s.RegisterService(&_TimeDepositService_serviceDesc, srv)
}

var _TimeDepositService_serviceDesc = grpclib.ServiceDesc{ //nolint:revive // gRPC handler registration
	ServiceName: serviceName,
	HandlerType: (*TimeDepositServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "UpdateAllAccounts", Handler: _TimeDepositService_UpdateAllAccounts_Handler},
		{MethodName: "GetAllAccounts", Handler: _TimeDepositService_GetAllAccounts_Handler},
	},
	Streams: []grpclib.StreamDesc{},
}

func _TimeDepositService_UpdateAllAccounts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(UpdateAllAccountsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TimeDepositServiceServer).UpdateAllAccounts(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + serviceName + "/UpdateAllAccounts",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TimeDepositServiceServer).UpdateAllAccounts(ctx, req.(*UpdateAllAccountsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TimeDepositService_GetAllAccounts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(GetAllAccountsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TimeDepositServiceServer).GetAllAccounts(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + serviceName + "/GetAllAccounts",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TimeDepositServiceServer).GetAllAccounts(ctx, req.(*GetAllAccountsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// Proto-aligned request/response message types.

type UpdateAllAccountsRequest struct{}

type UpdateAllAccountsResponse struct {
	Message           string `json:"message"`
	AccountsProcessed int64  `json:"accountsProcessed"`
}

type GetAllAccountsRequest struct{}

type TimeDepositMsg struct {
	PlanType string `json:"planType"`
	Balance  string `json:"balance"`
	ID       int64  `json:"id"`
	Days     int64  `json:"days"`
}

type GetAllAccountsResponse struct {
	Accounts []*TimeDepositMsg `json:"accounts"`
	Count    int64             `json:"count"`
}
