package grpc

// Service descriptor for covey.underwriting.v1.UnderwritingService. Messages
// are the application DTOs, carried by the JSON codec registered in
// json_codec.go.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/kvm55/Covey/internal/application/dto"
)

const serviceName = "covey.underwriting.v1.UnderwritingService"

// UnderwritingServiceServer is the server API for UnderwritingService.
type UnderwritingServiceServer interface {
	RunUnderwriting(context.Context, *dto.RunUnderwritingRequest) (*dto.RunUnderwritingResponse, error)
	QualifyCoveyDebt(context.Context, *dto.QualifyCoveyDebtRequest) (*dto.QualifyCoveyDebtResponse, error)
	CreateScenario(context.Context, *dto.CreateScenarioRequest) (*dto.ScenarioResponse, error)
	UpdateScenario(context.Context, *dto.UpdateScenarioRequest) (*dto.ScenarioResponse, error)
	DeleteScenario(context.Context, *dto.ScenarioIDRequest) (*dto.DeleteScenarioResponse, error)
	PromoteScenario(context.Context, *dto.ScenarioIDRequest) (*dto.ScenarioResponse, error)
	ListScenarios(context.Context, *dto.PropertyIDRequest) (*dto.ListScenariosResponse, error)
	GetPrimaryScenario(context.Context, *dto.PropertyIDRequest) (*dto.ScenarioResponse, error)
	CreateCoveyDebtScenario(context.Context, *dto.CreateCoveyDebtScenarioRequest) (*dto.CreateCoveyDebtScenarioResponse, error)
	GetAmortizationSchedule(context.Context, *dto.GetAmortizationScheduleRequest) (*dto.AmortizationScheduleResponse, error)
	GetPropertySummary(context.Context, *dto.PropertyIDRequest) (*dto.PropertySummaryResponse, error)
	mustEmbedUnimplementedUnderwritingServiceServer()
}

// UnimplementedUnderwritingServiceServer provides forward-compatible default implementations.
type UnimplementedUnderwritingServiceServer struct{}

func (UnimplementedUnderwritingServiceServer) RunUnderwriting(context.Context, *dto.RunUnderwritingRequest) (*dto.RunUnderwritingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RunUnderwriting not implemented")
}
func (UnimplementedUnderwritingServiceServer) QualifyCoveyDebt(context.Context, *dto.QualifyCoveyDebtRequest) (*dto.QualifyCoveyDebtResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method QualifyCoveyDebt not implemented")
}
func (UnimplementedUnderwritingServiceServer) CreateScenario(context.Context, *dto.CreateScenarioRequest) (*dto.ScenarioResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateScenario not implemented")
}
func (UnimplementedUnderwritingServiceServer) UpdateScenario(context.Context, *dto.UpdateScenarioRequest) (*dto.ScenarioResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateScenario not implemented")
}
func (UnimplementedUnderwritingServiceServer) DeleteScenario(context.Context, *dto.ScenarioIDRequest) (*dto.DeleteScenarioResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteScenario not implemented")
}
func (UnimplementedUnderwritingServiceServer) PromoteScenario(context.Context, *dto.ScenarioIDRequest) (*dto.ScenarioResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PromoteScenario not implemented")
}
func (UnimplementedUnderwritingServiceServer) ListScenarios(context.Context, *dto.PropertyIDRequest) (*dto.ListScenariosResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListScenarios not implemented")
}
func (UnimplementedUnderwritingServiceServer) GetPrimaryScenario(context.Context, *dto.PropertyIDRequest) (*dto.ScenarioResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetPrimaryScenario not implemented")
}
func (UnimplementedUnderwritingServiceServer) CreateCoveyDebtScenario(context.Context, *dto.CreateCoveyDebtScenarioRequest) (*dto.CreateCoveyDebtScenarioResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateCoveyDebtScenario not implemented")
}
func (UnimplementedUnderwritingServiceServer) GetAmortizationSchedule(context.Context, *dto.GetAmortizationScheduleRequest) (*dto.AmortizationScheduleResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetAmortizationSchedule not implemented")
}
func (UnimplementedUnderwritingServiceServer) GetPropertySummary(context.Context, *dto.PropertyIDRequest) (*dto.PropertySummaryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetPropertySummary not implemented")
}
func (UnimplementedUnderwritingServiceServer) mustEmbedUnimplementedUnderwritingServiceServer() {}

// RegisterUnderwritingServiceServer registers srv with the gRPC server.
func RegisterUnderwritingServiceServer(s grpclib.ServiceRegistrar, srv UnderwritingServiceServer) {
	s.RegisterService(&underwritingServiceDesc, srv)
}

// FullMethod returns the gRPC path of a service method.
func FullMethod(method string) string {
	return "/" + serviceName + "/" + method
}

// WriteMethods mutate stored scenarios and require an analyst or admin role.
var WriteMethods = []string{
	FullMethod("CreateScenario"),
	FullMethod("UpdateScenario"),
	FullMethod("DeleteScenario"),
	FullMethod("PromoteScenario"),
	FullMethod("CreateCoveyDebtScenario"),
}

var underwritingServiceDesc = grpclib.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*UnderwritingServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		unary("RunUnderwriting", UnderwritingServiceServer.RunUnderwriting),
		unary("QualifyCoveyDebt", UnderwritingServiceServer.QualifyCoveyDebt),
		unary("CreateScenario", UnderwritingServiceServer.CreateScenario),
		unary("UpdateScenario", UnderwritingServiceServer.UpdateScenario),
		unary("DeleteScenario", UnderwritingServiceServer.DeleteScenario),
		unary("PromoteScenario", UnderwritingServiceServer.PromoteScenario),
		unary("ListScenarios", UnderwritingServiceServer.ListScenarios),
		unary("GetPrimaryScenario", UnderwritingServiceServer.GetPrimaryScenario),
		unary("CreateCoveyDebtScenario", UnderwritingServiceServer.CreateCoveyDebtScenario),
		unary("GetAmortizationSchedule", UnderwritingServiceServer.GetAmortizationSchedule),
		unary("GetPropertySummary", UnderwritingServiceServer.GetPropertySummary),
	},
	Streams: []grpclib.StreamDesc{},
}

// unary adapts a typed server method to a grpc.MethodDesc, in the shape
// protoc-gen-go-grpc emits per method.
func unary[Req, Resp any](
	name string,
	call func(UnderwritingServiceServer, context.Context, *Req) (*Resp, error),
) grpclib.MethodDesc {
	return grpclib.MethodDesc{
		MethodName: name,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(UnderwritingServiceServer), ctx, in)
			}
			info := &grpclib.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(name),
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(UnderwritingServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
