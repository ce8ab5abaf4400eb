package grpc

// proto.go defines the gRPC server interface derived from
// credbureau/scoring/v1/scoring.proto. This file serves as a stand-in for
// buf-generated code. Once `buf generate` is run, replace this file with the
// import from github.com/credbureau/api/gen/go/credbureau/scoring/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ScoringServiceServer is the server API for ScoringService.
type ScoringServiceServer interface {
	ScoreApplicant(context.Context, *ScoreApplicantRequest) (*ScoreApplicantResponse, error)
	CheckEligibility(context.Context, *CheckEligibilityRequest) (*CheckEligibilityResponse, error)
	mustEmbedUnimplementedScoringServiceServer()
}

// UnimplementedScoringServiceServer provides forward-compatible default implementations.
type UnimplementedScoringServiceServer struct{}

func (UnimplementedScoringServiceServer) ScoreApplicant(context.Context, *ScoreApplicantRequest) (*ScoreApplicantResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ScoreApplicant not implemented")
}
func (UnimplementedScoringServiceServer) CheckEligibility(context.Context, *CheckEligibilityRequest) (*CheckEligibilityResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CheckEligibility not implemented")
}
func (UnimplementedScoringServiceServer) mustEmbedUnimplementedScoringServiceServer() {}

// RegisterScoringServiceServer registers the ScoringServiceServer with the gRPC server.
func RegisterScoringServiceServer(s *grpclib.Server, srv ScoringServiceServer) {
	s.RegisterService(&_ScoringService_serviceDesc, srv)
}

var _ScoringService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "credbureau.scoring.v1.ScoringService",
	HandlerType: (*ScoringServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "ScoreApplicant", Handler: _ScoringService_ScoreApplicant_Handler},
		{MethodName: "CheckEligibility", Handler: _ScoringService_CheckEligibility_Handler},
	},
	Streams: []grpclib.StreamDesc{},
}

func _ScoringService_ScoreApplicant_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(ScoreApplicantRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(ScoringServiceServer).ScoreApplicant(ctx, req)
}

func _ScoringService_CheckEligibility_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(CheckEligibilityRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(ScoringServiceServer).CheckEligibility(ctx, req)
}
