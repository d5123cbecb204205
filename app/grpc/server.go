package grpc

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-cloud-plans/app/mapper"
	"github.com/vibast-solutions/ms-go-cloud-plans/app/service"
	"github.com/vibast-solutions/ms-go-cloud-plans/app/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

type Server struct {
	catalogService *service.CatalogService
}

func NewServer(catalogService *service.CatalogService) *Server {
	return &Server{catalogService: catalogService}
}

func (s *Server) ListPlans(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	l := loggerWithContext(ctx)
	parsed, err := types.NewListPlansRequestFromStruct(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := parsed.Validate(); err != nil {
		l.WithError(err).Debug("List plans validation failed")
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	result, err := s.catalogService.ListPlans(ctx, parsed)
	if err != nil {
		return nil, statusFromError(l, err, "List plans failed")
	}

	return toStruct(l, mapper.PlansResultToResponse(result))
}

func (s *Server) GetBenefits(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	l := loggerWithContext(ctx)
	result, err := s.catalogService.GetBenefits(ctx)
	if err != nil {
		return nil, statusFromError(l, err, "Get benefits failed")
	}

	return toStruct(l, mapper.BenefitsResultToResponse(result))
}

// NewHealthServer reports the cloud service as serving only when the catalog loaded.
func NewHealthServer(catalogService *service.CatalogService) *health.Server {
	srv := health.NewServer()
	servingStatus := healthpb.HealthCheckResponse_NOT_SERVING
	if catalogService.Available() {
		servingStatus = healthpb.HealthCheckResponse_SERVING
	}
	srv.SetServingStatus(ServiceName, servingStatus)
	return srv
}

func statusFromError(l logrus.FieldLogger, err error, message string) error {
	if errors.Is(err, service.ErrCatalogUnavailable) {
		return status.Error(codes.Unavailable, service.UnavailableMessage)
	}
	l.WithError(err).Error(message)
	return status.Error(codes.Internal, "internal server error")
}

func toStruct(l logrus.FieldLogger, v interface{}) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		l.WithError(err).Error("Encode response failed")
		return nil, status.Error(codes.Internal, "internal server error")
	}

	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		l.WithError(err).Error("Convert response failed")
		return nil, status.Error(codes.Internal, "internal server error")
	}
	return out, nil
}
