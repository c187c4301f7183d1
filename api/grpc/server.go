package grpcservice

import (
	"context"
	"errors"
	"strconv"

	"leaguestats/api/dto"
	"leaguestats/api/filters"
	"leaguestats/fetcher/requests"
	"leaguestats/pkg/logger"

	"github.com/goccy/go-json"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// Name of the summary service.
const ServiceName = "leaguestats.SummaryService"

const getSummaryMethod = "/" + ServiceName + "/GetSummary"

// SummaryService is what the server needs from the summary service.
type SummaryService interface {
	GetPlayerSummary(ctx context.Context, filter *filters.PlayerSummaryFilter) (*dto.PlayerSummary, error)
}

// SummaryServiceServer is the server API of the summary service.
// Requests use the query parameter names, responses the JSON shape of the summary.
type SummaryServiceServer interface {
	GetSummary(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// Server definition.
type server struct {
	summaryService SummaryService
	logger         *logger.NewLogger
}

// NewSummaryServer creates the server implementation.
func NewSummaryServer(service SummaryService, log *logger.NewLogger) SummaryServiceServer {
	if log == nil {
		log = logger.Discard()
	}
	return &server{summaryService: service, logger: log}
}

// GetSummary builds the summary of a player.
func (s *server) GetSummary(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	filter, err := filters.NewPlayerSummaryFilter(paramsFromStruct(req))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	summary, err := s.summaryService.GetPlayerSummary(ctx, filter)
	if err != nil {
		code := codeFromError(err)
		if code == codes.Internal {
			s.logger.Errorf("Couldn't build the summary of %s#%s: %v", filter.GameName, filter.TagLine, err)
		}
		return nil, status.Error(code, err.Error())
	}

	resp, err := toStruct(summary)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "couldn't encode the summary: %v", err)
	}
	return resp, nil
}

// SummaryServiceDesc is the descriptor of the summary service.
var SummaryServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SummaryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetSummary",
			Handler:    getSummaryHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "summary.proto",
}

func getSummaryHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SummaryServiceServer).GetSummary(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: getSummaryMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SummaryServiceServer).GetSummary(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// NewGRPCServer registers the summary and the health services.
func NewGRPCServer(summaryServer SummaryServiceServer, opts ...grpc.ServerOption) *grpc.Server {
	grpcServer := grpc.NewServer(opts...)
	grpcServer.RegisterService(&SummaryServiceDesc, summaryServer)

	healthServer := health.NewServer()
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	return grpcServer
}

func codeFromError(err error) codes.Code {
	var rateLimited *requests.RateLimitExhaustedError
	var timeout *requests.TimeoutError

	switch {
	case errors.Is(err, filters.ErrInvalidRequest):
		return codes.InvalidArgument
	case requests.IsNotFound(err):
		return codes.NotFound
	case errors.As(err, &rateLimited), errors.As(err, &timeout):
		return codes.Unavailable
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	default:
		return codes.Internal
	}
}

// Read the params from the request fields, numbers and booleans are accepted too.
func paramsFromStruct(req *structpb.Struct) *filters.PlayerSummaryParams {
	get := func(key string) string {
		value, exists := req.GetFields()[key]
		if !exists {
			return ""
		}
		switch kind := value.GetKind().(type) {
		case *structpb.Value_StringValue:
			return kind.StringValue
		case *structpb.Value_NumberValue:
			return strconv.FormatFloat(kind.NumberValue, 'f', -1, 64)
		case *structpb.Value_BoolValue:
			return strconv.FormatBool(kind.BoolValue)
		default:
			return ""
		}
	}

	return &filters.PlayerSummaryParams{
		RiotId:    get("riotId"),
		Region:    get("region"),
		Mode:      get("mode"),
		Size:      get("size"),
		Count:     get("count"),
		All:       get("all"),
		Max:       get("max"),
		Queue:     get("queue"),
		StartTime: get("startTime"),
		EndTime:   get("endTime"),
		SrOnly:    get("srOnly"),
	}
}

// The struct has the same shape as the HTTP response.
func toStruct(summary *dto.PlayerSummary) (*structpb.Struct, error) {
	raw, err := json.Marshal(summary)
	if err != nil {
		return nil, err
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return structpb.NewStruct(fields)
}
