package grpcservice

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Default deadline of a client call.
const DefaultCallTimeout = 30 * time.Second

// SummaryClient calls the summary service.
type SummaryClient struct {
	conn    grpc.ClientConnInterface
	timeout time.Duration
}

// NewSummaryClient creates a client over a connection, timeout <= 0 uses the default.
func NewSummaryClient(conn grpc.ClientConnInterface, timeout time.Duration) *SummaryClient {
	if timeout <= 0 {
		timeout = DefaultCallTimeout
	}
	return &SummaryClient{conn: conn, timeout: timeout}
}

// GetSummary requests the summary with the given query params.
func (c *SummaryClient) GetSummary(ctx context.Context, params map[string]any) (map[string]any, error) {
	req, err := structpb.NewStruct(params)
	if err != nil {
		return nil, fmt.Errorf("invalid params: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp := new(structpb.Struct)
	// The status stays reachable through status.Code.
	if err := c.conn.Invoke(ctx, getSummaryMethod, req, resp); err != nil {
		return nil, fmt.Errorf("couldn't get the summary: %w", err)
	}

	return resp.AsMap(), nil
}
