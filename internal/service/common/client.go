//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/emptypb"

	pb "github.com/oshokin/alarm-clock/internal/api/grpc/alarmv1"
	"github.com/oshokin/alarm-clock/internal/config"
	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/version"
)

// Client wraps the gRPC AlarmService client with convenience helpers.
type Client struct {
	// conn is the underlying gRPC connection to the alarm server.
	conn *grpc.ClientConn
	// api is the AlarmService client.
	api pb.AlarmServiceClient

	// callTimeout is the default timeout for individual RPC calls.
	callTimeout time.Duration
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

// errAddressRequired is returned when a required address value is missing.
var errAddressRequired = errors.New("address must be provided")

// Dial creates a client for the alarm daemon. The connection is made lazily.
// Note: this uses insecure transport credentials; the daemon is meant to
// listen on loopback or a trusted network.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	conn, err := grpc.NewClient(
		address,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUserAgent(version.UserAgent()),
	)
	if err != nil {
		return nil, fmt.Errorf("dial alarm server: %w", err)
	}

	client := &Client{
		conn:        conn,
		api:         pb.NewAlarmServiceClient(conn),
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// Schedule sets the daily alarm, or a custom repeating one when interval is positive.
func (c *Client) Schedule(
	ctx context.Context,
	actor *pb.SystemActor,
	clock domain.ClockTime,
	interval time.Duration,
) (*pb.AlarmStateResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	request := &pb.ScheduleRequest{
		Hour:   int32(clock.Hour),   //nolint:gosec // Validated clock values.
		Minute: int32(clock.Minute), //nolint:gosec // Validated clock values.
		Actor:  actor,
	}

	if interval > 0 {
		request.Interval = durationpb.New(interval)
	}

	resp, err := c.api.Schedule(callCtx, request)
	if err != nil {
		return nil, fmt.Errorf("schedule alarm: %w", err)
	}

	return resp, nil
}

// Edit fetches the tracked time for editing.
func (c *Client) Edit(ctx context.Context) (*pb.EditResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.Edit(callCtx, new(emptypb.Empty))
	if err != nil {
		return nil, fmt.Errorf("edit alarm: %w", err)
	}

	return resp, nil
}

// Cancel cancels the tracked alarm.
func (c *Client) Cancel(ctx context.Context, actor *pb.SystemActor) (*pb.AlarmStateResponse, error) {
	return c.cancel(ctx, &pb.CancelRequest{Actor: actor})
}

// CancelCode cancels the registration made under code.
func (c *Client) CancelCode(ctx context.Context, actor *pb.SystemActor, code int32) (*pb.AlarmStateResponse, error) {
	return c.cancel(ctx, &pb.CancelRequest{
		Actor:          actor,
		HasRequestCode: true,
		RequestCode:    code,
	})
}

// GetStatus retrieves the tracked alarm and pending registrations.
func (c *Client) GetStatus(ctx context.Context) (*pb.AlarmStateResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.GetStatus(callCtx, new(emptypb.Empty))
	if err != nil {
		return nil, fmt.Errorf("get alarm status: %w", err)
	}

	return resp, nil
}

// cancel sends a cancel request.
func (c *Client) cancel(ctx context.Context, request *pb.CancelRequest) (*pb.AlarmStateResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.Cancel(callCtx, request)
	if err != nil {
		return nil, fmt.Errorf("cancel alarm: %w", err)
	}

	return resp, nil
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}
