package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"

	api "github.com/oshokin/alarm-clock/internal/api/grpc/alarm"
	pb "github.com/oshokin/alarm-clock/internal/api/grpc/alarmv1"
	"github.com/oshokin/alarm-clock/internal/config"
	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/host"
	"github.com/oshokin/alarm-clock/internal/host/policy"
	"github.com/oshokin/alarm-clock/internal/host/scheduler"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/service/controller"
	"github.com/oshokin/alarm-clock/internal/service/receiver"
	"github.com/oshokin/alarm-clock/internal/version"
)

// Options controls the alarm-server process and configuration.
type Options struct {
	// ConfigPath specifies the path to settings YAML file.
	ConfigPath string
	// ListenAddress provides an optional listen address override for the gRPC server.
	ListenAddress string
	// PolicyFile overrides the policy file from the config.
	PolicyFile string
}

// ErrNoServerAddress indicates missing server configuration.
var ErrNoServerAddress = errors.New("no server address configured")

// schedulerStopTimeout bounds the wait for running firings on shutdown.
const schedulerStopTimeout = 5 * time.Second

// Run starts the daemon and blocks until context is canceled or the server stops.
//
//nolint:funlen // Linear start-up sequence.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "alarm-server")

	// Load configuration first to get server settings.
	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if err = logger.SetLevelFromString(settings.LogLevel); err != nil {
		return fmt.Errorf("apply log level: %w", err)
	}

	location, err := settings.Location()
	if err != nil {
		return fmt.Errorf("resolve time zone: %w", err)
	}

	// Determine listen address: CLI argument overrides config port extraction.
	listenAddress, err := resolveListenAddress(settings.ServerAddress, opts.ListenAddress)
	if err != nil {
		return fmt.Errorf("resolve listen address: %w", err)
	}

	policyFile := settings.PolicyFile
	if opts.PolicyFile != "" {
		policyFile = opts.PolicyFile
	}

	policyService, err := newPolicy(ctx, policyFile)
	if err != nil {
		return fmt.Errorf("initialise policy: %w", err)
	}

	// Background work started below ends with Run, whatever the caller's ctx does.
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Wire the host alarm service, the controller and the receiver.
	alarms := scheduler.New(schedulerOptions(settings, location)...)
	ctl := controller.New(alarms, policyService, controller.WithLocation(location))
	alarms.Register(ctl.Target(), receiver.New(ctl).Handler())

	ctl.CheckPolicyAccess(ctx)

	// Setup TCP listener for gRPC server.
	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", listenAddress)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", listenAddress, err)
	}

	if err = watchPolicy(runCtx, policyService); err != nil {
		_ = lis.Close()

		return fmt.Errorf("watch policy: %w", err)
	}

	alarms.Start(runCtx)

	defer func() {
		stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), schedulerStopTimeout)
		defer cancel()

		if err := alarms.Stop(stopCtx); err != nil {
			logger.ErrorKV(ctx, "Scheduler did not stop in time", "error", err)
		}
	}()

	// Create and configure gRPC server with alarm service.
	grpcServer := grpc.NewServer()
	pb.RegisterAlarmServiceServer(grpcServer, api.NewServer(ctl, alarms))

	logger.InfoKV(
		ctx,
		"Alarm server listening",
		"listen_address", listenAddress,
		"policy_file", policyFile,
		"time_zone", location.String(),
		"version", version.Short(),
	)

	// Done channel is closed after GracefulStop finishes to ensure we block
	// until the server fully stops before returning.
	done := make(chan struct{})

	go func() {
		<-runCtx.Done()
		logger.Info(ctx, "Shutting down gRPC server")
		grpcServer.GracefulStop()
		close(done)
	}()

	if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	<-done
	logger.Info(ctx, "GRPC server stopped")

	return nil
}

// newPolicy builds the policy service; an empty path allows every interruption.
// A file policy is not watched yet, see watchPolicy.
//
//nolint:ireturn // Either policy implementation serves the controller.
func newPolicy(ctx context.Context, path string) (host.PolicyService, error) {
	if path == "" {
		logger.Info(ctx, "No policy file configured, interruptions are always allowed")

		return policy.NewStatic(true, domain.FilterAll), nil
	}

	file, err := policy.NewFile(path)
	if err != nil {
		return nil, err
	}

	return file, nil
}

// watchPolicy reloads a file policy on change until ctx is done.
func watchPolicy(ctx context.Context, p host.PolicyService) error {
	file, ok := p.(*policy.File)
	if !ok {
		return nil
	}

	return file.Watch(logger.WithName(ctx, "policy"))
}

// schedulerOptions applies the zone and the cron log level from settings.
func schedulerOptions(settings *config.Config, location *time.Location) []scheduler.Option {
	opts := []scheduler.Option{scheduler.WithLocation(location)}

	// Validate has already rejected unknown levels.
	if level, ok := logger.ParseLogLevel(settings.CronLogLevel); settings.CronLogLevel != "" && ok {
		opts = append(opts, scheduler.WithCronLogLevel(level))
	}

	return opts
}

// resolveListenAddress determines the listen address for the gRPC server.
// If override is provided, uses it directly. Otherwise extracts port from configAddr.
// Returns appropriate listen address (e.g., ":8080" for port-only binding).
func resolveListenAddress(configAddr, override string) (string, error) {
	// Use override address if provided (e.g., ":9090", "0.0.0.0:8080").
	if override != "" {
		return override, nil
	}

	// Extract port from config address (e.g., "server.example.com:8080" -> ":8080").
	if configAddr == "" {
		return "", ErrNoServerAddress
	}

	// Parse the address to extract port.
	_, port, err := net.SplitHostPort(configAddr)
	if err != nil {
		return "", fmt.Errorf("invalid server address format %q: %w", configAddr, err)
	}

	// Return port-only listen address to bind on all interfaces.
	return ":" + port, nil
}
