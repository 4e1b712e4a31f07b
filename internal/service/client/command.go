package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	pb "github.com/oshokin/alarm-clock/internal/api/grpc/alarmv1"
	"github.com/oshokin/alarm-clock/internal/calendar"
	"github.com/oshokin/alarm-clock/internal/config"
	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/service/common"
)

// Options configures the connection of every alarm-ctl command.
type Options struct {
	// ConfigPath to YAML settings file, defaults to standard filename if empty.
	ConfigPath string
	// ServerAddress overrides server address from config when specified.
	ServerAddress string
	// Out receives the screen output; os.Stdout when nil.
	Out io.Writer
}

// session is an open connection plus the caller identity.
type session struct {
	client *common.Client
	actor  *pb.SystemActor
	out    io.Writer
}

// open loads settings and connects to the daemon.
func open(ctx context.Context, opts *Options) (*session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	// Use server address from options if provided, otherwise use config.
	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	// Identify current user and hostname for the daemon's log.
	actor, err := common.DetectActor()
	if err != nil {
		return nil, err
	}

	client, err := common.Dial(ctx, serverAddress, common.WithCallTimeout(cfg.Timeout))
	if err != nil {
		return nil, err
	}

	logger.DebugKV(ctx, "Connected to alarm server", "server_address", serverAddress)

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	return &session{
		client: client,
		actor:  actor,
		out:    out,
	}, nil
}

// close releases the connection.
func (s *session) close() {
	_ = s.client.Close()
}

// Set schedules the alarm at clock. A positive interval makes it a custom
// repeating alarm instead of a daily one.
func Set(ctx context.Context, opts *Options, clock domain.ClockTime, interval time.Duration) error {
	ctx = logger.WithName(ctx, "alarm-ctl")

	s, err := open(ctx, opts)
	if err != nil {
		return err
	}
	defer s.close()

	resp, err := s.client.Schedule(ctx, s.actor, clock, interval)
	if err != nil {
		return err
	}

	printState(s.out, resp)

	return nil
}

// Edit shows the tracked time in the time input. When next is set, the new
// value is confirmed with a schedule call, which replaces the old registration
// and keeps its repeat interval.
func Edit(ctx context.Context, opts *Options, next *domain.ClockTime) error {
	ctx = logger.WithName(ctx, "alarm-ctl")

	s, err := open(ctx, opts)
	if err != nil {
		return err
	}
	defer s.close()

	current, err := s.client.Edit(ctx)
	if err != nil {
		return err
	}

	if !current.HasAlarm {
		_, _ = fmt.Fprintln(s.out, domain.FormatDisplay(nil))
		return nil
	}

	picked := domain.ClockTime{Hour: int(current.Hour), Minute: int(current.Minute)}
	_, _ = fmt.Fprintf(s.out, "Time picker: %s\n", picked)

	if next == nil {
		return nil
	}

	resp, err := s.client.Schedule(ctx, s.actor, *next, keptInterval(current))
	if err != nil {
		return err
	}

	printState(s.out, resp)

	return nil
}

// Delete cancels the tracked alarm, or the registration under code when given.
func Delete(ctx context.Context, opts *Options, code *int32) error {
	ctx = logger.WithName(ctx, "alarm-ctl")

	s, err := open(ctx, opts)
	if err != nil {
		return err
	}
	defer s.close()

	var resp *pb.AlarmStateResponse
	if code != nil {
		resp, err = s.client.CancelCode(ctx, s.actor, *code)
	} else {
		resp, err = s.client.Cancel(ctx, s.actor)
	}

	if err != nil {
		return err
	}

	printState(s.out, resp)

	return nil
}

// Status prints the status line and, when verbose, the pending registrations.
func Status(ctx context.Context, opts *Options, verbose bool) error {
	ctx = logger.WithName(ctx, "alarm-ctl")

	s, err := open(ctx, opts)
	if err != nil {
		return err
	}
	defer s.close()

	resp, err := s.client.GetStatus(ctx)
	if err != nil {
		return err
	}

	printState(s.out, resp)

	if verbose {
		printRegistrations(s.out, resp.Registrations)
	}

	return nil
}

// Export writes the tracked alarm as an iCalendar file, or to the output
// when path is empty.
func Export(ctx context.Context, opts *Options, path string) error {
	ctx = logger.WithName(ctx, "alarm-ctl")

	s, err := open(ctx, opts)
	if err != nil {
		return err
	}
	defer s.close()

	resp, err := s.client.GetStatus(ctx)
	if err != nil {
		return err
	}

	alarm := toDomainAlarm(resp.Alarm)

	if path == "" {
		return calendar.Write(s.out, alarm, time.Now())
	}

	file, err := os.OpenFile(filepath.Clean(path), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, config.DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("create calendar file: %w", err)
	}

	if err = calendar.Write(file, alarm, time.Now()); err != nil {
		_ = file.Close()

		return err
	}

	if err = file.Close(); err != nil {
		return fmt.Errorf("close calendar file: %w", err)
	}

	logger.InfoKV(ctx, "Alarm exported", "path", path)

	return nil
}

// printState shows the notice, if any, and the status line.
func printState(out io.Writer, state *pb.AlarmStateResponse) {
	if state == nil {
		return
	}

	if state.Notice != "" {
		_, _ = fmt.Fprintln(out, state.Notice)
	}

	_, _ = fmt.Fprintln(out, state.Display)
}

// printRegistrations lists pending host registrations.
func printRegistrations(out io.Writer, regs []*pb.Registration) {
	if len(regs) == 0 {
		_, _ = fmt.Fprintln(out, "No pending registrations")
		return
	}

	for _, reg := range regs {
		_, _ = fmt.Fprintf(
			out,
			"#%d %s %s next %s\n",
			reg.RequestCode,
			reg.Kind,
			reg.Clock,
			reg.NextTrigger.AsTime().Format(time.RFC3339),
		)
	}
}

// keptInterval is the interval to confirm an edit with: zero for a daily
// alarm so it stays a regular one, the custom interval otherwise.
func keptInterval(current *pb.EditResponse) time.Duration {
	if current.GetInterval() == nil {
		return 0
	}

	interval := current.GetInterval().AsDuration()
	if interval == domain.DailyInterval {
		return 0
	}

	return interval
}

// toDomainAlarm converts the wire alarm back to the domain type.
func toDomainAlarm(alarm *pb.ScheduledAlarm) *domain.ScheduledAlarm {
	if alarm == nil {
		return nil
	}

	var actor *domain.Actor
	if alarm.SetBy != nil {
		actor = &domain.Actor{
			Hostname: alarm.SetBy.Hostname,
			Username: alarm.SetBy.Username,
		}
	}

	return &domain.ScheduledAlarm{
		TriggerAt:   alarm.TriggerAt.AsTime(),
		RequestCode: domain.RequestCode(alarm.RequestCode),
		Interval:    alarm.Interval.AsDuration(),
		SetBy:       actor,
	}
}
