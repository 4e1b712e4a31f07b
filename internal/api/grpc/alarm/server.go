package alarm

import (
	"context"
	"errors"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/oshokin/alarm-clock/internal/api/grpc/alarmv1"
	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/host/scheduler"
	"github.com/oshokin/alarm-clock/internal/service/controller"
)

// Controller abstracts the operations the transport layer depends on.
type Controller interface {
	Schedule(ctx context.Context, clock domain.ClockTime, actor *domain.Actor) (controller.Outcome, error)
	ScheduleCustom(
		ctx context.Context,
		clock domain.ClockTime,
		interval time.Duration,
		actor *domain.Actor,
	) (controller.Outcome, error)
	Edit(ctx context.Context) (domain.ClockTime, bool)
	Cancel(ctx context.Context, actor *domain.Actor) controller.Outcome
	CancelCode(ctx context.Context, code domain.RequestCode) controller.Outcome
	Current() *domain.ScheduledAlarm
	Display() string
}

// Registrations lists pending host registrations for status output.
type Registrations interface {
	Pending() []scheduler.Registration
}

// Server implements the AlarmService gRPC API.
type Server struct {
	pb.UnimplementedAlarmServiceServer

	// controller owns the alarm state.
	controller Controller
	// registrations is optional.
	registrations Registrations
}

// NewServer wires the controller into a gRPC handler. registrations may be nil.
func NewServer(ctl Controller, registrations Registrations) *Server {
	return &Server{
		controller:    ctl,
		registrations: registrations,
	}
}

// Schedule registers the alarm at the requested time of day.
func (s *Server) Schedule(ctx context.Context, req *pb.ScheduleRequest) (*pb.AlarmStateResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	var interval time.Duration

	if req.Interval != nil {
		if err := req.Interval.CheckValid(); err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}

		interval = req.Interval.AsDuration()
		if interval < 0 {
			return nil, status.Error(codes.InvalidArgument, "interval must not be negative")
		}
	}

	var (
		clock = domain.ClockTime{Hour: int(req.Hour), Minute: int(req.Minute)}
		actor = toDomainActor(req.Actor)
		out   controller.Outcome
		err   error
	)

	if interval > 0 {
		out, err = s.controller.ScheduleCustom(ctx, clock, interval, actor)
	} else {
		out, err = s.controller.Schedule(ctx, clock, actor)
	}

	if err != nil {
		if errors.Is(err, domain.ErrInvalidClock) || errors.Is(err, controller.ErrInvalidInterval) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}

		return nil, status.Error(codes.Internal, "unable to schedule alarm")
	}

	return s.toProtoState(out), nil
}

// Edit returns the tracked time for the time input and the interval the
// alarm repeats at, so the client can confirm the edit without losing it.
func (s *Server) Edit(ctx context.Context, _ *emptypb.Empty) (*pb.EditResponse, error) {
	clock, ok := s.controller.Edit(ctx)
	if !ok {
		return &pb.EditResponse{}, nil
	}

	resp := &pb.EditResponse{
		HasAlarm: true,
		Hour:     int32(clock.Hour),   //nolint:gosec // 0-23.
		Minute:   int32(clock.Minute), //nolint:gosec // 0-59.
	}

	if current := s.controller.Current(); current != nil {
		resp.Interval = durationpb.New(current.Interval)
	}

	return resp, nil
}

// Cancel cancels the tracked alarm or an explicit request code.
func (s *Server) Cancel(ctx context.Context, req *pb.CancelRequest) (*pb.AlarmStateResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if req.HasRequestCode {
		return s.toProtoState(s.controller.CancelCode(ctx, domain.RequestCode(req.RequestCode))), nil
	}

	return s.toProtoState(s.controller.Cancel(ctx, toDomainActor(req.Actor))), nil
}

// GetStatus returns the tracked alarm and the pending registrations.
func (s *Server) GetStatus(_ context.Context, _ *emptypb.Empty) (*pb.AlarmStateResponse, error) {
	current := s.controller.Current()

	out := controller.Outcome{
		Status:  statusOf(current),
		Alarm:   current,
		Display: s.controller.Display(),
	}

	if current != nil {
		out.RequestCode = current.RequestCode
	}

	return s.toProtoState(out), nil
}

// statusOf picks the status word for a status query.
func statusOf(current *domain.ScheduledAlarm) controller.Status {
	if current == nil {
		return controller.StatusNoAlarm
	}

	return controller.StatusScheduled
}

// toProtoState converts an outcome into a response, attaching registrations.
func (s *Server) toProtoState(out controller.Outcome) *pb.AlarmStateResponse {
	resp := &pb.AlarmStateResponse{
		Status:      string(out.Status),
		Alarm:       toProtoAlarm(out.Alarm),
		RequestCode: int32(out.RequestCode),
		Notice:      out.Notice,
		Display:     out.Display,
	}

	if s.registrations == nil {
		return resp
	}

	for _, reg := range s.registrations.Pending() {
		resp.Registrations = append(resp.Registrations, &pb.Registration{
			ID:          reg.ID.String(),
			RequestCode: int32(reg.Handle.RequestCode),
			Kind:        string(reg.Kind),
			Clock:       reg.Clock.String(),
			NextTrigger: timestamppb.New(reg.Next),
			Interval:    durationpb.New(reg.Interval),
		})
	}

	return resp
}

// toDomainActor converts a wire actor to a domain actor.
func toDomainActor(actor *pb.SystemActor) *domain.Actor {
	if actor == nil {
		return nil
	}

	return &domain.Actor{
		Hostname: actor.Hostname,
		Username: actor.Username,
	}
}

// toProtoAlarm converts the tracked alarm to its wire form.
func toProtoAlarm(alarm *domain.ScheduledAlarm) *pb.ScheduledAlarm {
	if alarm == nil {
		return nil
	}

	var actor *pb.SystemActor
	if alarm.SetBy != nil {
		actor = &pb.SystemActor{
			Hostname: alarm.SetBy.Hostname,
			Username: alarm.SetBy.Username,
		}
	}

	return &pb.ScheduledAlarm{
		TriggerAt:   timestamppb.New(alarm.TriggerAt),
		RequestCode: int32(alarm.RequestCode),
		Interval:    durationpb.New(alarm.Interval),
		SetBy:       actor,
	}
}
