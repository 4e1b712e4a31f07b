package alarmv1

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// TestCodec_Registered ensures the codec is available to grpc under its name.
func TestCodec_Registered(t *testing.T) {
	t.Parallel()

	require.NotNil(t, encoding.GetCodecV2(CodecName))
}

// TestCodec_ProtoAndPlain covers both encoding paths.
func TestCodec_ProtoAndPlain(t *testing.T) {
	t.Parallel()

	var codec Codec

	data, err := codec.Marshal(new(emptypb.Empty))
	require.NoError(t, err)
	require.JSONEq(t, `{}`, string(data))
	require.NoError(t, codec.Unmarshal(data, new(emptypb.Empty)))

	// A zoned trigger crosses the wire as an instant.
	at := time.Date(2026, time.October, 17, 7, 30, 0, 0, time.FixedZone("CEST", 2*60*60))
	in := &AlarmStateResponse{
		Status: "scheduled",
		Alarm: &ScheduledAlarm{
			TriggerAt:   timestamppb.New(at),
			RequestCode: 3,
			Interval:    durationpb.New(12 * time.Hour),
		},
		Display: "Alarm set for: Sat Oct 17 07:30:00 UTC 2026",
	}

	data, err = codec.Marshal(in)
	require.NoError(t, err)
	require.Contains(t, string(data), `"trigger_at":{"seconds":`)

	out := new(AlarmStateResponse)
	require.NoError(t, codec.Unmarshal(data, out))
	require.Equal(t, in.Display, out.Display)
	require.True(t, at.Equal(out.Alarm.TriggerAt.AsTime()))
	require.Equal(t, 12*time.Hour, out.Alarm.Interval.AsDuration())

	require.Error(t, codec.Unmarshal([]byte("{"), out))
}
