package tele

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/protobuf/proto"
	"github.com/nbkstem/booth/log2"
	tele_api "github.com/nbkstem/booth/tele"
	tele_config "github.com/nbkstem/booth/tele/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/temoto/spq"
)

func testSetup(t testing.TB, enabled bool) (*tele, *transportMock) {
	log := log2.NewTest(t, log2.LDebug)
	mock := &transportMock{t: t, outBuffer: 16, networkTimeout: 5 * time.Second}
	tt := NewWithTransporter(mock).(*tele)
	cfg := tele_config.Config{
		Enabled:      enabled,
		BoothId:      40,
		LogDebug:     true,
		PersistPath:  spq.OnlyForTesting,
		BuildVersion: "test-build",
	}
	require.NoError(t, tt.Init(context.Background(), log, cfg))
	return tt, mock
}

func TestTopics(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "booth40/w/1s", TopicState(40))
	assert.Equal(t, "booth40/w/1t", TopicTelemetry(40))
	assert.Equal(t, "booth40/r/c", TopicCommand(40))
	assert.Equal(t, "booth40/cr", TopicResponse(40, defaultResponseSuffix))
	assert.Equal(t, "booth40/c", TopicConnect(40))
}

func TestApi(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		check func(testing.TB, *tele, *transportMock)
	}{
		{"error", func(t testing.TB, tt *tele, mock *transportMock) {
			tt.Error(fmt.Errorf("fullscreen rejected"))
			var tm tele_api.Telemetry
			require.NoError(t, proto.Unmarshal(<-mock.outTelemetry, &tm))
			require.NotNil(t, tm.Error)
			assert.Equal(t, "fullscreen rejected", tm.Error.Message)
			assert.Equal(t, uint32(1), tm.Error.Count)
			assert.Equal(t, int32(40), tm.BoothId)
			assert.Equal(t, "test-build", tm.BuildVersion)
			assert.InDelta(t, time.Now().Unix(), tm.Time/1e9, 10)
		}},
		{"session", func(t testing.TB, tt *tele, mock *transportMock) {
			s := &tele_api.Telemetry_Session{Id: "abc", Inputs: 12, Views: []string{"home", "ai_guide"}, Cue: "speech", EndReason: "timeout"}
			tt.Session(s)
			var tm tele_api.Telemetry
			require.NoError(t, proto.Unmarshal(<-mock.outTelemetry, &tm))
			assert.True(t, proto.Equal(s, tm.Session))
		}},
		{"state", func(t testing.TB, tt *tele, mock *transportMock) {
			assert.Equal(t, []byte{byte(tele_api.State_Boot)}, <-mock.outState)
			tt.State(tele_api.State_Idle)
			tt.State(tele_api.State_Idle) // duplicate not sent
			tt.State(tele_api.State_Active)
			assert.Equal(t, []byte{byte(tele_api.State_Idle)}, <-mock.outState)
			assert.Equal(t, []byte{byte(tele_api.State_Active)}, <-mock.outState)
			assert.Len(t, mock.outState, 0)
		}},
		{"command", func(t testing.TB, tt *tele, mock *transportMock) {
			b, err := proto.Marshal(&tele_api.Command{Id: 3, Kind: tele_api.Command_Reset, ReplyTopic: "cr/ops"})
			require.NoError(t, err)
			mock.onCommand(b)
			cmd := <-tt.Commands()
			assert.Equal(t, tele_api.Command_Reset, cmd.Kind)
			tt.CommandReply(cmd, "state=Idle", nil)
			var r tele_api.Response
			require.NoError(t, proto.Unmarshal(<-mock.outResponse, &r))
			assert.Equal(t, uint32(3), r.CommandId)
			assert.Equal(t, "state=Idle", r.Data)
			assert.Equal(t, "", r.INTERNALTopic)
			assert.Equal(t, "cr/ops", <-mock.responseTopics)
		}},
		{"command-deadline", func(t testing.TB, tt *tele, mock *transportMock) {
			b, err := proto.Marshal(&tele_api.Command{Id: 4, Kind: tele_api.Command_Wake, Deadline: 1})
			require.NoError(t, err)
			mock.onCommand(b)
			var r tele_api.Response
			require.NoError(t, proto.Unmarshal(<-mock.outResponse, &r))
			assert.Equal(t, uint32(4), r.CommandId)
			assert.Equal(t, "deadline", r.Error)
			assert.Equal(t, defaultResponseSuffix, <-mock.responseTopics)
			assert.Len(t, tt.Commands(), 0)
		}},
		{"command-invalid", func(t testing.TB, tt *tele, mock *transportMock) {
			mock.onCommand([]byte{0xff, 0xff})
			b, err := proto.Marshal(&tele_api.Command{Id: 5})
			require.NoError(t, err)
			mock.onCommand(b)
			var r tele_api.Response
			require.NoError(t, proto.Unmarshal(<-mock.outResponse, &r))
			assert.Equal(t, uint32(5), r.CommandId)
			assert.Equal(t, errKind.Error(), r.Error)
		}},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			tt, mock := testSetup(t, true)
			defer tt.Close()
			c.check(t, tt, mock)
		})
	}
}

func TestDisabled(t *testing.T) {
	t.Parallel()

	tt, mock := testSetup(t, false)
	tt.State(tele_api.State_Active)
	tt.Error(fmt.Errorf("ignored"))
	tt.Session(&tele_api.Telemetry_Session{Id: "x"})
	tt.CommandReply(&tele_api.Command{Id: 1}, "", nil)
	assert.Nil(t, mock.onCommand, "transport must not be initialized")
	tt.Close()
	tt.Close()
}
