package nats

import (
	"context"
	"errors"
	"testing"

	"medtriage-be/pkg/events"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMsg covers the subset of jetstream.Msg that dispatch touches.
type fakeMsg struct {
	jetstream.Msg
	data    []byte
	subject string

	acked  bool
	naked  bool
	termed bool
}

func (m *fakeMsg) Data() []byte    { return m.data }
func (m *fakeMsg) Subject() string { return m.subject }
func (m *fakeMsg) Ack() error      { m.acked = true; return nil }
func (m *fakeMsg) Nak() error      { m.naked = true; return nil }
func (m *fakeMsg) Term() error     { m.termed = true; return nil }

func TestDispatch(t *testing.T) {
	t.Run("acks on success and recovers the type from the subject", func(t *testing.T) {
		msg := &fakeMsg{
			data:    []byte(`{"patient_id": "abc"}`),
			subject: "events." + events.TypeCaseEscalated,
		}

		var got events.Event
		dispatch(msg, func(ctx context.Context, event events.Event) error {
			got = event
			return nil
		})

		assert.True(t, msg.acked)
		require.NotNil(t, got)
		assert.Equal(t, events.TypeCaseEscalated, got.EventType())
		assert.Equal(t, "abc", got.Payload()["patient_id"])
	})

	t.Run("naks on handler failure so the message redelivers", func(t *testing.T) {
		msg := &fakeMsg{
			data:    []byte(`{"patient_id": "abc"}`),
			subject: "events." + events.TypeCaseEscalated,
		}

		dispatch(msg, func(ctx context.Context, event events.Event) error {
			return errors.New("db unavailable")
		})

		assert.True(t, msg.naked)
		assert.False(t, msg.acked)
	})

	t.Run("terminates unparsable payloads instead of redelivering", func(t *testing.T) {
		msg := &fakeMsg{
			data:    []byte(`{not json`),
			subject: "events." + events.TypeCaseEscalated,
		}

		called := false
		dispatch(msg, func(ctx context.Context, event events.Event) error {
			called = true
			return nil
		})

		assert.True(t, msg.termed)
		assert.False(t, msg.naked)
		assert.False(t, called)
	})
}
