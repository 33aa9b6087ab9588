package provisioning

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockObserver is a test implementation of Observer that records events.
type MockObserver struct {
	mu       sync.Mutex
	events   []Event
	messages []string
	fields   map[string]string
}

func NewMockObserver() *MockObserver {
	return &MockObserver{
		events:   make([]Event, 0),
		messages: make([]string, 0),
		fields:   make(map[string]string),
	}
}

func (m *MockObserver) Printf(format string, v ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, fmt.Sprintf(format, v...))
}

func (m *MockObserver) Event(event Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
}

func (m *MockObserver) Progress(phase string, current, total int) {
	m.Event(Event{
		Type:    EventProgress,
		Phase:   phase,
		Message: "progress",
		Fields: map[string]string{
			"current": fmt.Sprint(current),
			"total":   fmt.Sprint(total),
		},
	})
}

func (m *MockObserver) WithFields(fields map[string]string) Observer {
	child := NewMockObserver()
	for k, v := range m.fields {
		child.fields[k] = v
	}
	for k, v := range fields {
		child.fields[k] = v
	}
	return child
}

func (m *MockObserver) eventsOfType(t EventType) []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Event
	for _, e := range m.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func (m *MockObserver) allMessages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.messages))
	copy(out, m.messages)
	return out
}

func TestConsoleObserver_DoesNotPanic(t *testing.T) {
	t.Parallel()
	observer := NewConsoleObserver(1)

	assert.NotPanics(t, func() {
		observer.Printf("plain %s", "line")
		observer.Progress("invitations", 0, 0)
		observer.Progress("invitations", 5, 10)
		observer.Event(Event{Type: EventResourceCreated, Phase: "project", Message: "created"})
		observer.Event(Event{Type: EventPhaseFailed, Phase: "team", Message: "failed", Fields: nil})
		observer.Logger().V(1).Info("debug line", "op", "ping")
	})
}

func TestConsoleObserver_WithFields_DoesNotMutateParent(t *testing.T) {
	t.Parallel()
	parent := NewConsoleObserver(0)
	child := parent.WithFields(map[string]string{"customer": "Acme"}).(*ConsoleObserver)
	grandchild := child.WithFields(map[string]string{"run": "r1"}).(*ConsoleObserver)

	assert.Empty(t, parent.contextFields)
	assert.Equal(t, map[string]string{"customer": "Acme"}, child.contextFields)
	assert.Equal(t, map[string]string{"customer": "Acme", "run": "r1"}, grandchild.contextFields)
}

func TestFieldValues_Sorted(t *testing.T) {
	t.Parallel()
	kv := fieldValues(map[string]string{"b": "2", "a": "1"})
	require.Len(t, kv, 4)
	assert.Equal(t, []any{"a", "1", "b", "2"}, kv)
}

func TestLogHelpers(t *testing.T) {
	t.Parallel()
	obs := NewMockObserver()

	LogPhaseStart(obs, "project")
	LogResourceCreating(obs, "project", "project", "X")
	LogResourceCreated(obs, "project", "project", "X", "P1")
	LogResourceResolved(obs, "team", "team", "T1")
	LogResourceFailed(obs, "environment", "environment", "Y", assert.AnError)
	LogPhaseFailed(obs, "environment", assert.AnError)

	assert.Len(t, obs.eventsOfType(EventPhaseStarted), 1)
	created := obs.eventsOfType(EventResourceCreated)
	require.Len(t, created, 1)
	assert.Equal(t, "P1", created[0].Fields["id"])
	assert.Len(t, obs.eventsOfType(EventResourceResolved), 1)
	assert.Len(t, obs.eventsOfType(EventResourceFailed), 1)
	assert.Len(t, obs.eventsOfType(EventPhaseFailed), 1)
}
