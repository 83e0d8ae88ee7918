package ws

import (
	"testing"

	"github.com/google/uuid"
)

func newClient(userID uuid.UUID) *Client {
	return &Client{UserID: userID, Send: make(chan []byte, 4)}
}

func TestHubRegisterUnregister(t *testing.T) {
	h := NewHub()
	userID := uuid.Must(uuid.NewV7())

	c := newClient(userID)
	h.Register(c)

	if !h.IsOnline(userID) {
		t.Fatal("expected user to be online after register")
	}
	if got := h.ClientCount(); got != 1 {
		t.Fatalf("ClientCount() = %d, want 1", got)
	}

	h.Unregister(c)
	if h.IsOnline(userID) {
		t.Fatal("expected user to be offline after unregister")
	}
	if got := h.ClientCount(); got != 0 {
		t.Fatalf("ClientCount() = %d, want 0", got)
	}

	// Send channel must be closed so the write pump exits.
	if _, open := <-c.Send; open {
		t.Fatal("expected Send channel to be closed")
	}
}

func TestHubUnregisterTwice(t *testing.T) {
	h := NewHub()
	c := newClient(uuid.Must(uuid.NewV7()))
	h.Register(c)
	h.Unregister(c)
	// Second unregister must not panic on the closed channel.
	h.Unregister(c)
}

func TestHubSendToUser(t *testing.T) {
	h := NewHub()
	alice := uuid.Must(uuid.NewV7())
	bob := uuid.Must(uuid.NewV7())

	tab1 := newClient(alice)
	tab2 := newClient(alice)
	other := newClient(bob)
	h.Register(tab1)
	h.Register(tab2)
	h.Register(other)

	sent := h.SendToUser(alice, []byte("hi"))
	if sent != 2 {
		t.Fatalf("SendToUser() queued on %d connections, want 2", sent)
	}

	for _, c := range []*Client{tab1, tab2} {
		select {
		case payload := <-c.Send:
			if string(payload) != "hi" {
				t.Fatalf("payload = %q, want %q", payload, "hi")
			}
		default:
			t.Fatal("expected payload on connection")
		}
	}

	select {
	case <-other.Send:
		t.Fatal("payload leaked to another user")
	default:
	}
}

func TestHubSendToOfflineUser(t *testing.T) {
	h := NewHub()
	if sent := h.SendToUser(uuid.Must(uuid.NewV7()), []byte("x")); sent != 0 {
		t.Fatalf("SendToUser() = %d, want 0", sent)
	}
}

func TestHubSkipsFullBuffers(t *testing.T) {
	h := NewHub()
	userID := uuid.Must(uuid.NewV7())
	c := &Client{UserID: userID, Send: make(chan []byte, 1)}
	h.Register(c)

	if sent := h.SendToUser(userID, []byte("one")); sent != 1 {
		t.Fatalf("first send queued on %d connections, want 1", sent)
	}
	// Buffer is now full; the hub must drop rather than block.
	if sent := h.SendToUser(userID, []byte("two")); sent != 0 {
		t.Fatalf("second send queued on %d connections, want 0", sent)
	}
}
