package websocket

import (
	"testing"
)

func newTestClient(buffer int) *Client {
	return &Client{send: make(chan []byte, buffer)}
}

func TestSendToUserMultipleConnections(t *testing.T) {
	hub := NewHub()
	first := newTestClient(1)
	second := newTestClient(1)
	hub.Register("user-1", first)
	hub.Register("user-1", second)

	hub.SendToUser(MessageUpdateDashboard, "user-1")

	for _, client := range []*Client{first, second} {
		select {
		case msg := <-client.send:
			if string(msg) != MessageUpdateDashboard {
				t.Fatalf("unexpected message: %s", msg)
			}
		default:
			t.Fatal("expected message on every connection")
		}
	}
}

func TestSendToUserUnknownUserIsNoop(t *testing.T) {
	hub := NewHub()
	hub.SendToUser(MessageUpdateList, "ghost")
}

func TestSendToUserFullBufferDoesNotBlock(t *testing.T) {
	hub := NewHub()
	client := newTestClient(1)
	hub.Register("user-1", client)
	client.send <- []byte("pending")

	done := make(chan struct{})
	go func() {
		hub.SendToUser(MessageUpdateDashboard, "user-1")
		close(done)
	}()
	select {
	case <-done:
	default:
		// allow the goroutine to finish
		<-done
	}
}

func TestUnregisterRemovesEmptyUserEntry(t *testing.T) {
	hub := NewHub()
	client := newTestClient(1)
	hub.Register("user-1", client)
	hub.Unregister("user-1", client)

	hub.mu.RLock()
	_, exists := hub.clients["user-1"]
	hub.mu.RUnlock()
	if exists {
		t.Fatal("expected user entry to be removed once empty")
	}
}

func TestUnregisterKeepsOtherConnections(t *testing.T) {
	hub := NewHub()
	first := newTestClient(1)
	second := newTestClient(1)
	hub.Register("user-1", first)
	hub.Register("user-1", second)
	hub.Unregister("user-1", first)

	hub.SendToUser(MessageUpdateList, "user-1")
	select {
	case <-second.send:
	default:
		t.Fatal("expected remaining connection to receive the message")
	}
}

func TestBroadcastToWallet(t *testing.T) {
	hub := NewHub()
	owner := newTestClient(1)
	member := newTestClient(1)
	hub.Register("owner", owner)
	hub.Register("member", member)

	hub.BroadcastToWallet(MessageUpdateDashboard, []string{"owner", "member", "offline"})

	for _, client := range []*Client{owner, member} {
		select {
		case msg := <-client.send:
			if string(msg) != MessageUpdateDashboard {
				t.Fatalf("unexpected message: %s", msg)
			}
		default:
			t.Fatal("expected broadcast delivery")
		}
	}
}
