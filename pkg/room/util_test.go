package room

import (
	"testing"
	"time"
)

// seqRand replays a scripted sequence of values
type seqRand struct {
	vals []int
	i    int
}

func (s *seqRand) Intn(n int) int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}

func newTestRegistry(delay time.Duration) *Registry {
	reg := NewRegistry(delay, 3)
	return reg
}

// receive reads from the client's send channel until a response with one of
// the given keys arrives, skipping everything else
func receive(t *testing.T, c *Client, keys ...string) *Response {
	t.Helper()

	want := make(map[string]bool, len(keys))
	for _, key := range keys {
		want[key] = true
	}

	timeout := time.After(time.Second * 5)
	for {
		select {
		case msg := <-c.SendChan():
			res, ok := msg.(*Response)
			if !ok {
				t.Fatalf("unexpected message type %T", msg)
			}

			if want[res.Key] {
				return res
			}
		case <-timeout:
			t.Fatalf("timed out waiting for %v", keys)
		}
	}
}

// drain discards anything already buffered for the client
func drain(c *Client) {
	for {
		select {
		case <-c.SendChan():
		default:
			return
		}
	}
}
