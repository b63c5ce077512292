package livefeed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/gorilla/websocket"

	"github.com/muurk/sportsdash/internal/sportsapi"
)

var upgrader = websocket.Upgrader{}

// newServer runs serve for every websocket connection and returns the
// ws:// URL of the server
func newServer(t *testing.T, serve func(n int, conn *websocket.Conn)) string {
	t.Helper()
	var conns atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer conn.Close()
		serve(int(conns.Add(1)), conn)
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func closeNormally(conn *websocket.Conn) {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
}

// recorder collects handler callbacks
type recorder struct {
	mu      sync.Mutex
	updates []sportsapi.ScoreUpdate
	status  []bool
	got     chan struct{}
}

func newRecorder() *recorder {
	return &recorder{got: make(chan struct{}, 100)}
}

func (r *recorder) handler() Handler {
	return Handler{
		Update: func(u sportsapi.ScoreUpdate) {
			r.mu.Lock()
			r.updates = append(r.updates, u)
			r.mu.Unlock()
			r.got <- struct{}{}
		},
		Status: func(c bool) {
			r.mu.Lock()
			r.status = append(r.status, c)
			r.mu.Unlock()
		},
	}
}

func (r *recorder) wait(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-r.got:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out after %d of %d updates", i, n)
		}
	}
}

func TestRun_DeliversScoreUpdates(t *testing.T) {
	url := newServer(t, func(n int, conn *websocket.Conn) {
		_ = conn.WriteJSON(Message{Type: TypeHeartbeat})
		_ = conn.WriteJSON(Message{Type: TypeScore, Score: &sportsapi.ScoreUpdate{GameID: 1, Period: 1, AwayScore: 1}})
		_ = conn.WriteJSON(Message{Type: "unknown"})
		_ = conn.WriteJSON(Message{Type: TypeScore})
		_ = conn.WriteJSON(Message{Type: TypeScore, Score: &sportsapi.ScoreUpdate{GameID: 1, Period: 2, AwayScore: 1, HomeScore: 1}})
		// hold the connection until the client goes away
		_, _, _ = conn.ReadMessage()
	})

	rec := newRecorder()
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- New(url).Run(ctx, rec.handler()) }()

	rec.wait(t, 2)
	cancel()
	if err := <-errc; !errors.Is(err, context.Canceled) {
		t.Errorf("Run = %v, want context.Canceled", err)
	}

	want := []sportsapi.ScoreUpdate{
		{GameID: 1, Period: 1, AwayScore: 1},
		{GameID: 1, Period: 2, AwayScore: 1, HomeScore: 1},
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if diff := cmp.Diff(want, rec.updates); diff != "" {
		t.Errorf("updates (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]bool{true, false}, rec.status); diff != "" {
		t.Errorf("status (-want +got):\n%s", diff)
	}
}

func TestRun_MalformedFrameKeepsConnection(t *testing.T) {
	var conns atomic.Int32
	url := newServer(t, func(n int, conn *websocket.Conn) {
		conns.Store(int32(n))
		_ = conn.WriteJSON(Message{Type: TypeScore, Score: &sportsapi.ScoreUpdate{GameID: 1, Period: 1}})
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"type": "score", "score": {`))
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`not json`))
		_ = conn.WriteJSON(Message{Type: TypeScore, Score: &sportsapi.ScoreUpdate{GameID: 1, Period: 2}})
		_, _, _ = conn.ReadMessage()
	})

	feed := New(url)
	feed.MinBackoff = 10 * time.Millisecond
	rec := newRecorder()
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- feed.Run(ctx, rec.handler()) }()

	rec.wait(t, 2)
	cancel()
	<-errc

	if n := conns.Load(); n != 1 {
		t.Errorf("connections = %d, want 1", n)
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	want := []sportsapi.ScoreUpdate{{GameID: 1, Period: 1}, {GameID: 1, Period: 2}}
	if diff := cmp.Diff(want, rec.updates); diff != "" {
		t.Errorf("updates (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]bool{true, false}, rec.status); diff != "" {
		t.Errorf("status (-want +got):\n%s", diff)
	}
}

func TestRun_Reconnects(t *testing.T) {
	url := newServer(t, func(n int, conn *websocket.Conn) {
		_ = conn.WriteJSON(Message{Type: TypeScore, Score: &sportsapi.ScoreUpdate{GameID: n}})
		if n == 1 {
			closeNormally(conn)
			return
		}
		_, _, _ = conn.ReadMessage()
	})

	feed := New(url)
	feed.MinBackoff = 10 * time.Millisecond
	rec := newRecorder()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errc := make(chan error, 1)
	go func() { errc <- feed.Run(ctx, rec.handler()) }()

	rec.wait(t, 2)
	cancel()
	<-errc

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if len(rec.updates) < 2 || rec.updates[0].GameID != 1 || rec.updates[1].GameID != 2 {
		t.Errorf("updates = %+v, want one from each connection", rec.updates)
	}
	if len(rec.status) < 3 || !rec.status[0] || rec.status[1] || !rec.status[2] {
		t.Errorf("status = %v, want connect, disconnect, connect", rec.status)
	}
}

func TestRun_DialFailureRetriesUntilCanceled(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	srv.Close()

	feed := New(url)
	feed.MinBackoff = 5 * time.Millisecond
	feed.MaxBackoff = 20 * time.Millisecond
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	var connected atomic.Bool
	err := feed.Run(ctx, Handler{Status: func(c bool) { connected.Store(c) }})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run = %v, want deadline exceeded", err)
	}
	if connected.Load() {
		t.Error("reported connected to a closed server")
	}
}

func TestRun_RequiresURL(t *testing.T) {
	if err := (&Feed{}).Run(context.Background(), Handler{}); err == nil {
		t.Error("Run without URL succeeded")
	}
}

func TestBackoffDefaults(t *testing.T) {
	f := &Feed{MaxBackoff: time.Millisecond}
	if f.minBackoff() != DefaultMinBackoff {
		t.Errorf("minBackoff = %v", f.minBackoff())
	}
	if f.maxBackoff() != DefaultMaxBackoff {
		t.Errorf("maxBackoff = %v, want default when below min", f.maxBackoff())
	}
	if f.pongWait() != pongWait {
		t.Errorf("pongWait = %v", f.pongWait())
	}
}
