package livefeed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muurk/sportsdash/internal/logging"
	"github.com/muurk/sportsdash/internal/sportsapi"
)

const (
	// Time allowed to write a control message to the service
	writeWait = 10 * time.Second

	// Time allowed to read the next message or pong from the service
	pongWait = 60 * time.Second

	// Maximum message size accepted from the service
	maxMessageSize = 64 * 1024

	// Reconnect delays
	DefaultMinBackoff = time.Second
	DefaultMaxBackoff = time.Minute
)

// Message types sent by the live score service
const (
	TypeScore     = "score"
	TypeHeartbeat = "heartbeat"
)

// Message is the envelope of every frame the service sends
type Message struct {
	Type  string                 `json:"type"`
	Score *sportsapi.ScoreUpdate `json:"score,omitempty"`
}

// Handler receives feed events. Both callbacks are invoked from the feed's
// goroutine and must not block for long.
type Handler struct {
	Update func(sportsapi.ScoreUpdate)
	Status func(connected bool)
}

// Feed streams live score updates over a websocket, reconnecting with
// exponential backoff until its context ends.
type Feed struct {
	URL    string
	Dialer *websocket.Dialer

	MinBackoff time.Duration
	MaxBackoff time.Duration

	// PongWait bounds the silence tolerated before the connection is
	// considered dead. Pings are sent at nine tenths of it.
	PongWait time.Duration
}

// New creates a feed for url with default timings
func New(url string) *Feed {
	return &Feed{
		URL:        url,
		Dialer:     websocket.DefaultDialer,
		MinBackoff: DefaultMinBackoff,
		MaxBackoff: DefaultMaxBackoff,
		PongWait:   pongWait,
	}
}

// Run connects and delivers updates until ctx ends. It returns ctx.Err().
func (f *Feed) Run(ctx context.Context, h Handler) error {
	if f.URL == "" {
		return errors.New("live feed URL not configured")
	}
	backoff := f.minBackoff()
	for {
		connected, err := f.session(ctx, h)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if connected {
			backoff = f.minBackoff()
		}
		logging.LogFeedEvent(f.URL, "disconnected",
			zap.Error(err),
			zap.Duration("retry_in", backoff),
		)

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		backoff = min(backoff*2, f.maxBackoff())
	}
}

// session runs one connection. connected reports whether the dial
// succeeded, so a long-lived connection resets the backoff.
func (f *Feed) session(ctx context.Context, h Handler) (connected bool, err error) {
	dialer := f.Dialer
	if dialer == nil {
		dialer = websocket.DefaultDialer
	}
	conn, _, err := dialer.DialContext(ctx, f.URL, nil)
	if err != nil {
		return false, fmt.Errorf("dial: %w", err)
	}
	defer conn.Close()

	logging.LogFeedEvent(f.URL, "connected")
	if h.Status != nil {
		h.Status(true)
		defer h.Status(false)
	}

	wait := f.pongWait()
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(wait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wait))
	})

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		f.keepAlive(ctx, conn, wait*9/10, done)
	}()
	defer func() {
		close(done)
		wg.Wait()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return true, nil
			}
			return true, fmt.Errorf("read: %w", err)
		}
		_ = conn.SetReadDeadline(time.Now().Add(wait))

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			logging.Debug("Ignoring malformed live feed message", zap.Error(err), zap.Int("bytes", len(data)))
			continue
		}

		switch msg.Type {
		case TypeScore:
			if msg.Score == nil || msg.Score.GameID == 0 {
				logging.Warn("Ignoring score message without a game", zap.String("url", f.URL))
				continue
			}
			if h.Update != nil {
				h.Update(*msg.Score)
			}
		case TypeHeartbeat:
		default:
			logging.Debug("Ignoring live feed message", zap.String("type", msg.Type))
		}
	}
}

// keepAlive pings the service and closes the connection when ctx ends,
// which unblocks the read loop
func (f *Feed) keepAlive(ctx context.Context, conn *websocket.Conn, period time.Duration, done <-chan struct{}) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
			_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
			_ = conn.Close()
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				logging.Debug("Live feed ping failed", zap.Error(err))
				_ = conn.Close()
				return
			}
		}
	}
}

func (f *Feed) minBackoff() time.Duration {
	if f.MinBackoff <= 0 {
		return DefaultMinBackoff
	}
	return f.MinBackoff
}

func (f *Feed) maxBackoff() time.Duration {
	if f.MaxBackoff < f.minBackoff() {
		return max(f.minBackoff(), DefaultMaxBackoff)
	}
	return f.MaxBackoff
}

func (f *Feed) pongWait() time.Duration {
	if f.PongWait <= 0 {
		return pongWait
	}
	return f.PongWait
}
