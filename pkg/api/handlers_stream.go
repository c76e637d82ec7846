package api

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"
)

// streamEvents is the dashboard's SSE feed. With ?last_event_id=N the
// persisted log replays first, so a reconnecting client misses nothing;
// then the live broadcaster takes over. Heartbeat comments keep proxies
// from reaping idle connections.
func (s *Server) streamEvents(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	// Subscribe before catch-up: anything dispatched during the replay
	// queues in the subscriber buffer instead of being lost.
	sub := s.deps.Broadcast.Subscribe()
	defer s.deps.Broadcast.Unsubscribe(sub)

	if raw := c.Query("last_event_id"); raw != "" {
		afterID, err := strconv.Atoi(raw)
		if err != nil {
			writeError(c, http.StatusBadRequest, "invalid_last_event_id", "last_event_id must be an integer", false)
			return
		}
		if !s.replay(c, afterID) {
			return
		}
	}

	heartbeat := time.NewTicker(s.deps.Config.SSE.HeartbeatInterval)
	defer heartbeat.Stop()

	clientGone := c.Request.Context().Done()
	for {
		select {
		case <-clientGone:
			return
		case msg, ok := <-sub.C:
			if !ok {
				return
			}
			if err := sse.Encode(c.Writer, sse.Event{
				Event: msg.Type,
				Data:  msg,
			}); err != nil {
				return
			}
			c.Writer.Flush()
		case <-heartbeat.C:
			if _, err := io.WriteString(c.Writer, ": heartbeat\n\n"); err != nil {
				return
			}
			c.Writer.Flush()
		}
	}
}

// replay streams persisted events newer than afterID. Returns false
// when the client went away mid-replay.
func (s *Server) replay(c *gin.Context, afterID int) bool {
	rows, err := s.deps.Events.ListSince(c.Request.Context(), afterID, s.deps.Config.SSE.CatchupLimit)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "catchup_failed", "failed to load missed events", true)
		return false
	}

	for _, row := range rows {
		if err := sse.Encode(c.Writer, sse.Event{
			Id:    strconv.Itoa(row.ID),
			Event: string(row.EventType),
			Data: map[string]interface{}{
				"payload":    row.Payload,
				"agent_id":   row.AgentID,
				"created_at": row.CreatedAt,
			},
		}); err != nil {
			return false
		}
	}
	c.Writer.Flush()
	return true
}
