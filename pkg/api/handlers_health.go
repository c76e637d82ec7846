package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/headspace-sh/headspace/pkg/database"
	"github.com/headspace-sh/headspace/pkg/reaper"
)

// health reports overall status. The service is degraded when the
// database is unreachable or the standalone watcher process is absent:
// without the watcher, transcripts stop flowing even though hooks still
// land.
func (s *Server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	body := gin.H{
		"status":  "healthy",
		"version": s.deps.Version,
	}

	dbHealth, err := database.Health(ctx, s.deps.DB.DB())
	body["database"] = dbHealth.Status
	if err != nil {
		body["status"] = "degraded"
		body["database_error"] = err.Error()
	}

	watcher := reaper.CheckPIDFile(s.deps.Config.FileWatcher.PIDFile, s.deps.WatcherStaleAfter)
	body["watcher_running"] = watcher.Running
	if !watcher.Running {
		body["status"] = "degraded"
		if watcher.Reason != "" {
			body["watcher_error"] = watcher.Reason
		}
	}

	c.JSON(http.StatusOK, body)
}
