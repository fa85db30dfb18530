package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Dashboard returns the current snapshot, refreshing first when none has been
// assembled yet.
func (h HandlerSet) Dashboard(c *gin.Context) {
	state := h.dashboard.State()
	if state.Snapshot.LastUpdated.IsZero() {
		if err := h.dashboard.Refresh(c.Request.Context()); err != nil {
			fail(c, err)
			return
		}
		state = h.dashboard.State()
	}
	c.JSON(http.StatusOK, state.Snapshot)
}

func (h HandlerSet) RefreshDashboard(c *gin.Context) {
	if err := h.dashboard.Refresh(c.Request.Context()); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, h.dashboard.State().Snapshot)
}

func (h HandlerSet) RecentActivity(c *gin.Context) {
	if err := h.dashboard.RefreshActivity(c.Request.Context()); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"activity": h.dashboard.State().RecentActivity})
}
