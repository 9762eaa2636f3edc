package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/veckotid/time_tracking_app/internal/core/domain"
	portsrepo "github.com/veckotid/time_tracking_app/internal/core/ports/repositories"
	portssvc "github.com/veckotid/time_tracking_app/internal/core/ports/services"
	"github.com/veckotid/time_tracking_app/internal/dto"
)

// weekLockHandler handles the weekly submission and approval flow.
type weekLockHandler struct {
	weekLockService portssvc.WeekLockSvcFacade
}

func newWeekLockHandler(weekLockService portssvc.WeekLockSvcFacade) *weekLockHandler {
	return &weekLockHandler{weekLockService: weekLockService}
}

// RegisterWeekLockRoutes mounts the week lock endpoints on the given group.
// Exported so handler tests can mount them in isolation.
func RegisterWeekLockRoutes(rg *gin.RouterGroup, weekLockService portssvc.WeekLockSvcFacade) {
	h := newWeekLockHandler(weekLockService)

	locks := rg.Group("/week-locks")
	{
		locks.POST("/submit", h.submitWeek)
		locks.GET("", h.listLocks)
		locks.GET("/pending-count", h.pendingCount)
		locks.POST("/:lock_id/approve", h.approveWeek)
		locks.POST("/:lock_id/reject", h.rejectWeek)
		locks.POST("/:lock_id/unlock", h.unlockWeek)
	}
}

// submitWeek godoc
// @Summary Submit a week for approval
// @Description Locks the caller's week and flips its entries to SUBMITTED.
// @Tags week-locks
// @Accept json
// @Produce json
// @Param week body dto.SubmitWeekRequest true "Week start date (a Monday)"
// @Success 201 {object} domain.WeekLock
// @Failure 400 {object} map[string]string "Week has no entries or date is not a Monday"
// @Failure 409 {object} map[string]string "Week already submitted or approved"
// @Security BearerAuth
// @Router /week-locks/submit [post]
func (h *weekLockHandler) submitWeek(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	var req dto.SubmitWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	lock, err := h.weekLockService.SubmitWeek(c.Request.Context(), caller, req.WeekStartDate.Time)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, lock)
}

// listLocks godoc
// @Summary List week locks
// @Description Employees see their own locks; reviewers see the whole company, joined with hour totals.
// @Tags week-locks
// @Produce json
// @Param userID query string false "Filter by user (reviewers only)"
// @Param status query string false "Filter by status"
// @Success 200 {array} domain.WeekLockSummary
// @Security BearerAuth
// @Router /week-locks [get]
func (h *weekLockHandler) listLocks(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	filter := portsrepo.WeekLockFilter{UserID: optionalStringQuery(c, "userID")}
	if raw := c.Query("status"); raw != "" {
		status := domain.WeekLockStatus(raw)
		filter.Status = &status
	}

	locks, err := h.weekLockService.ListLocks(c.Request.Context(), caller, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, locks)
}

// pendingCount godoc
// @Summary Count weeks awaiting review
// @Tags week-locks
// @Produce json
// @Success 200 {object} dto.PendingCountResponse
// @Security BearerAuth
// @Router /week-locks/pending-count [get]
func (h *weekLockHandler) pendingCount(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	count, err := h.weekLockService.PendingCount(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PendingCountResponse{Count: count})
}

// approveWeek godoc
// @Summary Approve a submitted week
// @Tags week-locks
// @Produce json
// @Success 200 {object} domain.WeekLock
// @Failure 409 {object} map[string]string "Week is not submitted"
// @Security BearerAuth
// @Router /week-locks/{lock_id}/approve [post]
func (h *weekLockHandler) approveWeek(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	lock, err := h.weekLockService.ApproveWeek(c.Request.Context(), caller, c.Param("lock_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lock)
}

// rejectWeek godoc
// @Summary Reject a submitted week
// @Description Rejects with a mandatory comment; the comment is copied onto each entry.
// @Tags week-locks
// @Accept json
// @Produce json
// @Param rejection body dto.RejectWeekRequest true "Rejection reason"
// @Success 200 {object} domain.WeekLock
// @Failure 409 {object} map[string]string "Week is not submitted"
// @Security BearerAuth
// @Router /week-locks/{lock_id}/reject [post]
func (h *weekLockHandler) rejectWeek(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	var req dto.RejectWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	lock, err := h.weekLockService.RejectWeek(c.Request.Context(), caller, c.Param("lock_id"), req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lock)
}

// unlockWeek godoc
// @Summary Unlock a week
// @Description Reverts the week's entries to DRAFT and removes the lock. Works from any lock status.
// @Tags week-locks
// @Success 204 "No Content"
// @Security BearerAuth
// @Router /week-locks/{lock_id}/unlock [post]
func (h *weekLockHandler) unlockWeek(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	if err := h.weekLockService.UnlockWeek(c.Request.Context(), caller, c.Param("lock_id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
