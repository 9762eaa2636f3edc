package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/veckotid/time_tracking_app/internal/core/domain"
	portsrepo "github.com/veckotid/time_tracking_app/internal/core/ports/repositories"
	portssvc "github.com/veckotid/time_tracking_app/internal/core/ports/services"
	"github.com/veckotid/time_tracking_app/internal/dto"
	"github.com/veckotid/time_tracking_app/pkg/config"
)

// timeEntryHandler handles time entry CRUD, the week view, offline sync and
// attachments.
type timeEntryHandler struct {
	timeEntryService portssvc.TimeEntrySvcFacade
	maxUploadBytes   int64
}

func newTimeEntryHandler(timeEntryService portssvc.TimeEntrySvcFacade, cfg *config.Config) *timeEntryHandler {
	return &timeEntryHandler{timeEntryService: timeEntryService, maxUploadBytes: cfg.MaxUploadBytes}
}

func registerTimeEntryRoutes(rg *gin.RouterGroup, timeEntryService portssvc.TimeEntrySvcFacade, cfg *config.Config) {
	h := newTimeEntryHandler(timeEntryService, cfg)

	entries := rg.Group("/time-entries")
	{
		entries.POST("", h.createEntry)
		entries.GET("", h.listEntries)
		entries.GET("/week", h.getWeek)
		entries.POST("/sync", h.syncEntries)
		entries.GET("/:entry_id", h.getEntry)
		entries.PUT("/:entry_id", h.updateEntry)
		entries.DELETE("/:entry_id", h.deleteEntry)
		entries.POST("/:entry_id/attachments", h.addAttachment)
		entries.DELETE("/:entry_id/attachments/:attachment_id", h.deleteAttachment)
	}
}

// createEntry godoc
// @Summary Create a time entry
// @Description Books hours on a date. Fails if the ISO week is submitted or approved.
// @Tags time-entries
// @Accept json
// @Produce json
// @Param entry body dto.CreateTimeEntryRequest true "Entry details"
// @Success 201 {object} domain.TimeEntry
// @Failure 409 {object} map[string]string "Week is locked"
// @Security BearerAuth
// @Router /time-entries [post]
func (h *timeEntryHandler) createEntry(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	var req dto.CreateTimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.timeEntryService.CreateEntry(c.Request.Context(), caller, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// listEntries godoc
// @Summary List time entries
// @Description Employees see only their own entries; reviewers may filter by user.
// @Tags time-entries
// @Produce json
// @Param userID query string false "Filter by user (reviewers only)"
// @Param projectID query string false "Filter by project"
// @Param status query string false "Filter by status"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} domain.TimeEntry
// @Security BearerAuth
// @Router /time-entries [get]
func (h *timeEntryHandler) listEntries(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	from, ok := parseDateQuery(c, "from")
	if !ok {
		return
	}
	to, ok := parseDateQuery(c, "to")
	if !ok {
		return
	}

	filter := portsrepo.TimeEntryFilter{
		UserID:    optionalStringQuery(c, "userID"),
		ProjectID: optionalStringQuery(c, "projectID"),
		From:      from,
		To:        to,
	}
	if raw := c.Query("status"); raw != "" {
		status := domain.TimeEntryStatus(raw)
		filter.Status = &status
	}

	entries, err := h.timeEntryService.ListEntries(c.Request.Context(), caller, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// getWeek godoc
// @Summary Week view
// @Description Returns the entries, lock state and hour summaries for one week. Any date within the week selects it.
// @Tags time-entries
// @Produce json
// @Param date query string true "Any date within the week (YYYY-MM-DD)"
// @Param userID query string false "Target user (reviewers only)"
// @Success 200 {object} dto.WeekViewResponse
// @Security BearerAuth
// @Router /time-entries/week [get]
func (h *timeEntryHandler) getWeek(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	date, ok := requireDateQuery(c, "date")
	if !ok {
		return
	}

	week, err := h.timeEntryService.GetWeek(c.Request.Context(), caller, c.Query("userID"), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, week)
}

// syncEntries godoc
// @Summary Replay offline entries
// @Description Replays a batch of offline creates/updates. Items succeed or fail independently.
// @Tags time-entries
// @Accept json
// @Produce json
// @Param batch body dto.SyncEntriesRequest true "Offline batch"
// @Success 200 {object} dto.SyncEntriesResponse
// @Security BearerAuth
// @Router /time-entries/sync [post]
func (h *timeEntryHandler) syncEntries(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	var req dto.SyncEntriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	results := h.timeEntryService.SyncEntries(c.Request.Context(), caller, req.Entries)
	c.JSON(http.StatusOK, dto.SyncEntriesResponse{Results: results})
}

func (h *timeEntryHandler) getEntry(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	entry, err := h.timeEntryService.GetEntry(c.Request.Context(), caller, c.Param("entry_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *timeEntryHandler) updateEntry(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	var req dto.UpdateTimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.timeEntryService.UpdateEntry(c.Request.Context(), caller, c.Param("entry_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *timeEntryHandler) deleteEntry(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	if err := h.timeEntryService.DeleteEntry(c.Request.Context(), caller, c.Param("entry_id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// addAttachment godoc
// @Summary Attach a file to a time entry
// @Tags time-entries
// @Accept multipart/form-data
// @Produce json
// @Param entry_id path string true "Entry ID"
// @Param file formData file true "File to attach"
// @Success 201 {object} domain.Attachment
// @Security BearerAuth
// @Router /time-entries/{entry_id}/attachments [post]
func (h *timeEntryHandler) addAttachment(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A file field is required"})
		return
	}
	if header.Size > h.maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File exceeds the maximum upload size"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	attachment, err := h.timeEntryService.AddAttachment(c.Request.Context(), caller, c.Param("entry_id"), portssvc.AttachmentUpload{
		OriginalName: header.Filename,
		MimeType:     header.Header.Get("Content-Type"),
		Size:         header.Size,
		Content:      file,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, attachment)
}

func (h *timeEntryHandler) deleteAttachment(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	err := h.timeEntryService.DeleteAttachment(c.Request.Context(), caller, c.Param("entry_id"), c.Param("attachment_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
