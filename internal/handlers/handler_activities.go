package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/veckotid/time_tracking_app/internal/core/domain"
	portsrepo "github.com/veckotid/time_tracking_app/internal/core/ports/repositories"
	portssvc "github.com/veckotid/time_tracking_app/internal/core/ports/services"
	"github.com/veckotid/time_tracking_app/internal/dto"
)

type activityHandler struct {
	activityService portssvc.ActivitySvcFacade
}

func newActivityHandler(activityService portssvc.ActivitySvcFacade) *activityHandler {
	return &activityHandler{activityService: activityService}
}

func registerActivityRoutes(rg *gin.RouterGroup, activityService portssvc.ActivitySvcFacade) {
	h := newActivityHandler(activityService)

	activities := rg.Group("/activities")
	{
		activities.POST("", h.createActivity)
		activities.GET("", h.listActivities)
		activities.GET("/:activity_id", h.getActivity)
		activities.PUT("/:activity_id", h.updateActivity)
	}
}

// createActivity godoc
// @Summary Create an activity code
// @Tags activities
// @Accept json
// @Produce json
// @Param activity body dto.CreateActivityRequest true "Activity details"
// @Success 201 {object} domain.Activity
// @Failure 409 {object} map[string]string "Activity code already in use"
// @Security BearerAuth
// @Router /activities [post]
func (h *activityHandler) createActivity(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	activity, err := h.activityService.CreateActivity(c.Request.Context(), caller, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, activity)
}

func (h *activityHandler) listActivities(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	filter := portsrepo.ActivityFilter{}
	if raw := c.Query("category"); raw != "" {
		category := domain.ActivityCategory(raw)
		filter.Category = &category
	}
	if raw := c.Query("active"); raw != "" {
		active := raw == "true"
		filter.Active = &active
	}

	activities, err := h.activityService.ListActivities(c.Request.Context(), caller, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activities)
}

func (h *activityHandler) getActivity(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	activity, err := h.activityService.GetActivity(c.Request.Context(), caller, c.Param("activity_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activity)
}

func (h *activityHandler) updateActivity(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	var req dto.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	activity, err := h.activityService.UpdateActivity(c.Request.Context(), caller, c.Param("activity_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activity)
}
