package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/veckotid/time_tracking_app/internal/core/domain"
	portsrepo "github.com/veckotid/time_tracking_app/internal/core/ports/repositories"
	portssvc "github.com/veckotid/time_tracking_app/internal/core/ports/services"
	"github.com/veckotid/time_tracking_app/internal/dto"
)

type projectHandler struct {
	projectService portssvc.ProjectSvcFacade
}

func newProjectHandler(projectService portssvc.ProjectSvcFacade) *projectHandler {
	return &projectHandler{projectService: projectService}
}

func registerProjectRoutes(rg *gin.RouterGroup, projectService portssvc.ProjectSvcFacade) {
	h := newProjectHandler(projectService)

	projects := rg.Group("/projects")
	{
		projects.POST("", h.createProject)
		projects.GET("", h.listProjects)
		projects.GET("/:project_id", h.getProject)
		projects.PUT("/:project_id", h.updateProject)
		projects.GET("/:project_id/entries", h.listProjectEntries)
	}
}

// createProject godoc
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Param project body dto.CreateProjectRequest true "Project details"
// @Success 201 {object} domain.Project
// @Failure 409 {object} map[string]string "Project code already in use"
// @Security BearerAuth
// @Router /projects [post]
func (h *projectHandler) createProject(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), caller, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// listProjects godoc
// @Summary List projects
// @Tags projects
// @Produce json
// @Param status query string false "Filter by status"
// @Param customerID query string false "Filter by customer"
// @Param active query bool false "Filter by active flag"
// @Success 200 {array} dto.ProjectResponse
// @Security BearerAuth
// @Router /projects [get]
func (h *projectHandler) listProjects(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	filter := portsrepo.ProjectFilter{CustomerID: optionalStringQuery(c, "customerID")}
	if raw := c.Query("status"); raw != "" {
		status := domain.ProjectStatus(raw)
		filter.Status = &status
	}
	if raw := c.Query("active"); raw != "" {
		active := raw == "true"
		filter.Active = &active
	}

	projects, err := h.projectService.ListProjects(c.Request.Context(), caller, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *projectHandler) getProject(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(c.Request.Context(), caller, c.Param("project_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *projectHandler) updateProject(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), caller, c.Param("project_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *projectHandler) listProjectEntries(c *gin.Context) {
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

	entries, err := h.projectService.ListProjectEntries(c.Request.Context(), caller, c.Param("project_id"), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
