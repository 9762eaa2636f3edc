package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	portssvc "github.com/veckotid/time_tracking_app/internal/core/ports/services"
)

// reportHandler serves the payroll and invoice exports and the dashboard.
type reportHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportHandler(reportingService portssvc.ReportingSvcFacade) *reportHandler {
	return &reportHandler{reportingService: reportingService}
}

func registerReportRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/salary", h.salaryReport)
		reports.GET("/invoice", h.invoiceReport)
		reports.GET("/project/:project_id", h.projectReport)
	}
	rg.GET("/dashboard", h.dashboard)
}

// serveCSV writes a CSV export as a file download.
func serveCSV(c *gin.Context, export *portssvc.CSVExport) {
	c.Header("Content-Disposition", `attachment; filename="`+export.Filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", export.Content)
}

// salaryReport godoc
// @Summary Payroll export
// @Description Aggregates approved hours per user and activity code. format=csv returns a download.
// @Tags reports
// @Produce json
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Param userID query string false "Limit to one user"
// @Param format query string false "json (default) or csv"
// @Success 200 {object} dto.SalaryReportResponse
// @Security BearerAuth
// @Router /reports/salary [get]
func (h *reportHandler) salaryReport(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	from, ok := requireDateQuery(c, "from")
	if !ok {
		return
	}
	to, ok := requireDateQuery(c, "to")
	if !ok {
		return
	}
	userID := optionalStringQuery(c, "userID")

	if c.Query("format") == "csv" {
		export, err := h.reportingService.SalaryReportCSV(c.Request.Context(), caller, from, to, userID)
		if err != nil {
			respondError(c, err)
			return
		}
		serveCSV(c, export)
		return
	}

	report, err := h.reportingService.SalaryReport(c.Request.Context(), caller, from, to, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// invoiceReport godoc
// @Summary Invoice export
// @Description Prices approved billable hours through the rate chain and adds VAT. format=csv returns a download.
// @Tags reports
// @Produce json
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Param customerID query string false "Limit to one customer"
// @Param projectID query string false "Limit to one project"
// @Param format query string false "json (default) or csv"
// @Success 200 {object} dto.InvoiceReportResponse
// @Security BearerAuth
// @Router /reports/invoice [get]
func (h *reportHandler) invoiceReport(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	from, ok := requireDateQuery(c, "from")
	if !ok {
		return
	}
	to, ok := requireDateQuery(c, "to")
	if !ok {
		return
	}
	customerID := optionalStringQuery(c, "customerID")
	projectID := optionalStringQuery(c, "projectID")

	if c.Query("format") == "csv" {
		export, err := h.reportingService.InvoiceReportCSV(c.Request.Context(), caller, from, to, customerID, projectID)
		if err != nil {
			respondError(c, err)
			return
		}
		serveCSV(c, export)
		return
	}

	report, err := h.reportingService.InvoiceReport(c.Request.Context(), caller, from, to, customerID, projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// projectReport godoc
// @Summary Project drilldown
// @Tags reports
// @Produce json
// @Param project_id path string true "Project ID"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.ProjectReportResponse
// @Security BearerAuth
// @Router /reports/project/{project_id} [get]
func (h *reportHandler) projectReport(c *gin.Context) {
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

	report, err := h.reportingService.ProjectReport(c.Request.Context(), caller, c.Param("project_id"), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// dashboard godoc
// @Summary Dashboard summary
// @Description Hours this week and month, current week lock status and active project count. Reviewers also get the pending approval count.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *reportHandler) dashboard(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	summary, err := h.reportingService.Dashboard(c.Request.Context(), caller, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
