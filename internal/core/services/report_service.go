package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/veckotid/time_tracking_app/internal/apperrors"
	"github.com/veckotid/time_tracking_app/internal/core/domain"
	portsrepo "github.com/veckotid/time_tracking_app/internal/core/ports/repositories"
	portssvc "github.com/veckotid/time_tracking_app/internal/core/ports/services"
	"github.com/veckotid/time_tracking_app/internal/dto"
	"github.com/veckotid/time_tracking_app/internal/utils/timeweek"
)

// utf8BOM prefixes every CSV export so spreadsheet applications detect the
// encoding and render non-ASCII names correctly.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// reportService derives payroll and invoice exports from approved entries.
type reportService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	projectRepo   portsrepo.ProjectRepository
	entryRepo     portsrepo.TimeEntryRepository
	lockRepo      portsrepo.WeekLockRepository
	settingsRepo  portsrepo.SettingsRepository
}

// NewReportService creates a new reporting service.
func NewReportService(
	reportingRepo portsrepo.ReportingRepository,
	projectRepo portsrepo.ProjectRepository,
	entryRepo portsrepo.TimeEntryRepository,
	lockRepo portsrepo.WeekLockRepository,
	settingsRepo portsrepo.SettingsRepository,
	auditRepo portsrepo.AuditLogRepository,
) portssvc.ReportingSvcFacade {
	return &reportService{
		BaseService:   BaseService{auditRepo: auditRepo},
		reportingRepo: reportingRepo,
		projectRepo:   projectRepo,
		entryRepo:     entryRepo,
		lockRepo:      lockRepo,
		settingsRepo:  settingsRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportService)(nil)

func validatePeriod(from, to time.Time) error {
	if from.IsZero() || to.IsZero() {
		return fmt.Errorf("%w: from and to are required", apperrors.ErrValidation)
	}
	if to.Before(from) {
		return fmt.Errorf("%w: to must not be before from", apperrors.ErrValidation)
	}
	return nil
}

// formatHours renders hours with a decimal comma, the convention of the
// payroll systems these exports are imported into.
func formatHours(h float64) string {
	return strings.ReplaceAll(strconv.FormatFloat(h, 'f', 2, 64), ".", ",")
}

// formatAmount renders a money amount with two decimals and a decimal comma.
func formatAmount(d decimal.Decimal) string {
	return strings.ReplaceAll(d.StringFixed(2), ".", ",")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (s *reportService) SalaryReport(ctx context.Context, caller domain.Caller, from time.Time, to time.Time, userID *string) (*dto.SalaryReportResponse, error) {
	if err := requireReviewer(caller); err != nil {
		return nil, err
	}
	if err := validatePeriod(from, to); err != nil {
		return nil, err
	}

	rows, err := s.reportingRepo.SalaryRows(ctx, caller.CompanyID, from, to, userID)
	if err != nil {
		return nil, err
	}

	summary := make(map[string]map[string]float64)
	seen := make(map[string]struct{})
	totalHours := 0.0
	for _, row := range rows {
		if summary[row.UserName] == nil {
			summary[row.UserName] = make(map[string]float64)
		}
		summary[row.UserName][row.ActivityCode] += row.Hours
		seen[row.UserID] = struct{}{}
		totalHours += row.Hours
	}

	return &dto.SalaryReportResponse{
		Period: dto.ReportPeriod{
			From: from.Format("2006-01-02"),
			To:   to.Format("2006-01-02"),
		},
		Rows:    rows,
		Summary: summary,
		Totals: dto.SalaryReportTotals{
			TotalHours:  totalHours,
			UniqueUsers: len(seen),
		},
	}, nil
}

func (s *reportService) SalaryReportCSV(ctx context.Context, caller domain.Caller, from time.Time, to time.Time, userID *string) (*portssvc.CSVExport, error) {
	report, err := s.SalaryReport(ctx, caller, from, to, userID)
	if err != nil {
		return nil, err
	}
	settings, err := s.settingsRepo.GetOrCreateSettings(ctx, caller.CompanyID)
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	buf.Write(utf8BOM)
	w := csv.NewWriter(buf)
	w.Comma = rune(settings.CsvDelimiter[0])

	if err := w.Write([]string{"Anställd", "Datum", "Aktivitetskod", "Aktivitet", "Timmar", "Projekt", "Kommentar"}); err != nil {
		return nil, err
	}
	for _, row := range report.Rows {
		record := []string{
			row.UserName,
			row.Date.Format("2006-01-02"),
			row.ActivityCode,
			row.ActivityName,
			formatHours(row.Hours),
			deref(row.ProjectCode),
			deref(row.Note),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	s.auditExport(ctx, caller, "SalaryReport", report.Period)
	return &portssvc.CSVExport{
		Filename: fmt.Sprintf("loneunderlag-%s-%s.csv", report.Period.From, report.Period.To),
		Content:  buf.Bytes(),
	}, nil
}

func (s *reportService) InvoiceReport(ctx context.Context, caller domain.Caller, from time.Time, to time.Time, customerID *string, projectID *string) (*dto.InvoiceReportResponse, error) {
	if err := requireReviewer(caller); err != nil {
		return nil, err
	}
	if err := validatePeriod(from, to); err != nil {
		return nil, err
	}

	rows, err := s.reportingRepo.InvoiceRows(ctx, caller.CompanyID, from, to, customerID, projectID)
	if err != nil {
		return nil, err
	}
	settings, err := s.settingsRepo.GetOrCreateSettings(ctx, caller.CompanyID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.InvoiceReportRowResponse, 0, len(rows))
	groups := make(map[string]*dto.InvoiceProjectGroup)
	groupAmounts := make(map[string]decimal.Decimal)
	order := make([]string, 0)
	totalHours := 0.0
	totalAmount := decimal.Zero

	for _, row := range rows {
		amount := row.Amount()
		out = append(out, dto.InvoiceReportRowResponse{
			InvoiceReportRow: row,
			Rate:             row.Rate().StringFixed(2),
			Amount:           amount.StringFixed(2),
		})

		group, ok := groups[row.ProjectID]
		if !ok {
			group = &dto.InvoiceProjectGroup{
				ProjectID:   row.ProjectID,
				ProjectName: row.ProjectName,
				ProjectCode: row.ProjectCode,
			}
			groups[row.ProjectID] = group
			order = append(order, row.ProjectID)
		}
		group.TotalHours += row.Hours
		groupAmounts[row.ProjectID] = groupAmounts[row.ProjectID].Add(amount)

		totalHours += row.Hours
		totalAmount = totalAmount.Add(amount)
	}

	byProject := make([]dto.InvoiceProjectGroup, 0, len(order))
	for _, id := range order {
		group := groups[id]
		group.TotalAmount = groupAmounts[id].StringFixed(2)
		byProject = append(byProject, *group)
	}

	vat := totalAmount.Mul(decimal.NewFromFloat(settings.VatRate)).Div(decimal.NewFromInt(100))
	return &dto.InvoiceReportResponse{
		Period: dto.ReportPeriod{
			From: from.Format("2006-01-02"),
			To:   to.Format("2006-01-02"),
		},
		Rows:      out,
		ByProject: byProject,
		Totals: dto.InvoiceReportTotals{
			TotalHours:  totalHours,
			TotalAmount: totalAmount.StringFixed(2),
			VatAmount:   vat.StringFixed(2),
			GrandTotal:  totalAmount.Add(vat).StringFixed(2),
		},
	}, nil
}

func (s *reportService) InvoiceReportCSV(ctx context.Context, caller domain.Caller, from time.Time, to time.Time, customerID *string, projectID *string) (*portssvc.CSVExport, error) {
	report, err := s.InvoiceReport(ctx, caller, from, to, customerID, projectID)
	if err != nil {
		return nil, err
	}
	settings, err := s.settingsRepo.GetOrCreateSettings(ctx, caller.CompanyID)
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	buf.Write(utf8BOM)
	w := csv.NewWriter(buf)
	w.Comma = rune(settings.CsvDelimiter[0])

	header := []string{"Kund", "Projekt", "Projektkod", "Datum", "Aktivitet", "Anställd", "Timmar", "Timpris", "Belopp", "Kommentar"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range report.Rows {
		record := []string{
			deref(row.CustomerName),
			row.ProjectName,
			row.ProjectCode,
			row.Date.Format("2006-01-02"),
			row.ActivityName,
			row.UserName,
			formatHours(row.Hours),
			strings.ReplaceAll(row.Rate, ".", ","),
			strings.ReplaceAll(row.Amount, ".", ","),
			deref(row.Note),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	// Totals block: net, VAT and gross as trailing rows.
	totalsRows := [][]string{
		{"", "", "", "", "", "Summa", formatHours(report.Totals.TotalHours), "", strings.ReplaceAll(report.Totals.TotalAmount, ".", ","), ""},
		{"", "", "", "", "", fmt.Sprintf("Moms (%s%%)", strconv.FormatFloat(settings.VatRate, 'f', -1, 64)), "", "", strings.ReplaceAll(report.Totals.VatAmount, ".", ","), ""},
		{"", "", "", "", "", "Totalt inkl. moms", "", "", strings.ReplaceAll(report.Totals.GrandTotal, ".", ","), ""},
	}
	for _, record := range totalsRows {
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	s.auditExport(ctx, caller, "InvoiceReport", report.Period)
	return &portssvc.CSVExport{
		Filename: fmt.Sprintf("fakturaunderlag-%s-%s.csv", report.Period.From, report.Period.To),
		Content:  buf.Bytes(),
	}, nil
}

func (s *reportService) auditExport(ctx context.Context, caller domain.Caller, reportType string, period dto.ReportPeriod) {
	s.Audit(ctx, caller, domain.AuditExport, reportType, "", nil, period)
	s.LogInfo(ctx, "Report exported",
		slog.String("report_type", reportType),
		slog.String("from", period.From),
		slog.String("to", period.To))
}

func (s *reportService) ProjectReport(ctx context.Context, caller domain.Caller, projectID string, from *time.Time, to *time.Time) (*dto.ProjectReportResponse, error) {
	if err := requireReviewer(caller); err != nil {
		return nil, err
	}
	project, err := s.projectRepo.FindProjectByID(ctx, caller.CompanyID, projectID)
	if err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.ListEntries(ctx, caller.CompanyID, portsrepo.TimeEntryFilter{
		ProjectID: &projectID,
		From:      from,
		To:        to,
	})
	if err != nil {
		return nil, err
	}

	summary := domain.ProjectReportSummary{
		BudgetHours: project.BudgetHours,
		ByUser:      make(map[string]float64),
		ByActivity:  make(map[string]float64),
	}
	for _, e := range entries {
		summary.TotalHours += e.Hours
		if e.Billable {
			summary.BillableHours += e.Hours
		}
		summary.ByUser[e.UserID] += e.Hours
		summary.ByActivity[e.ActivityID] += e.Hours
	}
	if project.BudgetHours != nil {
		remaining := *project.BudgetHours - summary.TotalHours
		summary.BudgetRemaining = &remaining
	}

	return &dto.ProjectReportResponse{
		Project: project,
		Entries: entries,
		Summary: summary,
	}, nil
}

func (s *reportService) Dashboard(ctx context.Context, caller domain.Caller, now time.Time) (*dto.DashboardResponse, error) {
	weekStart := timeweek.WeekStart(now)
	weekEnd := timeweek.WeekEnd(weekStart)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	weekHours, err := s.reportingRepo.SumHours(ctx, caller.CompanyID, caller.UserID, weekStart, weekEnd, false)
	if err != nil {
		return nil, err
	}
	monthHours, err := s.reportingRepo.SumHours(ctx, caller.CompanyID, caller.UserID, monthStart, monthEnd, false)
	if err != nil {
		return nil, err
	}
	state, err := s.lockRepo.FindLockState(ctx, caller.CompanyID, caller.UserID, weekStart)
	if err != nil {
		return nil, err
	}
	activeProjects, err := s.reportingRepo.CountActiveProjects(ctx, caller.CompanyID)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		WeekHours:      weekHours,
		MonthHours:     monthHours,
		WeekLockStatus: state.Status(),
		ActiveProjects: activeProjects,
	}
	if caller.Role.CanReview() {
		pending, err := s.lockRepo.CountPending(ctx, caller.CompanyID)
		if err != nil {
			return nil, err
		}
		resp.PendingCount = &pending
	}
	return resp, nil
}
