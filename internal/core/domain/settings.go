package domain

// Settings holds per-company configuration. One row per company, created with
// defaults on first read.
type Settings struct {
	SettingsID      string  `json:"settingsID"` // Primary Key (UUID)
	CompanyID       string  `json:"companyID"`
	VatRate         float64 `json:"vatRate"`
	WeekStartDay    int     `json:"weekStartDay"` // 1 = Monday; kept for export compatibility, week math is always ISO
	CsvDelimiter    string  `json:"csvDelimiter"`
	DefaultCurrency string  `json:"defaultCurrency"`
	ReminderTime    string  `json:"reminderTime"`
	ReminderEnabled bool    `json:"reminderEnabled"`
	// AdminEditLocked controls whether supervisors and admins may edit or
	// delete entries whose status is past DRAFT without unlocking the week
	// first.
	AdminEditLocked bool `json:"adminEditLocked"`
	AuditFields
}

// DefaultSettings returns the settings row created for a company on first use.
func DefaultSettings(companyID string) Settings {
	return Settings{
		CompanyID:       companyID,
		VatRate:         25,
		WeekStartDay:    1,
		CsvDelimiter:    ";",
		DefaultCurrency: "SEK",
		ReminderTime:    "15:30",
		ReminderEnabled: true,
		AdminEditLocked: true,
	}
}
