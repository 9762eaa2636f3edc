package dto

// UpdateSettingsRequest is the admin payload for updating company settings.
// Nil fields are left unchanged.
type UpdateSettingsRequest struct {
	VatRate         *float64 `json:"vatRate,omitempty" binding:"omitempty,gte=0,lte=100"`
	WeekStartDay    *int     `json:"weekStartDay,omitempty" binding:"omitempty,gte=0,lte=6"`
	CsvDelimiter    *string  `json:"csvDelimiter,omitempty"`
	DefaultCurrency *string  `json:"defaultCurrency,omitempty"`
	ReminderTime    *string  `json:"reminderTime,omitempty"`
	ReminderEnabled *bool    `json:"reminderEnabled,omitempty"`
	AdminEditLocked *bool    `json:"adminEditLocked,omitempty"`
}
