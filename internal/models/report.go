package models

import "time"

// ReportInput is the data rendered into an expense report
type ReportInput struct {
	Expenses    []Expense
	Summary     *Summary
	DarkMode    bool
	GeneratedAt time.Time
}

// Report is a rendered document ready for download
type Report struct {
	Filename    string
	ContentType string
	Content     []byte
}
