package models

import "time"

// Logical keys of the persisted tracker state
const (
	KeyExpenses      = "expenses"
	KeyBudgets       = "budgets"
	KeyMonthlyIncome = "monthlyIncome"
	KeyDarkMode      = "darkMode"
)

// KVRecord is one key of the durable key-value store
type KVRecord struct {
	Key       string    `gorm:"type:varchar(100);primaryKey" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for KVRecord
func (KVRecord) TableName() string {
	return "kv_records"
}
