package model

import (
	"time"
)

// UnknownValue is the fallback for undetected client signature fields.
const UnknownValue = "Unknown"

// ClickEvent represents one recorded visit to a short code. Events are
// append-only and survive deletion of the link they reference.
type ClickEvent struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	LinkCode   string    `json:"link_code" gorm:"type:varchar(32);index;not null"`
	Timestamp  time.Time `json:"timestamp" gorm:"index;autoCreateTime"`
	DeviceType string    `json:"device_type" gorm:"type:varchar(32)"`
	Browser    string    `json:"browser" gorm:"type:varchar(32)"`
	OS         string    `json:"os" gorm:"type:varchar(32)"`
	City       string    `json:"city,omitempty" gorm:"type:varchar(64)"`
	Country    string    `json:"country,omitempty" gorm:"type:varchar(64)"`
	Referer    string    `json:"referer,omitempty" gorm:"type:varchar(512)"`
	ClientIP   string    `json:"client_ip" gorm:"type:varchar(64)"`
}

// TableName returns the table name for ClickEvent
func (ClickEvent) TableName() string {
	return "click_events"
}

// Click is the raw material handed to the recorder on the redirect path.
// Classification and geo lookup happen off the hot path.
type Click struct {
	LinkCode  string    `json:"link_code"`
	UserAgent string    `json:"user_agent"`
	Referer   string    `json:"referer"`
	ClientIP  string    `json:"client_ip"`
	Timestamp time.Time `json:"timestamp"`
}

// Rollup represents aggregated click counts for a single link
type Rollup struct {
	Code        string           `json:"code"`
	TotalClicks int64            `json:"total_clicks"`
	ByDevice    map[string]int64 `json:"by_device"`
	ByBrowser   map[string]int64 `json:"by_browser"`
	ByOS        map[string]int64 `json:"by_os"`
	ByCountry   map[string]int64 `json:"by_country"`
	ByDay       map[string]int64 `json:"by_day"`
}

// EmptyRollup returns an all-zero rollup for a link with no recorded clicks
func EmptyRollup(code string) *Rollup {
	return &Rollup{
		Code:      code,
		ByDevice:  map[string]int64{},
		ByBrowser: map[string]int64{},
		ByOS:      map[string]int64{},
		ByCountry: map[string]int64{},
		ByDay:     map[string]int64{},
	}
}
