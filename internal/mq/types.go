package mq

import (
	"time"
)

// ClickMessage is the enriched click event carried over the message queue
type ClickMessage struct {
	LinkCode   string    `json:"link_code"`
	Timestamp  time.Time `json:"timestamp"`
	DeviceType string    `json:"device_type"`
	Browser    string    `json:"browser"`
	OS         string    `json:"os"`
	City       string    `json:"city,omitempty"`
	Country    string    `json:"country,omitempty"`
	Referer    string    `json:"referer,omitempty"`
	ClientIP   string    `json:"client_ip"`
}
