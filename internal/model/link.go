package model

import (
	"time"
)

// Link represents a short link entity
type Link struct {
	ID             int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Code           string    `json:"code" gorm:"type:varchar(32);uniqueIndex;not null"`
	DestinationURL string    `json:"destination_url" gorm:"type:varchar(2048);not null"`
	OwnerID        string    `json:"owner_id" gorm:"type:varchar(64);index;not null"`
	IsCustomAlias  bool      `json:"is_custom_alias"`
	QRCodeRef      string    `json:"qr_code_ref" gorm:"type:varchar(64)"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName returns the table name for Link
func (Link) TableName() string {
	return "links"
}

// CreateLinkRequest represents the request to create a short link
type CreateLinkRequest struct {
	DestinationURL string `json:"destination_url" binding:"required"`
	Alias          string `json:"alias"`
}

// CreateLinkResponse represents the response of link creation
type CreateLinkResponse struct {
	ShortURL       string    `json:"short_url"`
	Code           string    `json:"code"`
	DestinationURL string    `json:"destination_url"`
	IsCustomAlias  bool      `json:"is_custom_alias"`
	QRCodeRef      string    `json:"qr_code_ref"`
	CreatedAt      time.Time `json:"created_at"`
}
