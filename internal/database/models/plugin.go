package models

import "time"

// PluginRecord is a discovered external plugin manifest persisted across
// restarts so the dashboard can list plugins before the first rescan.
type PluginRecord struct {
	Id             string   `json:"id" gorm:"primaryKey;type:varchar(32)"`
	Name           string   `json:"name" gorm:"type:varchar(64)"`
	Author         string   `json:"author" gorm:"type:varchar(255)"`
	Version        string   `json:"version" gorm:"type:varchar(64)"`
	License        string   `json:"license" gorm:"type:varchar(64)"`
	Homepage       string   `json:"homepage" gorm:"type:varchar(255)"`
	DwcVersion     string   `json:"dwcVersion" gorm:"type:varchar(64)"`
	SbcPermissions []string `json:"sbcPermissions" gorm:"serializer:json"`
	Path           string   `json:"path" gorm:"type:varchar(255)"` // manifest location on disk
	Valid          bool     `json:"valid"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
