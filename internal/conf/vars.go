package conf

// Conf is the process-wide configuration. When modifying it directly, trigger
// eventType.ConfigUpdated manually or go through Override.
var Conf *Config

type Config struct {
	Site     Site     `json:"site"`
	Login    Login    `json:"login"`
	Plugins  Plugins  `json:"plugins"`
	Database Database `json:"database"`
	Listen   string   `json:"listen"`
}

type Site struct {
	Sitename    string `json:"sitename"`
	Description string `json:"description"`
	AllowCors   bool   `json:"allow_cors"`
	Theme       string `json:"theme"`
}

type Login struct {
	// ApiKey guards mutating plugin endpoints when non-empty.
	ApiKey string `json:"api_key"`
}

type Plugins struct {
	Dir          string `json:"dir"`           // external plugin directory
	AutoDiscover bool   `json:"auto_discover"` // rescan the plugin directory periodically
}

type Database struct {
	DatabaseType string `json:"database_type"` // sqlite, mysql
	DatabaseFile string `json:"database_file"`
	DatabaseHost string `json:"database_host"`
	DatabasePort string `json:"database_port"`
	DatabaseUser string `json:"database_user"`
	DatabasePass string `json:"database_pass"`
	DatabaseName string `json:"database_name"`
}
