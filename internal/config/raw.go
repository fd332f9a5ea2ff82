package config

// RawConfig mirrors Config with optional fields so that only keys present in
// the file override defaults.
type RawConfig struct {
	TaskbarReservation *int           `yaml:"taskbar_reservation"`
	DefaultAnchor      *string        `yaml:"default_anchor"`
	IgnoreTaskbar      *bool          `yaml:"ignore_taskbar"`
	Resolution         *RawResolution `yaml:"resolution"`
	Display            *string        `yaml:"display"`
	Logging            *RawLogging    `yaml:"logging"`
}

type RawResolution struct {
	Width  *int `yaml:"width"`
	Height *int `yaml:"height"`
}

type RawLogging struct {
	Level  *string `yaml:"level"`
	Format *string `yaml:"format"`
}
