// internal/workers/outreach/generate-cadence/config.go
package generatecadence

import "time"

type Config struct {
	Timeout       time.Duration
	AdvisoryIndex string
}

func LoadConfig() *Config {
	return &Config{
		Timeout:       60 * time.Second,
		AdvisoryIndex: "cadence-advisories",
	}
}
