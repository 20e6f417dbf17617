package config

import "time"

type SCMM struct {
	BaseURL string `env:"SCMM_BASE_URL" envDefault:"https://rust.scmm.app/api" validate:"url"`

	// Timeout bounds every outbound SCMM call; there are no retries.
	Timeout time.Duration `env:"SCMM_TIMEOUT" envDefault:"20s" validate:"gt=0"`
}
