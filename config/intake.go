package config

// Intake 公開應徵入口的流量限制
type Intake struct {
	RateLimitPerHour int `mapstructure:"RATE_LIMIT_PER_HOUR" json:"rate_limit_per_hour" yaml:"rate_limit_per_hour"`
}
