package config

type Configuration struct {
	App       App             `mapstructure:"APP" json:"app" yaml:"app"`
	JWT       JWT             `mapstructure:"JWT" json:"jwt" yaml:"jwt"`
	Redis     Redis           `mapstructure:"REDIS" json:"redis" yaml:"redis"`
	Log       Log             `mapstructure:"LOG" json:"log" yaml:"log"`
	MongoDB   MongoDB         `mapstructure:"MONGODB" json:"mongodb" yaml:"mongodb"`
	Storage   Storage         `mapstructure:"STORAGE" json:"storage" yaml:"storage"`
	Intake    Intake          `mapstructure:"INTAKE" json:"intake" yaml:"intake"`
	Telemetry TelemetryConfig `mapstructure:"TELEMETRY" yaml:"telemetry"`
	Fluentd   Fluentd         `mapstructure:"FLUENTD" yaml:"fluentd"`
}
