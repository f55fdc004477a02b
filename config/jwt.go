package config

type JWT struct {
	// 簽發 access token 的密鑰
	SecretKey string `mapstructure:"SECRET_KEY" json:"secret_key" yaml:"secret_key"`
	// token 有效時間（分鐘），預設 60
	ExpireMinutes int    `mapstructure:"EXPIRE_MINUTES" json:"expire_minutes" yaml:"expire_minutes"`
	Issuer        string `mapstructure:"ISSUER" json:"issuer" yaml:"issuer"`
}
