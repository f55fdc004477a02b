package config

// Storage 遠端物件儲存服務（上傳應徵文件、大頭照）
type Storage struct {
	BaseURL      string `mapstructure:"BASE_URL" json:"base_url" yaml:"base_url"`
	APIKey       string `mapstructure:"API_KEY" json:"api_key" yaml:"api_key"`
	UploadFolder string `mapstructure:"UPLOAD_FOLDER" json:"upload_folder" yaml:"upload_folder"`
	// 單檔上限（MB），預設 5
	MaxFileSizeMB int64 `mapstructure:"MAX_FILE_SIZE_MB" json:"max_file_size_mb" yaml:"max_file_size_mb"`
}
