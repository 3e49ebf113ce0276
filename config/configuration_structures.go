package config

type DatabaseConfig struct {
	DSN             string `yaml:"dsn"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	ConnMaxLifetime string `yaml:"conn_max_lifetime"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// S3Config : хранилище медиафайлов (AWS S3 или локальный MinIO)
type S3Config struct {
	Bucket        string `yaml:"bucket"`
	Region        string `yaml:"region"`
	Endpoint      string `yaml:"endpoint"`
	PublicBaseURL string `yaml:"public_base_url"`
	Local         bool   `yaml:"local"`
	AccessKey     string `yaml:"access_key"`
	SecretKey     string `yaml:"secret_key"`
}

// JWTConfig : у access и refresh токенов разные ключи подписи и время жизни
type JWTConfig struct {
	AccessSecret    string `yaml:"access_secret"`
	AccessTokenTTL  string `yaml:"access_token_ttl"`
	RefreshSecret   string `yaml:"refresh_secret"`
	RefreshTokenTTL string `yaml:"refresh_token_ttl"`
}

type CookieConfig struct {
	Secure bool   `yaml:"secure"`
	Domain string `yaml:"domain"`
}

type UploadConfig struct {
	TempDir   string `yaml:"temp_dir"`
	MaxMemory int64  `yaml:"max_memory"`
}

// TTL : время жизни кэша в секундах
type TTL struct {
	ChannelProfile int `yaml:"channel_profile"`
	PresignedURL   int `yaml:"presigned_url"`
}
