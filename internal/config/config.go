package config

import "github.com/spf13/viper"

type Config struct {
	ServerPort    string `mapstructure:"SERVER_PORT"`
	PostgresURL   string `mapstructure:"POSTGRES_URL"`
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	JWTSecret     string `mapstructure:"JWT_SECRET"`

	// GateSecretHash, when set, is the bcrypt hash of the patrol password.
	// GateSecret is the plaintext fallback for local development.
	GateSecret     string `mapstructure:"GATE_SECRET"`
	GateSecretHash string `mapstructure:"GATE_SECRET_HASH"`

	FTPHost     string `mapstructure:"FTP_HOST"`
	FTPUser     string `mapstructure:"FTP_USER"`
	FTPPassword string `mapstructure:"FTP_PASSWORD"`
	DistDir     string `mapstructure:"DIST_DIR"`
	RemoteBase  string `mapstructure:"REMOTE_BASE"`
}

func Load() Config {
	viper.AutomaticEnv()
	viper.SetDefault("SERVER_PORT", ":8080")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("JWT_SECRET", "dev-secret-change-me")
	viper.SetDefault("GATE_SECRET", "crosscut")
	viper.SetDefault("DIST_DIR", "dist")
	viper.SetDefault("REMOTE_BASE", "/trails.gennetten.org")

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
