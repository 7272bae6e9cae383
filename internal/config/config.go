package config

import "github.com/spf13/viper"

type Config struct {
	DBUrl              string `mapstructure:"DB_URL"`
	RedisAddr          string `mapstructure:"REDIS_ADDR"`
	ServerPort         string `mapstructure:"SERVER_PORT"`
	Env                string `mapstructure:"ENV"`
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	ExchangeRateAPIURL string `mapstructure:"EXCHANGERATE_API_URL"`
	ExchangeRateAPIKey string `mapstructure:"EXCHANGERATE_API_KEY"`
	OpenAIAPIKey       string `mapstructure:"OPENAI_API_KEY"`
	OpenAIModel        string `mapstructure:"OPENAI_MODEL"`
}

func Load() (Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("EXCHANGERATE_API_URL", "https://api.exchangerate.host")
	viper.SetDefault("OPENAI_MODEL", "gpt-3.5-turbo")

	if err := viper.ReadInConfig(); err != nil {
	}

	var cfg Config
	err := viper.Unmarshal(&cfg)
	return cfg, err
}
