package config

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// BankConfig holds the console bank settings.
type BankConfig struct {
	Agency         string
	Limit          decimal.Decimal
	MaxWithdrawals int
	LogLevel       string
}

type rawBankConfig struct {
	Agency         string `mapstructure:"agencia"`
	Limit          string `mapstructure:"limite"`
	MaxWithdrawals int    `mapstructure:"limite_saques"`
	LogLevel       string `mapstructure:"log_level"`
}

// LoadBankConfig reads defaults, then an optional config file, then BANCO_*
// environment variables. With an empty path a "banco" file in the working
// directory is used when present.
func LoadBankConfig(path string) (*BankConfig, error) {
	v := viper.New()
	v.SetDefault("agencia", "0001")
	v.SetDefault("limite", "500")
	v.SetDefault("limite_saques", 3)
	v.SetDefault("log_level", "warn")

	v.SetEnvPrefix("BANCO")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("banco")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config: %w", err)
			}
		}
	}

	var raw rawBankConfig
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}

	limit, err := decimal.NewFromString(raw.Limit)
	if err != nil {
		return nil, fmt.Errorf("invalid limite %q: %w", raw.Limit, err)
	}
	if limit.IsNegative() {
		return nil, fmt.Errorf("limite must not be negative")
	}
	if raw.MaxWithdrawals < 0 {
		return nil, fmt.Errorf("limite_saques must not be negative")
	}
	if raw.Agency == "" {
		return nil, fmt.Errorf("agencia must not be empty")
	}

	return &BankConfig{
		Agency:         raw.Agency,
		Limit:          limit,
		MaxWithdrawals: raw.MaxWithdrawals,
		LogLevel:       raw.LogLevel,
	}, nil
}
