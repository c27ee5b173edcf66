package config

import (
	"github.com/pitabwire/frame/config"
)

// HookConfig holds configuration for the fulfillment hook service.
type HookConfig struct {
	config.ConfigurationDefault
	Timezone   string `envDefault:"America/New_York" env:"TIMEZONE"`
	RefDataDir string `envDefault:""                 env:"REFDATA_DIR"`
}
