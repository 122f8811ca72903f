package config

import (
	"strings"

	"github.com/chapsplit-cli/chapsplit/constant"
	"github.com/chapsplit-cli/chapsplit/filesystem"
	"github.com/chapsplit-cli/chapsplit/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer converts dotted config keys into environment variable form.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup wires viper: registered defaults, environment bindings and the
// optional TOML config file. A missing config file is not an error.
func Setup() error {
	viper.SetConfigName(constant.Chapsplit)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Chapsplit)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}

	return nil
}
