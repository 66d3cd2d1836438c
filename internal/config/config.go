// Package config загружает настройки сервера и клиента из флагов,
// переменных окружения POSTKEEPER_* и необязательного файла конфигурации.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "POSTKEEPER"

// flagBinding связывает ключ viper с именем флага
type flagBinding struct {
	key  string
	flag string
}

// newViper создает viper с общими правилами: env с префиксом, точки в ключах
// превращаются в подчеркивания (db.driver -> POSTKEEPER_DB_DRIVER)
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// bind привязывает флаги и читает файл конфигурации, если он указан
func bind(v *viper.Viper, fs *pflag.FlagSet, bindings []flagBinding) error {
	if fs == nil {
		return nil
	}

	for _, b := range bindings {
		f := fs.Lookup(b.flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(b.key, f); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", b.flag, err)
		}
	}

	if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
		v.SetConfigFile(f.Value.String())
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return nil
}
