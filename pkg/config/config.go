package config

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Harness HarnessConfig `mapstructure:"harness"`
}

type AppConfig struct {
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
	HttpPort string `mapstructure:"http_port"`
}

type HarnessConfig struct {
	Mnemonic       string `mapstructure:"mnemonic"`        // 通常通过环境变量 HARNESS_MNEMONIC 传入
	Network        string `mapstructure:"network"`         // "main" or "test"
	AutomationFile string `mapstructure:"automation_file"` // 模拟器自动化脚本
}

// DefaultMnemonic 与模拟器的默认助记词一致
const DefaultMnemonic = "glory promote mansion idle axis finger extra february uncover one trip resource lawn turtle enact monster seven myth punch hobby comfort wild raise skin"

var Global Config

// Init 从 ./config.yaml 或 ./config/config.yaml 以及环境变量加载配置到 Global
func Init() {
	v := viper.New()
	v.SetConfigName("config") // name of config file (without extension)
	v.SetConfigType("yaml")   // REQUIRED if the config file does not have the extension in the name
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	cfg, err := Load(v)
	if err != nil {
		log.Fatalf("Fatal error config file: %s \n", err)
	}
	Global = cfg

	log.Printf("Configuration loaded successfully. Env: %s", Global.App.Env)
}

// Load 使用给定的 viper 实例加载配置。配置文件不存在时只使用默认值和环境变量。
func Load(v *viper.Viper) (Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
		log.Printf("Warning: Config file not found, using defaults and environment variables")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode into struct: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("app.log_level", "")
	v.SetDefault("app.http_port", "8080")

	v.SetDefault("harness.mnemonic", DefaultMnemonic)
	v.SetDefault("harness.network", "test")
	v.SetDefault("harness.automation_file", "")
}
