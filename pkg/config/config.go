package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig    `mapstructure:"app"`
	DB     DBConfig     `mapstructure:"db"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Kafka  KafkaConfig  `mapstructure:"kafka"`
	Events EventsConfig `mapstructure:"events"`
	Key    KeyConfig    `mapstructure:"key"`
}

type AppConfig struct {
	Env      string `mapstructure:"env"`
	HttpPort string `mapstructure:"http_port"`
	GrpcPort string `mapstructure:"grpc_port"`
}

type DBConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
}

type EventsConfig struct {
	MQType string `mapstructure:"mq_type"` // "redis", "kafka" or "none"
	Topic  string `mapstructure:"topic"`
}

type KeyConfig struct {
	Network     string `mapstructure:"network"`     // mainnet, testnet3, regtest, simnet, signet
	SeedBits    int    `mapstructure:"seed_bits"`   // 默认种子位数
	Fingerprint string `mapstructure:"fingerprint"` // blake3, sha256, keccak256
}

// DSN 返回 gorm postgres 驱动使用的连接串
func (c DBConfig) DSN() string {
	return "host=" + c.Host + " user=" + c.User + " password=" + c.Password +
		" dbname=" + c.Name + " port=" + c.Port + " sslmode=disable TimeZone=UTC"
}

// URL 返回 golang-migrate 使用的连接串
func (c DBConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + c.Port + "/" + c.Name + "?sslmode=disable"
}

var Global Config

func Init() {
	if err := Load(viper.GetViper(), &Global); err != nil {
		log.Fatalf("Fatal error config file: %s \n", err)
	}
	log.Printf("Configuration loaded successfully. Env: %s", Global.App.Env)
}

// Load 读取配置文件与环境变量到 out，缺少配置文件时只使用默认值
func Load(v *viper.Viper, out *Config) error {
	v.SetConfigName("config") // name of config file (without extension)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// 环境变量: KEY_NETWORK 覆盖 key.network
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
		log.Printf("Warning: Config file not found, using defaults and environment variables")
	}

	return v.Unmarshal(out)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("app.http_port", "8080")
	v.SetDefault("app.grpc_port", "50051")

	v.SetDefault("db.enabled", false)
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "hdkey_user")
	v.SetDefault("db.password", "hdkey_password")
	v.SetDefault("db.name", "hdkey_db")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)

	v.SetDefault("kafka.brokers", []string{"localhost:9092"})

	v.SetDefault("events.mq_type", "none")
	v.SetDefault("events.topic", "hdkey_events")

	v.SetDefault("key.network", "mainnet")
	v.SetDefault("key.seed_bits", 192)
	v.SetDefault("key.fingerprint", "blake3")
}
