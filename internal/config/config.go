package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Storage  StorageConfig
}

// AppConfig 应用配置
type AppConfig struct {
	Name        string
	Environment string
	Version     string
	Debug       bool
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Host         string
	Port         int
	Mode         string
	ReadTimeout  int
	WriteTimeout int
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	DBName       string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  int
}

// StorageConfig 文件目录配置
// 三个模型目录按 projectId 建子目录，documents 目录存放图纸文件
type StorageConfig struct {
	Root          string
	DocumentsDir  string
	ModelsDir     string
	UnassignedDir string
	TagsDir       string
	ConvertersDir string
}

var globalConfig *Config

// Load 加载配置
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// 配置文件可选，缺省时用默认值加环境变量
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	// 环境变量
	v.SetEnvPrefix("PIDBACKEND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	globalConfig = &cfg
	return &cfg, nil
}

// Get 获取全局配置
func Get() *Config {
	if globalConfig == nil {
		panic("config not loaded")
	}
	return globalConfig
}

// GetDSN 获取数据库连接字符串
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// GetAddr 获取服务器地址
func (c *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DocumentsPath 图纸文件目录绝对路径
func (c *StorageConfig) DocumentsPath() string {
	return filepath.Join(c.Root, c.DocumentsDir)
}

// ModelsPath 已转换模型目录
func (c *StorageConfig) ModelsPath() string {
	return filepath.Join(c.Root, c.ModelsDir)
}

// UnassignedPath 未分配模型目录
func (c *StorageConfig) UnassignedPath() string {
	return filepath.Join(c.Root, c.UnassignedDir)
}

// TagsPath 已分配标签模型目录
func (c *StorageConfig) TagsPath() string {
	return filepath.Join(c.Root, c.TagsDir)
}

// ConvertersPath 转换器可执行文件目录
func (c *StorageConfig) ConvertersPath() string {
	return filepath.Join(c.Root, c.ConvertersDir)
}

func setDefaults(v *viper.Viper) {
	// App
	v.SetDefault("app.name", "pods-pid-backend")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.debug", true)

	// Server
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.readTimeout", 30)
	v.SetDefault("server.writeTimeout", 30)

	// Database
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.dbname", "pods_pid")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 5)
	v.SetDefault("database.maxLifetime", 300)

	// Storage
	v.SetDefault("storage.root", ".")
	v.SetDefault("storage.documentsDir", "documents")
	v.SetDefault("storage.modelsDir", "models")
	v.SetDefault("storage.unassignedDir", "unassignedModels")
	v.SetDefault("storage.tagsDir", "tags")
	v.SetDefault("storage.convertersDir", "converters")
}
