package config

// Config is the full service configuration.
type Config struct {
	Version string `yaml:"version" mapstructure:"version"`

	Storage    StorageConfig    `yaml:"storage" mapstructure:"storage"`
	Generation GenerationConfig `yaml:"generation" mapstructure:"generation"`
	Tools      ToolsConfig      `yaml:"tools" mapstructure:"tools"`
	Cache      CacheConfig      `yaml:"cache" mapstructure:"cache"`
	Mirror     MirrorConfig     `yaml:"mirror" mapstructure:"mirror"`
	Server     ServerConfig     `yaml:"server" mapstructure:"server"`
}

// StorageConfig locates the per-team history directory.
type StorageConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// GenerationConfig configures the Bedrock generation call.
type GenerationConfig struct {
	Enabled        bool    `yaml:"enabled" mapstructure:"enabled"`
	Region         string  `yaml:"region" mapstructure:"region"`
	ModelID        string  `yaml:"model_id" mapstructure:"model_id"`
	Temperature    float32 `yaml:"temperature" mapstructure:"temperature"`
	TopP           float32 `yaml:"top_p" mapstructure:"top_p"`
	MaxTokens      int32   `yaml:"max_tokens" mapstructure:"max_tokens"`
	TimeoutSeconds int     `yaml:"timeout_seconds" mapstructure:"timeout_seconds"`
}

// ToolsConfig configures the side-channel tool server.
type ToolsConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Addr    string `yaml:"addr" mapstructure:"addr"`
}

// CacheConfig configures the optional analysis result cache.
type CacheConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Path    string `yaml:"path" mapstructure:"path"`
}

// MirrorConfig configures the optional object-storage mirror.
type MirrorConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Region  string `yaml:"region" mapstructure:"region"`
	Bucket  string `yaml:"bucket" mapstructure:"bucket"`
	Prefix  string `yaml:"prefix" mapstructure:"prefix"`
}

// ServerConfig configures the HTTP front-end.
type ServerConfig struct {
	Addr string `yaml:"addr" mapstructure:"addr"`
}
