package config

import "os"

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Storage: StorageConfig{
			Dir: "team_summaries",
		},
		Generation: GenerationConfig{
			Enabled:        true,
			Region:         "us-east-1",
			ModelID:        "us.amazon.nova-lite-v1:0",
			Temperature:    0.1,
			TopP:           0.9,
			MaxTokens:      4000,
			TimeoutSeconds: 3600,
		},
		Tools: ToolsConfig{
			Enabled: true,
			Addr:    "127.0.0.1:8001",
		},
		Cache: CacheConfig{
			Enabled: false,
			Path:    ".meetminding/cache.db",
		},
		Mirror: MirrorConfig{
			Enabled: false,
			Region:  "us-east-1",
			Prefix:  "team_summaries",
		},
		Server: ServerConfig{
			Addr: ":5001",
		},
	}
}

// WriteDefault writes a commented starter configuration to a file.
func WriteDefault(path string) error {
	content := `# Meet-Minding Configuration
version: "1"

# Where per-team meeting records are stored
storage:
  dir: team_summaries

# Bedrock generation call. Disable to run on pattern extraction only.
generation:
  enabled: true
  region: us-east-1
  model_id: us.amazon.nova-lite-v1:0
  temperature: 0.1
  top_p: 0.9
  max_tokens: 4000
  timeout_seconds: 3600

# Side-channel tool server
tools:
  enabled: true
  addr: 127.0.0.1:8001

# Analysis result cache (exact transcript match only)
cache:
  enabled: false
  path: .meetminding/cache.db

# Mirror saved records to S3
mirror:
  enabled: false
  region: us-east-1
  bucket: ""
  prefix: team_summaries

# HTTP front-end
server:
  addr: :5001
`
	return os.WriteFile(path, []byte(content), 0644)
}
