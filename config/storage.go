package config

import (
	"os"
	"path/filepath"
	"time"
)

// ReplicaBackend selects where the credential replica lives.
type ReplicaBackend string

const (
	// ReplicaBackendFile mirrors the credential into a local cookie file.
	ReplicaBackendFile ReplicaBackend = "file"
	// ReplicaBackendRedis mirrors the credential into Redis for edge
	// routers running out of process.
	ReplicaBackendRedis ReplicaBackend = "redis"
)

// StorageConfig contains credential storage configuration.
type StorageConfig struct {
	// StateDir is where the durable token slot and the file replica live.
	// Defaults to $HOME/.eventdesk (or a temp dir when HOME is unset).
	StateDir string `env:"STATE_DIR" envDefault:""`

	// ReplicaBackend selects the replica slot implementation.
	ReplicaBackend ReplicaBackend `env:"REPLICA_BACKEND" envDefault:"file"`

	// ReplicaTTL bounds the replica's lifetime.
	ReplicaTTL time.Duration `env:"REPLICA_TTL" envDefault:"168h"`

	// Redis configuration, used when ReplicaBackend is "redis".
	Redis RedisConfig `envPrefix:"REDIS_"`
}

// RedisConfig contains Redis connection configuration for the replica slot.
type RedisConfig struct {
	// Addr is the Redis address.
	Addr string `env:"ADDR" envDefault:"localhost:6379"`

	// Password is the Redis password (optional).
	Password string `env:"PASSWORD" envDefault:""`

	// DB is the Redis database index.
	DB int `env:"DB" envDefault:"0"`
}

// Sanitize applies guardrails to storage configuration values.
func (s *StorageConfig) Sanitize() {
	if s.StateDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			s.StateDir = filepath.Join(home, ".eventdesk")
		} else {
			s.StateDir = filepath.Join(os.TempDir(), "eventdesk")
		}
	}

	if s.ReplicaBackend != ReplicaBackendRedis {
		s.ReplicaBackend = ReplicaBackendFile
	}

	// Clamp the replica lifetime: at least a minute, at most 30 days
	if s.ReplicaTTL < time.Minute {
		s.ReplicaTTL = time.Minute
	}
	if s.ReplicaTTL > 30*24*time.Hour {
		s.ReplicaTTL = 30 * 24 * time.Hour
	}
}

// TokenPath returns the durable slot's file path.
func (s *StorageConfig) TokenPath() string {
	return filepath.Join(s.StateDir, "token.json")
}

// ReplicaPath returns the file replica's path.
func (s *StorageConfig) ReplicaPath() string {
	return filepath.Join(s.StateDir, "auth-token.cookie")
}
