package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	ServerAddress   string
	PostgresConn    string
	RedisAddr       string
	KafkaBrokers    []string
	ServiceName     string
	LogLevel        slog.Level
	LogFormat       string
	DefaultSupplier string
	SeedSampleData  bool
}

// Load reads the environment. Empty POSTGRES_CONN, REDIS_ADDR and KAFKA_BROKERS
// switch the matching backend off.
func Load() Config {
	return Config{
		ServerAddress:   getenv("SERVER_ADDRESS", ":8080"),
		PostgresConn:    getenv("POSTGRES_CONN", ""),
		RedisAddr:       getenv("REDIS_ADDR", ""),
		KafkaBrokers:    splitCSV(getenv("KAFKA_BROKERS", "")),
		ServiceName:     getenv("SERVICE_NAME", "buildmarket"),
		LogLevel:        parseLevel(getenv("LOG_LEVEL", "info")),
		LogFormat:       getenv("LOG_FORMAT", "text"),
		DefaultSupplier: getenv("DEFAULT_SUPPLIER", "Your Company"),
		SeedSampleData:  getbool("SEED_SAMPLE_DATA", true),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getbool(k string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(k))
	if err != nil {
		return def
	}
	return v
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func parseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}
