package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port      string
	MongoURI  string
	MongoDB   string
	JWTSecret string
	JWTTTLHrs int
	Env       string
}

func Load() *Config {
	_ = godotenv.Load()
	ttl, err := strconv.Atoi(getEnv("JWT_TTL_HOURS", "24"))
	if err != nil {
		ttl = 24
	}

	c := &Config{
		Port:      getEnv("PORT", "8080"),
		MongoURI:  mustEnv("MONGO_URI"),
		MongoDB:   getEnv("MONGO_DB", "roomly"),
		JWTSecret: mustEnv("JWT_SECRET"),
		JWTTTLHrs: ttl,
		Env:       getEnv("ENV", "dev"),
	}
	logrus.Infof("config loaded: env=%s port=%s db=%s", c.Env, c.Port, c.MongoDB)
	return c
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		logrus.Fatalf("missing env: %s", k)
	}
	return v
}
