package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "test-secret")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.MongoDB != "roomly" {
		t.Errorf("expected default db roomly, got %s", cfg.MongoDB)
	}
	if cfg.JWTTTLHrs != 24 {
		t.Errorf("expected default ttl 24, got %d", cfg.JWTTTLHrs)
	}
	if cfg.Env != "dev" {
		t.Errorf("expected default env dev, got %s", cfg.Env)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("MONGO_DB", "rooms_test")
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("JWT_TTL_HOURS", "6")
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "prod")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.MongoURI != "mongodb://db:27017" {
		t.Errorf("unexpected uri %s", cfg.MongoURI)
	}
	if cfg.MongoDB != "rooms_test" {
		t.Errorf("unexpected db %s", cfg.MongoDB)
	}
	if cfg.JWTTTLHrs != 6 {
		t.Errorf("expected ttl 6, got %d", cfg.JWTTTLHrs)
	}
}

func TestLoadBadTTLFallsBack(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("JWT_TTL_HOURS", "not-a-number")

	cfg := Load()
	if cfg.JWTTTLHrs != 24 {
		t.Errorf("expected fallback ttl 24, got %d", cfg.JWTTTLHrs)
	}
}
