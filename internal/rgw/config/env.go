package config

import (
	"os"
	"strconv"
)

// Environment keys match the names of the corresponding keys in the
// external settings store.
const (
	EnvAccessKey     = "RGW_API_ACCESS_KEY"
	EnvSecretKey     = "RGW_API_SECRET_KEY"
	EnvHost          = "RGW_API_HOST"
	EnvPort          = "RGW_API_PORT"
	EnvSSLVerify     = "RGW_API_SSL_VERIFY"
	EnvAdminResource = "RGW_API_ADMIN_RESOURCE"
)

// applyEnv overlays s with values from RGW_API_* environment variables.
// Unset or empty variables leave the current value untouched.
func (s *Settings) applyEnv() {
	if v := os.Getenv(EnvAccessKey); v != "" {
		s.AccessKey = v
	}
	if v := os.Getenv(EnvSecretKey); v != "" {
		s.SecretKey = v
	}
	if v := os.Getenv(EnvHost); v != "" {
		s.Host = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		s.Port = v
	}
	if v := os.Getenv(EnvSSLVerify); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			s.SSLVerify = b
		}
	}
	if v := os.Getenv(EnvAdminResource); v != "" {
		s.AdminResource = v
	}
}
