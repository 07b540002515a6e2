// Package config loads runtime settings for the RGW admin client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Settings).LoadDefaults).
//  2. Optional JSON file (see applyJSON).
//  3. RGW_API_* environment variables (see applyEnv).
//
// Command-line flags, when present, are overlaid by the CLI after Load and
// take precedence over all of the above.
package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/rgwadmin/internal/common"
)

// Settings holds the connection parameters for one gateway admin session.
//
// AccessKey/SecretKey/Host/Port follow the external settings-store
// convention: an empty string means "unset". Port stays a string for the
// same reason; use PortNumber for the numeric value.
type Settings struct {
	AccessKey      string
	SecretKey      string
	Host           string
	Port           string
	SSLVerify      bool
	AdminResource  string
	Region         string
	RequestTimeout time.Duration
}

// LoadDefaults populates s with sensible defaults.
func (s *Settings) LoadDefaults() {
	s.SSLVerify = true
	s.AdminResource = "admin"
	s.Region = "us-east-1"
	s.RequestTimeout = 45 * time.Second
}

// Load constructs Settings, applies defaults, then overlays values from an
// optional JSON file and from RGW_API_* environment variables. Later
// sources take precedence over earlier ones.
func Load(jsonPath string) (*Settings, error) {
	s := &Settings{}
	s.LoadDefaults()
	if err := s.applyJSON(jsonPath); err != nil {
		return nil, err
	}
	s.applyEnv()
	return s, nil
}

// PortNumber returns the port override as an integer, 0 meaning unset.
func (s *Settings) PortNumber() (int, error) {
	if s.Port == "" {
		return 0, nil
	}
	p, err := strconv.Atoi(s.Port)
	if err != nil || p <= 0 {
		return 0, fmt.Errorf("%w: invalid RGW API port %q", common.ErrValidation, s.Port)
	}
	return p, nil
}
