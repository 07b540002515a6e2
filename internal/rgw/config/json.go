package config

import (
	"encoding/json"
	"os"
	"time"
)

// jsonSettings is a DTO used exclusively for JSON unmarshalling. It relies
// on Duration so intervals can be given either as strings like "30s" or as
// integer nanoseconds.
type jsonSettings struct {
	AccessKey      *string   `json:"access_key"`
	SecretKey      *string   `json:"secret_key"`
	Host           *string   `json:"host"`
	Port           *string   `json:"port"`
	SSLVerify      *bool     `json:"ssl_verify"`
	AdminResource  *string   `json:"admin_resource"`
	Region         *string   `json:"region"`
	RequestTimeout *Duration `json:"request_timeout"`
}

// applyJSON overlays s with values from the JSON file at path. An empty
// path means no file is loaded. Only keys present in the document override
// the current values.
func (s *Settings) applyJSON(path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var js jsonSettings
	if err := json.Unmarshal(data, &js); err != nil {
		return err
	}

	if js.AccessKey != nil {
		s.AccessKey = *js.AccessKey
	}
	if js.SecretKey != nil {
		s.SecretKey = *js.SecretKey
	}
	if js.Host != nil {
		s.Host = *js.Host
	}
	if js.Port != nil {
		s.Port = *js.Port
	}
	if js.SSLVerify != nil {
		s.SSLVerify = *js.SSLVerify
	}
	if js.AdminResource != nil {
		s.AdminResource = *js.AdminResource
	}
	if js.Region != nil {
		s.Region = *js.Region
	}
	if js.RequestTimeout != nil {
		s.RequestTimeout = time.Duration(*js.RequestTimeout)
	}
	return nil
}
