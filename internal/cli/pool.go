package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/rgwadmin/internal/rgw"
)

// daemonRecord is one entry of an orchestrator daemon export file.
type daemonRecord struct {
	ID              string   `json:"id"`
	Host            string   `json:"host"`
	FrontendConfigs []string `json:"frontend_configs"`
	Zone            string   `json:"zone"`
	Zonegroup       string   `json:"zonegroup"`
	AccessKey       string   `json:"access_key"`
	SecretKey       string   `json:"secret_key"`
}

// filePool adapts a daemon export file to rgw.DaemonPool. The orchestration
// layer that discovers running daemons is an external collaborator; this
// stand-in consumes its exported snapshot. An empty path yields an empty
// pool, which the client builder reports as "no RGW service is running".
type filePool struct {
	path string
}

func (p *filePool) Daemons(_ context.Context) ([]rgw.Daemon, error) {
	if p.path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, fmt.Errorf("read daemon export: %w", err)
	}
	var records []daemonRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse daemon export %q: %w", p.path, err)
	}

	daemons := make([]rgw.Daemon, 0, len(records))
	for _, r := range records {
		daemons = append(daemons, rgw.Daemon{
			ID:              r.ID,
			Host:            r.Host,
			FrontendConfigs: r.FrontendConfigs,
			Zone:            r.Zone,
			Zonegroup:       r.Zonegroup,
			AccessKey:       r.AccessKey,
			SecretKey:       r.SecretKey,
		})
	}
	return daemons, nil
}
