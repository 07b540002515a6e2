package rgw

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/rgwadmin/internal/common"
	"github.com/dmitrijs2005/rgwadmin/internal/rgw/frontend"
)

// Daemon describes one running gateway instance as reported by the
// orchestration layer. Descriptors are read-only to this package.
type Daemon struct {
	ID              string
	Host            string
	FrontendConfigs []string
	Zone            string
	Zonegroup       string

	// Credentials embedded in the daemon metadata, if any. Used as a
	// fallback when the settings store carries no key pair.
	AccessKey string
	SecretKey string
}

// DaemonPool lists the currently running gateway daemons. Implementations
// live outside this package (orchestrator integrations, test fixtures).
type DaemonPool interface {
	Daemons(ctx context.Context) ([]Daemon, error)
}

// listener resolves the daemon's frontend configuration(s) into a
// connection decision. Daemons may report several config strings
// (frontend_config#0, #1, ...); the first one that parses wins.
func (d Daemon) listener() (frontend.Listener, error) {
	var firstErr error
	for _, cfg := range d.FrontendConfigs {
		l, err := frontend.Parse(cfg)
		if err == nil {
			return l, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return frontend.Listener{}, firstErr
	}
	return frontend.Listener{}, fmt.Errorf("%w: daemon %q reports no frontend configuration", common.ErrFrontendParse, d.ID)
}

// selectDaemon picks exactly one daemon. Without an override the first
// daemon wins (the pool order is the caller's, and stable). With an
// override, the first daemon whose host and parsed frontend port match
// wins; an empty host or zero port matches anything.
func selectDaemon(daemons []Daemon, host string, port int) (Daemon, error) {
	if len(daemons) == 0 {
		return Daemon{}, common.ErrNoDaemons
	}
	if host == "" && port == 0 {
		return daemons[0], nil
	}
	for _, d := range daemons {
		if host != "" && d.Host != host {
			continue
		}
		if port != 0 {
			l, err := d.listener()
			if err != nil || l.Port != port {
				continue
			}
		}
		return d, nil
	}
	return Daemon{}, fmt.Errorf("%w: host=%q port=%d", common.ErrDaemonNotFound, host, port)
}
