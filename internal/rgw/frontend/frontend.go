// Package frontend parses RGW frontend configuration strings.
//
// A frontend config is the single line the gateway daemon reports for one
// of its network listeners, e.g.:
//
//	beast port=8000 ssl_port=443
//	civetweb port=127.0.0.1:8443s+8000
//
// Parse reduces such a line to the one (port, ssl) pair an API client
// should use to reach the daemon.
package frontend

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/rgwadmin/internal/common"
)

// Listener is the connection decision derived from a frontend config string.
type Listener struct {
	Port int
	SSL  bool
}

const (
	defaultPlainPort  = 80
	defaultSecurePort = 443
)

// Parse derives the port and TLS flag from a daemon frontend configuration
// string. Options are scanned left to right; secure options (ssl_port,
// ssl_endpoint, civetweb's "s" suffix) always beat plain ones, and within
// the same class the last occurrence wins. An endpoint without an explicit
// port falls back to 80 (plain) or 443 (secure).
//
// Only the "beast" and "civetweb" frontends are recognized. If no usable
// option is present the returned error wraps common.ErrFrontendParse and
// quotes the full config string.
func Parse(config string) (Listener, error) {
	fields := strings.Fields(config)
	if len(fields) < 2 {
		return Listener{}, parseError(config)
	}

	// -1 means "not seen yet" for either priority class.
	secure, plain := -1, -1

	switch fields[0] {
	case "beast":
		for _, opt := range fields[1:] {
			key, value, ok := strings.Cut(opt, "=")
			if !ok {
				continue
			}
			switch key {
			case "ssl_port":
				if p, err := strconv.Atoi(value); err == nil {
					secure = p
				}
			case "port":
				if p, err := strconv.Atoi(value); err == nil {
					plain = p
				}
			case "ssl_endpoint":
				if p, ok := endpointPort(value, defaultSecurePort); ok {
					secure = p
				}
			case "endpoint":
				if p, ok := endpointPort(value, defaultPlainPort); ok {
					plain = p
				}
			}
		}
	case "civetweb":
		for _, opt := range fields[1:] {
			key, value, ok := strings.Cut(opt, "=")
			if !ok {
				continue
			}
			switch key {
			case "ssl_port":
				if p, err := strconv.Atoi(value); err == nil {
					secure = p
				}
			case "port":
				if p, ssl, ok := civetwebPort(value); ok {
					if ssl {
						secure = p
					} else {
						plain = p
					}
				}
			}
		}
	default:
		return Listener{}, parseError(config)
	}

	switch {
	case secure >= 0:
		return Listener{Port: secure, SSL: true}, nil
	case plain >= 0:
		return Listener{Port: plain, SSL: false}, nil
	default:
		return Listener{}, parseError(config)
	}
}

// endpointPort extracts the port from an endpoint value such as
// "192.0.2.3:8000", "[::1]:8443" or a bare host. IPv6 literals are always
// bracketed, so the trailing ":port" is only split after the closing
// bracket. A missing or non-numeric port yields the class default.
func endpointPort(value string, def int) (int, bool) {
	if value == "" {
		return 0, false
	}
	if strings.HasPrefix(value, "[") {
		end := strings.IndexByte(value, ']')
		if end < 0 {
			return 0, false
		}
		rest := value[end+1:]
		if rest == "" {
			return def, true
		}
		if strings.HasPrefix(rest, ":") {
			if p, err := strconv.Atoi(rest[1:]); err == nil {
				return p, true
			}
		}
		return 0, false
	}
	if i := strings.LastIndexByte(value, ':'); i >= 0 {
		if p, err := strconv.Atoi(value[i+1:]); err == nil {
			return p, true
		}
		// Trailing piece is not a port number; treat the whole value
		// as a host with no explicit port.
	}
	return def, true
}

// civetwebPort evaluates a civetweb "port=" value. The value may carry an
// optional endpoint prefix and a '+'-separated list of sub-specs, each
// optionally suffixed with 's' to mark TLS. Only the first sub-spec decides
// the candidate; the remainder of the list shares its fate.
func civetwebPort(value string) (port int, ssl bool, ok bool) {
	first := value
	if i := strings.IndexByte(value, '+'); i >= 0 {
		first = value[:i]
	}

	spec := first
	if strings.HasPrefix(first, "[") {
		end := strings.IndexByte(first, ']')
		if end < 0 || !strings.HasPrefix(first[end+1:], ":") {
			return 0, false, false
		}
		spec = first[end+2:]
	} else if i := strings.LastIndexByte(first, ':'); i >= 0 {
		spec = first[i+1:]
	}

	if strings.HasSuffix(spec, "s") {
		ssl = true
		spec = strings.TrimSuffix(spec, "s")
	}
	p, err := strconv.Atoi(spec)
	if err != nil {
		return 0, false, false
	}
	return p, ssl, true
}

func parseError(config string) error {
	return fmt.Errorf("%w from %q", common.ErrFrontendParse, config)
}
