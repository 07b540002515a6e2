package rgw

import (
	"context"
	"net/url"
)

type realmList struct {
	DefaultInfo string   `json:"default_info"`
	Realms      []string `json:"realms"`
}

// Realms returns the realm names known to the gateway. A gateway without
// multisite configured answers with an empty document; that yields an
// empty list, not an error.
func (c *Client) Realms(ctx context.Context) ([]string, error) {
	q := url.Values{}
	q.Set("list", "")

	var rl realmList
	if err := c.transport.getJSON(ctx, "realm", q, &rl); err != nil {
		return nil, err
	}
	if rl.Realms == nil {
		return []string{}, nil
	}
	return rl.Realms, nil
}
