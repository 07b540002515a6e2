package rgw

import (
	"context"
	"fmt"
	"net/url"

	"github.com/dmitrijs2005/rgwadmin/internal/common"
)

const storageClassStandard = "STANDARD"

// Zone mirrors the daemon zone document returned by the admin API
// (GET <admin>/config?type=zone).
type Zone struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	PlacementPools []PlacementPool `json:"placement_pools"`
}

// PlacementPool is one entry of a zone's placement-pool list.
type PlacementPool struct {
	Key string `json:"key"`
	Val struct {
		IndexPool      string                  `json:"index_pool"`
		StorageClasses map[string]StorageClass `json:"storage_classes"`
	} `json:"val"`
}

type StorageClass struct {
	DataPool string `json:"data_pool"`
}

// PlacementTarget is a named storage policy and the data pool backing its
// STANDARD storage class.
type PlacementTarget struct {
	Name     string `json:"name"`
	DataPool string `json:"data_pool"`
}

// PlacementTargetsOutput is the aggregated placement view for the zone the
// selected daemon belongs to.
type PlacementTargetsOutput struct {
	Zonegroup string            `json:"zonegroup"`
	Targets   []PlacementTarget `json:"placement_targets"`
}

// ZoneInfo fetches the zone document of the selected daemon.
func (c *Client) ZoneInfo(ctx context.Context) (*Zone, error) {
	q := url.Values{}
	q.Set("type", "zone")

	var zone Zone
	if err := c.transport.getJSON(ctx, "config", q, &zone); err != nil {
		return nil, err
	}
	return &zone, nil
}

// PlacementTargets aggregates the zone's placement pools into placement
// targets, order preserved.
func (c *Client) PlacementTargets(ctx context.Context) (*PlacementTargetsOutput, error) {
	zone, err := c.ZoneInfo(ctx)
	if err != nil {
		return nil, err
	}
	targets, err := aggregatePlacementTargets(zone)
	if err != nil {
		return nil, err
	}
	return &PlacementTargetsOutput{Zonegroup: c.daemon.Zonegroup, Targets: targets}, nil
}

// aggregatePlacementTargets emits one target per placement-pool entry. An
// entry without a STANDARD storage class is malformed input and fails the
// whole call; nothing is synthesized or skipped.
func aggregatePlacementTargets(zone *Zone) ([]PlacementTarget, error) {
	targets := make([]PlacementTarget, 0, len(zone.PlacementPools))
	for _, pool := range zone.PlacementPools {
		sc, ok := pool.Val.StorageClasses[storageClassStandard]
		if !ok {
			return nil, fmt.Errorf("%w: placement target %q has no STANDARD storage class", common.ErrValidation, pool.Key)
		}
		targets = append(targets, PlacementTarget{Name: pool.Key, DataPool: sc.DataPool})
	}
	return targets, nil
}
