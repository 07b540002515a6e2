package rgw

import (
	"context"
	"net/url"
)

// BucketStats is the per-bucket statistics document of the admin API.
type BucketStats struct {
	Bucket    string `json:"bucket"`
	Zonegroup string `json:"zonegroup"`
	ID        string `json:"id"`
	Owner     string `json:"owner"`
	NumShards int    `json:"num_shards"`
}

// ListBuckets returns the names of all buckets known to the gateway.
func (c *Client) ListBuckets(ctx context.Context) ([]string, error) {
	var names []string
	if err := c.transport.getJSON(ctx, "bucket", nil, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// GetBucketStats fetches the statistics document for one bucket.
func (c *Client) GetBucketStats(ctx context.Context, bucket string) (*BucketStats, error) {
	q := url.Values{}
	q.Set("bucket", bucket)
	q.Set("stats", "true")

	var stats BucketStats
	if err := c.transport.getJSON(ctx, "bucket", q, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
