package rgw

import (
	"context"
	"net/url"
)

// User describes an RGW user account as returned by the admin API.
type User struct {
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Suspended   int       `json:"suspended"`
	MaxBuckets  int       `json:"max_buckets"`
	Keys        []UserKey `json:"keys"`
}

// UserKey is one S3 key pair attached to a user.
type UserKey struct {
	User      string `json:"user"`
	AccessKey string `json:"access_key"`
	SecretKey string `json:"secret_key"`
}

// UserInfo fetches a user account by uid.
func (c *Client) UserInfo(ctx context.Context, uid string) (*User, error) {
	q := url.Values{}
	q.Set("uid", uid)

	var u User
	if err := c.transport.getJSON(ctx, "user", q, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
