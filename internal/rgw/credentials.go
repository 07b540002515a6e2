package rgw

import "github.com/dmitrijs2005/rgwadmin/internal/common"

// Credentials is an access/secret key pair for the admin API. The pair is
// opaque to this package and never logged.
type Credentials struct {
	AccessKey string
	SecretKey string
}

func (c Credentials) complete() bool {
	return c.AccessKey != "" && c.SecretKey != ""
}

// resolveCredentials picks the credential pair for an admin session: the
// settings-supplied pair when complete, otherwise the first daemon that
// embeds a full pair.
func resolveCredentials(accessKey, secretKey string, daemons []Daemon) (Credentials, error) {
	if c := (Credentials{AccessKey: accessKey, SecretKey: secretKey}); c.complete() {
		return c, nil
	}
	for _, d := range daemons {
		if c := (Credentials{AccessKey: d.AccessKey, SecretKey: d.SecretKey}); c.complete() {
			return c, nil
		}
	}
	return Credentials{}, common.ErrNoCredentials
}
