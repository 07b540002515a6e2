package rgw

import (
	"testing"

	"github.com/dmitrijs2005/rgwadmin/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBucketLockParams_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mode    string
		days    string
		years   string
		wantMsg string
	}{
		{"empty mode", "", "1", "0", "must be either COMPLIANCE or GOVERNANCE"},
		{"unknown mode", "FAKE_MODE", "1", "0", "must be either COMPLIANCE or GOVERNANCE"},
		// Mode is checked first, even when the retention values are
		// also invalid.
		{"mode error wins over bad days", "", "null", "null", "must be either COMPLIANCE or GOVERNANCE"},
		{"nothing supplied", "COMPLIANCE", "", "", "must specify at least one"},
		{"zeros count as unset", "COMPLIANCE", "0", "0", "must specify at least one"},
		{"both supplied", "COMPLIANCE", "1", "1", "can't specify both"},
		{"non-numeric days", "COMPLIANCE", "null", "", "must be a positive integer"},
		{"non-numeric years", "COMPLIANCE", "", "null", "must be a positive integer"},
		{"negative days", "COMPLIANCE", "-1", "", "must be a positive integer"},
		{"negative years", "COMPLIANCE", "", "-1", "must be a positive integer"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, _, err := validateBucketLockParams(tc.mode, tc.days, tc.years)
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrValidation)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestValidateBucketLockParams_Valid(t *testing.T) {
	tests := []struct {
		mode      string
		days      string
		years     string
		wantMode  string
		wantDays  int32
		wantYears int32
	}{
		{"Compliance", "1", "", "COMPLIANCE", 1, 0},
		{"governance", "30", "0", "GOVERNANCE", 30, 0},
		{"COMPLIANCE", "", "1", "COMPLIANCE", 0, 1},
		{"GOVERNANCE", "0", "7", "GOVERNANCE", 0, 7},
	}
	for _, tc := range tests {
		t.Run(tc.mode+"/"+tc.days+"/"+tc.years, func(t *testing.T) {
			mode, days, years, err := validateBucketLockParams(tc.mode, tc.days, tc.years)
			require.NoError(t, err)
			assert.Equal(t, tc.wantMode, mode)
			assert.Equal(t, tc.wantDays, days)
			assert.Equal(t, tc.wantYears, years)
		})
	}
}
