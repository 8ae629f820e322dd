package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo_String(t *testing.T) {
	tests := []struct {
		name string
		info AppBuildInfo
		want string
	}{
		{
			name: "all set",
			info: NewAppBuildInfo("v1.2.0", "2026-10-01", "a1b2c3d"),
			want: "v1.2.0 (a1b2c3d, 2026-10-01)",
		},
		{
			name: "not injected",
			info: NewAppBuildInfo("", " ", ""),
			want: "N/A (N/A, N/A)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.String())
		})
	}
}
