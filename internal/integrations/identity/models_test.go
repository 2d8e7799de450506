package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/herlindaapr/beautybook-service/pkg/ptr"
)

func TestRawProfile_DisplayName(t *testing.T) {
	tests := []struct {
		name    string
		profile rawProfile
		want    string
	}{
		{
			name:    "name has highest priority",
			profile: rawProfile{Name: ptr.Ptr("Herlinda"), FirstName: ptr.Ptr("H."), UserName: ptr.Ptr("herlindaapr")},
			want:    "Herlinda",
		},
		{
			name:    "firstName wins over full_name",
			profile: rawProfile{FirstName: ptr.Ptr("Dina"), FullName: ptr.Ptr("Dina Putri")},
			want:    "Dina",
		},
		{
			name:    "full_name wins over userName",
			profile: rawProfile{FullName: ptr.Ptr("Dina Putri"), UserName: ptr.Ptr("dina99")},
			want:    "Dina Putri",
		},
		{
			name:    "userName used as last resort",
			profile: rawProfile{UserName: ptr.Ptr("dina99")},
			want:    "dina99",
		},
		{
			name:    "empty strings are skipped",
			profile: rawProfile{Name: ptr.Ptr(""), FirstName: ptr.Ptr("Dina")},
			want:    "Dina",
		},
		{
			name:    "no fields at all falls back to placeholder",
			profile: rawProfile{},
			want:    "Unknown Customer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.profile.displayName())
		})
	}
}
