package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInfo(t *testing.T) {
	tests := []struct {
		name    string
		version string
		date    string
		commit  string
		want    Info
	}{
		{
			name:    "All values set",
			version: "1.2.3",
			date:    "2026-08-01",
			commit:  "abc1234",
			want:    Info{Version: "1.2.3", Date: "2026-08-01", Commit: "abc1234"},
		},
		{
			name: "Empty values become N/A",
			want: Info{Version: "N/A", Date: "N/A", Commit: "N/A"},
		},
		{
			name:    "Partially set",
			version: "1.2.3",
			want:    Info{Version: "1.2.3", Date: "N/A", Commit: "N/A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, *NewInfo(tt.version, tt.date, tt.commit))
		})
	}
}

func TestInfo_String(t *testing.T) {
	info := NewInfo("1.0.0", "2026-08-01", "abc1234")
	assert.Equal(t, "Version: 1.0.0, Date: 2026-08-01, Commit: abc1234", info.String())
}
