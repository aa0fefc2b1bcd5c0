package arguments

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Arguments
	}{
		{
			name: "no arguments runs help",
			args: nil,
			want: Arguments{Command: "help"},
		},
		{
			name: "command only",
			args: []string{"list"},
			want: Arguments{Command: "list"},
		},
		{
			name: "album flag",
			args: []string{"list", "-a", "summer"},
			want: Arguments{Command: "list", Album: "summer"},
		},
		{
			name: "both flags in any order",
			args: []string{"upload", "-a", "summer", "-p", "/photos"},
			want: Arguments{Command: "upload", Path: "/photos", Album: "summer"},
		},
		{
			name: "first occurrence wins",
			args: []string{"download", "-p", "/one", "-p", "/two", "-a", "x"},
			want: Arguments{Command: "download", Path: "/one", Album: "x"},
		},
		{
			name: "trailing flag without value",
			args: []string{"upload", "-p", "/photos", "-a"},
			want: Arguments{Command: "upload", Path: "/photos"},
		},
		{
			name: "unknown command kept as is",
			args: []string{"sync", "-a", "summer"},
			want: Arguments{Command: "sync", Album: "summer"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.args))
		})
	}
}
