package util

import "testing"

func TestFileLimitLow(t *testing.T) {
	tests := []struct {
		limit FileLimit
		want  bool
	}{
		{FileLimit{Soft: 256, Hard: 65536}, true},
		{FileLimit{Soft: 4096, Hard: 512}, true},
		{FileLimit{Soft: 1024, Hard: 1024}, false},
		{FileLimit{Soft: 65536, Hard: 1 << 20}, false},
	}
	for _, tt := range tests {
		if got := tt.limit.Low(); got != tt.want {
			t.Errorf("%+v.Low() = %v, want %v", tt.limit, got, tt.want)
		}
	}
}
