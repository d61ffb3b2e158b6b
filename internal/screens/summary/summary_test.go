package summary

import "testing"

func TestScoreMessage(t *testing.T) {
	tests := []struct {
		score, total int
		want         string
	}{
		{0, 10, scoreMessages[0]},
		{5, 10, scoreMessages[5]},
		{10, 10, scoreMessages[10]},
		{4, 4, scoreMessages[10]}, // short quiz, perfect
		{2, 4, scoreMessages[5]},
		{0, 0, ""},
	}
	for _, tt := range tests {
		if got := scoreMessage(tt.score, tt.total); got != tt.want {
			t.Errorf("scoreMessage(%d, %d) = %q, want %q", tt.score, tt.total, got, tt.want)
		}
	}
}
