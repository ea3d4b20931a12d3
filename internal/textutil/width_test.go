package textutil

import "testing"

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"ascii", "notes.txt", 9},
		{"cjk", "你好", 4},
		{"mixed", "a你b", 4},
		{"empty", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayWidth(tt.text); got != tt.want {
				t.Fatalf("DisplayWidth(%q)=%d want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exact", 5, "exact"},
		{"verylongname", 6, "veryl…"},
		{"abc", 1, "…"},
		{"abc", 0, ""},
		{"你好世界", 5, "你好…"},
	}
	for _, tt := range tests {
		if got := TruncateToWidth(tt.text, tt.width); got != tt.want {
			t.Fatalf("TruncateToWidth(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestTruncateLeft(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"/home/user", 20, "/home/user"},
		{"/home/user/projects", 9, "…projects"},
		{"/abc", 1, "…"},
		{"/abc", 0, ""},
	}
	for _, tt := range tests {
		if got := TruncateLeft(tt.text, tt.width); got != tt.want {
			t.Fatalf("TruncateLeft(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}
