package services

import "testing"

func TestPublicIDFromURL(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://cdn.example.com/abc123.pdf", "abc123.pdf"},
		{"https://cdn.example.com/nested/path/key.png", "key.png"},
		{"https://cdn.example.com/key-no-ext", "key-no-ext"},
		{"https://cdn.example.com/trailing/", "trailing"},
		{"bare-key.jpg", "bare-key.jpg"},
	}

	for _, tc := range cases {
		if got := PublicIDFromURL(tc.url); got != tc.want {
			t.Errorf("PublicIDFromURL(%q) = %q, want %q", tc.url, got, tc.want)
		}
	}
}
