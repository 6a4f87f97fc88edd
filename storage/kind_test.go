package storage

import "testing"

func TestKindForContentType(t *testing.T) {
	cases := []struct {
		contentType string
		want        ResourceKind
	}{
		{"application/pdf", KindRaw},
		{"application/PDF", KindRaw},
		{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", KindRaw},
		// Legacy .doc carries neither "pdf" nor "document" in its MIME type,
		// so it falls in the image bucket like any other unrecognized type.
		{"application/msword", KindImage},
		{"image/png", KindImage},
		{"image/jpeg", KindImage},
		{"image/webp", KindImage},
		{"application/octet-stream", KindImage},
		{"", KindImage},
	}

	for _, tc := range cases {
		if got := KindForContentType(tc.contentType); got != tc.want {
			t.Errorf("KindForContentType(%q) = %s, want %s", tc.contentType, got, tc.want)
		}
	}
}
