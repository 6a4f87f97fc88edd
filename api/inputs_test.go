package api

import (
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

func TestPostInputValidateSlugFormat(t *testing.T) {
	cases := []struct {
		slug string
		ok   bool
	}{
		{"hello-world", true},
		{"a", true},
		{"post-2024-recap", true},
		{"Hello-World", false},
		{"hello_world", false},
		{"hello world", false},
		{"-leading", false},
		{"trailing-", false},
		{"double--dash", false},
		{"", false},
	}

	for _, tc := range cases {
		in := PostInput{Title: "t", Slug: tc.slug, Excerpt: "e", Content: "c"}
		fields := in.Validate()
		_, hasSlugError := fields["slug"]
		if tc.ok && hasSlugError {
			t.Errorf("slug %q should be accepted, got %v", tc.slug, fields["slug"])
		}
		if !tc.ok && !hasSlugError {
			t.Errorf("slug %q should be rejected", tc.slug)
		}
	}
}

func TestPostInputValidateRequiredFields(t *testing.T) {
	fields := PostInput{}.Validate()
	for _, field := range []string{"title", "slug", "excerpt", "content"} {
		if len(fields[field]) == 0 {
			t.Errorf("expected error for %q", field)
		}
	}
}

func TestPostInputValidateCoverImageURL(t *testing.T) {
	in := PostInput{Title: "t", Slug: "s", Excerpt: "e", Content: "c", CoverImageURL: strPtr("not a url")}
	if fields := in.Validate(); len(fields["coverImageUrl"]) == 0 {
		t.Error("expected coverImageUrl error")
	}

	in.CoverImageURL = strPtr("https://cdn.example.com/img.png")
	if fields := in.Validate(); len(fields) != 0 {
		t.Errorf("expected clean validation, got %v", fields)
	}
}

func TestProjectInputValidateGalleryURLs(t *testing.T) {
	in := ProjectInput{
		Title:       "t",
		Slug:        "s",
		Description: "d",
		GalleryURLs: []string{"https://cdn.example.com/a.png", "junk"},
	}
	if fields := in.Validate(); len(fields["galleryUrls"]) == 0 {
		t.Error("expected galleryUrls error for invalid entry")
	}
}

func TestEducationInputValidateDateOrder(t *testing.T) {
	start := time.Date(2020, 9, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(-1, 0, 0)
	in := EducationInput{School: "s", Degree: "d", StartDate: start, EndDate: &end}
	if fields := in.Validate(); len(fields["endDate"]) == 0 {
		t.Error("expected endDate error when end precedes start")
	}

	end = start.AddDate(3, 0, 0)
	in.EndDate = &end
	if fields := in.Validate(); len(fields) != 0 {
		t.Errorf("expected clean validation, got %v", fields)
	}
}

func TestExperienceInputValidateOpenEnded(t *testing.T) {
	in := ExperienceInput{
		Title:     "Engineer",
		Company:   "Acme",
		StartDate: time.Date(2022, 1, 10, 0, 0, 0, 0, time.UTC),
	}
	if fields := in.Validate(); len(fields) != 0 {
		t.Errorf("open-ended entry should validate, got %v", fields)
	}
}

func TestContactInputValidateEmail(t *testing.T) {
	in := ContactInput{Name: "Visitor", Email: "not-an-email", Message: "hi"}
	if fields := in.Validate(); len(fields["email"]) == 0 {
		t.Error("expected email error")
	}

	in.Email = "visitor@example.com"
	if fields := in.Validate(); len(fields) != 0 {
		t.Errorf("expected clean validation, got %v", fields)
	}
}

func TestContactInputValidateMessageLength(t *testing.T) {
	long := make([]byte, 5001)
	for i := range long {
		long[i] = 'a'
	}
	in := ContactInput{Name: "Visitor", Email: "visitor@example.com", Message: string(long)}
	if fields := in.Validate(); len(fields["message"]) == 0 {
		t.Error("expected message length error")
	}
}

func TestResumeInputValidate(t *testing.T) {
	in := ResumeInput{}
	fields := in.Validate()
	for _, field := range []string{"title", "fileUrl", "publicId"} {
		if len(fields[field]) == 0 {
			t.Errorf("expected error for %q", field)
		}
	}

	in = ResumeInput{Title: "2026 Resume", FileURL: "https://cdn.example.com/r.pdf", PublicID: "r.pdf"}
	if fields := in.Validate(); len(fields) != 0 {
		t.Errorf("expected clean validation, got %v", fields)
	}
}
