package api

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// Validation mirrors what the dashboard forms enforce client-side so the API
// holds the line when called directly. Each input type returns a field to
// messages map; an empty map means the input is acceptable.

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func addError(fields map[string][]string, field, message string) {
	fields[field] = append(fields[field], message)
}

func validURL(raw string) bool {
	parsed, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return parsed.Scheme == "http" || parsed.Scheme == "https"
}

func validEmail(raw string) bool {
	_, err := mail.ParseAddress(raw)
	return err == nil
}

func checkSlug(fields map[string][]string, slug string) {
	if slug == "" {
		addError(fields, "slug", "Slug is required.")
	} else if !slugPattern.MatchString(slug) {
		addError(fields, "slug", "Slug may only contain lowercase letters, numbers and hyphens.")
	}
}

func checkOptionalURL(fields map[string][]string, field string, value *string) {
	if value != nil && *value != "" && !validURL(*value) {
		addError(fields, field, "Must be a valid URL.")
	}
}

type PostInput struct {
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Excerpt       string   `json:"excerpt"`
	Content       string   `json:"content"`
	Tags          []string `json:"tags"`
	Published     bool     `json:"published"`
	CoverImageURL *string  `json:"coverImageUrl"`
	SeoTitle      *string  `json:"seoTitle"`
	SeoDesc       *string  `json:"seoDesc"`
}

func (in PostInput) Validate() map[string][]string {
	fields := map[string][]string{}
	if strings.TrimSpace(in.Title) == "" {
		addError(fields, "title", "Title is required.")
	}
	checkSlug(fields, in.Slug)
	if strings.TrimSpace(in.Excerpt) == "" {
		addError(fields, "excerpt", "Excerpt is required.")
	}
	if strings.TrimSpace(in.Content) == "" {
		addError(fields, "content", "Content is required.")
	}
	checkOptionalURL(fields, "coverImageUrl", in.CoverImageURL)
	return fields
}

type ProjectInput struct {
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Description   string   `json:"description"`
	Content       *string  `json:"content"`
	Tags          []string `json:"tags"`
	LiveURL       *string  `json:"liveUrl"`
	RepoURL       *string  `json:"repoUrl"`
	CoverImageURL *string  `json:"coverImageUrl"`
	GalleryURLs   []string `json:"galleryUrls"`
	SeoTitle      *string  `json:"seoTitle"`
	SeoDesc       *string  `json:"seoDesc"`
}

func (in ProjectInput) Validate() map[string][]string {
	fields := map[string][]string{}
	if strings.TrimSpace(in.Title) == "" {
		addError(fields, "title", "Title is required.")
	}
	checkSlug(fields, in.Slug)
	if strings.TrimSpace(in.Description) == "" {
		addError(fields, "description", "Description is required.")
	}
	checkOptionalURL(fields, "liveUrl", in.LiveURL)
	checkOptionalURL(fields, "repoUrl", in.RepoURL)
	checkOptionalURL(fields, "coverImageUrl", in.CoverImageURL)
	for _, galleryURL := range in.GalleryURLs {
		if !validURL(galleryURL) {
			addError(fields, "galleryUrls", "Every gallery entry must be a valid URL.")
			break
		}
	}
	return fields
}

type ResumeInput struct {
	Title            string  `json:"title"`
	FileURL          string  `json:"fileUrl"`
	PublicID         string  `json:"publicId"`
	OriginalFilename *string `json:"originalFilename"`
	IsPublic         *bool   `json:"isPublic"`
}

func (in ResumeInput) Validate() map[string][]string {
	fields := map[string][]string{}
	if strings.TrimSpace(in.Title) == "" {
		addError(fields, "title", "Title is required.")
	}
	if in.FileURL == "" {
		addError(fields, "fileUrl", "File URL is required.")
	} else if !validURL(in.FileURL) {
		addError(fields, "fileUrl", "Must be a valid URL.")
	}
	if in.PublicID == "" {
		addError(fields, "publicId", "Public ID is required.")
	}
	return fields
}

type EducationInput struct {
	School      string     `json:"school"`
	Degree      string     `json:"degree"`
	Field       *string    `json:"field"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Grade       *string    `json:"grade"`
	Description *string    `json:"description"`
	Order       int        `json:"order"`
}

func (in EducationInput) Validate() map[string][]string {
	fields := map[string][]string{}
	if strings.TrimSpace(in.School) == "" {
		addError(fields, "school", "School is required.")
	}
	if strings.TrimSpace(in.Degree) == "" {
		addError(fields, "degree", "Degree is required.")
	}
	if in.StartDate.IsZero() {
		addError(fields, "startDate", "Start date is required.")
	}
	if in.EndDate != nil && !in.StartDate.IsZero() && in.EndDate.Before(in.StartDate) {
		addError(fields, "endDate", "End date must be after the start date.")
	}
	return fields
}

type ExperienceInput struct {
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    *string    `json:"location"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Description *string    `json:"description"`
	Order       int        `json:"order"`
}

func (in ExperienceInput) Validate() map[string][]string {
	fields := map[string][]string{}
	if strings.TrimSpace(in.Title) == "" {
		addError(fields, "title", "Title is required.")
	}
	if strings.TrimSpace(in.Company) == "" {
		addError(fields, "company", "Company is required.")
	}
	if in.StartDate.IsZero() {
		addError(fields, "startDate", "Start date is required.")
	}
	if in.EndDate != nil && !in.StartDate.IsZero() && in.EndDate.Before(in.StartDate) {
		addError(fields, "endDate", "End date must be after the start date.")
	}
	return fields
}

type TestimonialInput struct {
	Name      string  `json:"name"`
	Role      *string `json:"role"`
	Company   *string `json:"company"`
	Message   string  `json:"message"`
	AvatarURL *string `json:"avatarUrl"`
	Order     int     `json:"order"`
}

func (in TestimonialInput) Validate() map[string][]string {
	fields := map[string][]string{}
	if strings.TrimSpace(in.Name) == "" {
		addError(fields, "name", "Name is required.")
	}
	if strings.TrimSpace(in.Message) == "" {
		addError(fields, "message", "Message is required.")
	}
	checkOptionalURL(fields, "avatarUrl", in.AvatarURL)
	return fields
}

type ProfileInput struct {
	Name        string            `json:"name"`
	Image       *string           `json:"image"`
	Tagline     *string           `json:"tagline"`
	Bio         *string           `json:"bio"`
	Skills      []string          `json:"skills"`
	SocialLinks map[string]string `json:"socialLinks"`
}

func (in ProfileInput) Validate() map[string][]string {
	fields := map[string][]string{}
	if strings.TrimSpace(in.Name) == "" {
		addError(fields, "name", "Name is required.")
	}
	checkOptionalURL(fields, "image", in.Image)
	for _, link := range in.SocialLinks {
		if !validURL(link) {
			addError(fields, "socialLinks", "Every social link must be a valid URL.")
			break
		}
	}
	return fields
}

type ContactInput struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Subject *string `json:"subject"`
	Message string  `json:"message"`
}

func (in ContactInput) Validate() map[string][]string {
	fields := map[string][]string{}
	if strings.TrimSpace(in.Name) == "" {
		addError(fields, "name", "Name is required.")
	}
	if in.Email == "" {
		addError(fields, "email", "Email is required.")
	} else if !validEmail(in.Email) {
		addError(fields, "email", "Must be a valid email address.")
	}
	if strings.TrimSpace(in.Message) == "" {
		addError(fields, "message", "Message is required.")
	} else if len(in.Message) > 5000 {
		addError(fields, "message", "Message must be 5000 characters or fewer.")
	}
	return fields
}
