package database

import (
	"gorm.io/gorm"
)

type Database struct {
	userRepo           *UserRepo
	mediaRepo          *MediaRepo
	resumeRepo         *ResumeRepo
	postRepo           *PostRepo
	projectRepo        *ProjectRepo
	educationRepo      *EducationRepo
	experienceRepo     *ExperienceRepo
	testimonialRepo    *TestimonialRepo
	contactMessageRepo *ContactMessageRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		userRepo:           NewUserRepo(db),
		mediaRepo:          NewMediaRepo(db),
		resumeRepo:         NewResumeRepo(db),
		postRepo:           NewPostRepo(db),
		projectRepo:        NewProjectRepo(db),
		educationRepo:      NewEducationRepo(db),
		experienceRepo:     NewExperienceRepo(db),
		testimonialRepo:    NewTestimonialRepo(db),
		contactMessageRepo: NewContactMessageRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) MediaRepo() *MediaRepo {
	return d.mediaRepo
}

func (d Database) ResumeRepo() *ResumeRepo {
	return d.resumeRepo
}

func (d Database) PostRepo() *PostRepo {
	return d.postRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) EducationRepo() *EducationRepo {
	return d.educationRepo
}

func (d Database) ExperienceRepo() *ExperienceRepo {
	return d.experienceRepo
}

func (d Database) TestimonialRepo() *TestimonialRepo {
	return d.testimonialRepo
}

func (d Database) ContactMessageRepo() *ContactMessageRepo {
	return d.contactMessageRepo
}
