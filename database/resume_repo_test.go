package database

import (
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jmorel/portfolio-cms-backend/models"
)

// openTestDB connects to the database named by TEST_DATABASE_URL. These tests
// exercise real transaction behavior, so they skip without one.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("connect test database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Media{}, &models.Resume{}); err != nil {
		t.Fatalf("migrate test schema: %v", err)
	}

	t.Cleanup(func() {
		db.Exec("DELETE FROM resumes")
		db.Exec("DELETE FROM media")
		db.Exec("DELETE FROM users")
	})

	return db
}

func seedUser(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()

	user := &models.User{
		Name:  "Test Admin",
		Email: fmt.Sprintf("admin-%s@example.com", uuid.NewString()),
		Role:  models.RoleAdmin,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user.ID
}

func seedResume(t *testing.T, repo *ResumeRepo, userID uuid.UUID, title string) *models.Resume {
	t.Helper()

	resume := &models.Resume{
		Title:    title,
		FileURL:  fmt.Sprintf("https://cdn.example.com/%s.pdf", uuid.NewString()),
		UserID:   userID,
		IsPublic: true,
	}
	if err := repo.Add(resume); err != nil {
		t.Fatalf("seed resume %s: %v", title, err)
	}
	return resume
}

func TestSetDefaultLeavesExactlyOneDefault(t *testing.T) {
	db := openTestDB(t)
	repo := NewResumeRepo(db)
	userID := seedUser(t, db)

	first := seedResume(t, repo, userID, "First")
	second := seedResume(t, repo, userID, "Second")

	if err := repo.SetDefault(first.ID); err != nil {
		t.Fatalf("set first default: %v", err)
	}
	if err := repo.SetDefault(second.ID); err != nil {
		t.Fatalf("set second default: %v", err)
	}

	var count int64
	if err := db.Model(&models.Resume{}).Where("is_default = ?", true).Count(&count).Error; err != nil {
		t.Fatalf("count defaults: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one default, got %d", count)
	}

	current, err := repo.FindDefaultPublic()
	if err != nil {
		t.Fatalf("find default: %v", err)
	}
	if current.ID != second.ID {
		t.Fatalf("wrong default: got %s want %s", current.ID, second.ID)
	}
}

func TestSetDefaultConcurrentCalls(t *testing.T) {
	db := openTestDB(t)
	repo := NewResumeRepo(db)
	userID := seedUser(t, db)

	resumes := make([]*models.Resume, 5)
	for i := range resumes {
		resumes[i] = seedResume(t, repo, userID, fmt.Sprintf("Resume %d", i))
	}

	var wg sync.WaitGroup
	for _, resume := range resumes {
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			// Postgres may abort one of the racing transactions; the
			// invariant under test is the surviving state, not that every
			// call wins.
			_ = repo.SetDefault(id)
		}(resume.ID)
	}
	wg.Wait()

	var count int64
	if err := db.Model(&models.Resume{}).Where("is_default = ?", true).Count(&count).Error; err != nil {
		t.Fatalf("count defaults: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one default after concurrent promotion, got %d", count)
	}
}

func TestFindDefaultPublicPrefersNewest(t *testing.T) {
	db := openTestDB(t)
	repo := NewResumeRepo(db)
	userID := seedUser(t, db)

	older := seedResume(t, repo, userID, "Older")
	newer := seedResume(t, repo, userID, "Newer")

	// Two defaults can only come from writes outside SetDefault (a migrated
	// database, say); the tie goes to the newest created_at.
	if err := db.Model(&models.Resume{}).
		Where("id IN ?", []uuid.UUID{older.ID, newer.ID}).
		Update("is_default", true).Error; err != nil {
		t.Fatalf("flag both defaults: %v", err)
	}
	if err := db.Model(&models.Resume{}).Where("id = ?", older.ID).
		Update("created_at", "2020-01-01 00:00:00").Error; err != nil {
		t.Fatalf("backdate older resume: %v", err)
	}

	current, err := repo.FindDefaultPublic()
	if err != nil {
		t.Fatalf("find default: %v", err)
	}
	if current.ID != newer.ID {
		t.Fatalf("wrong default: got %s want newest %s", current.ID, newer.ID)
	}
}

func TestSetDefaultRejectsDeletedResume(t *testing.T) {
	db := openTestDB(t)
	repo := NewResumeRepo(db)
	userID := seedUser(t, db)

	resume := seedResume(t, repo, userID, "Doomed")
	if err := repo.SoftDelete(resume.ID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	if err := repo.SetDefault(resume.ID); err != gorm.ErrRecordNotFound {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestSoftDeleteClearsDefaultFlag(t *testing.T) {
	db := openTestDB(t)
	repo := NewResumeRepo(db)
	userID := seedUser(t, db)

	resume := seedResume(t, repo, userID, "Default")
	if err := repo.SetDefault(resume.ID); err != nil {
		t.Fatalf("set default: %v", err)
	}
	if err := repo.SoftDelete(resume.ID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	if _, err := repo.FindDefaultPublic(); err != gorm.ErrRecordNotFound {
		t.Fatalf("expected no default after delete, got %v", err)
	}

	all, err := repo.FindAll()
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	for _, r := range all {
		if r.ID == resume.ID {
			t.Fatal("deleted resume should not be listed")
		}
	}
}
