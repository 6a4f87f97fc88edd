package models

import (
	"fmt"
	"os"

	"gorm.io/gen"
	"gorm.io/gorm"
)

// GenerateQueryHelpers emits type-safe gorm query helpers for every table
// into ./query. Run with GENERATE_MODELS=true; the process exits afterwards
// instead of starting the server.
func GenerateQueryHelpers(db *gorm.DB) {
	if err := db.Exec("SELECT 1").Error; err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./query",
		Mode:    gen.WithoutContext | gen.WithDefaultQuery,
	})
	g.UseDB(db)
	g.ApplyBasic(
		User{},
		Media{},
		Resume{},
		Post{},
		Project{},
		Education{},
		Experience{},
		Testimonial{},
		ContactMessage{},
	)
	g.Execute()
}
