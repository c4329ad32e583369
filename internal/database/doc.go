// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup and migrations
//	├── users/           # User credential records
//	└── trends/          # Trending collection CRUD operations
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	// Initialize database connection
//	db, err := database.NewDatabase("./trending-collections.db")
//
//	// Create domain-specific repositories
//	userRepo := users.NewRepository(db.DB)
//	trendRepo := trends.NewRepository(db.DB)
package database
