package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/lonamusi/trending-collections/internal/auth"
	"github.com/lonamusi/trending-collections/internal/config"
	"github.com/lonamusi/trending-collections/internal/database"
	"github.com/lonamusi/trending-collections/internal/database/users"
)

// CreateAdminCommand creates an administrator account directly in the
// store. Registration over the API always creates non-admins, so this is
// the only way to grant the admin flag.
type CreateAdminCommand struct {
	Email        string
	Password     string
	DatabasePath string
	BcryptCost   int
}

func NewCreateAdminCommand() *CreateAdminCommand {
	return &CreateAdminCommand{}
}

func (cmd *CreateAdminCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("create-admin", flag.ExitOnError)

	fs.StringVar(&cmd.Email, "email", "", "Email address of the admin account (required)")
	fs.StringVar(&cmd.Password, "password", "", "Password of the admin account (required)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")
	fs.IntVar(&cmd.BcryptCost, "bcrypt-cost", 12, "bcrypt cost factor for the password hash")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s create-admin -email <email> -password <password> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Create an administrator account in the local database.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Email == "" {
		return fmt.Errorf("required flag -email not provided")
	}
	if cmd.Password == "" {
		return fmt.Errorf("required flag -password not provided")
	}

	return nil
}

func (cmd *CreateAdminCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	repo := users.NewRepository(db.DB)

	if _, err := repo.GetByEmail(cmd.Email); err == nil {
		fmt.Printf("Admin user %s already exists\n", cmd.Email)
		return nil
	} else if !errors.Is(err, users.ErrUserNotFound) {
		return fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := auth.HashPassword(cmd.Password, cmd.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if _, err := repo.Create(cmd.Email, hash); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	if err := repo.Promote(cmd.Email); err != nil {
		return fmt.Errorf("failed to grant admin flag: %w", err)
	}

	fmt.Printf("Admin user %s created successfully\n", cmd.Email)
	return nil
}
