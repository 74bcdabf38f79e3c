package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/frahmantamala/hr-management/internal/auth"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var (
	seedAdminEmail    string
	seedAdminPassword string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with an initial admin and sample departments",
	Long:  `Seed the database with an admin credential and a few departments for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		if seedAdminPassword == "" {
			log.Fatal("--admin-password is required")
		}

		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		_, db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(seedAdminPassword), cfg.Security.BCryptCost)
		if err != nil {
			log.Fatalf("failed to hash admin password: %v", err)
		}

		adminEmail := strings.ToLower(seedAdminEmail)
		var exists int
		row := db.Raw("SELECT 1 FROM users WHERE email = ?", adminEmail).Row()
		if err := row.Scan(&exists); err == nil {
			fmt.Println("admin user already exists:", adminEmail)
		} else {
			if err := db.Exec(
				"INSERT INTO users (email, password_hash, role, created_at, updated_at) VALUES (?, ?, ?, now(), now())",
				adminEmail, string(hash), auth.RoleAdmin,
			).Error; err != nil {
				log.Fatalf("failed to insert admin user: %v", err)
			}
			fmt.Println("Seeded admin user:", adminEmail)
		}

		departments := []string{"Engineering", "Human Resources", "Finance"}
		for _, name := range departments {
			var deptID int64
			row := db.Raw("SELECT id FROM departments WHERE name = ?", name).Row()
			if err := row.Scan(&deptID); err == nil {
				continue
			}
			if err := db.Exec(
				"INSERT INTO departments (name, created_at, updated_at) VALUES (?, now(), now())", name,
			).Error; err != nil {
				log.Fatalf("failed to insert department %s: %v", name, err)
			}
			fmt.Println("Seeded department:", name)
		}
	},
}
