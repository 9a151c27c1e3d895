package main

import (
	"fmt"
	"log"
	"os"

	"hostelhub/backend/internal/config"
	"hostelhub/backend/internal/models"
	"hostelhub/backend/internal/storage"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	storageSvc := storage.NewStorageService(db, nil) // No redis needed for admin CLI

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "create-user":
		if len(os.Args) != 6 {
			fmt.Println("Usage: admin create-user <name> <email> <password> <ADMIN|WARDEN|STAFF|STUDENT>")
			os.Exit(1)
		}
		role := models.Role(os.Args[5])
		if !role.IsValid() {
			fmt.Println("Unknown role. Use ADMIN, WARDEN, STAFF or STUDENT.")
			os.Exit(1)
		}
		if err := createUser(storageSvc, os.Args[2], os.Args[3], os.Args[4], role); err != nil {
			log.Fatalf("Error creating user: %v", err)
		}
		fmt.Printf("User %s created with role %s.\n", os.Args[3], role)
	case "assign-warden":
		if len(os.Args) != 4 {
			fmt.Println("Usage: admin assign-warden <warden_id> <floor_id>")
			os.Exit(1)
		}
		if err := assignWarden(storageSvc, os.Args[2], os.Args[3]); err != nil {
			log.Fatalf("Error assigning warden: %v", err)
		}
		fmt.Printf("Warden %s assigned to floor %s.\n", os.Args[2], os.Args[3])
	case "remove-warden":
		if len(os.Args) != 4 {
			fmt.Println("Usage: admin remove-warden <warden_id> <floor_id>")
			os.Exit(1)
		}
		if err := storageSvc.RemoveWardenFromFloor(os.Args[2], os.Args[3]); err != nil {
			log.Fatalf("Error removing warden: %v", err)
		}
		fmt.Printf("Warden %s removed from floor %s.\n", os.Args[2], os.Args[3])
	case "assign-seat":
		if len(os.Args) != 4 {
			fmt.Println("Usage: admin assign-seat <user_id> <seat_id|->")
			os.Exit(1)
		}
		var seatID *string
		if os.Args[3] != "-" {
			seatID = &os.Args[3]
		}
		if err := storageSvc.AssignSeat(os.Args[2], seatID); err != nil {
			log.Fatalf("Error assigning seat: %v", err)
		}
		fmt.Printf("Seat updated for user %s.\n", os.Args[2])
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}

func createUser(s storage.Storage, name, email, password string, role models.Role) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), config.BcryptCost)
	if err != nil {
		return err
	}
	return s.CreateUser(&models.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
		Role:     role,
	})
}

func assignWarden(s storage.Storage, wardenID, floorID string) error {
	warden, err := s.GetUserByID(wardenID)
	if err != nil {
		return err
	}
	if warden == nil {
		return fmt.Errorf("user %s not found", wardenID)
	}
	if warden.Role != models.RoleWarden {
		return fmt.Errorf("user %s has role %s, expected WARDEN", wardenID, warden.Role)
	}
	return s.AssignWardenToFloor(wardenID, floorID)
}
