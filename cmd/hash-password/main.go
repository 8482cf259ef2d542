package main

import (
	"fmt"
	"os"
	"syscall"

	"github.com/stemsi/arabic-learning-backend/internal/config"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

// hash-password prints a bcrypt hash for TEACHER_PASSWORD_HASH.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("=== Teacher Password Hash ===")

	fmt.Print("Enter Password: ")
	first, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		fmt.Println("Error reading password")
		os.Exit(1)
	}
	if len(first) < 6 {
		fmt.Println("Error: Password must be at least 6 characters")
		os.Exit(1)
	}

	fmt.Print("Confirm Password: ")
	second, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		fmt.Println("Error reading password")
		os.Exit(1)
	}
	if string(first) != string(second) {
		fmt.Println("Error: Passwords do not match")
		os.Exit(1)
	}

	cost := cfg.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword(first, cost)
	if err != nil {
		fmt.Printf("Error hashing password: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\nAdd this line to your .env:")
	fmt.Printf("TEACHER_PASSWORD_HASH=%s\n", hash)
}
