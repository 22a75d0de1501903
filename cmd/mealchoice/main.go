package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/mealchoice/mealchoice/client"
	"github.com/mealchoice/mealchoice/tui"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	baseURL := os.Getenv("MEALCHOICE_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	email := os.Getenv("MEALCHOICE_EMAIL")
	password := os.Getenv("MEALCHOICE_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("MEALCHOICE_EMAIL and MEALCHOICE_PASSWORD must be set")
	}

	api := client.New(baseURL)
	session, err := api.Login(email, password)
	if err != nil {
		log.Fatalf("Login failed: %v", err)
	}

	program := tea.NewProgram(tui.New(api, session), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
