package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/torvund/wildskills-backend/internal/app"
	types "github.com/torvund/wildskills-backend/internal/domain"
)

type lessonDoc struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	MediaType  string `json:"mediaType"`
	MediaURL   string `json:"mediaUrl"`
	Difficulty int    `json:"difficulty"`
}

type scenarioDoc struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	MediaType   string `json:"mediaType"`
	MediaURL    string `json:"mediaUrl"`
	Difficulty  int    `json:"difficulty"`
	Choices     []struct {
		Text          string `json:"text"`
		Outcome       string `json:"outcome"`
		Survivability int    `json:"survivability"`
	} `json:"choices"`
}

type userDoc struct {
	Username         string `json:"username"`
	Password         string `json:"password"`
	SecurityQuestion string `json:"securityQuestion"`
	SecurityAnswer   string `json:"securityAnswer"`
	IsAdmin          bool   `json:"isAdmin"`
}

func main() {
	var lessonsPath, scenariosPath, usersPath string
	flag.StringVar(&lessonsPath, "lessons", "", "path to a lessons JSON file")
	flag.StringVar(&scenariosPath, "scenarios", "", "path to a scenarios JSON file")
	flag.StringVar(&usersPath, "users", "", "path to a users JSON file")
	flag.Parse()

	if lessonsPath == "" && scenariosPath == "" && usersPath == "" {
		fmt.Println("nothing to import: pass -lessons, -scenarios and/or -users")
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, relying on environment")
	}

	ctx := context.Background()
	application, err := app.New(ctx)
	if err != nil {
		fmt.Printf("init app: %v\n", err)
		os.Exit(1)
	}
	defer application.Close(ctx)

	if lessonsPath != "" {
		if err := importLessons(ctx, application, lessonsPath); err != nil {
			application.Log.Fatal("Lesson import failed", "error", err)
		}
	}
	if scenariosPath != "" {
		if err := importScenarios(ctx, application, scenariosPath); err != nil {
			application.Log.Fatal("Scenario import failed", "error", err)
		}
	}
	if usersPath != "" {
		if err := importUsers(ctx, application, usersPath); err != nil {
			application.Log.Fatal("User import failed", "error", err)
		}
	}
}

func readDocs[T any](path string) ([]T, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var docs []T
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return docs, nil
}

func importLessons(ctx context.Context, application *app.App, path string) error {
	docs, err := readDocs[lessonDoc](path)
	if err != nil {
		return err
	}
	for _, doc := range docs {
		lesson := &types.Lesson{
			Title:      doc.Title,
			Content:    doc.Content,
			MediaType:  doc.MediaType,
			MediaURL:   doc.MediaURL,
			Difficulty: doc.Difficulty,
		}
		if lesson.Difficulty == 0 {
			lesson.Difficulty = 1
		}
		if _, err := application.Services.Lesson.CreateLesson(ctx, lesson); err != nil {
			return fmt.Errorf("import lesson %q: %w", doc.Title, err)
		}
	}
	application.Log.Info("Imported lessons", "count", len(docs))
	return nil
}

func importScenarios(ctx context.Context, application *app.App, path string) error {
	docs, err := readDocs[scenarioDoc](path)
	if err != nil {
		return err
	}
	for _, doc := range docs {
		scenario := &types.Scenario{
			Title:       doc.Title,
			Description: doc.Description,
			MediaType:   doc.MediaType,
			MediaURL:    doc.MediaURL,
			Difficulty:  doc.Difficulty,
		}
		if scenario.Difficulty == 0 {
			scenario.Difficulty = 1
		}
		for _, choice := range doc.Choices {
			scenario.Choices = append(scenario.Choices, types.ScenarioChoice{
				ChoiceText:    choice.Text,
				Outcome:       choice.Outcome,
				Survivability: choice.Survivability,
			})
		}
		if _, err := application.Services.Scenario.CreateScenario(ctx, scenario); err != nil {
			return fmt.Errorf("import scenario %q: %w", doc.Title, err)
		}
	}
	application.Log.Info("Imported scenarios", "count", len(docs))
	return nil
}

func importUsers(ctx context.Context, application *app.App, path string) error {
	docs, err := readDocs[userDoc](path)
	if err != nil {
		return err
	}
	for _, doc := range docs {
		user := &types.User{
			Username:         doc.Username,
			Password:         doc.Password,
			SecurityQuestion: doc.SecurityQuestion,
			SecurityAnswer:   doc.SecurityAnswer,
			IsAdmin:          doc.IsAdmin,
		}
		if _, err := application.Services.Auth.RegisterUser(ctx, user); err != nil {
			return fmt.Errorf("import user %q: %w", doc.Username, err)
		}
	}
	application.Log.Info("Imported users", "count", len(docs))
	return nil
}
