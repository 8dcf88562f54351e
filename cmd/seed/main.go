package main

import (
	"context"
	"log"
	"log/slog"

	"interview-service/internal/config"
	"interview-service/internal/database"
	"interview-service/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// Seeds the default admin account and a sample topic with one question, so a
// fresh deployment can be exercised immediately.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	slog.Info("Starting database seeding...")

	db, err := database.NewMySQLDB(
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
	)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	ctx := context.Background()

	adminPassword, err := bcrypt.GenerateFromPassword([]byte("passwd123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}
	admin := &models.User{
		Username: "admin",
		Email:    "admin@mail.com",
		Password: string(adminPassword),
		IsAdmin:  true,
	}
	if err := db.WithContext(ctx).Create(admin).Error; err != nil {
		slog.Warn("Admin user might already exist", "error", err)
	} else {
		slog.Info("Created admin user", "id", admin.ID)
	}

	topic := &models.Topic{
		Title:       "Onboarding survey",
		StartDate:   "2026-01-01",
		FinishDate:  "2026-12-31",
		Description: "Introductory questions for new team members",
	}
	if err := db.WithContext(ctx).Create(topic).Error; err != nil {
		slog.Warn("Sample topic might already exist", "error", err)
		return
	}

	question := &models.Question{
		Text:    "Which languages have you used in production?",
		Type:    models.QuestionTypeMultiple,
		TopicID: topic.ID,
		Answers: []models.Answer{
			{Text: "Go"},
			{Text: "Python"},
			{Text: "Java"},
		},
	}
	if err := db.WithContext(ctx).Create(question).Error; err != nil {
		slog.Warn("Failed to create sample question", "error", err)
		return
	}

	slog.Info("Seeding complete", "topic_id", topic.ID, "question_id", question.ID)
}
