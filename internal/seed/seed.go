// Package seed wipes and repopulates the database with development data.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Run truncates every table and inserts the fixture rows in foreign-key
// order: users and topics first, then the articles and comments that
// reference them. Identity sequences restart so comment fixtures can refer
// to articles by their insertion position.
func Run(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	err := db.WithContext(ctx).
		Exec("TRUNCATE comments, articles, topics, users RESTART IDENTITY CASCADE").Error
	if err != nil {
		return fmt.Errorf("truncate tables: %w", err)
	}

	if err := db.WithContext(ctx).Create(&users).Error; err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if err := db.WithContext(ctx).Create(&topics).Error; err != nil {
		return fmt.Errorf("seed topics: %w", err)
	}
	if err := db.WithContext(ctx).Create(&articles).Error; err != nil {
		return fmt.Errorf("seed articles: %w", err)
	}
	if err := db.WithContext(ctx).Omit(clause.Associations).Create(&comments).Error; err != nil {
		return fmt.Errorf("seed comments: %w", err)
	}

	logger.Info("Database seeded",
		"users", len(users),
		"topics", len(topics),
		"articles", len(articles),
		"comments", len(comments),
	)
	return nil
}
