package repository

import (
	"context"
	"fmt"

	"newshub/internal/httpapi/apperr"

	"gorm.io/gorm"
)

// ExistenceChecker verifies that a row with a given column value exists
// before a dependent operation is allowed to proceed.
type ExistenceChecker interface {
	CheckExists(ctx context.Context, table, column string, value any) error
}

type existenceChecker struct {
	db *gorm.DB
}

func NewExistenceChecker(db *gorm.DB) ExistenceChecker {
	return &existenceChecker{db: db}
}

// checkTargets is the fixed set of table/column pairs the checker may touch.
// Identifiers are interpolated into SQL, so they must come from this list
// and never from user input; the value is always a bound parameter.
var checkTargets = map[[2]string]bool{
	{"topics", "slug"}:         true,
	{"articles", "article_id"}: true,
	{"users", "username"}:      true,
	{"comments", "comment_id"}: true,
}

func (c *existenceChecker) CheckExists(ctx context.Context, table, column string, value any) error {
	if !checkTargets[[2]string{table, column}] {
		return fmt.Errorf("existence check not permitted for %s.%s", table, column)
	}

	var count int64
	err := c.db.WithContext(ctx).
		Table(table).
		Where(fmt.Sprintf("%s = ?", column), value).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return apperr.NotFound("Resource not found")
	}
	return nil
}
