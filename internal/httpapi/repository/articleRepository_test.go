package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidSortColumn(t *testing.T) {
	allowed := []string{"article_id", "title", "topic", "author", "body", "created_at", "votes", "comment_count"}
	for _, col := range allowed {
		assert.True(t, ValidSortColumn(col), col)
	}

	rejected := []string{"", "banana", "ARTICLE_ID", "votes;", "created_at; DROP TABLE articles"}
	for _, col := range rejected {
		assert.False(t, ValidSortColumn(col), col)
	}
}

func TestValidOrder(t *testing.T) {
	assert.True(t, ValidOrder("asc"))
	assert.True(t, ValidOrder("desc"))

	assert.False(t, ValidOrder(""))
	assert.False(t, ValidOrder("DESC"))
	assert.False(t, ValidOrder("descending"))
	assert.False(t, ValidOrder("asc; DROP TABLE articles"))
}

func TestListRejectsUnvalidatedIdentifiers(t *testing.T) {
	// Guard fires before any query, so no database is needed.
	repo := NewArticleRepository(nil)

	_, err := repo.List(context.Background(), "banana", "desc", "")
	assert.Error(t, err)

	_, err = repo.List(context.Background(), "created_at", "sideways", "")
	assert.Error(t, err)
}

func TestCheckExistsRejectsUnknownTargets(t *testing.T) {
	checker := NewExistenceChecker(nil)

	err := checker.CheckExists(context.Background(), "pg_tables", "tablename", "users")
	assert.Error(t, err)

	err = checker.CheckExists(context.Background(), "topics", "description", "x")
	assert.Error(t, err)
}
