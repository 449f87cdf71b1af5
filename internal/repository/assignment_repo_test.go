package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/profboard/profboard-go-api/internal/models"
)

func setupTestDB(t *testing.T, entities ...interface{}) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:repo_%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(entities...))
	return db
}

func TestAssignmentRepositoryListDueBetween(t *testing.T) {
	db := setupTestDB(t, &models.Assignment{})
	repo := NewAssignmentRepository(db)

	now := time.Now()
	seed := []models.Assignment{
		{Title: "Later", DueDate: now.AddDate(0, 0, 5), ProfessorEmail: "rao@example.edu"},
		{Title: "Sooner", DueDate: now.AddDate(0, 0, 1), ProfessorEmail: "rao@example.edu"},
		{Title: "Out Of Window", DueDate: now.AddDate(0, 1, 0), ProfessorEmail: "rao@example.edu"},
		{Title: "Other Professor", DueDate: now.AddDate(0, 0, 1), ProfessorEmail: "other@example.edu"},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	due, err := repo.ListDueBetween(context.Background(), "rao@example.edu", now, now.AddDate(0, 0, 7))
	require.NoError(t, err)
	require.Len(t, due, 2)
	require.Equal(t, "Sooner", due[0].Title, "expected earliest deadline first")
	require.Equal(t, "Later", due[1].Title)
}

func TestAssignmentRepositorySubmittedByRoundTrip(t *testing.T) {
	db := setupTestDB(t, &models.Assignment{})
	repo := NewAssignmentRepository(db)

	assignment := models.Assignment{
		Title:          "Graph Algorithms",
		DueDate:        time.Now().AddDate(0, 0, 3),
		ProfessorEmail: "Rao@Example.edu",
		SubmittedBy:    []string{"CS101", "CS103"},
	}
	require.NoError(t, repo.Create(context.Background(), &assignment))

	fetched, err := repo.GetByID(context.Background(), assignment.ID)
	require.NoError(t, err)
	require.True(t, fetched.HasSubmission("cs101"))
	require.False(t, fetched.HasSubmission("CS102"))

	listed, err := repo.ListByProfessor(context.Background(), "rao@example.edu")
	require.NoError(t, err)
	require.Len(t, listed, 1)
}

func TestAssignmentRepositoryDeleteMissing(t *testing.T) {
	db := setupTestDB(t, &models.Assignment{})
	repo := NewAssignmentRepository(db)

	err := repo.Delete(context.Background(), 9999)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
