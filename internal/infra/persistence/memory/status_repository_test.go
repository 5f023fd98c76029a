package memory

import (
	"context"
	"testing"

	"georemind/internal/domain/entity"
	domainerrors "georemind/internal/domain/errors"
	"georemind/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusRepository_PersistAndFind(t *testing.T) {
	repo := NewStatusRepository()
	ctx := context.Background()

	_, err := repo.FindStatus(ctx, "r1")
	require.ErrorIs(t, err, repository.ErrStatusNotFound)

	require.NoError(t, repo.PersistStatus(ctx, "r1", entity.ReminderStatusPending))
	require.NoError(t, repo.PersistStatus(ctx, "r1", entity.ReminderStatusSent))

	status, err := repo.FindStatus(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, entity.ReminderStatusSent, status)
}

func TestStatusRepository_RejectsUnknownStatus(t *testing.T) {
	repo := NewStatusRepository()

	err := repo.PersistStatus(context.Background(), "r1", entity.ReminderStatus("lost"))
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = repo.FindStatus(context.Background(), "r1")
	require.ErrorIs(t, err, repository.ErrStatusNotFound)
}
