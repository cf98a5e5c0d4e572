package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/shared/authorization"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

func importCmd(csvContent string) ImportUsersCommand {
	return ImportUsersCommand{
		Actor:  authorization.Actor{UserID: 1, Role: authorization.RoleAdmin},
		Reader: strings.NewReader(csvContent),
	}
}

func TestImportUsersSuccess(t *testing.T) {
	repo := newMockUserRepo()
	uc := NewImportUsersUseCase(repo, mockHasher{}, &mockRecorder{}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), importCmd(
		"name,email,password,role\n"+
			"Alice,alice@example.com,password123,user\n"+
			"Bob,bob@example.com,password123,admin\n"))

	require.NoError(t, err)
	assert.Equal(t, 2, result.CreatedCount)
	assert.Empty(t, result.Errors)
	require.Len(t, repo.saved, 2)
	assert.Equal(t, "hashed:password123", repo.saved[0].PasswordHash())
	assert.True(t, repo.saved[1].IsAdmin())
}

func TestImportUsersBadHeader(t *testing.T) {
	uc := NewImportUsersUseCase(newMockUserRepo(), mockHasher{}, &mockRecorder{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), importCmd("fullname,email,password,role\n"))

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestImportUsersRowErrorsDoNotAbortBatch(t *testing.T) {
	repo := newMockUserRepo()
	repo.usersByEmail["taken@example.com"] = true
	uc := NewImportUsersUseCase(repo, mockHasher{}, &mockRecorder{}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), importCmd(
		"name,email,password,role\n"+
			"Alice,alice@example.com,password123,user\n"+
			"Dupe,taken@example.com,password123,user\n"+
			"Eve,eve@example.com,password123,superadmin\n"+
			"Shorty,short@example.com,short,user\n"+
			"Frank,frank@example.com,password123,user\n"))

	require.NoError(t, err)
	assert.Equal(t, 2, result.CreatedCount)
	require.Len(t, result.Errors, 3)

	// Row numbers are 1-based and count the header, so the first data row is 2.
	assert.Equal(t, 3, result.Errors[0].Row)
	assert.Equal(t, "Email is already in use", result.Errors[0].Message)
	assert.Equal(t, 4, result.Errors[1].Row)
	assert.Equal(t, "Role must be user or admin", result.Errors[1].Message)
	assert.Equal(t, 5, result.Errors[2].Row)
	assert.Equal(t, "Password must be at least 8 characters", result.Errors[2].Message)
}

func TestImportUsersRecordsActivity(t *testing.T) {
	recorder := &mockRecorder{}
	uc := NewImportUsersUseCase(newMockUserRepo(), mockHasher{}, recorder, logger.NewLogger())

	_, err := uc.Execute(context.Background(), importCmd(
		"name,email,password,role\nAlice,alice@example.com,password123,user\n"))

	require.NoError(t, err)
	assert.Equal(t, []string{"users_imported"}, recorder.actions)
}
