package usecases

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"helpdesk/internal/domain/activitylog"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// ImportTemplateCSV is the header-only template served for download.
const ImportTemplateCSV = "name,email,password,role\n"

var importHeader = []string{"name", "email", "password", "role"}

// ImportUsersUseCase bulk-creates accounts from a CSV upload. Rows fail
// individually; one bad row never aborts the batch.
type ImportUsersUseCase struct {
	userRepo user.UserRepository
	hasher   PasswordHasher
	recorder ActivityRecorder
	logger   logger.Interface
}

func NewImportUsersUseCase(userRepo user.UserRepository, hasher PasswordHasher, recorder ActivityRecorder, logger logger.Interface) *ImportUsersUseCase {
	return &ImportUsersUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		recorder: recorder,
		logger:   logger,
	}
}

type ImportUsersCommand struct {
	Actor     authorization.Actor
	Reader    io.Reader
	IPAddress string
	UserAgent string
}

// RowError reports why one CSV row was skipped. Row numbers are 1-based and
// include the header, matching what the user sees in a spreadsheet.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

type ImportUsersResult struct {
	CreatedCount int
	Errors       []RowError
}

func (uc *ImportUsersUseCase) Execute(ctx context.Context, cmd ImportUsersCommand) (*ImportUsersResult, error) {
	if cmd.Reader == nil {
		return nil, apperrors.NewValidationError("CSV file is required")
	}

	reader := csv.NewReader(cmd.Reader)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, apperrors.NewValidationError("CSV file is empty or unreadable")
	}
	if !matchesImportHeader(header) {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("CSV header must be: %s", strings.Join(importHeader, ",")))
	}

	result := &ImportUsersResult{}
	rowNum := 1 // header was row 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			result.Errors = append(result.Errors, RowError{Row: rowNum, Message: "Malformed CSV row"})
			continue
		}

		if rowErr := uc.importRow(ctx, record); rowErr != "" {
			result.Errors = append(result.Errors, RowError{Row: rowNum, Message: rowErr})
			continue
		}
		result.CreatedCount++
	}

	actorID := cmd.Actor.UserID
	uc.recorder.Record(ctx, &actorID, activitylog.ActionUsersImported, "Imported users from CSV",
		map[string]any{"created": result.CreatedCount, "failed": len(result.Errors)},
		cmd.IPAddress, cmd.UserAgent)

	uc.logger.Infow("user import completed", "created", result.CreatedCount, "failed", len(result.Errors))

	return result, nil
}

// importRow creates one account and returns an empty string on success or a
// user-facing error message.
func (uc *ImportUsersUseCase) importRow(ctx context.Context, record []string) string {
	if len(record) != len(importHeader) {
		return fmt.Sprintf("Expected %d columns, got %d", len(importHeader), len(record))
	}

	name := strings.TrimSpace(record[0])
	email := strings.TrimSpace(record[1])
	password := record[2]
	role := authorization.UserRole(strings.ToLower(strings.TrimSpace(record[3])))

	if name == "" {
		return "Name is required"
	}
	if email == "" {
		return "Email is required"
	}
	if len(password) < 8 {
		return "Password must be at least 8 characters"
	}
	if !role.IsValid() {
		return "Role must be user or admin"
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to check email during import", "email", email, "error", err)
		return "Failed to verify email availability"
	}
	if exists {
		return "Email is already in use"
	}

	hash, err := uc.hasher.Hash(password)
	if err != nil {
		uc.logger.Errorw("failed to hash password during import", "error", err)
		return "Failed to process password"
	}

	u, err := user.NewUser(name, email, hash, role)
	if err != nil {
		return err.Error()
	}

	if err := uc.userRepo.Save(ctx, u); err != nil {
		if apperrors.IsConflictError(err) || apperrors.IsDuplicateError(err) {
			return "Email is already in use"
		}
		uc.logger.Errorw("failed to save imported user", "email", email, "error", err)
		return "Failed to create user"
	}

	return ""
}

func matchesImportHeader(header []string) bool {
	if len(header) != len(importHeader) {
		return false
	}
	for i, h := range header {
		if strings.ToLower(strings.TrimSpace(h)) != importHeader[i] {
			return false
		}
	}
	return true
}
