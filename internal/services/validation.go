package services

import (
	"strings"
	"unicode/utf8"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"
	"pocketledger/internal/period"
)

// normalizeName trims name and checks it against the shared name bounds.
func normalizeName(entity, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, entity+" name is required")
	}
	if utf8.RuneCountInString(name) > models.MaxNameLength {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, entity+" name must be at most 100 characters")
	}
	return name, nil
}

// normalizeNote trims note; blank notes are stored as NULL.
func normalizeNote(note *string) (*string, error) {
	if note == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*note)
	if trimmed == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(trimmed) > models.MaxNoteLength {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "note must be at most 500 characters")
	}
	return &trimmed, nil
}

func validateAmount(amount int64) error {
	if amount <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	return nil
}

// validateRange checks both ends of a half-open date range.
func validateRange(start, end string) error {
	if err := period.ValidateDate(start); err != nil {
		return err
	}
	return period.ValidateDate(end)
}
