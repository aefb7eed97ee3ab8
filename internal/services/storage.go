package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"
)

// translateWriteError classifies an error returned by an insert, update or
// delete. Unique violations become duplicate, foreign key violations become
// fkViolation; AppErrors pass through and anything else is a storage error.
func translateWriteError(err error, duplicate, fkViolation *apperrors.AppError) error {
	if err == nil {
		return nil
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	if duplicate != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.Wrap(duplicate, err)
	}
	if fkViolation != nil && isForeignKeyViolation(err) {
		return apperrors.Wrap(fkViolation, err)
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}

// isForeignKeyViolation reports whether err is a foreign key failure. The
// sqlite driver only translates child-side violations (extended code 787);
// a RESTRICT on the parent side (1811) arrives untranslated.
func isForeignKeyViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) ||
		strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

// deleteUnreferenced deletes the row of model with the given id unless a
// ledger row still points at it through column. It reports false when the
// row does not exist. The schema's RESTRICT keys remain the backstop.
func deleteUnreferenced(db *gorm.DB, model interface{}, id uint, column string, inUse *apperrors.AppError) (bool, error) {
	var deleted bool
	err := db.Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Model(&models.Transaction{}).Where(column+" = ?", id).Count(&refs).Error; err != nil {
			return storageError(err)
		}
		if refs > 0 {
			return inUse
		}

		result := tx.Delete(model, id)
		if result.Error != nil {
			return translateWriteError(result.Error, nil, inUse)
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

// storageError wraps an unexpected read error.
func storageError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}

// ensureExists returns notFound unless a row of model with the given id exists.
func ensureExists(db *gorm.DB, model interface{}, id uint, notFound *apperrors.AppError) error {
	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return storageError(err)
	}
	if count == 0 {
		return notFound
	}
	return nil
}

// referencedRowMissing is used when an insert trips a foreign key because a
// referenced row vanished between validation and write.
var referencedRowMissing = apperrors.WithMessage(apperrors.ErrInvalidInput, "referenced wallet, category or savings bucket does not exist")
