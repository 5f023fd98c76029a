package postgres

import (
	"strings"

	"georemind/internal/errors"

	"gorm.io/gorm"
)

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	// 23514 is check_violation when the dialector does not translate errors
	return strings.Contains(err.Error(), "23514")
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502")
}
