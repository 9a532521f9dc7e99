package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// SQLSTATE codes of the integrity violations the repositories translate.
const (
	sqlStateUniqueViolation     = "23505"
	sqlStateForeignKeyViolation = "23503"
	sqlStateCheckViolation      = "23514"
)

// Constraint names the repositories tell apart.
const (
	constraintDeviceToken = "uq_user_devices_fcm_token"
)

// translatedErrors are what gorm returns instead of the driver error when TranslateError is on.
var translatedErrors = map[string]error{
	sqlStateUniqueViolation:     gorm.ErrDuplicatedKey,
	sqlStateForeignKeyViolation: gorm.ErrForeignKeyViolated,
	sqlStateCheckViolation:      gorm.ErrCheckConstraintViolated,
}

// violates reports whether err is the integrity violation code. When constraint is set the
// violated constraint must match too; translated gorm errors carry no name and always match.
func violates(err error, code, constraint string) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code && (constraint == "" || pgErr.ConstraintName == constraint)
	}

	return errors.Is(err, translatedErrors[code])
}

func isUniqueConstraintViolation(err error) bool {
	return violates(err, sqlStateUniqueViolation, "")
}

func isForeignKeyConstraintViolation(err error) bool {
	return violates(err, sqlStateForeignKeyViolation, "")
}

func isCheckConstraintViolation(err error) bool {
	return violates(err, sqlStateCheckViolation, "")
}
