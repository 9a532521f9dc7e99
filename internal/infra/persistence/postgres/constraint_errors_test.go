package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestViolates(t *testing.T) {
	tokenDup := errors.Wrap(&pgconn.PgError{Code: sqlStateUniqueViolation, ConstraintName: constraintDeviceToken}, "insert")
	reviewDup := &pgconn.PgError{Code: sqlStateUniqueViolation, ConstraintName: "uq_station_reviews_station_user"}
	fk := &pgconn.PgError{Code: sqlStateForeignKeyViolation, ConstraintName: "fk_station_reviews_user"}

	assert.True(t, isUniqueConstraintViolation(tokenDup))
	assert.True(t, violates(tokenDup, sqlStateUniqueViolation, constraintDeviceToken))
	assert.False(t, violates(reviewDup, sqlStateUniqueViolation, constraintDeviceToken))
	assert.True(t, isForeignKeyConstraintViolation(fk))
	assert.False(t, isUniqueConstraintViolation(fk))
	assert.False(t, isCheckConstraintViolation(fk))

	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isCheckConstraintViolation(errors.WithStack(gorm.ErrCheckConstraintViolated)))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))
	assert.False(t, isUniqueConstraintViolation(nil))
}
