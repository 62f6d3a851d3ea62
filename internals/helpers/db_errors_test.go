package helper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsDuplicateKey(t *testing.T) {
	assert.True(t, IsDuplicateKey(gorm.ErrDuplicatedKey))
	assert.True(t, IsDuplicateKey(fmt.Errorf("create user: %w", gorm.ErrDuplicatedKey)))

	// pesan mentah driver tanpa TranslateError
	assert.True(t, IsDuplicateKey(errors.New(
		`pq: duplicate key value violates unique constraint "users_user_email_key"`)))
	assert.True(t, IsDuplicateKey(errors.New(
		`ERROR: duplicate key value violates unique constraint "customers_customer_code_key" (SQLSTATE 23505)`)))

	assert.False(t, IsDuplicateKey(nil))
	assert.False(t, IsDuplicateKey(errors.New("connection refused")))
	assert.False(t, IsDuplicateKey(gorm.ErrRecordNotFound))
}
