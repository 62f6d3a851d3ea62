package helper

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// IsDuplicateKey mengenali pelanggaran unique constraint baik lewat
// gorm.ErrDuplicatedKey (TranslateError aktif) maupun pesan mentah driver.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "duplicate key") || strings.Contains(low, "unique constraint")
}
