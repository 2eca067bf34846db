package service

import (
	"errors"

	"gorm.io/gorm"
)

// upsertSingleton implements the shared insert-or-update pattern for rows
// addressed by a natural key: fetch the row matching column = key, apply
// mutate and save it; when no row exists, apply mutate to a fresh value
// (which must set the natural key) and insert it. Two concurrent first
// saves can both observe "not found" — the store's unique index rejects
// the second insert and the error is surfaced to the caller unretried.
func upsertSingleton[T any](gdb *gorm.DB, column string, key interface{}, mutate func(*T)) error {
	var row T
	err := gdb.Where(column+" = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		var fresh T
		mutate(&fresh)
		return gdb.Create(&fresh).Error
	}
	if err != nil {
		return err
	}

	mutate(&row)
	return gdb.Save(&row).Error
}
