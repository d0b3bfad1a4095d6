package models

import (
	"errors"

	"gorm.io/gorm"
)

// Setting is a single key-value entry for app-wide configuration. The
// mobile client kept these in device-local storage; the backend keeps
// them in their own table.
type Setting struct {
	Key   string `json:"key" gorm:"primaryKey" example:"currency"`
	Value string `json:"value" example:"NGN"`
	Timestamps
}

// The display currency code. The only setting key currently in use.
const SettingCurrency = "currency"

// GetSetting returns the setting for a key.
func GetSetting(db *gorm.DB, key string) (Setting, error) {
	var setting Setting
	err := db.First(&setting, "key = ?", key).Error
	if err != nil {
		return Setting{}, err
	}

	return setting, nil
}

// SetSetting creates or updates the setting for a key.
func SetSetting(db *gorm.DB, key, value string) (Setting, error) {
	var setting Setting
	err := db.First(&setting, "key = ?", key).Error
	if err != nil && !errors.Is(err, ErrResourceNotFound) {
		return Setting{}, err
	}

	setting.Key = key
	setting.Value = value

	err = db.Save(&setting).Error
	if err != nil {
		return Setting{}, err
	}

	return setting, nil
}
