package models_test

import (
	"github.com/m-tracker/backend/internal/models"
)

func (suite *TestSuiteStandard) TestSettingUpsert() {
	// Reading an unset key returns the not found error
	_, err := models.GetSetting(models.DB, models.SettingCurrency)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	// First write creates the setting
	setting, err := models.SetSetting(models.DB, models.SettingCurrency, "NGN")
	suite.Require().Nil(err)
	suite.Assert().Equal("NGN", setting.Value)

	// Second write overwrites the value for the same key
	_, err = models.SetSetting(models.DB, models.SettingCurrency, "EUR")
	suite.Require().Nil(err)

	setting, err = models.GetSetting(models.DB, models.SettingCurrency)
	suite.Require().Nil(err)
	suite.Assert().Equal("EUR", setting.Value)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Setting{}).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)
}
