// Package migration creates or upgrades the database schema.
package migration

import (
	appliancedomain "github.com/wattwiselabs/wattwise/internal/appliance/domain"
	billdomain "github.com/wattwiselabs/wattwise/internal/bill/domain"
	forecastdomain "github.com/wattwiselabs/wattwise/internal/forecast/domain"
	monthlydomain "github.com/wattwiselabs/wattwise/internal/monthlydata/domain"
	recdomain "github.com/wattwiselabs/wattwise/internal/recommendation/domain"
	tariffdomain "github.com/wattwiselabs/wattwise/internal/tariff/domain"
	usagedomain "github.com/wattwiselabs/wattwise/internal/usage/domain"
	userdomain "github.com/wattwiselabs/wattwise/internal/user/domain"
	uadomain "github.com/wattwiselabs/wattwise/internal/userappliance/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("migration",
	fx.Invoke(Run),
)

// Run applies the schema for every persisted model.
func Run(db *gorm.DB, log *zap.Logger) error {
	log = log.Named("migration")

	err := db.AutoMigrate(
		&userdomain.User{},
		&tariffdomain.Tariff{},
		&appliancedomain.Appliance{},
		&uadomain.Record{},
		&usagedomain.Record{},
		&usagedomain.Survey{},
		&forecastdomain.Forecast{},
		&recdomain.Recommendation{},
		&billdomain.Bill{},
		&monthlydomain.MonthlyData{},
	)
	if err != nil {
		log.Error("migration failed", zap.Error(err))
		return err
	}

	log.Info("schema up to date")
	return nil
}
