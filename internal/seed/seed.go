// Package seed loads the reference datasets the prediction flows depend on:
// the block tariff table, the appliance catalog and the monthly calendar.
package seed

import (
	"context"

	"github.com/bwmarrin/snowflake"
	appliancedomain "github.com/wattwiselabs/wattwise/internal/appliance/domain"
	applianceservice "github.com/wattwiselabs/wattwise/internal/appliance/service"
	monthlydomain "github.com/wattwiselabs/wattwise/internal/monthlydata/domain"
	monthlyservice "github.com/wattwiselabs/wattwise/internal/monthlydata/service"
	tariffdomain "github.com/wattwiselabs/wattwise/internal/tariff/domain"
	tariffservice "github.com/wattwiselabs/wattwise/internal/tariff/service"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func ptr(v float64) *float64 { return &v }

// tariffRows is the domestic block tariff table, both schemes. The fixed
// charge is scheme-level, repeated on every row.
var tariffRows = []tariffdomain.UploadRow{
	{Scheme: tariffdomain.SchemeLow, Block: "0-30", KwhFrom: 0, KwhTo: ptr(30), EnergyLkrPerKwh: 6, FixedLkr: 150},
	{Scheme: tariffdomain.SchemeLow, Block: "30-60", KwhFrom: 30, KwhTo: ptr(60), EnergyLkrPerKwh: 9, FixedLkr: 150},

	{Scheme: tariffdomain.SchemeHigh, Block: "0-60", KwhFrom: 0, KwhTo: ptr(60), EnergyLkrPerKwh: 15, FixedLkr: 1000},
	{Scheme: tariffdomain.SchemeHigh, Block: "60-90", KwhFrom: 60, KwhTo: ptr(90), EnergyLkrPerKwh: 18, FixedLkr: 1000},
	{Scheme: tariffdomain.SchemeHigh, Block: "90-120", KwhFrom: 90, KwhTo: ptr(120), EnergyLkrPerKwh: 30, FixedLkr: 1000},
	{Scheme: tariffdomain.SchemeHigh, Block: "120-180", KwhFrom: 120, KwhTo: ptr(180), EnergyLkrPerKwh: 42, FixedLkr: 1000},
	{Scheme: tariffdomain.SchemeHigh, Block: "180+", KwhFrom: 180, KwhTo: nil, EnergyLkrPerKwh: 65, FixedLkr: 1000},
}

var applianceRows = []appliancedomain.UploadRow{
	{Name: "Ceiling Fan", TypicalW: 65, MinW: 45, MaxW: 80, StandbyW: 0},
	{Name: "Refrigerator (200-300L)", TypicalW: 160, MinW: 100, MaxW: 250, StandbyW: 5},
	{Name: "LED TV (40-50 in)", TypicalW: 90, MinW: 60, MaxW: 120, StandbyW: 1},
	{Name: "Rice Cooker", TypicalW: 500, MinW: 350, MaxW: 700, StandbyW: 0},
	{Name: "Electric Kettle", TypicalW: 2000, MinW: 1500, MaxW: 2400, StandbyW: 0},
	{Name: "Washing Machine", TypicalW: 500, MinW: 350, MaxW: 2000, StandbyW: 2},
	{Name: "Iron", TypicalW: 1100, MinW: 750, MaxW: 1500, StandbyW: 0},
	{Name: "Air Conditioner (9000 BTU)", TypicalW: 900, MinW: 600, MaxW: 1300, StandbyW: 3},
	{Name: "Laptop", TypicalW: 60, MinW: 30, MaxW: 90, StandbyW: 1},
	{Name: "Water Pump", TypicalW: 750, MinW: 400, MaxW: 1100, StandbyW: 0},
	{Name: "Microwave Oven", TypicalW: 1200, MinW: 800, MaxW: 1500, StandbyW: 2},
	{Name: "CFL/LED Bulb", TypicalW: 12, MinW: 5, MaxW: 20, StandbyW: 0},
}

// monthlyRows carries Colombo-area climate and holiday figures.
var monthlyRows = []monthlydomain.UploadRow{
	{Month: 1, MonthName: "January", AvgTempC: 27.0, RainyDays: 7, PublicHolidays: 2},
	{Month: 2, MonthName: "February", AvgTempC: 27.5, RainyDays: 6, PublicHolidays: 2},
	{Month: 3, MonthName: "March", AvgTempC: 28.3, RainyDays: 10, PublicHolidays: 1},
	{Month: 4, MonthName: "April", AvgTempC: 28.7, RainyDays: 14, PublicHolidays: 3},
	{Month: 5, MonthName: "May", AvgTempC: 28.5, RainyDays: 17, PublicHolidays: 2},
	{Month: 6, MonthName: "June", AvgTempC: 28.1, RainyDays: 15, PublicHolidays: 1},
	{Month: 7, MonthName: "July", AvgTempC: 27.9, RainyDays: 12, PublicHolidays: 1},
	{Month: 8, MonthName: "August", AvgTempC: 27.9, RainyDays: 11, PublicHolidays: 1},
	{Month: 9, MonthName: "September", AvgTempC: 27.8, RainyDays: 13, PublicHolidays: 1},
	{Month: 10, MonthName: "October", AvgTempC: 27.3, RainyDays: 19, PublicHolidays: 2},
	{Month: 11, MonthName: "November", AvgTempC: 27.0, RainyDays: 16, PublicHolidays: 1},
	{Month: 12, MonthName: "December", AvgTempC: 26.9, RainyDays: 10, PublicHolidays: 2},
}

// Run loads every reference dataset. Appliance and monthly rows upsert, so
// reseeding is safe; the tariff table only loads when empty.
func Run(db *gorm.DB, node *snowflake.Node, log *zap.Logger) error {
	ctx := context.Background()
	log = log.Named("seed")

	tariffsvc := tariffservice.New(tariffservice.ServiceParam{DB: db, Log: log, GenID: node})
	appliancesvc := applianceservice.New(applianceservice.ServiceParam{DB: db, Log: log, GenID: node})
	monthlysvc := monthlyservice.New(monthlyservice.ServiceParam{DB: db, Log: log, GenID: node})

	var tariffCount int64
	if err := db.WithContext(ctx).Model(&tariffdomain.Tariff{}).Count(&tariffCount).Error; err != nil {
		return err
	}
	if tariffCount == 0 {
		n, err := tariffsvc.UploadBlocks(ctx, tariffRows)
		if err != nil {
			return err
		}
		log.Info("tariff table seeded", zap.Int("blocks", n))
	} else {
		log.Info("tariff table already populated, skipping", zap.Int64("rows", tariffCount))
	}

	n, err := appliancesvc.BulkUpsert(ctx, applianceRows)
	if err != nil {
		return err
	}
	log.Info("appliance catalog seeded", zap.Int("rows", n))

	n, err = monthlysvc.BulkUpsert(ctx, monthlyRows)
	if err != nil {
		return err
	}
	log.Info("monthly calendar seeded", zap.Int("rows", n))

	return nil
}
