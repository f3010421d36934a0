package ds

// @Schema(description="MonitoringResult model holding one vessel-period's annual performance metrics")
type MonitoringResult struct {
	ID                                int      `gorm:"primaryKey;column:id" json:"id"`
	TotalFuelConsumption              *float64 `gorm:"column:total_fuel_consumption" json:"total_fuel_consumption"`
	TotalCo2Emissions                 *float64 `gorm:"column:total_co2_emissions" json:"total_co2_emissions"`
	AnnualTimeSpentAtSea              *float64 `gorm:"column:annual_time_spent_at_sea" json:"annual_time_spent_at_sea"`
	AverageFuelConsumptionPerDistance *float64 `gorm:"column:average_fuel_consumption_per_distance" json:"average_fuel_consumption_per_distance"`
	AverageCo2EmissionsPerDistance    *float64 `gorm:"column:average_co2_emissions_per_distance" json:"average_co2_emissions_per_distance"`
	ShipImoNumber                     int      `gorm:"column:ship_imo_number;index:idx_monitoring_results_ship,priority:1" json:"ship_imo_number"`
	ShipReportingPeriod               int      `gorm:"column:ship_reporting_period;index:idx_monitoring_results_ship,priority:2" json:"ship_reporting_period"`
}

func (MonitoringResult) TableName() string {
	return "monitoring_results"
}
