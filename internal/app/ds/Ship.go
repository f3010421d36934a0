package ds

import "time"

// @Schema(description="Ship model representing one vessel's MRV disclosure for one reporting period")
type Ship struct {
	ImoNumber           int       `gorm:"primaryKey;column:imo_number" json:"imo_number"`
	ReportingPeriod     int       `gorm:"primaryKey;column:reporting_period" json:"reporting_period"`
	Name                string    `gorm:"column:name" json:"name"`
	ShipType            string    `gorm:"column:ship_type" json:"ship_type"`
	TechnicalEfficiency string    `gorm:"column:technical_efficiency" json:"technical_efficiency"`
	PortOfRegistry      string    `gorm:"column:port_of_registry" json:"port_of_registry"`
	HomePort            string    `gorm:"column:home_port" json:"home_port"`
	IceClass            string    `gorm:"column:ice_class" json:"ice_class"`
	DocIssueDate        time.Time `gorm:"column:doc_issue_date;type:date" json:"doc_issue_date"`
	DocExpiryDate       time.Time `gorm:"column:doc_expiry_date;type:date" json:"doc_expiry_date"`

	MonitoringResults []MonitoringResult `gorm:"foreignKey:ShipImoNumber,ShipReportingPeriod;references:ImoNumber,ReportingPeriod" json:"monitoring_results,omitempty"`
}

func (Ship) TableName() string {
	return "ships"
}
