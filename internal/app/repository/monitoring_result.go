package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"thetis_mrv/internal/app/ds"
)

// ErrShipNotFound возвращается при попытке создать результат мониторинга
// для несуществующего корабля.
var ErrShipNotFound = errors.New("referenced ship does not exist")

// FindMonitoringResult - поиск по составному ключу корабля-владельца.
func (r *Repository) FindMonitoringResult(imoNumber, reportingPeriod int) (*ds.MonitoringResult, error) {
	result := &ds.MonitoringResult{}
	err := r.db.Where("ship_imo_number = ? AND ship_reporting_period = ?", imoNumber, reportingPeriod).First(result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Repository) InsertMonitoringResult(result *ds.MonitoringResult) error {
	return r.db.Create(result).Error
}

// CreateMonitoringResultIfAbsent вставляет результат мониторинга, если по
// этой паре (imo_number, reporting_period) его ещё нет. Корабль-владелец
// обязан существовать: ссылочная целостность проверяется до вставки.
func (r *Repository) CreateMonitoringResultIfAbsent(result ds.MonitoringResult) (ds.MonitoringResult, bool, error) {
	ship, err := r.FindShip(result.ShipImoNumber, result.ShipReportingPeriod)
	if err != nil {
		return ds.MonitoringResult{}, false, err
	}
	if ship == nil {
		return ds.MonitoringResult{}, false, fmt.Errorf("%w: imo_number=%d reporting_period=%d",
			ErrShipNotFound, result.ShipImoNumber, result.ShipReportingPeriod)
	}

	existing, err := r.FindMonitoringResult(result.ShipImoNumber, result.ShipReportingPeriod)
	if err != nil {
		return ds.MonitoringResult{}, false, err
	}
	if existing != nil {
		return *existing, false, nil
	}
	if err := r.InsertMonitoringResult(&result); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return result, false, nil
		}
		return ds.MonitoringResult{}, false, err
	}
	return result, true, nil
}
