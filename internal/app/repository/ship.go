package repository

import (
	"errors"

	"gorm.io/gorm"

	"thetis_mrv/internal/app/ds"
)

// FindShip - точечный поиск по составному ключу. Отсутствие записи - это
// nil без ошибки, а не ошибка.
func (r *Repository) FindShip(imoNumber, reportingPeriod int) (*ds.Ship, error) {
	ship := &ds.Ship{}
	err := r.db.Where("imo_number = ? AND reporting_period = ?", imoNumber, reportingPeriod).First(ship).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ship, nil
}

// InsertShip - безусловная вставка; уникальность обеспечивает первичный
// ключ таблицы, дубликат приходит как gorm.ErrDuplicatedKey.
func (r *Repository) InsertShip(ship *ds.Ship) error {
	return r.db.Create(ship).Error
}

// CreateShipIfAbsent вставляет корабль, если записи с таким
// (imo_number, reporting_period) ещё нет. "Уже существует" - ожидаемый
// исход, поэтому он возвращается флагом created=false, а не ошибкой.
func (r *Repository) CreateShipIfAbsent(ship ds.Ship) (ds.Ship, bool, error) {
	existing, err := r.FindShip(ship.ImoNumber, ship.ReportingPeriod)
	if err != nil {
		return ds.Ship{}, false, err
	}
	if existing != nil {
		return *existing, false, nil
	}
	if err := r.InsertShip(&ship); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Проверку выше обогнала параллельная вставка - считаем дубликатом.
			return ship, false, nil
		}
		return ds.Ship{}, false, err
	}
	return ship, true, nil
}
