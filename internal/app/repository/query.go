package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"thetis_mrv/internal/app/ds"
)

// SearchLimit - максимум строк в выдаче поиска, как на публичной странице
// реестра.
const SearchLimit = 50

const leaderboardCacheTTL = 5 * time.Minute

// SearchShips - поисковая выдача реестра: конъюнкция фильтров, имя ищется
// подстрокой без учёта регистра, сортировка по (imo_number,
// reporting_period) по возрастанию, не больше SearchLimit строк, с
// вложенными результатами мониторинга.
func (r *Repository) SearchShips(imoNumber *int, nameSubstring string, reportingPeriod *int) ([]ds.Ship, error) {
	query := r.db.Model(&ds.Ship{})

	if imoNumber != nil {
		query = query.Where("imo_number = ?", *imoNumber)
	}
	if nameSubstring != "" {
		query = query.Where("UPPER(name) LIKE ?", "%"+strings.ToUpper(nameSubstring)+"%")
	}
	if reportingPeriod != nil {
		query = query.Where("reporting_period = ?", *reportingPeriod)
	}

	var ships []ds.Ship
	err := query.
		Preload("MonitoringResults").
		Order("imo_number, reporting_period").
		Limit(SearchLimit).
		Find(&ships).Error
	if err != nil {
		return nil, err
	}
	return ships, nil
}

// TopEmittersByTotal - лидерборд по суммарным выбросам CO2 за период.
func (r *Repository) TopEmittersByTotal(ctx context.Context, topN int) ([]ds.MonitoringResult, error) {
	return r.topEmitters(ctx, "total_co2_emissions", topN)
}

// TopEmittersByDistance - лидерборд по среднему выбросу CO2 на милю.
func (r *Repository) TopEmittersByDistance(ctx context.Context, topN int) ([]ds.MonitoringResult, error) {
	return r.topEmitters(ctx, "average_co2_emissions_per_distance", topN)
}

// topEmitters отдаёт topN записей по метрике по убыванию. Выдача кэшируется
// в Redis: рейтинг меняется только при загрузке новых файлов. Недоступный
// кэш не ломает запрос - идём в базу.
func (r *Repository) topEmitters(ctx context.Context, metric string, topN int) ([]ds.MonitoringResult, error) {
	cacheKey := fmt.Sprintf("leaderboard:%s:%d", metric, topN)

	if cached, err := r.redis.Get(ctx, cacheKey).Result(); err == nil {
		var results []ds.MonitoringResult
		if err := json.Unmarshal([]byte(cached), &results); err == nil {
			return results, nil
		}
	}

	var results []ds.MonitoringResult
	err := r.db.Model(&ds.MonitoringResult{}).
		Where(metric + " IS NOT NULL").
		Order(metric + " DESC").
		Limit(topN).
		Find(&results).Error
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(results); err == nil {
		if err := r.redis.Set(ctx, cacheKey, payload, leaderboardCacheTTL).Err(); err != nil {
			logrus.Warnf("leaderboard cache write failed: %v", err)
		}
	}
	return results, nil
}

// InvalidateLeaderboards сбрасывает кэш рейтингов после загрузки данных.
func (r *Repository) InvalidateLeaderboards(ctx context.Context) {
	iter := r.redis.Scan(ctx, 0, "leaderboard:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := r.redis.Del(ctx, iter.Val()).Err(); err != nil {
			logrus.Warnf("leaderboard cache invalidation failed: %v", err)
		}
	}
	if err := iter.Err(); err != nil {
		logrus.Warnf("leaderboard cache scan failed: %v", err)
	}
}
