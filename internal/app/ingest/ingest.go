package ingest

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"thetis_mrv/internal/app/cleaner"
	"thetis_mrv/internal/app/ds"
)

// FileSource - внешнее хранилище исходных выгрузок (см. storage.MinioStorage).
type FileSource interface {
	ListAvailableFiles(ctx context.Context) ([]string, error)
	FetchFile(ctx context.Context, name string) ([]byte, error)
}

// Store - персистентные операции, нужные загрузке (см. repository.Repository).
type Store interface {
	CreateShipIfAbsent(ship ds.Ship) (ds.Ship, bool, error)
	CreateMonitoringResultIfAbsent(result ds.MonitoringResult) (ds.MonitoringResult, bool, error)
}

type Orchestrator struct {
	Files FileSource
	Store Store
}

func NewOrchestrator(files FileSource, store Store) *Orchestrator {
	return &Orchestrator{Files: files, Store: store}
}

// IngestAll загружает все доступные файлы выгрузки в базу.
//
// Повторный запуск по уже загруженному корпусу идемпотентен: новых строк не
// появляется, каждая запись попадает в оба списка дубликатов отчёта.
// Файл, который не скачался или не распарсился, пропускается целиком и
// фиксируется в отчёте - строки никогда не теряются молча. Для каждой записи
// сначала решается судьба корабля, и только после того, как корабль точно
// существует, вставляется результат мониторинга.
func (o *Orchestrator) IngestAll(ctx context.Context) (ds.IngestReport, error) {
	runID := uuid.NewString()
	log := logrus.WithField("ingest_run", runID)

	report := ds.NewIngestReport()

	files, err := o.Files.ListAvailableFiles(ctx)
	if err != nil {
		return report, fmt.Errorf("list available files: %w", err)
	}
	log.Infof("ingesting %d files", len(files))

	// Порядок записей: файлы в порядке листинга, строки в порядке файла.
	var records []cleaner.Record
	for _, file := range files {
		data, err := o.Files.FetchFile(ctx, file)
		if err != nil {
			log.Errorf("fetch %s: %v", file, err)
			report.FailedFiles[file] = err.Error()
			continue
		}
		cleaned, err := cleaner.CleanFile(data)
		if err != nil {
			log.Errorf("clean %s: %v", file, err)
			report.FailedFiles[file] = err.Error()
			continue
		}
		log.Infof("cleaned %s: %d records", file, len(cleaned))
		records = append(records, cleaned...)
	}

	inserted := 0
	for _, rec := range records {
		_, created, err := o.Store.CreateShipIfAbsent(rec.Ship())
		if err != nil {
			return report, fmt.Errorf("insert ship %d/%d: %w", rec.ImoNumber, rec.ReportingPeriod, err)
		}
		if !created {
			report.Ships = append(report.Ships, rec.Ship())
		} else {
			inserted++
		}

		// Корабль к этому моменту существует (вставлен сейчас или раньше).
		_, created, err = o.Store.CreateMonitoringResultIfAbsent(rec.MonitoringResult())
		if err != nil {
			return report, fmt.Errorf("insert monitoring result %d/%d: %w", rec.ImoNumber, rec.ReportingPeriod, err)
		}
		if !created {
			report.MonitoringResults = append(report.MonitoringResults, rec.MonitoringResult())
		} else {
			inserted++
		}
	}

	log.Infof("ingest finished: %d rows inserted, %d duplicate ships, %d duplicate monitoring results, %d failed files",
		inserted, len(report.Ships), len(report.MonitoringResults), len(report.FailedFiles))
	return report, nil
}
