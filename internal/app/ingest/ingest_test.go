package ingest

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"thetis_mrv/internal/app/ds"
)

type fakeFiles struct {
	order []string
	files map[string][]byte
}

func (f *fakeFiles) ListAvailableFiles(_ context.Context) ([]string, error) {
	return f.order, nil
}

func (f *fakeFiles) FetchFile(_ context.Context, name string) ([]byte, error) {
	data, ok := f.files[name]
	if !ok {
		return nil, fmt.Errorf("object %q does not exist", name)
	}
	return data, nil
}

type key struct{ imo, period int }

type fakeStore struct {
	ships   map[key]ds.Ship
	results map[key]ds.MonitoringResult
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		ships:   map[key]ds.Ship{},
		results: map[key]ds.MonitoringResult{},
	}
}

func (s *fakeStore) CreateShipIfAbsent(ship ds.Ship) (ds.Ship, bool, error) {
	k := key{ship.ImoNumber, ship.ReportingPeriod}
	if existing, ok := s.ships[k]; ok {
		return existing, false, nil
	}
	s.ships[k] = ship
	return ship, true, nil
}

func (s *fakeStore) CreateMonitoringResultIfAbsent(result ds.MonitoringResult) (ds.MonitoringResult, bool, error) {
	k := key{result.ShipImoNumber, result.ShipReportingPeriod}
	if _, ok := s.ships[k]; !ok {
		// Оркестратор обязан сначала обеспечить существование корабля.
		return ds.MonitoringResult{}, false, fmt.Errorf("referenced ship does not exist: %d/%d", k.imo, k.period)
	}
	if existing, ok := s.results[k]; ok {
		return existing, false, nil
	}
	s.results[k] = result
	return result, true, nil
}

var testHeader = []string{
	"IMO Number", "Reporting Period", "Name", "Ship type", "Technical efficiency",
	"Port of Registry", "Home Port", "Ice Class", "DoC issue date", "DoC expiry date",
	"Total Fuel Consumption [m tonnes]", "Total CO₂ emissions [m tonnes]",
	"Annual Total time spent at sea [hours]",
	"Annual average Fuel consumption per distance [kg / n mile]",
	"Annual average CO₂ emissions per distance [kg CO₂ / n mile]",
}

func workbook(t *testing.T, rows ...[]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetList()[0]
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"EU MRV Publication of information"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"Version 1"}))
	headerCells := make([]interface{}, len(testHeader))
	for i, h := range testHeader {
		headerCells[i] = h
	}
	require.NoError(t, f.SetSheetRow(sheet, "A3", &headerCells))
	for i, row := range rows {
		row := row
		require.NoError(t, f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+4), &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func vesselRow(imo, period int, name string) []interface{} {
	return []interface{}{
		fmt.Sprint(imo), fmt.Sprint(period), name, "Bulk carrier", "EIV 10.1",
		"Valletta", "Valletta", "", "01/02/2021", "31/12/2022",
		"100.5", "320.7", "2800", "40.1", "128.9",
	}
}

func TestIngestAllInsertsEveryRecordOnce(t *testing.T) {
	files := &fakeFiles{
		order: []string{"2019.xlsx", "2020.xlsx"},
		files: map[string][]byte{
			"2019.xlsx": workbook(t, vesselRow(9074729, 2019, "POLAR STAR"), vesselRow(5383304, 2019, "AURORA")),
			"2020.xlsx": workbook(t, vesselRow(9074729, 2020, "POLAR STAR")),
		},
	}
	store := newFakeStore()

	report, err := NewOrchestrator(files, store).IngestAll(context.Background())
	require.NoError(t, err)

	assert.Empty(t, report.Ships)
	assert.Empty(t, report.MonitoringResults)
	assert.Empty(t, report.FailedFiles)
	assert.Len(t, store.ships, 3)
	assert.Len(t, store.results, 3)
}

func TestIngestAllIsIdempotent(t *testing.T) {
	files := &fakeFiles{
		order: []string{"2020.xlsx"},
		files: map[string][]byte{
			"2020.xlsx": workbook(t, vesselRow(9074729, 2020, "POLAR STAR"), vesselRow(5383304, 2020, "AURORA")),
		},
	}
	store := newFakeStore()
	orchestrator := NewOrchestrator(files, store)

	_, err := orchestrator.IngestAll(context.Background())
	require.NoError(t, err)
	require.Len(t, store.ships, 2)

	// Второй прогон по тому же корпусу: ни одной новой строки, каждая
	// запись отмечена дубликатом в обоих списках.
	report, err := orchestrator.IngestAll(context.Background())
	require.NoError(t, err)

	assert.Len(t, store.ships, 2)
	assert.Len(t, store.results, 2)
	assert.Len(t, report.Ships, 2)
	assert.Len(t, report.MonitoringResults, 2)
}

func TestIngestAllSupersetInsertsOnlyNewRecords(t *testing.T) {
	store := newFakeStore()

	first := &fakeFiles{
		order: []string{"2019.xlsx"},
		files: map[string][]byte{"2019.xlsx": workbook(t, vesselRow(9074729, 2019, "POLAR STAR"))},
	}
	_, err := NewOrchestrator(first, store).IngestAll(context.Background())
	require.NoError(t, err)

	superset := &fakeFiles{
		order: []string{"2019.xlsx", "2020.xlsx"},
		files: map[string][]byte{
			"2019.xlsx": workbook(t, vesselRow(9074729, 2019, "POLAR STAR")),
			"2020.xlsx": workbook(t, vesselRow(9074729, 2020, "POLAR STAR")),
		},
	}
	report, err := NewOrchestrator(superset, store).IngestAll(context.Background())
	require.NoError(t, err)

	assert.Len(t, store.ships, 2)
	assert.Len(t, store.results, 2)
	require.Len(t, report.Ships, 1)
	assert.Equal(t, 2019, report.Ships[0].ReportingPeriod)
	require.Len(t, report.MonitoringResults, 1)
	assert.Equal(t, 2019, report.MonitoringResults[0].ShipReportingPeriod)
}

func TestIngestAllSkipsUnparsableFile(t *testing.T) {
	files := &fakeFiles{
		order: []string{"broken.xlsx", "2020.xlsx"},
		files: map[string][]byte{
			"broken.xlsx": []byte("not a spreadsheet"),
			"2020.xlsx":   workbook(t, vesselRow(9074729, 2020, "POLAR STAR")),
		},
	}
	store := newFakeStore()

	report, err := NewOrchestrator(files, store).IngestAll(context.Background())
	require.NoError(t, err)

	require.Contains(t, report.FailedFiles, "broken.xlsx")
	assert.Len(t, store.ships, 1)
	assert.Len(t, store.results, 1)
}

func TestIngestAllReportsMissingFile(t *testing.T) {
	files := &fakeFiles{
		order: []string{"gone.xlsx"},
		files: map[string][]byte{},
	}
	store := newFakeStore()

	report, err := NewOrchestrator(files, store).IngestAll(context.Background())
	require.NoError(t, err)
	require.Contains(t, report.FailedFiles, "gone.xlsx")
	assert.Empty(t, store.ships)
}

func TestIngestAllSettlesShipBeforeMonitoringResult(t *testing.T) {
	// fakeStore возвращает ошибку, если результат мониторинга приходит
	// раньше корабля, так что успешный прогон сам по себе проверяет порядок.
	files := &fakeFiles{
		order: []string{"2020.xlsx"},
		files: map[string][]byte{"2020.xlsx": workbook(t, vesselRow(9074729, 2020, "POLAR STAR"))},
	}
	store := newFakeStore()

	_, err := NewOrchestrator(files, store).IngestAll(context.Background())
	require.NoError(t, err)
	require.Len(t, store.results, 1)
}
