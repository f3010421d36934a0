package cleaner

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"thetis_mrv/internal/app/ds"
)

// Значения-заглушки, которые THETIS-MRV пишет вместо настоящих данных.
const (
	docNotIssued   = "DoC not issued"
	divisionByZero = "Division by zero!"
)

// Даты в выгрузке идут в формате DD/MM/YYYY.
const dateLayout = "02/01/2006"

// renames maps unit-suffixed source headers (already lowercased with
// underscores) to the canonical field names. Both historical spellings of
// the annual-time-at-sea column appear in real exports.
var renames = map[string]string{
	"total_fuel_consumption_[m_tonnes]":                          "total_fuel_consumption",
	"total_co₂_emissions_[m_tonnes]":                             "total_co2_emissions",
	"annual_total_time_spent_at_sea_[hours]":                     "annual_time_spent_at_sea",
	"annual_time_spent_at_sea_[hours]":                           "annual_time_spent_at_sea",
	"annual_average_fuel_consumption_per_distance_[kg_/_n_mile]": "average_fuel_consumption_per_distance",
	"annual_average_co₂_emissions_per_distance_[kg_co₂_/_n_mile]": "average_co2_emissions_per_distance",
}

var requiredColumns = []string{
	"imo_number",
	"reporting_period",
	"name",
	"ship_type",
	"technical_efficiency",
	"port_of_registry",
	"home_port",
	"ice_class",
	"doc_issue_date",
	"doc_expiry_date",
	"total_fuel_consumption",
	"total_co2_emissions",
	"annual_time_spent_at_sea",
	"average_fuel_consumption_per_distance",
	"average_co2_emissions_per_distance",
}

// Record - одна проверенная строка выгрузки со всеми полями Ship и
// MonitoringResult. Разделение на две сущности делают проекции Ship() и
// MonitoringResult().
type Record struct {
	ImoNumber           int
	ReportingPeriod     int
	Name                string
	ShipType            string
	TechnicalEfficiency string
	PortOfRegistry      string
	HomePort            string
	IceClass            string
	DocIssueDate        time.Time
	DocExpiryDate       time.Time

	TotalFuelConsumption              *float64
	TotalCo2Emissions                 *float64
	AnnualTimeSpentAtSea              *float64
	AverageFuelConsumptionPerDistance *float64
	AverageCo2EmissionsPerDistance    *float64
}

// Ship - проекция записи на модель корабля.
func (r Record) Ship() ds.Ship {
	return ds.Ship{
		ImoNumber:           r.ImoNumber,
		ReportingPeriod:     r.ReportingPeriod,
		Name:                r.Name,
		ShipType:            r.ShipType,
		TechnicalEfficiency: r.TechnicalEfficiency,
		PortOfRegistry:      r.PortOfRegistry,
		HomePort:            r.HomePort,
		IceClass:            r.IceClass,
		DocIssueDate:        r.DocIssueDate,
		DocExpiryDate:       r.DocExpiryDate,
	}
}

// MonitoringResult - проекция записи на модель годовых показателей.
func (r Record) MonitoringResult() ds.MonitoringResult {
	return ds.MonitoringResult{
		TotalFuelConsumption:              r.TotalFuelConsumption,
		TotalCo2Emissions:                 r.TotalCo2Emissions,
		AnnualTimeSpentAtSea:              r.AnnualTimeSpentAtSea,
		AverageFuelConsumptionPerDistance: r.AverageFuelConsumptionPerDistance,
		AverageCo2EmissionsPerDistance:    r.AverageCo2EmissionsPerDistance,
		ShipImoNumber:                     r.ImoNumber,
		ShipReportingPeriod:               r.ReportingPeriod,
	}
}

// CleanFile парсит сырой xlsx-файл THETIS-MRV в типизированные записи.
//
// Первые две строки листа декоративные и пропускаются, третья - заголовок.
// Строки со значением "DoC not issued" в doc_issue_date выбрасываются
// целиком. Ошибка структуры или непарсящаяся дата - фатальная ошибка для
// всего файла, отдельные строки не восстанавливаются.
func CleanFile(data []byte) ([]Record, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 3 {
		return nil, fmt.Errorf("sheet %q has no header row", sheets[0])
	}

	cols, err := columnIndex(rows[2])
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(rows)-3)
	for i, row := range rows[3:] {
		if emptyRow(row) {
			continue
		}
		// Номер строки в терминах листа, для сообщений об ошибках.
		rowNum := i + 4

		if cell(row, cols["doc_issue_date"]) == docNotIssued {
			continue
		}

		rec, err := parseRow(row, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// columnIndex канонизирует заголовки и возвращает имя колонки -> индекс.
func columnIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		canonical := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
		if renamed, ok := renames[canonical]; ok {
			canonical = renamed
		}
		if _, exists := cols[canonical]; !exists {
			cols[canonical] = i
		}
	}
	for _, required := range requiredColumns {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing expected column %q", required)
		}
	}
	return cols, nil
}

func parseRow(row []string, cols map[string]int) (Record, error) {
	rec := Record{
		Name:                cell(row, cols["name"]),
		ShipType:            cell(row, cols["ship_type"]),
		TechnicalEfficiency: cell(row, cols["technical_efficiency"]),
		PortOfRegistry:      cell(row, cols["port_of_registry"]),
		HomePort:            cell(row, cols["home_port"]),
		IceClass:            cell(row, cols["ice_class"]),
	}

	var err error
	if rec.ImoNumber, err = parseInt(cell(row, cols["imo_number"])); err != nil {
		return Record{}, fmt.Errorf("imo_number: %w", err)
	}
	if rec.ReportingPeriod, err = parseInt(cell(row, cols["reporting_period"])); err != nil {
		return Record{}, fmt.Errorf("reporting_period: %w", err)
	}
	if rec.DocIssueDate, err = time.Parse(dateLayout, cell(row, cols["doc_issue_date"])); err != nil {
		return Record{}, fmt.Errorf("doc_issue_date: %w", err)
	}
	if rec.DocExpiryDate, err = time.Parse(dateLayout, cell(row, cols["doc_expiry_date"])); err != nil {
		return Record{}, fmt.Errorf("doc_expiry_date: %w", err)
	}

	if rec.TotalFuelConsumption, err = parseMetric(cell(row, cols["total_fuel_consumption"]), false); err != nil {
		return Record{}, fmt.Errorf("total_fuel_consumption: %w", err)
	}
	if rec.TotalCo2Emissions, err = parseMetric(cell(row, cols["total_co2_emissions"]), false); err != nil {
		return Record{}, fmt.Errorf("total_co2_emissions: %w", err)
	}
	if rec.AnnualTimeSpentAtSea, err = parseMetric(cell(row, cols["annual_time_spent_at_sea"]), false); err != nil {
		return Record{}, fmt.Errorf("annual_time_spent_at_sea: %w", err)
	}
	if rec.AverageFuelConsumptionPerDistance, err = parseMetric(cell(row, cols["average_fuel_consumption_per_distance"]), true); err != nil {
		return Record{}, fmt.Errorf("average_fuel_consumption_per_distance: %w", err)
	}
	if rec.AverageCo2EmissionsPerDistance, err = parseMetric(cell(row, cols["average_co2_emissions_per_distance"]), true); err != nil {
		return Record{}, fmt.Errorf("average_co2_emissions_per_distance: %w", err)
	}
	return rec, nil
}

func parseInt(raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", raw)
	}
	return v, nil
}

// parseMetric разбирает числовую ячейку. Пустая ячейка - явное отсутствие
// значения (nil), а не NaN: дальше запись сериализуется в JSON.
// "Division by zero!" реестр пишет в колонках на милю, когда судно прошло
// нулевую дистанцию; по соглашению это ноль.
func parseMetric(raw string, allowDivisionSentinel bool) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if allowDivisionSentinel && raw == divisionByZero {
		zero := 0.0
		return &zero, nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil {
		return nil, fmt.Errorf("not a number: %q", raw)
	}
	return &v, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func emptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
