package ds

// @Schema(description="Report of a bulk ingestion run: records skipped as duplicates and files skipped on parse errors")
type IngestReport struct {
	Ships             []Ship             `json:"ships"`
	MonitoringResults []MonitoringResult `json:"monitoring_results"`
	FailedFiles       map[string]string  `json:"failed_files,omitempty"`
}

func NewIngestReport() IngestReport {
	return IngestReport{
		Ships:             []Ship{},
		MonitoringResults: []MonitoringResult{},
		FailedFiles:       map[string]string{},
	}
}
