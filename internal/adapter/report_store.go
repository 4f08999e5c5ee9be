package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "dartshake.dev/pkg/dartshake/internal/model"
)

// Report file names inside the output directory.
const (
	FilesReportName = "unused_files.yaml"
	KeysReportName  = "unused_keys.yaml"
	DepsReportName  = "unused_deps.yaml"
)

// ReportStore persists analysis reports so successive runs can be compared or
// fed into CI.
type ReportStore interface {
	SaveFilesReport(dir m.Path, report m.FilesReport) error
	LoadFilesReport(dir m.Path) (m.FilesReport, error)
	SaveKeysReport(dir m.Path, report m.KeysReport) error
	SaveDepsReport(dir m.Path, report m.DepsReport) error
}

// YAMLReportStore writes reports as YAML files under the output directory.
type YAMLReportStore struct{}

// NewReportStore constructs a YAMLReportStore.
func NewReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// SaveFilesReport writes the unused-file report.
func (s *YAMLReportStore) SaveFilesReport(dir m.Path, report m.FilesReport) error {
	return s.save(dir, FilesReportName, report)
}

// LoadFilesReport reads back a previously saved unused-file report.
func (s *YAMLReportStore) LoadFilesReport(dir m.Path) (m.FilesReport, error) {
	var report m.FilesReport

	data, err := os.ReadFile(filepath.Join(string(dir), FilesReportName))
	if err != nil {
		return report, fmt.Errorf("read report: %w", err)
	}

	if err := yaml.Unmarshal(data, &report); err != nil {
		return report, fmt.Errorf("decode report: %w", err)
	}

	return report, nil
}

// SaveKeysReport writes the unused-translation-keys report.
func (s *YAMLReportStore) SaveKeysReport(dir m.Path, report m.KeysReport) error {
	return s.save(dir, KeysReportName, report)
}

// SaveDepsReport writes the unused-dependencies report.
func (s *YAMLReportStore) SaveDepsReport(dir m.Path, report m.DepsReport) error {
	return s.save(dir, DepsReportName, report)
}

func (s *YAMLReportStore) save(dir m.Path, name string, report any) error {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if err := os.WriteFile(filepath.Join(string(dir), name), data, 0o600); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}
