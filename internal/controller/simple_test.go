package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	m "dartshake.dev/pkg/dartshake/internal/model"
)

func newBufferedUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd), &buf
}

func TestSimpleUI_DisplayFilesReport(t *testing.T) {
	tests := []struct {
		name         string
		report       m.FilesReport
		wantContains []string
	}{
		{
			name:         "empty report",
			report:       m.FilesReport{TotalFiles: 12, Reachable: 12},
			wantContains: []string{"No unused files", "12 files scanned"},
		},
		{
			name: "unused files listed with totals",
			report: m.FilesReport{
				TotalFiles: 5,
				Reachable:  3,
				Unused:     []string{"lib/a.dart", "lib/sub/b.dart"},
			},
			wantContains: []string{"lib/a.dart", "lib/sub/b.dart", "Total 2 of 5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, buf := newBufferedUI()

			if err := ui.DisplayFilesReport(tt.report); err != nil {
				t.Fatalf("DisplayFilesReport: %v", err)
			}

			for _, want := range tt.wantContains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output missing %q:\n%s", want, buf.String())
				}
			}
		})
	}
}

func TestSimpleUI_DisplayKeysReport(t *testing.T) {
	ui, buf := newBufferedUI()

	report := m.KeysReport{
		TranslationFiles: 2,
		DeclaredKeys:     40,
		Unused:           []string{"home.title", "settings.reset"},
	}

	if err := ui.DisplayKeysReport(report); err != nil {
		t.Fatalf("DisplayKeysReport: %v", err)
	}

	for _, want := range []string{"home.title", "settings.reset", "Total 2 of 40"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output missing %q:\n%s", want, buf.String())
		}
	}
}

func TestSimpleUI_DisplayDepsReport(t *testing.T) {
	ui, buf := newBufferedUI()

	if err := ui.DisplayDepsReport(m.DepsReport{Declared: 6, Unused: []string{"http"}}); err != nil {
		t.Fatalf("DisplayDepsReport: %v", err)
	}

	if !strings.Contains(buf.String(), "http") {
		t.Errorf("output missing dependency name:\n%s", buf.String())
	}
}

func TestSimpleUI_ConfirmDeletion(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "yes", input: "yes\n", want: true},
		{name: "y", input: "y\n", want: true},
		{name: "uppercase", input: "Y\n", want: true},
		{name: "no", input: "no\n", want: false},
		{name: "empty defaults to no", input: "\n", want: false},
		{name: "eof defaults to no", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			cmd := &cobra.Command{}
			cmd.SetOut(&buf)
			cmd.SetIn(strings.NewReader(tt.input))

			ui := NewSimpleUI(cmd)

			got, err := ui.ConfirmDeletion(3)
			if err != nil {
				t.Fatalf("ConfirmDeletion: %v", err)
			}

			if got != tt.want {
				t.Errorf("ConfirmDeletion(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSimpleUI_DisplayCleanResult(t *testing.T) {
	ui, buf := newBufferedUI()

	result := m.CleanResult{
		Outcomes: []m.DeleteOutcome{
			{Path: "lib/a.dart"},
			{Path: "lib/b.dart", Err: errors.New("permission denied")},
		},
		Deleted: 1,
		Failed:  1,
	}

	if err := ui.DisplayCleanResult(result); err != nil {
		t.Fatalf("DisplayCleanResult: %v", err)
	}

	for _, want := range []string{"lib/b.dart", "permission denied", "Deleted 1 file(s), 1 failed"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output missing %q:\n%s", want, buf.String())
		}
	}
}

func TestIsTTY_NonFileWriter(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Errorf("a bytes.Buffer is not a terminal")
	}
}
