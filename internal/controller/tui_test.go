package controller

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestConfirmModel_View(t *testing.T) {
	model := newConfirmModel(7)

	view := model.View()
	if !strings.Contains(view, "7 file(s)") {
		t.Errorf("view missing file count:\n%s", view)
	}

	if !strings.Contains(view, "yes") {
		t.Errorf("view missing confirmation hint:\n%s", view)
	}
}

func TestConfirmModel_Update(t *testing.T) {
	tests := []struct {
		name  string
		typed string
		key   tea.KeyType
		want  bool
	}{
		{name: "yes confirms", typed: "yes", key: tea.KeyEnter, want: true},
		{name: "y confirms", typed: "y", key: tea.KeyEnter, want: true},
		{name: "anything else declines", typed: "nope", key: tea.KeyEnter, want: false},
		{name: "empty declines", typed: "", key: tea.KeyEnter, want: false},
		{name: "escape declines typed yes", typed: "yes", key: tea.KeyEsc, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := newConfirmModel(1)

			var next tea.Model = model

			for _, r := range tt.typed {
				next, _ = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
			}

			next, cmd := next.Update(tea.KeyMsg{Type: tt.key})

			final, ok := next.(confirmModel)
			if !ok {
				t.Fatalf("unexpected model type %T", next)
			}

			if final.confirmed != tt.want {
				t.Errorf("confirmed = %v, want %v", final.confirmed, tt.want)
			}

			if cmd == nil {
				t.Errorf("expected a quit command")
			}
		})
	}
}
