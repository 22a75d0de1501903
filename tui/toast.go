package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const toastTimeout = 4 * time.Second

type toastKind int

const (
	toastSuccess toastKind = iota
	toastError
)

// toast is the transient status line. seq guards against a stale expiry tick
// clearing a newer toast.
type toast struct {
	text string
	kind toastKind
	seq  int
}

func (t *toast) show(kind toastKind, text string) tea.Cmd {
	t.seq++
	t.text = text
	t.kind = kind
	seq := t.seq
	return tea.Tick(toastTimeout, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

func (t *toast) expire(msg toastExpiredMsg) {
	if msg.seq == t.seq {
		t.text = ""
	}
}

func (t toast) render() string {
	if t.text == "" {
		return ""
	}
	if t.kind == toastError {
		return toastErrorStyle.Render(t.text)
	}
	return toastSuccessStyle.Render(t.text)
}
