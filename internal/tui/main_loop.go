package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-money-keeper/internal/service"
	"github.com/MKhiriev/go-money-keeper/models"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenStatus screen = iota
	screenSnapshots
)

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices

	spinner spinner.Model
	screen  screen
	syncing bool
	status  string
	errMsg  string

	snapshots        []models.SnapshotInfo
	idx              int
	loadingSnapshots bool
	confirmRollback  bool

	// conflict is non-nil while the keep-cloud / keep-device prompt is
	// shown.
	conflict *service.ConflictInfo
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices) mainLoopModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return mainLoopModel{
		ctx:      ctx,
		services: services,
		spinner:  s,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, cmdStatusTick())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case statusTickMsg:
		// periodic re-render so background sync results show up
		return m, cmdStatusTick()

	case syncDoneMsg:
		m.syncing = false
		if msg.err != nil {
			var conflictErr *service.ConflictError
			if errors.As(msg.err, &conflictErr) {
				m.conflict = &conflictErr.Info
				m.errMsg = ""
				return m, nil
			}
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.status = "Синхронизация завершена"
		m.errMsg = ""
		return m, nil

	case snapshotsLoadedMsg:
		m.loadingSnapshots = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.snapshots = msg.snapshots
		if m.idx >= len(m.snapshots) {
			m.idx = len(m.snapshots) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case rollbackDoneMsg:
		m.syncing = false
		m.confirmRollback = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.status = "Снапшот восстановлен"
		m.errMsg = ""
		m.screen = screenStatus
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.conflict != nil {
		return m.updateConflict(keyMsg)
	}

	switch m.screen {
	case screenSnapshots:
		return m.updateSnapshots(keyMsg)
	default:
		return m.updateStatus(keyMsg)
	}
}

func (m mainLoopModel) updateStatus(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "u":
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		m.status = ""
		return m, tea.Batch(m.spinner.Tick, m.cmdUpload())

	case "d":
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		m.status = ""
		return m, tea.Batch(m.spinner.Tick, m.cmdDownload(nil))

	case "s":
		m.screen = screenSnapshots
		m.loadingSnapshots = true
		return m, m.cmdLoadSnapshots()
	}

	return m, nil
}

func (m mainLoopModel) updateSnapshots(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmRollback {
		switch keyMsg.String() {
		case "y":
			if m.idx >= len(m.snapshots) {
				m.confirmRollback = false
				return m, nil
			}
			m.syncing = true
			return m, tea.Batch(m.spinner.Tick, m.cmdRollback(m.snapshots[m.idx].Key()))
		case "n", "esc":
			m.confirmRollback = false
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "esc":
		m.screen = screenStatus
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.snapshots)-1 {
			m.idx++
		}
	case "enter":
		if len(m.snapshots) > 0 && !m.syncing {
			m.confirmRollback = true
		}
	}

	return m, nil
}

func (m mainLoopModel) updateConflict(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "c":
		m.conflict = nil
		m.syncing = true
		resolution := service.ResolutionAdoptRemote
		return m, tea.Batch(m.spinner.Tick, m.cmdDownload(&resolution))
	case "l":
		m.conflict = nil
		m.syncing = true
		resolution := service.ResolutionKeepLocal
		return m, tea.Batch(m.spinner.Tick, m.cmdDownload(&resolution))
	case "esc", "n":
		m.conflict = nil
		m.status = "Загрузка отменена"
	}

	return m, nil
}

func (m mainLoopModel) View() string {
	if m.conflict != nil {
		return renderConflict(*m.conflict)
	}

	switch m.screen {
	case screenSnapshots:
		return m.viewSnapshots()
	default:
		return m.viewStatus()
	}
}

func (m mainLoopModel) viewStatus() string {
	var b strings.Builder

	status := m.services.SyncCoordinator.Status()

	if status.SignedIn {
		b.WriteString("Сессия:        активна\n")
	} else {
		b.WriteString("Сессия:        не авторизован\n")
	}

	if status.LastSync != nil {
		b.WriteString("Синхронизация: " + status.LastSync.Local().Format("02.01.2006 15:04:05") + "\n")
	} else {
		b.WriteString("Синхронизация: ещё не выполнялась\n")
	}

	if status.PendingEdit {
		b.WriteString("Изменения:     ожидают отправки\n")
	} else {
		b.WriteString("Изменения:     нет\n")
	}

	if status.LastError != nil {
		line := "Сбой фоновой синхронизации"
		if status.LastErrorAt != nil {
			line += " (" + status.LastErrorAt.Local().Format("15:04:05") + ")"
		}
		line += ": " + humanizeServerUnavailableError(status.LastError)
		b.WriteString(errorStyle.Render(line) + "\n")
	}

	if m.syncing || status.Syncing {
		b.WriteString("\n" + m.spinner.View() + " Синхронизация...")
	} else if m.status != "" {
		b.WriteString("\nOK: " + m.status)
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
	}

	return renderPage("СИНХРОНИЗАЦИЯ", strings.TrimRight(b.String(), "\n"),
		"u: выгрузить │ d: загрузить │ s: снапшоты │ q: выход")
}

func (m mainLoopModel) viewSnapshots() string {
	var b strings.Builder

	if m.loadingSnapshots {
		b.WriteString(m.spinner.View() + " Загрузка истории...")
	} else if len(m.snapshots) == 0 {
		b.WriteString("История пуста")
	} else {
		b.WriteString(fmt.Sprintf("%-24s │ %-10s │ %-10s\n", "Сохранено", "Операции", "Инвестиции"))
		b.WriteString(strings.Repeat("─", 52))
		b.WriteString("\n")
		for i, snap := range m.snapshots {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			savedAt := snap.SavedAt.Local().Format("02.01.2006 15:04:05")
			b.WriteString(fmt.Sprintf("%s %-22s │ %-10d │ %-10d\n",
				cursor, fitText(savedAt, 22), snap.TransactionsCount, snap.InvestmentsCount))
		}
	}

	if m.confirmRollback && m.idx < len(m.snapshots) {
		b.WriteString("\n")
		b.WriteString("Восстановить состояние от " + m.snapshots[m.idx].SavedAt.Local().Format("02.01.2006 15:04:05") + "?\n")
		b.WriteString("Текущие данные в облаке будут заменены.\n")
		b.WriteString("y: да │ n: нет")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
	}

	return renderPage("ИСТОРИЯ СНАПШОТОВ", strings.TrimRight(b.String(), "\n"),
		"enter: восстановить │ ↑/↓: навигация │ esc: назад")
}

func (m mainLoopModel) cmdUpload() tea.Cmd {
	return func() tea.Msg {
		return syncDoneMsg{err: m.services.SyncCoordinator.Push(m.ctx)}
	}
}

func (m mainLoopModel) cmdDownload(resolution *service.Resolution) tea.Cmd {
	return func() tea.Msg {
		var resolver service.ConflictResolver
		if resolution != nil {
			chosen := *resolution
			resolver = func(service.ConflictInfo) (service.Resolution, error) {
				return chosen, nil
			}
		}
		return syncDoneMsg{err: m.services.SyncCoordinator.Download(m.ctx, resolver)}
	}
}

func (m mainLoopModel) cmdLoadSnapshots() tea.Cmd {
	return func() tea.Msg {
		snapshots, err := m.services.SyncCoordinator.Snapshots(m.ctx)
		return snapshotsLoadedMsg{snapshots: snapshots, err: err}
	}
}

func (m mainLoopModel) cmdRollback(savedAt string) tea.Cmd {
	return func() tea.Msg {
		return rollbackDoneMsg{err: m.services.SyncCoordinator.Rollback(m.ctx, savedAt)}
	}
}

func cmdStatusTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return statusTickMsg{}
	})
}
