// Package ui provides an optional interactive terminal menu over the
// task service.
package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"task-tracker/internal/domain"
	"task-tracker/internal/services"
)

// RunMenu starts the interactive task browser.
func RunMenu(ctx context.Context, service services.TaskService) error {
	model := newMenuModel(service)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

type menuModel struct {
	service  services.TaskService
	tasks    []*domain.Task
	cursor   int
	filter   domain.Status
	showHelp bool
	notice   string
}

func newMenuModel(service services.TaskService) *menuModel {
	m := &menuModel{service: service}
	m.refresh()
	return m
}

// refresh reloads the visible task list from the service, applying the
// active status filter.
func (m *menuModel) refresh() {
	if m.filter != "" {
		m.tasks = m.service.GetByStatus(m.filter)
	} else {
		m.tasks = m.service.GetAll()
	}
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *menuModel) Init() tea.Cmd {
	return nil
}

func (m *menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.tasks)-1 {
				m.cursor++
			}
		case "r", "f5":
			m.notice = ""
			m.refresh()
		case "h", "?":
			m.showHelp = !m.showHelp
		case "1":
			m.filter = domain.StatusPending
			m.refresh()
		case "2":
			m.filter = domain.StatusInProgress
			m.refresh()
		case "3":
			m.filter = domain.StatusCompleted
			m.refresh()
		case "0":
			m.filter = ""
			m.refresh()
		case "d":
			m.markDone()
		case "p":
			m.cyclePriority()
		case "x":
			m.deleteSelected()
		}
	}
	return m, nil
}

func (m *menuModel) selected() *domain.Task {
	if len(m.tasks) == 0 || m.cursor < 0 || m.cursor >= len(m.tasks) {
		return nil
	}
	return m.tasks[m.cursor]
}

func (m *menuModel) markDone() {
	task := m.selected()
	if task == nil {
		return
	}
	if _, err := m.service.UpdateStatus(task.ID(), domain.StatusCompleted); err != nil {
		m.notice = err.Error()
		return
	}
	m.notice = fmt.Sprintf("Completed %q", task.Title())
	m.refresh()
}

// cyclePriority steps the selected task through the priority levels.
func (m *menuModel) cyclePriority() {
	task := m.selected()
	if task == nil {
		return
	}
	levels := domain.Priorities()
	next := levels[task.Priority().Rank()%len(levels)]
	if _, err := m.service.UpdatePriority(task.ID(), next); err != nil {
		m.notice = err.Error()
		return
	}
	m.notice = fmt.Sprintf("Priority of %q set to %s", task.Title(), next)
	m.refresh()
}

func (m *menuModel) deleteSelected() {
	task := m.selected()
	if task == nil {
		return
	}
	if m.service.Delete(task.ID()) {
		m.notice = fmt.Sprintf("Deleted %q", task.Title())
	}
	m.refresh()
}

func (m *menuModel) View() string {
	var b strings.Builder
	b.WriteString("Task Tracker\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	if m.showHelp {
		writeHelp(&b)
		return b.String()
	}

	if m.filter != "" {
		fmt.Fprintf(&b, "Filter: %s (0 to clear)\n\n", m.filter)
	}

	if len(m.tasks) == 0 {
		b.WriteString("No tasks.\n")
	}
	for i, task := range m.tasks {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		fmt.Fprintf(&b, "%s%-30s %-12s %-8s %-12s %s\n",
			marker, clip(task.Title(), 30), clip(task.Category(), 12),
			task.Priority(), task.Status(), task.DueDate())
	}

	if m.notice != "" {
		b.WriteString("\n" + m.notice + "\n")
	}

	b.WriteString("\n[j/k] move  [d] done  [p] priority  [x] delete  [1-3/0] filter  [r] refresh  [h] help  [q] quit\n")
	return b.String()
}

func writeHelp(b *strings.Builder) {
	b.WriteString("Keys:\n")
	b.WriteString("  j / down, k / up   move the selection\n")
	b.WriteString("  d                  mark the selected task completed\n")
	b.WriteString("  p                  cycle the selected task's priority\n")
	b.WriteString("  x                  delete the selected task\n")
	b.WriteString("  1 / 2 / 3          show only PENDING / IN_PROGRESS / COMPLETED\n")
	b.WriteString("  0                  clear the status filter\n")
	b.WriteString("  r                  reload the list\n")
	b.WriteString("  h, ?               toggle this help\n")
	b.WriteString("  q, ctrl+c          quit\n")
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
