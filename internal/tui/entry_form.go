package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hannesw/tgeld/internal/billing"
	"github.com/hannesw/tgeld/internal/db"
	"github.com/hannesw/tgeld/internal/models"
	"github.com/hannesw/tgeld/internal/parser"
)

// Step represents the current step in the wizard
type Step int

const (
	StepTask Step = iota
	StepDate
	StepStart
	StepAmount
	StepNotes
	StepSave
)

// Input indices into LogEntryModel.inputs
const (
	inputDate = iota
	inputStart
	inputAmount
	inputNotes
)

// LogEntryModel is the TUI model for logging an entry against a task
type LogEntryModel struct {
	store *db.Store

	currentStep Step
	tasks       []models.Task
	taskIndex   int
	inputs      []textinput.Model
	width       int
	height      int

	// Entry data, validated as each step completes
	entryDate string
	startTime string
	amount    string
	notes     string

	// State
	err           error
	completed     bool
	cancelled     bool
	validationErr string
	savedEntryID  uint
	savedPrice    float64
	currency      string
}

// NewLogEntryModel loads the active tasks and builds the wizard model
func NewLogEntryModel(store *db.Store, currency string) (LogEntryModel, error) {
	tasks, err := store.ListActiveTasks()
	if err != nil {
		return LogEntryModel{}, err
	}
	if len(tasks) == 0 {
		return LogEntryModel{}, fmt.Errorf("no active tasks, add one with 'tgeld task add'")
	}

	inputs := make([]textinput.Model, 4)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 60

		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	inputs[inputDate].Placeholder = "today, yesterday, 3 days ago, dd/mm/yyyy (Enter for today)"
	inputs[inputDate].CharLimit = 20

	inputs[inputStart].Placeholder = "Start time HH:MM (Enter for 12:00)"
	inputs[inputStart].CharLimit = 8

	inputs[inputAmount].CharLimit = 10

	inputs[inputNotes].Placeholder = "Additional notes (Enter to skip)"
	inputs[inputNotes].CharLimit = 500

	return LogEntryModel{
		store:       store,
		currentStep: StepTask,
		tasks:       tasks,
		inputs:      inputs,
		currency:    currency,
	}, nil
}

// Init initializes the model
func (m LogEntryModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m LogEntryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "up", "shift+tab":
			if m.currentStep == StepTask {
				if m.taskIndex > 0 {
					m.taskIndex--
				}
				return m, nil
			}
			return m.prevStep()

		case "down":
			if m.currentStep == StepTask {
				if m.taskIndex < len(m.tasks)-1 {
					m.taskIndex++
				}
				return m, nil
			}
			return m.nextStep()

		case "tab":
			return m.nextStep()
		}
	}

	var cmd tea.Cmd
	if idx, ok := m.currentInput(); ok {
		m.inputs[idx], cmd = m.inputs[idx].Update(msg)
	}
	return m, cmd
}

// currentInput maps the current step to its text input, if it has one
func (m LogEntryModel) currentInput() (int, bool) {
	switch m.currentStep {
	case StepDate:
		return inputDate, true
	case StepStart:
		return inputStart, true
	case StepAmount:
		return inputAmount, true
	case StepNotes:
		return inputNotes, true
	default:
		return 0, false
	}
}

func (m LogEntryModel) selectedTask() *models.Task {
	return &m.tasks[m.taskIndex]
}

// handleEnter validates the current step and advances
func (m LogEntryModel) handleEnter() (LogEntryModel, tea.Cmd) {
	m.validationErr = ""

	switch m.currentStep {
	case StepTask:
		// Amount placeholder depends on how the picked task bills
		if m.selectedTask().BillingType == models.PerCount {
			m.inputs[inputAmount].Placeholder = "How many times? e.g. 2"
		} else {
			m.inputs[inputAmount].Placeholder = "Hours worked, e.g. 1.5"
		}
		return m.nextStep()

	case StepDate:
		value := strings.TrimSpace(m.inputs[inputDate].Value())
		if _, err := parser.ParseEntryDate(value); err != nil {
			m.validationErr = err.Error()
			return m, nil
		}
		m.entryDate = value
		return m.nextStep()

	case StepStart:
		value := strings.TrimSpace(m.inputs[inputStart].Value())
		if value != "" {
			if _, err := parser.ParseClock(value); err != nil {
				m.validationErr = err.Error()
				return m, nil
			}
		}
		m.startTime = value
		return m.nextStep()

	case StepAmount:
		value := strings.TrimSpace(m.inputs[inputAmount].Value())
		if m.selectedTask().BillingType == models.PerCount {
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				m.validationErr = "Enter a whole number greater than zero"
				return m, nil
			}
		} else {
			h, err := strconv.ParseFloat(value, 64)
			if err != nil || h <= 0 {
				m.validationErr = "Enter hours greater than zero, e.g. 1.5"
				return m, nil
			}
		}
		m.amount = value
		return m.nextStep()

	case StepNotes:
		m.notes = m.inputs[inputNotes].Value()
		return m.nextStep()

	case StepSave:
		return m.saveEntry()
	}

	return m, nil
}

// nextStep moves to the next step
func (m LogEntryModel) nextStep() (LogEntryModel, tea.Cmd) {
	if m.currentStep < StepSave {
		if idx, ok := m.currentInput(); ok {
			m.inputs[idx].Blur()
		}
		m.currentStep++
		if idx, ok := m.currentInput(); ok {
			m.inputs[idx].Focus()
		}
	}
	return m, textinput.Blink
}

// prevStep moves to the previous step
func (m LogEntryModel) prevStep() (LogEntryModel, tea.Cmd) {
	if m.currentStep > StepTask {
		if idx, ok := m.currentInput(); ok {
			m.inputs[idx].Blur()
		}
		m.currentStep--
		if idx, ok := m.currentInput(); ok {
			m.inputs[idx].Focus()
		}
	}
	return m, textinput.Blink
}

// saveEntry writes the entry to the database
func (m LogEntryModel) saveEntry() (LogEntryModel, tea.Cmd) {
	task := m.selectedTask()

	entryDate, err := parser.ParseEntryDate(m.entryDate)
	if err != nil {
		m.err = err
		return m, nil
	}

	entry := &models.TimeEntry{
		TaskID:    task.ID,
		EntryDate: entryDate,
		Notes:     strings.TrimSpace(m.notes),
	}
	if m.startTime != "" {
		clock, err := parser.ParseClock(m.startTime)
		if err != nil {
			m.err = err
			return m, nil
		}
		entry.SetStartClock(clock)
	}
	if task.BillingType == models.PerCount {
		entry.Count, _ = strconv.Atoi(m.amount)
	} else {
		entry.DurationHours, _ = strconv.ParseFloat(m.amount, 64)
	}

	id, err := m.store.SaveTimeEntry(entry)
	if err != nil {
		m.err = err
		return m, nil
	}

	m.completed = true
	m.savedEntryID = id
	m.savedPrice = entry.TotalPrice
	return m, tea.Quit
}

// previewPrice computes what the entry would cost with the current inputs
func (m LogEntryModel) previewPrice() float64 {
	task := m.selectedTask()
	if task.BillingType == models.PerCount {
		n, _ := strconv.Atoi(m.amount)
		return billing.ComputePrice(task, 0, n)
	}
	h, _ := strconv.ParseFloat(m.amount, 64)
	return billing.ComputePrice(task, h, 0)
}

// View renders the TUI
func (m LogEntryModel) View() string {
	if m.cancelled || m.completed {
		return "" // Exit message is printed after the program ends
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright)).
		MarginBottom(1)
	b.WriteString(titleStyle.Render("💰 Log Entry"))
	b.WriteString("\n\n")

	b.WriteString(m.renderSteps())
	b.WriteString("\n")
	b.WriteString(m.renderCurrentStep())

	if m.validationErr != "" {
		errorStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Bold(true).
			MarginTop(1)
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("❌ " + m.validationErr))
	}
	if m.err != nil {
		errorStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Bold(true).
			MarginTop(1)
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("❌ " + m.err.Error()))
	}

	b.WriteString("\n\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true)
	b.WriteString(helpStyle.Render("Enter: Next | ↑/↓: Move | Shift+Tab: Back | Esc: Cancel"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 2)
	return boxStyle.Render(b.String())
}

// renderSteps renders the step indicator column
func (m LogEntryModel) renderSteps() string {
	var b strings.Builder

	currentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	doneStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess))
	futureStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))

	labels := []string{"Task", "Date", "Start time", "Amount", "Notes", "Save"}
	for i, label := range labels {
		step := Step(i)
		switch {
		case step == m.currentStep:
			b.WriteString(currentStyle.Render("▶ " + label))
		case step < m.currentStep:
			b.WriteString(doneStyle.Render("✓ " + label))
		default:
			b.WriteString(futureStyle.Render("  " + label))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderCurrentStep renders the input area for the active step
func (m LogEntryModel) renderCurrentStep() string {
	var b strings.Builder
	task := m.selectedTask()

	switch m.currentStep {
	case StepTask:
		b.WriteString("📋 Which task?\n")
		selectedStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccentBright)).
			Bold(true)
		plainStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
		for i, t := range m.tasks {
			line := fmt.Sprintf("%s (%.2f %s %s)", t.Name, t.Price, m.currency, t.BillingType)
			if i == m.taskIndex {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString(plainStyle.Render("  " + line))
			}
			b.WriteString("\n")
		}

	case StepDate:
		b.WriteString("📅 Entry date\n")
		b.WriteString(m.inputs[inputDate].View())

	case StepStart:
		b.WriteString("🕐 Start time\n")
		b.WriteString(m.inputs[inputStart].View())

	case StepAmount:
		if task.BillingType == models.PerCount {
			b.WriteString("🔢 How many times?\n")
		} else {
			b.WriteString("⏱ Hours worked\n")
		}
		b.WriteString(m.inputs[inputAmount].View())

	case StepNotes:
		b.WriteString("📝 Notes\n")
		b.WriteString(m.inputs[inputNotes].View())

	case StepSave:
		b.WriteString("💾 Save entry\n")
		priceStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning)).
			Bold(true)
		b.WriteString(fmt.Sprintf("%s on %s", task.Name, valueOr(m.entryDate, "today")))
		b.WriteString("\n")
		b.WriteString(priceStyle.Render(fmt.Sprintf("Earns %.2f %s", m.previewPrice(), m.currency)))
		b.WriteString("\nPress Enter to save")
	}

	return b.String()
}

func valueOr(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
