// Package tui is the interactive terminal front end: a profile form
// feeding the recommender and a browser for the returned courses.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"smartcareer/internal/domain"
	"smartcareer/internal/profile"
	"smartcareer/internal/recommend"
)

// Recommender is the TUI-facing subset of the recommendation service.
type Recommender interface {
	Recommend(req recommend.Request) ([]domain.Recommendation, error)
}

// Form field order; choice fields cycle with left/right, text fields
// edit inline.
const (
	fieldEducation = iota
	fieldMajor
	fieldTechSkills
	fieldSoftSkills
	fieldTargetDomain
	fieldDuration
	fieldCount
)

// Model is the Bubble Tea model for the recommender UI.
type Model struct {
	service Recommender
	topN    int

	focus     int
	education int
	duration  int
	inputs    map[int]*textinput.Model

	viewport viewport.Model
	results  []domain.Recommendation
	showing  bool
	ready    bool
	status   string
}

// New creates the form model with the original defaults pre-filled as
// placeholders.
func New(service Recommender, topN int) Model {
	mk := func(placeholder string) *textinput.Model {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholder
		ti.CharLimit = 0
		return &ti
	}
	inputs := map[int]*textinput.Model{
		fieldMajor:        mk("e.g., Information Technology, CSE, ECE"),
		fieldTechSkills:   mk("python, sql, excel"),
		fieldSoftSkills:   mk("communication, teamwork"),
		fieldTargetDomain: mk("e.g., data science, web development"),
	}
	m := Model{
		service:  service,
		topN:     topN,
		focus:    fieldEducation,
		viewport: viewport.New(0, 0),
		status:   "Fill in your profile. Tab moves, enter submits.",
	}
	m.inputs = inputs
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := resultBoxStyle.GetFrameSize()
		vh := msg.Height - fieldCount - 4 - rh
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width-2)
		m.viewport.Height = vh
		m.viewport.SetContent(m.renderResults())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		if m.showing {
			return m.updateResults(msg)
		}
		return m.updateForm(msg)
	}
	return m.updateFocused(msg)
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		m.setFocus((m.focus + 1) % fieldCount)
		return m, nil
	case "shift+tab", "up":
		m.setFocus((m.focus - 1 + fieldCount) % fieldCount)
		return m, nil
	case "left", "right":
		delta := 1
		if msg.String() == "left" {
			delta = -1
		}
		switch m.focus {
		case fieldEducation:
			n := len(profile.EducationLevels)
			m.education = (m.education + delta + n) % n
			return m, nil
		case fieldDuration:
			n := len(profile.StudyDurations)
			m.duration = (m.duration + delta + n) % n
			return m, nil
		}
	case "enter":
		if m.focus < fieldCount-1 {
			m.setFocus(m.focus + 1)
			return m, nil
		}
		return m.submit()
	}
	return m.updateFocused(msg)
}

func (m Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.showing = false
		m.status = "Fill in your profile. Tab moves, enter submits."
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ti, ok := m.inputs[m.focus]; ok {
		updated, cmd := ti.Update(msg)
		*ti = updated
		return m, cmd
	}
	return m, nil
}

func (m *Model) setFocus(idx int) {
	m.focus = idx
	for f, ti := range m.inputs {
		if f == idx {
			ti.Focus()
		} else {
			ti.Blur()
		}
	}
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	recs, err := m.service.Recommend(recommend.Request{
		EducationLevel:    profile.EducationLevels[m.education],
		Major:             m.inputs[fieldMajor].Value(),
		TechSkillsInput:   m.inputs[fieldTechSkills].Value(),
		SoftSkillsInput:   m.inputs[fieldSoftSkills].Value(),
		TargetDomain:      m.inputs[fieldTargetDomain].Value(),
		PreferredDuration: profile.StudyDurations[m.duration],
		TopN:              m.topN,
	})
	if err == recommend.ErrEmptyMajor {
		m.status = warnStyle.Render("Please enter your major/degree.")
		return m, nil
	}
	if err != nil {
		m.status = warnStyle.Render("Error: " + err.Error())
		return m, nil
	}
	m.results = recs
	m.showing = true
	if len(recs) == 0 {
		m.status = "No suitable courses found based on your profile."
	} else {
		m.status = fmt.Sprintf("%d recommended courses. Esc returns to the form.", len(recs))
	}
	m.viewport.SetContent(m.renderResults())
	m.viewport.GotoTop()
	return m, nil
}

// View renders either the form or the results browser.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := headerStyle.Render("SmartCareer - Course & Certification Recommender")
	status := statusStyle.Render(m.status)
	if m.showing {
		return header + "\n" + resultBoxStyle.Render(m.viewport.View()) + "\n" + status
	}
	var b strings.Builder
	b.WriteString(header + "\n\n")
	b.WriteString(m.renderField(fieldEducation, "Education Level", choiceValue(profile.EducationLevels, m.education)))
	b.WriteString(m.renderField(fieldMajor, "Major / Degree", m.inputs[fieldMajor].View()))
	b.WriteString(m.renderField(fieldTechSkills, "Technical Skills", m.inputs[fieldTechSkills].View()))
	b.WriteString(m.renderField(fieldSoftSkills, "Soft Skills", m.inputs[fieldSoftSkills].View()))
	b.WriteString(m.renderField(fieldTargetDomain, "Target Domain", m.inputs[fieldTargetDomain].View()))
	b.WriteString(m.renderField(fieldDuration, "Preferred Duration", choiceValue(profile.StudyDurations, m.duration)))
	b.WriteString("\n" + status)
	return b.String()
}

func (m Model) renderField(idx int, label, value string) string {
	l := labelStyle.Render(label + ":")
	if idx == m.focus {
		l = focusedLabelStyle.Render("> " + label + ":")
	} else {
		l = "  " + l
	}
	return l + " " + value + "\n"
}

func (m Model) renderResults() string {
	if len(m.results) == 0 {
		return "No suitable courses found based on your profile."
	}
	var b strings.Builder
	for i, r := range m.results {
		title := titleStyle.Render(fmt.Sprintf("%d. %s (%s)", i+1, r.Course.Title, r.Course.Provider))
		b.WriteString(title + "\n")
		b.WriteString(fmt.Sprintf("   Level: %s   Duration: %s\n", titleCase(r.Course.Level.String()), r.Course.Duration))
		b.WriteString(fmt.Sprintf("   Fit Score: %.2f/100   Timeline: %s\n", r.FitScore, titleCase(string(r.Timeline))))
		b.WriteString("   Why: " + r.Explanation + "\n")
		b.WriteString("   Link: " + r.Course.Link + "\n\n")
	}
	return b.String()
}

// choiceValue renders a cycling selection with its arrows.
func choiceValue(options []string, idx int) string {
	return "< " + options[idx] + " >"
}

// titleCase uppercases the first letter of each hyphen- or
// space-separated word, matching how levels and timelines are shown.
func titleCase(s string) string {
	out := []rune(s)
	upper := true
	for i, r := range out {
		if upper && r >= 'a' && r <= 'z' {
			out[i] = r - 'a' + 'A'
		}
		upper = r == ' ' || r == '-'
	}
	return string(out)
}

var (
	headerStyle       = lipgloss.NewStyle().Bold(true)
	labelStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	focusedLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	titleStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	statusStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	resultBoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
