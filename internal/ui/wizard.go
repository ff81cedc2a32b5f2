package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/LMKidston/meta-agent1/internal/form"
	"github.com/LMKidston/meta-agent1/internal/knowledge"
	"github.com/LMKidston/meta-agent1/internal/recommend"
)

// ErrWizardCancelled is returned when the user quits the wizard.
var ErrWizardCancelled = errors.New("wizard cancelled")

type wizardStep int

const (
	stepArchetype wizardStep = iota
	stepIndustry
	stepGoal
	stepTasks
	stepTone
	stepFormality
	stepLength
	stepFrameworks
	stepDone
)

// choice is one row of a selection list.
type choice struct {
	value string
	label string
	hint  string
}

// WizardModel walks the user through the questionnaire one step at a time.
type WizardModel struct {
	engine *recommend.Engine
	step   wizardStep

	title    string
	choices  []choice
	cursor   int
	checked  map[int]bool
	multi    bool
	goal     textinput.Model
	answers  form.Answers
	quit     bool
	emptyMsg string
}

// NewWizardModel starts a wizard at the archetype step.
func NewWizardModel(engine *recommend.Engine) WizardModel {
	ti := textinput.New()
	ti.Placeholder = "to help users with their questions and tasks"
	ti.CharLimit = 280
	ti.Width = 60

	m := WizardModel{engine: engine, goal: ti}
	m.enter(stepArchetype)
	return m
}

// RunWizard runs the wizard and returns the collected answers.
func RunWizard(engine *recommend.Engine) (form.Answers, error) {
	p := tea.NewProgram(NewWizardModel(engine))
	finalModel, err := p.Run()
	if err != nil {
		return form.Answers{}, fmt.Errorf("error running wizard: %w", err)
	}

	result := finalModel.(WizardModel)
	if result.quit {
		return form.Answers{}, ErrWizardCancelled
	}
	return result.answers, nil
}

// Answers returns what has been collected so far.
func (m WizardModel) Answers() form.Answers {
	return m.answers
}

// Done reports whether every step was confirmed.
func (m WizardModel) Done() bool {
	return m.step == stepDone
}

// Cancelled reports whether the user quit.
func (m WizardModel) Cancelled() bool {
	return m.quit
}

func (m WizardModel) Init() tea.Cmd {
	return nil
}

// enter prepares the list or input for step s.
func (m *WizardModel) enter(s wizardStep) {
	m.step = s
	m.cursor = 0
	m.checked = map[int]bool{}
	m.multi = false
	m.choices = nil
	m.emptyMsg = ""
	base := m.engine.Base()

	switch s {
	case stepArchetype:
		m.title = "Select agent archetype"
		m.choices = []choice{{label: "Skip", hint: "no archetype"}}
		for _, a := range base.Archetypes() {
			m.choices = append(m.choices, choice{value: a.ID, label: a.Label, hint: a.Description})
		}
	case stepIndustry:
		m.title = "Select industry"
		m.choices = []choice{{label: "Skip", hint: "no industry"}}
		for _, ind := range base.Industries() {
			m.choices = append(m.choices, choice{value: ind.ID, label: ind.Label})
		}
	case stepGoal:
		m.title = base.Questions(m.answers.AgentType).PrimaryGoal
		m.goal.Focus()
	case stepTasks:
		tasks := base.Questions(m.answers.AgentType).Tasks
		m.title = tasks.Label
		m.multi = true
		for _, t := range tasks.Options {
			m.choices = append(m.choices, choice{value: t, label: t})
		}
	case stepTone:
		m.title = "Select tone"
		m.choices = optionChoices(form.ToneOptions)
	case stepFormality:
		m.title = "Select formality"
		m.choices = optionChoices(form.FormalityOptions)
	case stepLength:
		m.title = "Select response length"
		m.choices = optionChoices(form.ResponseLengthOptions)
	case stepFrameworks:
		m.title = "Select methodologies"
		m.multi = true
		res := m.engine.Recommend(recommend.Selection{
			AgentType: m.answers.AgentType,
			Industry:  m.answers.Industry,
		})
		for _, e := range res.Entries {
			m.choices = append(m.choices, choice{value: e.Methodology, label: e.Methodology, hint: e.Provenance()})
		}
		if len(m.choices) == 0 {
			m.emptyMsg = "No methodologies match this combination. Press enter to continue."
		}
	}
}

func optionChoices(opts []knowledge.Option) []choice {
	out := make([]choice, len(opts))
	for i, o := range opts {
		out[i] = choice{value: o.Value, label: o.Label}
	}
	return out
}

func (m WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.step == stepGoal {
			var cmd tea.Cmd
			m.goal, cmd = m.goal.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.quit = true
		return m, tea.Quit
	case "enter":
		m.confirm()
		if m.step == stepDone {
			return m, tea.Quit
		}
		return m, nil
	}

	if m.step == stepGoal {
		var cmd tea.Cmd
		m.goal, cmd = m.goal.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	case " ":
		if m.multi && len(m.choices) > 0 {
			m.checked[m.cursor] = !m.checked[m.cursor]
		}
	}
	return m, nil
}

// confirm stores the current step's answer and advances.
func (m *WizardModel) confirm() {
	switch m.step {
	case stepArchetype:
		m.answers.AgentType = m.current()
	case stepIndustry:
		m.answers.Industry = m.current()
	case stepGoal:
		m.answers.PrimaryGoal = strings.TrimSpace(m.goal.Value())
		m.goal.Blur()
	case stepTasks:
		m.answers.SpecificTasks = m.selected()
	case stepTone:
		m.answers.Tone = m.current()
	case stepFormality:
		m.answers.Formality = m.current()
	case stepLength:
		m.answers.ResponseLength = m.current()
	case stepFrameworks:
		m.answers.DomainFrameworks = m.selected()
	}
	m.enter(m.step + 1)
}

func (m WizardModel) current() string {
	if len(m.choices) == 0 {
		return ""
	}
	return m.choices[m.cursor].value
}

func (m WizardModel) selected() []string {
	var out []string
	for i, c := range m.choices {
		if m.checked[i] {
			out = append(out, c.value)
		}
	}
	return out
}

func (m WizardModel) View() string {
	if m.step == stepDone {
		return ""
	}

	s := "\n" + StyleSelectTitle.Render(m.title) + "\n\n"

	if m.step == stepGoal {
		s += m.goal.View() + "\n\n"
		s += StyleSelectDim.Render("enter confirm • esc cancel") + "\n"
		return s
	}

	if m.emptyMsg != "" {
		s += StyleWarning.Render(m.emptyMsg) + "\n"
	}

	for i, c := range m.choices {
		cursor := "  "
		style := StyleSelectNormal
		if m.cursor == i {
			cursor = "▶ "
			style = StyleSelectActive
		}

		box := ""
		if m.multi {
			box = "[ ] "
			if m.checked[i] {
				box = "[x] "
			}
		}

		line := cursor + box + style.Render(c.label)
		if c.hint != "" {
			line += StyleSelectDim.Render("  " + Truncate(c.hint, 60))
		}
		s += line + "\n"
	}

	help := "↑/↓ navigate • enter select • esc cancel"
	if m.multi {
		help = "↑/↓ navigate • space toggle • enter confirm • esc cancel"
	}
	s += "\n" + StyleSelectDim.Render(help) + "\n"
	return s
}
