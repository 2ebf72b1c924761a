package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/invopop/ctxi18n/i18n"
	"github.com/prior-it/storefront/config"
	"github.com/prior-it/storefront/core"
	"github.com/prior-it/storefront/dom"
	"github.com/prior-it/storefront/zipform"
	"github.com/spf13/cobra"
)

const logFile = "storefront.log"

var (
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#139DFF"))
	StyleError = lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626"))
	StyleLabel = lipgloss.NewStyle().Bold(true).Width(14) //nolint:mnd
	StyleMuted = lipgloss.NewStyle().Foreground(lipgloss.Color("#525252"))
	StyleForm  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder(), true).Padding(0, 1)
)

var formKeys = formKeyMap{
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Clear: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "clear postal code"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

// lookupMsg carries the outcome of a lookup back to the UI loop.
type lookupMsg struct {
	outcome zipform.Outcome
}

// FormUI is the address form. The document is only touched from the bubbletea loop: KeyUp and
// Apply run in Update, lookups run as commands.
type FormUI struct {
	ctx        context.Context
	controller *zipform.Controller
	doc        *dom.Document
	input      textinput.Model
	spinner    spinner.Model
	help       help.Model
	keys       formKeyMap
	quitting   bool
}

func NewFormUI(ctx context.Context, controller *zipform.Controller, doc *dom.Document) *FormUI {
	input := textinput.New()
	input.Placeholder = "00000-000"
	input.CharLimit = core.FormattedPostalCodeLength
	input.Width = core.FormattedPostalCodeLength + 1
	input.Prompt = ""
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = StyleTitle

	return &FormUI{
		ctx:        ctx,
		controller: controller,
		doc:        doc,
		input:      input,
		spinner:    s,
		help:       help.New(),
		keys:       formKeys,
	}
}

func (ui *FormUI) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, ui.spinner.Tick)
}

func lookup(ctx context.Context, pending *zipform.Pending) tea.Cmd {
	return func() tea.Msg {
		return lookupMsg{outcome: pending.Fetch(ctx)}
	}
}

func (ui *FormUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, ui.keys.Quit):
			ui.quitting = true
			return ui, tea.Quit
		case key.Matches(msg, ui.keys.Help):
			ui.help.ShowAll = !ui.help.ShowAll
			return ui, nil
		case key.Matches(msg, ui.keys.Clear):
			ui.input.SetValue("")
			ui.doc.SetValue(zipform.IDPostalCode, "")
			return ui, nil
		}

		ui.input, cmd = ui.input.Update(msg)
		cmds = append(cmds, cmd)
		if masked := core.MaskPostalCode(ui.input.Value()); masked != ui.input.Value() {
			ui.input.SetValue(masked)
			ui.input.CursorEnd()
		}
		ui.doc.SetValue(zipform.IDPostalCode, ui.input.Value())
		if pending := ui.controller.KeyUp(ui.input.Value()); pending != nil {
			cmds = append(cmds, lookup(ui.ctx, pending))
		}

	case lookupMsg:
		ui.controller.Apply(msg.outcome)

	case tea.WindowSizeMsg:
		ui.help.Width = msg.Width

	case spinner.TickMsg:
		ui.spinner, cmd = ui.spinner.Update(msg)
		cmds = append(cmds, cmd)

	default:
		ui.input, cmd = ui.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return ui, tea.Batch(cmds...)
}

func (ui *FormUI) View() string {
	if ui.quitting {
		return "\n" + i18n.T(ui.ctx, "form.bye") + "\n"
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render(i18n.T(ui.ctx, "form.title")) + "\n\n")
	b.WriteString(StyleLabel.Render(i18n.T(ui.ctx, "form.postal_code")) + ui.input.View() + "\n")

	if !ui.doc.IsHidden(zipform.IDLoader) {
		b.WriteString("\n" + ui.spinner.View() + " " + i18n.T(ui.ctx, "form.loading") + "\n")
	}
	if !ui.doc.IsHidden(zipform.IDError) {
		b.WriteString("\n" + StyleError.Render(ui.errorText()) + "\n")
	}
	if !ui.doc.IsHidden(zipform.IDAddressColumn) {
		b.WriteString("\n")
		b.WriteString(ui.field("form.street", zipform.IDStreet))
		b.WriteString(ui.field("form.complement", zipform.IDComplement))
		b.WriteString(ui.field("form.neighborhood", zipform.IDNeighborhood))
		b.WriteString(ui.field("form.city", zipform.IDCity))
		b.WriteString(StyleLabel.Render(i18n.T(ui.ctx, "form.state")) + ui.state() + "\n")
		b.WriteString(StyleLabel.Render(i18n.T(ui.ctx, "form.country")) + ui.text(zipform.IDCountry) + "\n")
	}

	return StyleForm.Render(b.String()) + "\n" + ui.help.View(ui.keys) + "\n"
}

func (ui *FormUI) text(id string) string {
	if e := ui.doc.Element(id); e != nil {
		return e.Text
	}
	return ""
}

func (ui *FormUI) errorText() string {
	form := ui.controller.Form()
	if form.Reason == zipform.FailureTransport {
		return i18n.T(ui.ctx, "form.unavailable")
	}
	return i18n.T(ui.ctx, "form.not_found")
}

func (ui *FormUI) field(labelKey string, id string) string {
	value := ui.doc.Value(id)
	if len(value) == 0 {
		value = StyleMuted.Render("-")
	}
	return StyleLabel.Render(i18n.T(ui.ctx, labelKey)) + value + "\n"
}

func (ui *FormUI) state() string {
	e := ui.doc.Element(zipform.IDState)
	if e == nil {
		return ""
	}
	selected := e.SelectedOption()
	if selected == nil || len(selected.Value) == 0 {
		return StyleMuted.Render("-")
	}
	return fmt.Sprintf("%s (%s)", selected.Label, selected.Value)
}

type formKeyMap struct {
	Help  key.Binding
	Clear key.Binding
	Quit  key.Binding
}

func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Help}
}

func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Clear},
		{k.Help, k.Quit},
	}
}

func getCmdForm(gs *globalState) *cobra.Command {
	var lang string
	cmd := &cobra.Command{
		Use:   "form",
		Short: "Fill in a shipping address interactively",
		Long: "Opens the address form. The address is looked up as soon as a complete postal code " +
			"is entered. Logs are written to " + logFile + ".",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logs, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:mnd
			if err != nil {
				return fmt.Errorf("cannot open log file: %w", err)
			}
			defer logs.Close()

			sf, err := gs.storefront(logs)
			if err != nil {
				return err
			}
			defer sf.Close()

			fallbackLang := sf.Config.App.FallbackLang
			if len(fallbackLang) == 0 {
				fallbackLang = config.DefaultLang
			}
			ctx, err := withLanguage(cmd.Context(), lang, fallbackLang)
			if err != nil {
				return err
			}

			doc := zipform.NewDocument()
			ui := NewFormUI(ctx, sf.FormController(doc), doc)
			if _, err := tea.NewProgram(ui, tea.WithContext(cmd.Context())).Run(); err != nil {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&lang, "lang", "", "language of the form, APP_FALLBACKLANG when not set")
	return cmd
}
