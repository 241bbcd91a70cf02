package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	m "github.com/kelcheone/notes/internal/model"
)

// Lines reserved for the pager header and footer.
const pagerChrome = 4

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	lessonStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	passedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	skippedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	helpStyle    = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI using lipgloss styling and a Bubble Tea pager for long reports.
type TUI struct {
	cmd    *cobra.Command
	mode   StartMode
	width  int
	height int
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{cmd: cmd}
}

// Start records the mode and the terminal size.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mode = newStartConfig(options).mode

	if f, ok := t.output().(*os.File); ok {
		width, height, err := term.GetSize(f.Fd())
		if err == nil {
			t.width = width
			t.height = height
		}
	}

	return nil
}

// Close finalizes the UI.
func (t *TUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait returns immediately; the pager blocks inside DisplayReport.
func (t *TUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplayLessons prints the lesson catalog under a styled title.
func (t *TUI) DisplayLessons(ctx context.Context, lessons []m.Lesson) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(t.output(), "%s\n\n%s", titleStyle.Render("Lessons"), renderLessonTable(lessons))

	return err
}

// DisplayRunInfo shows what is about to run.
func (t *TUI) DisplayRunInfo(ctx context.Context, lessons int, exercises int, threads int) {
	if err := ctx.Err(); err != nil {
		return
	}

	_, _ = fmt.Fprintln(t.output(), titleStyle.Render(
		fmt.Sprintf("Running %d exercise(s) from %d lesson(s) with %d worker(s)", exercises, lessons, max(threads, 1))))
}

// DisplayResults prints every exercise and its output.
func (t *TUI) DisplayResults(ctx context.Context, results []m.ExerciseResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(t.output(), "%s\n\n%s\n", renderStyledResults(results), summaryLine(results))

	return err
}

// DisplayScore prints the share of passed exercises.
func (t *TUI) DisplayScore(ctx context.Context, score float64) {
	if err := ctx.Err(); err != nil {
		return
	}

	style := passedStyle
	if score < 1 {
		style = failedStyle
	}

	_, _ = fmt.Fprintln(t.output(), style.Render(fmt.Sprintf("Pass rate: %.2f%%", score*100)))
}

// DisplaySaved shows where the report was written.
func (t *TUI) DisplaySaved(ctx context.Context, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	_, _ = fmt.Fprintln(t.output(), helpStyle.Render(fmt.Sprintf("Report saved to %s", path)))
}

// DisplayReport shows a stored report, paging it when it does not fit the terminal.
func (t *TUI) DisplayReport(ctx context.Context, report m.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	content := renderStyledResults(report.Results) + "\n\n" + summaryLine(report.Results)
	model := newReportModel(reportHeader(report), content, t.width, t.height)

	if !model.needsPagination() {
		_, err := fmt.Fprintf(t.output(), "%s\n\n%s\n", titleStyle.Render(model.title), content)
		return err
	}

	program := tea.NewProgram(model, tea.WithContext(ctx), tea.WithOutput(t.output()), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("report viewer: %w", err)
	}

	return nil
}

func (t *TUI) output() io.Writer {
	return t.cmd.OutOrStdout()
}

func renderStyledResults(results []m.ExerciseResult) string {
	lines := resultLines(results, styledMark)

	for i, line := range lines {
		if strings.HasPrefix(line, "[") {
			lines[i] = lessonStyle.Render(line)
		}
	}

	return strings.Join(lines, "\n")
}

func styledMark(status m.Status) string {
	switch status {
	case m.Passed:
		return passedStyle.Render(plainMark(status))
	case m.Failed:
		return failedStyle.Render(plainMark(status))
	default:
		return skippedStyle.Render(plainMark(status))
	}
}

type reportKeyMap struct {
	Quit key.Binding
}

var reportKeys = reportKeyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// reportModel is the Bubble Tea model paging a rendered report.
type reportModel struct {
	title    string
	content  string
	lines    int
	height   int
	viewport viewport.Model
	quitting bool
}

func newReportModel(title, content string, width, height int) reportModel {
	vp := viewport.New(width, max(height-pagerChrome, 1))
	vp.SetContent(content)

	return reportModel{
		title:    title,
		content:  content,
		lines:    strings.Count(content, "\n") + 1,
		height:   height,
		viewport: vp,
	}
}

// needsPagination reports whether the content is taller than the terminal.
// An unknown terminal height never pages.
func (rm reportModel) needsPagination() bool {
	if rm.height <= 0 {
		return false
	}

	return rm.lines+pagerChrome > rm.height
}

func (rm reportModel) Init() tea.Cmd {
	return nil
}

func (rm reportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, reportKeys.Quit) {
			rm.quitting = true
			return rm, tea.Quit
		}
	case tea.WindowSizeMsg:
		rm.height = msg.Height
		rm.viewport.Width = msg.Width
		rm.viewport.Height = max(msg.Height-pagerChrome, 1)
	}

	var cmd tea.Cmd
	rm.viewport, cmd = rm.viewport.Update(msg)

	return rm, cmd
}

func (rm reportModel) View() string {
	if rm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(rm.title))
	b.WriteString("\n\n")
	b.WriteString(rm.viewport.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(
		fmt.Sprintf("%3.f%% • ↑/↓ scroll • %s %s", rm.viewport.ScrollPercent()*100,
			reportKeys.Quit.Help().Key, reportKeys.Quit.Help().Desc)))

	return b.String()
}
