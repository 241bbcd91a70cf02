package controller

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/kelcheone/notes/internal/model"
)

func TestTUI_DisplayLessons(t *testing.T) {
	cmd, out := newBufferedCmd()
	ui := NewTUI(cmd)

	require.NoError(t, ui.Start(context.Background(), WithListMode()))
	require.NoError(t, ui.DisplayLessons(context.Background(), sampleLessons()))

	output := out.String()
	assert.Contains(t, output, "Lessons")
	assert.Contains(t, output, "structs")
	assert.Equal(t, ModeList, ui.mode)
}

func TestTUI_DisplayResultsAndScore(t *testing.T) {
	cmd, out := newBufferedCmd()
	ui := NewTUI(cmd)
	ctx := context.Background()

	require.NoError(t, ui.Start(ctx))
	ui.DisplayRunInfo(ctx, 1, 3, 2)
	require.NoError(t, ui.DisplayResults(ctx, sampleResults()))
	ui.DisplayScore(ctx, 2.0/3.0)
	ui.DisplaySaved(ctx, m.Path("reports/x.yaml"))

	output := out.String()
	assert.Contains(t, output, "Running 3 exercise(s) from 1 lesson(s) with 2 worker(s)")
	assert.Contains(t, output, "area-method (structs)")
	assert.Contains(t, output, "error: boom")
	assert.Contains(t, output, "Pass rate: 66.67%")
	assert.Contains(t, output, "reports/x.yaml")
	assert.Equal(t, ModeRun, ui.mode)
}

func TestTUI_DisplayReport_PrintsWhenTerminalSizeUnknown(t *testing.T) {
	cmd, out := newBufferedCmd()
	ui := NewTUI(cmd)

	require.NoError(t, ui.Start(context.Background(), WithViewMode()))
	require.NoError(t, ui.DisplayReport(context.Background(), m.RunReport{ID: "abc", Results: sampleResults()}))

	output := out.String()
	assert.Contains(t, output, "Report abc")
	assert.Contains(t, output, "Total: 4 | Passed: 2 | Failed: 1 | Skipped: 1")
}

func TestReportModel_NeedsPagination(t *testing.T) {
	content := strings.Repeat("line\n", 30)

	assert.False(t, newReportModel("t", content, 80, 0).needsPagination())
	assert.False(t, newReportModel("t", content, 80, 100).needsPagination())
	assert.True(t, newReportModel("t", content, 80, 20).needsPagination())
}

func TestReportModel_QuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		model := newReportModel("title", "body", 80, 10)

		updated, cmd := model.Update(msg)
		require.NotNil(t, cmd, msg.String())

		rm, ok := updated.(reportModel)
		require.True(t, ok)
		assert.True(t, rm.quitting)
		assert.Empty(t, rm.View())
	}
}

func TestReportModel_WindowResize(t *testing.T) {
	model := newReportModel("title", "body", 80, 10)

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	rm := updated.(reportModel)

	assert.Equal(t, 40, rm.height)
	assert.Equal(t, 120, rm.viewport.Width)
	assert.Equal(t, 40-pagerChrome, rm.viewport.Height)
}

func TestReportModel_View(t *testing.T) {
	model := newReportModel("Report abc", "five Some(6)", 80, 10)

	view := model.View()
	assert.Contains(t, view, "Report abc")
	assert.Contains(t, view, "five Some(6)")
	assert.Contains(t, view, "quit")
	assert.Nil(t, model.Init())
}
