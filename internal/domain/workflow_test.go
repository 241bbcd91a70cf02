package domain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kelcheone/notes/internal/adapter"
	adaptermocks "github.com/kelcheone/notes/internal/adapter/mocks"
	"github.com/kelcheone/notes/internal/controller"
	controllermocks "github.com/kelcheone/notes/internal/controller/mocks"
	m "github.com/kelcheone/notes/internal/model"
)

var (
	fixedStart = time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	fixedEnd   = fixedStart.Add(time.Second)
)

type stubRunner struct {
	results []m.ExerciseResult
	err     error
	lessons []m.Lesson
	threads int
}

func (s *stubRunner) Run(_ context.Context, lessons []m.Lesson, threads int) ([]m.ExerciseResult, error) {
	s.lessons = lessons
	s.threads = threads

	return s.results, s.err
}

func newTestWorkflow(store *adaptermocks.MockReportStore, ui *controllermocks.MockUI, r Runner) *workflow {
	times := []time.Time{fixedStart, fixedEnd}

	return &workflow{
		ReportStore: store,
		UI:          ui,
		Runner:      r,
		now: func() time.Time {
			next := times[0]
			if len(times) > 1 {
				times = times[1:]
			}

			return next
		},
		newID: func() string { return "run-1" },
	}
}

func expectUILifecycle(ui *controllermocks.MockUI) {
	ui.On("Start", mock.Anything, mock.Anything).Return(nil)
	ui.On("Close", mock.Anything).Return()
}

func TestWorkflow_Run_SavesReport(t *testing.T) {
	store := adaptermocks.NewMockReportStore(t)
	ui := controllermocks.NewMockUI(t)
	results := []m.ExerciseResult{{Lesson: "enums", Exercise: "plus-one", Status: m.Passed}}
	runner := &stubRunner{results: results}
	w := newTestWorkflow(store, ui, runner)

	expectUILifecycle(ui)
	ui.On("DisplayRunInfo", mock.Anything, 1, 4, 2).Return()
	ui.On("DisplayResults", mock.Anything, results).Return(nil)
	ui.On("DisplayScore", mock.Anything, 1.0).Return()
	ui.On("DisplaySaved", mock.Anything, m.Path("reports/run-1.yaml")).Return()

	store.On("SaveReport", mock.Anything, m.Path("reports"), m.RunReport{
		ID:         "run-1",
		StartedAt:  fixedStart,
		FinishedAt: fixedEnd,
		Results:    results,
	}).Return(m.Path("reports/run-1.yaml"), nil)

	err := w.Run(context.Background(), RunArgs{
		Lessons: []string{"enums"},
		Threads: 2,
		Reports: "reports",
		Save:    true,
	})
	require.NoError(t, err)

	require.Len(t, runner.lessons, 1)
	assert.Equal(t, "enums", runner.lessons[0].Name)
	assert.Equal(t, 2, runner.threads)
}

func TestWorkflow_Run_NoSave(t *testing.T) {
	store := adaptermocks.NewMockReportStore(t)
	ui := controllermocks.NewMockUI(t)
	w := newTestWorkflow(store, ui, &stubRunner{})

	expectUILifecycle(ui)
	ui.On("DisplayRunInfo", mock.Anything, 3, mock.Anything, 1).Return()
	ui.On("DisplayResults", mock.Anything, mock.Anything).Return(nil)
	ui.On("DisplayScore", mock.Anything, 1.0).Return()

	err := w.Run(context.Background(), RunArgs{Threads: 1, Reports: "reports"})
	require.NoError(t, err)

	store.AssertNotCalled(t, "SaveReport", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorkflow_Run_FailedExercises(t *testing.T) {
	store := adaptermocks.NewMockReportStore(t)
	ui := controllermocks.NewMockUI(t)
	results := []m.ExerciseResult{
		{Exercise: "a", Status: m.Passed},
		{Exercise: "b", Status: m.Failed, Error: "boom"},
	}
	w := newTestWorkflow(store, ui, &stubRunner{results: results})

	expectUILifecycle(ui)
	ui.On("DisplayRunInfo", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()
	ui.On("DisplayResults", mock.Anything, results).Return(nil)
	ui.On("DisplayScore", mock.Anything, 0.5).Return()
	ui.On("DisplaySaved", mock.Anything, mock.Anything).Return()
	store.On("SaveReport", mock.Anything, m.Path("reports"), mock.Anything).Return(m.Path("reports/run-1.yaml"), nil)

	err := w.Run(context.Background(), RunArgs{Reports: "reports", Save: true})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExercisesFailed))
	assert.Contains(t, err.Error(), "1 of 2")
}

func TestWorkflow_Run_SaveError(t *testing.T) {
	store := adaptermocks.NewMockReportStore(t)
	ui := controllermocks.NewMockUI(t)
	w := newTestWorkflow(store, ui, &stubRunner{})

	expectUILifecycle(ui)
	ui.On("DisplayRunInfo", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()
	ui.On("DisplayResults", mock.Anything, mock.Anything).Return(nil)
	ui.On("DisplayScore", mock.Anything, mock.Anything).Return()
	store.On("SaveReport", mock.Anything, mock.Anything, mock.Anything).Return(m.Path(""), errors.New("disk full"))

	err := w.Run(context.Background(), RunArgs{Reports: "reports", Save: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save report")
}

type cancellingRunner struct {
	Runner
	cancel context.CancelFunc
}

func (c *cancellingRunner) Run(ctx context.Context, lessons []m.Lesson, threads int) ([]m.ExerciseResult, error) {
	c.cancel()

	return c.Runner.Run(ctx, lessons, threads)
}

func TestWorkflow_Run_CancelledRunIsDisplayedAndSaved(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	dir := m.Path(t.TempDir())
	store := adapter.NewReportStore()
	w := NewWorkflow(store, controller.NewSimpleUI(cmd), &cancellingRunner{
		Runner: NewRunner(NewOrchestrator()),
		cancel: cancel,
	})

	err := w.Run(ctx, RunArgs{Threads: 1, Reports: dir, Save: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	total := len(flattenJobs(Lessons()))
	output := out.String()
	assert.Contains(t, output, "[strings]")
	assert.Contains(t, output, fmt.Sprintf("Total: %d | Passed: 0 | Failed: 0 | Skipped: %d", total, total))
	assert.Contains(t, output, "Report saved to")

	reports, err := store.ListReports(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	require.Len(t, reports[0].Results, total)

	for _, result := range reports[0].Results {
		assert.Equal(t, m.Skipped, result.Status, result.Exercise)
	}
}

func TestWorkflow_Run_UnknownLesson(t *testing.T) {
	store := adaptermocks.NewMockReportStore(t)
	ui := controllermocks.NewMockUI(t)
	w := newTestWorkflow(store, ui, &stubRunner{})

	err := w.Run(context.Background(), RunArgs{Lessons: []string{"generics"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLessonNotFound))
}

func TestWorkflow_List(t *testing.T) {
	store := adaptermocks.NewMockReportStore(t)
	ui := controllermocks.NewMockUI(t)
	w := newTestWorkflow(store, ui, &stubRunner{})

	expectUILifecycle(ui)
	ui.On("DisplayLessons", mock.Anything, mock.MatchedBy(func(lessons []m.Lesson) bool {
		return len(lessons) == 2 && lessons[0].Name == "structs" && lessons[1].Name == "strings"
	})).Return(nil)

	err := w.List(context.Background(), ListArgs{Lessons: []string{"2", "1"}})
	require.NoError(t, err)
}

func TestWorkflow_View_Latest(t *testing.T) {
	store := adaptermocks.NewMockReportStore(t)
	ui := controllermocks.NewMockUI(t)
	w := newTestWorkflow(store, ui, &stubRunner{})

	older := m.RunReport{ID: "old", StartedAt: fixedStart}
	newer := m.RunReport{ID: "new", StartedAt: fixedEnd}

	store.On("ListReports", mock.Anything, m.Path("reports")).Return([]m.RunReport{older, newer}, nil)
	expectUILifecycle(ui)
	ui.On("DisplayReport", mock.Anything, newer).Return(nil)
	ui.On("Wait", mock.Anything).Return()

	err := w.View(context.Background(), ViewArgs{Reports: "reports"})
	require.NoError(t, err)
}

func TestWorkflow_View_ByID(t *testing.T) {
	store := adaptermocks.NewMockReportStore(t)
	ui := controllermocks.NewMockUI(t)
	w := newTestWorkflow(store, ui, &stubRunner{})

	report := m.RunReport{ID: "abc"}

	store.On("LoadReport", mock.Anything, m.Path("reports"), "abc").Return(report, nil)
	expectUILifecycle(ui)
	ui.On("DisplayReport", mock.Anything, report).Return(nil)
	ui.On("Wait", mock.Anything).Return()

	err := w.View(context.Background(), ViewArgs{Reports: "reports", ID: "abc"})
	require.NoError(t, err)
}

func TestWorkflow_View_NoReports(t *testing.T) {
	store := adaptermocks.NewMockReportStore(t)
	ui := controllermocks.NewMockUI(t)
	w := newTestWorkflow(store, ui, &stubRunner{})

	store.On("ListReports", mock.Anything, m.Path("reports")).Return(nil, nil)

	err := w.View(context.Background(), ViewArgs{Reports: "reports"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoReports))
}

func TestWorkflow_View_LoadError(t *testing.T) {
	store := adaptermocks.NewMockReportStore(t)
	ui := controllermocks.NewMockUI(t)
	w := newTestWorkflow(store, ui, &stubRunner{})

	store.On("LoadReport", mock.Anything, m.Path("reports"), "missing").Return(m.RunReport{}, errors.New("not found"))

	err := w.View(context.Background(), ViewArgs{Reports: "reports", ID: "missing"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load report missing")
}

func TestNewWorkflow(t *testing.T) {
	w := NewWorkflow(nil, nil, nil)
	assert.NotNil(t, w)
}
