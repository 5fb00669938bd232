package views

import (
	"testing"

	"mindmap/internal/domain"
)

func TestAction_Labels(t *testing.T) {
	tests := []struct {
		action          Action
		wantTitle       string
		wantPlaceholder string
	}{
		{CreateAction(domain.KindTask), "New Task", "Enter task title"},
		{CreateAction(domain.KindProject), "New Project", "Enter project title"},
		{CreateAction(domain.KindGoal), "New Goal", "Enter goal title"},
		{CreateAction(domain.KindArea), "New Area", "Enter area name"},
		{CreateAction(domain.KindHabit), "New Habit", "Enter habit name"},
		{CreateAction(domain.KindNote), "New Note", "Enter note title"},
	}

	for _, tt := range tests {
		t.Run(tt.wantTitle, func(t *testing.T) {
			if got := tt.action.Title(); got != tt.wantTitle {
				t.Errorf("Title() = %q, want %q", got, tt.wantTitle)
			}
			if got := tt.action.Placeholder(); got != tt.wantPlaceholder {
				t.Errorf("Placeholder() = %q, want %q", got, tt.wantPlaceholder)
			}
		})
	}
}

func TestAction_PeriodTitles(t *testing.T) {
	want := map[domain.Period]string{
		domain.PeriodDaily:     "Open Today",
		domain.PeriodWeekly:    "Open This Week",
		domain.PeriodMonthly:   "Open This Month",
		domain.PeriodQuarterly: "Open This Quarter",
		domain.PeriodYearly:    "Open This Year",
	}
	for p, title := range want {
		if got := (Action{Op: OpOpenPeriod, Period: p}).Title(); got != title {
			t.Errorf("Title(%s) = %q, want %q", p, got, title)
		}
	}
}

func TestDefaultActions(t *testing.T) {
	actions := DefaultActions(false)
	if actions[0].Op != OpScaffold {
		t.Errorf("first action = %q, want the scaffold", actions[0].Title())
	}
	for _, a := range actions {
		if a.Op == OpBrowse {
			t.Error("browse listed without a catalog")
		}
	}

	withCatalog := DefaultActions(true)
	if len(withCatalog) != len(actions)+1 || withCatalog[len(withCatalog)-1].Op != OpBrowse {
		t.Error("browse missing with a catalog")
	}
}
