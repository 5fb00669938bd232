package domain

import "time"

// Layout names the vault folders MindMap OS reads and writes
type Layout struct {
	ActiveFolder          string
	TemplatesFolder       string
	LegacyTemplatesFolder string
	DailyFolder           string
	WeeklyFolder          string
	MonthlyFolder         string
	QuarterlyFolder       string
	YearlyFolder          string
}

// DefaultLayout returns the standard MindMap OS folder layout
func DefaultLayout() Layout {
	return Layout{
		ActiveFolder:          "03 SaveBox/Active",
		TemplatesFolder:       "03 SaveBox/Templates",
		LegacyTemplatesFolder: "99 Templates",
		DailyFolder:           "02 Execution/1 Daily",
		WeeklyFolder:          "02 Execution/2 Weekly",
		MonthlyFolder:         "02 Execution/3 Monthly",
		QuarterlyFolder:       "02 Execution/4 Quarterly",
		YearlyFolder:          "02 Execution/5 Yearly",
	}
}

// PeriodFolder returns the folder holding notes for p
func (l Layout) PeriodFolder(p Period) string {
	switch p {
	case PeriodWeekly:
		return l.WeeklyFolder
	case PeriodMonthly:
		return l.MonthlyFolder
	case PeriodQuarterly:
		return l.QuarterlyFolder
	case PeriodYearly:
		return l.YearlyFolder
	default:
		return l.DailyFolder
	}
}

// PeriodNotePath returns the vault path of p's note for the date of now
func (l Layout) PeriodNotePath(p Period, now time.Time) string {
	return JoinPath(l.PeriodFolder(p), p.NoteName(now))
}

// SeedFile is a file the scaffold writes when it is missing
type SeedFile struct {
	Path    string
	Content string
}

// ScaffoldFolders lists the starter folder tree in creation order
func (l Layout) ScaffoldFolders() []string {
	return []string{
		"01 Definition",
		l.DailyFolder,
		l.WeeklyFolder,
		l.MonthlyFolder,
		l.QuarterlyFolder,
		l.YearlyFolder,
		l.ActiveFolder,
		"03 SaveBox/Archive",
		"03 SaveBox/Attachment",
		"03 SaveBox/Scripts",
		l.TemplatesFolder,
		"04 Output",
		"99 System",
	}
}

// ScaffoldFiles lists the starter notes, templates and seed notes
func (l Layout) ScaffoldFiles() []SeedFile {
	files := []SeedFile{
		{"Welcome.md", "# 👋 Welcome to MindMap OS\n\nRun `mindmap init` any time to restore the starter structure.\n"},
		{"01 Definition/🏁 Start Here.md", "## Start Here\n\nFollow the steps to define Areas → Goals → Projects.\n"},
		{"01 Definition/🧠 Mind Map.md", "## Mind Map\n\nLink Areas, Goals, Projects here.\n"},
		{"02 Execution/🔍 Read Me First.md", "## Execution Flow\n\nYear → Quarter → Month → Week → Day. Assign tags and due dates.\n"},
		{"04 Output/Untitled.md", "# Output\n\nExport or publish here.\n"},
	}

	for _, k := range Kinds() {
		body, _ := BuiltinTemplate(k.Label())
		files = append(files, SeedFile{JoinPath(l.TemplatesFolder, TemplateFileName(k.Label())), body})
	}
	for _, p := range Periods() {
		body, _ := BuiltinTemplate(p.Label())
		files = append(files, SeedFile{JoinPath(l.TemplatesFolder, TemplateFileName(p.Label())), body})
	}

	files = append(files,
		SeedFile{JoinPath(l.ActiveFolder, KindArea.FileBase("Life")+".md"),
			"---\nstatus: Active\n---\n# " + KindArea.FileBase("Life") + "\n"},
		SeedFile{JoinPath(l.ActiveFolder, KindGoal.FileBase("Launch v1")+".md"),
			"---\nstatus: Active\ndone: false\n---\n# " + KindGoal.FileBase("Launch v1") + "\n- [ ] " + KindGoal.FileBase("Launch v1") + "\n"},
		SeedFile{JoinPath(l.ActiveFolder, KindProject.FileBase("Landing Page")+".md"),
			"---\nstatus: Active\ndone: false\n---\n# " + KindProject.FileBase("Landing Page") + "\n- [ ] " + KindProject.FileBase("Landing Page") + "\n"},
		SeedFile{JoinPath(l.ActiveFolder, KindTask.FileBase("Draft copy")+".md"),
			"---\ndone: false\n---\n# " + KindTask.FileBase("Draft copy") + "\n- [ ] " + KindTask.FileBase("Draft copy") + "\n"},
		SeedFile{"99 System/Home.md", "# Welcome to MindMap OS\n\n" +
			"- Run: `mindmap init`\n" +
			"- Try: `mindmap new goal|project|task`\n" +
			"- Try: `mindmap today`\n"},
	)
	return files
}
