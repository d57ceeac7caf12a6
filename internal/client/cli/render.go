package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/skillfit/internal/client/models"
	"github.com/dmitrijs2005/skillfit/internal/client/workflow"
)

func writeAnalysis(w io.Writer, r models.AnalysisResult) {
	fmt.Fprintf(w, "Match score: %d%% [%s]\n", r.MatchPercent(), r.MatchBand())

	fmt.Fprintln(w, "Issues:")
	for _, ic := range r.IssueCounts() {
		fmt.Fprintf(w, "  %-18s %2d [%s]\n", ic.Name, ic.Count, ic.Band())
	}

	for _, s := range r.Sections() {
		fmt.Fprintf(w, "\n%s\n", s.Title)
		switch {
		case len(s.Lines) == 0 && s.List:
			fmt.Fprintln(w, "  No issues found")
		case len(s.Lines) == 0:
			fmt.Fprintln(w, "  N/A")
		case s.List:
			for _, l := range s.Lines {
				fmt.Fprintf(w, "  - %s\n", l)
			}
		default:
			for _, l := range s.Lines {
				fmt.Fprintf(w, "  %s\n", l)
			}
		}
	}
}

func writeScanHistory(w io.Writer, records []models.ScanRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No scans yet. Type 'upload' to scan your first resume.")
		return
	}
	for _, r := range records {
		fmt.Fprintf(w, "%-12s %-24s %4d%%  %s\n",
			r.ScannedAt, r.ResumeName, r.MatchScore.Percent(), r.ShortJobDescription(50))
	}
}

func writeCourses(w io.Writer, p models.CoursePage, f models.CourseFilter, admin bool) {
	category := f.Category
	if category == "" {
		category = "All"
	}
	fmt.Fprintf(w, "Category: %s  Page %d of %d\n", category, f.Page, max(p.Pages(f.Limit), 1))

	if len(p.Courses) == 0 {
		fmt.Fprintln(w, "No courses found.")
		return
	}
	for _, c := range p.Courses {
		if admin {
			fmt.Fprintf(w, "[%d] ", c.ID)
		}
		fmt.Fprintf(w, "%s (%s, %s) %s\n", c.Name, c.Source, c.Category, c.Link)
	}
}

func writeDashboard(w io.Writer, s models.DashboardStats) {
	if s.Message != "" {
		fmt.Fprintln(w, s.Message)
	}
	fmt.Fprintf(w, "Students: %d\nScans: %d\nAverage match: %.1f%%\n", s.TotalStudents, s.TotalScans, s.AverageMatch)
	if len(s.TopSkills) > 0 {
		fmt.Fprintln(w, "Top skills:")
		for _, sk := range s.TopSkills {
			fmt.Fprintf(w, "  %-20s %d\n", sk.Label, sk.Value)
		}
	}
}

func writeStudents(w io.Writer, students []models.Student) {
	if len(students) == 0 {
		fmt.Fprintln(w, "No students found.")
		return
	}
	for _, s := range students {
		line := fmt.Sprintf("[%d] %s <%s> %s, year %s", s.ID, s.Name, s.Email, s.Department, s.Year)
		if s.Match != "" {
			line += fmt.Sprintf(", match %d%%", s.Match.Percent())
		}
		if s.Suitable != "" {
			line += ", suitable for " + s.Suitable
		}
		fmt.Fprintln(w, strings.TrimSpace(line))
	}
}

func (a *App) printWorkflow(s workflow.State) {
	file := "none"
	if s.File != nil {
		file = fmt.Sprintf("%s (%d bytes)", s.File.Name, len(s.File.Data))
	}
	jd := "none"
	if s.JobDescription != "" {
		jd = models.ScanRecord{JobDescription: s.JobDescription}.ShortJobDescription(60)
	}

	a.printf("Resume: %s\nJob description: %s\nStatus: %s\n", file, jd, s.Status)
	if s.ErrorMessage != "" {
		a.println(s.ErrorMessage)
	}

	switch s.Step {
	case workflow.AwaitingFile:
		a.println("Type 'file <path>' to choose a resume (.pdf, .doc, .docx).")
	case workflow.AwaitingJobDescription:
		a.println("Type 'jobs' to pick a role or 'jd' to paste a job description.")
	case workflow.ReadyToAnalyze:
		a.println("Type 'analyze' to scan your resume.")
	case workflow.Failed:
		a.println("Type 'retry' to try again.")
	}
}
