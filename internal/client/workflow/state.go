package workflow

import (
	"github.com/dmitrijs2005/skillfit/internal/client/handoff"
	"github.com/dmitrijs2005/skillfit/internal/client/models"
)

type Step int

const (
	AwaitingFile Step = iota
	AwaitingJobDescription
	ReadyToAnalyze
	Analyzing
	Complete
	Failed
)

func (s Step) String() string {
	switch s {
	case AwaitingFile:
		return "awaiting_file"
	case AwaitingJobDescription:
		return "awaiting_job_description"
	case ReadyToAnalyze:
		return "ready_to_analyze"
	case Analyzing:
		return "analyzing"
	case Complete:
		return "complete"
	case Failed:
		return "failed"
	}
	return "unknown"
}

type RequestStatus int

const (
	StatusIdle RequestStatus = iota
	StatusInFlight
	StatusSucceeded
	StatusFailed
)

func (s RequestStatus) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusInFlight:
		return "in_flight"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// State is a point-in-time copy of the workflow. File and Result are nil
// when absent.
type State struct {
	Step           Step
	File           *models.FileHandle
	JobDescription string
	Status         RequestStatus
	Result         *models.AnalysisResult
	ErrorMessage   string
	Handle         handoff.Handle
}

func (s State) clone() State {
	out := s
	if s.File != nil {
		f := *s.File
		f.Data = append([]byte(nil), s.File.Data...)
		out.File = &f
	}
	if s.Result != nil {
		r := s.Result.Clone()
		out.Result = &r
	}
	return out
}

// PredefinedJobs are offered as one-tap job descriptions.
var PredefinedJobs = []string{
	"Software Engineer",
	"Data Scientist",
	"Product Manager",
	"UI/UX Designer",
	"Business Analyst",
	"Marketing Specialist",
	"Machine Learning Engineer",
	"Web Developer",
}
