package models

import "strings"

// ScanRecord is one entry of the user's scan history.
type ScanRecord struct {
	ResumeID       int    `json:"resume_id"`
	ResumeName     string `json:"resume_name"`
	JobDescription string `json:"job_description"`
	MatchScore     Score  `json:"match_score"`
	ScannedAt      string `json:"scanned_at"`
}

// ShortJobDescription trims the description for list rendering.
func (r ScanRecord) ShortJobDescription(max int) string {
	jd := strings.Join(strings.Fields(r.JobDescription), " ")
	if max <= 3 || len(jd) <= max {
		return jd
	}
	return jd[:max-3] + "..."
}

type Course struct {
	ID       int    `json:"course_id,omitempty"`
	Name     string `json:"course_name"     validate:"required"`
	Source   string `json:"course_source"   validate:"required"`
	Category string `json:"course_category" validate:"required"`
	Link     string `json:"course_link"     validate:"required,url"`
}

type CoursePage struct {
	Courses []Course `json:"courses"`
	Total   int      `json:"total"`
}

// Pages is the page count for the given page size.
func (p CoursePage) Pages(limit int) int {
	if limit <= 0 || p.Total <= 0 {
		return 0
	}
	return (p.Total + limit - 1) / limit
}

// CourseFilter narrows GET /courses. An empty or "All" category is not sent.
type CourseFilter struct {
	Category string
	Page     int
	Limit    int
}

type Student struct {
	ID         int    `json:"id,omitempty"`
	Name       string `json:"name"       validate:"required"`
	Email      string `json:"email"      validate:"required,email"`
	Department string `json:"department" validate:"required"`
	Year       string `json:"year"       validate:"required"`
	Resumes    int    `json:"resumes,omitempty"`
	Suitable   string `json:"suitable,omitempty"`
	Match      Score  `json:"match,omitempty"`
}

type SkillStat struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

type DashboardStats struct {
	TotalStudents int         `json:"total_students"`
	TotalScans    int         `json:"total_scans"`
	AverageMatch  float64     `json:"average_match"`
	TopSkills     []SkillStat `json:"top_skills"`
	Message       string      `json:"message,omitempty"`
}

type UserDetails struct {
	FullName string `json:"full_name"`
}
