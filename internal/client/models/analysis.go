// Package models defines the values exchanged with the skillfit backend.
package models

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// Lines is a text field that the backend sends either as a single string or
// as a list of strings. Values of any other shape are kept as their compact
// JSON text so they can still be shown.
type Lines []string

func (l *Lines) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*l = nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			*l = Lines{}
		} else {
			*l = Lines{s}
		}
	case len(b) > 0 && b[0] == '[':
		var items []json.RawMessage
		if err := json.Unmarshal(b, &items); err != nil {
			return err
		}
		out := make(Lines, 0, len(items))
		for _, it := range items {
			if t, ok := rawText(it); ok {
				out = append(out, t)
			}
		}
		*l = out
	default:
		t, _ := rawText(b)
		*l = Lines{t}
	}
	return nil
}

// rawText renders one JSON value for display: strings unquoted, anything else
// compacted. It reports false for null.
func rawText(b json.RawMessage) (string, bool) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return "", false
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err == nil {
			return s, true
		}
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, b); err != nil {
		return string(b), true
	}
	return buf.String(), true
}

// Score is a match score sent as "85%", "85" or 85.
type Score string

func (s *Score) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*s = ""
	case len(b) > 0 && b[0] == '"':
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = Score(v)
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			// unexpected shape, kept for display; Percent reads it as 0
			t, _ := rawText(b)
			*s = Score(t)
			return nil
		}
		*s = Score(n.String())
	}
	return nil
}

// Percent parses the leading number of the score; unparsable scores are 0.
func (s Score) Percent() int {
	v := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(string(s)), "%"))
	if v == "" {
		return 0
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return int(f)
	}
	end := 0
	for end < len(v) && v[end] >= '0' && v[end] <= '9' {
		end++
	}
	n, _ := strconv.Atoi(v[:end])
	return n
}

// AnalysisResult is the match analysis computed by the backend. The client
// treats it as a value: it is copied, displayed and never edited.
type AnalysisResult struct {
	JDMatch          Score `json:"JD Match"`
	ProfileSummary   Lines `json:"Profile Summary"`
	Strengths        Lines `json:"STRENGTHS"`
	Recommendations  Lines `json:"RECOMMENDATIONS"`
	MissingSkills    Lines `json:"Missing Skills"`
	SoftSkillIssues  Lines `json:"Soft Skill Issues"`
	FormattingIssues Lines `json:"Formatting Issues"`
	KeywordIssues    Lines `json:"Keyword Issues"`
	BiasDetection    Lines `json:"Bias Detection"`
	RecruiterTips    Lines `json:"Recruiter Tips"`

	// Extra holds keys the client does not know, unmodified.
	Extra map[string]json.RawMessage `json:"-"`
}

var knownAnalysisKeys = []string{
	"JD Match", "Profile Summary", "STRENGTHS", "RECOMMENDATIONS", "Missing Skills",
	"Soft Skill Issues", "Formatting Issues", "Keyword Issues", "Bias Detection", "Recruiter Tips",
}

func (a *AnalysisResult) UnmarshalJSON(b []byte) error {
	type plain AnalysisResult
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}

	var all map[string]json.RawMessage
	if err := json.Unmarshal(b, &all); err != nil {
		return err
	}
	for _, k := range knownAnalysisKeys {
		delete(all, k)
	}
	p.Extra = nil
	if len(all) > 0 {
		p.Extra = all
	}

	*a = AnalysisResult(p)
	return nil
}

// MatchPercent is the numeric part of "JD Match".
func (a AnalysisResult) MatchPercent() int {
	return a.JDMatch.Percent()
}

type Band string

const (
	BandGreen  Band = "green"
	BandYellow Band = "yellow"
	BandRed    Band = "red"
)

// MatchBand buckets the match percentage: >=75 green, >=35 yellow.
func (a AnalysisResult) MatchBand() Band {
	switch p := a.MatchPercent(); {
	case p >= 75:
		return BandGreen
	case p >= 35:
		return BandYellow
	default:
		return BandRed
	}
}

// IssueCount is one row of the issues panel.
type IssueCount struct {
	Name  string
	Count int
}

// Band colours an issue row: none green, fewer than 5 yellow.
func (c IssueCount) Band() Band {
	switch {
	case c.Count == 0:
		return BandGreen
	case c.Count < 5:
		return BandYellow
	default:
		return BandRed
	}
}

// IssueCounts lists the issue categories in display order.
func (a AnalysisResult) IssueCounts() []IssueCount {
	return []IssueCount{
		{"Missing Skills", len(a.MissingSkills)},
		{"Soft Skill Issues", len(a.SoftSkillIssues)},
		{"Formatting Issues", len(a.FormattingIssues)},
		{"Keyword Issues", len(a.KeywordIssues)},
		{"Recruiter Tips", len(a.RecruiterTips)},
	}
}

// Section is a titled block of the overview panel.
type Section struct {
	Title string
	Lines Lines
	// List is true for sections that are itemised; an empty list renders
	// as "No issues found" rather than "N/A".
	List bool
}

// Sections returns the overview blocks in display order. Unknown keys follow
// the known ones, sorted by name.
func (a AnalysisResult) Sections() []Section {
	out := []Section{
		{"Profile Summary", a.ProfileSummary, false},
		{"STRENGTHS", a.Strengths, true},
		{"RECOMMENDATIONS", a.Recommendations, false},
		{"Bias Detection", a.BiasDetection, false},
		{"Missing Skills", a.MissingSkills, true},
		{"Soft Skill Issues", a.SoftSkillIssues, true},
		{"Formatting Issues", a.FormattingIssues, true},
		{"Keyword Issues", a.KeywordIssues, true},
		{"Recruiter Tips", a.RecruiterTips, true},
	}

	keys := make([]string, 0, len(a.Extra))
	for k := range a.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		raw := bytes.TrimSpace(a.Extra[k])
		var l Lines
		_ = l.UnmarshalJSON(raw)
		out = append(out, Section{Title: k, Lines: l, List: len(raw) > 0 && raw[0] == '['})
	}
	return out
}

// Clone returns a deep copy so holders never share backing arrays.
func (a AnalysisResult) Clone() AnalysisResult {
	c := a
	for _, p := range []*Lines{
		&c.ProfileSummary, &c.Strengths, &c.Recommendations, &c.MissingSkills,
		&c.SoftSkillIssues, &c.FormattingIssues, &c.KeywordIssues,
		&c.BiasDetection, &c.RecruiterTips,
	} {
		if *p != nil {
			*p = append(Lines(nil), (*p)...)
		}
	}
	if a.Extra != nil {
		c.Extra = make(map[string]json.RawMessage, len(a.Extra))
		for k, v := range a.Extra {
			c.Extra[k] = append(json.RawMessage(nil), v...)
		}
	}
	return c
}
