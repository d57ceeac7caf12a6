// Package router maps screen paths to routes, decides per navigation whether
// a screen may be entered, and tracks the navigation-scoped state that goes
// with the current screen.
//
// The guard is a usability gate. It reads the role the credential claims
// about itself; the backend enforces roles on every request independently.
package router

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/skillfit/internal/client/auth"
)

type Path string

const (
	PathLanding              Path = "/"
	PathSignIn               Path = "/signin"
	PathSignUp               Path = "/signup"
	PathResetPassword        Path = "/reset-password"
	PathUpload               Path = "/upload-resume"
	PathAnalysis             Path = "/analysis"
	PathScanHistory          Path = "/scan-history"
	PathCourseRecommendation Path = "/course-recommendation"
	PathAdminDashboard       Path = "/admin-dashboard"
	PathCourses              Path = "/courses"
	PathStudentDetails       Path = "/student-details"
	PathNotFound             Path = "*"
)

var ErrNoRoles = errors.New("protected route declares no roles")

type Route struct {
	Path    Path
	Title   string
	allowed []auth.Role
}

func Public(p Path, title string) Route {
	return Route{Path: p, Title: title}
}

func Protected(p Path, title string, roles ...auth.Role) Route {
	if roles == nil {
		roles = []auth.Role{}
	}
	return Route{Path: p, Title: title, allowed: roles}
}

// Protected reports whether the guard runs for this route.
func (r Route) Protected() bool { return r.allowed != nil }

// Allows reports whether role may enter. Public routes allow everyone.
func (r Route) Allows(role auth.Role) bool {
	if !r.Protected() {
		return true
	}
	return slices.Contains(r.allowed, role)
}

type Table struct {
	routes   map[Path]Route
	notFound Route
}

// NewTable indexes routes. Every protected route must name at least one role.
func NewTable(routes ...Route) (*Table, error) {
	t := &Table{
		routes:   make(map[Path]Route, len(routes)),
		notFound: Public(PathNotFound, "Page Not Found"),
	}
	for _, r := range routes {
		if r.Protected() && len(r.allowed) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoRoles, r.Path)
		}
		if _, dup := t.routes[r.Path]; dup {
			return nil, fmt.Errorf("duplicate route %s", r.Path)
		}
		t.routes[r.Path] = r
	}
	return t, nil
}

// DefaultTable is the skillfit screen map.
func DefaultTable() *Table {
	t, err := NewTable(
		Public(PathLanding, "Welcome"),
		Public(PathSignIn, "Sign in"),
		Public(PathSignUp, "Sign up"),
		Public(PathResetPassword, "Reset password"),
		Protected(PathUpload, "Scan the Resume", auth.RoleUser),
		Protected(PathAnalysis, "Analysis Overview", auth.RoleUser),
		Protected(PathScanHistory, "Scan History", auth.RoleUser),
		Protected(PathCourseRecommendation, "Course Recommendations", auth.RoleUser),
		Protected(PathAdminDashboard, "Admin Dashboard", auth.RoleAdmin),
		Protected(PathCourses, "Courses", auth.RoleAdmin),
		Protected(PathStudentDetails, "Student Details", auth.RoleAdmin),
	)
	if err != nil {
		panic(err)
	}
	return t
}

// Resolve returns the route for p, or the not-found route.
func (t *Table) Resolve(p Path) Route {
	if r, ok := t.routes[p]; ok {
		return r
	}
	return t.notFound
}

// LandingFor is the default screen of a signed-in role.
func LandingFor(role auth.Role) Path {
	if role == auth.RoleAdmin {
		return PathAdminDashboard
	}
	return PathUpload
}
