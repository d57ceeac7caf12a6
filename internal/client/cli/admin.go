package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/skillfit/internal/client/models"
	"github.com/dmitrijs2005/skillfit/internal/client/router"
)

// Courses opens the catalogue. Arguments are a category and/or a page
// number, e.g. "courses Programming 2". "All" clears the category.
func (a *App) Courses(ctx context.Context, args []string) error {
	f := a.courseFilter
	f.Page = 1
	for _, arg := range args {
		if n, err := strconv.Atoi(arg); err == nil {
			f.Page = max(n, 1)
			continue
		}
		if strings.EqualFold(arg, "all") {
			f.Category = ""
		} else {
			f.Category = arg
		}
	}
	a.courseFilter = f

	p := router.PathCourseRecommendation
	if a.isAdmin() {
		p = router.PathCourses
	}
	return a.enter(ctx, p, router.State{})
}

func (a *App) AddCourse(ctx context.Context) error {
	var c models.Course
	for _, f := range []struct {
		prompt string
		dst    *string
	}{
		{"Course name", &c.Name},
		{"Source", &c.Source},
		{"Category", &c.Category},
		{"Link", &c.Link},
	} {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	if err := a.catalog.AddCourse(ctx, c); err != nil {
		return a.fail(ctx, err, "Failed to add course. Please try again.")
	}
	a.println("Course added.")
	return a.enter(ctx, router.PathCourses, router.State{})
}

func (a *App) DeleteCourse(ctx context.Context, arg string) error {
	id, err := strconv.Atoi(arg)
	if err != nil {
		a.println("Usage: delcourse <id>")
		return nil
	}
	if err := a.catalog.DeleteCourse(ctx, id); err != nil {
		return a.fail(ctx, err, "Failed to delete course. Please try again.")
	}
	a.println("Course deleted.")
	return a.enter(ctx, router.PathCourses, router.State{})
}

func (a *App) AddStudent(ctx context.Context) error {
	var s models.Student
	for _, f := range []struct {
		prompt string
		dst    *string
	}{
		{"Name", &s.Name},
		{"Email", &s.Email},
		{"Department", &s.Department},
		{"Year", &s.Year},
	} {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	if err := a.catalog.AddStudent(ctx, s); err != nil {
		return a.fail(ctx, err, "Failed to add student. Please try again.")
	}
	a.println("Student added.")
	return a.enter(ctx, router.PathStudentDetails, router.State{})
}

func (a *App) DeleteStudent(ctx context.Context, arg string) error {
	id, err := strconv.Atoi(arg)
	if err != nil {
		a.println("Usage: delstudent <id>")
		return nil
	}
	if err := a.catalog.DeleteStudent(ctx, id); err != nil {
		return a.fail(ctx, err, "Failed to delete student. Please try again.")
	}
	a.println("Student deleted.")
	return a.enter(ctx, router.PathStudentDetails, router.State{})
}
