package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isSignedIn() bool
	isAdmin() bool

	Go(ctx context.Context, path string) error
	SignIn(ctx context.Context) error
	SignUp(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	ResetPassword(ctx context.Context, token string) error
	SignOut(ctx context.Context) error

	SelectFile(ctx context.Context, path string) error
	ListJobs()
	SelectJob(arg string) error
	EnterJobDescription() error
	Analyze(ctx context.Context) error
	Retry(ctx context.Context) error
	Status()

	Courses(ctx context.Context, args []string) error
	AddCourse(ctx context.Context) error
	DeleteCourse(ctx context.Context, arg string) error
	AddStudent(ctx context.Context) error
	DeleteStudent(ctx context.Context, arg string) error
}

// screenCommands are shortcuts for "go <path>".
var screenCommands = map[string]string{
	"home":      "/",
	"upload":    "/upload-resume",
	"results":   "/analysis",
	"history":   "/scan-history",
	"dashboard": "/admin-dashboard",
	"students":  "/student-details",
}

// runREPL starts a simple read–eval–print loop for the SkillFit CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
// Commands that need a different role are still dispatched: the route guard
// decides where the user ends up.
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors to the user.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("sf %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]
		arg := ""
		if len(args) > 0 {
			arg = args[0]
		}

		switch cmd {
		case "help":
			printlnFn(helpText(a))

		case "go":
			_ = a.Go(ctx, arg)

		case "home", "upload", "results", "history", "dashboard", "students":
			_ = a.Go(ctx, screenCommands[cmd])

		case "signin":
			_ = a.SignIn(ctx)

		case "signup":
			_ = a.SignUp(ctx)

		case "forgot":
			_ = a.ForgotPassword(ctx)

		case "reset":
			_ = a.ResetPassword(ctx, arg)

		case "signout":
			_ = a.SignOut(ctx)

		case "file":
			// paths may contain spaces
			_ = a.SelectFile(ctx, strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), cmd)))

		case "jobs":
			a.ListJobs()

		case "job":
			_ = a.SelectJob(arg)

		case "jd":
			_ = a.EnterJobDescription()

		case "analyze":
			_ = a.Analyze(ctx)

		case "retry":
			_ = a.Retry(ctx)

		case "status":
			a.Status()

		case "courses":
			_ = a.Courses(ctx, args)

		case "addcourse":
			_ = a.AddCourse(ctx)

		case "delcourse":
			_ = a.DeleteCourse(ctx, arg)

		case "addstudent":
			_ = a.AddStudent(ctx)

		case "delstudent":
			_ = a.DeleteStudent(ctx, arg)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}

func helpText(a execIface) string {
	switch {
	case a.isAdmin():
		return "Available commands: dashboard, students, addstudent, delstudent <id>, courses [category] [page], addcourse, delcourse <id>, go <path>, signout, exit"
	case a.isSignedIn():
		return "Available commands: upload, file <path>, jobs, job <n>, jd, analyze, retry, status, results, history, courses [category] [page], go <path>, signout, exit"
	default:
		return "Available commands: home, signin, signup, forgot, reset <token>, go <path>, exit"
	}
}
