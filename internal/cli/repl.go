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
	Crew(ctx context.Context) error
	CrewAdd(ctx context.Context) error
	CrewEdit(ctx context.Context) error
	CrewDelete(ctx context.Context) error
	CrewShare(ctx context.Context) error

	Briefings(ctx context.Context) error
	BriefingAdd(ctx context.Context) error
	BriefingEdit(ctx context.Context) error
	BriefingDelete(ctx context.Context) error
	BriefingShare(ctx context.Context) error
	BriefingOpen(ctx context.Context) error

	Documents(ctx context.Context) error
	DocumentAdd(ctx context.Context) error
	DocumentEdit(ctx context.Context) error
	DocumentDelete(ctx context.Context) error
	DocumentShare(ctx context.Context) error
	DocumentOpen(ctx context.Context) error

	Incidents(ctx context.Context) error
	IncidentAdd(ctx context.Context) error
	IncidentDelete(ctx context.Context) error
	IncidentShare(ctx context.Context) error
	IncidentOpen(ctx context.Context) error

	Assignment(ctx context.Context) error

	Notifications(ctx context.Context) error
	NotificationShow(ctx context.Context) error
	NotificationDelete(ctx context.Context) error
	NotificationClear(ctx context.Context) error

	OpenSharedURL(rawURL string)
}

// runREPL reads a line from the scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers print and
// log their own errors. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("tc%s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printlnFn("Crew:          crew, crewadd, crewedit, crewdel, crewshare")
			printlnFn("Briefings:     briefs, briefadd, briefedit, briefdel, briefshare, briefopen")
			printlnFn("Documents:     docs, docadd, docedit, docdel, docshare, docopen")
			printlnFn("Incidents:     incidents, incidentadd, incidentdel, incidentshare, incidentopen")
			printlnFn("Assignment:    assign")
			printlnFn("Notifications: notices, noticeshow, noticedel, noticeclear")
			printlnFn("Other:         share <url>, exit")

		case "crew":
			_ = a.Crew(ctx)
		case "crewadd":
			_ = a.CrewAdd(ctx)
		case "crewedit":
			_ = a.CrewEdit(ctx)
		case "crewdel":
			_ = a.CrewDelete(ctx)
		case "crewshare":
			_ = a.CrewShare(ctx)

		case "briefs":
			_ = a.Briefings(ctx)
		case "briefadd":
			_ = a.BriefingAdd(ctx)
		case "briefedit":
			_ = a.BriefingEdit(ctx)
		case "briefdel":
			_ = a.BriefingDelete(ctx)
		case "briefshare":
			_ = a.BriefingShare(ctx)
		case "briefopen":
			_ = a.BriefingOpen(ctx)

		case "docs":
			_ = a.Documents(ctx)
		case "docadd":
			_ = a.DocumentAdd(ctx)
		case "docedit":
			_ = a.DocumentEdit(ctx)
		case "docdel":
			_ = a.DocumentDelete(ctx)
		case "docshare":
			_ = a.DocumentShare(ctx)
		case "docopen":
			_ = a.DocumentOpen(ctx)

		case "incidents":
			_ = a.Incidents(ctx)
		case "incidentadd":
			_ = a.IncidentAdd(ctx)
		case "incidentdel":
			_ = a.IncidentDelete(ctx)
		case "incidentshare":
			_ = a.IncidentShare(ctx)
		case "incidentopen":
			_ = a.IncidentOpen(ctx)

		case "assign":
			_ = a.Assignment(ctx)

		case "notices":
			_ = a.Notifications(ctx)
		case "noticeshow":
			_ = a.NotificationShow(ctx)
		case "noticedel":
			_ = a.NotificationDelete(ctx)
		case "noticeclear":
			_ = a.NotificationClear(ctx)

		case "share":
			if len(parts) < 2 {
				printlnFn("Usage: share <url>")
				continue
			}
			a.OpenSharedURL(parts[1])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
