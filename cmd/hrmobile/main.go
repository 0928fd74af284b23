// hrmobile is the terminal counterpart of the mobile HR app: it drives
// the same stores the app screens would, against a real backend or the
// bundled dev server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/joho/godotenv"

	"hrmobile/internal/api"
	"hrmobile/internal/export"
	"hrmobile/internal/form"
	"hrmobile/internal/platform/config"
	"hrmobile/internal/platform/jobs"
	"hrmobile/internal/platform/metrics"
	"hrmobile/internal/platform/token"
	"hrmobile/internal/record"
	"hrmobile/internal/service"
	"hrmobile/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level := slog.LevelWarn
	if cfg.DebugHTTP {
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	os.Exit(newApp(cfg).run(context.Background(), os.Args[1:]))
}

type app struct {
	cfg        config.Config
	collector  *metrics.Collector
	auth       *store.AuthStore
	personnel  *store.PersonnelStore
	leaves     *store.LeaveStore
	advances   *store.AdvanceStore
	timesheets *store.TimesheetStore
}

func newApp(cfg config.Config) *app {
	a := &app{cfg: cfg, collector: metrics.New()}

	client := api.New(cfg, func() string {
		if a.auth == nil {
			return ""
		}
		return a.auth.Token()
	}, a.collector)

	background := jobs.New()
	background.Start(context.Background())

	a.auth = store.NewAuth(service.NewAuth(client), token.NewFileKeeper(cfg.TokenFile))
	a.personnel = store.NewPersonnel(service.NewEmployees(client), background)
	a.leaves = store.NewLeave(service.NewLeaves(client))
	a.advances = store.NewAdvance(service.NewAdvances(client))
	a.timesheets = store.NewTimesheet(service.NewTimesheets(client))
	return a
}

func (a *app) run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		usage()
		return 2
	}

	switch args[0] {
	case "login":
		return a.cmdLogin(ctx, args[1:])
	case "register":
		return a.cmdRegister(ctx, args[1:])
	case "logout":
		return a.cmdLogout(ctx)
	case "whoami":
		return a.cmdWhoami(ctx)
	case "personnel":
		return a.cmdPersonnel(ctx, args[1:])
	case "leave":
		return a.cmdLeave(ctx, args[1:])
	case "advance":
		return a.cmdAdvance(ctx, args[1:])
	case "timesheet":
		return a.cmdTimesheet(ctx, args[1:])
	case "debug":
		return a.cmdDebug()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", args[0])
		usage()
		return 2
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: hrmobile <command> [flags]

commands:
  login       -email -password
  register    -name -email -password
  logout
  whoami
  personnel   list | deleted | stats | me | get | add | update | delete | restore
  leave       list | add | approve
  advance     list | add
  timesheet   list | add | edit | delete | export
  debug       print API call counters`)
}

func (a *app) cmdLogin(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	_ = fs.Parse(args)

	res := a.auth.Login(ctx, *email, *password)
	if !res.OK {
		return fail(res.Error)
	}
	fmt.Printf("logged in as %s\n", res.Value.String("email"))
	return 0
}

func (a *app) cmdRegister(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	_ = fs.Parse(args)

	res := a.auth.Register(ctx, *name, *email, *password)
	if !res.OK {
		return fail(res.Error)
	}
	fmt.Printf("registered %s\n", res.Value.String("email"))
	return 0
}

func (a *app) cmdLogout(ctx context.Context) int {
	if res := a.auth.Logout(ctx); !res.OK {
		return fail(res.Error)
	}
	fmt.Println("logged out")
	return 0
}

func (a *app) cmdWhoami(ctx context.Context) int {
	res := a.auth.FetchCurrentUser(ctx)
	if !res.OK {
		return fail(res.Error)
	}
	printJSON(res.Value)
	if expiry, ok := a.auth.TokenExpiry(); ok {
		fmt.Printf("token expires %s\n", expiry.Format("2006-01-02 15:04"))
	}
	return 0
}

func (a *app) cmdPersonnel(ctx context.Context, args []string) int {
	if len(args) == 0 {
		return fail("personnel needs a subcommand")
	}
	fs := flag.NewFlagSet("personnel", flag.ExitOnError)
	page := fs.Int("page", 1, "page number")
	limit := fs.Int("limit", a.cfg.PageSize, "page size")
	department := fs.String("department", "", "filter by department")
	search := fs.String("search", "", "search names and emails")
	id := fs.String("id", "", "employee id")
	data := fs.String("data", "", "employee fields as JSON")
	_ = fs.Parse(args[1:])

	switch args[0] {
	case "list":
		res := a.personnel.FetchList(ctx, service.EmployeeListQuery{
			Page: *page, Limit: *limit, Department: *department, Search: *search,
		})
		if !res.OK {
			return fail(res.Error)
		}
		printRecords(res.Value)
		w := a.personnel.Pagination()
		fmt.Printf("page %d/%d entries, %d total\n", w.Page, len(res.Value), w.Total)
		return 0
	case "deleted":
		res := a.personnel.FetchDeleted(ctx, *page, *limit)
		if !res.OK {
			return fail(res.Error)
		}
		printRecords(res.Value)
		return 0
	case "stats":
		res := a.personnel.FetchStatistics(ctx)
		if !res.OK {
			return fail(res.Error)
		}
		printJSON(res.Value)
		return 0
	case "me":
		res := a.personnel.FetchMe(ctx)
		if !res.OK {
			return fail(res.Error)
		}
		printJSON(res.Value)
		return 0
	case "get":
		res := a.personnel.FetchByID(ctx, *id)
		if !res.OK {
			return fail(res.Error)
		}
		printJSON(res.Value)
		return 0
	case "add":
		fields, err := parseJSON(*data)
		if err != nil {
			return fail(err.Error())
		}
		res := a.personnel.Create(ctx, fields)
		if !res.OK {
			return fail(res.Error)
		}
		fmt.Printf("created employee %s\n", res.Value.ID())
		return 0
	case "update":
		fields, err := parseJSON(*data)
		if err != nil {
			return fail(err.Error())
		}
		res := a.personnel.Update(ctx, *id, fields)
		if !res.OK {
			return fail(res.Error)
		}
		fmt.Printf("updated employee %s\n", res.Value.ID())
		return 0
	case "delete":
		if res := a.personnel.Delete(ctx, *id); !res.OK {
			return fail(res.Error)
		}
		fmt.Printf("deleted employee %s\n", *id)
		return 0
	case "restore":
		res := a.personnel.Restore(ctx, *id)
		if !res.OK {
			return fail(res.Error)
		}
		fmt.Printf("restored employee %s\n", res.Value.ID())
		return 0
	default:
		return fail(fmt.Sprintf("unknown personnel subcommand %q", args[0]))
	}
}

func (a *app) cmdLeave(ctx context.Context, args []string) int {
	if len(args) == 0 {
		return fail("leave needs a subcommand")
	}
	fs := flag.NewFlagSet("leave", flag.ExitOnError)
	page := fs.Int("page", 1, "page number")
	limit := fs.Int("limit", a.cfg.PageSize, "page size")
	status := fs.String("status", "", "filter by status")
	leaveType := fs.String("type", "", "leave type")
	start := fs.String("start", "", "start date YYYY-MM-DD")
	end := fs.String("end", "", "end date YYYY-MM-DD")
	reason := fs.String("reason", "", "reason")
	employee := fs.String("employee", "", "employee id")
	id := fs.String("id", "", "leave id")
	note := fs.String("note", "", "approval note")
	decision := fs.String("decision", "approved", "approved or rejected")
	_ = fs.Parse(args[1:])

	switch args[0] {
	case "list":
		res := a.leaves.FetchMine(ctx, service.LeaveListQuery{
			Page: *page, Limit: *limit, Status: *status, Type: *leaveType,
		})
		if !res.OK {
			return fail(res.Error)
		}
		printRecords(res.Value)
		return 0
	case "add":
		f := form.NewLeaveForm(a.leaves, nil)
		return submit(f.Submit(ctx, form.LeaveInput{
			Type: *leaveType, StartDate: *start, EndDate: *end, Reason: *reason,
		}))
	case "approve":
		res := a.leaves.Approve(ctx, *employee, *id, *decision, *note)
		if !res.OK {
			return fail(res.Error)
		}
		fmt.Printf("leave %s %s\n", *id, *decision)
		return 0
	default:
		return fail(fmt.Sprintf("unknown leave subcommand %q", args[0]))
	}
}

func (a *app) cmdAdvance(ctx context.Context, args []string) int {
	if len(args) == 0 {
		return fail("advance needs a subcommand")
	}
	fs := flag.NewFlagSet("advance", flag.ExitOnError)
	page := fs.Int("page", 1, "page number")
	limit := fs.Int("limit", a.cfg.PageSize, "page size")
	status := fs.String("status", "", "filter by status")
	amount := fs.String("amount", "", "requested amount")
	reason := fs.String("reason", "", "reason")
	_ = fs.Parse(args[1:])

	switch args[0] {
	case "list":
		res := a.advances.FetchMine(ctx, service.AdvanceListQuery{
			Page: *page, Limit: *limit, Status: *status,
		})
		if !res.OK {
			return fail(res.Error)
		}
		printRecords(res.Value)
		return 0
	case "add":
		f := form.NewAdvanceForm(a.advances, nil)
		return submit(f.Submit(ctx, form.AdvanceInput{Amount: *amount, Reason: *reason}))
	default:
		return fail(fmt.Sprintf("unknown advance subcommand %q", args[0]))
	}
}

func (a *app) cmdTimesheet(ctx context.Context, args []string) int {
	if len(args) == 0 {
		return fail("timesheet needs a subcommand")
	}
	fs := flag.NewFlagSet("timesheet", flag.ExitOnError)
	page := fs.Int("page", 1, "page number")
	limit := fs.Int("limit", a.cfg.PageSize, "page size")
	start := fs.String("start", "", "range start YYYY-MM-DD")
	end := fs.String("end", "", "range end YYYY-MM-DD")
	date := fs.String("date", "", "entry date YYYY-MM-DD")
	in := fs.String("in", "", "start time HH:MM")
	out := fs.String("out", "", "end time HH:MM")
	pause := fs.String("break", "", "break minutes")
	notes := fs.String("notes", "", "notes")
	id := fs.String("id", "", "timesheet id")
	outFile := fs.String("o", "timesheets.pdf", "output file for export")
	period := fs.String("period", "", "period label for export")
	_ = fs.Parse(args[1:])

	switch args[0] {
	case "list":
		res := a.timesheets.FetchMine(ctx, service.TimesheetListQuery{
			Page: *page, Limit: *limit, StartDate: *start, EndDate: *end,
		})
		if !res.OK {
			return fail(res.Error)
		}
		for _, entry := range res.Value {
			label := form.DurationLabel(
				form.NormalizeTime(entry.String("startTime")),
				form.NormalizeTime(entry.String("endTime")),
				entry.String("breakMinutes"),
			)
			fmt.Printf("%s  %s  %s-%s  %s h\n",
				entry.ID(), form.NormalizeDate(entry.String("date")),
				form.NormalizeTime(entry.String("startTime")),
				form.NormalizeTime(entry.String("endTime")), label)
		}
		return 0
	case "add", "edit":
		var editTarget record.Record
		if args[0] == "edit" {
			if *id == "" {
				return fail("edit needs -id")
			}
			editTarget = record.Record{"id": *id}
		}
		f := form.NewTimesheetForm(a.timesheets, editTarget)
		return submit(f.Submit(ctx, form.TimesheetInput{
			Date: *date, StartTime: *in, EndTime: *out, BreakMinutes: *pause, Notes: *notes,
		}))
	case "delete":
		if res := a.timesheets.Delete(ctx, *id); !res.OK {
			return fail(res.Error)
		}
		fmt.Printf("deleted timesheet %s\n", *id)
		return 0
	case "export":
		res := a.timesheets.FetchMine(ctx, service.TimesheetListQuery{
			Page: *page, Limit: *limit, StartDate: *start, EndDate: *end,
		})
		if !res.OK {
			return fail(res.Error)
		}
		if err := export.TimesheetPDF(*outFile, *period, a.auth.User(), res.Value); err != nil {
			return fail(err.Error())
		}
		fmt.Printf("wrote %s (%d entries)\n", *outFile, len(res.Value))
		return 0
	default:
		return fail(fmt.Sprintf("unknown timesheet subcommand %q", args[0]))
	}
}

func (a *app) cmdDebug() int {
	printJSON(record.Record(a.collector.Snapshot()))
	return 0
}

func submit(res form.SubmitResult) int {
	if res.OK {
		fmt.Println(res.Message)
		return 0
	}
	if len(res.FieldErrors) > 0 {
		fields := make([]string, 0, len(res.FieldErrors))
		for field := range res.FieldErrors {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			fmt.Fprintf(os.Stderr, "%s: %s\n", field, res.FieldErrors[field])
		}
		return 1
	}
	return fail(res.Error)
}

func fail(message string) int {
	if message == "" {
		message = "request failed"
	}
	fmt.Fprintln(os.Stderr, message)
	return 1
}

func parseJSON(data string) (record.Record, error) {
	if data == "" {
		return record.Record{}, nil
	}
	var fields record.Record
	if err := json.Unmarshal([]byte(data), &fields); err != nil {
		return nil, fmt.Errorf("invalid -data JSON: %w", err)
	}
	return fields, nil
}

func printRecords(recs []record.Record) {
	for _, rec := range recs {
		printJSON(rec)
	}
}

func printJSON(rec record.Record) {
	encoded, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		fmt.Println(rec)
		return
	}
	fmt.Println(string(encoded))
}
