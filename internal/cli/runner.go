package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"taskpad/internal/export"
	"taskpad/internal/store"
	"taskpad/internal/task"
	"taskpad/internal/tui"
	"taskpad/internal/ui"
)

// Options tune output behavior and wiring from root flags.
type Options struct {
	Group  bool // list grouped by pending/done
	Stdout io.Writer
	Stderr io.Writer

	// Open builds the configured store; tests inject a memory-backed
	// one. The returned func releases the backend.
	Open func(ctx context.Context) (*store.Store, func(), error)
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string, opt Options) int {
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	if len(args) == 0 {
		PrintHelp(opt.Stdout)
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Stdout)
		return 0

	case "ls":
		return doList(ctx, opt)

	case "add":
		if len(a) == 0 {
			ui.Fail(opt.Stderr, "usage: taskpad add <title...>")
			return 2
		}
		return doAdd(ctx, opt, strings.Join(a, " "))

	case "done":
		if len(a) != 1 {
			ui.Fail(opt.Stderr, "usage: taskpad done <index>")
			return 2
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail(opt.Stderr, "done: not a number: "+a[0])
			return 2
		}
		return doToggle(ctx, opt, n)

	case "rm":
		if len(a) != 1 {
			ui.Fail(opt.Stderr, "usage: taskpad rm <index>")
			return 2
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail(opt.Stderr, "rm: not a number: "+a[0])
			return 2
		}
		return doRemove(ctx, opt, n)

	case "rename":
		if len(a) < 2 {
			ui.Fail(opt.Stderr, "usage: taskpad rename <index> <title...>")
			return 2
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail(opt.Stderr, "rename: not a number: "+a[0])
			return 2
		}
		return doRename(ctx, opt, n, strings.Join(a[1:], " "))

	case "export":
		return doExport(ctx, opt, a)

	case "tui":
		return doTUI(ctx, opt)
	}

	ui.Fail(opt.Stderr, "unknown subcommand: "+cmd)
	fmt.Fprintln(opt.Stderr)
	PrintHelp(opt.Stdout)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprintf(w, `taskpad - your tasks, one screen

Usage:
  taskpad [flags] <subcommand> [args]

Flags:
  -group             Group ls output by pending/done

Subcommands:
  add <title...>              Add a new task (title can be multiple words)
  ls                          List tasks
  done <index>                Toggle completion for task at 1-based index
  rm <index>                  Remove task at 1-based index
  rename <index> <title...>   Replace the title of task at 1-based index
  export [-format json|csv|pdf] [-o path]   Export the list
  tui                         Open the interactive screen

Examples:
  taskpad add "Buy milk"
  taskpad done 2
  taskpad rename 2 "Buy oat milk"
  taskpad export -format csv -o tasks.csv
`)
}

// openLoaded opens the configured store and seeds it from the slot.
// A malformed snapshot is reported and the run continues with an
// empty collection; the next save overwrites the bad value.
func openLoaded(ctx context.Context, opt Options) (*store.Store, func(), int) {
	st, closeFn, err := opt.Open(ctx)
	if err != nil {
		ui.Fail(opt.Stderr, "open store: "+err.Error())
		return nil, nil, 1
	}
	if err := st.Load(ctx); err != nil {
		if !errors.Is(err, store.ErrBadSnapshot) {
			closeFn()
			ui.Fail(opt.Stderr, "load: "+err.Error())
			return nil, nil, 1
		}
		ui.Fail(opt.Stderr, "load: "+err.Error())
		fmt.Fprintln(opt.Stderr, ui.Current().Muted.Render("starting with an empty list"))
	}
	return st, closeFn, 0
}

// -------------- subcommand impls ----------------

func doList(ctx context.Context, opt Options) int {
	st, closeFn, code := openLoaded(ctx, opt)
	if code != 0 {
		return code
	}
	defer closeFn()

	t := ui.Current()
	d, p := st.Stats()
	tasks := st.Tasks()
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Tasks"),
		t.Success.Render(t.SymDone), d,
		t.Pending.Render(t.SymPending), p,
		t.Accent.Render("Total"), len(tasks),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, t.Muted.Render(ui.ProgressBar(d, d+p, 28)))
	lines = append(lines, "")

	if opt.Group {
		lines = append(lines, groupLines(tasks)...)
	} else {
		lines = append(lines, flatLines(tasks)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Muted.Render("Tip: add with `taskpad add \"Buy milk\"`"))
	ui.Panel(opt.Stdout, lines)
	return 0
}

func doAdd(ctx context.Context, opt Options, title string) int {
	st, closeFn, code := openLoaded(ctx, opt)
	if code != 0 {
		return code
	}
	defer closeFn()

	_, added, err := st.Add(ctx, title)
	if err != nil {
		ui.Fail(opt.Stderr, "save: "+err.Error())
		return 1
	}
	if !added {
		ui.Fail(opt.Stderr, "add: empty title")
		return 2
	}
	ui.OK(opt.Stdout, "added")
	return 0
}

func doToggle(ctx context.Context, opt Options, userIndex int) int {
	st, closeFn, code := openLoaded(ctx, opt)
	if code != 0 {
		return code
	}
	defer closeFn()

	tk, code := resolveIndex(st, opt, userIndex)
	if code != 0 {
		return code
	}
	if _, _, err := st.Toggle(ctx, tk.ID); err != nil {
		ui.Fail(opt.Stderr, "save: "+err.Error())
		return 1
	}
	ui.OK(opt.Stdout, "toggled")
	return 0
}

func doRemove(ctx context.Context, opt Options, userIndex int) int {
	st, closeFn, code := openLoaded(ctx, opt)
	if code != 0 {
		return code
	}
	defer closeFn()

	tk, code := resolveIndex(st, opt, userIndex)
	if code != 0 {
		return code
	}
	if _, err := st.Remove(ctx, tk.ID); err != nil {
		ui.Fail(opt.Stderr, "save: "+err.Error())
		return 1
	}
	ui.OK(opt.Stdout, "removed")
	return 0
}

func doRename(ctx context.Context, opt Options, userIndex int, title string) int {
	st, closeFn, code := openLoaded(ctx, opt)
	if code != 0 {
		return code
	}
	defer closeFn()

	tk, code := resolveIndex(st, opt, userIndex)
	if code != 0 {
		return code
	}
	_, renamed, err := st.Rename(ctx, tk.ID, title)
	if err != nil {
		ui.Fail(opt.Stderr, "save: "+err.Error())
		return 1
	}
	if !renamed {
		ui.Fail(opt.Stderr, "rename: empty title")
		return 2
	}
	ui.OK(opt.Stdout, "renamed")
	return 0
}

func doExport(ctx context.Context, opt Options, args []string) int {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(opt.Stderr)
	format := fs.String("format", "json", "output format: json, csv or pdf")
	out := fs.String("o", "", "write to file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	st, closeFn, code := openLoaded(ctx, opt)
	if code != 0 {
		return code
	}
	defer closeFn()

	data, err := export.NewExporter(st).Export(*format)
	if err != nil {
		ui.Fail(opt.Stderr, "export: "+err.Error())
		return 2
	}
	if *out == "" {
		if _, err := opt.Stdout.Write(data); err != nil {
			ui.Fail(opt.Stderr, "write: "+err.Error())
			return 1
		}
		return 0
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		ui.Fail(opt.Stderr, "write "+*out+": "+err.Error())
		return 1
	}
	ui.OK(opt.Stdout, "exported to "+*out)
	return 0
}

func doTUI(ctx context.Context, opt Options) int {
	st, closeFn, err := opt.Open(ctx)
	if err != nil {
		ui.Fail(opt.Stderr, "open store: "+err.Error())
		return 1
	}
	defer closeFn()

	// A bad snapshot becomes a notice inside the screen; the list
	// starts empty and stays usable.
	notice := ""
	if err := st.Load(ctx); err != nil {
		if !errors.Is(err, store.ErrBadSnapshot) {
			ui.Fail(opt.Stderr, "load: "+err.Error())
			return 1
		}
		notice = "load: " + err.Error() + " (starting empty)"
	}
	if err := tui.Run(ctx, st, notice); err != nil {
		ui.Fail(opt.Stderr, "tui: "+err.Error())
		return 1
	}
	return 0
}

// resolveIndex maps a 1-based list position to the task occupying it.
func resolveIndex(st *store.Store, opt Options, userIndex int) (task.Task, int) {
	tasks := st.Tasks()
	if userIndex < 1 || userIndex > len(tasks) {
		ui.Fail(opt.Stderr, fmt.Sprintf("index out of range: have %d, got %d", len(tasks), userIndex))
		fmt.Fprintln(opt.Stderr, ui.Current().Muted.Render("Hint: run `taskpad ls` to see valid indexes"))
		return task.Task{}, 2
	}
	return tasks[userIndex-1], 0
}

// -------------- rendering helpers --------------

func taskLine(i int, tk task.Task) string {
	t := ui.Current()
	idx := fmt.Sprintf("%2d.", i+1)
	box, style := t.BoxUnchecked, t.Muted
	if tk.Completed {
		box, style = t.BoxChecked, t.Success
	}
	title := tk.Title
	if r := []rune(title); len(r) > 80 {
		title = string(r[:77]) + "..."
	}
	return fmt.Sprintf("%s %s %s", t.Muted.Render(idx), style.Render(box), title)
}

func flatLines(tasks []task.Task) []string {
	if len(tasks) == 0 {
		return []string{ui.Current().Muted.Render("no tasks")}
	}
	out := make([]string, 0, len(tasks))
	for i, tk := range tasks {
		out = append(out, taskLine(i, tk))
	}
	return out
}

// groupLines keeps the global 1-based indexes so `done`/`rm` still
// point at the right task from the grouped view.
func groupLines(tasks []task.Task) []string {
	t := ui.Current()
	var pend, done []string
	for i, tk := range tasks {
		if tk.Completed {
			done = append(done, taskLine(i, tk))
		} else {
			pend = append(pend, taskLine(i, tk))
		}
	}
	var lines []string
	lines = append(lines, t.Accent.Render("Pending"))
	if len(pend) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, pend...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Accent.Render("Done"))
	if len(done) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, done...)
	}
	return lines
}
