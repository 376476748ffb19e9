package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	calls []string
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
	return nil
}

func (f *fakeExec) List(_ context.Context, args []string) error { return f.record("list", args) }
func (f *fakeExec) Add(context.Context) error { return f.record("add", nil) }
func (f *fakeExec) Edit(_ context.Context, args []string) error { return f.record("edit", args) }
func (f *fakeExec) Remove(_ context.Context, args []string) error { return f.record("remove", args) }
func (f *fakeExec) Import(_ context.Context, args []string) error { return f.record("import", args) }
func (f *fakeExec) Assets(context.Context) error { return f.record("assets", nil) }
func (f *fakeExec) Messages(context.Context) error { return f.record("messages", nil) }

func stubOutput(t *testing.T) *[]string {
	t.Helper()
	var printed []string

	origPrint, origInteractive := printlnFn, isInteractive
	printlnFn = func(a ...any) (int, error) {
		s := make([]string, len(a))
		for i, v := range a {
			s[i] = v.(string)
		}
		printed = append(printed, strings.Join(s, " "))
		return 0, nil
	}
	isInteractive = func() bool { return false }
	t.Cleanup(func() { printlnFn, isInteractive = origPrint, origInteractive })

	return &printed
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	stubOutput(t)

	input := strings.Join([]string{
		"help",
		"",
		"list location=kraken from=2021-01-01",
		"l",
		"add",
		"edit 3",
		"rm 4",
		"remove 5",
		"import actions.json",
		"assets",
		"messages",
		"exit",
		"add",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, rdr(input))

	assert.Equal(t, []string{
		"list location=kraken from=2021-01-01",
		"list",
		"add",
		"edit 3",
		"remove 4",
		"remove 5",
		"import actions.json",
		"assets",
		"messages",
	}, exec.calls)
}

func TestRunREPL_UnknownCommandAndEOF(t *testing.T) {
	printed := stubOutput(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("foobar\nlist"))

	assert.Equal(t, []string{"list"}, exec.calls, "last line without newline still runs")
	assert.Equal(t, []string{"Unknown command: foobar"}, *printed)
}

func TestRunREPL_QuitSaysBye(t *testing.T) {
	printed := stubOutput(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("quit\nlist\n"))

	assert.Empty(t, exec.calls)
	assert.Equal(t, []string{"Bye!"}, *printed)
}
