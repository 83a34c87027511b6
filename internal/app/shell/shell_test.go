package shell

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"digitalwill/internal/app/workspace"
	"digitalwill/internal/infrastructure/storage/memory"
)

func run(t *testing.T, lines ...string) (string, *workspace.Workspace) {
	t.Helper()
	color.NoColor = true

	ws, err := workspace.New(memory.New(), workspace.Options{}, slog.Default())
	require.NoError(t, err)
	require.NoError(t, ws.Init(context.Background()))
	t.Cleanup(func() { ws.Close() })

	var out bytes.Buffer
	sh := New(ws, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out, slog.Default())
	require.NoError(t, sh.Run(context.Background()))

	return out.String(), ws
}

func TestShell_GateBeforeLogin(t *testing.T) {
	out, _ := run(t, "list documents", "go crypto", "exit")

	assert.Contains(t, out, "please log in to continue")
	assert.Contains(t, out, "digitalwill / > ")
	assert.Contains(t, out, "Bye!")
}

func TestShell_LoginFailure(t *testing.T) {
	out, ws := run(t, "login user@example.com", "wrong", "exit")

	assert.Contains(t, out, "Login failed: Invalid email or password. Please try again.")
	assert.False(t, ws.Session().IsAuthenticated())
}

func TestShell_DocumentsScenario(t *testing.T) {
	out, ws := run(t,
		"login user@example.com",
		"password",
		"go documents",
		"add",
		"Deed",
		"upload",
		"list scanned",
		"logout",
		"exit",
	)

	assert.Contains(t, out, "Welcome back, John Doe!")
	assert.Contains(t, out, "digitalwill /dashboard > ")
	assert.Contains(t, out, `Success: Document "Deed" has been uploaded successfully`)
	assert.Contains(t, out, "Property Deed")
	assert.Contains(t, out, "Logged out: You have been successfully logged out.")
	assert.Equal(t, 4, ws.Lists().Documents.Len())
	assert.Equal(t, "Deed", ws.Lists().Documents.All()[0].Name)
}

func TestShell_RejectedFormKeepsDraft(t *testing.T) {
	out, ws := run(t,
		"login user@example.com",
		"password",
		"add contacts",
		"Ann Lee",
		"ann@example.com",
		"",
		"Executor",
		"",
		"add contacts",
		"",
		"",
		"+1 (555) 111-2222",
		"",
		"",
		"exit",
	)

	assert.Contains(t, out, "Error: Please provide phone")
	assert.Contains(t, out, "Full name [Ann Lee]: ")
	assert.Contains(t, out, "Contact added: Ann Lee has been added to your contacts")
	assert.Equal(t, 5, ws.Lists().Contacts.Len())
}

func TestShell_Remove(t *testing.T) {
	out, ws := run(t,
		"login user@example.com",
		"password",
		"rm nominees 1",
		"rm nominees 1",
		"exit",
	)

	assert.Equal(t, 1, strings.Count(out, "Sarah Johnson has been removed from your nominees"))
	assert.Zero(t, ws.Lists().Nominees.Len())
}

func TestShell_UnknownCommand(t *testing.T) {
	out, _ := run(t, "frobnicate", "exit")
	assert.Contains(t, out, "unknown command: frobnicate")
}
