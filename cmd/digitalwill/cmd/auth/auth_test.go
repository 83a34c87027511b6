package auth

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"digitalwill/internal/app/workspace"
	"digitalwill/internal/infrastructure/storage/memory"
)

func newWorkspace(t *testing.T) *workspace.Workspace {
	t.Helper()
	color.NoColor = true
	ws, err := workspace.New(memory.New(), workspace.Options{}, slog.Default())
	require.NoError(t, err)
	require.NoError(t, ws.Init(context.Background()))
	t.Cleanup(func() { ws.Close() })
	return ws
}

func exec(t *testing.T, c *cobra.Command, ws *workspace.Workspace, input string) string {
	t.Helper()
	var out bytes.Buffer
	c.SetContext(workspace.With(context.Background(), ws))
	c.SetIn(strings.NewReader(input))
	c.SetOut(&out)
	require.NoError(t, c.RunE(c, nil))
	return out.String()
}

func TestLoginStatusLogout(t *testing.T) {
	ws := newWorkspace(t)

	out := exec(t, StatusCmd, ws, "")
	assert.Contains(t, out, "Not signed in")

	out = exec(t, LoginCmd, ws, "user@example.com\npassword\n")
	assert.Contains(t, out, "Login successful: Welcome back, John Doe!")

	out = exec(t, StatusCmd, ws, "")
	assert.Contains(t, out, "Signed in as John Doe <user@example.com>")
	assert.Contains(t, out, "Documents: 3")

	out = exec(t, LogoutCmd, ws, "")
	assert.Contains(t, out, "Logged out")
	assert.False(t, ws.Session().IsAuthenticated())
}

func TestLogin_WrongPassword(t *testing.T) {
	ws := newWorkspace(t)

	out := exec(t, LoginCmd, ws, "user@example.com\nnope\n")

	assert.Contains(t, out, "Login failed")
	assert.False(t, ws.Session().IsAuthenticated())
}

func TestRegister(t *testing.T) {
	ws := newWorkspace(t)

	out := exec(t, RegisterCmd, ws, "Jane Roe\nuser@example.com\nsecret\n")
	assert.Contains(t, out, "An account with this email already exists.")

	out = exec(t, RegisterCmd, ws, "Jane Roe\njane@example.com\nsecret\n")
	assert.Contains(t, out, "Registration successful")
	assert.False(t, ws.Session().IsAuthenticated())
}

func TestPassword_KeepsSurroundingSpaces(t *testing.T) {
	var out bytes.Buffer
	in := bufio.NewReader(strings.NewReader("  secret \r\n"))

	got, err := password(&out, in, strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, "  secret ", got)
	assert.Equal(t, "Password: ", out.String())
}
