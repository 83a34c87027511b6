package auth

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// AuthCmd groups the session commands.
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Sign in, sign out and manage accounts",
}

func init() {
	AuthCmd.AddCommand(LoginCmd, RegisterCmd, LogoutCmd, StatusCmd)
}

// prompt reads one line from in.
func prompt(out io.Writer, in *bufio.Reader, label string) (string, error) {
	line, err := readLine(out, in, label)
	return strings.TrimSpace(line), err
}

// readLine returns the line without its terminator. Other whitespace is kept.
func readLine(out io.Writer, in *bufio.Reader, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("read %s: %w", strings.TrimSuffix(label, ": "), err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// password reads without echo when src is a terminal.
func password(out io.Writer, in *bufio.Reader, src io.Reader) (string, error) {
	f, ok := src.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return readLine(out, in, "Password: ")
	}
	fd := int(f.Fd())

	fmt.Fprint(out, "Password: ")
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}
