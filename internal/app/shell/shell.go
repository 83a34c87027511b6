// Package shell is an interactive terminal front end for a workspace.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/exp/slog"

	"digitalwill/internal/app/workspace"
	"digitalwill/internal/domain/notify"
	"digitalwill/internal/domain/route"
)

type Shell struct {
	ws    *workspace.Workspace
	in    *bufio.Scanner
	out   io.Writer
	at    route.Destination
	pages map[route.Destination]pager
	log   *slog.Logger
}

func New(ws *workspace.Workspace, in io.Reader, out io.Writer, log *slog.Logger) *Shell {
	s := &Shell{
		ws:    ws,
		in:    bufio.NewScanner(in),
		out:   out,
		at:    route.Root,
		pages: make(map[route.Destination]pager),
		log:   log.With("component", "shell"),
	}
	for _, p := range pages(ws.Lists()) {
		s.pages[p.destination()] = p
	}
	if ws.Session().IsAuthenticated() {
		s.at = route.Dashboard
	}
	return s
}

// Run reads commands until exit, end of input or ctx is done.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "Digital Will (type 'help' for commands)")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintf(s.out, "digitalwill %s > ", s.at)
		if !s.in.Scan() {
			fmt.Fprintln(s.out)
			return s.in.Err()
		}

		parts := strings.Fields(s.in.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			fmt.Fprintln(s.out, "Bye!")
			return nil
		}

		if err := s.dispatch(ctx, cmd, args); err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			s.log.Debug("command failed", "cmd", cmd, "error", err)
			if !errors.Is(err, errAborted) && !s.hasFeedback() {
				color.New(color.FgRed).Fprintln(s.out, err)
			}
		}
		s.flush()
	}
}

func (s *Shell) dispatch(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "help":
		s.help()
	case "status", "whoami":
		s.status()
	case "login":
		return s.login(ctx, args)
	case "register":
		return s.register(ctx)
	case "logout":
		return s.ws.Session().Logout(ctx)
	case "go", "cd":
		if len(args) != 1 {
			return errors.New("usage: go <dashboard|documents|crypto|nominees|contacts>")
		}
		return s.navigate(args[0])
	case "dashboard":
		return s.navigate(route.Dashboard.String())
	case "list", "ls":
		return s.list(args)
	case "add":
		return s.add(ctx, args)
	case "rm", "remove":
		return s.remove(args)
	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}
	return nil
}

func (s *Shell) help() {
	if !s.ws.Session().IsAuthenticated() {
		fmt.Fprintln(s.out, "Commands: login [email], register, status, help, exit")
		return
	}
	fmt.Fprintln(s.out, "Commands: dashboard, go <page>, list [page] [all|uploaded|scanned], add [page], rm [page] <id>, logout, status, exit")
}

func (s *Shell) status() {
	sess, ok := s.ws.Session().Current()
	if !ok {
		fmt.Fprintf(s.out, "%s\n", s.ws.Session().State())
		return
	}
	fmt.Fprintf(s.out, "Signed in as %s <%s>\n", sess.Name, sess.Email)
}

func (s *Shell) login(ctx context.Context, args []string) error {
	var email string
	if len(args) > 0 {
		email = args[0]
	} else {
		v, ok := s.ask("Email: ")
		if !ok {
			return errAborted
		}
		email = v
	}
	password, ok := s.ask("Password: ")
	if !ok {
		return errAborted
	}

	_, err := s.ws.Session().Login(ctx, strings.TrimSpace(email), password)
	return err
}

func (s *Shell) register(ctx context.Context) error {
	var answers [3]string
	for i, prompt := range []string{"Full name: ", "Email: ", "Password: "} {
		v, ok := s.ask(prompt)
		if !ok {
			return errAborted
		}
		answers[i] = v
	}

	_, err := s.ws.Session().Register(ctx, strings.TrimSpace(answers[0]), strings.TrimSpace(answers[1]), answers[2])
	return err
}

func (s *Shell) navigate(to string) error {
	d, err := route.Parse(to)
	if err != nil {
		return err
	}
	if got := s.ws.Visit(d); got != d {
		return errors.New("please log in to continue")
	}
	s.at = d

	if d == route.Dashboard {
		s.dashboard()
	}
	return nil
}

func (s *Shell) dashboard() {
	d, err := s.ws.Dashboard()
	if err != nil {
		return
	}
	fmt.Fprintf(s.out, "Welcome back, %s\n", d.User.Name)
	fmt.Fprintf(s.out, "  %-18s %d\n", route.Documents.Label(), d.Stats.Documents)
	fmt.Fprintf(s.out, "  %-18s %d\n", route.Crypto.Label(), d.Stats.Cryptocurrencies)
	fmt.Fprintf(s.out, "  %-18s %d\n", route.Nominees.Label(), d.Stats.Nominees)
	fmt.Fprintf(s.out, "  %-18s %d\n", route.Contacts.Label(), d.Stats.Contacts)
}

// page resolves an optional leading page argument, falling back to the
// current page.
func (s *Shell) page(args []string) (pager, []string, error) {
	if len(args) > 0 {
		if d, err := route.Parse(args[0]); err == nil {
			if p, ok := s.pages[d]; ok {
				args = args[1:]
				return s.gated(p, args)
			}
		}
	}
	p, ok := s.pages[s.at]
	if !ok {
		return nil, nil, errors.New("open a page first: go <documents|crypto|nominees|contacts>")
	}
	return s.gated(p, args)
}

func (s *Shell) gated(p pager, args []string) (pager, []string, error) {
	if s.ws.Visit(p.destination()) != p.destination() {
		return nil, nil, errors.New("please log in to continue")
	}
	return p, args, nil
}

func (s *Shell) list(args []string) error {
	p, rest, err := s.page(args)
	if err != nil {
		return err
	}
	var tab string
	if len(rest) > 0 {
		tab = rest[0]
	}
	return p.show(s.out, tab)
}

func (s *Shell) add(ctx context.Context, args []string) error {
	p, _, err := s.page(args)
	if err != nil {
		return err
	}
	return p.add(ctx, s.ask)
}

func (s *Shell) remove(args []string) error {
	p, rest, err := s.page(args)
	if err != nil {
		return err
	}
	if len(rest) != 1 {
		return errors.New("usage: rm [page] <id>")
	}
	p.remove(rest[0])
	return nil
}

func (s *Shell) ask(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

func (s *Shell) hasFeedback() bool {
	return s.ws.Notifications().Len() > 0
}

// flush prints pending notifications and follows the pending navigation.
func (s *Shell) flush() {
	fb := s.ws.Drain()
	PrintFeedback(s.out, fb)
	if fb.Navigate != "" {
		if d, err := route.Parse(fb.Navigate); err == nil {
			s.at = d
			if d == route.Dashboard {
				s.dashboard()
			}
		}
	}
}

// PrintFeedback writes notifications one per line, destructive ones in red.
func PrintFeedback(w io.Writer, fb workspace.Feedback) {
	for _, n := range fb.Notifications {
		c := color.New(color.FgGreen)
		if n.Variant == notify.VariantDestructive {
			c = color.New(color.FgRed)
		}
		c.Fprintf(w, "%s: ", n.Title)
		fmt.Fprintln(w, n.Description)
	}
}
