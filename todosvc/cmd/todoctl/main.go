// Command todoctl talks to a todo service instance over gRPC.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	kitjwt "github.com/go-kit/kit/auth/jwt"
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/ichigozero/todogrpc/todosvc"
	todoclient "github.com/ichigozero/todogrpc/todosvc/client"
	userclient "github.com/ichigozero/todogrpc/usersvc/client"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	fs := flag.NewFlagSet("todoctl", flag.ExitOnError)
	var (
		addr    = fs.String("addr", envOr("TODO_ADDR", "localhost:50051"), "todo service gRPC address")
		token   = fs.String("token", envOr("TODO_TOKEN", ""), "bearer token for todo commands")
		timeout = fs.Duration("timeout", 5*time.Second, "per-command timeout")
	)
	fs.Usage = usage(fs)
	fs.Parse(os.Args[1:])

	args := fs.Args()
	if len(args) == 0 {
		fs.Usage()
		os.Exit(1)
	}

	logger := level.NewFilter(log.NewLogfmtLogger(os.Stderr), level.AllowWarn())

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	if *token != "" {
		ctx = context.WithValue(ctx, kitjwt.JWTTokenContextKey, *token)
	}

	if err := run(ctx, *addr, args[0], args[1:], logger, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

var errUsage = errors.New("wrong number of arguments")

func run(ctx context.Context, addr, command string, args []string, logger log.Logger, out io.Writer) error {
	switch command {
	case "register", "login":
		users, conn, err := userclient.Dial(addr, logger)
		if err != nil {
			return err
		}
		defer conn.Close()

		if command == "register" {
			if len(args) != 3 {
				return fmt.Errorf("%w: register <username> <password> <email>", errUsage)
			}
			u, err := users.Register(ctx, args[0], args[1], args[2])
			if err != nil {
				return err
			}
			return printJSON(out, u)
		}

		if len(args) != 2 {
			return fmt.Errorf("%w: login <username> <password>", errUsage)
		}
		u, token, err := users.Login(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		return printJSON(out, map[string]interface{}{"token": token, "user": u})
	}

	todos, conn, err := todoclient.Dial(addr, logger)
	if err != nil {
		return err
	}
	defer conn.Close()

	var a todosvc.Auth
	switch command {
	case "create":
		if len(args) < 1 || len(args) > 2 {
			return fmt.Errorf("%w: create <title> [description]", errUsage)
		}
		var description string
		if len(args) == 2 {
			description = args[1]
		}
		t, err := todos.CreateTodo(ctx, a, args[0], description)
		if err != nil {
			return err
		}
		return printJSON(out, t)

	case "get", "complete", "delete":
		if len(args) != 1 {
			return fmt.Errorf("%w: %s <id>", errUsage, command)
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		var t todosvc.Todo
		switch command {
		case "get":
			t, err = todos.GetTodo(ctx, a, id)
		case "complete":
			t, err = todos.CompleteTodo(ctx, a, id)
		default:
			t, err = todos.DeleteTodo(ctx, a, id)
		}
		if err != nil {
			return err
		}
		return printJSON(out, t)

	case "list":
		page, limit := 1, 10
		if len(args) > 2 {
			return fmt.Errorf("%w: list [page] [limit]", errUsage)
		}
		if len(args) > 0 {
			if page, err = strconv.Atoi(args[0]); err != nil {
				return fmt.Errorf("invalid page %q", args[0])
			}
		}
		if len(args) > 1 {
			if limit, err = strconv.Atoi(args[1]); err != nil {
				return fmt.Errorf("invalid limit %q", args[1])
			}
		}
		p, err := todos.GetAllTodos(ctx, a, page, limit)
		if err != nil {
			return err
		}
		return printPage(out, p)

	case "update":
		if len(args) != 4 {
			return fmt.Errorf("%w: update <id> <title> <description> <completed>", errUsage)
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		completed, err := strconv.ParseBool(args[3])
		if err != nil {
			return fmt.Errorf("invalid completed flag %q", args[3])
		}
		t, err := todos.UpdateTodo(ctx, a, todosvc.Todo{ID: id, Title: args[1], Description: args[2], Completed: completed})
		if err != nil {
			return err
		}
		return printJSON(out, t)
	}

	return fmt.Errorf("unknown command %q", command)
}

func parseID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid todo id %q", s)
	}
	return id, nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printPage(w io.Writer, p todosvc.Page) error {
	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tDONE\tTITLE\tCREATED\n")
	for _, t := range p.Todos {
		fmt.Fprintf(tw, "%d\t%t\t%s\t%s\n", t.ID, t.Completed, t.Title, t.CreatedAt.Format(time.RFC3339))
	}
	fmt.Fprintf(tw, "\npage %d of %d, %d total\n", p.Page, p.TotalPages(), p.Total)
	return tw.Flush()
}

func usage(fs *flag.FlagSet) func() {
	return func() {
		fmt.Fprintf(os.Stderr, "USAGE\n")
		fmt.Fprintf(os.Stderr, "  %s [flags] <command> [args...]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "COMMANDS\n")
		fmt.Fprintf(os.Stderr, "  register <username> <password> <email>\n")
		fmt.Fprintf(os.Stderr, "  login <username> <password>\n")
		fmt.Fprintf(os.Stderr, "  create <title> [description]\n")
		fmt.Fprintf(os.Stderr, "  get|complete|delete <id>\n")
		fmt.Fprintf(os.Stderr, "  list [page] [limit]\n")
		fmt.Fprintf(os.Stderr, "  update <id> <title> <description> <completed>\n")
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "FLAGS\n")
		w := tabwriter.NewWriter(os.Stderr, 0, 2, 2, ' ', 0)
		fs.VisitAll(func(f *flag.Flag) {
			fmt.Fprintf(w, "\t-%s %s\t%s\n", f.Name, f.DefValue, f.Usage)
		})
		w.Flush()
		fmt.Fprintf(os.Stderr, "\n")
	}
}

func envOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
