package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/MKhiriev/go-event-keeper/internal/adapter"
	"github.com/MKhiriev/go-event-keeper/internal/logger"
	"github.com/MKhiriev/go-event-keeper/models"
)

// Usage lists the commands understood by [App.Run].
const Usage = `commands:
  signup [-plain] <username> <password>
  signin [-plain] <username> <password>
  create [-owned] <title> <description>
  get    [-owned] <id>
  update [-owned] [-title T] [-description D] <id>
  delete [-owned] <id>
  search [-owned] <term>
  version`

type command func(ctx context.Context, args []string) error

type App struct {
	adapter adapter.ServerAdapter
	out     io.Writer

	commands map[string]command

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, out io.Writer, logger *logger.Logger) *App {
	a := &App{
		adapter: serverAdapter,
		out:     out,
		logger:  logger,
	}

	a.commands = map[string]command{
		"signup":  a.signUp,
		"signin":  a.signIn,
		"create":  a.create,
		"get":     a.get,
		"update":  a.update,
		"delete":  a.delete,
		"search":  a.search,
		"version": a.version,
	}

	return a
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")
	if err := cmd(ctx, args[1:]); err != nil {
		a.logger.Err(err).Str("command", args[0]).Msg("command failed")
		return err
	}

	return nil
}

// parse parses the flags of one command and checks the number of
// positional arguments.
func parse(fs *flag.FlagSet, args []string, want int) ([]string, error) {
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if fs.NArg() != want {
		return nil, fmt.Errorf("%w: %s expects %d argument(s), got %d", ErrUsage, fs.Name(), want, fs.NArg())
	}
	return fs.Args(), nil
}

func (a *App) signUp(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ContinueOnError)
	plain := fs.Bool("plain", false, "use plain authentication")
	rest, err := parse(fs, args, 2)
	if err != nil {
		return err
	}

	scheme := adapter.SchemeToken
	if *plain {
		scheme = adapter.SchemePlain
	}

	if err = a.adapter.SignUp(ctx, scheme, models.Credentials{Name: rest[0], Secret: rest[1]}); err != nil {
		return err
	}

	_, err = fmt.Fprintf(a.out, "signed up %q\n", rest[0])
	return err
}

func (a *App) signIn(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("signin", flag.ContinueOnError)
	plain := fs.Bool("plain", false, "use plain authentication")
	rest, err := parse(fs, args, 2)
	if err != nil {
		return err
	}

	creds := models.Credentials{Name: rest[0], Secret: rest[1]}
	if *plain {
		message, err := a.adapter.PlainSignIn(ctx, creds)
		if err != nil {
			return err
		}
		return a.print(message)
	}

	token, err := a.adapter.SignIn(ctx, creds)
	if err != nil {
		return err
	}
	return a.print(token)
}

func (a *App) create(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	owned := fs.Bool("owned", false, "use the owner-scoped collection")
	rest, err := parse(fs, args, 2)
	if err != nil {
		return err
	}

	record, err := a.adapter.Events(*owned).Create(ctx, models.CreateRecordRequest{Title: rest[0], Description: rest[1]})
	if err != nil {
		return err
	}
	return a.print(record)
}

func (a *App) get(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	owned := fs.Bool("owned", false, "use the owner-scoped collection")
	rest, err := parse(fs, args, 1)
	if err != nil {
		return err
	}

	record, err := a.adapter.Events(*owned).Get(ctx, rest[0])
	if err != nil {
		return err
	}
	return a.print(record)
}

func (a *App) update(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	owned := fs.Bool("owned", false, "use the owner-scoped collection")
	title := fs.String("title", "", "new title")
	description := fs.String("description", "", "new description")
	rest, err := parse(fs, args, 1)
	if err != nil {
		return err
	}

	// only flags given on the command line are sent
	var request models.UpdateRecordRequest
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			request.Title = title
		case "description":
			request.Description = description
		}
	})

	record, err := a.adapter.Events(*owned).Update(ctx, rest[0], request)
	if err != nil {
		return err
	}
	return a.print(record)
}

func (a *App) delete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	owned := fs.Bool("owned", false, "use the owner-scoped collection")
	rest, err := parse(fs, args, 1)
	if err != nil {
		return err
	}

	if err = a.adapter.Events(*owned).Delete(ctx, rest[0]); err != nil {
		return err
	}

	_, err = fmt.Fprintf(a.out, "deleted %s\n", rest[0])
	return err
}

func (a *App) search(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	owned := fs.Bool("owned", false, "use the owner-scoped collection")
	rest, err := parse(fs, args, 1)
	if err != nil {
		return err
	}

	records, err := a.adapter.Events(*owned).Search(ctx, rest[0])
	if err != nil {
		return err
	}
	return a.print(records)
}

func (a *App) version(ctx context.Context, args []string) error {
	if _, err := parse(flag.NewFlagSet("version", flag.ContinueOnError), args, 0); err != nil {
		return err
	}

	info, err := a.adapter.Version(ctx)
	if err != nil {
		return err
	}
	return a.print(info)
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
