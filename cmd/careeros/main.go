package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/abhishek622/careerOS/internal/cache"
	"github.com/abhishek622/careerOS/internal/client"
	"github.com/abhishek622/careerOS/internal/config"
	"github.com/abhishek622/careerOS/internal/history"
	_ "github.com/joho/godotenv/autoload"
)

const usage = `usage: careeros <command> [args]

commands:
  draft [-save] [-out file.md] <text...>   generate a self-promotion draft
  history list | show <id> | delete <id>   drafts saved on this machine
  entries list | show <id> | add [-title t] [-file f]
  interview                                answer the 12 questions and save as an entry
`

type cli struct {
	api     *client.Client
	history *history.Store
	stdin   io.Reader
	stdout  io.Writer
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.LoadClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, closeKV, err := historyBackend(ctx, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeKV()

	app := &cli{
		api:     client.New(cfg.APIURL, cfg.Timeout),
		history: history.NewStore(kv),
		stdin:   os.Stdin,
		stdout:  os.Stdout,
	}

	if err := app.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func historyBackend(ctx context.Context, cfg *config.ClientConfig) (history.KV, func(), error) {
	if !cfg.UseRedis() {
		db, err := history.OpenSQLite(ctx, cfg.HistoryFile)
		if err != nil {
			return nil, nil, err
		}
		return history.NewSQLiteKV(db), func() { _ = db.Close() }, nil
	}
	rc, err := cache.NewRedisClient(cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	if err := cache.Ping(ctx, rc); err != nil {
		_ = rc.Close()
		return nil, nil, fmt.Errorf("redis unreachable: %w", err)
	}
	return history.NewRedisKV(rc), func() { _ = rc.Close() }, nil
}

func (a *cli) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "draft":
		return a.draft(ctx, args)
	case "history":
		return a.historyCmd(ctx, args)
	case "entries":
		return a.entries(ctx, args)
	case "interview":
		return a.interview(ctx)
	case "help", "-h", "--help":
		fmt.Fprint(a.stdout, usage)
		return nil
	default:
		return fmt.Errorf("unknown command %q\n%s", cmd, usage)
	}
}
