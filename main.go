package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/damonallison/swift-fundamentals-sub000/internal/config"
	"github.com/damonallison/swift-fundamentals-sub000/logging"
	"github.com/damonallison/swift-fundamentals-sub000/pkg/script"
	"github.com/damonallison/swift-fundamentals-sub000/pkg/tag"
	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load(config.Path())
	if err != nil {
		log.Fatalln(err)
	}

	c := logging.Auto(cfg)
	defer c.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		slog.Error("stackfun failed", slog.Any("err", err))
		log.Fatalln(err)
	}
}

func run(ctx context.Context, cfg config.Config, args []string, stdin io.Reader, stdout io.Writer) error {
	slog.Debug("started stackfun", slog.Int("programs", len(args)), slog.Int("workers", cfg.Workers))
	defer slog.Debug("exited stackfun")

	progs, err := readPrograms(args, stdin)
	if err != nil {
		return err
	}

	runner := script.New(tag.New(), cfg.Tags)
	reports := make([]script.Report, len(progs))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(cfg.Workers, 1))

	for i, prog := range progs {
		eg.Go(func() error {
			report, err := runner.Run(ctx, prog)
			if err != nil {
				return fmt.Errorf("run %s: %w", prog.Name, err)
			}

			reports[i] = report

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}

	return writeResponse(stdout, reports)
}

func readPrograms(args []string, stdin io.Reader) ([]script.Program, error) {
	if len(args) == 0 {
		var prog script.Program

		if err := json.NewDecoder(stdin).Decode(&prog); err != nil {
			return nil, fmt.Errorf("decode stdin: %w", err)
		}

		if prog.Name == "" {
			prog.Name = "stdin"
		}

		return []script.Program{prog}, nil
	}

	progs := make([]script.Program, 0, len(args))

	for _, path := range args {
		marshaled, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		var prog script.Program

		if err := json.Unmarshal(marshaled, &prog); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}

		if prog.Name == "" {
			prog.Name = path
		}

		progs = append(progs, prog)
	}

	return progs, nil
}

func writeResponse(w io.Writer, reports []script.Report) error {
	if err := json.NewEncoder(w).Encode(reports); err != nil {
		return err
	}

	return nil
}
