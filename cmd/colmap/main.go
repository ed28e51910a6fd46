package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/kailas-cloud/colmap"
	"github.com/kailas-cloud/colmap/internal/config"
	logpkg "github.com/kailas-cloud/colmap/internal/logger"
	"github.com/kailas-cloud/colmap/internal/version"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "colmap:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("colmap", flag.ContinueOnError)
	file := fs.String("f", "schema.yaml", "schema file")
	format := fs.String("format", "text", "output format: text, json, proto")
	out := fs.String("o", "", "write output to file instead of stdout")
	apply := fs.Bool("apply", false, "create the collection on server.addr")
	showVersion := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		_, err := fmt.Fprintf(stdout, "colmap %s (commit %s, built %s)\n",
			version.Version, version.Commit, version.Date)
		return err
	}

	cfg, err := config.Load(*file)
	if err != nil {
		return err
	}

	logger, err := logpkg.NewLogger(cfg.Logging.Env, cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	m, err := mappingFromConfig(cfg)
	if err != nil {
		return err
	}
	logger.Debug("Built collection mapping",
		zap.String("collection", m.CollectionName()),
		zap.Int("fields", len(m.Fields())),
	)

	payload, err := render(m, *format)
	if err != nil {
		return err
	}
	if err := write(payload, *out, stdout); err != nil {
		return err
	}

	if !*apply {
		return nil
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logpkg.ContextWithLogger(ctx, logger)
	return applyMapping(ctx, cfg.Server, m, logger)
}

// mappingFromConfig builds the mapping in file order.
func mappingFromConfig(cfg config.Config) (*colmap.CollectionMapping, error) {
	m := colmap.Create(cfg.Collection)
	for i, f := range cfg.Fields {
		dt, err := colmap.ParseDataType(f.Type)
		if err != nil {
			return nil, fmt.Errorf("fields[%d]: %w", i, err)
		}
		if f.Dim != nil {
			m.AddVectorField(f.Name, dt, *f.Dim)
		} else {
			m.AddField(f.Name, dt)
		}
	}
	if cfg.Params != "" {
		m.SetParamsInJSON(cfg.Params)
	}
	return m, nil
}

func render(m *colmap.CollectionMapping, format string) ([]byte, error) {
	switch format {
	case "text":
		return []byte(m.String() + "\n"), nil
	case "json":
		schema, err := m.ToSchema()
		if err != nil {
			return nil, err
		}
		b, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(schema)
		if err != nil {
			return nil, fmt.Errorf("render json: %w", err)
		}
		return append(b, '\n'), nil
	case "proto":
		schema, err := m.ToSchema()
		if err != nil {
			return nil, err
		}
		b, err := proto.Marshal(schema)
		if err != nil {
			return nil, fmt.Errorf("render proto: %w", err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

func write(payload []byte, path string, stdout io.Writer) error {
	if path == "" {
		_, err := stdout.Write(payload)
		return err
	}
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func applyMapping(ctx context.Context, srv config.ServerConfig, m *colmap.CollectionMapping, logger *zap.Logger) error {
	if srv.Addr == "" {
		return errors.New("server.addr is required with -apply")
	}

	conn, err := grpc.NewClient(srv.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("dial %s: %w", srv.Addr, err)
	}
	defer func() { _ = conn.Close() }()

	svc, err := colmap.NewSchemaService(conn, colmap.WithDefaultDatabase(srv.Database))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(srv.TimeoutSec)*time.Second)
	defer cancel()

	var opts []colmap.RequestOption
	if srv.Shards > 0 {
		opts = append(opts, colmap.WithShards(srv.Shards))
	}
	if err := svc.Create(ctx, m, opts...); err != nil {
		return err
	}
	logger.Info("Collection created",
		zap.String("collection", m.CollectionName()),
		zap.String("addr", srv.Addr),
	)
	return nil
}
