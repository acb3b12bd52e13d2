package main

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"github.com/urfave/cli/v3"

	"github.com/samcharles93/binum/internal/api"
	"github.com/samcharles93/binum/internal/binfile"
	"github.com/samcharles93/binum/internal/logger"
)

func serveCmd() *cli.Command {
	var (
		addr        string
		filePath    string
		rps         float64
		burst       int64
		readTimeout time.Duration
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "listen address",
			Value:       "127.0.0.1:8080",
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "file",
			Usage:       "binary file to serve as the server buffer",
			Destination: &filePath,
		},
		&cli.Float64Flag{
			Name:        "rate",
			Usage:       "request rate limit per second (0 disables)",
			Value:       0,
			Destination: &rps,
		},
		&cli.Int64Flag{
			Name:        "burst",
			Usage:       "rate limiter burst size",
			Value:       10,
			Destination: &burst,
		},
		&cli.DurationFlag{
			Name:        "read-timeout",
			Usage:       "read timeout",
			Value:       30 * time.Second,
			Destination: &readTimeout,
		},
	}
	flags = append(flags, loggingFlags()...)

	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the render REST API",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg := LoadConfig()
			applyServeConfig(c, cfg, &addr)
			log := buildLogger()
			ctx = logger.WithContext(ctx, log)

			server := api.NewServer()
			if filePath != "" {
				f, err := binfile.Open(filePath)
				if err != nil {
					return err
				}
				defer f.Close()
				server = api.NewBufferServer(filePath, f.Data)
				log.Info("serving buffer", "file", filePath, "size", len(f.Data))
			}

			e := echo.New()
			e.Use(middleware.RequestLogger())
			e.Use(middleware.Recover())
			if rps > 0 {
				e.Use(api.RateLimit(rps, int(burst)))
			}
			server.Register(e)

			log.Info("starting server", "address", addr)
			sc := echo.StartConfig{
				Address: addr,
				BeforeServeFunc: func(srv *http.Server) error {
					srv.ReadHeaderTimeout = readTimeout
					return nil
				},
			}
			return sc.Start(ctx, e)
		},
	}
}
