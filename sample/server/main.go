// Command server runs the sample item service over HTTP.
//
// Items are kept in memory and served under /api/sample, Prometheus metrics are served under /metrics.
package main

import (
	stdlog "log"
	"os"
	"time"

	"github.com/dkinzler/respkit/endpoint"
	"github.com/dkinzler/respkit/log"
	"github.com/dkinzler/respkit/sample"
	t "github.com/dkinzler/respkit/transport/http"

	kitprometheus "github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	cli "github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "server",
		Usage: "runs the sample item service",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "port",
				Value: 8080,
				Usage: "Port to listen on.",
			},
			&cli.StringFlag{
				Name:        "address",
				Usage:       "Address to listen on.",
				DefaultText: "all interfaces",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "Minimum level of log messages, one of debug, info, warn or error.",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty print log messages.",
			},
			&cli.DurationFlag{
				Name:  "request-timeout",
				Value: 10 * time.Second,
				Usage: "Maximum duration of a request.",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		stdlog.Fatal(err)
	}
}

func run(ctx *cli.Context) error {
	levelOption, err := log.ParseLevel(ctx.String("log-level"))
	if err != nil {
		return err
	}
	options := []log.Option{levelOption}
	if ctx.Bool("pretty") {
		options = append(options, log.PrettyPrint)
	}
	logger := log.DefaultJSONLogger(options...)

	duration := kitprometheus.NewHistogramFrom(stdprometheus.HistogramOpts{
		Namespace: "respkit",
		Subsystem: "sample",
		Name:      "request_duration_milliseconds",
		Help:      "Duration of requests in milliseconds, by kind of response.",
		Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000},
	}, []string{"kind"})

	svc := sample.NewService(nil)
	endpoints := sample.NewEndpoints(svc,
		endpoint.ResponseLoggingMiddleware(logger.With("component", "endpoint")),
		endpoint.InstrumentRequestTimeMiddleware(duration),
	)

	router := sample.NewHTTPHandler(endpoints, logger.With("component", "http").Error())
	router.Handle("/metrics", promhttp.Handler())

	config := t.NewServerConfig().
		WithAddress(ctx.String("address")).
		WithPort(ctx.Int("port")).
		WithRequestTimeout(ctx.Duration("request-timeout")).
		WithLogger(logger.With("component", "server"))

	return t.RunDefaultServer(router, nil, config)
}
