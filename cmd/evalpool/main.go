// Command evalpool runs the worker-pool demo: it schedules a batch of
// two-argument integer evaluations over a fixed pool, retries submission
// with backoff while every worker is busy, and dumps the batch before and
// after execution. With diagnostics enabled it also serves /stats, /live,
// and /metrics over HTTP.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/evalio/evalpool/pkg/config"
	"github.com/evalio/evalpool/pkg/diag"
	"github.com/evalio/evalpool/pkg/eval"
	"github.com/evalio/evalpool/pkg/logging"
	"github.com/evalio/evalpool/pkg/pool"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML or JSON config file")
		initConfig = flag.String("init-config", "", "write the default config to this path and exit")
		workers    = flag.Int("workers", 0, "override pool.workers")
		evals      = flag.Int("evals", 0, "override driver.evaluations")
		diagAddr   = flag.String("diag", "", "serve diagnostics on this address and stay up after the run")
	)
	flag.Parse()

	if *initConfig != "" {
		if err := config.SaveYAML(*initConfig, config.Default()); err != nil {
			log.Fatalf("Failed to write config: %v", err)
		}
		return
	}

	cfg := config.Default()
	if err := config.LoadWithEnv(*configPath, &cfg); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *workers > 0 {
		cfg.Pool.Workers = *workers
	}
	if *evals > 0 {
		cfg.Driver.Evaluations = *evals
	}
	if *diagAddr != "" {
		cfg.Diagnostics.Enabled = true
		cfg.Diagnostics.Addr = *diagAddr
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	level, err := logging.ParseLevel(cfg.Driver.LogLevel)
	if err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	logger := logging.New(level)

	policy, err := cfg.RetryPolicy()
	if err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	registry := prometheus.NewRegistry()
	metrics := pool.NewMetrics(registry)

	p, err := pool.New(pool.Config{
		Workers: cfg.Pool.Workers,
		Logger:  logger,
		Metrics: metrics,
		Retry:   policy,
	})
	if err != nil {
		log.Fatalf("Failed to create pool: %v", err)
	}

	if cfg.Diagnostics.Enabled {
		server := diag.NewServer(cfg.Diagnostics.Addr, p, registry, logger)
		go func() {
			if err := server.ListenAndServe(); err != nil {
				logger.Errorf("diag server: %v", err)
			}
		}()
	}

	batch := eval.NewBatch(cfg.Driver.Evaluations)

	logger.Info("initial values:")
	if err := eval.Dump(os.Stdout, batch); err != nil {
		log.Fatalf("Failed to dump batch: %v", err)
	}

	ctx := context.Background()
	for i, e := range batch {
		res, err := p.SubmitWait(ctx, e.Fn, e.Param1, e.Param2)
		if err != nil {
			log.Fatalf("Failed to schedule evaluation %d: %v", i, err)
		}
		e.Res = res
		logger.Debugf("driver: scheduled evaluation %d (%s %d %d)", i, e.Name, e.Param1, e.Param2)
	}

	waitCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	for i, e := range batch {
		if _, err := e.Res.Wait(waitCtx); err != nil {
			log.Fatalf("Evaluation %d did not complete: %v", i, err)
		}
	}

	logger.Info("final values:")
	if err := eval.Dump(os.Stdout, batch); err != nil {
		log.Fatalf("Failed to dump batch: %v", err)
	}

	if cfg.Diagnostics.Enabled {
		logger.Infof("run complete, serving diagnostics on %s", cfg.Diagnostics.Addr)
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
	}
}
