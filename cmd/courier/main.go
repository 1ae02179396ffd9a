package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ClientCourier/internal/composer"
	"ClientCourier/internal/config"
	"ClientCourier/internal/loader"
	"ClientCourier/internal/recorder"
	"ClientCourier/internal/runner"
	"ClientCourier/internal/scheduler"
	"ClientCourier/internal/sender"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	dryRun := flag.Bool("dry-run", false, "compose and print messages without sending")
	recurring := flag.Bool("schedule", false, "keep running and re-send on the configured cron expression")
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatalf("[FATAL] usage: courier [-dry-run] [-schedule] <input-file>")
	}
	inputPath := flag.Arg(0)

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init source
	src, err := loader.ForFile(inputPath)
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
	log.Printf("[INFO] input source: %s", src.Name())

	// Init templates
	templates := composer.DefaultTemplates()
	if cfg.Templates.Greeting != "" {
		templates.Greeting = cfg.Templates.Greeting
	}
	if cfg.Templates.Opening != "" {
		templates.Opening = cfg.Templates.Opening
	}
	if cfg.Templates.Footer != "" {
		templates.Footer = cfg.Templates.Footer
	}
	if cfg.Templates.Signature != "" {
		templates.Signature = cfg.Templates.Signature
	}
	comp := composer.New(templates, composer.Normalizer{
		DefaultCountryCode: cfg.Delivery.DefaultCountryCode,
	})

	// Init channel
	var channel sender.Channel
	readyWait := time.Duration(*cfg.Delivery.ReadyWaitSeconds) * time.Second
	pace := time.Duration(*cfg.Delivery.PaceMinutes * float64(time.Minute))
	if *dryRun {
		channel = sender.NewConsoleChannel(os.Stdout)
		readyWait, pace = 0, 0
	} else {
		if err := cfg.ValidateChannel(); err != nil {
			log.Fatalf("[FATAL] config validation: %v", err)
		}
		channel = sender.NewWhatsAppChannel(
			cfg.Channel.BaseURL, cfg.Channel.PhoneID, cfg.Channel.AccessToken, cfg.Proxy)
	}
	log.Printf("[INFO] delivery channel: %s", channel.Name())

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	run := &runner.Runner{
		Source:    src,
		Composer:  comp,
		Driver:    sender.NewDriver(channel, readyWait, pace),
		Recorder:  rec,
		InputPath: inputPath,
	}

	if *recurring {
		if cfg.Schedule.Cron == "" {
			log.Fatalf("[FATAL] -schedule requires schedule.cron in config")
		}
		sched := scheduler.New(func() {
			if _, err := run.Run(ctx); err != nil {
				log.Printf("[ERROR] scheduled run: %v", err)
			}
		})
		if err := sched.Register(cfg.Schedule.Cron); err != nil {
			log.Fatalf("[FATAL] %v", err)
		}
		sched.Start()
		defer sched.Stop()

		log.Println("[INFO] courier is running on schedule. Press Ctrl+C to stop.")
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("[INFO] shutdown signal received, stopping...")
		cancel()
		return
	}

	sum, err := run.Run(ctx)
	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
	if !sum.Clean() {
		log.Printf("[WARN] run finished with %d skipped records and %d failed deliveries",
			sum.RecordsInvalid, sum.Failed)
		os.Exit(2)
	}
	log.Println("[INFO] run finished cleanly")
}
