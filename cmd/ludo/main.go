package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/yola1107/ludo/internal/conf"
	"github.com/yola1107/ludo/library/log/zap"
)

var (
	Name     = conf.Name
	Version  = conf.Version
	flagconf string // -conf path
)

func init() {
	flag.StringVar(&flagconf, "conf", "../../configs", "config path, e.g. -conf config.yaml")
}

func main() {
	flag.Parse()

	c, bc, lc := conf.LoadConfig(flagconf)
	defer c.Close()

	logger := zap.NewLogger(lc)
	log.SetLogger(logger)
	defer logger.Close()

	if err := conf.WatchConfig(c, lc, logger); err != nil {
		panic(err)
	}

	app, cleanup, err := wireApp(bc.Match, bc.Data, logger)
	if err != nil {
		panic(err)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Infof("%s %s started", Name, Version)
	if err := app.Run(ctx, os.Stdin, os.Stdout); err != nil {
		log.Errorf("app exit: %v", err)
	}
}
