// Command example shows the intended wiring of the conf, cli and
// logging packages in a small database tool.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/wtsi-npg/npg-go-lib/cli"
	"github.com/wtsi-npg/npg-go-lib/conf"
	"github.com/wtsi-npg/npg-go-lib/logging"
)

type dbConfig struct {
	Host     string      `ini:"host"`
	Port     int         `ini:"port"`
	Schema   *string     `ini:"schema"`
	Password conf.Secret `ini:"password,sensitive"`
}

func main() {
	app := kingpin.New("dbtool", "Example database maintenance tool.")
	dbConfPath := cli.AddDBConfigFlag(app)
	dates := cli.AddDateRangeFlags(app, cli.DefaultBeginDelta)
	logFlags := cli.AddLoggingFlags(app)

	kingpin.MustParse(app.Parse(os.Args[1:]))

	if err := logFlags.Validate(); err != nil {
		app.FatalUsage("%v", err)
	}

	logger, err := logging.Init(logFlags.Options())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	loader, err := conf.New[dbConfig](
		conf.WithEnv("DB_"),
		conf.WithLogger(logger),
	)
	if err != nil {
		logger.Fatal("invalid configuration type", zap.Error(err))
	}

	cfg, err := loader.Load(*dbConfPath, "database")
	if err != nil {
		logger.Fatal("loading configuration", zap.Error(err))
	}

	schema := "public"
	if cfg.Schema != nil {
		schema = *cfg.Schema
	}

	logger.Info("would connect",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("schema", schema),
		zap.Stringer("password", cfg.Password),
		zap.Time("begin", dates.Begin),
		zap.Time("end", dates.End))
}
