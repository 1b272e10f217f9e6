// Command marketview assembles one market from a JSON state-snapshot
// fixture and prints the result. It is a debugging harness for the
// derivation layer; it owns no wire protocol.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/joefazee/marketview/app/markets"
	"github.com/joefazee/marketview/app/state"
	"github.com/joefazee/marketview/internal/logger"
	"github.com/joefazee/marketview/models"
)

type config struct {
	Markets  markets.Config
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
}

func main() {
	var snapshotPath, marketID string
	flag.StringVar(&snapshotPath, "snapshot", "", "path to a JSON state snapshot")
	flag.StringVar(&marketID, "market", "", "market id to assemble")
	flag.Parse()

	if snapshotPath == "" || marketID == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := &config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	level := logger.LevelInfo
	if cfg.LogLevel == "debug" {
		level = logger.LevelDebug
	}
	lg := logger.NewZeroLogger(os.Stderr, level, logger.Fields{"app": "marketview"})

	raw, err := os.ReadFile(snapshotPath)
	if err != nil {
		lg.Fatal(err, map[string]interface{}{"snapshot": snapshotPath})
	}
	snap := state.NewSnapshot()
	if err := json.Unmarshal(raw, snap); err != nil {
		lg.Fatal(err, map[string]interface{}{"snapshot": snapshotPath})
	}

	asm, err := markets.NewAssembler(&cfg.Markets, nil)
	if err != nil {
		lg.Fatal(err, nil)
	}
	selector := markets.NewSelector(asm, lg)

	m := selector.AssembledMarket(snap, marketID)
	if !m.Ready() {
		lg.Fatal(models.ErrInvalidMarketID, map[string]interface{}{"market_id": marketID})
	}

	out, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		lg.Fatal(err, nil)
	}
	fmt.Println(string(out))
}
