// Command verifier replays a recorded snapshot through the parsing and
// matching pipeline. It exists to diagnose mismatches offline: capture
// the rendered text of the blotter or order panel, describe the
// expected record in a scenario file, and rerun the verification
// without a live session.
//
// Usage:
//
//	verifier -scenario scenario.yaml [-config config.yaml] [-debug]
//
// The scenario file names the view shape ("blotter" for the flat
// tab-separated table, "orders" for blank-line separated basic order
// items), the snapshot text and the expectation.
package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/hptabster/EWM-qa-demo/config"
	"github.com/hptabster/EWM-qa-demo/internal/domain"
	"github.com/hptabster/EWM-qa-demo/internal/services/match"
	"github.com/hptabster/EWM-qa-demo/internal/services/parse"
)

type scenario struct {
	View     string `yaml:"view"`
	Snapshot string `yaml:"snapshot"`
	Expect   struct {
		Status     []string `yaml:"status"`
		Side       string   `yaml:"side"`
		TermSymbol bool     `yaml:"term_symbol,omitempty"`
		Symbol     string   `yaml:"symbol"`
		Tenor      string   `yaml:"tenor,omitempty"`
		OrderType  string   `yaml:"order_type,omitempty"`
		Amount     string   `yaml:"amount,omitempty"`
		TIF        string   `yaml:"tif,omitempty"`
		Actor      string   `yaml:"actor,omitempty"`
	} `yaml:"expect"`
}

func main() {
	scenarioPath := flag.String("scenario", "", "path to yaml scenario")

	cfg, err := config.Get()
	if err != nil {
		log.Fatal(err)
	}
	if *scenarioPath == "" {
		log.Fatal("-scenario is required")
	}

	logger, _ := zap.NewProduction()
	if cfg.Debug {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	sc, err := loadScenario(*scenarioPath)
	if err != nil {
		logger.Fatal("failed to load scenario", zap.Error(err))
	}

	records := parseSnapshot(sc, cfg.EnumerateLimit)
	if len(records) == 0 {
		logger.Fatal("snapshot yielded no records", zap.String("view", sc.View))
	}

	exp, err := expectation(sc)
	if err != nil {
		logger.Fatal("invalid expectation", zap.Error(err))
	}

	if err := match.Verify(records[0], exp, match.Tolerances{}); err != nil {
		logger.Error("record does not match expectation", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("record matches expectation",
		zap.String("tradeId", records[0].ID()),
		zap.Int("recordsParsed", len(records)))
}

func loadScenario(path string) (scenario, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return scenario{}, err
	}
	var sc scenario
	if err := yaml.Unmarshal(f, &sc); err != nil {
		return scenario{}, err
	}
	return sc, nil
}

func parseSnapshot(sc scenario, limit int) []domain.Record {
	if strings.EqualFold(sc.View, "orders") {
		var records []domain.Record
		for _, item := range strings.Split(sc.Snapshot, "\n\n") {
			if rec := parse.ParseComposite(parse.Blocks{Body: item}, domain.LayoutBasic); rec != nil {
				records = append(records, rec)
			}
		}
		return records
	}
	return parse.ParseFlatTable(sc.Snapshot, limit)
}

func expectation(sc scenario) (domain.Expectation, error) {
	exp := domain.Expectation{
		Status:     sc.Expect.Status,
		Side:       domain.Side(strings.ToUpper(sc.Expect.Side)),
		TermSymbol: sc.Expect.TermSymbol,
		Symbol:     sc.Expect.Symbol,
		Tenor:      sc.Expect.Tenor,
		OrderType:  sc.Expect.OrderType,
		TIF:        sc.Expect.TIF,
		Actor:      sc.Expect.Actor,
	}
	if sc.Expect.Amount != "" {
		amount, err := decimal.NewFromString(sc.Expect.Amount)
		if err != nil {
			return domain.Expectation{}, err
		}
		exp.Amount = amount
	}
	return exp, nil
}
