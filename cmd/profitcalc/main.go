// Profitcalc CLI - profitability metrics for price-monitoring feeds
//
// Usage:
//   profitcalc calc --buy-box 50.00 --cost 18.00 --pick-pack 6.50
//   profitcalc calc --record row.json --format json
//   profitcalc report --input feed.csv --output report.csv
//   profitcalc serve --port 8080
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/ecomwithmo-gif/Tools-Dashboard/api"
	"github.com/ecomwithmo-gif/Tools-Dashboard/internal/feed"
	"github.com/ecomwithmo-gif/Tools-Dashboard/internal/metrics"
	"github.com/ecomwithmo-gif/Tools-Dashboard/internal/report"
	"github.com/ecomwithmo-gif/Tools-Dashboard/pkg/platform"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	godotenv.Load()

	app := &cli.App{
		Name:    "profitcalc",
		Usage:   "Profitability metrics for e-commerce price-monitoring feeds",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Commands: []*cli.Command{
			calcCommand(),
			reportCommand(),
			serveCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// fieldFlags maps CLI flag names to feed field names for single-row calc.
var fieldFlags = []struct {
	flag  string
	field string
	usage string
}{
	{"buy-box", feed.FieldBuyBox, "Current Buy Box price"},
	{"buy-box-30", feed.FieldBuyBox30, "30-day average Buy Box price"},
	{"buy-box-90", feed.FieldBuyBox90, "90-day average Buy Box price"},
	{"buy-box-180", feed.FieldBuyBox180, "180-day average Buy Box price"},
	{"msrp", feed.FieldMSRP, "Manufacturer's suggested retail price"},
	{"referral-fee", feed.FieldReferralFee, "Referral fee (percentage or fraction)"},
	{"cost", feed.FieldCost, "Unit cost of goods"},
	{"pick-pack", feed.FieldPickPack, "Per-unit fulfillment cost"},
}

func calcCommand() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:    "record",
			Aliases: []string{"r"},
			Usage:   "Path to a JSON object of raw field values ('-' for stdin)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   "table",
			Usage:   "Output format (table, json)",
		},
	}
	for _, ff := range fieldFlags {
		flags = append(flags, &cli.StringFlag{Name: ff.flag, Usage: ff.usage})
	}

	return &cli.Command{
		Name:   "calc",
		Usage:  "Calculate metrics for a single product row",
		Flags:  flags,
		Action: runCalc,
	}
}

func runCalc(c *cli.Context) error {
	rec, err := recordFromContext(c)
	if err != nil {
		return err
	}

	result := metrics.NewCalculator().Calculate(rec)

	switch c.String("format") {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "table":
		for _, key := range metrics.OutputKeys {
			fmt.Printf("%-26s %s\n", key, result[key])
		}
		return nil
	default:
		return fmt.Errorf("unknown format: %s", c.String("format"))
	}
}

func recordFromContext(c *cli.Context) (feed.Record, error) {
	if path := c.String("record"); path != "" {
		var in io.Reader = os.Stdin
		if path != "-" {
			f, err := os.Open(path)
			if err != nil {
				return nil, fmt.Errorf("failed to open record: %w", err)
			}
			defer f.Close()
			in = f
		}
		dec := json.NewDecoder(in)
		dec.UseNumber()
		var rec feed.Record
		if err := dec.Decode(&rec); err != nil {
			return nil, fmt.Errorf("failed to parse record: %w", err)
		}
		return rec, nil
	}

	rec := feed.Record{}
	for _, ff := range fieldFlags {
		if c.IsSet(ff.flag) {
			rec[ff.field] = c.String(ff.flag)
		}
	}
	return rec, nil
}

func reportCommand() *cli.Command {
	return &cli.Command{
		Name:  "report",
		Usage: "Enrich a CSV feed with the calculated metric columns",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Usage:    "Path to the CSV feed (first row is the header)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Usage:    "Path for the enriched report CSV",
				Required: true,
			},
		},
		Action: runReport,
	}
}

func runReport(c *cli.Context) error {
	logger := platform.InitLogger()

	summary, err := report.NewEnricher(logger).EnrichFile(c.String("input"), c.String("output"))
	if err != nil {
		return fmt.Errorf("report failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Enriched %d rows -> %s (run %s)\n",
		summary.Rows, c.String("output"), summary.RunID)
	return nil
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the metrics calculator over HTTP",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   platform.GetEnvInt("PROFITCALC_PORT", 8080),
				Usage:   "Listen port",
				EnvVars: []string{"PROFITCALC_PORT"},
			},
		},
		Action: runServe,
	}
}

func runServe(c *cli.Context) error {
	logger := platform.InitLogger()

	config := api.DefaultConfig()
	config.Port = c.Int("port")

	srv := api.NewServer(logger, config)
	if err := srv.StartWithGracefulShutdown(); err != nil {
		platform.LogFatal(logger, "api server failed", err)
	}
	return nil
}
