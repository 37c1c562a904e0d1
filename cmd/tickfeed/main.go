package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/moznion/go-optional"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rxtech-lab/tickfeed/internal/logger"
	"github.com/rxtech-lab/tickfeed/internal/version"
	"github.com/rxtech-lab/tickfeed/pkg/tickdata"
	"github.com/rxtech-lab/tickfeed/pkg/tickdata/supplier"
)

// hourFlagLayouts are the accepted formats for the start/end flags.
var hourFlagLayouts = []string{"2006-01-02T15:04", "2006-01-02 15:04", "2006-01-02"}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "instrument",
			Aliases:  []string{"i"},
			Usage:    "Vendor instrument code, e.g. EURGBP",
			Required: true,
		},
		&cli.TimestampFlag{
			Name:     "start",
			Aliases:  []string{"s"},
			Usage:    "Start of the range (UTC, hour aligned), e.g. 2020-03-12T13:00",
			Required: true,
			Config: cli.TimestampConfig{
				Layouts: hourFlagLayouts,
			},
		},
		&cli.TimestampFlag{
			Name:     "end",
			Aliases:  []string{"e"},
			Usage:    "End of the range, exclusive (UTC, hour aligned)",
			Required: true,
			Config: cli.TimestampConfig{
				Layouts: hourFlagLayouts,
			},
		},
		&cli.StringFlag{
			Name:  "base-url",
			Usage: "Override the vendor datafeed root",
			Value: tickdata.DefaultBaseURL,
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Log every hour fetch to stderr",
		},
	}
}

func newClient(cmd *cli.Command, dataSupplier supplier.DataSupplier) (*tickdata.Client, error) {
	level := zapcore.WarnLevel
	if cmd.Bool("verbose") {
		level = zapcore.DebugLevel
	}

	zapLogger, err := logger.New(level)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	client, err := tickdata.NewClient(tickdata.ClientConfig{
		BaseURL:  cmd.String("base-url"),
		Supplier: dataSupplier,
		Logger:   zapLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tick data client: %w", err)
	}

	return client, nil
}

func downloadParams(cmd *cli.Command) tickdata.DownloadParams {
	return tickdata.DownloadParams{
		Instrument: cmd.String("instrument"),
		Start:      cmd.Timestamp("start").UTC(),
		End:        cmd.Timestamp("end").UTC(),
	}
}

// streamAction prints every decoded tick as one JSON line on stdout.
// Failed hours are reported on stderr and streaming continues.
func streamAction(ctx context.Context, cmd *cli.Command) error {
	client, err := newClient(cmd, nil)
	if err != nil {
		return err
	}

	seq, err := client.DownloadTicks(ctx, downloadParams(cmd))
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)

	for tick, err := range seq {
		if err != nil {
			fmt.Fprintf(os.Stderr, "hour skipped: %v\n", err)

			continue
		}

		if err := encoder.Encode(tick); err != nil {
			return fmt.Errorf("failed to encode tick: %w", err)
		}
	}

	return nil
}

// barSupplier decorates a DataSupplier and advances a progress bar once per
// fetched hour file.
type barSupplier struct {
	inner supplier.DataSupplier
	bar   *progressbar.ProgressBar
}

func (s barSupplier) Fetch(ctx context.Context, url string) (optional.Option[[]byte], error) {
	defer func() {
		_ = s.bar.Add(1)
	}()

	return s.inner.Fetch(ctx, url)
}

// countAction fetches the whole range and prints the total tick count,
// showing one progress step per hour file.
func countAction(ctx context.Context, cmd *cli.Command) error {
	params := downloadParams(cmd)
	totalHours := int(params.End.Sub(params.Start) / time.Hour)

	bar := progressbar.NewOptions(totalHours,
		progressbar.OptionSetDescription(fmt.Sprintf("Fetching %s", params.Instrument)),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWriter(os.Stderr),
	)

	httpSupplier := supplier.NewHTTPSupplier(nil, zap.NewNop())

	client, err := newClient(cmd, barSupplier{inner: httpSupplier, bar: bar})
	if err != nil {
		return err
	}

	seq, err := client.DownloadTicks(ctx, params)
	if err != nil {
		return err
	}

	ticks := 0
	failedHours := 0

	for _, err := range seq {
		if err != nil {
			failedHours++
			fmt.Fprintf(os.Stderr, "\nhour skipped: %v\n", err)

			continue
		}

		ticks++
	}

	_ = bar.Finish()
	fmt.Printf("\n%d ticks in %d hours (%d failed)\n", ticks, totalHours, failedHours)

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:    "tickfeed",
		Usage:   "Fetch and decode Dukascopy historical tick data",
		Version: version.GetVersion(),
		Commands: []*cli.Command{
			{
				Name:   "stream",
				Usage:  "Print decoded ticks as JSON lines on stdout",
				Flags:  commonFlags(),
				Action: streamAction,
			},
			{
				Name:   "count",
				Usage:  "Count the ticks in a range with per-hour progress",
				Flags:  commonFlags(),
				Action: countAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
