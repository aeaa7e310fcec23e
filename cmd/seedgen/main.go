// Command seedgen regenerates data/fortune100.json from a public Fortune 500
// JSON dataset. It runs offline; on any failure it exits without touching the
// existing seed file.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"net/http"
	"os"
	"time"

	"fortune-dashboard/loader"
	"fortune-dashboard/models"

	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"
)

const defaultSource = "https://raw.githubusercontent.com/sharmadhiraj/free-json-datasets/main/fortune500/fortune500-2024.json"

func main() {
	source := flag.String("source", defaultSource, "URL of the Fortune 500 JSON list")
	out := flag.String("out", "data/fortune100.json", "seed file to write")
	limit := flag.Int("limit", loader.MaxSeeds, "number of companies to keep")
	timeout := flag.Duration("timeout", 30*time.Second, "fetch timeout")
	flag.Parse()

	logs.Infof("fetching Fortune 500 list from %s", *source)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	seeds, err := generate(ctx, http.DefaultClient, *source, *limit)
	if err != nil {
		logs.Errorf("generate seeds, err: %+v", err)
		os.Exit(1)
	}

	if err := loader.WriteSeedFile(*out, seeds); err != nil {
		logs.Errorf("write seeds, err: %+v", err)
		os.Exit(1)
	}
	logs.Infof("wrote %d companies to %s", len(seeds), *out)
}

func generate(ctx context.Context, client *http.Client, source string, limit int) ([]models.Seed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetch list")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("fetch list: unexpected status %s", resp.Status)
	}

	var records []loader.FortuneRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, errors.Wrap(err, "decode list")
	}
	if len(records) == 0 {
		return nil, errors.New("source list is empty")
	}

	seeds := loader.TransformFortune(records, limit)
	unknown := 0
	for _, s := range seeds {
		if s.Ticker == loader.UnknownTicker {
			unknown++
		}
	}
	if unknown > 0 {
		logs.Infof("%d companies have no ticker and were set to %s", unknown, loader.UnknownTicker)
	}
	return seeds, nil
}
