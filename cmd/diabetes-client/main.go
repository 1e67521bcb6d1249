// Command diabetes-client sends a feature vector to the prediction service.
//
//	diabetes-client -report lab.txt
//	diabetes-client -Pregnancies 2 -Glucose 130 -BloodPressure 70 ... -Age 41
//	diabetes-client -Age 41 jan.txt feb.txt mar.txt
//
// Values given as flags override values read from the report. Reports passed
// as arguments are predicted concurrently and printed as a list in argument
// order.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/saqibullah/diabetes-predictor/client"
	"github.com/saqibullah/diabetes-predictor/predictor"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "diabetes-client: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := client.ConfigFromEnv()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("diabetes-client", flag.ContinueOnError)
	baseURL := fs.String("url", cfg.BaseURL, "prediction service base URL")
	timeout := fs.Duration("timeout", cfg.Timeout, "request timeout")
	reportPath := fs.String("report", "", "lab report text file to extract values from")
	featureFlags := make(map[string]*float64, predictor.FeatureCount)
	for _, name := range predictor.FeatureNames() {
		featureFlags[name] = fs.Float64(name, 0, name+" value")
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	overrides := make(map[string]float64, predictor.FeatureCount)
	fs.Visit(func(f *flag.Flag) {
		if p, ok := featureFlags[f.Name]; ok {
			overrides[f.Name] = *p
		}
	})

	batch := fs.NArg() > 0
	reports := fs.Args()
	if *reportPath != "" {
		reports = append([]string{*reportPath}, reports...)
	}
	if len(reports) == 0 {
		reports = []string{""}
	}

	vecs := make([]predictor.Vector, 0, len(reports))
	for _, path := range reports {
		vec, err := buildVector(path, overrides)
		if err != nil {
			if path != "" {
				return fmt.Errorf("%s: %w", path, err)
			}
			return err
		}
		vecs = append(vecs, vec)
	}

	cfg.BaseURL = *baseURL
	cfg.Timeout = *timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	results, err := client.New(cfg).PredictBatch(ctx, vecs)
	if err != nil {
		return err
	}

	var output interface{} = results[0]
	if batch {
		output = results
	}
	out, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// buildVector reads the report at path, if any, and applies the flag overrides.
func buildVector(path string, overrides map[string]float64) (predictor.Vector, error) {
	values := make(map[string]float64, predictor.FeatureCount)
	if path != "" {
		text, err := os.ReadFile(path)
		if err != nil {
			return predictor.Vector{}, fmt.Errorf("read report: %w", err)
		}
		for k, v := range client.ParseReport(string(text)) {
			values[k] = v
		}
	}
	for k, v := range overrides {
		values[k] = v
	}
	return predictor.FromMap(values)
}
