package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/OldStager01/diabetes-risk/internal/logger"
	"github.com/OldStager01/diabetes-risk/internal/model"
	"github.com/OldStager01/diabetes-risk/internal/predictor"
	"github.com/OldStager01/diabetes-risk/pkg/config"
	"github.com/OldStager01/diabetes-risk/pkg/models"
)

// flagFields maps command-line flags to form field names.
var flagFields = map[string]string{
	"age":            models.FieldAge,
	"glucose":        models.FieldGlucose,
	"blood-pressure": models.FieldBloodPressure,
	"insulin":        models.FieldInsulin,
	"bmi":            models.FieldBMI,
	"skin-thickness": models.FieldSkinThickness,
	"dpf":            models.FieldDiabetesPedigreeFunction,
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("predict", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to config file")
	asJSON := fs.Bool("json", false, "print the result as JSON")
	logLevel := fs.String("log-level", "warn", "log level")
	for name, field := range flagFields {
		fs.String(name, "", field)
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger.Setup(*logLevel, "development")
	logger.SetOutput(os.Stderr)

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	artifacts, err := model.LoadFromConfig(cfg.Artifacts)
	if err != nil {
		return fmt.Errorf("failed to load artifacts: %w", err)
	}

	values := make(map[string]string)
	fs.Visit(func(f *flag.Flag) {
		if field, ok := flagFields[f.Name]; ok {
			values[field] = f.Value.String()
		}
	})

	input, err := predictor.ParseForm(func(name string) (string, bool) {
		v, ok := values[name]
		return v, ok
	})
	if err != nil {
		return err
	}

	svc := predictor.NewService(artifacts, predictor.Options{
		IncludeConfidence: cfg.Features.IncludeConfidence,
	})
	result, err := svc.Predict(context.Background(), input)
	if err != nil {
		return err
	}

	if *asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Fprintf(out, "The model's prediction %s diabetes.\n", result.Phrase)
	if result.HasConfidence() {
		fmt.Fprintf(out, "Confidence: %.1f%%\n", *result.Confidence)
	}
	return nil
}
