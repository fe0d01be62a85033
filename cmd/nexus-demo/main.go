package main

import (
	"context"
	"fmt"

	"nexus-pipeline/internal/model"
	"nexus-pipeline/internal/pipeline"
	"nexus-pipeline/internal/processor"
	"nexus-pipeline/internal/stream"
)

// Console walkthrough of the three layers: processors, streams, and managed
// pipelines. Each section runs standalone and prints its results.
func main() {
	ctx := context.Background()

	demoProcessors()
	demoStreams(ctx)
	demoPipelines(ctx)
}

func demoProcessors() {
	fmt.Println("=== DATA PROCESSOR FOUNDATION ===")

	inputs := map[string]any{
		"numeric": []int{1, 2, 3, 4, 5},
		"text":    "Hello Nexus World",
		"log":     "ERROR: Connection timeout",
	}

	for _, p := range processor.All() {
		data := inputs[p.Kind()]
		if err := p.Validate(data); err != nil {
			fmt.Printf("%s validation failed: %v\n", p.Kind(), err)
			continue
		}
		result, err := p.Process(data)
		if err != nil {
			fmt.Printf("%s failed: %v\n", p.Kind(), err)
			continue
		}
		fmt.Printf("%s: %s\n", p.Kind(), result)
	}

	// wrong-kind data is rejected, never silently mangled
	num := &processor.Numeric{}
	if _, err := num.Process("abc"); err != nil {
		fmt.Printf("rejected: %v\n", err)
	}
	fmt.Println()
}

func demoStreams(ctx context.Context) {
	fmt.Println("=== POLYMORPHIC STREAM SYSTEM ===")

	sensor := stream.NewSensor("SENSOR_001", []string{"temp:22.5", "humidity:65", "pressure:1013"})
	trans := stream.NewTransaction("TRANS_001", []string{"buy:100", "sell:150", "buy:75"})

	runner := stream.NewRunner(nil)
	runner.Add(sensor)
	runner.Add(trans)
	runner.Add(stream.NewEvent("EVENT_001", []string{"login", "error", "logout"}))

	for _, summary := range runner.RunAll(ctx) {
		fmt.Printf("%s (%s): %d records, stats=%v\n",
			summary.StreamID, summary.Kind, summary.Records, summary.Stats)
	}

	// each variant filters a batch by its own notion of criteria
	fmt.Printf("temp readings: %v\n", sensor.Filter([]string{"temp:30", "humidity:60", "temp:35"}, "temp"))
	fmt.Printf("buy operations: %v\n", trans.Filter([]string{"buy:100", "sell:150", "buy:75"}, "buy"))
	fmt.Println()
}

func demoPipelines(ctx context.Context) {
	fmt.Println("=== ENTERPRISE PIPELINE SYSTEM ===")

	manager := pipeline.NewManager(pipeline.RetryPolicy{}, nil)

	specs := []model.PipelineSpec{
		{Name: "json", Format: "json", Stages: []string{"validate", "trimStrings", "metadata"},
			Validation: &model.ValidationRules{RequiredFields: []string{"sensor", "value"}}},
		{Name: "csv", Format: "csv", Stages: []string{"normalizeNames", "timestamp"}},
		{Name: "stream", Format: "stream", Stages: []string{"metadata"}},
	}
	for _, spec := range specs {
		p, err := pipeline.FromSpec(spec)
		if err != nil {
			fmt.Printf("bad spec %s: %v\n", spec.Name, err)
			return
		}
		manager.Register(p)
	}

	inputs := map[string][]byte{
		"json":   []byte(`{"sensor": "temp", "value": 23.5}`),
		"csv":    []byte("user,action,count\nada lovelace,login,1\n"),
		"stream": []byte("temp:21\ntemp:23\ntemp:22.3\ntemp:22\ntemp:22.2\n"),
	}

	for _, result := range manager.RunAll(ctx, inputs) {
		if result.Success {
			fmt.Printf("pipeline %s ok: %v\n", result.Pipeline, result.Outputs)
		} else {
			fmt.Printf("pipeline %s failed: %s\n", result.Pipeline, result.Error)
		}
	}

	// chaining: one pipeline's output becomes the next one's input
	chained, err := manager.Chain(ctx, model.GenericRecord{"sensor": "temp", "value": 23.5}, []string{"json", "csv"})
	if err != nil {
		fmt.Printf("chain failed: %v\n", err)
		return
	}
	fmt.Printf("chain result: %v\n", chained)
}
