// Package main provides the mininn CLI.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"k8s.io/klog/v2"

	"github.com/mininn-ml/mininn/engine"
	"github.com/mininn-ml/mininn/loader"
	"github.com/mininn-ml/mininn/tensor"
)

const version = "v0.1.0-dev"

func usage() {
	fmt.Println("mininn - minimal neural-network inference runtime")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version                      Show version")
	fmt.Println("  info <model.minn>            Show model structure")
	fmt.Println("  predict <model.minn> <x,..>  Run inference on a comma-separated input")
}

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	args := flag.Args()

	if len(args) == 0 {
		usage()
		return
	}

	var err error
	switch args[0] {
	case "version":
		fmt.Printf("mininn %s\n", version)
	case "info":
		err = runInfo(args[1:])
	case "predict":
		err = runPredict(args[1:])
	default:
		usage()
		err = fmt.Errorf("unknown command: %s", args[0])
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runInfo(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: mininn info <model.minn>")
	}
	path := args[0]

	if !engine.IsValidModelFile(path) {
		return fmt.Errorf("%s is not a valid model file", path)
	}

	model, err := loader.Load(path)
	if err != nil {
		return err
	}

	fmt.Printf("model: %s\n", path)
	fmt.Printf("input shape:  %s\n", model.InputShape())
	fmt.Printf("output shape: %s\n", model.OutputShape())
	fmt.Printf("layers: %d\n", model.NumLayers())
	for i, layer := range model.Layers() {
		fmt.Printf("  %d: %s\n", i, layer.Type())
	}
	return nil
}

func runPredict(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: mininn predict <model.minn> <comma-separated floats>")
	}

	eng, err := engine.NewFromFile(args[0])
	if err != nil {
		return err
	}

	values, err := parseFloats(args[1])
	if err != nil {
		return err
	}
	input, err := tensor.FromSlice(values, eng.InputShape())
	if err != nil {
		return err
	}

	eng.EnableProfiling(true)
	output, err := eng.Predict(input)
	if err != nil {
		return err
	}

	fmt.Printf("output: %v\n", output.Data())
	if output.Rank() == 1 {
		best, err := engine.ArgMax(output)
		if err != nil {
			return err
		}
		fmt.Printf("argmax: %d\n", best)
	}
	fmt.Printf("stats: %s\n", eng.LastStats())
	return nil
}

func parseFloats(s string) ([]float32, error) {
	parts := strings.Split(s, ",")
	values := make([]float32, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return nil, fmt.Errorf("invalid input value %q: %w", p, err)
		}
		values = append(values, float32(v))
	}
	return values, nil
}
