package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/goliatone/go-fieldval/pkg/formfile"
	"github.com/goliatone/go-fieldval/pkg/value"
)

func main() {
	formPath := flag.String("form", "form.yaml", "form declaration file (YAML or JSON)")
	inputPath := flag.String("input", "", "payload file (stdin if empty)")
	flag.Parse()

	form, err := formfile.Load(*formPath)
	if err != nil {
		log.Fatalf("Failed to load form: %v", err)
	}
	fieldset, err := form.Fieldset()
	if err != nil {
		log.Fatalf("Invalid form declaration: %v", err)
	}

	payload, err := readPayload(*inputPath)
	if err != nil {
		log.Fatalf("Failed to read payload: %v", err)
	}
	submitted, err := value.FromJSON(payload)
	if err != nil {
		log.Fatalf("Failed to decode payload: %v", err)
	}

	results := fieldset.Validate(submitted)
	if !results.OK() {
		for _, res := range results {
			for _, msg := range res.Result.Messages() {
				fmt.Fprintf(os.Stderr, "%s: %s\n", res.Name, msg)
			}
		}
		os.Exit(1)
	}

	validated, err := json.MarshalIndent(value.Object(results.Values()), "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode validated payload: %v", err)
	}
	fmt.Println(string(validated))
}

func readPayload(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
