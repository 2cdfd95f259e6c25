// cmd/uixgen generates normalized UI layout trees from resource definitions.
//
// It reads CUE resource schemas and HCL layout declarations, merges every
// declared fragment per resource and kind, fills missing kinds from their
// declared counterparts, synthesizes defaults for whatever is still absent,
// and writes one JSON tree per (resource, kind) plus a preload plan:
//
//	gen/
//	  product.index.json
//	  product.form.json
//	  product.show.json
//	  preloads.json
//
// Paths come from uix.toml next to the working directory, overridable per
// flag.
package main

import (
	"flag"
	"log"

	"github.com/wadvanced/aurora-uix/internal/config"
	"github.com/wadvanced/aurora-uix/internal/gen"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("uixgen: ")

	configPath := flag.String("config", "uix.toml", "project configuration file")
	outDir := flag.String("out", "", "output directory (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *outDir != "" {
		cfg.OutDir = *outDir
	}

	result, err := gen.Run(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := result.Write(cfg.OutDir); err != nil {
		log.Fatal(err)
	}

	kinds := 0
	for _, trees := range result.Trees {
		kinds += len(trees)
	}
	log.Printf("wrote %d layouts for %d resources to %s", kinds, len(result.Trees), cfg.OutDir)
}
