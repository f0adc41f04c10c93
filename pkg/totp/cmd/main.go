package main

import (
	"fmt"
	"log"

	"github.com/segfo/ootp/pkg/totp"
)

func main() {
	cfg, err := totp.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load TOTP config: %v", err)
	}

	gen, err := totp.NewFromConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to build TOTP generator: %v", err)
	}

	code, err := gen.Make()
	if err != nil {
		log.Fatalf("Failed to generate code: %v", err)
	}

	fmt.Printf("Current code (%s, %d digits, %ds period): %s\n",
		cfg.Algorithm, cfg.Digits, cfg.Period, code)
}
