// Command checkenv runs the same validation pass as the server, without
// starting anything. Build pipelines call it before producing an artifact so
// a broken environment fails the build instead of the deploy.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/beaconlabs/beacon/internal/config"
	platform "github.com/beaconlabs/beacon/internal/platform/config"
	"github.com/beaconlabs/beacon/internal/platform/version"
)

func main() {
	showVersion := flag.Bool("version", false, "print build information and exit")
	quiet := flag.Bool("quiet", false, "suppress the resolved variable listing")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Get())
		return
	}

	variant, _ := platform.CurrentVariant(platform.OS())

	cfg, err := config.Load()
	if err != nil {
		var verrs platform.ValidationErrors
		if errors.As(err, &verrs) {
			fmt.Fprint(os.Stderr, verrs.Report(variant))
		} else {
			fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("environment OK for variant %q (%d variables resolved)\n",
		cfg.Variant, len(config.Keys()))

	if *quiet {
		return
	}

	redacted := cfg.Redacted()
	names := make([]string, 0, len(redacted))
	for name := range redacted {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s=%s\n", name, redacted[name])
	}
}
