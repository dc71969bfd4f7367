package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-conf-resolver/environ"
	"github.com/MKhiriev/go-conf-resolver/internal/logger"
	"github.com/MKhiriev/go-conf-resolver/options"
	"github.com/MKhiriev/go-conf-resolver/resolver"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// processEnv holds the binary's own process settings, loaded from the
// environment. The config file path lives outside the catalog: it selects a
// source, it is not a resolved setting itself.
type processEnv struct {
	ConfigPath string `env:"CONFRESOLVE_CONFIG" envDefault:"resolve.conf"`
}

// catalog is the demo option set resolved by this binary.
var catalog = options.Catalog{
	options.New("n", "name", "Server display name", "resolve", true),
	options.New("p", "port", "TCP port to listen on", "8080", true),
	options.New("v", "verbose", "Verbosity level", "0", true),
	options.New("h", "help", "Show this help message", "", false),
}

func main() {
	printBuildInfo()

	log := logger.NewLogger("resolve")

	var pe processEnv
	if err := environ.Parse(&pe); err != nil {
		log.Fatal().Err(err).Msg("error getting env configs")
	}

	settings, err := resolver.NewBuilder(catalog).
		WithConfigFile(pe.ConfigPath).
		WithArgs(os.Args[1:]).
		Build()
	if err != nil {
		var help *resolver.HelpRequestedError
		if errors.As(err, &help) {
			fmt.Print(help.Usage)
			return
		}
		log.Fatal().Err(err).Msg("error resolving settings")
	}

	log.Debug().Str("config", pe.ConfigPath).Msg("resolved settings")

	for _, d := range catalog {
		fmt.Printf("%s=%s\n", d.LongFlag(), settings[d])
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
