package runner

import (
	"os"
	"path/filepath"

	"github.com/logrusorgru/aurora/v4"
	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/formatter"
	"github.com/projectdiscovery/gologger/levels"
	envutil "github.com/projectdiscovery/utils/env"
	fileutil "github.com/projectdiscovery/utils/file"

	"github.com/raeveira/netscan/pkg/version"
)

var au *aurora.Aurora

var (
	// HomeDir is resolved once; everything under ~/.config/netscan hangs off it.
	HomeDir = func() string {
		home, err := os.UserHomeDir()
		if err != nil {
			gologger.Fatal().Msgf("Failed to get user home directory: %s", err)
		}
		return home
	}()

	DefaultConfigLocation = filepath.Join(HomeDir, ".config/netscan/config.yaml")
	DefaultOUILocation    = filepath.Join(HomeDir, ".config/netscan/oui.txt")

	defaultProbeTimeout = envutil.GetEnvOrDefault("NETSCAN_PROBE_TIMEOUT", 100)
)

// Options contains the configuration options for tuning a scan.
type Options struct {
	ConfigFile string
	Interface  string
	OUIFile    string

	ProbeTimeoutMs int
	NoProbe        bool

	JSON    bool
	NoColor bool
	Verbose bool
	Silent  bool
	Version bool
}

// ParseOptions parses the command line flags provided by a user
func ParseOptions() *Options {
	options := &Options{}
	flagSet := goflags.NewFlagSet()

	flagSet.SetDescription(`netscan discovers live hosts on the local network and enriches them with vendor and device names`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&options.Interface, "interface", "i", "", "scan only the named network interface (default all IPv4 interfaces)"),
		flagSet.StringVar(&options.ConfigFile, "config", DefaultConfigLocation, "cli flag configuration file"),
	)

	flagSet.CreateGroup("probe", "Probe",
		flagSet.IntVarP(&options.ProbeTimeoutMs, "probe-timeout", "pt", defaultProbeTimeout, "per-probe timeout in milliseconds"),
		flagSet.BoolVarP(&options.NoProbe, "no-probe", "np", false, "skip the probe sweep and read the neighbor cache as-is"),
	)

	flagSet.CreateGroup("resolve", "Resolve",
		flagSet.StringVarP(&options.OUIFile, "oui-file", "of", DefaultOUILocation, "OUI database used for vendor lookups"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&options.JSON, "json", "j", false, "write devices as json instead of a table"),
		flagSet.BoolVarP(&options.NoColor, "no-color", "nc", false, "disable output content coloring (ANSI escape codes)"),
		flagSet.BoolVarP(&options.Verbose, "verbose", "v", false, "show verbose output"),
		flagSet.BoolVar(&options.Silent, "silent", false, "show only the device list"),
	)

	flagSet.CreateGroup("debug", "Debug",
		flagSet.BoolVar(&options.Version, "version", false, "show version of the project"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("%s\n", err)
	}

	// configure aurora for logging
	au = aurora.New(aurora.WithColors(true))

	options.configureOutput()

	showBanner()

	if options.Version {
		gologger.Info().Msgf("Current Version: %s\n", version.Version)
		os.Exit(0)
	}

	if options.ConfigFile != DefaultConfigLocation {
		if err := options.loadConfigFrom(options.ConfigFile); err != nil {
			gologger.Warning().Msgf("Could not load config file %s: %s\n", options.ConfigFile, err)
		}
	}

	if options.ProbeTimeoutMs <= 0 {
		options.ProbeTimeoutMs = defaultProbeTimeout
	}

	return options
}

// configureOutput configures the output on the screen
func (options *Options) configureOutput() {
	// If the user desires verbose output, show verbose output
	if options.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	if options.NoColor {
		gologger.DefaultLogger.SetFormatter(formatter.NewCLI(true))
		au = aurora.New(aurora.WithColors(false))
	}
	if options.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	}
}

func (options *Options) loadConfigFrom(location string) error {
	data, err := os.ReadFile(location)
	if err != nil {
		return err
	}
	return fileutil.Unmarshal(fileutil.YAML, data, options)
}
