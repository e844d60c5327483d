package runner

import (
	"context"
	"encoding/json"
	"time"

	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"
	"github.com/rs/xid"

	"github.com/raeveira/netscan/pkg/discovery"
	"github.com/raeveira/netscan/pkg/naming"
	"github.com/raeveira/netscan/pkg/neighbor"
	"github.com/raeveira/netscan/pkg/oui"
	"github.com/raeveira/netscan/pkg/probe"
)

// settleDelay gives the kernel time to finish learning hardware addresses
// after the probe sweep and before the neighbor cache is read.
const settleDelay = time.Second

// Runner contains the internal logic of the program
type Runner struct {
	options *Options
	scanID  string
}

// NewRunner instance
func NewRunner(options *Options) (*Runner, error) {
	return &Runner{options: options, scanID: xid.New().String()}, nil
}

// Run the instance
func (r *Runner) Run() error {
	ctx := context.Background()

	vendors := oui.Load(r.options.OUIFile)
	if len(vendors) == 0 {
		gologger.Warning().Msgf("No OUI database at %s, vendors will be reported as %s", r.options.OUIFile, oui.Unknown)
	} else {
		gologger.Verbose().Msgf("Loaded %d OUI records from %s", len(vendors), r.options.OUIFile)
	}

	prober := probe.New(time.Duration(r.options.ProbeTimeoutMs) * time.Millisecond)
	defer prober.Close()

	scanner := discovery.New(discovery.Options{
		Interface:   r.options.Interface,
		Probe:       !r.options.NoProbe,
		SettleDelay: settleDelay,
	}, vendors, naming.Default(), neighbor.NewCacheReader(), prober)

	gologger.Info().Msgf("Starting scan %s", r.scanID)
	devices, err := scanner.Scan(ctx)
	if err != nil {
		return errorutil.NewWithErr(err).Msgf("scan %s failed", r.scanID)
	}

	if len(devices) == 0 {
		gologger.Info().Msgf("Scan %s finished: no devices discovered", r.scanID)
		return nil
	}

	if r.options.JSON {
		if err := r.writeJSON(devices); err != nil {
			return err
		}
	} else {
		r.writeTable(devices)
	}

	gologger.Info().Msgf("Scan %s finished: %s devices discovered", r.scanID, au.Cyan(len(devices)))
	return nil
}

func (r *Runner) writeJSON(devices []discovery.Device) error {
	data, err := json.MarshalIndent(devices, "", "  ")
	if err != nil {
		return errorutil.NewWithErr(err).Msgf("failed to marshal devices")
	}
	gologger.Silent().Msgf("%s", data)
	return nil
}

func (r *Runner) writeTable(devices []discovery.Device) {
	gologger.Silent().Msgf("%-16s %-18s %-10s %-28s %s", "IP", "MAC", "INTERFACE", "VENDOR", "NAME")
	for _, device := range devices {
		gologger.Silent().Msgf("%-16s %-18s %-10s %-28s %s",
			device.IP, device.MAC, device.Interface, device.Vendor, device.Name)
	}
}
