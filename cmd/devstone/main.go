// Command devstone builds and runs one of the DEVStone benchmark
// families (LI, HI, HO, HOmod) and prints the time spent building the
// model, building the coordinator, and running the simulation to
// completion.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sarchlab/xdevs/devstone"
	"github.com/sarchlab/xdevs/modeling"
	"github.com/sarchlab/xdevs/simulation"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tebeka/atexit"
)

var log = logrus.StandardLogger()

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		log.WithError(err).Error("devstone run failed")
		atexit.Exit(1)
		return
	}
	atexit.Exit(0)
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("DEVSTONE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "devstone <model> <width> <depth>",
		Short: "Build and simulate a DEVStone benchmark model",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = errors.Errorf("kernel panic: %v", r)
				}
			}()
			return run(v, args[0], args[1], args[2])
		},
	}
	cmd.Flags().Float64("delay", 0, "processing delay (time units) applied to HO/HOmod atomics")
	cmd.Flags().String("log-level", "info", "logrus level: panic, fatal, error, warn, info, debug, trace")
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		panic(err)
	}

	return cmd
}

func run(v *viper.Viper, modelArg, widthArg, depthArg string) error {
	level, err := logrus.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return errors.Wrap(err, "log-level")
	}
	log.SetLevel(level)

	width, err := strconv.Atoi(widthArg)
	if err != nil || width < 1 {
		return errors.Errorf("width must be an integer >= 1, got %q", widthArg)
	}
	depth, err := strconv.Atoi(depthArg)
	if err != nil || depth < 1 {
		return errors.Errorf("depth must be an integer >= 1, got %q", depthArg)
	}
	delay := v.GetFloat64("delay")

	build, err := familyBuilder(modelArg)
	if err != nil {
		return err
	}

	modelStart := time.Now()
	probe := devstone.NewProbe()
	model := build(width, depth, delay, probe)
	modelElapsed := time.Since(modelStart)

	coordStart := time.Now()
	coordinator := simulation.NewRootCoordinator(model)
	coordElapsed := time.Since(coordStart)

	simStart := time.Now()
	coordinator.SimulateTime(modeling.PositiveInfinity())
	simElapsed := time.Since(simStart)

	log.WithFields(logrus.Fields{
		"model":     strings.ToUpper(modelArg),
		"width":     width,
		"depth":     depth,
		"delay":     delay,
		"atomics":   probe.NAtomics(),
		"eics":      probe.NEICs(),
		"ics":       probe.NICs(),
		"eocs":      probe.NEOCs(),
		"internals": probe.NInternals(),
		"externals": probe.NExternals(),
		"events":    probe.NEvents(),
	}).Info("simulation complete")

	fmt.Printf("model creation:  %s\n", modelElapsed)
	fmt.Printf("coordinator:     %s\n", coordElapsed)
	fmt.Printf("simulation:      %s\n", simElapsed)

	return nil
}

type familyFunc func(width, depth int, delay float64, probe *devstone.Probe) modeling.Simulator

func familyBuilder(name string) (familyFunc, error) {
	switch strings.ToLower(name) {
	case "li":
		return func(w, d int, _ float64, p *devstone.Probe) modeling.Simulator { return devstone.NewLI(w, d, p) }, nil
	case "hi":
		return func(w, d int, _ float64, p *devstone.Probe) modeling.Simulator { return devstone.NewHI(w, d, p) }, nil
	case "ho":
		return func(w, d int, delay float64, p *devstone.Probe) modeling.Simulator {
			return devstone.NewHOWithDelay(w, d, delay, p)
		}, nil
	case "homod":
		return func(w, d int, delay float64, p *devstone.Probe) modeling.Simulator {
			return devstone.NewHOmodWithDelay(w, d, delay, p)
		}, nil
	default:
		return nil, errors.Errorf("unknown model %q: want one of li, hi, ho, homod", name)
	}
}
