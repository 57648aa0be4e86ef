/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/artracfd/gocfd/internal/caseinput"
	"github.com/artracfd/gocfd/internal/characteristic"
	"github.com/artracfd/gocfd/internal/ensight"
	"github.com/artracfd/gocfd/internal/ibm"
	"github.com/artracfd/gocfd/internal/logging"
	"github.com/artracfd/gocfd/internal/restart"
	"github.com/artracfd/gocfd/internal/solver"
	"github.com/artracfd/gocfd/internal/thermo"
)

var (
	cpuProfile  bool
	memProfile  bool
	outputDir   string
	restartDir  string
	workerCount int
)

// solveCmd represents the solve command: run a full time-accurate solve
// from a case file, writing EnSight output and a restart checkpoint.
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Run a time-accurate solve from a case file",
	Long:  `Solve advances the compressible flow equations from the initial condition in the case file to its final time or step cap, writing EnSight output as it goes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cpuProfile {
			defer profile.Start(profile.CPUProfile).Stop()
		}
		if memProfile {
			defer profile.Start(profile.MemProfile).Stop()
		}
		return runSolve()
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().BoolVar(&cpuProfile, "cpuprofile", false, "write a CPU profile for the solve loop")
	solveCmd.Flags().BoolVar(&memProfile, "memprofile", false, "write a memory profile for the solve loop")
	solveCmd.Flags().StringVar(&outputDir, "outputDir", "./output", "directory to write EnSight output into")
	solveCmd.Flags().StringVar(&restartDir, "restartDir", "./restart", "directory to write the final restart checkpoint into")
	solveCmd.Flags().IntVar(&workerCount, "workers", 0, "goroutine worker count for flux sweeps (0 = NumCPU)")
}

func runSolve() error {
	cf, err := loadCase()
	if err != nil {
		return err
	}
	resolved, part, bodies, err := caseinput.Build(cf)
	if err != nil {
		return err
	}

	logger := logging.Default()
	cfg := solver.Config{
		CFL:       cf.CFL,
		TotalTime: resolved.TotalTime,
		TotalStep: resolved.TotalStep,
		Averager:  characteristic.Roe,
		Splitter:  characteristic.StegerWarming,
		Workers:   workerCount,
	}
	d := solver.New(resolved.Space, resolved.Model, part, bodies, cfg, logger)

	ic := resolved.Model.ToConservative(thermo.Primitive{Rho: cf.ICRho, U: cf.ICU, V: cf.ICV, W: cf.ICW, P: cf.ICP})
	cur := d.Field.Cur()
	for o := 0; o < len(cur); o += len(ic) {
		copy(cur[o:], ic[:])
	}

	exporter, err := ensight.New(outputDir)
	if err != nil {
		return err
	}

	outputEvery := 1
	if cf.OutputCount > 0 && resolved.TotalStep > cf.OutputCount {
		outputEvery = resolved.TotalStep / cf.OutputCount
	}

	logger.Initialization(cfg.TotalTime, cfg.TotalStep, cfg.CFL)
	for d.Time < cfg.TotalTime && d.StepCount < cfg.TotalStep {
		dt, err := d.Step()
		if err != nil {
			return err
		}
		logger.Step(d.StepCount, d.Time, dt)
		if d.StepCount%outputEvery == 0 {
			if err := exporter.Write(d.Space, d.Field.Cur(), d.Model, d.Partition, d.StepCount, d.Time); err != nil {
				return err
			}
		}
	}

	spheres := make([]ibm.Sphere, 0, len(d.Bodies))
	for _, b := range d.Bodies {
		if s, ok := b.(ibm.Sphere); ok {
			spheres = append(spheres, s)
		}
	}
	st := restart.State{Step: d.StepCount, Time: d.Time, Bodies: spheres, Buf: d.Field.Cur()}
	if err := restart.Write(restartDir, "final", st); err != nil {
		return err
	}

	logger.Info("solve complete: %d steps, t=%10.5f", d.StepCount, d.Time)
	return nil
}
