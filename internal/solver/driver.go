// Package solver drives the explicit time integration: CFL-limited step
// size, boundary application, body kinematics, ghost-cell reclassification,
// flux-divergence assembly and the two-buffer swap. Grounded on
// model_problems/Euler2D/euler.go's Solve loop (PrintInitialization/
// PrintUpdate/PrintFinal, CheckIfFinished) and parallelism.go/indexing.go's
// K-range split for the worker fan-out.
package solver

import (
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/artracfd/gocfd/internal/cfderrors"
	"github.com/artracfd/gocfd/internal/characteristic"
	"github.com/artracfd/gocfd/internal/field"
	"github.com/artracfd/gocfd/internal/flux"
	"github.com/artracfd/gocfd/internal/geom"
	"github.com/artracfd/gocfd/internal/ibm"
	"github.com/artracfd/gocfd/internal/logging"
	"github.com/artracfd/gocfd/internal/partition"
	"github.com/artracfd/gocfd/internal/thermo"
)

// Config bundles a solve's fixed numerical controls.
type Config struct {
	CFL       float64
	TotalTime float64
	TotalStep int
	Averager  characteristic.Averager
	Splitter  characteristic.Splitter
	Workers   int // 0 -> runtime.NumCPU()
}

// Driver owns the grid, field, partition and bodies for one solve and
// advances them in time.
type Driver struct {
	Space     *field.Space
	Model     thermo.Model
	Partition *partition.Partition
	Bodies    []ibm.Body
	Field     *field.Field
	Box12     ibm.Bounds
	Config    Config
	Logger    *logging.Logger

	Time      float64
	StepCount int
}

// New builds a Driver and runs the classifier's first full pass.
func New(sp *field.Space, model thermo.Model, part *partition.Partition, bodies []ibm.Body, cfg Config, logger *logging.Logger) *Driver {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	box := ibm.Bounds{
		KMin: part.Boxes[12].KSub, KMax: part.Boxes[12].KSup,
		JMin: part.Boxes[12].JSub, JMax: part.Boxes[12].JSup,
		IMin: part.Boxes[12].ISub, IMax: part.Boxes[12].ISup,
	}
	d := &Driver{
		Space:     sp,
		Model:     model,
		Partition: part,
		Bodies:    bodies,
		Field:     field.NewField(sp.NMax),
		Box12:     box,
		Config:    cfg,
		Logger:    logger,
	}
	ibm.Classify(sp, bodies, box)
	return d
}

// Run advances the driver until either TotalTime or TotalStep is reached,
// logging progress through Logger if set. Grounded on euler.go's Solve.
func (d *Driver) Run() error {
	if d.Logger != nil {
		d.Logger.Initialization(d.Config.TotalTime, d.Config.TotalStep, d.Config.CFL)
	}
	start := time.Now()
	for d.Time < d.Config.TotalTime && d.StepCount < d.Config.TotalStep {
		dt, err := d.Step()
		if err != nil {
			return err
		}
		if d.Logger != nil {
			d.Logger.Step(d.StepCount, d.Time, dt)
		}
	}
	if d.Logger != nil {
		d.Logger.Final(time.Since(start), d.StepCount, d.Space.NMax)
	}
	return nil
}

// Step advances the solution by one CFL-limited time step and returns the
// step size taken.
func (d *Driver) Step() (float64, error) {
	sp := d.Space
	cur := d.Field.Cur()
	next := d.Field.Next()
	copy(next, cur)

	dt, err := d.cflTimeStep(cur)
	if err != nil {
		return 0, err
	}
	if d.Config.TotalTime > 0 && d.Time+dt > d.Config.TotalTime {
		dt = d.Config.TotalTime - d.Time
	}

	if d.anyBodyMoving() {
		d.advanceBodies(dt)
		ibm.Classify(sp, d.Bodies, d.Box12)
	}

	if err := partition.Apply(sp, cur, d.Model, d.Partition); err != nil {
		return 0, err
	}

	if err := d.computeRHS(cur, next, dt); err != nil {
		return 0, err
	}
	if err := d.scanForDivergence(next); err != nil {
		return 0, err
	}

	d.Field.Swap()
	d.Time += dt
	d.StepCount++
	return dt, nil
}

// anyBodyMoving reports whether any body has nonzero linear velocity.
func (d *Driver) anyBodyMoving() bool {
	for _, b := range d.Bodies {
		if mb, ok := b.(ibm.Kinematic); ok && mb.Velocity() != (geom.Vec3{}) {
			return true
		}
	}
	return false
}

// advanceBodies moves every Kinematic body's center by forward Euler.
func (d *Driver) advanceBodies(dt float64) {
	for idx, b := range d.Bodies {
		mb, ok := b.(ibm.Kinematic)
		if !ok {
			continue
		}
		v := mb.Velocity()
		if v == (geom.Vec3{}) {
			continue
		}
		d.Bodies[idx] = mb.Translate(geom.Vec3{v[0] * dt, v[1] * dt, v[2] * dt})
	}
}

// cflTimeStep returns the largest step size satisfying the CFL condition
// over every fluid node in Box12, the multi-direction analogue of a 1D
// CFL=dx/(|u|+c).
func (d *Driver) cflTimeStep(cur []float64) (float64, error) {
	sp := d.Space
	box := d.Box12
	minDt := math.MaxFloat64
	for k := box.KMin; k < box.KMax; k++ {
		for j := box.JMin; j < box.JMax; j++ {
			for i := box.IMin; i < box.IMax; i++ {
				idx := sp.Index(k, j, i)
				if sp.Flag[idx] != field.FlagFluid {
					continue
				}
				prim, err := d.Model.ToPrimitive(field.At(cur, idx))
				if err != nil {
					return 0, nonPhysicalAt(err, k, j, i, d.StepCount)
				}
				c := math.Sqrt(d.Model.Gamma * prim.P / prim.Rho)
				speedSum := (math.Abs(prim.U)+c)*sp.DDX + (math.Abs(prim.V)+c)*sp.DDY + (math.Abs(prim.W)+c)*sp.DDZ
				if speedSum <= 0 {
					continue
				}
				if dt := d.Config.CFL / speedSum; dt < minDt {
					minDt = dt
				}
			}
		}
	}
	if minDt == math.MaxFloat64 {
		return 0, cfderrors.NonPhysicalState{Reason: "no fluid node with positive wave speed in Box12"}
	}
	return minDt, nil
}

// scanForDivergence reports cfderrors.NumericalDivergence if any fluid
// node's conservative state holds a NaN or Inf component after a step, the
// fatal check spec.md 7 names separately from the per-node non-physical
// (rho<=0/p<=0) state thermo.Model.ToPrimitive already catches.
func (d *Driver) scanForDivergence(buf []float64) error {
	sp := d.Space
	box := d.Box12
	for k := box.KMin; k < box.KMax; k++ {
		for j := box.JMin; j < box.JMax; j++ {
			for i := box.IMin; i < box.IMax; i++ {
				idx := sp.Index(k, j, i)
				if sp.Flag[idx] != field.FlagFluid {
					continue
				}
				u := field.At(buf, idx)
				for _, c := range u {
					if math.IsNaN(c) || math.IsInf(c, 0) {
						return cfderrors.NumericalDivergence{Step: d.StepCount}
					}
				}
			}
		}
	}
	return nil
}

// computeRHS fills next with cur[idx] + dt*dU/dt for every fluid node in
// Box12, splitting the work across Config.Workers goroutines by K-range
// (parallelism.go's split1D/GetKSplitRange pattern), each goroutine writing
// only to the output range it owns so the read-only Cur/write-only Next
// separation never aliases.
func (d *Driver) computeRHS(cur, next []float64, dt float64) error {
	box := d.Box12
	kCount := box.KMax - box.KMin
	workers := d.Config.Workers
	if workers > kCount {
		workers = 1
	}
	if workers < 1 {
		workers = 1
	}

	errs := make([]error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		kStart, kEnd := splitRange(kCount, workers, w)
		wg.Add(1)
		go func(w, kStart, kEnd int) {
			defer wg.Done()
			errs[w] = d.computeRHSRange(cur, next, dt, box.KMin+kStart, box.KMin+kEnd)
		}(w, kStart, kEnd)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// splitRange divides [0,total) into n pieces with at most a one-item
// imbalance, mirroring indexing.go's split1D.
func splitRange(total, n, part int) (start, end int) {
	base := total / n
	remainder := total % n
	var startAdd, endAdd int
	if remainder != 0 {
		if part+1 > remainder {
			startAdd = remainder
		} else {
			startAdd = part
			endAdd = 1
		}
	}
	start = part*base + startAdd
	end = start + base + endAdd
	return start, end
}

func (d *Driver) computeRHSRange(cur, next []float64, dt float64, kMin, kMax int) error {
	sp := d.Space
	box := d.Box12
	gamma := d.Model.Gamma
	av, sp2 := d.Config.Averager, d.Config.Splitter

	for k := kMin; k < kMax; k++ {
		for j := box.JMin; j < box.JMax; j++ {
			for i := box.IMin; i < box.IMax; i++ {
				idx := sp.Index(k, j, i)
				if sp.Flag[idx] != field.FlagFluid {
					continue
				}
				uC := field.At(cur, idx)
				if _, err := d.Model.ToPrimitive(uC); err != nil {
					return nonPhysicalAt(err, k, j, i, d.StepCount)
				}

				uXW := field.At(cur, sp.Index(k, j, i-1))
				uXE := field.At(cur, sp.Index(k, j, i+1))
				uYS := field.At(cur, sp.Index(k, j-1, i))
				uYN := field.At(cur, sp.Index(k, j+1, i))
				uZF := field.At(cur, sp.Index(k-1, j, i))
				uZB := field.At(cur, sp.Index(k+1, j, i))

				fxE := flux.Reconstruct(geom.X, av, sp2, gamma, uC, uXE)
				fxW := flux.Reconstruct(geom.X, av, sp2, gamma, uXW, uC)
				fyN := flux.Reconstruct(geom.Y, av, sp2, gamma, uC, uYN)
				fyS := flux.Reconstruct(geom.Y, av, sp2, gamma, uYS, uC)
				fzB := flux.Reconstruct(geom.Z, av, sp2, gamma, uC, uZB)
				fzF := flux.Reconstruct(geom.Z, av, sp2, gamma, uZF, uC)

				vxE, err := flux.Viscous(sp, d.Model, cur, geom.X, k, j, i)
				if err != nil {
					return err
				}
				vxW, err := flux.Viscous(sp, d.Model, cur, geom.X, k, j, i-1)
				if err != nil {
					return err
				}
				vyN, err := flux.Viscous(sp, d.Model, cur, geom.Y, k, j, i)
				if err != nil {
					return err
				}
				vyS, err := flux.Viscous(sp, d.Model, cur, geom.Y, k, j-1, i)
				if err != nil {
					return err
				}
				vzB, err := flux.Viscous(sp, d.Model, cur, geom.Z, k, j, i)
				if err != nil {
					return err
				}
				vzF, err := flux.Viscous(sp, d.Model, cur, geom.Z, k-1, j, i)
				if err != nil {
					return err
				}

				var updated [field.DimU]float64
				for c := 0; c < field.DimU; c++ {
					conv := (fxE[c]-fxW[c])*sp.DDX + (fyN[c]-fyS[c])*sp.DDY + (fzB[c]-fzF[c])*sp.DDZ
					visc := (vxE[c]-vxW[c])*sp.DDX + (vyN[c]-vyS[c])*sp.DDY + (vzB[c]-vzF[c])*sp.DDZ
					updated[c] = uC[c] + dt*(visc-conv)
				}
				field.Set(next, idx, updated)
			}
		}
	}
	return nil
}

func nonPhysicalAt(cause error, k, j, i, step int) error {
	if ns, ok := cause.(cfderrors.NonPhysicalState); ok {
		return ns.WithLocation(k, j, i, step)
	}
	return cause
}
