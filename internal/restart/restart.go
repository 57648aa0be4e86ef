// Package restart persists and reloads a solve's time-stepping state: step
// count, current time, every body's position/velocity, and one
// conservative-variable buffer. Grounded on
// original_source/ensightexporter.c's WriteParticleFile (plain-text,
// comma-separated per-object record) for the body-state convention, and on
// internal/field.Field for the buffer this package round-trips.
package restart

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/artracfd/gocfd/internal/cfderrors"
	"github.com/artracfd/gocfd/internal/field"
	"github.com/artracfd/gocfd/internal/ibm"
)

// State is everything a solve needs to resume: step count, time, bodies
// and the conservative buffer.
type State struct {
	RunID     string
	Step      int
	Time      float64
	Bodies    []ibm.Sphere
	Buf       []float64
}

// Write persists state as two files under dir: "<name>.particle" (the
// teacher's plain-text per-body record, here also carrying step/time as a
// header line) and "<name>.field" (the raw conservative buffer, binary
// float64, little-endian). name defaults to a fresh UUID when empty, so
// concurrent runs writing to the same dir never collide, matching
// original_source's EnsightSet.baseName convention generalized with a run
// id instead of a step-count suffix.
func Write(dir, name string, st State) error {
	if name == "" {
		name = uuid.NewString()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return cfderrors.IOError{Path: dir, Detail: err.Error()}
	}

	particlePath := dir + "/" + name + ".particle"
	pf, err := os.Create(particlePath)
	if err != nil {
		return cfderrors.IOError{Path: particlePath, Detail: err.Error()}
	}
	defer pf.Close()

	fmt.Fprintf(pf, "Step: %d\n", st.Step)
	fmt.Fprintf(pf, "Time: %.17g\n", st.Time)
	fmt.Fprintf(pf, "N: %d\n", len(st.Bodies))
	for _, b := range st.Bodies {
		fmt.Fprintf(pf, "%.17g, %.17g, %.17g, %.17g, %.17g, %.17g, %.17g, %d\n",
			b.Center[0], b.Center[1], b.Center[2], b.Radius,
			b.Vel[0], b.Vel[1], b.Vel[2], b.ID)
	}

	fieldPath := dir + "/" + name + ".field"
	ff, err := os.Create(fieldPath)
	if err != nil {
		return cfderrors.IOError{Path: fieldPath, Detail: err.Error()}
	}
	defer ff.Close()
	if err := binary.Write(ff, binary.LittleEndian, st.Buf); err != nil {
		return cfderrors.IOError{Path: fieldPath, Detail: err.Error()}
	}
	return nil
}

// Read reloads a State previously written by Write. nMax is the caller's
// expected field.Space.NMax: Read allocates nMax*DimU values and fails if
// the field file holds fewer; data past that length is not checked.
func Read(dir, name string, nMax int) (State, error) {
	particlePath := dir + "/" + name + ".particle"
	pf, err := os.Open(particlePath)
	if err != nil {
		return State{}, cfderrors.IOError{Path: particlePath, Detail: err.Error()}
	}
	defer pf.Close()

	st := State{RunID: name}
	scanner := bufio.NewScanner(pf)
	bodyCount := 0
	lineNum := 0
	for scanner.Scan() {
		line := scanner.Text()
		lineNum++
		switch {
		case strings.HasPrefix(line, "Step:"):
			st.Step, err = strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "Step:")))
		case strings.HasPrefix(line, "Time:"):
			st.Time, err = strconv.ParseFloat(strings.TrimSpace(strings.TrimPrefix(line, "Time:")), 64)
		case strings.HasPrefix(line, "N:"):
			bodyCount, err = strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "N:")))
		default:
			b, perr := parseBodyLine(line)
			if perr != nil {
				err = perr
				break
			}
			st.Bodies = append(st.Bodies, b)
		}
		if err != nil {
			return State{}, cfderrors.IOError{Path: particlePath, Detail: fmt.Sprintf("line %d: %s", lineNum, err)}
		}
	}
	if len(st.Bodies) != bodyCount {
		return State{}, cfderrors.IOError{Path: particlePath, Detail: fmt.Sprintf("declared N=%d but read %d bodies", bodyCount, len(st.Bodies))}
	}

	fieldPath := dir + "/" + name + ".field"
	ff, err := os.Open(fieldPath)
	if err != nil {
		return State{}, cfderrors.IOError{Path: fieldPath, Detail: err.Error()}
	}
	defer ff.Close()

	st.Buf = make([]float64, nMax*field.DimU)
	if err := binary.Read(ff, binary.LittleEndian, st.Buf); err != nil {
		return State{}, cfderrors.IOError{Path: fieldPath, Detail: err.Error()}
	}
	return st, nil
}

func parseBodyLine(line string) (ibm.Sphere, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 8 {
		return ibm.Sphere{}, fmt.Errorf("expected 8 comma-separated fields, got %d", len(fields))
	}
	vals := make([]float64, 7)
	for i := 0; i < 7; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(fields[i]), 64)
		if err != nil {
			return ibm.Sphere{}, err
		}
		vals[i] = v
	}
	id, err := strconv.Atoi(strings.TrimSpace(fields[7]))
	if err != nil {
		return ibm.Sphere{}, err
	}
	return ibm.Sphere{
		Center: [3]float64{vals[0], vals[1], vals[2]},
		Radius: vals[3],
		Vel:    [3]float64{vals[4], vals[5], vals[6]},
		ID:     id,
	}, nil
}
