// Package caseinput parses a YAML case file into the solver's normalized
// inputs. Grounded on InputParameters/InputParameters.go's
// InputParameters2D (ghodss/yaml-tagged struct, Parse/Print methods), here
// generalized from a 2D DG case file to the grid/reference-scale/BC/body
// fields spec.md section 6 names.
package caseinput

import (
	"fmt"
	"os"
	"strings"

	"github.com/ghodss/yaml"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/artracfd/gocfd/internal/cfderrors"
	"github.com/artracfd/gocfd/internal/cfdparams"
	"github.com/artracfd/gocfd/internal/ibm"
	"github.com/artracfd/gocfd/internal/partition"
	"github.com/artracfd/gocfd/internal/thermo"
)

// DefaultPath is the default value of the --case flag, the case-file
// location used when the flag is not given, mirroring the ~/.appname/config.yaml convention
// spf13/viper-based tools default to.
const DefaultPath = "~/.gocfd/case.yaml"

// FaceBC is one of the six domain faces' boundary-condition specification.
// Kind is one of "fluid", "inlet", "outlet", "slip-wall", "no-slip-wall",
// "periodic", matching partition.BCKind.String().
type FaceBC struct {
	Kind string  `json:"kind"`
	Rho  float64 `json:"rho"`
	U    float64 `json:"u"`
	V    float64 `json:"v"`
	W    float64 `json:"w"`
	P    float64 `json:"p"`
	T    float64 `json:"t"`
}

func (f FaceBC) primitive() thermo.Primitive {
	return thermo.Primitive{Rho: f.Rho, U: f.U, V: f.V, W: f.W, P: f.P, T: f.T}
}

// BodySpec is one embedded rigid body. Only "sphere" is supported, matching
// original_source/gcibm.c's sole body kind; U/V/W is the optional linear
// velocity spec.md section 6's body tuple implies (see internal/ibm.Kinematic).
type BodySpec struct {
	Shape  string  `json:"shape"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Z      float64 `json:"z"`
	Radius float64 `json:"radius"`
	U      float64 `json:"u"`
	V      float64 `json:"v"`
	W      float64 `json:"w"`
}

// CaseFile is the full set of fields a solve run reads from YAML, covering
// domain cell counts/extents, ghost width, reference scales, total
// time/step cap, CFL, output count, per-face BC, initial condition, and the
// body list.
type CaseFile struct {
	Title string `json:"title"`

	NCX int `json:"ncx"`
	NCY int `json:"ncy"`
	NCZ int `json:"ncz"`
	NG  int `json:"ng"`

	XMin float64 `json:"xMin"`
	XMax float64 `json:"xMax"`
	YMin float64 `json:"yMin"`
	YMax float64 `json:"yMax"`
	ZMin float64 `json:"zMin"`
	ZMax float64 `json:"zMax"`

	RefLength      float64 `json:"refLength"`
	RefVelocity    float64 `json:"refVelocity"`
	RefDensity     float64 `json:"refDensity"`
	RefTemperature float64 `json:"refTemperature"`
	RefMu          float64 `json:"refMu"`

	TotalTime   float64 `json:"totalTime"`
	TotalStep   int     `json:"totalStep"`
	CFL         float64 `json:"cfl"`
	OutputCount int     `json:"outputCount"`

	// Faces is ordered (-x,+x,-y,+y,-z,+z), matching partition.Boxes[1..6].
	Faces [6]FaceBC `json:"faces"`

	ICRho float64 `json:"icRho"`
	ICU   float64 `json:"icU"`
	ICV   float64 `json:"icV"`
	ICW   float64 `json:"icW"`
	ICP   float64 `json:"icP"`

	Bodies []BodySpec `json:"bodies"`
}

// Parse unmarshals YAML bytes into a CaseFile, matching
// InputParameters2D.Parse.
func Parse(data []byte) (*CaseFile, error) {
	cf := &CaseFile{}
	if err := yaml.Unmarshal(data, cf); err != nil {
		return nil, cfderrors.ConfigError{Detail: fmt.Sprintf("parsing case file: %s", err)}
	}
	return cf, nil
}

// Load reads and parses the case file at path, expanding a leading "~" via
// go-homedir the way viper-based CLIs resolve a user config path.
func Load(path string) (*CaseFile, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, cfderrors.IOError{Path: path, Detail: err.Error()}
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, cfderrors.IOError{Path: expanded, Detail: err.Error()}
	}
	return Parse(data)
}

// ApplyEnvOverrides binds a fixed set of case-file keys to GOCFD_-prefixed
// environment variables via spf13/viper, for batch/cluster runs that swap a
// single parameter without editing the YAML file. Only the keys listed are
// bound; unset environment variables leave cf unchanged.
func ApplyEnvOverrides(cf *CaseFile) {
	v := viper.New()
	v.SetEnvPrefix("GOCFD")
	v.AutomaticEnv()

	for _, key := range []string{"cfl", "totalstep", "totaltime"} {
		if !v.IsSet(key) {
			continue
		}
		switch key {
		case "cfl":
			cf.CFL = v.GetFloat64(key)
		case "totalstep":
			cf.TotalStep = v.GetInt(key)
		case "totaltime":
			cf.TotalTime = v.GetFloat64(key)
		}
	}
}

// Print writes a human-readable summary of the parsed case file, the
// generalized form of InputParameters2D.Print (title/CFL/FluxType table
// there becomes title/grid/reference-scale/face-BC here).
func (cf *CaseFile) Print() {
	fmt.Printf("%q\t\t= Title\n", cf.Title)
	fmt.Printf("%8.5f\t\t= CFL\n", cf.CFL)
	fmt.Printf("%d x %d x %d\t= NCX x NCY x NCZ\n", cf.NCX, cf.NCY, cf.NCZ)
	for i, name := range []string{"-x", "+x", "-y", "+y", "-z", "+z"} {
		fmt.Printf("face[%s] = %s\n", name, cf.Faces[i].Kind)
	}
}

// bcKindFromString maps a face's Kind string to partition.BCKind.
func bcKindFromString(s string) (partition.BCKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fluid":
		return partition.Fluid, nil
	case "inlet":
		return partition.Inlet, nil
	case "outlet":
		return partition.Outlet, nil
	case "slip-wall", "slipwall":
		return partition.SlipWall, nil
	case "no-slip-wall", "noslipwall":
		return partition.NoSlipWall, nil
	case "periodic":
		return partition.Periodic, nil
	default:
		return 0, cfderrors.ConfigError{Detail: fmt.Sprintf("unknown BC kind %q", s)}
	}
}

// Build resolves a parsed CaseFile into the normalized grid/model
// (internal/cfdparams), the fully-configured partition and the body list,
// everything internal/solver.New needs to construct a Driver.
func Build(cf *CaseFile) (*cfdparams.Resolved, *partition.Partition, []ibm.Body, error) {
	raw := cfdparams.RawInput{
		NCX: cf.NCX, NCY: cf.NCY, NCZ: cf.NCZ, NG: cf.NG,
		XMin: cf.XMin, XMax: cf.XMax,
		YMin: cf.YMin, YMax: cf.YMax,
		ZMin: cf.ZMin, ZMax: cf.ZMax,
		RefLength: cf.RefLength, RefVelocity: cf.RefVelocity,
		RefDensity: cf.RefDensity, RefTemperature: cf.RefTemperature, RefMu: cf.RefMu,
		TotalTime: cf.TotalTime, TotalStep: cf.TotalStep,
	}
	if cf.RefLength == 0 || cf.RefVelocity == 0 || cf.RefDensity == 0 || cf.RefTemperature == 0 {
		return nil, nil, nil, cfderrors.ConfigOutOfRange{Field: "reference scale", Value: 0}
	}
	resolved := cfdparams.Resolve(raw)

	part := partition.New(resolved.Space.KMax, resolved.Space.JMax, resolved.Space.IMax, resolved.Space.NG)
	for i, face := range cf.Faces {
		kind, err := bcKindFromString(face.Kind)
		if err != nil {
			return nil, nil, nil, err
		}
		part.SetFace(i+1, kind, face.primitive())
	}

	bodies := make([]ibm.Body, 0, len(cf.Bodies))
	for _, b := range cf.Bodies {
		switch strings.ToLower(b.Shape) {
		case "", "sphere":
			bodies = append(bodies, ibm.Sphere{
				Center: [3]float64{b.X, b.Y, b.Z},
				Radius: b.Radius,
				Vel:    [3]float64{b.U, b.V, b.W},
				ID:     len(bodies),
			})
		default:
			return nil, nil, nil, cfderrors.ConfigError{Detail: fmt.Sprintf("unknown body shape %q", b.Shape)}
		}
	}

	return &resolved, part, bodies, nil
}
