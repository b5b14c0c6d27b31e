// Package gen produces a fictitious student cohort dataset for trying out
// early-warning prediction models. All values are synthetic; the noise
// parameters are hand-tuned to make the prediction problem non-trivial but
// learnable.
package gen

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	exprand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/jknowles/opensdp-predictive-analytics-sub000/internal/stats"
)

// Student is one synthetic student record.
type Student struct {
	ID         string
	Cohort     int
	School     string
	GPA        float64
	Attendance float64
	TestScore  float64
	Lunch      bool
	IEP        bool
	Graduated  bool
}

// Noise holds the hand-tuned perturbation parameters of the generator.
type Noise struct {
	GPA      float64 `json:"gpa"`
	Test     float64 `json:"test"`
	School   float64 `json:"school"`
	AttAlpha float64 `json:"att_alpha"`
	AttBeta  float64 `json:"att_beta"`
}

// Coefficients drive the graduation probability on the logit scale.
type Coefficients struct {
	Intercept  float64 `json:"intercept"`
	GPA        float64 `json:"gpa"`
	Attendance float64 `json:"attendance"`
	Test       float64 `json:"test"`
	Lunch      float64 `json:"lunch"`
	IEP        float64 `json:"iep"`
}

// Config parameterises one generator run.
type Config struct {
	Seed    uint64       `json:"seed"`
	Cohorts []int        `json:"cohorts"`
	Size    int          `json:"size"`
	Schools int          `json:"schools"`
	Lunch   float64      `json:"lunch"`
	IEP     float64      `json:"iep"`
	Noise   Noise        `json:"noise"`
	Coeff   Coefficients `json:"coeff"`
}

// Generator draws student cohorts from the configured distributions.
type Generator struct {
	cfg Config
	rng *exprand.Rand

	gpa        distuv.Normal
	test       distuv.Normal
	attendance distuv.Beta
	school     distuv.Normal
}

// New creates a Generator. All statistical draws are deterministic for a
// given Config seed; only the student IDs are fresh uuids each run.
func New(cfg Config) *Generator {
	src := exprand.NewSource(cfg.Seed)
	return &Generator{
		cfg: cfg,
		rng: exprand.New(src),
		gpa: distuv.Normal{
			Mu:    2.8,
			Sigma: cfg.Noise.GPA,
			Src:   src,
		},
		test: distuv.Normal{
			Mu:    0,
			Sigma: cfg.Noise.Test,
			Src:   src,
		},
		attendance: distuv.Beta{
			Alpha: cfg.Noise.AttAlpha,
			Beta:  cfg.Noise.AttBeta,
			Src:   src,
		},
		school: distuv.Normal{
			Mu:    0,
			Sigma: cfg.Noise.School,
			Src:   src,
		},
	}
}

// Generate draws all configured cohorts.
func (g *Generator) Generate() []Student {
	// one intercept shift per school keeps students of the same school
	// correlated, the structure cluster-robust errors are meant for
	shifts := make([]float64, g.cfg.Schools)
	for i := range shifts {
		shifts[i] = g.school.Rand()
	}

	students := make([]Student, 0, len(g.cfg.Cohorts)*g.cfg.Size)
	for _, year := range g.cfg.Cohorts {
		for i := 0; i < g.cfg.Size; i++ {
			school := g.rng.Intn(g.cfg.Schools)
			students = append(students, g.student(year, school, shifts[school]))
		}
	}
	return students
}

func (g *Generator) student(year, school int, schoolShift float64) Student {
	lunch := g.rng.Float64() < g.cfg.Lunch
	iep := g.rng.Float64() < g.cfg.IEP

	gpa := g.gpa.Rand()
	if lunch {
		gpa -= 0.3
	}
	if iep {
		gpa -= 0.2
	}
	gpa = clamp(gpa, 0, 4)

	// test score loads on GPA so the predictors are realistically collinear
	test := 0.6*(gpa-2.8) + g.test.Rand()

	attendance := g.attendance.Rand()
	if lunch {
		attendance = clamp(attendance-0.05, 0, 1)
	}

	logit := g.cfg.Coeff.Intercept + schoolShift +
		g.cfg.Coeff.GPA*gpa +
		g.cfg.Coeff.Attendance*attendance +
		g.cfg.Coeff.Test*test
	if lunch {
		logit += g.cfg.Coeff.Lunch
	}
	if iep {
		logit += g.cfg.Coeff.IEP
	}
	p := 1 / (1 + math.Exp(-logit))

	return Student{
		ID:         uuid.New().String(),
		Cohort:     year,
		School:     fmt.Sprintf("sch-%02d", school),
		GPA:        gpa,
		Attendance: attendance,
		TestScore:  test,
		Lunch:      lunch,
		IEP:        iep,
		Graduated:  g.rng.Float64() < p,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Summarize collects per-column summary statistics of a generated cohort.
func Summarize(students []Student) *stats.Collector {
	c := stats.NewCollector()
	for _, s := range students {
		c.Push("gpa", s.GPA)
		c.Push("attendance", s.Attendance)
		c.Push("test_score", s.TestScore)
		c.Push("lunch", boolToFloat(s.Lunch))
		c.Push("iep", boolToFloat(s.IEP))
		c.Push("graduated", boolToFloat(s.Graduated))
	}
	return c
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
