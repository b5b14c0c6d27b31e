// Package dataset reads and writes the student table and turns it into the
// flat feature matrix the model trainers expect.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/jknowles/opensdp-predictive-analytics-sub000/internal/gen"
)

var header = []string{"id", "cohort", "school", "gpa", "attendance", "test_score", "lunch", "iep", "graduated"}

// Write stores the students as a CSV table with a header row.
func Write(path string, students []gen.Student) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("could not write header: %w", err)
	}
	for _, s := range students {
		record := []string{
			s.ID,
			strconv.Itoa(s.Cohort),
			s.School,
			formatFloat(s.GPA),
			formatFloat(s.Attendance),
			formatFloat(s.TestScore),
			formatBool(s.Lunch),
			formatBool(s.IEP),
			formatBool(s.Graduated),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("could not write record for %s: %w", s.ID, err)
		}
	}
	w.Flush()
	return w.Error()
}

// Read loads a student table written by Write.
func Read(path string) ([]gen.Student, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty table in %s", path)
	}

	students := make([]gen.Student, 0, len(records)-1)
	for i, record := range records[1:] {
		s, err := parse(record)
		if err != nil {
			return nil, fmt.Errorf("could not parse row %d: %w", i+1, err)
		}
		students = append(students, s)
	}
	return students, nil
}

func parse(record []string) (gen.Student, error) {
	if len(record) != len(header) {
		return gen.Student{}, fmt.Errorf("expected %d fields, got %d", len(header), len(record))
	}
	cohort, err := strconv.Atoi(record[1])
	if err != nil {
		return gen.Student{}, err
	}
	gpa, err := strconv.ParseFloat(record[3], 64)
	if err != nil {
		return gen.Student{}, err
	}
	attendance, err := strconv.ParseFloat(record[4], 64)
	if err != nil {
		return gen.Student{}, err
	}
	test, err := strconv.ParseFloat(record[5], 64)
	if err != nil {
		return gen.Student{}, err
	}
	return gen.Student{
		ID:         record[0],
		Cohort:     cohort,
		School:     record[2],
		GPA:        gpa,
		Attendance: attendance,
		TestScore:  test,
		Lunch:      record[6] == "1",
		IEP:        record[7] == "1",
		Graduated:  record[8] == "1",
	}, nil
}

// Matrix extracts the feature matrix and the 0/1 graduation labels.
// Feature order: gpa, attendance, test_score, lunch, iep.
func Matrix(students []gen.Student) ([][]float64, []int) {
	xx := make([][]float64, len(students))
	yy := make([]int, len(students))
	for i, s := range students {
		xx[i] = []float64{
			s.GPA,
			s.Attendance,
			s.TestScore,
			boolToFloat(s.Lunch),
			boolToFloat(s.IEP),
		}
		if s.Graduated {
			yy[i] = 1
		}
	}
	return xx, yy
}

// Clusters extracts the school ID per student, for cluster-robust errors.
func Clusters(students []gen.Student) []string {
	cc := make([]string, len(students))
	for i, s := range students {
		cc[i] = s.School
	}
	return cc
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 6, 64)
}

func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
