package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/simpson/internal/dataset"
	"github.com/san-kum/simpson/internal/experiment"
	"github.com/san-kum/simpson/internal/quad"
)

const (
	metadataFile = "metadata.json"
	pointsFile   = "points.csv"
	tableFile    = "table.csv"
	reportFile   = "report.txt"
)

var ErrNoTable = errors.New("storage: run has no convergence table")

type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type Kind string

const (
	KindIntegration Kind = "integration"
	KindStudy       Kind = "study"
)

type RunMetadata struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Source    string    `json:"source"`
	Timestamp time.Time `json:"timestamp"`
	Rule      string    `json:"rule"`
	Start     float64   `json:"t_start,omitempty"`
	End       float64   `json:"t_end,omitempty"`

	Result *experiment.Result `json:"result,omitempty"`

	Intervals     []int   `json:"intervals,omitempty"`
	Exact         float64 `json:"exact,omitempty"`
	ObservedOrder float64 `json:"observed_order,omitempty"`
}

// Save stores one integration with its sample points and a text
// report.
func (s *Store) Save(source string, x, y []float64, res *experiment.Result) (string, error) {
	id := s.newID(source)
	meta := RunMetadata{
		ID:        id,
		Kind:      KindIntegration,
		Source:    source,
		Timestamp: s.now(),
		Rule:      res.RuleName,
		Result:    res,
	}
	if len(x) > 0 {
		meta.Start, meta.End = x[0], x[len(x)-1]
	}

	dir, err := s.runDir(id)
	if err != nil {
		return "", err
	}
	if err := writeJSON(filepath.Join(dir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writePoints(filepath.Join(dir, pointsFile), x, y); err != nil {
		return "", err
	}

	f, err := os.Create(filepath.Join(dir, reportFile))
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := WriteReport(f, x, y, res); err != nil {
		return "", err
	}
	return id, nil
}

// SaveTable stores a convergence table.
func (s *Store) SaveTable(integrand string, rule string, a, b float64, res *experiment.StudyResult) (string, error) {
	id := s.newID(integrand)
	meta := RunMetadata{
		ID:        id,
		Kind:      KindStudy,
		Source:    integrand,
		Timestamp: s.now(),
		Rule:      rule,
		Start:     a,
		End:       b,
		Intervals: res.Table.Intervals(),
		Exact:     res.Exact,
	}
	if p, err := res.Table.ObservedOrder(); err == nil {
		meta.ObservedOrder = p
	}

	dir, err := s.runDir(id)
	if err != nil {
		return "", err
	}
	if err := writeJSON(filepath.Join(dir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writeTable(filepath.Join(dir, tableFile), res.Table); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	if meta.Result != nil {
		if r, err := quad.ParseRule(meta.Result.RuleName); err == nil {
			meta.Result.Rule = r
		}
	}
	return &meta, nil
}

func (s *Store) LoadPoints(runID string) ([]float64, []float64, error) {
	records, err := readCSV(filepath.Join(s.baseDir, runID, pointsFile))
	if err != nil {
		return nil, nil, err
	}

	x := make([]float64, 0, len(records))
	y := make([]float64, 0, len(records))
	for i := 1; i < len(records); i++ {
		if len(records[i]) < 2 {
			continue
		}
		xv, err := strconv.ParseFloat(records[i][0], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%s row %d: %w", pointsFile, i, err)
		}
		yv, err := strconv.ParseFloat(records[i][1], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%s row %d: %w", pointsFile, i, err)
		}
		x = append(x, xv)
		y = append(y, yv)
	}
	return x, y, nil
}

func (s *Store) LoadTable(runID string) (dataset.Table, error) {
	records, err := readCSV(filepath.Join(s.baseDir, runID, tableFile))
	if err != nil {
		if os.IsNotExist(err) {
			return dataset.Table{}, ErrNoTable
		}
		return dataset.Table{}, err
	}

	var tbl dataset.Table
	for i := 1; i < len(records); i++ {
		rec := records[i]
		if len(rec) < 4 {
			continue
		}
		n, err := strconv.Atoi(rec[0])
		if err != nil {
			return dataset.Table{}, fmt.Errorf("%s row %d: %w", tableFile, i, err)
		}
		vals := make([]float64, 3)
		for j := range vals {
			vals[j], err = strconv.ParseFloat(rec[j+1], 64)
			if err != nil {
				return dataset.Table{}, fmt.Errorf("%s row %d: %w", tableFile, i, err)
			}
		}
		tbl.Rows = append(tbl.Rows, dataset.Row{Intervals: n, Result: vals[0], AbsError: vals[1], RelError: vals[2]})
	}
	return tbl, nil
}

func (s *Store) newID(prefix string) string {
	base := fmt.Sprintf("%s_%d", prefix, s.now().Unix())
	id := base
	for i := 2; ; i++ {
		if _, err := os.Stat(filepath.Join(s.baseDir, id)); os.IsNotExist(err) {
			return id
		}
		id = fmt.Sprintf("%s_%d", base, i)
	}
}

func (s *Store) runDir(id string) (string, error) {
	dir := filepath.Join(s.baseDir, id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

func writeJSON(path string, v interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writePoints(path string, x, y []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"x", "y"}); err != nil {
		return err
	}
	for i := range x {
		row := []string{
			strconv.FormatFloat(x[i], 'g', -1, 64),
			strconv.FormatFloat(y[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeTable(path string, tbl dataset.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"intervals", "result", "abs_error", "rel_error"}); err != nil {
		return err
	}
	for _, r := range tbl.Rows {
		row := []string{
			strconv.Itoa(r.Intervals),
			strconv.FormatFloat(r.Result, 'g', -1, 64),
			strconv.FormatFloat(r.AbsError, 'g', -1, 64),
			strconv.FormatFloat(r.RelError, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	return r.ReadAll()
}
