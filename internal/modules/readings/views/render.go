package views

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strconv"
	"time"

	"tempmon/internal/modules/readings/types"
)

//go:embed templates
var viewsFS embed.FS

var analysisTmpl *template.Template

const timestampLayout = "02/01/2006 15:04:05"

// CSS classes for the difference column.
const (
	ClassRising  = "rising"
	ClassFalling = "falling"
	ClassNA      = "na"
)

// loadTemplatesFromFS loads templates from the given fs and dir.
// Used by LoadTemplates and by tests to simulate failure scenarios.
func loadTemplatesFromFS(fsys fs.FS, dir string) error {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		return err
	}
	analysisTmpl, err = template.ParseFS(sub, "*.html")
	return err
}

// LoadTemplates loads the embedded templates. Call during startup before
// serving requests; if it returns an error, do not start the server.
func LoadTemplates() error {
	return loadTemplatesFromFS(viewsFS, "templates")
}

// Row is one line of the readings table.
type Row struct {
	ID          int64
	Timestamp   string
	Temperature string
	Threshold   string
	Difference  string
	Class       string
}

type AnalysisData struct {
	Latest               *Row
	ActiveThreshold      string
	ActiveThresholdLabel string
	Rows                 []Row
}

func NewRow(r types.SensorReading) Row {
	return Row{
		ID:          r.ID,
		Timestamp:   r.RecordedAt.UTC().Format(timestampLayout),
		Temperature: FormatNumber(&r.Temperature),
		Threshold:   FormatNumber(r.ThresholdValue),
		Difference:  FormatNumber(r.TemperatureDifference),
		Class:       DifferenceClass(r.TemperatureDifference),
	}
}

func NewRows(readings []types.SensorReading) []Row {
	out := make([]Row, 0, len(readings))
	for _, r := range readings {
		out = append(out, NewRow(r))
	}
	return out
}

// FormatNumber renders v with two decimals, or "N/A" when v is nil.
func FormatNumber(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", *v)
}

// DifferenceClass classifies the rendered (two decimal) difference, so a
// value that displays as 0.00 is never shown as rising.
func DifferenceClass(d *float64) string {
	if d == nil {
		return ClassNA
	}
	rounded, err := strconv.ParseFloat(FormatNumber(d), 64)
	if err != nil {
		return ClassNA
	}
	if rounded > 0 {
		return ClassRising
	}
	return ClassFalling
}

func RenderAnalysis(w io.Writer, data *AnalysisData) error {
	if analysisTmpl == nil {
		return errors.New("analysis template not loaded: call views.LoadTemplates during startup")
	}
	if data == nil {
		data = &AnalysisData{}
	}
	return analysisTmpl.ExecuteTemplate(w, "analysis.html", struct {
		*AnalysisData
		GeneratedAt string
	}{data, time.Now().UTC().Format(timestampLayout)})
}
