// Package report records which extension commands a driver provides.
package report

import (
	"io"
	"os"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

type Report struct {
	Generated time.Time `json:"generated"`
	Loader    string    `json:"loader"`
	Instance  Instance  `json:"instance"`
	Devices   []Device  `json:"devices"`
}

type Instance struct {
	APIVersion string      `json:"apiVersion"`
	Layers     []string    `json:"layers,omitempty"`
	Extensions []Extension `json:"extensions"`
}

type Device struct {
	Name          string      `json:"name"`
	Type          string      `json:"type"`
	UUID          uuid.UUID   `json:"uuid"`
	APIVersion    string      `json:"apiVersion"`
	DriverVersion string      `json:"driverVersion"`
	Extensions    []Extension `json:"extensions"`
}

// Extension is the outcome of loading one extension's commands.
type Extension struct {
	Name string `json:"name"`
	// RegistryVersion is the spec version the loaders were generated from,
	// DriverVersion the one the driver reports.
	RegistryVersion uint32   `json:"registryVersion"`
	DriverVersion   uint32   `json:"driverVersion"`
	Enabled         bool     `json:"enabled"`
	Loaded          []string `json:"loaded,omitempty"`
	Missing         []string `json:"missing,omitempty"`
}

func New(loader string) *Report {
	return &Report{Generated: time.Now().UTC(), Loader: loader}
}

// DeviceUUID converts a pipeline cache or device UUID as reported by the
// driver.
func DeviceUUID(raw [16]byte) uuid.UUID {
	id, err := uuid.FromBytes(raw[:])
	if err != nil {
		return uuid.Nil
	}
	return id
}

// Summary counts the loaded and missing commands over the whole report.
func (r *Report) Summary() (loaded, missing int) {
	count := func(exts []Extension) {
		for _, e := range exts {
			loaded += len(e.Loaded)
			missing += len(e.Missing)
		}
	}
	count(r.Instance.Extensions)
	for _, d := range r.Devices {
		count(d.Extensions)
	}
	return loaded, missing
}

// Write encodes the report as JSON.
func (r *Report) Write(w io.Writer, pretty bool) error {
	encoder := json.NewEncoder(w)
	if pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.EncodeWithOption(r, json.DisableHTMLEscape())
}

// Save writes the indented report to path, or to stdout when path is empty.
func (r *Report) Save(path string) error {
	if path == "" {
		return r.Write(os.Stdout, true)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.Write(f, true); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Read decodes a report written by Write.
func Read(r io.Reader) (*Report, error) {
	var rep Report
	if err := json.NewDecoder(r).Decode(&rep); err != nil {
		return nil, err
	}
	return &rep, nil
}
