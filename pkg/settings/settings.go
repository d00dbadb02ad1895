package settings

import (
	"io/ioutil"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Settings describes where the measurements are read from and which charts are written.
type Settings struct {
	ExecDir    string   `yaml:"exec_dir"` // inputs are read from and charts written to this directory
	InputFiles []string `yaml:"input_files"`
	SizeRange  struct {
		Min float64 `yaml:"min"` // in KB, inclusive
		Max float64 `yaml:"max"` // in KB, inclusive
	} `yaml:"size_range"`
	Sizes1MB  []float64 `yaml:"sizes_1mb"`  // chunk sizes in KB
	Sizes10MB []float64 `yaml:"sizes_10mb"` // chunk sizes in KB
	Outputs   struct {
		TcpSweep string `yaml:"tcp_sweep"`
		UdpSweep string `yaml:"udp_sweep"`
		Bulk1MB  string `yaml:"bulk_1mb"`
		Bulk10MB string `yaml:"bulk_10mb"`
	} `yaml:"outputs"`
	OverviewFile string `yaml:"overview_file"`
	PrintSummary bool   `yaml:"print_summary"`
}

// Default returns the fixed configuration of the report.
func Default() Settings {
	var s Settings
	s.InputFiles = []string{"performance_data_fcfs.csv", "performance_data_rr.csv"}
	s.SizeRange.Min = 1
	s.SizeRange.Max = 32
	s.Sizes1MB = []float64{1, 2, 4, 8, 16, 32, 64}
	s.Sizes10MB = []float64{10, 20, 40, 64, 80, 128, 160}
	s.Outputs.TcpSweep = "tcp_throughput_vs_size.png"
	s.Outputs.UdpSweep = "udp_throughput_vs_size.png"
	s.Outputs.Bulk1MB = "bulk_transfer_1mb.png"
	s.Outputs.Bulk10MB = "bulk_transfer_10mb.png"
	s.PrintSummary = true
	return s
}

// Load reads a YAML settings file on top of the defaults: keys missing from the file keep their default value.
func Load(path string) (Settings, error) {
	file, err := ioutil.ReadFile(path)
	if err != nil {
		return Settings{}, errors.Wrapf(err, "reading settings %s", path)
	}
	s := Default()
	if err := yaml.Unmarshal(file, &s); err != nil {
		return Settings{}, errors.Wrapf(err, "parsing settings %s", path)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, errors.Wrapf(err, "invalid settings %s", path)
	}
	return s, nil
}

// Validate reports settings the report cannot run with.
func (s Settings) Validate() error {
	if len(s.InputFiles) == 0 {
		return errors.New("no input files")
	}
	if s.SizeRange.Min > s.SizeRange.Max {
		return errors.Errorf("size range min %v is greater than max %v", s.SizeRange.Min, s.SizeRange.Max)
	}
	for name, out := range map[string]string{
		"tcp_sweep": s.Outputs.TcpSweep,
		"udp_sweep": s.Outputs.UdpSweep,
		"bulk_1mb":  s.Outputs.Bulk1MB,
		"bulk_10mb": s.Outputs.Bulk10MB,
	} {
		if out == "" {
			return errors.Errorf("output %s has no file name", name)
		}
	}
	return nil
}

// InputPaths returns the input files resolved against ExecDir, in reading order.
func (s Settings) InputPaths() []string {
	paths := make([]string, 0, len(s.InputFiles))
	for _, f := range s.InputFiles {
		paths = append(paths, s.Path(f))
	}
	return paths
}

// Path resolves a file name against ExecDir. Absolute names are kept as they are.
func (s Settings) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.ExecDir, name)
}

// BulkSizes is the union of both bulk transfer buckets.
func (s Settings) BulkSizes() []float64 {
	sizes := make([]float64, 0, len(s.Sizes1MB)+len(s.Sizes10MB))
	sizes = append(sizes, s.Sizes1MB...)
	return append(sizes, s.Sizes10MB...)
}
