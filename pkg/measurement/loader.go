package measurement

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Header names every input file must carry. Other columns are ignored.
const (
	ColProtocol    = "Protocol"
	ColPolicy      = "Policy"
	ColMessageSize = "MessageSizeKB"
	ColThroughput  = "ThroughputKbps"
)

// FileNotFoundError is returned when an input file does not exist.
type FileNotFoundError struct {
	Path string
	Err  error
}

func (e *FileNotFoundError) Error() string { return "file not found: " + e.Path }
func (e *FileNotFoundError) Unwrap() error { return e.Err }

// ReadError is returned when an input file exists but cannot be read or parsed.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string { return e.Path + ": " + e.Err.Error() }
func (e *ReadError) Unwrap() error { return e.Err }

// LoadFiles reads every file and concatenates the rows, file after file.
// Nothing is returned unless all the files are loaded.
func LoadFiles(paths []string) (Table, error) {
	klog.Info("Reading data files...")
	var table Table
	for _, path := range paths {
		klog.Infof("- Loading '%s'...", path)
		loaded, err := loadFile(path)
		if err != nil {
			return Table{}, err
		}
		table.Rows = append(table.Rows, loaded.Rows...)
		if table.sizeErr == nil && loaded.sizeErr != nil {
			table.sizeErr = errors.Wrap(loaded.sizeErr, path)
		}
	}
	klog.Info("Successfully loaded and combined data.")
	return table, nil
}

func loadFile(path string) (Table, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Table{}, &FileNotFoundError{Path: path, Err: err}
		}
		return Table{}, &ReadError{Path: path, Err: err}
	}
	defer file.Close()

	table, err := Read(file)
	if err != nil {
		return Table{}, &ReadError{Path: path, Err: err}
	}
	return table, nil
}

// Read parses CSV measurements. The first record is the header.
// Records shorter than the header are padded with missing cells, longer ones are an error.
// Stray quotes inside a field are kept as text. A missing-marker Policy is read as "".
// A MessageSizeKB cell that is not a number does not fail the read: the row gets a NaN size
// and the table reports it from CheckSizes.
func Read(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return Table{}, errors.New("no columns to parse from file")
	}
	if err != nil {
		return Table{}, errors.Wrap(err, "reading header")
	}
	cols, err := locateColumns(header)
	if err != nil {
		return Table{}, err
	}

	var table Table
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Table{}, errors.Wrap(err, "reading record")
		}
		line, _ := reader.FieldPos(0)
		if len(record) > len(header) {
			return Table{}, errors.Errorf("line %d: expected %d fields, saw %d", line, len(header), len(record))
		}
		cell := func(col int) string {
			if col < len(record) {
				return record[col]
			}
			return ""
		}
		size, err := ParseNumber(cell(cols.size))
		if err != nil {
			size = math.NaN()
			if table.sizeErr == nil {
				table.sizeErr = errors.Wrapf(err, "line %d: column %s", line, ColMessageSize)
			}
		}
		policy := cell(cols.policy)
		if IsMissing(policy) {
			policy = ""
		}
		table.Rows = append(table.Rows, Row{
			Protocol:       cell(cols.protocol),
			Policy:         policy,
			MessageSizeKB:  size,
			ThroughputKbps: cell(cols.throughput),
		})
	}
	return table, nil
}

type columns struct {
	protocol, policy, size, throughput int
}

func locateColumns(header []string) (columns, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	cols := columns{}
	var missing []string
	for _, c := range []struct {
		name string
		dst  *int
	}{
		{ColProtocol, &cols.protocol},
		{ColPolicy, &cols.policy},
		{ColMessageSize, &cols.size},
		{ColThroughput, &cols.throughput},
	} {
		i, ok := index[c.name]
		if !ok {
			missing = append(missing, c.name)
			continue
		}
		*c.dst = i
	}
	if len(missing) > 0 {
		return columns{}, errors.Errorf("missing columns: %s", strings.Join(missing, ", "))
	}
	return cols, nil
}
