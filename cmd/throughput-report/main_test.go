package main

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))
	return path
}

func settingsFor(t *testing.T, dir string) string {
	return writeFile(t, dir, "settings.yml", fmt.Sprintf("exec_dir: %q\nprint_summary: false\n", dir))
}

func TestRunSucceeds(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "performance_data_fcfs.csv",
		"Protocol,Policy,MessageSizeKB,ThroughputKbps\ntcp,fcfs,1,100\nudp,fcfs,2,200\ntcp,fcfs,64,300\n")
	writeFile(t, dir, "performance_data_rr.csv",
		"Protocol,Policy,MessageSizeKB,ThroughputKbps\ntcp,rr,1,110\nudp,rr,2,210\ntcp,rr,10,310\n")

	var stdout, stderr bytes.Buffer
	status := run([]string{settingsFor(t, dir)}, &stdout, &stderr)
	assert.Equal(t, 0, status, stderr.String())

	matches, err := filepath.Glob(filepath.Join(dir, "*.png"))
	require.NoError(t, err)
	var names []string
	for _, m := range matches {
		names = append(names, filepath.Base(m))
	}
	sort.Strings(names)
	assert.Equal(t, []string{
		"bulk_transfer_10mb.png",
		"bulk_transfer_1mb.png",
		"tcp_throughput_vs_size.png",
		"udp_throughput_vs_size.png",
	}, names)
}

func TestRunMissingFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "performance_data_fcfs.csv", "Protocol,Policy,MessageSizeKB,ThroughputKbps\ntcp,fcfs,1,100\n")

	var stdout, stderr bytes.Buffer
	status := run([]string{settingsFor(t, dir)}, &stdout, &stderr)
	assert.Equal(t, 1, status)
	assert.Contains(t, stderr.String(), "File not found: "+filepath.Join(dir, "performance_data_rr.csv"))
}

func TestRunCorruptedFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "performance_data_fcfs.csv", "Protocol,Policy,MessageSizeKB,ThroughputKbps\ntcp,fcfs,1,100,extra\n")
	writeFile(t, dir, "performance_data_rr.csv", "Protocol,Policy,MessageSizeKB,ThroughputKbps\n")

	var stdout, stderr bytes.Buffer
	status := run([]string{settingsFor(t, dir)}, &stdout, &stderr)
	assert.Equal(t, 1, status)
	assert.Contains(t, stderr.String(), "The file might still be corrupted")
	assert.Contains(t, stderr.String(), "performance_data_fcfs.csv")
}

func TestRunBadArguments(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{"a.yml", "b.yml"}, &stdout, &stderr))
	assert.Equal(t, 1, run([]string{filepath.Join(t.TempDir(), "missing.yml")}, &stdout, &stderr))
}

func TestRunPanicsOnUnexpectedFailure(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "performance_data_fcfs.csv", "Protocol,Policy,MessageSizeKB,ThroughputKbps\ntcp,fcfs,1,fast\n")
	writeFile(t, dir, "performance_data_rr.csv", "Protocol,Policy,MessageSizeKB,ThroughputKbps\n")

	var stdout, stderr bytes.Buffer
	assert.Panics(t, func() {
		run([]string{settingsFor(t, dir)}, &stdout, &stderr)
	})
}

func TestRunPanicsOnTextMessageSize(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "performance_data_fcfs.csv", "Protocol,Policy,MessageSizeKB,ThroughputKbps\ntcp,fcfs,big,100\n")
	writeFile(t, dir, "performance_data_rr.csv", "Protocol,Policy,MessageSizeKB,ThroughputKbps\ntcp,rr,1,100\n")

	var stdout, stderr bytes.Buffer
	assert.Panics(t, func() {
		run([]string{settingsFor(t, dir)}, &stdout, &stderr)
	})
	assert.NotContains(t, stderr.String(), "The file might still be corrupted")
}
