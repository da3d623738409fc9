package metrics_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/docpost"
	"github.com/aretw0/docpost/internal/metrics"
)

func sampleReport() *docpost.Report {
	return &docpost.Report{
		Root:    "docs",
		Removed: []string{"docs/modules", "docs/README.md"},
		Files: []docpost.FileResult{
			{Path: "docs/guide.md", LinesTrimmed: 2},
			{Path: "docs/classes/Foo.md", LinesTrimmed: 2, HeadingPass: true, HeadingsDemoted: 3},
			{Path: "docs/classes/Bar.md", LinesTrimmed: 1, HeadingPass: true},
		},
		Duration: 1500 * time.Millisecond,
	}
}

func TestRecorder_Observe(t *testing.T) {
	r := metrics.NewRecorder()
	r.Observe(sampleReport(), nil)

	count, err := testutil.GatherAndCount(r.Registry())
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestRecorder_WriteTextfile(t *testing.T) {
	r := metrics.NewRecorder()
	r.Observe(sampleReport(), nil)

	path := filepath.Join(t.TempDir(), "docpost.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "docpost_files_processed 3")
	assert.Contains(t, out, "docpost_heading_files 2")
	assert.Contains(t, out, "docpost_headings_demoted 3")
	assert.Contains(t, out, "docpost_paths_removed 2")
	assert.Contains(t, out, "docpost_run_duration_seconds 1.5")
	assert.Contains(t, out, "docpost_last_run_success 1")
}

func TestRecorder_ObserveFailure(t *testing.T) {
	r := metrics.NewRecorder()
	r.Observe(nil, errors.New("disk full"))

	path := filepath.Join(t.TempDir(), "docpost.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "docpost_last_run_success 0")
	assert.Contains(t, string(data), "docpost_files_processed 0")
}

func TestRecorder_WriteTextfile_BadPath(t *testing.T) {
	r := metrics.NewRecorder()
	err := r.WriteTextfile(filepath.Join(t.TempDir(), "missing", "docpost.prom"))
	require.Error(t, err)
}
