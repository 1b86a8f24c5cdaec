package progress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCIReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{Task: "Exporting", Out: &buf}
	r.Start(2)
	r.Update(1, "index.html")
	r.Update(2, "style.css")
	r.Finish()

	assert.Equal(t, "Exporting: 2 steps\n[1/2] index.html\n[2/2] style.css\nExporting: done\n", buf.String())
}

func TestNewReporterInCI(t *testing.T) {
	t.Setenv("CI", "true")
	_, ok := NewReporter("x").(*CIReporter)
	assert.True(t, ok)
}
