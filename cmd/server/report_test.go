package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/gym-management/internal/report"
)

func TestPrintRowsWritesJSONLines(t *testing.T) {
	cmd := newReportCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)

	rows := []report.RevenueTrendRow{{Month: "2026-01", TotalRevenue: 10}, {Month: "2026-02", TotalRevenue: 12.5}}
	require.NoError(t, printRows(cmd, rows))
	assert.Equal(t, "{\"month\":\"2026-01\",\"total_revenue\":10}\n{\"month\":\"2026-02\",\"total_revenue\":12.5}\n", out.String())

	out.Reset()
	require.NoError(t, printRows(cmd, []report.ChurnRow{}))
	assert.Empty(t, out.String())

	assert.Error(t, printRows(cmd, "nope"))
}

func TestReportCommandRejectsUnknownKind(t *testing.T) {
	cmd := newReportCommand()
	cmd.SetArgs([]string{"top-spenders"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	assert.Error(t, cmd.Execute())
}
