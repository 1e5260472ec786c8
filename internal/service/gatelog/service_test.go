package gatelog

import (
	"strings"
	"testing"
	"time"

	"github.com/hostwebit342-png/gatemaster-backend-go/internal/domain/gatelog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestExportCSV_Header(t *testing.T) {
	out := ExportCSV(nil)

	assert.Equal(t, "Date,Time,Name,Code,Type,Action,Details\n", out)
}

func TestExportCSV_Rows(t *testing.T) {
	ts := time.Date(2026, 3, 10, 9, 30, 15, 0, time.UTC)
	logs := []gatelog.GateLog{
		{
			Name:         "Ravi Kumar",
			EmployeeCode: strptr("EMP-142"),
			Type:         gatelog.TypeStaff,
			Action:       gatelog.ActionApproved,
			Details:      "HR processed request at 09:30:15",
			Timestamp:    ts,
		},
	}

	out := ExportCSV(logs)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t, "2026-03-10,09:30:15,Ravi Kumar,EMP-142,Staff,APPROVED,HR processed request at 09:30:15", lines[1])
}

func TestExportCSV_CommasBecomeSemicolons(t *testing.T) {
	ts := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	logs := []gatelog.GateLog{
		{
			Name:      "Singh, Amar",
			Type:      gatelog.TypeVisitor,
			Action:    gatelog.ActionVisitorIn,
			Details:   "Mobile: 9876543210, Meeting with Priya",
			Timestamp: ts,
		},
	}

	out := ExportCSV(logs)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)

	// every row keeps exactly seven columns
	fields := strings.Split(lines[1], ",")
	require.Len(t, fields, 7)
	assert.Equal(t, "Singh; Amar", fields[2])
	assert.Equal(t, "Mobile: 9876543210; Meeting with Priya", fields[6])
}

func TestExportCSV_MissingCodeIsNA(t *testing.T) {
	logs := []gatelog.GateLog{
		{Name: "Visitor One", Type: gatelog.TypeVisitor, Action: gatelog.ActionVisitorIn, Timestamp: time.Now()},
		{Name: "Visitor Two", EmployeeCode: strptr(""), Type: gatelog.TypeVisitor, Action: gatelog.ActionVisitorOut, Timestamp: time.Now()},
	}

	out := ExportCSV(logs)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)

	for _, line := range lines[1:] {
		fields := strings.Split(line, ",")
		require.Len(t, fields, 7)
		assert.Equal(t, "N/A", fields[3])
	}
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, "GateMaster_Logs_2026-03-10.csv", ExportFilename(now))
}
