package gatelog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hostwebit342-png/gatemaster-backend-go/internal/domain/gatelog"
)

// GateLogService serves the audit trail views and the CSV export.
type GateLogService struct {
	logRepo gatelog.GateLogRepository
}

func NewGateLogService(logRepo gatelog.GateLogRepository) *GateLogService {
	return &GateLogService{logRepo: logRepo}
}

// Search filters the trail by a case-insensitive substring over name, code
// and details, and an optional record type ("Visitor" or "Staff"; empty
// means all).
func (s *GateLogService) Search(ctx context.Context, query, typeFilter string) ([]gatelog.GateLog, error) {
	var filter *gatelog.RecordType
	switch gatelog.RecordType(typeFilter) {
	case gatelog.TypeVisitor, gatelog.TypeStaff:
		t := gatelog.RecordType(typeFilter)
		filter = &t
	}
	return s.logRepo.Search(ctx, query, filter)
}

// CSVHeader is the fixed export header row.
var CSVHeader = []string{"Date", "Time", "Name", "Code", "Type", "Action", "Details"}

// ExportCSV renders log entries as a comma separated table. Commas inside
// free-text fields are replaced with semicolons so every row has exactly
// seven columns.
func ExportCSV(logs []gatelog.GateLog) string {
	var b strings.Builder
	b.WriteString(strings.Join(CSVHeader, ","))
	b.WriteByte('\n')

	for _, log := range logs {
		code := "N/A"
		if log.EmployeeCode != nil && *log.EmployeeCode != "" {
			code = *log.EmployeeCode
		}
		row := []string{
			log.Timestamp.Format("2006-01-02"),
			log.Timestamp.Format("15:04:05"),
			sanitizeField(log.Name),
			sanitizeField(code),
			string(log.Type),
			sanitizeField(log.Action),
			sanitizeField(log.Details),
		}
		b.WriteString(strings.Join(row, ","))
		b.WriteByte('\n')
	}

	return b.String()
}

// ExportFilename names the downloadable artifact with the current date.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("GateMaster_Logs_%s.csv", now.Format("2006-01-02"))
}

func sanitizeField(s string) string {
	return strings.ReplaceAll(s, ",", ";")
}
