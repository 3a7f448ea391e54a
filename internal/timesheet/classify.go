package timesheet

import (
	"strconv"
	"strings"
)

const (
	lateHour   = 9
	lateMinute = 30
)

// classifyBlock converts the aligned marker rows of one block into a
// timesheet. Columns with an empty status cell are skipped entirely.
func classifyBlock(b *block, totals []string, dayLabels []string) EmployeeTimesheet {
	ts := EmployeeTimesheet{
		EmployeeNumber: b.number,
		EmployeeName:   b.name,
		Days:           []DayRecord{},
	}

	for j := 0; j < len(b.status) && j < len(dayLabels); j++ {
		status := strings.TrimSpace(b.status[j])
		if status == "" {
			continue
		}

		inTime := strings.TrimSpace(cellAt(b.inTime, j))
		outTime := strings.TrimSpace(cellAt(b.outTime, j))
		total := strings.TrimSpace(cellAt(totals, j))
		if total == "" {
			total = "00:00"
		}

		late := isLateArrival(inTime)
		finalStatus := status

		// week-off columns never count as working days
		if status != StatusWeekOff {
			ts.TotalWorkingDays++
		}

		switch status {
		case StatusPresent, StatusWeekOffWork:
			if late {
				finalStatus = StatusHalfDay
				ts.HalfDays++
			} else {
				ts.DaysPresent++
			}
		case StatusAbsent:
			ts.DaysLeave++
		}

		ts.Days = append(ts.Days, DayRecord{
			Date:       strings.TrimSpace(dayLabels[j]),
			Status:     finalStatus,
			InTime:     inTime,
			OutTime:    outTime,
			IsLate:     late,
			TotalHours: total,
		})
	}

	return ts
}

// isLateArrival reports whether an "HH:MM" in-time is strictly later than
// 09:30. Empty or malformed text is treated as on time.
func isLateArrival(inTime string) bool {
	if inTime == "" {
		return false
	}

	parts := strings.SplitN(strings.TrimSpace(inTime), ":", 2)
	if len(parts) != 2 {
		return false
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}

	return hour > lateHour || (hour == lateHour && minute > lateMinute)
}
