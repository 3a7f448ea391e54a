package consumer

import (
	"context"
	"encoding/json"

	"hradmin/internal/audit"
	"hradmin/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeEmployeeLifecycle appends an audit trail row for every
// employee_created event. Decode failures are committed and skipped, a
// poison message must not wedge the group.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	recorder audit.Recorder,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.EmployeeCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode employee_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		recorder.Record(ctx, "", "EMPLOYEE_CREATED_EVENT", "Employee", event.EmployeeID, map[string]any{
			"employee_number": event.EmployeeNumber,
			"request_id":      event.RequestID,
			"occurred_at":     event.OccurredAt,
		})

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("employee lifecycle event recorded",
			zap.String("employee_id", event.EmployeeID),
			zap.String("employee_number", event.EmployeeNumber),
		)
	}
}

// ConsumeAttendanceImports mirrors completed workbook imports into the audit
// trail so operators can see import activity without API access.
func ConsumeAttendanceImports(
	ctx context.Context,
	reader *kafkago.Reader,
	recorder audit.Recorder,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.attendance_import")
	log.Info("attendance import consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("attendance import consumer stopped")
				return
			}
			log.Error("fetch attendance import message failed", zap.Error(err))
			continue
		}

		var event events.AttendanceImportedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode attendance_imported event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		recorder.Record(ctx, "", "ATTENDANCE_IMPORTED_EVENT", "Attendance", event.MonthYear, map[string]any{
			"month_year": event.MonthYear,
			"successful": event.Successful,
			"failed":     event.Failed,
			"request_id": event.RequestID,
		})

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit attendance import message failed", zap.Error(err))
			continue
		}

		log.Info("attendance import event recorded",
			zap.String("month_year", event.MonthYear),
			zap.Int("successful", event.Successful),
			zap.Int("failed", event.Failed),
		)
	}
}
