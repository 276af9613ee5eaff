package cron

import (
	"log"
	"time"

	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/application"
)

const auditRetentionDays = 90

// StartCleanupTask prunes expired audit entries once at startup and
// then every 24 hours.
func StartCleanupTask(auditService *application.AuditService) {
	go func() {
		log.Printf("Starting audit log cleanup task (retention: %d days)", auditRetentionDays)

		if err := auditService.CleanupOldLogs(auditRetentionDays); err != nil {
			log.Printf("Failed to cleanup old audit logs: %v", err)
		}

		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			if err := auditService.CleanupOldLogs(auditRetentionDays); err != nil {
				log.Printf("Failed to cleanup old audit logs: %v", err)
			}
		}
	}()
}
