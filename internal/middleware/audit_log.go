package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pantry-service/internal/domain/model"
	"github.com/guttosm/pantry-service/internal/service"
)

// AuditLog records an inventory mutation made by the caller.
func AuditLog(loggingService service.LoggingService, c *gin.Context, actionType string, message string, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}
	storeLog(loggingService, auditEntry(c, "info", actionType, message, fields))
}

// AuditLogError records a failed inventory mutation.
func AuditLogError(loggingService service.LoggingService, c *gin.Context, actionType string, message string, err error, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}
	entry := auditEntry(c, "error", actionType, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	storeLog(loggingService, entry)
}

// auditEntry copies fields so the caller's map is not shared with the queued entry.
func auditEntry(c *gin.Context, level, actionType, message string, fields map[string]interface{}) *model.LogEntry {
	entry := &model.LogEntry{
		Timestamp:   time.Now(),
		Level:       level,
		Message:     message,
		RequestID:   GetRequestID(c),
		Method:      c.Request.Method,
		Path:        c.Request.URL.Path,
		IP:          c.ClientIP(),
		UserAgent:   c.Request.UserAgent(),
		UserID:      GetUserID(c),
		HouseholdID: c.GetString(ContextHouseholdID),
		ActionType:  actionType,
	}
	if len(fields) > 0 {
		entry.WithFields(fields)
	}
	return entry
}
