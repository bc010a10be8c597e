package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pantry-service/internal/domain/dto"
	"github.com/guttosm/pantry-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuditLog(t *testing.T) {
	tests := []struct {
		name          string
		actionType    string
		message       string
		fields        map[string]interface{}
		claims        *dto.Claims
		useNilLogging bool
		setupMocks    func(*MockLoggingService)
	}{
		{
			name:       "audit log with identity",
			actionType: "move",
			message:    "Inventory transfer",
			fields:     map[string]interface{}{"group_key": "flour|g"},
			claims:     &dto.Claims{UserID: "alice", HouseholdID: "home"},
			setupMocks: func(m *MockLoggingService) {
				m.On("CreateLog", mock.Anything, mock.MatchedBy(func(entry *model.LogEntry) bool {
					return entry.ActionType == "move" &&
						entry.Message == "Inventory transfer" &&
						entry.UserID == "alice" &&
						entry.HouseholdID == "home" &&
						entry.Fields["group_key"] == "flour|g"
				})).Return(nil)
			},
		},
		{
			name:       "audit log without identity",
			actionType: "eat",
			message:    "Eat",
			fields:     map[string]interface{}{"items": 1},
			setupMocks: func(m *MockLoggingService) {
				m.On("CreateLog", mock.Anything, mock.MatchedBy(func(entry *model.LogEntry) bool {
					return entry.ActionType == "eat" && entry.UserID == "" && entry.Level == "info"
				})).Return(nil)
			},
		},
		{
			name:          "audit log with nil logging service",
			actionType:    "cook",
			message:       "Cook",
			useNilLogging: true,
			setupMocks:    func(*MockLoggingService) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			router := gin.New()
			mockLoggingService := new(MockLoggingService)
			tt.setupMocks(mockLoggingService)

			router.Use(RequestID())
			router.GET("/test", func(c *gin.Context) {
				if tt.claims != nil {
					setIdentity(c, tt.claims)
				}
				if tt.useNilLogging {
					AuditLog(nil, c, tt.actionType, tt.message, tt.fields)
				} else {
					AuditLog(mockLoggingService, c, tt.actionType, tt.message, tt.fields)
				}
				c.JSON(http.StatusOK, gin.H{"status": "ok"})
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Eventually(t, func() bool {
				return mockLoggingService.AssertExpectations(new(testing.T))
			}, time.Second, 10*time.Millisecond)
			mockLoggingService.AssertExpectations(t)
		})
	}
}

func TestAuditLogError(t *testing.T) {
	mockLoggingService := new(MockLoggingService)
	mockLoggingService.On("CreateLog", mock.Anything, mock.MatchedBy(func(entry *model.LogEntry) bool {
		return entry.ActionType == "cook" &&
			entry.Level == "error" &&
			entry.Error == assert.AnError.Error() &&
			entry.UserID == "alice"
	})).Return(nil)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.POST("/test", func(c *gin.Context) {
		setIdentity(c, &dto.Claims{UserID: "alice"})
		AuditLogError(mockLoggingService, c, "cook", "Cook failed", assert.AnError, nil)
		c.Status(http.StatusConflict)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/test", nil))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Eventually(t, func() bool {
		return mockLoggingService.AssertExpectations(new(testing.T))
	}, time.Second, 10*time.Millisecond)
}

func TestAuditLog_CopiesFields(t *testing.T) {
	entries := make(chan *model.LogEntry, 1)
	svc := new(MockLoggingService)
	svc.On("CreateLog", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { entries <- args.Get(1).(*model.LogEntry) }).
		Return(nil)

	gin.SetMode(gin.TestMode)
	fields := map[string]interface{}{"group_key": "flour|g"}
	router := gin.New()
	router.POST("/api/inventory/transfer", func(c *gin.Context) {
		AuditLog(svc, c, "move", "Transfer applied", fields)
		AuditLog(nil, c, "move", "Transfer applied", nil)
		c.Status(http.StatusOK)
	})
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/inventory/transfer", nil))

	entry := <-entries
	fields["group_key"] = "sugar|g"
	assert.Equal(t, "flour|g", entry.Fields["group_key"])
}
