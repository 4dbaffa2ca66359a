package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/faceverify/internal/repository"
	"github.com/example/faceverify/internal/verify"
)

// MaxUploadSize bounds the request body; base64 roughly inflates images
// by a third, so this allows photos of a few megabytes.
const MaxUploadSize = 8 << 20

// ServiceVersion is reported by the health endpoint.
const ServiceVersion = "1.0.0"

// VerificationService is the slice of the verify service used by the
// HTTP layer.
type VerificationService interface {
	Enroll(ctx context.Context, empID, encoded string) verify.EnrollmentOutcome
	Verify(ctx context.Context, empID, encoded string) (string, verify.VerificationOutcome)
	Status(ctx context.Context, empID string) (bool, error)
	GetResult(ctx context.Context, requestID string) (*repository.VerificationLog, error)
	GetMetricsSummary(ctx context.Context) (*verify.MetricsSummary, error)
}

type faceRequest struct {
	EmpID string `json:"emp_id"`
	Image string `json:"image"`
}

// RegisterRoutes wires the HTTP handlers to the Gin router. The admin
// routes are guarded by authMiddleware; the face endpoints are public.
func RegisterRoutes(router *gin.Engine, svc VerificationService, authMiddleware gin.HandlerFunc) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "face-verification",
			"version": ServiceVersion,
		})
	})

	router.POST("/register", func(c *gin.Context) {
		req, ok := bindFaceRequest(c)
		if !ok {
			return
		}

		outcome := svc.Enroll(c.Request.Context(), req.EmpID, req.Image)
		status := http.StatusOK
		if !outcome.Success && outcome.Message == verify.MsgInvalidImage {
			status = http.StatusBadRequest
		}
		c.JSON(status, outcome)
	})

	verifyHandler := func(c *gin.Context) {
		req, ok := bindFaceRequest(c)
		if !ok {
			return
		}

		requestID, outcome := svc.Verify(c.Request.Context(), req.EmpID, req.Image)
		status := http.StatusOK
		if !outcome.Success && outcome.Message == verify.MsgInvalidImage {
			status = http.StatusBadRequest
		}

		body := gin.H{
			"success":    outcome.Success,
			"match":      outcome.Match,
			"distance":   outcome.Distance,
			"confidence": outcome.Confidence,
			"message":    outcome.Message,
		}
		if requestID != "" {
			body["request_id"] = requestID
		}
		c.JSON(status, body)
	}

	router.POST("/verify", verifyHandler)
	// No liveness check is performed; the route exists for client compatibility.
	router.POST("/live-verify", verifyHandler)

	router.GET("/status/:emp_id", func(c *gin.Context) {
		empID := c.Param("emp_id")
		registered, err := svc.Status(c.Request.Context(), empID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "status lookup failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":         true,
			"emp_id":          empID,
			"face_registered": registered,
		})
	})

	admin := router.Group("/", authMiddleware)

	admin.GET("/result/:id", func(c *gin.Context) {
		requestID := c.Param("id")
		log, err := svc.GetResult(c.Request.Context(), requestID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "result not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"request_id": log.RequestID,
			"emp_id":     log.EmpID,
			"match":      log.Matched,
			"distance":   log.Distance,
			"confidence": log.Confidence,
			"success":    log.Success,
			"details":    log.Details,
			"created_at": log.CreatedAt,
		})
	})

	admin.GET("/metrics/summary", func(c *gin.Context) {
		summary, err := svc.GetMetricsSummary(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to aggregate metrics"})
			return
		}
		c.JSON(http.StatusOK, summary)
	})
}

func bindFaceRequest(c *gin.Context) (*faceRequest, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxUploadSize)

	var req faceRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.EmpID == "" || req.Image == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "emp_id and image are required",
		})
		return nil, false
	}
	return &req, true
}
