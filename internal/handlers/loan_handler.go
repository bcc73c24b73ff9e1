package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/EduGate-2025/loan-service/internal/models"
	"github.com/EduGate-2025/loan-service/internal/services"
	"github.com/EduGate-2025/loan-service/internal/utils"
)

type LoanHandler struct {
	BaseHandler
	loanService   services.LoanService
	exportService services.ExportService
}

func NewLoanHandler(loanService services.LoanService, exportService services.ExportService, logger utils.Logger) *LoanHandler {
	return &LoanHandler{
		BaseHandler:   NewBaseHandler(logger),
		loanService:   loanService,
		exportService: exportService,
	}
}

// Submit accepts a loan application and returns its fraud score.
func (h *LoanHandler) Submit(c *gin.Context) {
	var req services.LoanSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Detail: "Invalid request body",
		})
		return
	}

	h.LogRequest(c, "Loan submission", "email", req.Email, "amount", req.LoanAmount)

	result, err := h.loanService.Submit(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.LoanSubmitResponse{
		Message:    "Loan submitted successfully",
		FraudScore: result.FraudScore,
	})
}

// List returns loan requests for the review dashboard, optionally narrowed
// by status, applicant email, and limit/offset paging.
func (h *LoanHandler) List(c *gin.Context) {
	filters, ok := h.parseListFilters(c)
	if !ok {
		return
	}

	h.LogRequest(c, "Listing loan requests", "status", filters.Status, "email", filters.Email)

	loans, err := h.loanService.List(c.Request.Context(), filters)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if loans == nil {
		loans = []*models.LoanRequest{}
	}

	c.JSON(http.StatusOK, models.LoanListResponse{Requests: loans})
}

// Get returns a single loan request.
func (h *LoanHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	h.LogRequest(c, "Getting loan request", "loan_id", id)

	loan, err := h.loanService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, loan)
}

// UpdateStatus mutates a request's review status.
func (h *LoanHandler) UpdateStatus(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req services.LoanStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Detail: "Invalid request body",
		})
		return
	}

	h.LogRequest(c, "Updating loan status", "loan_id", id, "status", req.Status)

	if err := h.loanService.UpdateStatus(c.Request.Context(), id, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.StatusUpdateResponse{
		Message: fmt.Sprintf("Status updated to %s", req.Status),
	})
}

// Export streams an xlsx report of all loan requests.
func (h *LoanHandler) Export(c *gin.Context) {
	h.LogRequest(c, "Exporting loan requests")

	data, err := h.exportService.ExportLoans(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("loan-requests-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func (h *LoanHandler) parseListFilters(c *gin.Context) (services.LoanListFilters, bool) {
	filters := services.LoanListFilters{
		Status: models.LoanStatus(c.Query("status")),
		Email:  c.Query("email"),
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Detail: "Invalid limit"})
			return filters, false
		}
		filters.Limit = limit
	}
	if raw := c.Query("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Detail: "Invalid offset"})
			return filters, false
		}
		filters.Offset = offset
	}
	return filters, true
}

func (h *BaseHandler) parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Detail: "Invalid loan id",
		})
		return 0, false
	}
	return uint(id), true
}
