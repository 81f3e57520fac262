package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hungerguard/internal/domain"
	"hungerguard/internal/service"
)

// GeneratePlanRequest is the body for POST /generate_plan.
type GeneratePlanRequest struct {
	RawReport     string `json:"raw_report" binding:"required"`
	PriorityFocus string `json:"priority_focus"`
}

// PlanHandler handles allocation plan endpoints.
type PlanHandler struct {
	planService service.PlanService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(planService service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// GeneratePlan handles POST /generate_plan
// @Summary Generate a food allocation plan
// @Description Analyzes a free-text surplus report and produces an allocation plan with estimated community impact. Falls back to a basic plan if analysis fails.
// @Tags plans
// @Accept json
// @Produce json
// @Success 200 {object} domain.PlanResponse "Allocation plan with impact estimates"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /generate_plan [post]
func (h *PlanHandler) GeneratePlan(c *gin.Context) {
	var req GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	focus := domain.PriorityFocus(req.PriorityFocus)
	if focus == "" {
		focus = domain.FocusBalanced
	}

	resp := h.planService.GeneratePlan(c.Request.Context(), req.RawReport, focus)
	c.JSON(http.StatusOK, resp)
}
