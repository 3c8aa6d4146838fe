package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/travel-planner/internal/domain/planner"
)

type budgetTierResponse struct {
	Tier  planner.BudgetTier    `json:"tier"`
	Daily int64                 `json:"dailyPerTraveler"`
	Costs planner.CostBreakdown `json:"costs"`
}

type catalogResponse struct {
	Budgets      []budgetTierResponse `json:"budgets"`
	Interests    []planner.Interest   `json:"interests"`
	Destinations []string             `json:"destinations"`
	MaxDays      int                  `json:"maxItineraryDays"`
}

// CreatePlan is the JSON flavour of the planner form.
func (h *Handler) CreatePlan(c *gin.Context) {
	var req planner.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "request body must be a trip request", err))
		return
	}

	plan, err := h.plannerSvc.Plan(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, plan)
}

// Trending returns the most planned destinations.
func (h *Handler) Trending(c *gin.Context) {
	items, err := h.plannerSvc.Trending(c.Request.Context())
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "trending_failed", "could not load trending destinations", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"destinations": items})
}

// Destination returns the detail panel data for a destination code.
func (h *Handler) Destination(c *gin.Context) {
	detail, err := h.destinationSvc.Lookup(c.Request.Context(), c.Param("code"))
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Catalog lists the enumerations the planner accepts.
func (h *Handler) Catalog(c *gin.Context) {
	catalog := h.plannerSvc.Catalog()
	resp := catalogResponse{
		Interests:    planner.Interests,
		Destinations: catalog.Destinations(),
		MaxDays:      planner.MaxItineraryDays,
	}
	for _, tier := range planner.BudgetTiers {
		costs, _ := catalog.Budget(tier)
		resp.Budgets = append(resp.Budgets, budgetTierResponse{Tier: tier, Daily: costs.Daily(), Costs: costs})
	}
	c.JSON(http.StatusOK, resp)
}
