package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	g "maragu.dev/gomponents"

	"github.com/yanqian/travel-planner/internal/domain/destination"
	"github.com/yanqian/travel-planner/internal/domain/export"
	"github.com/yanqian/travel-planner/internal/domain/notify"
	"github.com/yanqian/travel-planner/internal/domain/planner"
	"github.com/yanqian/travel-planner/internal/interface/http/view"
	apperrors "github.com/yanqian/travel-planner/pkg/errors"
	"github.com/yanqian/travel-planner/pkg/util"
)

// PageOptions holds presentation settings shared by the page handlers.
type PageOptions struct {
	CurrencySymbol string
	PublicBaseURL  string
	Location       *time.Location
}

// Handler wires the HTTP transport to domain services.
type Handler struct {
	plannerSvc     planner.Service
	destinationSvc destination.Service
	exportSvc      export.Service
	opts           PageOptions
	now            func() time.Time
	logger         *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(plannerSvc planner.Service, destinationSvc destination.Service, exportSvc export.Service, opts PageOptions, logger *slog.Logger) *Handler {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	opts.PublicBaseURL = strings.TrimRight(opts.PublicBaseURL, "/")
	return &Handler{
		plannerSvc:     plannerSvc,
		destinationSvc: destinationSvc,
		exportSvc:      exportSvc,
		opts:           opts,
		now:            util.NowUTC,
		logger:         logger.With("component", "http.handler"),
	}
}

// Landing renders the home page. Share links prefill the form from the query.
func (h *Handler) Landing(c *gin.Context) {
	var form planner.Request
	_ = c.ShouldBindQuery(&form)
	renderHTML(c, http.StatusOK, view.Landing(h.landingData(c.Request.Context(), form)))
}

// SubmitPlan validates the planner form and renders the plan.
func (h *Handler) SubmitPlan(c *gin.Context) {
	var form planner.Request
	if err := c.ShouldBind(&form); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "Could not read the form", err))
		return
	}

	plan, err := h.plannerSvc.Plan(c.Request.Context(), form)
	if err != nil {
		h.renderFailure(c, form, err)
		return
	}
	h.renderPlan(c, form, plan)
}

// DestinationDetail opens the destination modal, or tells the user the
// destination has no details yet.
func (h *Handler) DestinationDetail(c *gin.Context) {
	detail, err := h.destinationSvc.Lookup(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.renderLookupFailure(c, err)
		return
	}
	if isFragmentRequest(c) {
		renderHTML(c, http.StatusOK, view.DestinationModal(detail))
		return
	}
	data := h.landingData(c.Request.Context(), planner.Request{})
	data.Modal = &detail
	renderHTML(c, http.StatusOK, view.Landing(data))
}

// QuickPlan generates a plan for a destination with the fixed defaults.
func (h *Handler) QuickPlan(c *gin.Context) {
	detail, err := h.destinationSvc.Lookup(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.renderLookupFailure(c, err)
		return
	}

	plan, err := h.plannerSvc.QuickPlan(c.Request.Context(), detail.Name)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	form := planner.Request{Destination: detail.Name}
	h.renderPlan(c, form, plan)
}

// ExportPDF rebuilds the plan described by the query and returns it as a PDF,
// or redirects to the uploaded copy.
func (h *Handler) ExportPDF(c *gin.Context) {
	var form planner.Request
	_ = c.ShouldBindQuery(&form)

	plan, err := h.rebuild(c.Request.Context(), form)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	doc, err := h.exportSvc.PlanPDF(c.Request.Context(), plan, h.shareURL(form))
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	if doc.URL != "" {
		c.Redirect(http.StatusSeeOther, doc.URL)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
	c.Data(http.StatusOK, "application/pdf", doc.Data)
}

// SharePNG returns a QR code that opens the planner prefilled with the trip.
func (h *Handler) SharePNG(c *gin.Context) {
	var form planner.Request
	_ = c.ShouldBindQuery(&form)

	png, err := h.exportSvc.ShareQR(c.Request.Context(), h.shareURL(form))
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "image/png", png)
}

// Healthz reports liveness.
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// rebuild regenerates a plan from its query. Requests without dates come from
// destination quick plans.
func (h *Handler) rebuild(ctx context.Context, form planner.Request) (planner.TripPlan, error) {
	if strings.TrimSpace(form.StartDate) == "" && strings.TrimSpace(form.EndDate) == "" && strings.TrimSpace(form.Destination) != "" {
		return h.plannerSvc.QuickPlan(ctx, strings.TrimSpace(form.Destination))
	}
	return h.plannerSvc.Plan(ctx, form)
}

func (h *Handler) shareURL(form planner.Request) string {
	if strings.TrimSpace(form.Destination) == "" {
		return ""
	}
	return h.opts.PublicBaseURL + "/?" + form.Values().Encode() + "#planner"
}

func (h *Handler) renderPlan(c *gin.Context, form planner.Request, plan planner.TripPlan) {
	planView := &view.PlanView{Plan: plan, Query: form.Values().Encode()}
	if isFragmentRequest(c) {
		renderHTML(c, http.StatusOK, g.Group([]g.Node{
			view.PlanResults(planView.Plan, view.PlanOptions{Currency: h.opts.CurrencySymbol, Query: planView.Query}),
			view.Toast(notify.PlanGenerated),
		}))
		return
	}
	data := h.landingData(c.Request.Context(), form)
	data.Plan = planView
	data.Notifications = append(data.Notifications, notify.PlanGenerated)
	renderHTML(c, http.StatusOK, view.Landing(data))
}

// renderFailure shows validation failures as an error toast and leaves the
// results region untouched.
func (h *Handler) renderFailure(c *gin.Context, form planner.Request, err error) {
	if !apperrors.IsCode(err, apperrors.CodeInvalidInput) {
		abortWithError(c, fromDomainError(err))
		return
	}
	toast := notify.New(apperrors.MessageOf(err, planner.MsgMissingFields), notify.Error)
	if isFragmentRequest(c) {
		renderHTML(c, http.StatusUnprocessableEntity, view.Toast(toast))
		return
	}
	data := h.landingData(c.Request.Context(), form)
	data.Notifications = append(data.Notifications, toast)
	renderHTML(c, http.StatusUnprocessableEntity, view.Landing(data))
}

func (h *Handler) renderLookupFailure(c *gin.Context, err error) {
	if !apperrors.IsCode(err, apperrors.CodeNotFound) {
		abortWithError(c, fromDomainError(err))
		return
	}
	toast := notify.New(apperrors.MessageOf(err, destination.MsgComingSoon), notify.Info)
	if isFragmentRequest(c) {
		renderHTML(c, http.StatusNotFound, view.Toast(toast))
		return
	}
	data := h.landingData(c.Request.Context(), planner.Request{})
	data.Notifications = append(data.Notifications, toast)
	renderHTML(c, http.StatusNotFound, view.Landing(data))
}

func (h *Handler) landingData(ctx context.Context, form planner.Request) view.LandingData {
	trending, err := h.plannerSvc.Trending(ctx)
	if err != nil {
		h.logger.Warn("trending lookup failed", "error", err)
		trending = nil
	}
	return view.LandingData{
		Currency: h.opts.CurrencySymbol,
		Today:    util.StartOfDay(h.now(), h.opts.Location).Format(planner.DateLayout),
		Featured: h.destinationSvc.Featured(ctx),
		Trending: trending,
		Form:     form,
	}
}

func isFragmentRequest(c *gin.Context) bool {
	return c.GetHeader(headerRequestedBy) != ""
}

func renderHTML(c *gin.Context, status int, node g.Node) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := node.Render(c.Writer); err != nil {
		_ = c.Error(err)
	}
}
