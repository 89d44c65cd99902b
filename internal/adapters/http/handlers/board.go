package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quoteboard/internal/adapters/http/dto"
	"github.com/jsamuelsen/quoteboard/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quoteboard/internal/app"
	"github.com/jsamuelsen/quoteboard/internal/domain"
	"github.com/jsamuelsen/quoteboard/internal/platform/config"
)

// BoardHandler handles the quote board HTTP endpoints.
type BoardHandler struct {
	service *app.BoardService
	auth    *config.AuthConfig
}

// NewBoardHandler creates a new board handler.
func NewBoardHandler(service *app.BoardService, auth *config.AuthConfig) *BoardHandler {
	return &BoardHandler{
		service: service,
		auth:    auth,
	}
}

// CreateQuoteRequest is the request body for submitting a quote.
type CreateQuoteRequest struct {
	// Text is the quote itself.
	Text string `json:"text" validate:"required,notempty,max=500"`

	// Link optionally points at the origin of the quote. Must be an
	// absolute URI when present.
	Link string `json:"link" validate:"omitempty,max=500"`
}

// VoteRequest is the request body for casting a vote. Value is a
// pointer so that an explicit zero (vote withdrawal) survives binding.
type VoteRequest struct {
	Value *int `json:"value" validate:"required,oneof=-1 0 1"`
}

// QuoteResponse is the HTTP response structure for a quote.
type QuoteResponse struct {
	ID          int64  `json:"id"`
	Text        string `json:"text"`
	Link        string `json:"link,omitempty"`
	CreatorID   string `json:"creatorId"`
	Votes       int64  `json:"votes"`
	CreatedDate string `json:"createdDate"`
	CreatedAt   string `json:"createdAt"`
}

// VoteResponse reports the caller's current vote on a quote.
type VoteResponse struct {
	QuoteID int64 `json:"quoteId"`
	Value   int   `json:"value"`
}

// ProgressResponse reports the caller's engagement milestones.
type ProgressResponse struct {
	SignedIn      bool `json:"signedIn"`
	HasVoted      bool `json:"hasVoted"`
	HasAddedQuote bool `json:"hasAddedQuote"`
	Bits          int  `json:"bits"`
}

// RankedPageResponse is a page of the ranked listing.
type RankedPageResponse struct {
	Items   []*QuoteResponse `json:"items"`
	Page    int              `json:"page"`
	HasMore bool             `json:"hasMore"`
}

// OverviewResponse is the landing-page aggregate.
type OverviewResponse struct {
	TopQuotes []*QuoteResponse `json:"topQuotes"`
	HasMore   bool             `json:"hasMore"`
	Progress  ProgressResponse `json:"progress"`
}

// toQuoteResponse converts a domain Quote to an HTTP response.
func toQuoteResponse(q *domain.Quote) *QuoteResponse {
	return &QuoteResponse{
		ID:          q.ID,
		Text:        q.Text,
		Link:        q.OriginLink,
		CreatorID:   q.CreatorID,
		Votes:       q.VoteSum,
		CreatedDate: domain.CreationOrderDate(q.CreationOrder),
		CreatedAt:   domain.CreationOrderTimestamp(q.CreationOrder),
	}
}

func toQuoteResponses(quotes []*domain.Quote) []*QuoteResponse {
	items := make([]*QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		items = append(items, toQuoteResponse(q))
	}

	return items
}

func toProgressResponse(p domain.Progress, signedIn bool) ProgressResponse {
	return ProgressResponse{
		SignedIn:      signedIn,
		HasVoted:      p.HasVoted,
		HasAddedQuote: p.HasAddedQuote,
		Bits:          p.Bits(signedIn),
	}
}

// CreateQuote handles POST /api/v1/quotes
// Submits a new quote. The submitter's up-vote is applied automatically.
//
// @Summary Submit a quote
// @Description Creates a quote and casts the submitter's initial up-vote
// @Tags quotes
// @Accept json
// @Produce json
// @Success 201 {object} QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/v1/quotes [post]
func (h *BoardHandler) CreateQuote(c *gin.Context) {
	var req CreateQuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		respondBindError(c, err)
		return
	}

	identity := middleware.GetIdentity(c)

	quote, err := h.service.AddQuote(c.Request.Context(), identity.Subject, req.Text, req.Link)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toQuoteResponse(quote))
}

// GetQuote handles GET /api/v1/quotes/:id
//
// @Summary Get a quote by ID
// @Tags quotes
// @Produce json
// @Param id path int true "Quote ID"
// @Success 200 {object} QuoteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/quotes/{id} [get]
func (h *BoardHandler) GetQuote(c *gin.Context) {
	id, ok := quoteID(c)
	if !ok {
		return
	}

	quote, err := h.service.GetQuote(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toQuoteResponse(quote))
}

// DeleteQuote handles DELETE /api/v1/quotes/:id
// Removal is idempotent: deleting a quote that is already gone, or one
// the caller may not remove, still returns 204.
//
// @Summary Delete a quote
// @Tags quotes
// @Param id path int true "Quote ID"
// @Success 204
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/v1/quotes/{id} [delete]
func (h *BoardHandler) DeleteQuote(c *gin.Context) {
	id, ok := quoteID(c)
	if !ok {
		return
	}

	identity := middleware.GetIdentity(c)

	err := h.service.DeleteQuote(c.Request.Context(), identity.Requester(h.auth), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListNewest handles GET /api/v1/quotes
// Returns quotes in reverse submission order with an opaque cursor.
//
// @Summary List newest quotes
// @Tags quotes
// @Produce json
// @Param cursor query string false "Opaque cursor from a previous response"
// @Success 200 {object} dto.PaginatedResponse[QuoteResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/quotes [get]
func (h *BoardHandler) ListNewest(c *gin.Context) {
	var req dto.PaginationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBadRequest(c, "invalid query parameters")
		return
	}

	watermark := ""

	cursor, err := req.DecodeCursor()

	switch {
	case err == nil:
		watermark = cursor.Value
	case errors.Is(err, dto.ErrNoCursor):
		// First page.
	default:
		respondBadRequest(c, "invalid cursor")
		return
	}

	quotes, next, err := h.service.ListNewest(c.Request.Context(), watermark)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	resp := &dto.PaginatedResponse[*QuoteResponse]{
		Items:   toQuoteResponses(quotes),
		HasMore: next != "",
	}
	if next != "" {
		resp.NextCursor = dto.EncodeCursor(dto.NewCursor("creation_order", next, ""))
	}

	c.JSON(http.StatusOK, resp)
}

// ListRanked handles GET /api/v1/quotes/ranked
// Returns a numbered page of the ranked listing.
//
// @Summary List ranked quotes
// @Tags quotes
// @Produce json
// @Param page query int false "Page number, starting at 1"
// @Success 200 {object} RankedPageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/quotes/ranked [get]
func (h *BoardHandler) ListRanked(c *gin.Context) {
	page := 1

	if raw := c.Query("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondBadRequest(c, "page must be an integer")
			return
		}

		page = parsed
	}

	quotes, more, err := h.service.ListRanked(c.Request.Context(), page)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, &RankedPageResponse{
		Items:   toQuoteResponses(quotes),
		Page:    page,
		HasMore: more,
	})
}

// CastVote handles PUT /api/v1/quotes/:id/vote
// Sets the caller's vote on a quote. Repeating the same value is a no-op.
//
// @Summary Cast or change a vote
// @Tags votes
// @Accept json
// @Param id path int true "Quote ID"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/quotes/{id}/vote [put]
func (h *BoardHandler) CastVote(c *gin.Context) {
	id, ok := quoteID(c)
	if !ok {
		return
	}

	var req VoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		respondBindError(c, err)
		return
	}

	identity := middleware.GetIdentity(c)

	err := h.service.CastVote(c.Request.Context(), identity.Subject, id, *req.Value)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetUserVote handles GET /api/v1/quotes/:id/vote
// Returns the caller's current vote on a quote. Anonymous callers
// always see zero.
//
// @Summary Get the caller's vote
// @Tags votes
// @Produce json
// @Param id path int true "Quote ID"
// @Success 200 {object} VoteResponse
// @Router /api/v1/quotes/{id}/vote [get]
func (h *BoardHandler) GetUserVote(c *gin.Context) {
	id, ok := quoteID(c)
	if !ok {
		return
	}

	identity := middleware.GetIdentity(c)

	value, err := h.service.GetUserVote(c.Request.Context(), identity.Subject, id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, &VoteResponse{QuoteID: id, Value: value})
}

// GetProgress handles GET /api/v1/me/progress
// Reports the caller's engagement milestones as flags and as a combined
// bitfield.
//
// @Summary Get the caller's progress
// @Tags me
// @Produce json
// @Success 200 {object} ProgressResponse
// @Router /api/v1/me/progress [get]
func (h *BoardHandler) GetProgress(c *gin.Context) {
	identity := middleware.GetIdentity(c)

	progress, err := h.service.GetProgress(c.Request.Context(), identity.Subject)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	resp := toProgressResponse(progress, identity.SignedIn())
	c.JSON(http.StatusOK, resp)
}

// GetOverview handles GET /api/v1/overview
// Returns the top ranked page together with the caller's progress.
//
// @Summary Get the landing-page overview
// @Tags overview
// @Produce json
// @Success 200 {object} OverviewResponse
// @Router /api/v1/overview [get]
func (h *BoardHandler) GetOverview(c *gin.Context) {
	identity := middleware.GetIdentity(c)

	overview, err := h.service.GetOverview(c.Request.Context(), identity.Subject)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, &OverviewResponse{
		TopQuotes: toQuoteResponses(overview.TopQuotes),
		HasMore:   overview.More,
		Progress:  toProgressResponse(overview.Progress, identity.SignedIn()),
	})
}

// RegisterBoardRoutes registers board routes on the given router group.
// Mutating routes require a signed-in caller.
func (h *BoardHandler) RegisterBoardRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	quotes.GET("", h.ListNewest)
	quotes.GET("/ranked", h.ListRanked)
	quotes.GET("/:id", h.GetQuote)
	quotes.GET("/:id/vote", h.GetUserVote)

	authed := quotes.Group("", middleware.RequireUser(h.auth))
	authed.POST("", h.CreateQuote)
	authed.DELETE("/:id", h.DeleteQuote)
	authed.PUT("/:id/vote", h.CastVote)

	rg.GET("/me/progress", h.GetProgress)
	rg.GET("/overview", h.GetOverview)
}

// quoteID parses the :id path parameter, responding with 400 on failure.
func quoteID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondBadRequest(c, "quote ID must be a positive integer")
		return 0, false
	}

	return id, true
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
		dto.ErrorCodeBadRequest,
		message,
	).WithTraceID(dto.GetTraceID(c)))
}

func respondBindError(c *gin.Context, err error) {
	if dto.IsValidationError(err) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponseWithDetails(
			dto.ErrorCodeValidation,
			"request validation failed",
			dto.ValidationErrors(err),
		).WithTraceID(dto.GetTraceID(c)))
		return
	}

	respondBadRequest(c, "malformed request body")
}
