package v1

import (
	"net/http"

	"cv-platform-backend/internal/delivery/http/response"
	"cv-platform-backend/internal/domain"
	"cv-platform-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	screeningUC domain.ScreeningUsecase
}

func NewCompanyHandler(protected *gin.RouterGroup, screeningUC domain.ScreeningUsecase) {
	handler := &CompanyHandler{screeningUC: screeningUC}

	companies := protected.Group("/companies")
	{
		companies.GET("/candidates", handler.BrowseCandidates)
		companies.POST("/candidates/compare", handler.CompareCandidates)
	}
}

// CompareRequest selects the candidates to place side by side.
type CompareRequest struct {
	OwnerIDs []int64 `json:"owner_ids" binding:"required"`
}

// BrowseCandidates godoc
// @Summary      Browse candidates
// @Description  List candidate profiles filtered by GPA range, major, skills and free-text search
// @Tags         companies
// @Produce      json
// @Param        gpa_min  query     number  false  "Minimum GPA"
// @Param        gpa_max  query     number  false  "Maximum GPA"
// @Param        major    query     string  false  "Major substring"
// @Param        skills   query     string  false  "Comma-separated skills"
// @Param        search   query     string  false  "Free-text search over name and summary"
// @Success      200  {object}  response.Response{data=[]domain.RankedProfile}
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /companies/candidates [get]
// @Security     BearerAuth
func (h *CompanyHandler) BrowseCandidates(c *gin.Context) {
	var criteria domain.FilterCriteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profiles, err := h.screeningUC.BrowseCandidates(c.Request.Context(), criteria)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate profiles", profiles)
}

// CompareCandidates godoc
// @Summary      Compare candidates
// @Description  Score and rank at least two selected candidates; the top scorer is flagged strongest
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        selection  body      CompareRequest  true  "Candidate owner IDs"
// @Success      200  {object}  response.Response{data=[]domain.ComparisonEntry}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /companies/candidates/compare [post]
// @Security     BearerAuth
func (h *CompanyHandler) CompareCandidates(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	entries, err := h.screeningUC.CompareCandidates(c.Request.Context(), req.OwnerIDs)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Comparison results", entries)
}
