package v1

import (
	"io"
	"net/http"
	"strconv"

	"cv-platform-backend/config"
	"cv-platform-backend/internal/delivery/http/response"
	"cv-platform-backend/internal/domain"
	"cv-platform-backend/pkg/apperror"
	"cv-platform-backend/pkg/upload"

	"github.com/gin-gonic/gin"
)

type StudentHandler struct {
	profileUC domain.ProfileUsecase
	config    *config.Config
}

func NewStudentHandler(protected *gin.RouterGroup, profileUC domain.ProfileUsecase, cfg *config.Config, uploadLimiter gin.HandlerFunc) {
	handler := &StudentHandler{profileUC: profileUC, config: cfg}

	students := protected.Group("/students")
	{
		students.POST("/me/cv", uploadLimiter, handler.UploadCV)
		students.GET("/me/profile", handler.GetOverview)
		students.PUT("/me/profile", handler.UpdateProfile)
		students.GET("/browse", handler.Browse)
		students.GET("/:id/profile", handler.GetStudentProfile)
	}
}

// UploadCV godoc
// @Summary      Upload CV
// @Description  Upload a CV file (PDF or DOCX); the extracted fields replace the current profile
// @Tags         students
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "CV file"
// @Success      200  {object}  response.Response{data=domain.UploadResult}
// @Failure      400  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /students/me/cv [post]
// @Security     BearerAuth
func (h *StudentHandler) UploadCV(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("CV file is required"))
		return
	}
	if fileHeader.Size > h.config.MaxUploadBytes {
		c.Error(apperror.BadRequest("File exceeds the maximum allowed size"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.BadRequest("Could not read uploaded file"))
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, h.config.MaxUploadBytes+1))
	if err != nil {
		c.Error(apperror.BadRequest("Could not read uploaded file"))
		return
	}

	if result := upload.ValidateCVFile(fileHeader.Filename, content, h.config.MaxUploadBytes); !result.Valid {
		c.Error(apperror.BadRequest(result.Error))
		return
	}

	result, err := h.profileUC.UploadCV(c.Request.Context(), userID, content, fileHeader.Filename)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "CV processed successfully", result)
}

// GetOverview godoc
// @Summary      My profile overview
// @Description  Get the extracted profile of the logged-in student with a completeness percentage
// @Tags         students
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.ProfileOverview}
// @Failure      401  {object}  response.Response
// @Router       /students/me/profile [get]
// @Security     BearerAuth
func (h *StudentHandler) GetOverview(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	overview, err := h.profileUC.GetOverview(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile overview", overview)
}

// UpdateProfile godoc
// @Summary      Edit my profile
// @Description  Replace the logged-in student's profile with manually edited fields
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        profile  body      domain.ProfileEditRequest  true  "Profile fields"
// @Success      200  {object}  response.Response{data=domain.CandidateProfile}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /students/me/profile [put]
// @Security     BearerAuth
func (h *StudentHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	var req domain.ProfileEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile, err := h.profileUC.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", profile)
}

// Browse godoc
// @Summary      Browse other students
// @Description  List profiles of other students, excluding the viewer's own
// @Tags         students
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.RankedProfile}
// @Failure      401  {object}  response.Response
// @Router       /students/browse [get]
// @Security     BearerAuth
func (h *StudentHandler) Browse(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	profiles, err := h.profileUC.BrowseStudents(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Student profiles", profiles)
}

// GetStudentProfile godoc
// @Summary      View a student profile
// @Description  Get a specific student's extracted profile by owner id
// @Tags         students
// @Produce      json
// @Param        id   path      int  true  "Student user ID"
// @Success      200  {object}  response.Response{data=domain.RankedProfile}
// @Failure      404  {object}  response.Response
// @Router       /students/{id}/profile [get]
// @Security     BearerAuth
func (h *StudentHandler) GetStudentProfile(c *gin.Context) {
	ownerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid student id"))
		return
	}

	profile, err := h.profileUC.GetProfile(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Student profile", profile)
}
