package v1

import (
	"net/http"
	"strconv"

	"cv-platform-backend/internal/delivery/http/response"
	"cv-platform-backend/internal/domain"
	"cv-platform-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUC domain.AdminUsecase
}

func NewAdminHandler(protected *gin.RouterGroup, adminUC domain.AdminUsecase) {
	handler := &AdminHandler{adminUC: adminUC}

	admin := protected.Group("/admin")
	{
		admin.GET("/stats", handler.GetStats)
		admin.GET("/users", handler.ListUsers)
		admin.GET("/users/:id", handler.GetUserDetail)
		admin.PUT("/users/:id", handler.UpdateUser)
		admin.DELETE("/users/:id", handler.DeleteUser)
		admin.PUT("/users/:id/profile", handler.UpdateProfile)
		admin.DELETE("/users/:id/profile", handler.DeleteProfile)
	}
}

func parseUserID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid user id"))
		return 0, false
	}
	return id, true
}

// GetStats godoc
// @Summary      Platform analytics
// @Description  Role counts, top skills and majors, average GPA and GPA distribution
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.AdminStats}
// @Failure      403  {object}  response.Response
// @Router       /admin/stats [get]
// @Security     BearerAuth
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.adminUC.GetStats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Platform statistics", stats)
}

// ListUsers godoc
// @Summary      List users
// @Description  List all accounts flagged with whether a CV profile exists
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.AdminUserEntry}
// @Failure      403  {object}  response.Response
// @Router       /admin/users [get]
// @Security     BearerAuth
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminUC.ListUsers(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User list", users)
}

// GetUserDetail godoc
// @Summary      User detail
// @Description  Get an account with its CV profile, if any
// @Tags         admin
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  response.Response{data=domain.AdminUserDetail}
// @Failure      404  {object}  response.Response
// @Router       /admin/users/{id} [get]
// @Security     BearerAuth
func (h *AdminHandler) GetUserDetail(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	detail, err := h.adminUC.GetUserDetail(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User detail", detail)
}

// UpdateUser godoc
// @Summary      Update user
// @Description  Edit account fields; omitted fields are left unchanged
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      int                            true  "User ID"
// @Param        user  body      domain.AdminUpdateUserRequest  true  "Fields to update"
// @Success      200  {object}  response.Response{data=domain.User}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/users/{id} [put]
// @Security     BearerAuth
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	var req domain.AdminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, err := h.adminUC.UpdateUser(c.Request.Context(), userID, req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User updated", user)
}

// DeleteUser godoc
// @Summary      Delete user
// @Description  Remove an account and its CV profile
// @Tags         admin
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/users/{id} [delete]
// @Security     BearerAuth
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	if err := h.adminUC.DeleteUser(c.Request.Context(), userID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User deleted", nil)
}

// UpdateProfile godoc
// @Summary      Update a user's CV profile
// @Description  Replace a user's CV profile with the given fields
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id       path      int                        true  "User ID"
// @Param        profile  body      domain.ProfileEditRequest  true  "Profile fields"
// @Success      200  {object}  response.Response{data=domain.CandidateProfile}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/users/{id}/profile [put]
// @Security     BearerAuth
func (h *AdminHandler) UpdateProfile(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	var req domain.ProfileEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile, err := h.adminUC.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", profile)
}

// DeleteProfile godoc
// @Summary      Delete a user's CV profile
// @Description  Remove the CV profile for an account, keeping the account
// @Tags         admin
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/users/{id}/profile [delete]
// @Security     BearerAuth
func (h *AdminHandler) DeleteProfile(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	if err := h.adminUC.DeleteProfile(c.Request.Context(), userID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile deleted", nil)
}
