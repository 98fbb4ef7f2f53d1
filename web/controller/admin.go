package controller

import (
	"net/http"

	"github.com/openschool/volunteer-hub/database/model"
	"github.com/openschool/volunteer-hub/logger"
	"github.com/openschool/volunteer-hub/web/middleware"
	"github.com/openschool/volunteer-hub/web/service"
	"github.com/openschool/volunteer-hub/web/session"

	"github.com/gin-gonic/gin"
)

// AdminController handles the admin dashboard and the approval workflow
// for pending teacher and student accounts.
type AdminController struct {
	userService      service.UserService
	volunteerService service.VolunteerService
}

// NewAdminController creates a new AdminController and initializes its routes.
func NewAdminController(g *gin.RouterGroup) *AdminController {
	a := &AdminController{}
	a.initRouter(g)
	return a
}

func (a *AdminController) initRouter(g *gin.RouterGroup) {
	auth := middleware.RequireRole(model.RoleAdmin)

	g.GET("/admin_dashboard", auth, a.dashboard)
	g.GET("/approve_teacher/:username", auth, a.approveUser(model.RoleTeacher))
	g.GET("/reject_teacher/:username", auth, a.rejectUser(model.RoleTeacher))
	g.GET("/approve_student/:username", auth, a.approveUser(model.RoleStudent))
	g.GET("/reject_student/:username", auth, a.rejectUser(model.RoleStudent))
}

func (a *AdminController) dashboard(c *gin.Context) {
	html(c, "admin_dashboard.html", "Admin Dashboard", gin.H{
		"users":            a.userService.AllUsers(),
		"volunteers":       a.volunteerService.All(),
		"pending_teachers": a.userService.PendingByRole(model.RoleTeacher),
		"pending_students": a.userService.PendingByRole(model.RoleStudent),
	})
}

// approveUser marks the account approved when it exists with the given
// role; an unknown username or a role mismatch is a silent no-op.
func (a *AdminController) approveUser(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("username")
		if err := a.userService.Approve(username, role); err != nil {
			logger.Error("approve account:", err)
			c.AbortWithError(http.StatusInternalServerError, err)
			return
		}

		admin := session.GetLoginUser(c)
		logger.Infof("%s approved %s account %q", admin.Username, role, username)
		redirect(c, "/admin_dashboard")
	}
}

// rejectUser deletes the account when it exists with the given role; an
// unknown username or a role mismatch is a silent no-op.
func (a *AdminController) rejectUser(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("username")
		if err := a.userService.Reject(username, role); err != nil {
			logger.Error("reject account:", err)
			c.AbortWithError(http.StatusInternalServerError, err)
			return
		}

		admin := session.GetLoginUser(c)
		logger.Infof("%s rejected %s account %q", admin.Username, role, username)
		redirect(c, "/admin_dashboard")
	}
}
