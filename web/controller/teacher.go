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

// TeacherController handles the teacher dashboard and the decision on
// submitted volunteer records.
type TeacherController struct {
	volunteerService service.VolunteerService
}

// NewTeacherController creates a new TeacherController and initializes its routes.
func NewTeacherController(g *gin.RouterGroup) *TeacherController {
	a := &TeacherController{}
	a.initRouter(g)
	return a
}

func (a *TeacherController) initRouter(g *gin.RouterGroup) {
	auth := middleware.RequireRole(model.RoleTeacher)

	g.GET("/teacher_dashboard", auth, a.dashboard)
	g.GET("/approve_volunteer/:id", auth, a.approve)
	g.GET("/reject_volunteer/:id", auth, a.reject)
}

func (a *TeacherController) dashboard(c *gin.Context) {
	html(c, "teacher_dashboard.html", "Teacher Dashboard", gin.H{
		"pending_volunteers": a.volunteerService.Pending(),
		"all_volunteers":     a.volunteerService.All(),
	})
}

func (a *TeacherController) approve(c *gin.Context) {
	a.decide(c, model.StatusApproved)
}

func (a *TeacherController) reject(c *gin.Context) {
	a.decide(c, model.StatusRejected)
}

// decide sets the record status and returns to the dashboard. An
// unknown record id changes nothing, the redirect happens either way.
func (a *TeacherController) decide(c *gin.Context, status string) {
	id := c.Param("id")
	if err := a.volunteerService.SetStatus(id, status); err != nil {
		logger.Error("update volunteer record:", err)
		c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	user := session.GetLoginUser(c)
	logger.Infof("%s set volunteer record %s to %s", user.Username, id, status)
	redirect(c, "/teacher_dashboard")
}
