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

// SubmitForm represents a volunteer activity submission. Hours stays a
// string and is stored as submitted.
type SubmitForm struct {
	Activity    string `form:"activity" binding:"required"`
	Hours       string `form:"hours" binding:"required"`
	Description string `form:"description" binding:"required"`
}

// StudentController handles the student dashboard and activity
// submission.
type StudentController struct {
	volunteerService service.VolunteerService
}

// NewStudentController creates a new StudentController and initializes its routes.
func NewStudentController(g *gin.RouterGroup) *StudentController {
	a := &StudentController{}
	a.initRouter(g)
	return a
}

func (a *StudentController) initRouter(g *gin.RouterGroup) {
	auth := middleware.RequireRole(model.RoleStudent)

	g.GET("/student_dashboard", auth, a.dashboard)
	g.POST("/student_dashboard", auth, a.submit)
}

func (a *StudentController) dashboard(c *gin.Context) {
	a.render(c, "")
}

func (a *StudentController) submit(c *gin.Context) {
	user := session.GetLoginUser(c)

	var form SubmitForm
	if err := c.ShouldBind(&form); err != nil {
		a.render(c, "Activity, hours and description are all required")
		return
	}

	record, err := a.volunteerService.Submit(user.Username, form.Activity, form.Hours, form.Description)
	if err != nil {
		logger.Error("submit volunteer record:", err)
		c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	logger.Infof("%s submitted volunteer record %s (%s)", user.Username, record.Id, record.Activity)
	redirect(c, "/student_dashboard")
}

func (a *StudentController) render(c *gin.Context, errMsg string) {
	user := session.GetLoginUser(c)
	pending, approved := a.volunteerService.ForStudent(user.Username)

	html(c, "student_dashboard.html", "Student Dashboard", gin.H{
		"username":            user.Username,
		"pending_volunteers":  pending,
		"approved_volunteers": approved,
		"error":               errMsg,
	})
}
