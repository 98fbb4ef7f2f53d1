// Package controller provides the HTTP handlers of the volunteer-hub
// panel: login/signup, the dashboard dispatcher and the three
// role-specific dashboards.
package controller

import (
	"errors"
	"fmt"
	"html/template"

	"github.com/openschool/volunteer-hub/database/model"
	"github.com/openschool/volunteer-hub/logger"
	"github.com/openschool/volunteer-hub/web/service"
	"github.com/openschool/volunteer-hub/web/session"

	"github.com/gin-gonic/gin"
)

// LoginForm represents the login request.
type LoginForm struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// SignupForm represents the signup request.
type SignupForm struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
	Role     string `json:"role" form:"role"`
}

// IndexController handles the landing page, login, signup, logout and
// the role-based dashboard dispatcher.
type IndexController struct {
	userService service.UserService
}

// NewIndexController creates a new IndexController and initializes its routes.
func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.home)
	g.GET("/login/:role", a.loginPage)
	g.POST("/login/:role", a.login)
	g.GET("/signup", a.signupPage)
	g.POST("/signup", a.signup)
	g.GET("/logout", a.logout)
	g.GET("/dashboard", a.dashboard)
}

func (a *IndexController) home(c *gin.Context) {
	html(c, "home.html", "Volunteer Hub", nil)
}

func (a *IndexController) loginPage(c *gin.Context) {
	a.renderLogin(c, c.Param("role"), "")
}

// login authenticates against the stored accounts. Failures render the
// same login page with an inline message, never a distinct status code.
func (a *IndexController) login(c *gin.Context) {
	role := c.Param("role")

	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderLogin(c, role, "Invalid username or password")
		return
	}

	user, err := a.userService.Authenticate(form.Username, form.Password, role)
	if err != nil {
		safeUser := template.HTMLEscapeString(form.Username)
		logger.Warningf("failed %s login for %q from %s: %v", role, safeUser, getRemoteIp(c), err)

		switch {
		case errors.Is(err, service.ErrPendingApproval):
			a.renderLogin(c, role, "Your account is pending approval.")
		case errors.Is(err, service.ErrRoleMismatch):
			a.renderLogin(c, role, fmt.Sprintf("This is a %s login. Use the correct login page.", role))
		default:
			a.renderLogin(c, role, "Invalid username or password")
		}
		return
	}

	if err := session.SetLoginUser(c, session.User{Username: form.Username, Role: user.Role}); err != nil {
		logger.Warning("unable to save session:", err)
		a.renderLogin(c, role, "Invalid username or password")
		return
	}

	logger.Infof("%s logged in successfully from %s", template.HTMLEscapeString(form.Username), getRemoteIp(c))
	redirect(c, "/dashboard")
}

func (a *IndexController) signupPage(c *gin.Context) {
	a.renderSignup(c, "")
}

// signup creates the account and sends the user to the matching login
// page. Signup never logs the new account in.
func (a *IndexController) signup(c *gin.Context) {
	var form SignupForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderSignup(c, "Invalid form data")
		return
	}

	if err := a.userService.Register(form.Username, form.Password, form.Role); err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			a.renderSignup(c, "Username already exists")
			return
		}
		logger.Warning("signup failed:", err)
		a.renderSignup(c, "Signup failed, please try again")
		return
	}

	logger.Infof("new %s account %q registered", form.Role, template.HTMLEscapeString(form.Username))
	redirect(c, "/login/"+form.Role)
}

// logout clears the session unconditionally and redirects home.
func (a *IndexController) logout(c *gin.Context) {
	if user := session.GetLoginUser(c); user != nil {
		logger.Infof("%s logged out", user.Username)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("unable to clear session:", err)
	}
	redirect(c, "/")
}

// dashboard dispatches to the dashboard matching the session role. A
// session without a role falls back to the home page.
func (a *IndexController) dashboard(c *gin.Context) {
	user := session.GetLoginUser(c)
	if user == nil {
		redirect(c, "/")
		return
	}
	switch user.Role {
	case model.RoleStudent:
		redirect(c, "/student_dashboard")
	case model.RoleTeacher:
		redirect(c, "/teacher_dashboard")
	case model.RoleAdmin:
		redirect(c, "/admin_dashboard")
	default:
		redirect(c, "/")
	}
}

func (a *IndexController) renderLogin(c *gin.Context, role, errMsg string) {
	html(c, "login.html", "Login", gin.H{
		"role":  role,
		"error": errMsg,
	})
}

func (a *IndexController) renderSignup(c *gin.Context, errMsg string) {
	html(c, "signup.html", "Sign Up", gin.H{
		"error": errMsg,
	})
}
