package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/booklore/bookshelf/internal/database/users"
)

// LoginResponse is the body returned on successful login.
type LoginResponse struct {
	Message string `json:"message"`
	UserID  uint   `json:"user_id"`
}

// UsersController handles registration and login.
type UsersController struct {
	users UserStore
}

// NewUsersController creates a new UsersController.
func NewUsersController(store UserStore) *UsersController {
	return &UsersController{users: store}
}

// Register handles POST /register (form: username, password).
// A duplicate username maps to 400, matching the upstream contract
// rather than the more conventional 409.
func (controller *UsersController) Register(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if username == "" || password == "" {
		respondBadRequest(c, "Missing required fields")
		return
	}

	_, err := controller.users.CreateUser(username, password)
	if errors.Is(err, users.ErrUsernameTaken) {
		respondBadRequest(c, "Username already exists")
		return
	}
	if err != nil {
		respondInternalError(c, err, "register user")
		return
	}

	c.JSON(http.StatusCreated, MessageResponse{Message: "User registered successfully"})
}

// Login handles POST /login (form: username, password).
func (controller *UsersController) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if username == "" || password == "" {
		respondBadRequest(c, "Missing required fields")
		return
	}

	user, err := controller.users.FindByCredentials(username, password)
	if errors.Is(err, users.ErrUserNotFound) {
		respondUnauthorized(c, "Invalid username or password")
		return
	}
	if err != nil {
		respondInternalError(c, err, "login")
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Message: "Login successful",
		UserID:  user.ID,
	})
}
