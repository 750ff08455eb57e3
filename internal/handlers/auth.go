package handlers

import (
	"net/http"
	"os"
	"strings"
	"time"

	"gpu_queue/internal/models"
	"gpu_queue/internal/response"
	"gpu_queue/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	accessSecret  = []byte(os.Getenv("JWT_ACCESS_SECRET"))
	refreshSecret = []byte(os.Getenv("JWT_REFRESH_SECRET"))
)

type AuthRequest struct {
	Action       string `json:"action" binding:"required"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	Role         string `json:"role"`
	StudentGroup string `json:"student_group"`
	RefreshToken string `json:"refresh_token"`
}

// AuthHandler обрабатывает запросы регистрации и авторизации
// @Summary		Регистрация и авторизация
// @Description	Один эндпоинт с выбором действия в теле: register, login или refresh
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			request	body		AuthRequest				true	"Действие и учётные данные"
// @Success		200		{object}	response.AuthResponse	"Данные пользователя и пара токенов"
// @Failure		400		{object}	response.ErrorResponse	"Не указаны логин или пароль"
// @Failure		401		{object}	response.ErrorResponse	"Неверные учётные данные"
// @Failure		409		{object}	response.ErrorResponse	"Логин уже занят"
// @Router			/auth [post]
func AuthHandler(c *gin.Context) {
	var req AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Action required"})
		return
	}

	switch req.Action {
	case "register":
		registerUser(c, req)
	case "login":
		loginUser(c, req)
	case "refresh":
		refreshTokens(c, req)
	default:
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Unknown action"})
	}
}

func registerUser(c *gin.Context, req AuthRequest) {
	username := strings.TrimSpace(req.Username)
	password := strings.TrimSpace(req.Password)
	if username == "" || password == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Username and password required"})
		return
	}

	var existing models.User
	if err := storage.DB.Where("username = ?", username).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: "Username already exists"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to hash password"})
		return
	}

	role := req.Role
	if role == "" {
		role = "user"
	}
	group := req.StudentGroup
	if group == "" {
		group = "Группа 1"
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(hashed),
		Role:         role,
		StudentGroup: group,
	}
	if err := storage.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to create user"})
		return
	}

	respondWithTokens(c, user)
}

func loginUser(c *gin.Context, req AuthRequest) {
	username := strings.TrimSpace(req.Username)
	password := strings.TrimSpace(req.Password)
	if username == "" || password == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Username and password required"})
		return
	}

	var user models.User
	if err := storage.DB.Where("username = ?", username).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid credentials"})
		return
	}

	respondWithTokens(c, user)
}

func refreshTokens(c *gin.Context, req AuthRequest) {
	if req.RefreshToken == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Refresh token required"})
		return
	}

	token, err := jwt.Parse(req.RefreshToken, func(token *jwt.Token) (interface{}, error) {
		return refreshSecret, nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid refresh token"})
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid refresh token"})
		return
	}

	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid refresh token"})
		return
	}

	var user models.User
	if err := storage.DB.First(&user, uint(userIDFloat)).Error; err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid refresh token"})
		return
	}

	respondWithTokens(c, user)
}

func respondWithTokens(c *gin.Context, user models.User) {
	accessToken, err := generateToken(user.ID, time.Minute*15, accessSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to generate token"})
		return
	}

	refreshToken, err := generateToken(user.ID, time.Hour*24*7, refreshSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, response.AuthResponse{
		Success:      true,
		User:         response.UserInfoFromModel(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

func generateToken(userID uint, duration time.Duration, secret []byte) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(duration).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}
