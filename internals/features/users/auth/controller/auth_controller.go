package controller

import (
	"errors"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fieldku_backend/internals/configs"
	"fieldku_backend/internals/constants"
	authDTO "fieldku_backend/internals/features/users/auth/dto"
	authModel "fieldku_backend/internals/features/users/auth/model"
	userModel "fieldku_backend/internals/features/users/user/model"
	helper "fieldku_backend/internals/helpers"
)

var validateAuth = validator.New()

const (
	accessTTL  = 24 * time.Hour
	refreshTTL = 7 * 24 * time.Hour
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

/* ==========================
   REGISTER (role default SERVICE_PERSON)
========================== */
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var body authDTO.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := userModel.UserModel{
		UserName:     strings.TrimSpace(body.Name),
		UserEmail:    strings.ToLower(strings.TrimSpace(body.Email)),
		UserPassword: string(hashed),
		UserRole:     constants.RoleServicePerson,
		UserIsActive: true,
	}
	if body.Phone != "" {
		phone := strings.TrimSpace(body.Phone)
		user.UserPhone = &phone
	}

	if err := ctrl.DB.Create(&user).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register")
	}

	return ctrl.issueTokens(c, user)
}

/* ==========================
   LOGIN
========================== */
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body authDTO.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var user userModel.UserModel
	if err := ctrl.DB.Where("user_email = ?", strings.ToLower(strings.TrimSpace(body.Email))).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(body.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}

	return ctrl.issueTokens(c, user)
}

/* ==========================
   LOGIN GOOGLE
========================== */
func (ctrl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var body authDTO.GoogleLoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Verifikasi token Google
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(body.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(body.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to decode ID Token")
	}
	email, name, googleID := claimSet.Email, claimSet.Name, claimSet.Sub

	var user userModel.UserModel
	err = ctrl.DB.Where("user_google_id = ?", googleID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// User belum ada -> buat baru dengan role default SERVICE_PERSON
		user = userModel.UserModel{
			UserName:     name,
			UserEmail:    strings.ToLower(email),
			UserPassword: "",
			UserRole:     constants.RoleServicePerson,
			UserGoogleID: &googleID,
			UserIsActive: true,
		}
		if err := ctrl.DB.Create(&user).Error; err != nil {
			if helper.IsDuplicateKey(err) {
				return helper.JsonError(c, fiber.StatusBadRequest, "Email already registered")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create Google user")
		}
	} else if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}

	return ctrl.issueTokens(c, user)
}

/* ==========================
   REFRESH
========================== */
func (ctrl *AuthController) Refresh(c *fiber.Ctx) error {
	var body authDTO.RefreshRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(body.RefreshToken, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTRefreshSecret), nil
	}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak valid")
	}

	idStr, _ := claims["id"].(string)
	var user userModel.UserModel
	if err := ctrl.DB.Where("user_id = ?", idStr).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak ditemukan")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}

	return ctrl.issueTokens(c, user)
}

/* ==========================
   LOGOUT → blacklist token
========================== */
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	auth := strings.TrimSpace(c.Get("Authorization"))
	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return helper.JsonError(c, fiber.StatusBadRequest, "Token tidak ditemukan")
	}
	tokenString := fields[1]

	// Simpan sampai exp token; dibersihkan scheduler
	expiredAt := time.Now().Add(accessTTL)
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(exp), 0)
		}
	}

	entry := authModel.TokenBlacklist{Token: tokenString, ExpiredAt: expiredAt}
	if err := ctrl.DB.Create(&entry).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal logout")
	}

	c.ClearCookie("access_token")
	return helper.JsonOK(c, "Logout berhasil", nil)
}

/* ==========================
   Token issuing
========================== */
func (ctrl *AuthController) issueTokens(c *fiber.Ctx, user userModel.UserModel) error {
	now := time.Now()

	accessClaims := jwt.MapClaims{
		"id":        user.UserID.String(),
		"user_name": user.UserName,
		"role":      user.UserRole,
		"exp":       now.Add(accessTTL).Unix(),
		"iat":       now.Unix(),
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	refreshClaims := jwt.MapClaims{
		"id":  user.UserID.String(),
		"exp": now.Add(refreshTTL).Unix(),
		"iat": now.Unix(),
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).
		SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}

	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"user": fiber.Map{
			"user_id":   user.UserID,
			"user_name": user.UserName,
			"role":      user.UserRole,
		},
		"tokens": authDTO.TokenResponse{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		},
	})
}
