package authhandler

import (
	"resto-hr-backend/db"
	employeestore "resto-hr-backend/lib/employee/store"
	authutils "resto-hr-backend/lib/utils/auth-utils"
	"resto-hr-backend/models"
	authapimodels "resto-hr-backend/models/api/auth"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type Provider interface {
	Login(data authapimodels.LoginData) (tokens *authapimodels.TokenResponse, hMsg string, err error)
	Refresh(data authapimodels.RefreshData) (tokens *authapimodels.TokenResponse, hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	store employeestore.Provider
}

// Login checks the credentials and issues an access/refresh token pair.
// Wrong email and wrong password produce the same soft message.
func (i impl) Login(data authapimodels.LoginData) (*authapimodels.TokenResponse, string, error) {
	logger := log.WithField("email", data.Email)
	if err := data.Validate(); err != nil {
		return nil, err.Error(), nil
	}
	user, err := i.store.GetByEmail(data.Email)
	if err != nil {
		logger.WithError(err).Error("user fetch failed")
		return nil, "", err
	}
	if user == nil || !user.IsActive {
		return nil, "invalid credentials", nil
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(data.Password)); err != nil {
		return nil, "invalid credentials", nil
	}
	tokens, err := i.issueTokens(user.ID, user.GetFullName(), user.Role)
	if err != nil {
		logger.WithError(err).Error("token issue failed")
		return nil, "", err
	}
	if err = i.store.Update(user.ID, map[string]interface{}{"last_login": time.Now()}); err != nil {
		logger.WithError(err).Error("last login update failed")
	}
	logger.WithField("user_id", user.ID).Info("user logged in")
	return tokens, "", nil
}

func (i impl) Refresh(data authapimodels.RefreshData) (*authapimodels.TokenResponse, string, error) {
	if err := data.Validate(); err != nil {
		return nil, err.Error(), nil
	}
	claims, err := authutils.ParseToken(data.RefreshToken)
	if err != nil {
		return nil, "invalid refresh token", nil
	}
	userID, _ := claims["sub"].(string)
	user, err := i.store.GetByID(userID)
	if err != nil {
		return nil, "", err
	}
	if user == nil || !user.IsActive {
		return nil, "invalid refresh token", nil
	}
	tokens, err := i.issueTokens(user.ID, user.GetFullName(), user.Role)
	if err != nil {
		return nil, "", err
	}
	return tokens, "", nil
}

func (i impl) issueTokens(userID, name string, role models.UserRole) (*authapimodels.TokenResponse, error) {
	accessToken, err := authutils.GetToken(userID, name, role)
	if err != nil {
		return nil, err
	}
	refreshToken, err := authutils.GetRefreshToken(userID, name)
	if err != nil {
		return nil, err
	}
	return &authapimodels.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Role:         string(role),
		UserID:       userID,
	}, nil
}
