// Package user 实现用户业务逻辑
// 注册、登录、Token 刷新与提醒偏好管理
package user

import (
	"context"
	"time"

	"go.uber.org/zap"

	"warmline_server/internal/dao/mysql/repository"
	myredis "warmline_server/internal/dao/redis"
	"warmline_server/internal/dto/request"
	"warmline_server/internal/dto/respond"
	"warmline_server/internal/model"
	"warmline_server/pkg/constants"
	"warmline_server/pkg/errorx"
	"warmline_server/pkg/util/jwt"
	"warmline_server/pkg/util/random"
)

// userInfoService 用户业务逻辑实现
// 通过构造函数注入 Repository 依赖，不使用全局 dao.Repos
type userInfoService struct {
	repos *repository.Repositories
	cache myredis.CacheService
}

// NewUserService 构造函数
func NewUserService(repos *repository.Repositories, cache myredis.CacheService) *userInfoService {
	return &userInfoService{repos: repos, cache: cache}
}

// Register 用户注册
// 邮箱唯一；注册成功直接发放双 Token，免去一次登录
func (u *userInfoService) Register(req request.RegisterRequest) (*respond.RegisterRespond, error) {
	if _, err := u.repos.User.FindByEmail(req.Email); err == nil {
		return nil, errorx.New(errorx.CodeUserExist, "该邮箱已注册")
	} else if errorx.GetCode(err) != errorx.CodeNotFound {
		zap.L().Error("Find user by email error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	timezone := req.Timezone
	if timezone == "" {
		timezone = "UTC"
	} else if _, err := time.LoadLocation(timezone); err != nil {
		return nil, errorx.New(errorx.CodeInvalidParam, "时区无效")
	}

	user := &model.UserInfo{
		Uuid:              "U" + random.GetNowAndLenRandomString(13),
		Nickname:          req.Nickname,
		Email:             req.Email,
		RawPassword:       req.Password, // BeforeSave Hook 负责加密
		Timezone:          timezone,
		MaxNudgesPerDay:   constants.DEFAULT_MAX_NUDGES_PER_DAY,
		PushNotifications: 1,
	}
	if err := u.repos.User.Create(user); err != nil {
		zap.L().Error("Create user error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	accessToken, refreshToken, err := u.issueTokens(user.Uuid)
	if err != nil {
		return nil, err
	}

	zap.L().Info("User registered", zap.String("uuid", user.Uuid))
	return &respond.RegisterRespond{
		Uuid:         user.Uuid,
		Nickname:     user.Nickname,
		Email:        user.Email,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Login 密码登录
func (u *userInfoService) Login(req request.LoginRequest) (*respond.LoginRespond, error) {
	user, err := u.repos.User.FindByEmail(req.Email)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return nil, errorx.New(errorx.CodeUserNotExist, "用户不存在，请注册")
		}
		zap.L().Error("Find user by email error", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if !user.CheckPassword(req.Password) {
		return nil, errorx.New(errorx.CodeInvalidPassword, "密码不正确，请重试")
	}
	if user.Status != 0 {
		return nil, errorx.New(errorx.CodeUnauthorized, "账号已被禁用")
	}

	accessToken, refreshToken, err := u.issueTokens(user.Uuid)
	if err != nil {
		return nil, err
	}

	if err := u.repos.User.UpdateLastLoginAt(user.Uuid, time.Now()); err != nil {
		// 登录时间写失败不阻塞登录
		zap.L().Warn("Update last login time error", zap.String("uuid", user.Uuid), zap.Error(err))
	}

	return &respond.LoginRespond{
		Uuid:              user.Uuid,
		Nickname:          user.Nickname,
		Email:             user.Email,
		Timezone:          user.Timezone,
		MaxNudgesPerDay:   user.MaxNudgesPerDay,
		PushNotifications: user.PushNotifications,
		CreatedAt:         user.CreatedAt.Format(time.RFC3339),
		IsAdmin:           user.IsAdmin,
		Status:            user.Status,
		AccessToken:       accessToken,
		RefreshToken:      refreshToken,
	}, nil
}

// RefreshToken 刷新双 Token
// 只接受 refresh_token，且 tokenID 必须与 Redis 中记录的一致（单点互踢）
func (u *userInfoService) RefreshToken(req request.RefreshTokenRequest) (*respond.AuthTokenRespond, error) {
	claims, err := jwt.ParseToken(req.RefreshToken)
	if err != nil || claims.Subject != "refresh_token" {
		return nil, errorx.New(errorx.CodeUnauthorized, "Refresh Token 无效")
	}

	redisKey := "user_token:" + claims.UserID
	validTokenID, err := u.cache.Get(context.Background(), redisKey)
	if err != nil || validTokenID == "" || validTokenID != claims.TokenID {
		return nil, errorx.New(errorx.CodeUnauthorized, "Refresh Token 已失效，请重新登录")
	}

	accessToken, refreshToken, err := u.issueTokens(claims.UserID)
	if err != nil {
		return nil, err
	}
	return &respond.AuthTokenRespond{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// issueTokens 发放双 Token 并把 Refresh Token ID 存入 Redis
func (u *userInfoService) issueTokens(userId string) (accessToken, refreshToken string, err error) {
	accessToken, err = jwt.GenerateAccessToken(userId)
	if err != nil {
		zap.L().Error("Generate access token error", zap.Error(err))
		return "", "", errorx.ErrServerBusy
	}
	refreshToken, tokenID, err := jwt.GenerateRefreshToken(userId)
	if err != nil {
		zap.L().Error("Generate refresh token error", zap.Error(err))
		return "", "", errorx.ErrServerBusy
	}

	// 最新 tokenID 覆盖旧值，旧 Refresh Token 随之失效
	redisKey := "user_token:" + userId
	if err := u.cache.Set(context.Background(), redisKey, tokenID,
		time.Duration(constants.REFRESH_TOKEN_EXPIRY_HOURS)*time.Hour); err != nil {
		// 不阻塞登录流程，仅记录日志
		zap.L().Error("Store token id to redis error", zap.Error(err))
	}
	return accessToken, refreshToken, nil
}

// UpdateSettings 更新提醒偏好
func (u *userInfoService) UpdateSettings(req request.UpdateSettingsRequest) error {
	if _, err := u.repos.User.FindByUuid(req.UserId); err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return errorx.New(errorx.CodeUserNotExist, "用户不存在")
		}
		zap.L().Error("Find user error", zap.String("uuid", req.UserId), zap.Error(err))
		return errorx.ErrServerBusy
	}

	updates := make(map[string]interface{})
	if req.MaxNudgesPerDay > 0 {
		updates["max_nudges_per_day"] = req.MaxNudgesPerDay
	}
	if req.PushNotifications != nil {
		updates["push_notifications"] = *req.PushNotifications
	}
	if req.Timezone != "" {
		if _, err := time.LoadLocation(req.Timezone); err != nil {
			return errorx.New(errorx.CodeInvalidParam, "时区无效")
		}
		updates["timezone"] = req.Timezone
	}
	if len(updates) == 0 {
		return nil
	}

	if err := u.repos.User.UpdateSettings(req.UserId, updates); err != nil {
		zap.L().Error("Update user settings error", zap.String("uuid", req.UserId), zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}
