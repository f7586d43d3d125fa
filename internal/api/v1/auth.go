package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ndungutse/project-tracker/internal/auth"
	"github.com/ndungutse/project-tracker/internal/domain"
)

type RegisterInput struct {
	Body struct {
		Username string `json:"username" minLength:"1" maxLength:"100" doc:"Username"`
		Email    string `json:"email" minLength:"3" maxLength:"255" doc:"User email"`
		Password string `json:"password" minLength:"8" maxLength:"128" doc:"Password"` //nolint:gosec // G117: login credential DTO
		Role     string `json:"role" minLength:"1" maxLength:"100" doc:"Role name, e.g. ROLE_DEVELOPER"`
	}
}

type RegisterOutput struct {
	Body struct {
		ID       int64  `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Role     string `json:"role"`
	}
}

type LoginInput struct {
	Body struct {
		Username string `json:"username" minLength:"1" maxLength:"100" doc:"Username"`
		Password string `json:"password" minLength:"1" maxLength:"128" doc:"Password"` //nolint:gosec // G117: login credential DTO
	}
}

type LoginOutput struct {
	Body struct {
		Token        string `json:"token"`        //nolint:gosec // G117: auth response DTO
		RefreshToken string `json:"refreshToken"` //nolint:gosec // G117: auth response DTO
		UserID       int64  `json:"userId"`
		Username     string `json:"username"`
		Email        string `json:"email"`
		Role         string `json:"role"`
	}
}

type RefreshInput struct {
	Body struct {
		RefreshToken string `json:"refreshToken" minLength:"1" doc:"Refresh token"` //nolint:gosec // G117: token refresh DTO
	}
}

type RefreshOutput struct {
	Body struct {
		Token string `json:"token"` //nolint:gosec // G117: auth response DTO
	}
}

func RegisterAuthRoutes(api huma.API, authSvc AuthService) {
	huma.Register(api, huma.Operation{
		OperationID:   "register",
		Method:        http.MethodPost,
		Path:          "/auth/register",
		Summary:       "Register a new user",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
		user, err := authSvc.Register(ctx, input.Body.Username, input.Body.Email, input.Body.Password, input.Body.Role)
		if err != nil {
			// ErrConflict covers a concurrent duplicate slipping past the
			// pre-check and hitting the unique constraint instead.
			if errors.Is(err, auth.ErrUserAlreadyExists) || errors.Is(err, domain.ErrConflict) {
				return nil, huma.Error409Conflict("user already exists")
			}
			if errors.Is(err, domain.ErrNotFound) {
				return nil, huma.Error404NotFound("role not found")
			}
			return nil, huma.Error500InternalServerError("failed to register user", err)
		}

		out := &RegisterOutput{}
		out.Body.ID = user.ID
		out.Body.Username = user.Username
		out.Body.Email = user.Email
		out.Body.Role = user.RoleName
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/auth/login",
		Summary:     "Login with username and password",
		Tags:        []string{"Auth"},
	}, func(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
		result, err := authSvc.Login(ctx, input.Body.Username, input.Body.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				return nil, huma.Error401Unauthorized("invalid username or password")
			}
			return nil, huma.Error500InternalServerError("login failed", err)
		}

		out := &LoginOutput{}
		out.Body.Token = result.Token
		out.Body.RefreshToken = result.RefreshToken
		out.Body.UserID = result.UserID
		out.Body.Username = result.Username
		out.Body.Email = result.Email
		out.Body.Role = result.Role
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "refresh-token",
		Method:      http.MethodPost,
		Path:        "/auth/refresh",
		Summary:     "Refresh access token",
		Tags:        []string{"Auth"},
	}, func(ctx context.Context, input *RefreshInput) (*RefreshOutput, error) {
		token, err := authSvc.RefreshToken(ctx, input.Body.RefreshToken)
		if err != nil {
			return nil, huma.Error401Unauthorized("invalid or expired refresh token")
		}

		out := &RefreshOutput{}
		out.Body.Token = token
		return out, nil
	})
}
