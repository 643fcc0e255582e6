package http

import (
	"net/http"

	"autoshop/internal/core/application/usecases/commands"
	"autoshop/internal/core/application/usecases/queries"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var req loginRequest
	if err := bind(ctx, &req); err != nil {
		return writeBadRequest(ctx, codeUser, err)
	}

	query, err := queries.NewAuthenticateUserQuery(req.Email, req.Password)
	if err != nil {
		return writeBadRequest(ctx, codeUser, err)
	}

	result, err := s.authenticateUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, codeUser, err)
	}

	return ctx.JSON(http.StatusOK, loginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		UserID:    result.UserID.String(),
		Username:  result.Username,
		Role:      result.Role,
	})
}

// Register handles POST /api/v1/auth/register.
func (s *Server) Register(ctx echo.Context) error {
	var req registerRequest
	if err := bind(ctx, &req); err != nil {
		return writeBadRequest(ctx, codeUser, err)
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(
		userID, req.Username, req.Email, req.Password, user.Role(req.Role))
	if err != nil {
		return writeBadRequest(ctx, codeUser, err)
	}

	if err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, codeUser, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": userID.String()})
}

// bind decodes the request body and runs validator-tag checks.
func bind(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return err
	}
	return ctx.Validate(req)
}
