package controller

import (
	"errors"

	"dp-ai-be/internal/dto"
	"dp-ai-be/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	SendOTP(ctx *fiber.Ctx) error
	VerifyOTP(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/send-otp", c.SendOTP)
	h.Post("/verify-otp", c.VerifyOTP)
	h.Post("/login", c.Login)
	h.Post("/logout", c.Logout)
}

func (c *authController) SendOTP(ctx *fiber.Ctx) error {
	var req dto.SendOTPRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "Email required")
	}
	if err := validate.Struct(&req); err != nil {
		return badRequest(ctx, "Valid email required")
	}

	if err := c.service.SendOTP(ctx.Context(), &req); err != nil {
		if errors.Is(err, service.ErrDeliveryFailure) {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to send OTP email",
			})
		}
		return badRequest(ctx, err.Error())
	}

	return ctx.JSON(dto.SendOTPResponse{Message: "OTP sent"})
}

func (c *authController) VerifyOTP(ctx *fiber.Ctx) error {
	var req dto.VerifyOTPRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "Email and OTP required")
	}
	if err := validate.Struct(&req); err != nil {
		return badRequest(ctx, "Email and 6-digit OTP required")
	}

	res, err := c.service.VerifyOTP(ctx.Context(), &req)
	if err != nil {
		// Credential failures (not-found, expired, mismatch) are client
		// errors with distinguishing messages, never a 500.
		return badRequest(ctx, err.Error())
	}

	return ctx.JSON(res)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "Name required")
	}
	if err := validate.Struct(&req); err != nil {
		return badRequest(ctx, "Name required")
	}

	res, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		return badRequest(ctx, "Name required")
	}

	return ctx.JSON(res)
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	var req dto.LogoutRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "Name required")
	}
	if err := validate.Struct(&req); err != nil {
		return badRequest(ctx, "Name required")
	}

	if err := c.service.Logout(ctx.Context(), &req); err != nil {
		return badRequest(ctx, "Name required")
	}

	return ctx.JSON(dto.LogoutResponse{Message: "Logged out"})
}

func badRequest(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": message,
	})
}
