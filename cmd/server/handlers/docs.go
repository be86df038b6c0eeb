package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// Root describes the API at a glance
func Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Welcome to User Profile API",
		"version": "1.0.0",
		"endpoints": fiber.Map{
			"auth":    "/api/auth",
			"profile": "/api/profile",
		},
	})
}

// APITest is a connectivity check endpoint
func APITest(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Test endpoint working!"})
}

// AuthTest is a connectivity check for the auth routes
func AuthTest(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Auth test route working"})
}

var registerDoc = fiber.Map{
	"method": "POST",
	"url":    "/api/auth/register",
	"body": fiber.Map{
		"name":     "string (required)",
		"email":    "string (required)",
		"password": "string (required, min 6 chars)",
		"address":  "string (required)",
	},
}

var loginDoc = fiber.Map{
	"method": "POST",
	"url":    "/api/auth/login",
	"body": fiber.Map{
		"email":    "string (required)",
		"password": "string (required)",
	},
}

// AuthDocs lists the auth endpoints
func AuthDocs(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Auth API Endpoints",
		"endpoints": fiber.Map{
			"register": registerDoc,
			"login":    loginDoc,
		},
	})
}

// RegisterDocs describes the register endpoint
func RegisterDocs(c *fiber.Ctx) error {
	doc := fiber.Map{"message": "Register Endpoint"}
	for k, v := range registerDoc {
		doc[k] = v
	}
	return c.JSON(doc)
}

// LoginDocs describes the login endpoint
func LoginDocs(c *fiber.Ctx) error {
	doc := fiber.Map{"message": "Login Endpoint"}
	for k, v := range loginDoc {
		doc[k] = v
	}
	return c.JSON(doc)
}

// ProfileDocs describes the protected profile endpoints.
// Registered before the bearer middleware so it stays public.
func ProfileDocs(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Profile API Documentation",
		"endpoints": fiber.Map{
			"get": fiber.Map{
				"method": "GET",
				"url":    "/api/profile",
				"auth":   "Bearer token required",
			},
			"update": fiber.Map{
				"method": "PUT",
				"url":    "/api/profile",
				"auth":   "Bearer token required",
				"body": fiber.Map{
					"name":           "string (optional)",
					"address":        "string (optional)",
					"bio":            "string (optional)",
					"profilePicture": "URL string (optional)",
				},
			},
			"delete": fiber.Map{
				"method": "DELETE",
				"url":    "/api/profile",
				"auth":   "Bearer token required",
			},
		},
	})
}

// NotFound is the terminal catch-all for unmatched routes
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"success": false,
		"message": "Endpoint not found",
	})
}
