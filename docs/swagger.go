// Package docs ProfileHub API
//
// @title  ProfileHub API
// @version 1.0.0
// @description User accounts and profile CRUD.
// @host      localhost:8080
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
package docs

import (
	_ "profile-hub/cmd/server/handlers/httperr"
	_ "profile-hub/internal/services/auth"
	_ "profile-hub/internal/services/profile"
)
