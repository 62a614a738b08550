package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/planora/planora-api/internal/interface/http"
)

// UserModule wires the identity routes. All routes are public: login
// returns a plain identity payload, there is no token issuance and no
// authenticated route group.
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.POST("/users/register", m.Handler.Register)
	rg.POST("/users/login", m.Handler.Login)
	rg.POST("/users/verify-identity", m.Handler.VerifyIdentity)
	rg.POST("/users/reset-password", m.Handler.ResetPassword)
	rg.DELETE("/users/me/:id", m.Handler.DeleteAccount)
}
