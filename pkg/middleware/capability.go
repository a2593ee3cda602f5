package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/studdeo/admin-api/internal/domain"
	"github.com/studdeo/admin-api/pkg/apiErrors"
)

// RequireCapability restringe una ruta a los roles cuyo mapa de capabilities
// incluye la acción pedida. Reemplaza al viejo hasPermission del panel, que
// devolvía "está autenticado" para cualquier acción.
func RequireCapability(cap domain.Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)

			if !ok {
				logrus.Warning("Intento de acceso sin autenticación")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuario no autenticado", nil)
				return
			}

			if !userClaims.HasCapability(cap) {
				logrus.Warningf("Acceso denegado para usuario=%s, rol=%s, capability=%s",
					userClaims.UserEmail, userClaims.UserRole, cap)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "No tenés permiso para acceder a este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly restringe la ruta a administradores
func AdminOnly() func(http.Handler) http.Handler {
	return RequireCapability(domain.CapManageAdmins)
}
