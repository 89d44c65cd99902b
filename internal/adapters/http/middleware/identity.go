package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quoteboard/internal/adapters/http/dto"
	"github.com/jsamuelsen/quoteboard/internal/domain"
	"github.com/jsamuelsen/quoteboard/internal/platform/config"
)

const (
	// ContextKeyIdentity is the gin context key for the extracted identity.
	ContextKeyIdentity = "identity"

	// Default header names if not configured.
	defaultSubjectHeader = "X-User-ID"
	defaultRolesHeader   = "X-User-Roles"
	defaultAdminRole     = "admin"
)

// Identity is the caller identity forwarded by the gateway. The
// gateway authenticates the user and passes subject and roles in
// trusted headers; this service never sees credentials.
type Identity struct {
	// Subject is the user ID. Empty means an anonymous caller.
	Subject string

	// Roles is the list of roles assigned to the user.
	Roles []string
}

// SignedIn reports whether the caller is authenticated.
func (i *Identity) SignedIn() bool {
	return i.Subject != ""
}

// HasRole checks if the user has the specified role.
func (i *Identity) HasRole(role string) bool {
	return slices.Contains(i.Roles, role)
}

// Requester converts the identity into the domain requester, resolving
// the configured admin role.
func (i *Identity) Requester(cfg *config.AuthConfig) domain.Requester {
	adminRole := defaultAdminRole
	if cfg != nil && cfg.AdminRole != "" {
		adminRole = cfg.AdminRole
	}

	return domain.Requester{
		UserID: i.Subject,
		Admin:  i.HasRole(adminRole),
	}
}

// ExtractIdentity reads the identity headers from the request.
// Header names are configurable via AuthConfig.
func ExtractIdentity(c *gin.Context, cfg *config.AuthConfig) *Identity {
	subjectHeader := defaultSubjectHeader
	rolesHeader := defaultRolesHeader

	if cfg != nil {
		if cfg.SubjectHeader != "" {
			subjectHeader = cfg.SubjectHeader
		}

		if cfg.RolesHeader != "" {
			rolesHeader = cfg.RolesHeader
		}
	}

	identity := &Identity{
		Subject: strings.TrimSpace(c.GetHeader(subjectHeader)),
	}

	// Parse roles (comma-separated)
	if rolesStr := c.GetHeader(rolesHeader); rolesStr != "" {
		identity.Roles = parseCommaSeparated(rolesStr)
	}

	return identity
}

// GetIdentity retrieves the identity from the gin context. Returns an
// anonymous identity when none was stored.
func GetIdentity(c *gin.Context) *Identity {
	if value, exists := c.Get(ContextKeyIdentity); exists {
		if identity, ok := value.(*Identity); ok {
			return identity
		}
	}

	return &Identity{}
}

// WithIdentity returns middleware that extracts the identity from the
// gateway headers and stores it in the context. Anonymous callers pass
// through; handlers that need a signed-in user sit behind RequireUser.
func WithIdentity(cfg *config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextKeyIdentity, ExtractIdentity(c, cfg))
		c.Next()
	}
}

// RequireUser returns middleware that rejects anonymous callers.
func RequireUser(cfg *config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := getOrExtractIdentity(c, cfg)

		if !identity.SignedIn() {
			abortWithUnauthorized(c, "authentication required")
			return
		}

		c.Next()
	}
}

// RequireRole returns middleware that requires a specific role.
func RequireRole(cfg *config.AuthConfig, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := getOrExtractIdentity(c, cfg)

		if !identity.HasRole(role) {
			abortWithForbidden(c, "insufficient permissions: role "+role+" required")
			return
		}

		c.Next()
	}
}

// getOrExtractIdentity gets the identity from context or extracts it.
func getOrExtractIdentity(c *gin.Context, cfg *config.AuthConfig) *Identity {
	if value, exists := c.Get(ContextKeyIdentity); exists {
		if identity, ok := value.(*Identity); ok {
			return identity
		}
	}

	identity := ExtractIdentity(c, cfg)
	c.Set(ContextKeyIdentity, identity)

	return identity
}

// abortWithUnauthorized aborts with a 401 Unauthorized response.
func abortWithUnauthorized(c *gin.Context, message string) {
	errResp := dto.NewErrorResponse(dto.ErrorCodeUnauthorized, message)

	if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
		errResp.TraceID = span.SpanContext().TraceID().String()
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized, errResp)
}

// abortWithForbidden aborts with a 403 Forbidden response.
func abortWithForbidden(c *gin.Context, message string) {
	errResp := dto.NewErrorResponse(dto.ErrorCodeForbidden, message)

	if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
		errResp.TraceID = span.SpanContext().TraceID().String()
	}

	c.AbortWithStatusJSON(http.StatusForbidden, errResp)
}

// parseCommaSeparated splits a comma-separated string into trimmed values.
func parseCommaSeparated(s string) []string {
	parts := strings.Split(s, ",")

	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
