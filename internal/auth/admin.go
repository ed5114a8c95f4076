package auth

import (
	"net/http"

	"github.com/gprawdzik/x10dev-zaliczenie/pkg"
)

const AdminSecretHeader = "X-Admin-Secret"

// AdminChecker validates the admin secret header against a bcrypt hash.
type AdminChecker struct {
	secretHash string
}

func NewAdminChecker(secretHash string) *AdminChecker {
	return &AdminChecker{
		secretHash: secretHash,
	}
}

func (c *AdminChecker) IsAdmin(r *http.Request) bool {
	secret := r.Header.Get(AdminSecretHeader)
	if secret == "" {
		return false
	}
	return pkg.CheckPasswordHash(secret, c.secretHash)
}
