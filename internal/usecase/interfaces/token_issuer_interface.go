package interfaces

import "polymesh/internal/domain/entities"

// ITokenIssuer signs session tokens for authenticated users.
type ITokenIssuer interface {
	Issue(u entities.User) (string, error)
}
