package common

// Fixed keys of the client-side session storage.
const (
	SessionTokenKey = "auth_token"
	SessionUserKey  = "auth_user"
)

// AuthorizationHeader carries "Bearer <token>" on authenticated requests.
const AuthorizationHeader = "Authorization"

const BearerPrefix = "Bearer "
