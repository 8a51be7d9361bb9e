package common

// AuthorizationHeaderName is the HTTP header used to carry the bearer token
// on outbound requests to the backend.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix is prepended to the token value in the Authorization header.
const BearerPrefix = "Bearer "

// Keys under which the client persists local state between runs.
const (
	AuthTokenKey = "auth_token"
	ThemeKey     = "theme"
)

// Theme values stored under ThemeKey.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)
