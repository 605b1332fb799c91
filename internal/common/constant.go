package common

import "time"

// AuthorizationHeaderName is the HTTP header used to carry the bearer token
// on outbound requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix is prepended to the token in the authorization header.
const BearerPrefix = "Bearer "

// CredentialTTL is how long stored credentials stay readable. Both the token
// and the profile snapshot are written with this expiry; the store treats
// older rows as absent.
const CredentialTTL = 24 * time.Hour
