package utils // package utils provides helper functions for token creation and hashing

import (
    "errors" // sentinel error definitions
    "time"   // time utilities for generating expirations

    "github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// Verification failure modes.  Callers distinguish an expired token (the
// client should refresh) from everything else (bad signature, malformed,
// wrong signing method), which is reported as invalid.
var (
    ErrTokenExpired = errors.New("token expired")
    ErrTokenInvalid = errors.New("invalid token")
)

// AccessClaims is the identity carried by a verified access token.  Role is
// embedded at issue time so authorized requests avoid a user lookup; the
// refresh flow re-reads the stored role, bounding staleness to one access
// token lifetime.
type AccessClaims struct {
    UserID uint64
    Email  string
    Role   string
}

// IssuedToken pairs a serialized JWT with its expiration time.  The Exp
// field is returned to clients so they can schedule refreshes without
// decoding the token themselves.
type IssuedToken struct {
    Token string    // the serialized JWT string
    Exp   time.Time // the UTC expiration time
}

// NewAccessToken builds and signs an HS256 JWT binding a user's identity and
// role.  The JWT carries sub (user ID), email, role, exp and iat claims.
// The access secret must be distinct from the refresh secret so a leaked
// access key cannot forge refresh tokens.
func NewAccessToken(secret string, userID uint64, email, role string, ttlHours int) (IssuedToken, error) {
    now := time.Now().UTC()
    exp := now.Add(time.Duration(ttlHours) * time.Hour)
    claims := jwt.MapClaims{
        "sub":   userID,
        "email": email,
        "role":  role,
        "exp":   exp.Unix(),
        "iat":   now.Unix(),
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return IssuedToken{}, err
    }
    return IssuedToken{Token: signed, Exp: exp}, nil
}

// NewRefreshToken builds and signs a longer-lived HS256 JWT carrying only the
// user ID.  It is signed with the dedicated refresh secret and exchanged for
// new access tokens without re-entering credentials.
func NewRefreshToken(secret string, userID uint64, ttlDays int) (IssuedToken, error) {
    now := time.Now().UTC()
    exp := now.Add(time.Duration(ttlDays) * 24 * time.Hour)
    claims := jwt.MapClaims{
        "sub": userID,
        "exp": exp.Unix(),
        "iat": now.Unix(),
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return IssuedToken{}, err
    }
    return IssuedToken{Token: signed, Exp: exp}, nil
}

// VerifyAccessToken parses and validates an access token against the access
// secret.  It returns the embedded identity claims, ErrTokenExpired when the
// token is past its exp claim, or ErrTokenInvalid for any other failure.
func VerifyAccessToken(secret, raw string) (AccessClaims, error) {
    claims, err := parseHS256(secret, raw)
    if err != nil {
        return AccessClaims{}, err
    }
    out := AccessClaims{UserID: claimUint64(claims, "sub")}
    if out.UserID == 0 {
        return AccessClaims{}, ErrTokenInvalid
    }
    out.Email, _ = claims["email"].(string)
    out.Role, _ = claims["role"].(string)
    return out, nil
}

// VerifyRefreshToken parses and validates a refresh token against the
// refresh secret and returns the user ID it binds.
func VerifyRefreshToken(secret, raw string) (uint64, error) {
    claims, err := parseHS256(secret, raw)
    if err != nil {
        return 0, err
    }
    userID := claimUint64(claims, "sub")
    if userID == 0 {
        return 0, ErrTokenInvalid
    }
    return userID, nil
}

// parseHS256 parses a token enforcing the HMAC signing method and maps
// library errors onto the package sentinels.
func parseHS256(secret, raw string) (jwt.MapClaims, error) {
    tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrTokenInvalid
        }
        return []byte(secret), nil
    })
    if err != nil {
        if errors.Is(err, jwt.ErrTokenExpired) {
            return nil, ErrTokenExpired
        }
        return nil, ErrTokenInvalid
    }
    claims, ok := tok.Claims.(jwt.MapClaims)
    if !ok || !tok.Valid {
        return nil, ErrTokenInvalid
    }
    return claims, nil
}

// claimUint64 extracts a numeric claim.  JSON numbers decode as float64; a
// string form is tolerated for compatibility with other issuers.
func claimUint64(claims jwt.MapClaims, key string) uint64 {
    switch v := claims[key].(type) {
    case float64:
        if v > 0 {
            return uint64(v)
        }
    case string:
        var n uint64
        for i := 0; i < len(v); i++ {
            if v[i] < '0' || v[i] > '9' {
                return 0
            }
            n = n*10 + uint64(v[i]-'0')
        }
        return n
    }
    return 0
}
