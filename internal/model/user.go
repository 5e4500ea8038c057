package model

import "time"

// Role values stored in users.role and embedded in access tokens.
const (
    RoleUser  = "USER"
    RoleAdmin = "ADMIN"
)

// User represents an application user record as stored in the `users`
// table.  The password hash never leaves the repository/handler boundary;
// handlers build separate response types without it.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Email        – unique email address, stored lower-cased.
//  PasswordHash – bcrypt hashed password.
//  Name         – display name.
//  Role         – USER or ADMIN.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
    ID           uint64    // users.id
    Email        string    // users.email
    PasswordHash string    // users.password_hash
    Name         string    // users.name
    Role         string    // users.role
    CreatedAt    time.Time // users.created_at
    UpdatedAt    time.Time // users.updated_at
}
