package model

import "time"

// User is an account able to call the API. CUSTOMER accounts buy and cancel
// tickets; ADMIN accounts additionally manage the catalog and read sales
// reports. Accounts live in the in-memory user store for the lifetime of
// the process.
//
// Fields:
//
//	ID           – identifier assigned by the user store.
//	Name         – display name, forwarded to the booking ledger as the
//	               customer name on first purchase.
//	Email        – unique login identifier, stored lower-cased.
//	PasswordHash – bcrypt hashed password.
//	Role         – ADMIN or CUSTOMER.
//	CreatedAt    – timestamp of registration.
type User struct {
	ID           uint64
	Name         string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

// Roles accepted in the JWT "role" claim.
const (
	RoleAdmin    = "ADMIN"
	RoleCustomer = "CUSTOMER"
)
