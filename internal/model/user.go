package model

// Role describes the account type of a user.  The three roles are
// mutually exclusive: a user is promoted User/Guest → Admin through
// the directory's SetAdmin operation, and User → Guest only through
// the guest factory.
type Role string

const (
	RoleUser  Role = "User"  // registered account with credentials
	RoleAdmin Role = "Admin" // promoted account with management rights
	RoleGuest Role = "Guest" // anonymous account with an empty profile
)

// User is an identity record held by the user directory.  Ids are
// assigned sequentially by the directory and never reused, even after
// deletion.  Guests carry empty profile fields.
//
// Fields:
//  ID           – sequential identifier assigned by the directory.
//  Name         – display name; empty for guests.
//  Email        – contact address; empty for guests.
//  PasswordHash – bcrypt hash of the password; empty for guests.
//  Role         – current account role (User, Admin or Guest).
type User struct {
	ID           uint64 `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
}

// NewUser builds a regular user with the User role.
func NewUser(id uint64, name, email, passwordHash string) *User {
	return &User{ID: id, Name: name, Email: email, PasswordHash: passwordHash, Role: RoleUser}
}

// NewGuest builds a guest user: empty profile, Guest role.
func NewGuest(id uint64) *User {
	return &User{ID: id, Role: RoleGuest}
}

// SetAdmin promotes the user to the Admin role and returns the user for
// chaining.
func (u *User) SetAdmin() *User {
	u.Role = RoleAdmin
	return u
}

// SetGuest demotes the user to the Guest role.  Only the guest factory
// uses this.
func (u *User) SetGuest() *User {
	u.Role = RoleGuest
	return u
}
