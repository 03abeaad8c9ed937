package rango

// A User is an agent that registered with the rango application.
//
// An agent's HTTP requests are authenticated first by a specific request
// with username & password data matching credentials stored on a DB record for a User.
// Upon a match, the User's ID is stored in their session.
// Further requests are authenticated by referencing that session.
//
// A User has one UserProfile.
type User struct {
	Model
	Username string `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Email    string `json:"email"`
	Password []byte `json:"-"`

	// Associations
	Profile *UserProfile `json:"profile,omitempty"`
}

// HasAccess asserts whether the User's properties give it general
// access to the rango application.
func (u User) HasAccess() bool { return u.Exists() }

// HomePath returns the relative URL path designated
// as the default resource in the rango application
// they can access.
func (u User) HomePath() string {
	if !u.HasAccess() {
		return "/login/"
	}

	return "/"
}

// GetID implements logger.LogUser.
func (u User) GetID() uint { return u.ID }

// GetEmail implements logger.LogUser.
func (u User) GetEmail() string { return u.Email }

// A UserProfile stores the optional details a User supplies while registering.
type UserProfile struct {
	Model
	UserID  uint   `gorm:"uniqueIndex;not null" json:"userId"`
	Website string `json:"website"`
	Picture string `json:"picture"`
}
