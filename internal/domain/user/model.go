package user

// Principal is the authenticated identity attached to admin requests.
type Principal struct {
	Username string
	Admin    bool
}

// Credentials is the single admin username/password pair.
type Credentials struct {
	Username string
	Password string
}
