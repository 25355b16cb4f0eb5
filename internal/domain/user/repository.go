package user

import "context"

// CredentialRepository holds the admin credential pair.
type CredentialRepository interface {
	Get(ctx context.Context) (Credentials, error)
	Set(ctx context.Context, creds Credentials) error
}
