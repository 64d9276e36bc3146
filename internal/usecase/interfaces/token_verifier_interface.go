package interfaces

import "context"

// ITokenVerifier abstracts the external phone-auth provider. VerifyIDToken
// validates a provider-issued id token and returns the verified phone number.
type ITokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (phone string, err error)
}
