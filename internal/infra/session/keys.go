package session

import "fmt"

// CartKey names the redis hash holding one browsing session's cart
// (product id -> quantity).
func CartKey(sessionID string) string {
	return fmt.Sprintf("storefront:cart:%s", sessionID)
}

// AuthKey maps an issued auth token to a user id.
func AuthKey(token string) string {
	return fmt.Sprintf("storefront:auth:%s", token)
}
