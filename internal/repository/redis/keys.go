package redis

import "fmt"

const ns = "entrydesk:v1"

func KeyRevokedSession(tokenID string) string {
	return fmt.Sprintf("%s:session:revoked:%s", ns, tokenID)
}

func KeyRateLimit(scope, id string) string {
	return fmt.Sprintf("%s:rl:%s:%s", ns, scope, id)
}

func ChannelTicketsChanged() string {
	return ns + ":tickets:changed"
}
