package push

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DecodeApplicationServerKey декодирует VAPID ключ из URL-safe base64 в сырые байты
// '-' заменяется на '+', '_' на '/', padding добивается до кратности 4
func DecodeApplicationServerKey(key string) ([]byte, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, fmt.Errorf("%w: empty key", ErrInvalidKey)
	}

	std := strings.NewReplacer("-", "+", "_", "/").Replace(key)
	if rem := len(std) % 4; rem != 0 {
		std += strings.Repeat("=", 4-rem)
	}

	raw, err := base64.StdEncoding.DecodeString(std)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return raw, nil
}
